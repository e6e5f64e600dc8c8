package layoutmd

import (
	"io"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// FileConverter converts PDF files to markdown by extracting positioned
// characters with pdfium and feeding them through the layout pipeline.
//
// Character extraction is the collaborator side of the pipeline: this
// file produces PageInput values and knows nothing about layout.
// Table grids are not derived here; callers with a table detector can
// attach TableSource values to the extracted pages before converting.
type FileConverter struct {
	instance pdfium.Pdfium
	core     *Converter
}

// NewFileConverter creates a file converter with default configuration.
func NewFileConverter(instance pdfium.Pdfium) *FileConverter {
	return &FileConverter{instance: instance, core: NewConverter()}
}

// NewFileConverterWithConfig creates a file converter with a custom
// configuration.
func NewFileConverterWithConfig(instance pdfium.Pdfium, config Config) (*FileConverter, error) {
	core, err := NewConverterWithConfig(config)
	if err != nil {
		return nil, err
	}
	return &FileConverter{instance: instance, core: core}, nil
}

// ConvertFile converts a PDF file to markdown.
func (fc *FileConverter) ConvertFile(filePath string) (string, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return fc.convertDocument(doc.Document, 0, -1)
}

// ConvertBytes converts PDF bytes to markdown.
func (fc *FileConverter) ConvertBytes(pdfBytes []byte) (string, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return fc.convertDocument(doc.Document, 0, -1)
}

// ConvertReader converts a PDF from an io.ReadSeeker to markdown.
func (fc *FileConverter) ConvertReader(reader io.ReadSeeker) (string, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		FileReader: reader,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return fc.convertDocument(doc.Document, 0, -1)
}

// ConvertPageRange converts a specific range of pages (0-indexed,
// inclusive) to markdown.
func (fc *FileConverter) ConvertPageRange(filePath string, startPage, endPage int) (string, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return fc.convertDocument(doc.Document, startPage, endPage)
}

// convertDocument extracts the requested pages and runs the two-pass
// conversion. endPage < 0 means "through the last page".
func (fc *FileConverter) convertDocument(docRef references.FPDF_DOCUMENT, startPage, endPage int) (string, error) {
	pageCount, err := fc.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: docRef,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to get page count")
	}

	if startPage < 0 {
		startPage = 0
	}
	if endPage < 0 || endPage >= pageCount.PageCount {
		endPage = pageCount.PageCount - 1
	}
	if startPage > endPage {
		return "", errors.New("invalid page range: start page must be <= end page")
	}

	pages := make([]PageInput, 0, endPage-startPage+1)
	for i := startPage; i <= endPage; i++ {
		page, err := fc.extractPage(docRef, i)
		if err != nil {
			return "", errors.Wrapf(err, "failed to extract page %d", i+1)
		}
		pages = append(pages, page)
	}

	return fc.core.Convert(pages), nil
}

// extractPage loads one page and extracts its characters.
func (fc *FileConverter) extractPage(docRef references.FPDF_DOCUMENT, pageIndex int) (PageInput, error) {
	pageResp, err := fc.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{
		Document: docRef,
		Index:    pageIndex,
	})
	if err != nil {
		return PageInput{}, errors.Wrap(err, "failed to load page")
	}
	defer fc.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: pageResp.Page,
	})

	return ExtractPageInput(fc.instance, pageResp.Page)
}

// ExtractPageInput extracts one page's positioned characters from an
// already-loaded pdfium page.
func ExtractPageInput(instance pdfium.Pdfium, page references.FPDF_PAGE) (PageInput, error) {
	pageHeight, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return PageInput{}, errors.Wrap(err, "failed to get page height")
	}

	textPage, err := instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return PageInput{}, errors.Wrap(err, "failed to load text page")
	}
	defer instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{
		TextPage: textPage.TextPage,
	})

	charCount, err := instance.FPDFText_CountChars(&requests.FPDFText_CountChars{
		TextPage: textPage.TextPage,
	})
	if err != nil {
		return PageInput{}, errors.Wrap(err, "failed to count characters")
	}
	if charCount.Count == 0 {
		return PageInput{}, nil
	}

	chars := make([]Char, 0, charCount.Count)
	height := float64(pageHeight.PageHeight)

	for i := 0; i < charCount.Count; i++ {
		unicodeRes, err := instance.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{
			TextPage: textPage.TextPage,
			Index:    i,
		})
		if err != nil || unicodeRes.Unicode == 0 {
			continue
		}

		charBox, err := instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPage.TextPage,
			Index:    i,
		})
		if err != nil {
			continue
		}

		c := Char{
			Text: string(rune(unicodeRes.Unicode)),
			X0:   charBox.Left,
			X1:   charBox.Right,
			// pdfium reports boxes with the origin at the bottom-left;
			// flip to top-left coordinates.
			Top:    height - charBox.Top,
			Bottom: height - charBox.Bottom,
		}

		fontSize, err := instance.FPDFText_GetFontSize(&requests.FPDFText_GetFontSize{
			TextPage: textPage.TextPage,
			Index:    i,
		})
		if err == nil && fontSize.FontSize > 0 {
			c.Size = fontSize.FontSize
			c.HasSize = true
		}

		chars = append(chars, c)
	}

	return PageInput{Chars: chars}, nil
}

// GetDocumentInfo returns basic information about a PDF without
// converting it.
func (fc *FileConverter) GetDocumentInfo(filePath string) (*DocumentInfo, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := fc.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	return &DocumentInfo{PageCount: pageCount.PageCount}, nil
}

// DocumentInfo contains basic information about a PDF document.
type DocumentInfo struct {
	PageCount int
}
