package layoutmd

import (
	"strings"
	"unicode/utf8"

	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// maxSimpleHeadingLength is the length (in runes) under which a
// paragraph in simple mode is promoted to a heading.
const maxSimpleHeadingLength = 80

// SimpleMarkdown is the low-fidelity fallback: it works from whole-page
// text alone, with no font or position data. Pages are split into
// paragraphs on blank lines; a short paragraph that does not end in a
// period or comma becomes an H2 heading, everything else stays a plain
// paragraph. The output is still valid markdown, just without the
// heading hierarchy the positioned pipeline can recover.
func SimpleMarkdown(pageTexts []string) string {
	var parts []string
	for _, text := range pageTexts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, para := range strings.Split(text, "\n\n") {
			para = strings.ReplaceAll(strings.TrimSpace(para), "\n", " ")
			if para == "" {
				continue
			}
			short := utf8.RuneCountInString(para) < maxSimpleHeadingLength
			if short && !strings.HasSuffix(para, ".") && !strings.HasSuffix(para, ",") {
				parts = append(parts, "## "+para)
			} else {
				parts = append(parts, para)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

// ConvertFileSimple converts a PDF using the fallback mode: raw page
// text from pdfium, no layout reconstruction.
func (fc *FileConverter) ConvertFileSimple(filePath string) (string, error) {
	doc, err := fc.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF document")
	}
	defer fc.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := fc.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to get page count")
	}

	texts := make([]string, 0, pageCount.PageCount)
	for i := 0; i < pageCount.PageCount; i++ {
		textResp, err := fc.instance.GetPageText(&requests.GetPageText{
			Page: requests.Page{
				ByIndex: &requests.PageByIndex{
					Document: doc.Document,
					Index:    i,
				},
			},
		})
		if err != nil {
			return "", errors.Wrapf(err, "failed to extract text for page %d", i+1)
		}
		texts = append(texts, textResp.Text)
	}

	return SimpleMarkdown(texts), nil
}
