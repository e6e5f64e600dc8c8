package layoutmd

import (
	"sync"

	"github.com/pkg/errors"
)

// Config controls layout reconstruction behavior.
type Config struct {
	// LineTolerance is the maximum distance, in page units, between a
	// character's vertical center and the running center of the current
	// line before a new line starts (default: 3.0).
	LineTolerance float64

	// SpacingFactor scales the page's median line height to produce the
	// paragraph-break threshold (default: 1.5).
	SpacingFactor float64

	// FallbackLineHeight is the assumed line height for pages where no
	// character carries a font size (default: 12.0).
	FallbackLineHeight float64

	// Workers is the number of pages rendered concurrently after the
	// font profile pass. 1 renders pages sequentially (default: 1).
	Workers int
}

// DefaultConfig returns the default conversion configuration.
func DefaultConfig() Config {
	return Config{
		LineTolerance:      3.0,
		SpacingFactor:      1.5,
		FallbackLineHeight: 12.0,
		Workers:            1,
	}
}

// Validate rejects unusable configurations before any processing runs.
func (c Config) Validate() error {
	if c.LineTolerance < 1 {
		return errors.Errorf("line tolerance must be at least 1, got %v", c.LineTolerance)
	}
	if c.SpacingFactor <= 0 {
		return errors.Errorf("spacing factor must be positive, got %v", c.SpacingFactor)
	}
	if c.FallbackLineHeight < 1 {
		return errors.Errorf("fallback line height must be at least 1, got %v", c.FallbackLineHeight)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Converter reconstructs document structure from positioned characters
// and renders it as markdown. A Converter is stateless between Convert
// calls and safe for concurrent use.
type Converter struct {
	config Config
}

// NewConverter creates a converter with the default configuration.
func NewConverter() *Converter {
	return &Converter{config: DefaultConfig()}
}

// NewConverterWithConfig creates a converter with a custom
// configuration, rejecting invalid settings up front.
func NewConverterWithConfig(config Config) (*Converter, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Converter{config: config}, nil
}

// Convert renders the full markdown document for the given pages.
//
// The conversion is strictly two-phase: the font profile is built over
// every page first, because body size is a whole-document statistic,
// and only then are pages rendered against the finished profile. An
// empty input converts to "".
func (c *Converter) Convert(pages []PageInput) string {
	profile := BuildFontProfile(pages)
	return assembleDocument(c.renderPages(profile, pages))
}

// Convert converts pages to markdown using the default configuration.
func Convert(pages []PageInput) string {
	return NewConverter().Convert(pages)
}

// renderPages runs phase two. Pages are independent once the profile is
// built, so with Workers > 1 they are rendered on a bounded fan-out and
// written into an index-addressed slice to restore page order.
func (c *Converter) renderPages(profile *FontProfile, pages []PageInput) []string {
	rendered := make([]string, len(pages))

	workers := c.config.Workers
	if workers > len(pages) {
		workers = len(pages)
	}
	if workers <= 1 {
		for i, page := range pages {
			rendered[i] = composePage(profile, page, c.config)
		}
		return rendered
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rendered[i] = composePage(profile, pages[i], c.config)
			}
		}()
	}
	for i := range pages {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return rendered
}
