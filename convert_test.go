package layoutmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportPages builds a small two-page document: a large title, body
// text, and a table on page two.
func reportPages() []PageInput {
	pageOne := PageInput{
		Chars: append(charRun("Annual Report", 24, 0, 40),
			charRun("This year went rather well for everyone involved.", 12, 0, 120)...),
	}
	pageTwo := PageInput{
		Chars: charRun("Figures below.", 12, 0, 40),
		Tables: []TableSource{GridTable{
			Box: BBox{X0: 0, Top: 100, X1: 300, Bottom: 160},
			Rows: [][]*string{
				{strPtr("Quarter"), strPtr("Revenue")},
				{strPtr("Q1"), strPtr("10")},
				{strPtr("Q2"), strPtr("12")},
			},
		}},
	}
	return []PageInput{pageOne, pageTwo}
}

func TestConvert_Report(t *testing.T) {
	out := Convert(reportPages())

	assert.Contains(t, out, "# Annual Report")
	assert.Contains(t, out, "This year went rather well for everyone involved.")
	assert.Contains(t, out, "| Quarter | Revenue |")
	assert.Contains(t, out, "| Q1 | 10 |")

	// Pages are separated by a blank line and come in page order.
	titleIdx := strings.Index(out, "# Annual Report")
	tableIdx := strings.Index(out, "| Quarter |")
	assert.Less(t, titleIdx, tableIdx)
}

func TestConvert_EmptyDocument(t *testing.T) {
	assert.Equal(t, "", Convert(nil))
	assert.Equal(t, "", Convert([]PageInput{}))
	assert.Equal(t, "", Convert([]PageInput{{}, {}, {}}))
}

func TestConvert_NoSizedCharsMeansNoHeadings(t *testing.T) {
	chars := charRun("Looks Like A Title", 0, 0, 40)
	out := Convert([]PageInput{{Chars: chars}})

	assert.Equal(t, "Looks Like A Title", out)
}

func TestConvert_ParallelMatchesSequential(t *testing.T) {
	pages := append(reportPages(), PageInput{
		Chars: charRun("A trailing third page.", 12, 0, 40),
	})

	sequential := NewConverter().Convert(pages)

	parallelConfig := DefaultConfig()
	parallelConfig.Workers = 4
	parallel, err := NewConverterWithConfig(parallelConfig)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, sequential, parallel.Convert(pages))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"tolerance below one", func(c *Config) { c.LineTolerance = 0.5 }, false},
		{"zero spacing factor", func(c *Config) { c.SpacingFactor = 0 }, false},
		{"negative spacing factor", func(c *Config) { c.SpacingFactor = -1 }, false},
		{"fallback line height below one", func(c *Config) { c.FallbackLineHeight = 0 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, false},
		{"many workers", func(c *Config) { c.Workers = 16 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			_, err := NewConverterWithConfig(config)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConverter_ProfileSpansWholeDocument(t *testing.T) {
	// Page two's heading can only be detected if the body size comes
	// from page one; page two alone has more heading-sized characters
	// than body-sized ones.
	pageOne := PageInput{
		Chars: charRun("plenty of ordinary body text to anchor the body size here", 12, 0, 40),
	}
	pageTwo := PageInput{
		Chars: append(charRun("Conclusions", 24, 0, 40), charRun("done", 12, 0, 120)...),
	}

	out := Convert([]PageInput{pageOne, pageTwo})
	assert.Contains(t, out, "# Conclusions")
}
