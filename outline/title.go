package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
)

// Title is the detected document title together with the font size it was
// set in. FontSize is 0 when no title was found; classification then treats
// no line as title text and the font hierarchy excludes nothing.
type Title struct {
	// Text is the merged title text ("" when no page-1 line qualified)
	Text string

	// FontSize is the font size the title block was set in
	FontSize float64

	// Page is the page the title was found on (always 1 when found)
	Page int
}

// Found returns true if a title was detected
func (t Title) Found() bool {
	return t.Text != ""
}

// TitleConfig holds configuration for title detection
type TitleConfig struct {
	// SizeTolerance is the maximum difference between a line's font size
	// and the candidate size for the line to join the title block.
	// Default: 0.1
	SizeTolerance float64

	// MaxGapFactor limits the vertical gap between consecutive title block
	// lines, as a multiple of the candidate font size. Default: 1.5
	MaxGapFactor float64
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		SizeTolerance: 0.1,
		MaxGapFactor:  1.5,
	}
}

// TitleDetector finds the document title on the first page
type TitleDetector struct {
	config TitleConfig
}

// NewTitleDetector creates a title detector with default configuration
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{config: DefaultTitleConfig()}
}

// NewTitleDetectorWithConfig creates a title detector with custom configuration
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{config: config}
}

var (
	emailPattern       = regexp.MustCompile(`\S+@\S+`)
	affiliationPattern = regexp.MustCompile(`(?i)\b(author|presented at|university|department of|institute|college|school of)\b`)
	initialsPattern    = regexp.MustCompile(`\b[A-Z]\.\s*[A-Z]\.`)
)

// Detect scans the first page's lines for the title: the topmost contiguous
// block of lines sharing the largest font size. Blocks matching author-list
// or affiliation patterns are skipped and the next largest size is tried.
// Lines must already be in top-to-bottom order.
func (d *TitleDetector) Detect(pageOneLines []layout.Line) Title {
	if len(pageOneLines) == 0 {
		return Title{}
	}

	for _, size := range d.candidateSizes(pageOneLines) {
		block := d.blockAtSize(pageOneLines, size)
		if len(block) == 0 {
			continue
		}

		var parts []string
		for _, line := range block {
			parts = append(parts, line.Text)
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" || isAuthorBlock(text) {
			continue
		}

		return Title{Text: text, FontSize: size, Page: block[0].Page}
	}

	return Title{}
}

// candidateSizes returns the distinct font sizes on the page, largest first
func (d *TitleDetector) candidateSizes(lines []layout.Line) []float64 {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, line := range lines {
		if !seen[line.FontSize] {
			seen[line.FontSize] = true
			sizes = append(sizes, line.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}

// blockAtSize collects the contiguous block of lines at the candidate size,
// starting from the topmost such line and stopping at the first oversized
// vertical gap
func (d *TitleDetector) blockAtSize(lines []layout.Line, size float64) []layout.Line {
	var block []layout.Line
	lastBottom := 0.0

	for _, line := range lines {
		if absDiff(line.FontSize, size) >= d.config.SizeTolerance {
			continue
		}
		if len(block) > 0 && line.BBox.Top()-lastBottom >= size*d.config.MaxGapFactor {
			break
		}
		block = append(block, line)
		lastBottom = line.BBox.Bottom()
	}

	return block
}

// isAuthorBlock reports whether merged block text looks like an author list
// or affiliation rather than a title
func isAuthorBlock(text string) bool {
	folded := norm.NFKC.String(text)

	if emailPattern.MatchString(folded) {
		return true
	}
	if affiliationPattern.MatchString(folded) {
		return true
	}
	if initialsPattern.MatchString(folded) {
		return true
	}

	// Comma-separated runs of capitalized names: "A. Smith, B. Jones, C. Lee"
	if strings.Count(folded, ",") >= 2 {
		words := strings.Fields(folded)
		capitalized := 0
		for _, w := range words {
			r := []rune(w)[0]
			if unicode.IsUpper(r) {
				capitalized++
			}
		}
		if len(words) > 0 && float64(capitalized)/float64(len(words)) >= 0.7 {
			return true
		}
	}

	return false
}

// absDiff returns the absolute difference of two float64 values
func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
