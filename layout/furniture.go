package layout

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
)

// FurnitureConfig holds configuration for furniture filtering
type FurnitureConfig struct {
	// BandHeight is the height of a vertical band for the repetition census.
	// Lines whose normalized text repeats across pages in the same band
	// (or an adjacent one) are running headers/footers.
	// Default: 24 points
	BandHeight float64

	// RepeatRatio is the fraction of pages a (text, band) pair must appear
	// on to be considered a running title. Default: 0.3
	RepeatRatio float64

	// MinRepeatPages is the minimum number of pages a (text, band) pair
	// must appear on regardless of ratio. Default: 3
	MinRepeatPages int

	// MarginBand is the fraction of the page's vertical extent treated as
	// the top and bottom margin zones. Default: 0.15
	MarginBand float64

	// BodySizeSlack is added to the body font size when deciding whether a
	// margin-zone line is small enough to be furniture. Default: 0.1
	BodySizeSlack float64
}

// DefaultFurnitureConfig returns sensible default configuration
func DefaultFurnitureConfig() FurnitureConfig {
	return FurnitureConfig{
		BandHeight:     24.0,
		RepeatRatio:    0.3,
		MinRepeatPages: 3,
		MarginBand:     0.15,
		BodySizeSlack:  0.1,
	}
}

// FurnitureFilter removes page furniture (page numbers, running titles,
// boilerplate, small margin text) from reconstructed lines. The filter is
// built per document: it first takes a census of where each normalized line
// text occurs, then discards matching lines. All state is scoped to one
// Filter call, so independent documents can be filtered concurrently with
// separate filters.
type FurnitureFilter struct {
	config FurnitureConfig
}

// NewFurnitureFilter creates a furniture filter with default configuration
func NewFurnitureFilter() *FurnitureFilter {
	return &FurnitureFilter{config: DefaultFurnitureConfig()}
}

// NewFurnitureFilterWithConfig creates a furniture filter with custom configuration
func NewFurnitureFilterWithConfig(config FurnitureConfig) *FurnitureFilter {
	return &FurnitureFilter{config: config}
}

var (
	// page-number shapes, matched against normalized text (digit runs are "#")
	pageNumberPatterns = []string{
		"#",
		"page #",
		"page # of #",
		"# page # of #",
		"# of #",
		"- # -",
		"#/#",
		"#:#",
		"p. #",
		"p.#",
		"pg #",
		"pg. #",
	}

	// runs of digits, dots, and dashes with nothing else (figure refs, folios)
	numericRunPattern = regexp.MustCompile(`^[#\s.\-—–]+$`)

	boilerplatePattern = regexp.MustCompile(`https?://|www\.|@|\b(journal of|proceedings of|department of|university|institute|college|conference on)\b`)
)

// censusKey identifies a normalized line text at a vertical band
type censusKey struct {
	text string
	band int
}

// Filter removes furniture lines, preserving the order of the rest.
// bodySize is the document's detected body-text font size; it gates the
// margin-band rule so that large headings near the page edges survive.
func (f *FurnitureFilter) Filter(lines []Line, doc model.Document, bodySize float64) []Line {
	census := f.takeCensus(lines)
	pageCount := doc.PageCount()

	minRepeat := f.config.MinRepeatPages
	if ratioMin := int(math.Ceil(float64(pageCount) * f.config.RepeatRatio)); ratioMin > minRepeat {
		minRepeat = ratioMin
	}

	var kept []Line
	for _, line := range lines {
		if f.isFurniture(line, doc, bodySize, census, minRepeat) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// isFurniture reports whether a single line matches any furniture rule
func (f *FurnitureFilter) isFurniture(line Line, doc model.Document, bodySize float64, census map[censusKey]map[int]bool, minRepeat int) bool {
	normalized := NormalizeText(line.Text)

	if isPageNumberText(normalized) {
		return true
	}

	if boilerplatePattern.MatchString(normalized) {
		return true
	}

	if f.repeatedPageCount(normalized, f.band(line.Y), census) >= minRepeat {
		return true
	}

	if f.inMarginBand(line, doc) && line.FontSize <= bodySize+f.config.BodySizeSlack {
		return true
	}

	return false
}

// takeCensus records, per normalized text and vertical band, the set of
// pages an equivalent line occurs on
func (f *FurnitureFilter) takeCensus(lines []Line) map[censusKey]map[int]bool {
	census := make(map[censusKey]map[int]bool)
	for _, line := range lines {
		text := NormalizeText(line.Text)
		if text == "" {
			continue
		}
		key := censusKey{text: text, band: f.band(line.Y)}
		if census[key] == nil {
			census[key] = make(map[int]bool)
		}
		census[key][line.Page] = true
	}
	return census
}

// repeatedPageCount counts the distinct pages on which the text occurs in
// the given band or an adjacent one (the band tolerance)
func (f *FurnitureFilter) repeatedPageCount(text string, band int, census map[censusKey]map[int]bool) int {
	pages := make(map[int]bool)
	for b := band - 1; b <= band+1; b++ {
		for page := range census[censusKey{text: text, band: b}] {
			pages[page] = true
		}
	}
	return len(pages)
}

// band maps a vertical position to its census band
func (f *FurnitureFilter) band(y float64) int {
	if f.config.BandHeight <= 0 {
		return 0
	}
	return int(y / f.config.BandHeight)
}

// inMarginBand reports whether the line sits in the top or bottom margin
// zone of its page's vertical extent
func (f *FurnitureFilter) inMarginBand(line Line, doc model.Document) bool {
	page := doc.PageByNumber(line.Page)
	if page == nil {
		return false
	}
	top, bottom := page.Extent()
	extent := bottom - top
	if extent <= 0 {
		return false
	}
	margin := extent * f.config.MarginBand
	return line.BBox.Top() < top+margin || line.BBox.Bottom() > bottom-margin
}

// isPageNumberText reports whether normalized text is a pure page-number
// pattern
func isPageNumberText(normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, pattern := range pageNumberPatterns {
		if normalized == pattern {
			return true
		}
	}
	// Short digit/dash runs like "12 - 14" or "3." are folios, not content
	return len(normalized) < 10 && strings.Contains(normalized, "#") && numericRunPattern.MatchString(normalized)
}

var digitRunPattern = regexp.MustCompile(`\d+`)
var spaceRunPattern = regexp.MustCompile(`\s+`)

// NormalizeText canonicalizes a line's text for census and pattern matching:
// NFKC folding (so ligatures like ﬁ compare equal to their letters),
// lowercasing, whitespace collapsing, and digit runs replaced with "#" so
// that "Page 3" and "Page 17" census together.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = spaceRunPattern.ReplaceAllString(s, " ")
	return digitRunPattern.ReplaceAllString(s, "#")
}
