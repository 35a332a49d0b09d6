package layout

import (
	"sort"
	"strings"

	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
)

// Line represents a single reconstructed line of text on a page.
// A Line is a read-only projection over its fragments, built once per page.
type Line struct {
	// Fragments are the text fragments that make up this line (sorted left to right)
	Fragments []model.Fragment

	// Text is the assembled text content of the line
	Text string

	// FontSize is the dominant font size of the line: the most frequent
	// fragment size, ties resolved toward the larger size
	FontSize float64

	// Bold is true if any fragment in the line is bold
	Bold bool

	// AllBold is true if every fragment in the line is bold
	AllBold bool

	// Italic is true if any fragment in the line is italic
	Italic bool

	// BBox is the bounding box of the line
	BBox model.BBox

	// Y is the representative vertical position (top edge of the line)
	Y float64

	// Page is the 1-based page number the line belongs to
	Page int

	// Index is the line's position on its page (0-based, top to bottom)
	Index int
}

// WordCount returns the number of whitespace-separated words in the line
func (l Line) WordCount() int {
	return len(strings.Fields(l.Text))
}

// IsEmpty returns true if the line has no text content
func (l Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// LineConfig holds configuration for line reconstruction
type LineConfig struct {
	// YTolerance is the maximum vertical distance between a fragment's top
	// edge and the running mean of a line for the fragment to join it.
	// Default: 3.0 points (roughly a third of a typical line height)
	YTolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 3.0,
	}
}

// LineDetector groups positioned fragments into logical text lines
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{config: DefaultLineConfig()}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{config: config}
}

// Detect reconstructs lines for every page of a document, in page order.
// The result is a single flat slice; each line carries its page number.
func (d *LineDetector) Detect(doc model.Document) []Line {
	var lines []Line
	for _, page := range doc.Pages {
		lines = append(lines, d.DetectPage(page)...)
	}
	return lines
}

// DetectPage reconstructs the lines of a single page, top to bottom.
// A page with zero fragments yields zero lines. Detection is deterministic:
// the same fragments always produce byte-identical lines.
func (d *LineDetector) DetectPage(page model.Page) []Line {
	if len(page.Fragments) == 0 {
		return nil
	}

	groups := d.groupIntoLines(page.Fragments)

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		line := buildLine(group, page.Number)
		if line.IsEmpty() {
			continue
		}
		line.Index = len(lines)
		lines = append(lines, line)
	}

	return lines
}

// groupIntoLines groups fragments into lines by vertical proximity.
// Fragments are sorted top to bottom first; same-line fragments keep their
// source order until the per-line X sort.
func (d *LineDetector) groupIntoLines(fragments []model.Fragment) [][]model.Fragment {
	sorted := make([]model.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].BBox.Y - sorted[j].BBox.Y
		if absFloat(yDiff) > d.config.YTolerance {
			return yDiff < 0 // smaller Y first (top of page)
		}
		return false // same line, preserve source order
	})

	var groups [][]model.Fragment
	var current []model.Fragment

	for _, frag := range sorted {
		if frag.IsEmpty() {
			continue
		}
		if len(current) == 0 {
			current = append(current, frag)
			continue
		}

		// Compare against the running mean Y of the open line so a slightly
		// sloped baseline does not split one visual line in two.
		if absFloat(frag.BBox.Y-meanY(current)) <= d.config.YTolerance {
			current = append(current, frag)
		} else {
			groups = append(groups, sortByX(current))
			current = []model.Fragment{frag}
		}
	}
	if len(current) > 0 {
		groups = append(groups, sortByX(current))
	}

	return groups
}

// sortByX orders a line's fragments left to right
func sortByX(fragments []model.Fragment) []model.Fragment {
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].BBox.X < fragments[j].BBox.X
	})
	return fragments
}

// meanY returns the mean top-edge Y of a group of fragments
func meanY(fragments []model.Fragment) float64 {
	total := 0.0
	for _, f := range fragments {
		total += f.BBox.Y
	}
	return total / float64(len(fragments))
}

// buildLine assembles a Line from a left-to-right ordered fragment group
func buildLine(fragments []model.Fragment, pageNum int) Line {
	line := Line{
		Fragments: fragments,
		Page:      pageNum,
		AllBold:   true,
	}

	var parts []string
	for _, f := range fragments {
		text := strings.TrimSpace(f.Text)
		if text != "" {
			parts = append(parts, text)
		}
		line.BBox = line.BBox.Union(f.BBox)
		if f.Bold {
			line.Bold = true
		} else {
			line.AllBold = false
		}
		if f.Italic {
			line.Italic = true
		}
	}
	line.Text = strings.Join(parts, " ")
	line.Y = line.BBox.Top()
	line.FontSize = dominantFontSize(fragments)

	if len(fragments) == 0 {
		line.AllBold = false
	}

	return line
}

// dominantFontSize returns the most frequent fragment size in the line,
// resolving ties toward the larger size
func dominantFontSize(fragments []model.Fragment) float64 {
	if len(fragments) == 0 {
		return 0
	}

	counts := make(map[float64]int)
	for _, f := range fragments {
		counts[f.FontSize]++
	}

	best := 0.0
	bestCount := 0
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size > best) {
			best = size
			bestCount = count
		}
	}
	return best
}

// PageLines returns the lines belonging to the given 1-based page number,
// preserving order
func PageLines(lines []Line, pageNum int) []Line {
	var result []Line
	for _, l := range lines {
		if l.Page == pageNum {
			result = append(result, l)
		}
	}
	return result
}

// absFloat returns the absolute value of a float64
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
