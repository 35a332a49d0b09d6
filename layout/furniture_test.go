package layout

import (
	"fmt"
	"testing"

	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
)

// makeLine creates a reconstructed line for furniture tests
func makeLine(text string, y, fs float64, page int) Line {
	return Line{
		Text:     text,
		FontSize: fs,
		Y:        y,
		BBox:     model.NewBBox(50, y, 200, fs),
		Page:     page,
	}
}

// makeDoc creates a document of n empty pages with a known height
func makeDoc(n int, height float64) model.Document {
	var doc model.Document
	for i := 1; i <= n; i++ {
		doc.Pages = append(doc.Pages, model.Page{Number: i, Height: height})
	}
	return doc
}

func TestFilterPageNumbers(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(1, 792)

	tests := []struct {
		text      string
		furniture bool
	}{
		{"7", true},
		{"Page 3 of 26", true},
		{"3 of 26", true},
		{"- 12 -", true},
		{"9:22", true},
		{"12/40", true},
		{"1. Introduction", false},
		{"Results", false},
	}

	for _, tt := range tests {
		lines := []Line{makeLine(tt.text, 400, 12, 1)}
		kept := filter.Filter(lines, doc, 12)
		got := len(kept) == 0
		if got != tt.furniture {
			t.Errorf("%q: furniture = %v, want %v", tt.text, got, tt.furniture)
		}
	}
}

func TestFilterBoilerplate(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(1, 792)

	tests := []string{
		"https://example.com/paper",
		"www.example.org",
		"alice@example.edu",
		"Journal of Improbable Results 12(3)",
		"Department of Mathematics, Example University",
	}

	for _, text := range tests {
		lines := []Line{makeLine(text, 400, 12, 1)}
		if kept := filter.Filter(lines, doc, 12); len(kept) != 0 {
			t.Errorf("%q: should be discarded as boilerplate", text)
		}
	}
}

func TestFilterRepeatedRunningTitle(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(5, 792)

	// Same text in the same vertical band on 3 of 5 pages, mid-page so the
	// margin rule cannot trigger.
	var lines []Line
	for page := 1; page <= 3; page++ {
		lines = append(lines, makeLine("ACME Quarterly Report", 400, 14, page))
	}
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for page := 1; page <= 5; page++ {
		lines = append(lines, makeLine(fmt.Sprintf("Unique %s content", words[page-1]), 300, 12, page))
	}

	kept := filter.Filter(lines, doc, 12)
	for _, l := range kept {
		if l.Text == "ACME Quarterly Report" {
			t.Fatal("line repeated on 3 of 5 pages in the same band should be furniture on every occurrence")
		}
	}
	if len(kept) != 5 {
		t.Errorf("kept %d lines, want the 5 unique ones", len(kept))
	}
}

func TestFilterRepetitionNeedsSameBand(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(5, 792)

	// Same text but at widely different vertical positions: a real heading
	// reused across pages, not a running title.
	lines := []Line{
		makeLine("Discussion", 120, 14, 1),
		makeLine("Discussion", 420, 14, 2),
		makeLine("Discussion", 620, 14, 3),
	}

	kept := filter.Filter(lines, doc, 12)
	if len(kept) != 3 {
		t.Errorf("kept %d lines, want all 3 (different bands)", len(kept))
	}
}

func TestFilterMarginBandSmallFont(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(1, 800) // margin band: top 120, bottom 680

	lines := []Line{
		makeLine("draft watermark text", 40, 9, 1),    // top margin, small font
		makeLine("Conclusions", 40, 18, 1),            // top margin, heading-sized font
		makeLine("ordinary body sentence", 400, 9, 1), // small font, mid page
	}

	kept := filter.Filter(lines, doc, 10)
	if len(kept) != 2 {
		t.Fatalf("kept %d lines, want 2", len(kept))
	}
	if kept[0].Text != "Conclusions" || kept[1].Text != "ordinary body sentence" {
		t.Errorf("kept = [%q, %q], want heading and mid-page body", kept[0].Text, kept[1].Text)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	filter := NewFurnitureFilter()
	doc := makeDoc(1, 792)

	lines := []Line{
		makeLine("First heading", 200, 16, 1),
		makeLine("42", 400, 10, 1),
		makeLine("Second heading", 500, 16, 1),
	}

	kept := filter.Filter(lines, doc, 12)
	if len(kept) != 2 || kept[0].Text != "First heading" || kept[1].Text != "Second heading" {
		t.Errorf("kept = %+v, want the two headings in order", kept)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Page 3 of 26", "page # of #"},
		{"  Mixed   Spacing  ", "mixed spacing"},
		{"Deﬁnition 2", "definition #"}, // ﬁ ligature folds to "fi"
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
