package outliner

import (
	"testing"

	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
	"github.com/kk3747/Adobe-Hackathon-Round1a/outline"
)

// frag creates a positioned text fragment for pipeline tests
func frag(text string, x, y, fs float64, page int) model.Fragment {
	return model.Fragment{
		Text:     text,
		FontSize: fs,
		BBox:     model.NewBBox(x, y, 200, fs),
		Page:     page,
	}
}

// reportDoc builds a small two-page document with a title, numbered
// headings, body text, and a page number
func reportDoc() model.Document {
	return model.Document{Pages: []model.Page{
		{
			Number: 1, Width: 612, Height: 792,
			Fragments: []model.Fragment{
				frag("Project", 100, 60, 24, 1),
				frag("Report", 200, 60, 24, 1),
				frag("1. Introduction", 50, 150, 18, 1),
				frag("Background text.", 50, 200, 12, 1),
			},
		},
		{
			Number: 2, Width: 612, Height: 792,
			Fragments: []model.Fragment{
				frag("2. Methods", 50, 100, 18, 2),
				frag("Sampling:", 50, 160, 12, 2),
				frag("7", 300, 760, 10, 2),
			},
		},
	}}
}

func TestOutlineEndToEnd(t *testing.T) {
	result, err := FromDocument(reportDoc()).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	if result.Title != "Project Report" {
		t.Errorf("title = %q, want %q", result.Title, "Project Report")
	}

	want := []outline.Entry{
		{Level: outline.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: outline.LevelH1, Text: "2. Methods", Page: 2},
		{Level: outline.LevelH2, Text: "Sampling:", Page: 2},
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("outline = %+v, want %d entries", result.Outline, len(want))
	}
	for i, e := range result.Outline {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestOutlineEmptyDocument(t *testing.T) {
	result, err := FromDocument(model.Document{}).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if result.Title != "" {
		t.Errorf("title = %q, want empty", result.Title)
	}
	if result.Outline == nil || len(result.Outline) != 0 {
		t.Errorf("outline = %+v, want empty non-nil slice", result.Outline)
	}
}

func TestOutlineMaxPages(t *testing.T) {
	result, err := FromDocument(reportDoc()).MaxPages(1).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	for _, e := range result.Outline {
		if e.Page > 1 {
			t.Errorf("entry %+v is past the page limit", e)
		}
	}
	if len(result.Outline) != 1 || result.Outline[0].Text != "1. Introduction" {
		t.Errorf("outline = %+v, want only the page-1 heading", result.Outline)
	}
}

func TestOutlineDoesNotMutateCallerDocument(t *testing.T) {
	doc := reportDoc()
	if _, err := FromDocument(doc).MaxPages(1).Outline(); err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Errorf("caller document has %d pages after extraction, want 2", len(doc.Pages))
	}
}

func TestOutlineDeterministic(t *testing.T) {
	doc := reportDoc()
	first, err := FromDocument(doc).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	second, err := FromDocument(doc).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	if first.Title != second.Title || len(first.Outline) != len(second.Outline) {
		t.Fatal("repeated extraction disagreed")
	}
	for i := range first.Outline {
		if first.Outline[i] != second.Outline[i] {
			t.Errorf("entry %d differs between runs", i)
		}
	}
}
