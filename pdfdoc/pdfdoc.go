// Package pdfdoc adapts a PDF file into the model.Document fragment stream
// consumed by the outline pipeline. It is a thin boundary over the
// github.com/ledongthuc/pdf reader: positioned text runs become fragments,
// bold/italic styling is inferred from font names, and the PDF's bottom-up
// baseline coordinates are flipped to the model's top-down convention.
//
// Reader errors (corrupt file, unreadable xref) are returned unchanged; a
// readable document with no text yields an empty Document, not an error.
package pdfdoc

import (
	"fmt"
	"sort"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
)

// defaultPageHeight is used when a page carries no resolvable media box
// (US letter, in points)
const defaultPageHeight = 792.0

// gapFactor is the horizontal gap, as a multiple of the font size, above
// which two adjacent text runs are separate fragments rather than one word
const gapFactor = 0.3

// Load reads a PDF file and returns its pages as positioned fragments.
func Load(path string) (model.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var doc model.Document
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, model.Page{Number: i})
			continue
		}

		width, height := pageSize(page)
		doc.Pages = append(doc.Pages, model.Page{
			Number:    i,
			Width:     width,
			Height:    height,
			Fragments: pageFragments(page, i, height),
		})
	}

	return doc, nil
}

// pageSize resolves the page media box, walking up the page tree for
// inherited attributes
func pageSize(page pdflib.Page) (width, height float64) {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return 0, defaultPageHeight
}

// pageFragments extracts and assembles the positioned fragments of one page
func pageFragments(page pdflib.Page, pageNum int, pageHeight float64) []model.Fragment {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]pdflib.Text, len(content.Text))
	copy(runs, content.Text)

	// PDF Y grows upward; order runs top of page first, then left to right.
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var fragments []model.Fragment
	var open *pdflib.Text
	var openText string

	flush := func() {
		if open == nil || openText == "" {
			return
		}
		fragments = append(fragments, makeFragment(*open, openText, pageNum, pageHeight))
		open = nil
		openText = ""
	}

	for i := range runs {
		run := runs[i]
		if run.S == "" {
			continue
		}
		if open != nil && sameWord(*open, openText, run) {
			openText += run.S
			open.W = (run.X + run.W) - open.X
			continue
		}
		flush()
		r := run
		open = &r
		openText = run.S
	}
	flush()

	return fragments
}

// sameWord reports whether a run continues the open fragment: same
// baseline, same font and size, and no significant horizontal gap. Many
// PDF generators emit one run per character; merging keeps fragments at
// word granularity.
func sameWord(open pdflib.Text, openText string, run pdflib.Text) bool {
	if run.Font != open.Font || run.FontSize != open.FontSize {
		return false
	}
	if abs(run.Y-open.Y) > 0.2 {
		return false
	}
	gap := run.X - (open.X + open.W)
	return gap <= open.FontSize*gapFactor && gap >= -open.FontSize
}

// makeFragment converts an assembled text run into a model fragment with
// top-down coordinates
func makeFragment(run pdflib.Text, text string, pageNum int, pageHeight float64) model.Fragment {
	return model.Fragment{
		Text:     text,
		FontSize: run.FontSize,
		Bold:     IsBoldFont(run.Font),
		Italic:   IsItalicFont(run.Font),
		BBox: model.BBox{
			X:      run.X,
			Y:      pageHeight - run.Y - run.FontSize,
			Width:  run.W,
			Height: run.FontSize,
		},
		Page: pageNum,
	}
}

// abs returns the absolute value of a float64
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
