// Package outliner infers a hierarchical outline (document title plus
// H1/H2/H3 headings with page numbers) from the raw visual layout of a
// page-based document, using only heuristics: no trained model, no network,
// and no reliance on embedded table-of-contents metadata.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	result.WriteJSON(os.Stdout)
//
// With options:
//
//	result, err := outliner.FromDocument(doc).
//	    MaxPages(50).
//	    WithClassifierConfig(cfg).
//	    Outline()
//
// For advanced use cases the lower-level layout and outline packages are
// also available.
package outliner

import (
	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
	"github.com/kk3747/Adobe-Hackathon-Round1a/model"
	"github.com/kk3747/Adobe-Hackathon-Round1a/outline"
	"github.com/kk3747/Adobe-Hackathon-Round1a/pdfdoc"
)

// Extractor runs the outline pipeline over one document with fluent
// configuration. Extractors are single-use and independent: each carries
// its own per-document state, so separate documents may be processed on
// separate extractors concurrently.
type Extractor struct {
	filename string
	doc      *model.Document
	options  ExtractOptions
}

// Open prepares an extractor for a PDF file. The file is read when a
// terminal operation such as Outline() is called.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument prepares an extractor for an already-loaded document, such
// as one produced by a custom fragment source.
func FromDocument(doc model.Document) *Extractor {
	return &Extractor{
		doc:     &doc,
		options: defaultOptions(),
	}
}

// Outline runs the whole pipeline and returns the document outline.
// A document with no pages or no fragments yields an empty outline and an
// empty title, not an error; only fragment-source failures are returned.
func (e *Extractor) Outline() (*outline.Result, error) {
	doc, err := e.load()
	if err != nil {
		return nil, err
	}

	if e.options.maxPages > 0 && len(doc.Pages) > e.options.maxPages {
		doc.Pages = doc.Pages[:e.options.maxPages]
	}

	lines := layout.NewLineDetectorWithConfig(e.options.lineConfig).Detect(doc)

	title := outline.NewTitleDetectorWithConfig(e.options.titleConfig).
		Detect(layout.PageLines(lines, 1))

	hierarchy := outline.NewHierarchyBuilderWithConfig(e.options.hierarchyConfig).
		Build(lines, title.FontSize)

	filtered := layout.NewFurnitureFilterWithConfig(e.options.furnitureConfig).
		Filter(lines, doc, hierarchy.BodySize)

	classified := outline.NewClassifierWithConfig(e.options.classifierConfig).
		Classify(filtered, hierarchy, title)

	result := outline.NewResult(title.Text)
	result.Outline = outline.NewRefinerWithConfig(e.options.refinerConfig).
		Refine(classified)

	return result, nil
}

// load resolves the input document, reading the PDF file if needed
func (e *Extractor) load() (model.Document, error) {
	if e.doc != nil {
		// Copy the page slice so a MaxPages truncation cannot touch the
		// caller's document.
		doc := model.Document{Pages: make([]model.Page, len(e.doc.Pages))}
		copy(doc.Pages, e.doc.Pages)
		return doc, nil
	}
	return pdfdoc.Load(e.filename)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
