package model

// Page holds the text fragments of a single page in source order.
// Width and Height describe the page media box when the source knows it;
// both may be zero, in which case consumers fall back to the content extent.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width is the page width in points (0 if unknown)
	Width float64

	// Height is the page height in points (0 if unknown)
	Height float64

	// Fragments are the page's text fragments in source order
	Fragments []Fragment
}

// Extent returns the vertical extent of the page as (top, bottom).
// When the page height is known it is used directly; otherwise the extent
// is computed from the fragments, matching how layout analysis measures
// margin bands on sources that do not report a media box.
func (p Page) Extent() (top, bottom float64) {
	if p.Height > 0 {
		return 0, p.Height
	}
	if len(p.Fragments) == 0 {
		return 0, 0
	}
	top = p.Fragments[0].BBox.Top()
	bottom = p.Fragments[0].BBox.Bottom()
	for _, f := range p.Fragments[1:] {
		if f.BBox.Top() < top {
			top = f.BBox.Top()
		}
		if f.BBox.Bottom() > bottom {
			bottom = f.BBox.Bottom()
		}
	}
	return top, bottom
}

// Document is one document's pages in order. Documents are independent:
// nothing derived from one document is shared with another.
type Document struct {
	// Pages are the document's pages in order
	Pages []Page
}

// PageCount returns the number of pages
func (d Document) PageCount() int {
	return len(d.Pages)
}

// IsEmpty returns true if the document has no fragments at all
func (d Document) IsEmpty() bool {
	for _, p := range d.Pages {
		if len(p.Fragments) > 0 {
			return false
		}
	}
	return true
}

// PageByNumber returns the page with the given 1-based number, or nil
func (d Document) PageByNumber(num int) *Page {
	for i := range d.Pages {
		if d.Pages[i].Number == num {
			return &d.Pages[i]
		}
	}
	return nil
}
