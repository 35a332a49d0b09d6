package model

// Fragment is the atomic unit of positioned text produced by a fragment
// source: a run of characters sharing one font, style, and position.
// Fragments are immutable values; coordinates are top-down (Y grows toward
// the bottom of the page).
type Fragment struct {
	// Text is the text content (never empty for a valid fragment)
	Text string

	// FontSize is the font size in points
	FontSize float64

	// Bold indicates a bold font face
	Bold bool

	// Italic indicates an italic font face
	Italic bool

	// BBox is the fragment's bounding box
	BBox BBox

	// Page is the 1-based page number the fragment belongs to
	Page int
}

// IsEmpty returns true if the fragment carries no text
func (f Fragment) IsEmpty() bool {
	return f.Text == ""
}
