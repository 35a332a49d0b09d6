package outline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
)

// Level is the structural level assigned to a classified line
type Level int

const (
	// LevelTitle marks the document title (emitted separately, never as an entry)
	LevelTitle Level = iota
	// LevelH1 is a top-level heading
	LevelH1
	// LevelH2 is a major section heading
	LevelH2
	// LevelH3 is a subsection heading
	LevelH3
	// LevelBody is ordinary body text, excluded from the outline
	LevelBody
	// LevelDiscarded marks lines consumed elsewhere (title text, furniture)
	LevelDiscarded
)

// String returns the wire representation of the level
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "Title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelBody:
		return "Body"
	case LevelDiscarded:
		return "Discarded"
	default:
		return "Unknown"
	}
}

// IsHeading returns true for H1, H2, and H3
func (l Level) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH3
}

// Stronger returns the structurally stronger of two levels (H1 beats H2,
// every heading beats Body). Structural rules use it to raise a candidate
// without ever demoting a stronger font-based level.
func Stronger(a, b Level) Level {
	if a < b {
		return a
	}
	return b
}

// MarshalJSON encodes the level as its wire string
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its wire string
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Title":
		*l = LevelTitle
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "Body":
		*l = LevelBody
	case "Discarded":
		*l = LevelDiscarded
	default:
		return fmt.Errorf("unknown outline level %q", s)
	}
	return nil
}

// ClassifiedLine is a reconstructed line together with its assigned level
type ClassifiedLine struct {
	Line  layout.Line
	Level Level
}

// Entry is a single outline entry in document order
type Entry struct {
	// Level is H1, H2, or H3
	Level Level `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the 1-based page number the heading appears on
	Page int `json:"page"`
}

// Result is the outline of one document: the title plus the ordered
// heading entries
type Result struct {
	// Title is the detected document title ("" when none was found)
	Title string `json:"title"`

	// Outline is the ordered sequence of heading entries
	Outline []Entry `json:"outline"`
}

// NewResult creates an empty result; Outline is non-nil so it serializes
// as [] rather than null
func NewResult(title string) *Result {
	return &Result{Title: title, Outline: []Entry{}}
}

// WriteJSON writes the result as indented JSON
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
