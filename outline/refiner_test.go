package outline

import (
	"reflect"
	"testing"

	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
)

// classify wraps lines with levels for refiner tests
func classify(pairs ...interface{}) []ClassifiedLine {
	var out []ClassifiedLine
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, ClassifiedLine{
			Line:  layout.Line{Text: pairs[i].(string), Page: 1},
			Level: pairs[i+1].(Level),
		})
	}
	return out
}

func TestRefinePromotesOrphanH3(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(classify(
		"Chapter 1", LevelH1,
		"Details:", LevelH3,
	))

	want := []Entry{
		{Level: LevelH1, Text: "Chapter 1", Page: 1},
		{Level: LevelH2, Text: "Details:", Page: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want H3 promoted to H2", entries)
	}
}

func TestRefineKeepsWellFormedHierarchy(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(classify(
		"1. Introduction", LevelH1,
		"1.1 Background", LevelH2,
		"1.1.1 Prior Work", LevelH3,
	))

	levels := []Level{LevelH1, LevelH2, LevelH3}
	for i, e := range entries {
		if e.Level != levels[i] {
			t.Errorf("entry %d = %v, want %v", i, e.Level, levels[i])
		}
	}
}

func TestRefineLeadingH3NotPromoted(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(classify("Notation:", LevelH3))
	if len(entries) != 1 || entries[0].Level != LevelH3 {
		t.Errorf("entries = %+v, want a single unpromoted H3", entries)
	}
}

func TestRefinePromotionOnlyRepairsDirectSkip(t *testing.T) {
	refiner := NewRefiner()

	// The H2 between H1 and H3 makes the H3 legitimate.
	entries := refiner.Refine(classify(
		"Chapter 1", LevelH1,
		"Overview", LevelH2,
		"Details:", LevelH3,
	))
	if entries[2].Level != LevelH3 {
		t.Errorf("H3 under an H2 = %v, want H3", entries[2].Level)
	}

	// After one promotion the next H3 sits under the new H2 and stays H3.
	cascade := refiner.Refine(classify(
		"Chapter 1", LevelH1,
		"First:", LevelH3,
		"Second:", LevelH3,
	))
	if cascade[1].Level != LevelH2 || cascade[2].Level != LevelH3 {
		t.Errorf("cascade = %+v, want [H1 H2 H3]", cascade)
	}
}

func TestRefineSkipsBodyAndDiscarded(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(classify(
		"The Title", LevelDiscarded,
		"1. Introduction", LevelH1,
		"Some paragraph text", LevelBody,
		"Details:", LevelH3,
	))

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Body lines do not break the H1-to-H3 adjacency.
	if entries[1].Level != LevelH2 {
		t.Errorf("H3 after H1 with only body between = %v, want H2", entries[1].Level)
	}
}

func TestRefineDropsConsecutiveDuplicates(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(classify(
		"Results", LevelH1,
		"Results", LevelH1,
	))
	if len(entries) != 1 {
		t.Errorf("got %d entries, want duplicate dropped", len(entries))
	}

	keep := NewRefinerWithConfig(RefinerConfig{DropDuplicates: false})
	entries = keep.Refine(classify(
		"Results", LevelH1,
		"Results", LevelH1,
	))
	if len(entries) != 2 {
		t.Errorf("got %d entries, want both kept when disabled", len(entries))
	}
}

func TestRefineEmptyInput(t *testing.T) {
	refiner := NewRefiner()

	entries := refiner.Refine(nil)
	if entries == nil {
		t.Fatal("Refine must return a non-nil slice for JSON serialization")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
