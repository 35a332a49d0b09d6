package outline

// RefinerConfig holds configuration for hierarchy refinement
type RefinerConfig struct {
	// DropDuplicates removes consecutive entries with identical text on
	// the same page (a heading split across classification passes).
	// Default: true
	DropDuplicates bool
}

// DefaultRefinerConfig returns sensible default configuration
func DefaultRefinerConfig() RefinerConfig {
	return RefinerConfig{
		DropDuplicates: true,
	}
}

// Refiner post-processes the classified sequence into the final outline,
// repairing the one level-skip pattern the pipeline produces: an H3
// directly following an H1 with no H2 between them. It performs no other
// promotions or demotions.
type Refiner struct {
	config RefinerConfig
}

// NewRefiner creates a refiner with default configuration
func NewRefiner() *Refiner {
	return &Refiner{config: DefaultRefinerConfig()}
}

// NewRefinerWithConfig creates a refiner with custom configuration
func NewRefinerWithConfig(config RefinerConfig) *Refiner {
	return &Refiner{config: config}
}

// Refine walks the classified lines in document order and emits the final
// outline entries. Body and discarded lines never appear; an H3 whose
// immediately preceding emitted entry is H1 (so no H2 has occurred between
// them) is promoted to H2. The rolling {last H1, last H2} memory is local
// to the call: nothing leaks across documents.
func (r *Refiner) Refine(classified []ClassifiedLine) []Entry {
	entries := []Entry{}
	lastH1 := -1
	lastH2 := -1

	for _, cl := range classified {
		if !cl.Level.IsHeading() {
			continue
		}

		entry := Entry{
			Level: cl.Level,
			Text:  cl.Line.Text,
			Page:  cl.Line.Page,
		}

		if r.config.DropDuplicates && len(entries) > 0 {
			prev := entries[len(entries)-1]
			if prev.Text == entry.Text && prev.Page == entry.Page {
				continue
			}
		}

		if entry.Level == LevelH3 && lastH1 > lastH2 && lastH1 == len(entries)-1 {
			entry.Level = LevelH2
		}

		switch entry.Level {
		case LevelH1:
			lastH1 = len(entries)
		case LevelH2:
			lastH2 = len(entries)
		}
		entries = append(entries, entry)
	}

	return entries
}
