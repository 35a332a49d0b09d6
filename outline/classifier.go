package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
)

// ClassifierConfig holds configuration for line classification
type ClassifierConfig struct {
	// MaxWords is the word count above which a candidate heading is forced
	// to body text. Default: 15
	MaxWords int

	// MaxChars is the character count above which a candidate heading is
	// forced to body text. Default: 120
	MaxChars int

	// ColonPrefixMaxWords caps the length of a trailing-colon heading.
	// Default: 10
	ColonPrefixMaxWords int

	// BulletMaxChars caps the length of a bullet heading; longer bullet
	// lines are list items, not headings. Default: 60
	BulletMaxChars int

	// StyleBoostTolerance is how far below the H3 size a bold or italic
	// line's font may be and still be boosted to H3. Default: 1.0
	StyleBoostTolerance float64

	// AllBoldMaxChars caps the length of an all-bold line treated as a
	// heading on style alone. Default: 150
	AllBoldMaxChars int
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxWords:            15,
		MaxChars:            120,
		ColonPrefixMaxWords: 10,
		BulletMaxChars:      60,
		StyleBoostTolerance: 1.0,
		AllBoldMaxChars:     150,
	}
}

// Classifier assigns a level to each line using an ordered rule cascade:
// font-size match is the base signal, structural patterns may raise it, and
// length/punctuation disqualifiers force weak candidates back to body text.
// All per-document context (font hierarchy, title) is passed into Classify
// as data, never held as shared state.
type Classifier struct {
	config ClassifierConfig
	rules  []structuralRule
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	c := &Classifier{config: config}
	// Priority order is the documented tie-break: when several structural
	// patterns match one line, the first in this table decides.
	c.rules = []structuralRule{
		{name: "numbered", apply: c.matchNumbered},
		{name: "bullet", apply: c.matchBullet},
		{name: "colon", apply: c.matchColon},
		{name: "keyword", apply: c.matchKeyword},
		{name: "style", apply: c.matchStyle},
	}
	return c
}

// structuralRule is one entry of the pattern decision table. Rules are
// independent of font size: each either proposes a level or defers.
type structuralRule struct {
	name  string
	apply func(line layout.Line, h *FontHierarchy, base Level) (Level, bool)
}

var (
	numberedPattern   = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?\s+\S`)
	numberedComma     = regexp.MustCompile(`^\d+(?:\.\d+)*\s*,`)
	chapterPattern    = regexp.MustCompile(`^(?i)(chapter|section|part|appendix)\s+\d+`)
	alphaPattern      = regexp.MustCompile(`^[A-Z][.)]\s+\S`)
	bulletPattern     = regexp.MustCompile(`^[•‣◦*\-–—]\s*\S`)
	keywordPattern    = regexp.MustCompile(`^(theorem|definition|lemma|remark|example|conjecture|proof)(\s+\d|\s*:|\s*$)`)
	sentencePeriodEnd = regexp.MustCompile(`\.\s*$`)
)

// Classify assigns a level to every filtered line, in order. Body lines are
// retained in the output (for hierarchy bookkeeping) but carry LevelBody;
// lines consumed by the title carry LevelDiscarded.
func (c *Classifier) Classify(lines []layout.Line, hierarchy *FontHierarchy, title Title) []ClassifiedLine {
	classified := make([]ClassifiedLine, 0, len(lines))
	for _, line := range lines {
		classified = append(classified, ClassifiedLine{
			Line:  line,
			Level: c.classifyLine(line, hierarchy, title),
		})
	}
	return classified
}

// classifyLine runs the rule cascade for a single line
func (c *Classifier) classifyLine(line layout.Line, hierarchy *FontHierarchy, title Title) Level {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return LevelDiscarded
	}

	// 1. Lines already consumed by the title are discarded, but only on the
	// title's own page: identical text elsewhere may be a running head or a
	// genuine heading.
	if title.Found() && line.Page == title.Page {
		if text == title.Text || strings.Contains(title.Text, text) {
			return LevelDiscarded
		}
	}

	// 2. Base candidate from font size.
	base := hierarchy.LevelFor(line.FontSize)
	candidate := base

	// 3. First matching structural pattern may raise the candidate; it
	// never demotes a stronger font-based level.
	numberedMatch := false
	for _, rule := range c.rules {
		if level, ok := rule.apply(line, hierarchy, base); ok {
			candidate = Stronger(candidate, level)
			numberedMatch = rule.name == "numbered"
			break
		}
	}

	if candidate == LevelBody {
		return LevelBody
	}

	// 4. Disqualifiers: long lines and sentence-final periods are body
	// text, unless an overwhelming heading signal holds.
	if c.disqualified(text) && !c.overwhelming(line, base, numberedMatch) {
		return LevelBody
	}

	return candidate
}

// disqualified reports whether the text is too long or sentence-like to be
// a heading
func (c *Classifier) disqualified(text string) bool {
	if len(strings.Fields(text)) > c.MaxWords() {
		return true
	}
	if len([]rune(text)) > c.config.MaxChars {
		return true
	}
	return sentencePeriodEnd.MatchString(text)
}

// MaxWords returns the configured heading word limit
func (c *Classifier) MaxWords() int {
	return c.config.MaxWords
}

// overwhelming reports whether the line carries a signal strong enough to
// survive the disqualifiers: a numbered pattern, or bold styling combined
// with an H1/H2 font match
func (c *Classifier) overwhelming(line layout.Line, base Level, numberedMatch bool) bool {
	if numberedMatch {
		return true
	}
	return line.Bold && (base == LevelH1 || base == LevelH2)
}

// matchNumbered detects numbered headings: "1.", "2.3", "1.1.1", "Chapter 3",
// "A.". The nesting depth picks the level, capped at H1.
func (c *Classifier) matchNumbered(line layout.Line, _ *FontHierarchy, _ Level) (Level, bool) {
	text := strings.TrimSpace(line.Text)

	if numberedComma.MatchString(text) {
		return LevelBody, false // "1, 2 and 3 were..." is prose
	}
	if chapterPattern.MatchString(text) {
		return LevelH1, true
	}
	if alphaPattern.MatchString(text) {
		return LevelH1, true
	}

	m := numberedPattern.FindStringSubmatch(text)
	if m == nil {
		return LevelBody, false
	}
	switch depth := strings.Count(m[1], ".") + 1; depth {
	case 1:
		return LevelH1, true
	case 2:
		return LevelH2, true
	default:
		return LevelH3, true
	}
}

// matchBullet detects bullet-prefixed headings; overlong bullet lines are
// list items and defer
func (c *Classifier) matchBullet(line layout.Line, _ *FontHierarchy, _ Level) (Level, bool) {
	text := strings.TrimSpace(line.Text)
	if !bulletPattern.MatchString(text) {
		return LevelBody, false
	}
	if len([]rune(text)) > c.config.BulletMaxChars {
		return LevelBody, false
	}
	return LevelH3, true
}

// matchColon detects short run-in headings ending in a colon
func (c *Classifier) matchColon(line layout.Line, _ *FontHierarchy, _ Level) (Level, bool) {
	text := strings.TrimSpace(line.Text)
	if !strings.HasSuffix(text, ":") {
		return LevelBody, false
	}
	prefix := strings.TrimSuffix(text, ":")
	if len(strings.Fields(prefix)) >= c.config.ColonPrefixMaxWords {
		return LevelBody, false
	}
	return LevelH3, true
}

// matchKeyword detects labeled statements common in technical documents
// ("Theorem 2.10", "Proof:", "Definition"). The text is NFKC-folded first
// so ligatures ("Deﬁnition") match their plain spellings.
func (c *Classifier) matchKeyword(line layout.Line, _ *FontHierarchy, _ Level) (Level, bool) {
	folded := strings.ToLower(norm.NFKC.String(strings.TrimSpace(line.Text)))
	if !keywordPattern.MatchString(folded) {
		return LevelBody, false
	}
	if line.Bold || line.Italic || line.WordCount() < c.config.MaxWords {
		return LevelH3, true
	}
	return LevelBody, false
}

// matchStyle applies the style boost: fully bold short lines, and bold or
// italic lines whose font size falls just below the H3 class, become H3
func (c *Classifier) matchStyle(line layout.Line, h *FontHierarchy, base Level) (Level, bool) {
	text := strings.TrimSpace(line.Text)
	chars := len([]rune(text))

	if line.AllBold {
		if chars < c.config.AllBoldMaxChars && !sentencePeriodEnd.MatchString(text) {
			return LevelH3, true
		}
		if chars < c.config.AllBoldMaxChars/3 {
			return LevelH3, true
		}
	}

	// Borderline boost: the font missed the H3 class by no more than the
	// boost tolerance, and the line is styled and heading-shaped.
	if base == LevelBody && (line.Bold || line.Italic) {
		if h3Size, ok := h.SizeFor(LevelH3); ok {
			gap := h3Size - line.FontSize
			if gap > 0 && gap <= h.matchTolerance+c.config.StyleBoostTolerance &&
				!sentencePeriodEnd.MatchString(text) && line.WordCount() < c.config.MaxWords {
				return LevelH3, true
			}
		}
	}

	return LevelBody, false
}
