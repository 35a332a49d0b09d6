package outline

import (
	"sort"

	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
)

// HierarchyConfig holds configuration for font hierarchy building
type HierarchyConfig struct {
	// ClusterTolerance groups font sizes within this distance into one
	// equivalence class. Default: 1.0
	ClusterTolerance float64

	// MatchTolerance is how far a line's font size may be from a class
	// representative and still classify at that level. Default: 1.0
	MatchTolerance float64

	// MinHeadingSize excludes size classes below this from heading
	// candidacy. Default: 10.0
	MinHeadingSize float64

	// TitleTolerance decides whether the title's font size belongs to a
	// class (which is then excluded). Default: 0.1
	TitleTolerance float64

	// BodyBucket is the bucket width used when detecting the body-text
	// size. Default: 0.5
	BodyBucket float64
}

// DefaultHierarchyConfig returns sensible default configuration
func DefaultHierarchyConfig() HierarchyConfig {
	return HierarchyConfig{
		ClusterTolerance: 1.0,
		MatchTolerance:   1.0,
		MinHeadingSize:   10.0,
		TitleTolerance:   0.1,
		BodyBucket:       0.5,
	}
}

// FontHierarchy maps clustered font sizes to heading levels H1-H3 for one
// document. It is built once per document and immutable afterward; the
// title's font size is never among its sizes.
type FontHierarchy struct {
	sizes          []float64 // class representatives, strictly descending; index 0 = H1
	matchTolerance float64

	// BodySize is the detected body-text font size (most frequent size)
	BodySize float64
}

// HierarchyBuilder derives a FontHierarchy from a document's lines
type HierarchyBuilder struct {
	config HierarchyConfig
}

// NewHierarchyBuilder creates a builder with default configuration
func NewHierarchyBuilder() *HierarchyBuilder {
	return &HierarchyBuilder{config: DefaultHierarchyConfig()}
}

// NewHierarchyBuilderWithConfig creates a builder with custom configuration
func NewHierarchyBuilderWithConfig(config HierarchyConfig) *HierarchyBuilder {
	return &HierarchyBuilder{config: config}
}

// Build analyzes the font-size distribution of all lines and assigns the
// top size classes to H1, H2, and H3. titleSize (0 when no title was found)
// identifies the class to exclude. The pass is purely statistical: it never
// reads line text. Fewer than three remaining classes populate fewer levels.
func (b *HierarchyBuilder) Build(lines []layout.Line, titleSize float64) *FontHierarchy {
	h := &FontHierarchy{
		matchTolerance: b.config.MatchTolerance,
		BodySize:       b.detectBodySize(lines),
	}

	clusters := b.clusterSizes(lines)

	for _, c := range clusters {
		if c.rep < b.config.MinHeadingSize {
			continue
		}
		if titleSize > 0 && c.contains(titleSize, b.config.TitleTolerance) {
			continue
		}
		h.sizes = append(h.sizes, c.rep)
		if len(h.sizes) == 3 {
			break
		}
	}

	return h
}

// cluster is one font-size equivalence class
type cluster struct {
	rep float64 // representative (largest member)
	min float64 // smallest member
}

// contains reports whether a size falls inside the cluster's range,
// widened by the tolerance
func (c cluster) contains(size, tolerance float64) bool {
	return size >= c.min-tolerance && size <= c.rep+tolerance
}

// clusterSizes merges the distinct dominant sizes into equivalence classes
// with a deterministic sort-and-merge over the descending size list
func (b *HierarchyBuilder) clusterSizes(lines []layout.Line) []cluster {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, line := range lines {
		if line.FontSize > 0 && !seen[line.FontSize] {
			seen[line.FontSize] = true
			sizes = append(sizes, line.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var clusters []cluster
	for _, size := range sizes {
		if len(clusters) > 0 && clusters[len(clusters)-1].min-size <= b.config.ClusterTolerance {
			clusters[len(clusters)-1].min = size
			continue
		}
		clusters = append(clusters, cluster{rep: size, min: size})
	}
	return clusters
}

// detectBodySize finds the most frequent font-size bucket across lines
func (b *HierarchyBuilder) detectBodySize(lines []layout.Line) float64 {
	if len(lines) == 0 {
		return 12.0
	}

	counts := make(map[int]int)
	for _, line := range lines {
		bucket := int(line.FontSize / b.config.BodyBucket)
		counts[bucket]++
	}

	bestBucket, bestCount := 0, 0
	for bucket, count := range counts {
		if count > bestCount || (count == bestCount && bucket < bestBucket) {
			bestBucket = bucket
			bestCount = count
		}
	}
	return float64(bestBucket) * b.config.BodyBucket
}

// Sizes returns the class representatives, strictly descending. Index 0 is
// the H1 size. The slice is a copy; the hierarchy itself never changes.
func (h *FontHierarchy) Sizes() []float64 {
	out := make([]float64, len(h.sizes))
	copy(out, h.sizes)
	return out
}

// LevelCount returns how many heading levels are populated (0 to 3)
func (h *FontHierarchy) LevelCount() int {
	return len(h.sizes)
}

// SizeFor returns the font size assigned to a heading level, if populated
func (h *FontHierarchy) SizeFor(level Level) (float64, bool) {
	idx := int(level - LevelH1)
	if idx < 0 || idx >= len(h.sizes) {
		return 0, false
	}
	return h.sizes[idx], true
}

// LevelFor returns the heading level whose size matches within the match
// tolerance, or LevelBody when none does
func (h *FontHierarchy) LevelFor(size float64) Level {
	for i, s := range h.sizes {
		if absDiff(size, s) <= h.matchTolerance {
			return LevelH1 + Level(i)
		}
	}
	return LevelBody
}
