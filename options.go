package outliner

import (
	"github.com/kk3747/Adobe-Hackathon-Round1a/layout"
	"github.com/kk3747/Adobe-Hackathon-Round1a/outline"
)

// ExtractOptions holds the per-stage configuration for one extraction.
// All thresholds are fixed tuning constants with documented defaults; none
// are negotiated at runtime.
type ExtractOptions struct {
	maxPages int

	lineConfig       layout.LineConfig
	furnitureConfig  layout.FurnitureConfig
	titleConfig      outline.TitleConfig
	hierarchyConfig  outline.HierarchyConfig
	classifierConfig outline.ClassifierConfig
	refinerConfig    outline.RefinerConfig
}

// defaultOptions returns the default extraction options
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:         0, // 0 means all pages
		lineConfig:       layout.DefaultLineConfig(),
		furnitureConfig:  layout.DefaultFurnitureConfig(),
		titleConfig:      outline.DefaultTitleConfig(),
		hierarchyConfig:  outline.DefaultHierarchyConfig(),
		classifierConfig: outline.DefaultClassifierConfig(),
		refinerConfig:    outline.DefaultRefinerConfig(),
	}
}

// MaxPages limits processing to the first n pages (0 means all pages)
func (e *Extractor) MaxPages(n int) *Extractor {
	e.options.maxPages = n
	return e
}

// WithLineConfig overrides the line reconstruction configuration
func (e *Extractor) WithLineConfig(config layout.LineConfig) *Extractor {
	e.options.lineConfig = config
	return e
}

// WithFurnitureConfig overrides the furniture filter configuration
func (e *Extractor) WithFurnitureConfig(config layout.FurnitureConfig) *Extractor {
	e.options.furnitureConfig = config
	return e
}

// WithTitleConfig overrides the title detector configuration
func (e *Extractor) WithTitleConfig(config outline.TitleConfig) *Extractor {
	e.options.titleConfig = config
	return e
}

// WithHierarchyConfig overrides the font hierarchy configuration
func (e *Extractor) WithHierarchyConfig(config outline.HierarchyConfig) *Extractor {
	e.options.hierarchyConfig = config
	return e
}

// WithClassifierConfig overrides the classifier configuration
func (e *Extractor) WithClassifierConfig(config outline.ClassifierConfig) *Extractor {
	e.options.classifierConfig = config
	return e
}

// WithRefinerConfig overrides the refiner configuration
func (e *Extractor) WithRefinerConfig(config outline.RefinerConfig) *Extractor {
	e.options.refinerConfig = config
	return e
}
