// Package outline derives a document outline (title plus H1/H2/H3 entries
// with page numbers) from reconstructed text lines.
//
// The pipeline is a cascade of per-document stages: title detection on
// page 1, font-size hierarchy building, rule-based line classification, and
// hierarchy refinement. Every stage takes its context (title, hierarchy)
// as explicit data, so independent documents can be processed concurrently
// by running separate pipelines.
package outline
