// Package model defines the geometric primitives and input data model shared
// by all stages of the outline pipeline: points, bounding boxes, positioned
// text fragments, pages, and documents.
//
// All coordinates are top-down: Y increases toward the bottom of the page.
// Fragment sources that produce bottom-up coordinates (standard PDF) are
// expected to flip them before constructing fragments.
package model
