// Package layout reconstructs logical text lines from positioned fragments
// and removes page furniture (headers, footers, page numbers, running
// titles) ahead of heading classification.
package layout
