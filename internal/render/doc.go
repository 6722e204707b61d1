// Package render turns a finished maze into text.
//
// Rendering is a read-only consumer of the grid: it maps each cell state to
// a glyph and emits one line per row, top to bottom. It never mutates the
// grid and handles the Marked state that only consumers apply.
package render
