// Package viz renders point clouds and signal summaries for the terminal.
//
// The central type is [Canvas], a braille-cell raster giving 2x4 sub-pixels
// per character, dense enough to draw a recognizable bifurcation diagram in
// an 80-column terminal. [RenderBifurcation] maps a sweep result onto a
// canvas with an optional focus marker, and the style helpers wrap values in
// the lipgloss theme shared with the dashboard.
package viz
