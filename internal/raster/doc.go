// Package raster implements the dot grid behind every drawing and its
// braille encoding.
//
//   - [Grid]: boolean pixel grid of (height+1) x (width+1) cells
//   - [Encode]: packs 2x4 blocks of the grid into U+2800 braille characters
//   - [DrawLine]: Bresenham line between two grid points
//
// Row 0 of a grid is printed first. Graphs reverse their rows before
// encoding so that larger y values appear higher on screen.
package raster
