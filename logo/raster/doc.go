// Package raster is the logo's software renderer.
//
// It draws into a caller-provided Target (normally the host framebuffer) and knows nothing about
// windows or input. Strokes are rasterized as capsules: every pixel whose center lies within
// half the stroke width of the segment is set, which gives round caps and round joins.
package raster
