// Package launcher renders and writes launcher icon bitmaps.
//
// A Renderer draws a filled badge inscribed in a square canvas and centers a
// short monogram over it. WritePNG serializes the result, creating parent
// directories on demand.
package launcher
