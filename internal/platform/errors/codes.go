// Package errors provides structured error handling for icon generation.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Rendering errors
	CodeInvalidSize Code = "INVALID_SIZE"
	CodeInvalidFace Code = "INVALID_FACE"
	CodeFontLoad    Code = "FONT_LOAD"

	// Selection errors
	CodeInvalidBucket Code = "INVALID_BUCKET"

	// Output errors
	CodeOutputDir Code = "OUTPUT_DIR"
	CodeEncode    Code = "ENCODE"
	CodeWrite     Code = "WRITE"
)
