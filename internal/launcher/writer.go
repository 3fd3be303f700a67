package launcher

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/zerotrace/launcher-icons/internal/platform/errors"
)

// EncodePNG writes img as a maximally compressed PNG. Non-opaque images keep
// their alpha channel.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return apperrors.Wrap(apperrors.CodeEncode, "encode png", err)
	}
	return nil
}

// WritePNG creates every missing parent of path and writes img there,
// replacing any existing file.
func WritePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeOutputDir, "create output dir",
			map[string]string{"path": dir}, err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeWrite, "write icon",
			map[string]string{"path": path}, err)
	}
	return nil
}
