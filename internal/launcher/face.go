package launcher

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	apperrors "github.com/zerotrace/launcher-icons/internal/platform/errors"
)

// FaceName selects the typeface used for the monogram.
type FaceName string

const (
	// FaceBasic is a fixed 7x13 bitmap face; it ignores the icon size.
	FaceBasic FaceName = "basic"
	// FaceGoRegular scales Go Regular to a third of the icon size.
	FaceGoRegular FaceName = "goregular"
	// FaceGoBold scales Go Bold to a third of the icon size.
	FaceGoBold FaceName = "gobold"
)

// ParseFace validates a face name from configuration.
func ParseFace(name string) (FaceName, error) {
	switch face := FaceName(strings.ToLower(strings.TrimSpace(name))); face {
	case "":
		return FaceBasic, nil
	case FaceBasic, FaceGoRegular, FaceGoBold:
		return face, nil
	default:
		return "", apperrors.WithMetadata(apperrors.CodeInvalidFace,
			fmt.Sprintf("unknown face %q", name), map[string]string{"face": name})
	}
}

// faceSource builds per-size faces. A nil font means the bitmap face.
type faceSource struct {
	name FaceName
	font *opentype.Font
}

func loadFaceSource(name FaceName) (faceSource, error) {
	var ttf []byte
	switch name {
	case FaceBasic:
		return faceSource{name: name}, nil
	case FaceGoRegular:
		ttf = goregular.TTF
	case FaceGoBold:
		ttf = gobold.TTF
	default:
		return faceSource{}, apperrors.WithMetadata(apperrors.CodeInvalidFace,
			fmt.Sprintf("unknown face %q", name), map[string]string{"face": string(name)})
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return faceSource{}, apperrors.Wrap(apperrors.CodeFontLoad, "parse "+string(name), err)
	}
	return faceSource{name: name, font: parsed}, nil
}

// face returns a face for an icon of the given pixel size. Callers close it.
func (s faceSource) face(size int) (font.Face, error) {
	if s.font == nil {
		return basicfont.Face7x13, nil
	}
	px := size / 3
	if px < 1 {
		px = 1
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeFontLoad, "create "+string(s.name)+" face", err)
	}
	return face, nil
}
