package launcher

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zerotrace/launcher-icons/internal/platform/branding"
	apperrors "github.com/zerotrace/launcher-icons/internal/platform/errors"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// Options configures a Renderer. Zero values fall back to the branding
// defaults, except MeasureText which callers set explicitly.
type Options struct {
	Face        FaceName
	Label       string
	MeasureText bool
	Accent      color.RGBA
	Foreground  color.RGBA
}

// DefaultOptions returns the ZeroTrace launcher recipe.
func DefaultOptions() Options {
	return Options{
		Face:        FaceBasic,
		Label:       branding.LauncherLabel,
		MeasureText: true,
		Accent:      branding.AccentColor,
		Foreground:  branding.LabelColor,
	}
}

// Renderer draws launcher icons of any size with a fixed recipe.
type Renderer struct {
	opts   Options
	source faceSource
}

// NewRenderer validates opts and loads the requested face.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Face == "" {
		opts.Face = FaceBasic
	}
	opts.Label = normalizeLabel(opts.Label)
	if opts.Accent == (color.RGBA{}) {
		opts.Accent = branding.AccentColor
	}
	if opts.Foreground == (color.RGBA{}) {
		opts.Foreground = branding.LabelColor
	}
	source, err := loadFaceSource(opts.Face)
	if err != nil {
		return nil, err
	}
	return &Renderer{opts: opts, source: source}, nil
}

// Icon is a rendered launcher bitmap.
type Icon struct {
	*image.RGBA
	// LabelMeasured is false when the label was placed by the approximate
	// offset instead of its measured glyph box.
	LabelMeasured bool
}

// Render produces a size x size bitmap: a badge filling the inscribed circle
// with the label centered over it.
func (r *Renderer) Render(size int) (Icon, error) {
	if size <= 0 {
		return Icon{}, apperrors.WithMetadata(apperrors.CodeInvalidSize,
			"icon size must be positive, got "+strconv.Itoa(size),
			map[string]string{"size": strconv.Itoa(size)})
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillCircle(img, size, r.opts.Accent)

	face, err := r.source.face(size)
	if err != nil {
		return Icon{}, err
	}
	defer face.Close()

	p := placeLabel(face, r.opts.Label, size, r.opts.MeasureText)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.opts.Foreground),
		Face: face,
		Dot:  p.dot,
	}
	d.DrawString(r.opts.Label)
	return Icon{RGBA: img, LabelMeasured: p.measured}, nil
}

// fillCircle rasterizes the circle inscribed in [0,0]-[size,size].
func fillCircle(img *image.RGBA, size int, c color.RGBA) {
	rad := float32(size) / 2
	cx, cy := rad, rad
	k := float32(kappa) * rad

	var z vector.Rasterizer
	z.Reset(size, size)
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// placement is where the label baseline starts and how it was derived.
type placement struct {
	dot      fixed.Point26_6
	measured bool
}

// placeLabel centers the label's glyph box when it can be measured. Otherwise
// it uses the approximate offset (size/2 - size/4, size/2 - size/8) for the
// top-left corner and drops to the baseline by the face ascent.
func placeLabel(face font.Face, label string, size int, measure bool) placement {
	if measure {
		bounds, _ := font.BoundString(face, label)
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if w > 0 && h > 0 {
			x := (size - w) / 2
			y := (size - h) / 2
			return placement{
				dot:      fixed.P(x-bounds.Min.X.Floor(), y-bounds.Min.Y.Floor()),
				measured: true,
			}
		}
	}

	textSize := size / 4
	x := size/2 - textSize
	y := size/2 - textSize/2
	return placement{dot: fixed.P(x, y+face.Metrics().Ascent.Ceil())}
}

func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return branding.LauncherLabel
	}
	return cases.Upper(language.Und).String(label)
}
