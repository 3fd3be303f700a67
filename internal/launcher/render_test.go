package launcher

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/zerotrace/launcher-icons/internal/platform/branding"
	apperrors "github.com/zerotrace/launcher-icons/internal/platform/errors"
)

var bucketSizes = []int{48, 72, 96, 144, 192}

func mustRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func mustRender(t *testing.T, r *Renderer, size int) *image.RGBA {
	t.Helper()
	icon, err := r.Render(size)
	if err != nil {
		t.Fatalf("render %d: %v", size, err)
	}
	return icon.RGBA
}

// squareDistances returns the nearest and farthest distance from the circle
// centre to any point of the pixel square at (x, y).
func squareDistances(x, y int, rad float64) (near, far float64) {
	axis := func(lo float64) (float64, float64) {
		hi := lo + 1
		var n float64
		switch {
		case rad < lo:
			n = lo - rad
		case rad > hi:
			n = rad - hi
		}
		return n, math.Max(math.Abs(lo-rad), math.Abs(hi-rad))
	}
	nx, fx := axis(float64(x))
	ny, fy := axis(float64(y))
	return math.Hypot(nx, ny), math.Hypot(fx, fy)
}

func TestRenderDimensionsMatchSize(t *testing.T) {
	r := mustRenderer(t, DefaultOptions())
	for _, size := range bucketSizes {
		img := mustRender(t, r, size)
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Errorf("size %d: bounds = %v", size, got)
		}
	}
}

func TestRenderCircleCoverage(t *testing.T) {
	for _, face := range []FaceName{FaceBasic, FaceGoRegular, FaceGoBold} {
		for _, measure := range []bool{true, false} {
			opts := DefaultOptions()
			opts.Face = face
			opts.MeasureText = measure
			r := mustRenderer(t, opts)
			for _, size := range bucketSizes {
				img := mustRender(t, r, size)
				rad := float64(size) / 2
				for y := 0; y < size; y++ {
					for x := 0; x < size; x++ {
						near, far := squareDistances(x, y, rad)
						a := img.RGBAAt(x, y).A
						if near > rad && a != 0 {
							t.Fatalf("face %s size %d measure %v: pixel (%d,%d) outside circle has alpha %d", face, size, measure, x, y, a)
						}
						if far < rad-0.5 && a != 255 {
							t.Fatalf("face %s size %d measure %v: pixel (%d,%d) inside circle has alpha %d", face, size, measure, x, y, a)
						}
					}
				}
				if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
					t.Errorf("face %s size %d: corner pixel = %+v, want transparent", face, size, got)
				}
			}
		}
	}
}

func TestRenderBitmapFaceKeepsCentreAccent(t *testing.T) {
	for _, measure := range []bool{true, false} {
		opts := DefaultOptions()
		opts.MeasureText = measure
		r := mustRenderer(t, opts)
		for _, size := range bucketSizes {
			img := mustRender(t, r, size)
			if got := img.RGBAAt(size/2, size/2); got != branding.AccentColor {
				t.Errorf("size %d measure %v: centre pixel = %+v, want accent", size, measure, got)
			}
		}
	}
}

func whiteBounds(img *image.RGBA) image.Rectangle {
	var box image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == branding.LabelColor {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

// hasLabelInk reports whether any pixel is mostly covered by the white label.
// Antialiased faces rarely produce pure white at small sizes.
func hasLabelInk(img *image.RGBA) bool {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] >= 128 && img.Pix[i+3] == 255 {
			return true
		}
	}
	return false
}

func TestRenderCentersMeasuredLabel(t *testing.T) {
	r := mustRenderer(t, DefaultOptions())
	for _, size := range bucketSizes {
		icon, err := r.Render(size)
		if err != nil {
			t.Fatalf("render %d: %v", size, err)
		}
		if !icon.LabelMeasured {
			t.Fatalf("size %d: expected measured placement", size)
		}
		img := icon.RGBA
		// Face7x13 reports a 13x13 box for "ZT".
		origin := (size - 13) / 2
		cell := image.Rect(origin, origin, origin+13, origin+13)
		got := whiteBounds(img)
		if got.Empty() {
			t.Fatalf("size %d: no label pixels drawn", size)
		}
		if !got.In(cell) {
			t.Errorf("size %d: label pixels %v escape measured box %v", size, got, cell)
		}
	}
}

func TestRenderFallbackWithoutMeasurement(t *testing.T) {
	opts := DefaultOptions()
	opts.MeasureText = false
	r := mustRenderer(t, opts)
	for _, size := range bucketSizes {
		icon, err := r.Render(size)
		if err != nil {
			t.Fatalf("size %d: fallback render returned error: %v", size, err)
		}
		if icon.LabelMeasured {
			t.Fatalf("size %d: expected fallback placement", size)
		}
		img := icon.RGBA
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Fatalf("size %d: bounds = %v", size, img.Bounds())
		}
		x := size/2 - size/4
		y := size/2 - (size/4)/2
		cell := image.Rect(x, y, x+13, y+13)
		got := whiteBounds(img)
		if got.Empty() || !got.In(cell) {
			t.Errorf("size %d: label pixels %v, want inside fallback box %v", size, got, cell)
		}
	}
}

func TestPlaceLabel(t *testing.T) {
	face := basicfont.Face7x13
	tests := []struct {
		name         string
		size         int
		measure      bool
		wantDot      fixed.Point26_6
		wantMeasured bool
	}{
		{name: "measured mdpi", size: 48, measure: true, wantDot: fixed.P(17, 28), wantMeasured: true},
		{name: "measured xxxhdpi", size: 192, measure: true, wantDot: fixed.P(89, 100), wantMeasured: true},
		{name: "fallback mdpi", size: 48, measure: false, wantDot: fixed.P(12, 29)},
		{name: "fallback xxxhdpi", size: 192, measure: false, wantDot: fixed.P(48, 83)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeLabel(face, "ZT", tt.size, tt.measure)
			if got.dot != tt.wantDot {
				t.Fatalf("dot = %v, want %v", got.dot, tt.wantDot)
			}
			if got.measured != tt.wantMeasured {
				t.Fatalf("measured = %v, want %v", got.measured, tt.wantMeasured)
			}
		})
	}
}

func TestPlaceLabelFallsBackOnEmptyBox(t *testing.T) {
	got := placeLabel(basicfont.Face7x13, "", 96, true)
	if got.measured {
		t.Fatal("expected empty label to use fallback placement")
	}
	if got.dot != fixed.P(24, 48-12+11) {
		t.Fatalf("dot = %v", got.dot)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, face := range []FaceName{FaceBasic, FaceGoRegular, FaceGoBold} {
		opts := DefaultOptions()
		opts.Face = face
		first := mustRender(t, mustRenderer(t, opts), 144)
		second := mustRender(t, mustRenderer(t, opts), 144)
		if !bytes.Equal(first.Pix, second.Pix) {
			t.Errorf("face %s: repeated renders differ", face)
		}
	}
}

func TestRenderScalableFaces(t *testing.T) {
	for _, face := range []FaceName{FaceGoRegular, FaceGoBold} {
		opts := DefaultOptions()
		opts.Face = face
		r := mustRenderer(t, opts)
		for _, size := range bucketSizes {
			img := mustRender(t, r, size)
			if img.Bounds().Dx() != size {
				t.Fatalf("face %s size %d: bounds = %v", face, size, img.Bounds())
			}
			if !hasLabelInk(img) {
				t.Errorf("face %s size %d: no label pixels drawn", face, size)
			}
		}
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	r := mustRenderer(t, DefaultOptions())
	for _, size := range []int{0, -48} {
		_, err := r.Render(size)
		if !errors.Is(err, apperrors.New(apperrors.CodeInvalidSize, "")) {
			t.Fatalf("size %d: expected invalid size error, got %v", size, err)
		}
	}
}

func TestNewRendererNormalizesOptions(t *testing.T) {
	r := mustRenderer(t, Options{Label: "  zt "})
	if r.opts.Label != "ZT" {
		t.Fatalf("label = %q, want ZT", r.opts.Label)
	}
	if r.opts.Face != FaceBasic {
		t.Fatalf("face = %q, want basic", r.opts.Face)
	}
	if r.opts.Accent != branding.AccentColor || r.opts.Foreground != branding.LabelColor {
		t.Fatalf("expected branding colors, got %+v", r.opts)
	}
	if blank := mustRenderer(t, Options{Label: " "}); blank.opts.Label != branding.LauncherLabel {
		t.Fatalf("blank label = %q", blank.opts.Label)
	}
}

func TestNewRendererRejectsUnknownFace(t *testing.T) {
	_, err := NewRenderer(Options{Face: "comic"})
	if apperrors.CodeOf(err) != apperrors.CodeInvalidFace {
		t.Fatalf("expected invalid face, got %v", err)
	}
}

func TestParseFace(t *testing.T) {
	tests := []struct {
		in      string
		want    FaceName
		wantErr bool
	}{
		{in: "", want: FaceBasic},
		{in: "basic", want: FaceBasic},
		{in: " GoBold ", want: FaceGoBold},
		{in: "goregular", want: FaceGoRegular},
		{in: "serif", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFace(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFace(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFace(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
