// Package launchericons generates the launcher icon set for every density
// bucket.
package launchericons

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zerotrace/launcher-icons/internal/launcher"
	"github.com/zerotrace/launcher-icons/internal/platform/branding"
	platformcmd "github.com/zerotrace/launcher-icons/internal/platform/cmd"
	apperrors "github.com/zerotrace/launcher-icons/internal/platform/errors"
	"github.com/zerotrace/launcher-icons/internal/platform/icons"
	platformotel "github.com/zerotrace/launcher-icons/internal/platform/otel"
)

// Config holds configuration for launcher icon generation. Environment
// variables carry the ZEROTRACE_ prefix.
type Config struct {
	BaseDir     string `env:"ICONS_BASE_DIR" envDefault:"app/src/main/res"`
	Face        string `env:"ICONS_FACE" envDefault:"basic"`
	Label       string `env:"ICONS_LABEL" envDefault:"ZT"`
	MeasureText bool   `env:"ICONS_MEASURE_TEXT" envDefault:"true"`
	// Bucket limits generation and listing to one density bucket.
	Bucket string `env:"ICONS_BUCKET"`
	// List prints the bucket table instead of generating icons.
	List bool
}

// ParseConfig reads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, registerFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.BaseDir, "base-dir", cfg.BaseDir, "Android resource directory that receives mipmap folders")
	fs.StringVar(&cfg.Face, "face", cfg.Face, "label typeface: basic, goregular or gobold")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "monogram drawn on the badge")
	fs.BoolVar(&cfg.MeasureText, "measure-text", cfg.MeasureText, "center the label by its measured glyph box")
	fs.StringVar(&cfg.Bucket, "bucket", cfg.Bucket, "only generate or list this density bucket, e.g. xxhdpi")
	fs.BoolVar(&cfg.List, "list", false, "print the density bucket table and exit")
}

// Run renders and writes one icon per density bucket, reporting each file to
// out. The first failure stops the run; files already written are kept.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	specs, err := selectBuckets(cfg.Bucket)
	if err != nil {
		return err
	}
	if cfg.List {
		_, err := io.WriteString(out, icons.CatalogMarkdownFor(specs))
		return err
	}

	face, err := launcher.ParseFace(cfg.Face)
	if err != nil {
		return err
	}
	renderer, err := launcher.NewRenderer(launcher.Options{
		Face:        face,
		Label:       cfg.Label,
		MeasureText: cfg.MeasureText,
		Accent:      branding.AccentColor,
		Foreground:  branding.LabelColor,
	})
	if err != nil {
		return err
	}

	baseDir := strings.TrimSpace(cfg.BaseDir)
	if baseDir == "" {
		baseDir = icons.DefaultBaseDir
	}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := generateIcon(ctx, renderer, baseDir, spec)
		if err != nil {
			return fmt.Errorf("bucket %s: %w", spec.Bucket, err)
		}
		if err := reportIcon(out, path, spec.Size); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out, "All launcher icons created successfully!")
	return err
}

func reportIcon(out io.Writer, path string, size int) error {
	_, err := fmt.Fprintf(out, "Created icon: %s (%dx%d)\n", path, size, size)
	return err
}

// selectBuckets returns the whole density table, or the single named bucket.
func selectBuckets(name string) ([]icons.Spec, error) {
	if strings.TrimSpace(name) == "" {
		return icons.Buckets(), nil
	}
	spec, ok := icons.Lookup(name)
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidBucket,
			fmt.Sprintf("unknown density bucket %q", name),
			map[string]string{"bucket": name})
	}
	return []icons.Spec{spec}, nil
}

// generateIcon renders and writes a single bucket inside its own span.
func generateIcon(ctx context.Context, renderer *launcher.Renderer, baseDir string, spec icons.Spec) (string, error) {
	_, span := platformotel.Tracer().Start(ctx, "launcher.icon", trace.WithAttributes(
		attribute.String("icon.bucket", spec.Bucket),
		attribute.Int("icon.size", spec.Size),
	))
	defer span.End()

	path := icons.OutputPath(baseDir, spec)
	span.SetAttributes(attribute.String("icon.path", path))

	icon, err := renderer.Render(spec.Size)
	if err == nil {
		span.SetAttributes(attribute.Bool("icon.label_measured", icon.LabelMeasured))
		err = launcher.WritePNG(path, icon.RGBA)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return path, nil
}
