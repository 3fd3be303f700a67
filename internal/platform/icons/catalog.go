package icons

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// DefaultBaseDir is the Android resource root relative to the project.
	DefaultBaseDir = "app/src/main/res"
	// LauncherFileName is the asset name inside every mipmap folder.
	LauncherFileName = "ic_launcher.png"

	mipmapPrefix = "mipmap-"
)

// Spec describes one launcher icon to produce.
type Spec struct {
	Bucket string
	Size   int
}

var buckets = []Spec{
	{Bucket: "mdpi", Size: 48},
	{Bucket: "hdpi", Size: 72},
	{Bucket: "xhdpi", Size: 96},
	{Bucket: "xxhdpi", Size: 144},
	{Bucket: "xxxhdpi", Size: 192},
}

// Buckets returns a copy of the density table in generation order.
func Buckets() []Spec {
	result := make([]Spec, len(buckets))
	copy(result, buckets)
	return result
}

// Lookup finds a bucket by name, ignoring case and surrounding space.
func Lookup(bucket string) (Spec, bool) {
	bucket = strings.ToLower(strings.TrimSpace(bucket))
	for _, spec := range buckets {
		if spec.Bucket == bucket {
			return spec, true
		}
	}
	return Spec{}, false
}

// Folder returns the resource folder name for the bucket.
func (s Spec) Folder() string {
	return mipmapPrefix + s.Bucket
}

// OutputPath returns <baseDir>/mipmap-<bucket>/ic_launcher.png.
func OutputPath(baseDir string, s Spec) string {
	return filepath.Join(baseDir, s.Folder(), LauncherFileName)
}

// CatalogMarkdown renders the density table as markdown.
func CatalogMarkdown() string {
	return CatalogMarkdownFor(buckets)
}

// CatalogMarkdownFor renders the given buckets in the density table layout.
func CatalogMarkdownFor(specs []Spec) string {
	var builder strings.Builder
	builder.WriteString("# Launcher Icon Buckets\n\n")
	builder.WriteString("| Bucket | Folder | Size (px) |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, spec := range specs {
		builder.WriteString("| ")
		builder.WriteString(spec.Bucket)
		builder.WriteString(" | ")
		builder.WriteString(spec.Folder())
		builder.WriteString(" | ")
		builder.WriteString(strconv.Itoa(spec.Size))
		builder.WriteString(" |\n")
	}
	return builder.String()
}
