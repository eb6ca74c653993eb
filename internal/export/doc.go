// Package export writes a snapshot of a storyboard to disk.
//
// # Exporter
//
// The Exporter writes one PNG per shot, optional JPEG thumbnails and an
// index document that lists the shots in order:
//
//	exp := export.NewExporter(export.Options{
//	    Format:        export.FormatHTML,
//	    MaxConcurrent: 4,
//	    Thumbnails:    true,
//	    ThumbnailSize: 320,
//	})
//	result, err := exp.Export(ctx, shots, "/tmp/storyboard")
//	fmt.Println(result.IndexPath) // /tmp/storyboard/storyboard.html
//
// Image files are named after the shot number and title, e.g.
// "01 Opening scene.png"; thumbnails go to a "thumbs" subdirectory.
//
// # Index Formats
//
// Supported index formats:
//   - Markdown (storyboard.md)
//   - HTML (storyboard.html), a printable grid of shot cards
//   - JSON (storyboard.json)
package export
