package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/knitgauge/internal/model"
)

// Export renders the payload in the format it names and returns the path
// written. When path is a directory, or has no extension and is created as
// one, the file name is derived from the payload.
func Export(path string, payload model.ExportPayload, opts Options) (string, error) {
	if isDir(path) {
		path = filepath.Join(path, outputName(payload))
	} else if filepath.Ext(path) == "" {
		// No extension: a directory that does not exist yet.
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		path = filepath.Join(path, outputName(payload))
	}
	switch payload.Format {
	case model.FormatPDF:
		return path, ExportPDF(path, payload, opts)
	case model.FormatSpreadsheet:
		return path, ExportSpreadsheet(path, payload, opts)
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnknownFormat, payload.Format)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
