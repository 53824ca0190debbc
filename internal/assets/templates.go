package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"text/template"
)

// loadTemplate parses the template file at path. The embedded text is used
// instead when path is empty, missing or does not parse.
func loadTemplate(path string, name string, embedded string) (*template.Template, error) {
	if path != "" {
		tmpl, err := template.New(filepath.Base(path)).ParseFiles(path)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Default().Warn("using the embedded template",
				"component", "assets",
				"path", path,
				"error", err,
			)
		}
	}

	tmpl, err := template.New(name).Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("template.Parse(%s) > %w", name, err)
	}
	return tmpl, nil
}
