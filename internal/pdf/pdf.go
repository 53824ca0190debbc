// Package pdf renders markdown word lists as printable PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

const markdownExtension = ".md"

// PathFor returns the PDF path written next to a markdown file.
func PathFor(markdownPath string) (string, error) {
	if filepath.Ext(markdownPath) != markdownExtension {
		return "", fmt.Errorf("word list must have %s extension: %s", markdownExtension, markdownPath)
	}
	return strings.TrimSuffix(markdownPath, markdownExtension) + ".pdf", nil
}

// Render writes markdown as an A4 portrait document at pdfPath.
func Render(markdown []byte, pdfPath string) error {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process(%s) > %w", pdfPath, err)
	}
	return nil
}

// ConvertFile renders the markdown file next to itself and returns the absolute PDF path.
func ConvertFile(markdownPath string) (string, error) {
	pdfPath, err := PathFor(markdownPath)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	if err := Render(content, pdfPath); err != nil {
		return "", err
	}

	if absPath, err := filepath.Abs(pdfPath); err == nil {
		return absPath, nil
	}
	return pdfPath, nil
}
