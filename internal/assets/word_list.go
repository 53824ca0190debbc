package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

const wordListTemplateName = "word-list.md.go.tmpl"

//go:embed templates/word-list.md.go.tmpl
var fallbackWordListTemplate string

// WordListTemplate is the data of a printable word list.
type WordListTemplate struct {
	Title       string
	Description string
	Entries     []vocabulary.Entry
}

// WriteWordList renders the word list with the template at templatePath,
// or with the embedded one when templatePath is empty or unusable.
func WriteWordList(output io.Writer, templatePath string, templateData WordListTemplate) error {
	tmpl, err := loadTemplate(templatePath, wordListTemplateName, fallbackWordListTemplate)
	if err != nil {
		return fmt.Errorf("loadTemplate > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
