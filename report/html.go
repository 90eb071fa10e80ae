package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tony-42069/biz-acquisition/domain"
)

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders the Markdown report as an HTML fragment.
func HTML(e domain.DealEvaluation) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(e)), &buf); err != nil {
		return nil, fmt.Errorf("rendering html report: %w", err)
	}
	return buf.Bytes(), nil
}
