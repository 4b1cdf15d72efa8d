package engine

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Manual renders the engine's registered host-function roster as HTML,
// suitable for embedding in a host application's documentation. It builds a
// small markdown document (name, kind) and runs it through goldmark, the
// same rendering pipeline godoc-adjacent tools in the corpus use for
// comment-to-HTML conversion.
func (e *Engine) Manual() (string, error) {
	var md bytes.Buffer
	md.WriteString("# Registered functions\n\n")
	md.WriteString("| Name | Kind |\n")
	md.WriteString("| --- | --- |\n")
	for _, entry := range e.roster() {
		fmt.Fprintf(&md, "| `%s` | %s |\n", entry.name, entry.kind)
	}

	var html bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &html); err != nil {
		return "", fmt.Errorf("engine: rendering manual: %w", err)
	}
	return html.String(), nil
}
