// Package markdown renders task remarks for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/vctasks/vct/internal/strings"
)

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// Render renders markdown input for a terminal of the given width. If
// rendering fails the input is returned unchanged so a remark is never
// lost to a formatting error.
func Render(width int, input string) string {
	input = internalstrings.NormalizeNewlines(input)
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	r, err := remarkRenderer(width)
	if err != nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	return internalstrings.TrimTrailingNewlines(out)
}

func remarkRenderer(width int) (*glamour.TermRenderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if r, ok := renderers[width]; ok {
		return r, nil
	}

	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[width] = r
	return r, nil
}
