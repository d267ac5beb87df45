// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

//go:embed manual.md
var manualMarkdown string

// showManual renders the embedded manual page for --man.
func showManual(w io.Writer) error {
	rendered, err := glamour.Render(manualMarkdown, "dark")
	if err != nil {
		return fmt.Errorf("failed to render manual: %w", err)
	}

	fmt.Fprint(w, rendered)
	return nil
}
