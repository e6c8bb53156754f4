// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the summary of a rewrite run.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/image-copier/pkg/types"
)

// WriteYAML writes r to path, creating the parent directory if needed.
func WriteYAML(fs afero.Fs, path string, r types.RunReport) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return afero.WriteFile(fs, path, data, 0o644)
}

// PrintSummary writes a one-line-per-document summary to w, in the style of
// the batch output: "rewritten: name (n lines)".
func PrintSummary(w io.Writer, r types.RunReport) {
	for _, d := range r.Documents {
		switch d.Status {
		case types.DocumentRewritten:
			fmt.Fprintf(w, "rewritten: %s (%d lines)\n", d.Name, d.LinesRewritten)
		case types.DocumentFailed:
			fmt.Fprintf(w, "failed:    %s (%s)\n", d.Name, d.Error)
		}
		for _, m := range d.Moves {
			if !m.Moved() {
				fmt.Fprintf(w, "  not moved: %s line %d (%s)\n", m.Image, m.Line, m.Error)
			}
		}
	}
	verb := "rewritten"
	if r.DryRun {
		verb = "would rewrite"
	}
	fmt.Fprintf(w, "\nSummary (%s): %d %s, %d unchanged, %d failed; %d images moved, %d not moved (total: %d)\n",
		r.Direction, r.Rewritten, verb, r.Unchanged, r.Failed, r.ImagesMoved, r.MovesSkipped, r.Total())
}
