// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert rewrites image references in blog posts between the
// compact markdown form ![alt](path) and the embedded HTML form used by the
// site theme, moving each referenced image to the directory that matches
// the new form.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/image-copier/internal/assets"
	"github.com/pdiddy/image-copier/pkg/types"
)

// ImageMover relocates an image between two directories.
type ImageMover interface {
	Move(name, fromDir, toDir string) error
}

// Processor rewrites every document in a posts directory.
type Processor struct {
	FS        afero.Fs
	Mover     ImageMover
	Layout    types.Layout
	Direction types.Direction
	DryRun    bool
	Logger    *slog.Logger
}

// NewProcessor builds a Processor over fs from a run configuration. Images
// are moved with an assets.Mover sharing the same filesystem and dry-run
// setting.
func NewProcessor(fs afero.Fs, cfg types.RewriteConfig, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	mover := assets.NewMover(fs)
	mover.DryRun = cfg.DryRun
	mover.Logger = logger
	return &Processor{
		FS:        fs,
		Mover:     mover,
		Layout:    cfg.Layout.WithDefaults(),
		Direction: cfg.Direction,
		DryRun:    cfg.DryRun,
		Logger:    logger,
	}
}

// ListDocuments returns the names of regular files in layout.PostsDir whose
// name contains layout.DocumentMatch, sorted by name.
func ListDocuments(fs afero.Fs, layout types.Layout) ([]string, error) {
	entries, err := afero.ReadDir(fs, layout.PostsDir)
	if err != nil {
		return nil, fmt.Errorf("reading posts directory %s: %w", layout.PostsDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), layout.DocumentMatch) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ProcessAll rewrites every document in order. The first fatal error stops
// the run; documents already written stay written and images already moved
// stay moved. The returned report covers every document attempted.
func (p *Processor) ProcessAll(ctx context.Context) (types.RunReport, error) {
	report := types.RunReport{Direction: p.Direction, DryRun: p.DryRun}

	names, err := ListDocuments(p.FS, p.Layout)
	if err != nil {
		return report, err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := p.ProcessDocument(ctx, name)
		report.Add(res)
		if err != nil {
			return report, err
		}
	}

	p.Logger.Info("run complete",
		"direction", string(p.Direction),
		"rewritten", report.Rewritten,
		"unchanged", report.Unchanged,
		"moved", report.ImagesMoved,
		"skipped", report.MovesSkipped,
		"dry_run", p.DryRun)
	return report, nil
}

// ProcessDocument rewrites one document in place. Lines are converted top
// to bottom and each matched line triggers an image move.
//
// A move skipped because the destination directory is missing is logged and
// recorded, and the line is rewritten anyway, so the document can end up
// pointing at an image that was not relocated. A malformed reference or any
// other move failure aborts the document before it is written.
func (p *Processor) ProcessDocument(ctx context.Context, name string) (types.DocumentResult, error) {
	result := types.DocumentResult{Name: name, Status: types.DocumentUnchanged}
	path := filepath.Join(p.Layout.PostsDir, name)
	log := p.Logger.With("doc", name)

	fail := func(err error) (types.DocumentResult, error) {
		result.Status = types.DocumentFailed
		result.Error = err.Error()
		log.Error("document failed", "err", err)
		return result, err
	}

	info, err := p.FS.Stat(path)
	if err != nil {
		return fail(fmt.Errorf("reading %s: %w", path, err))
	}
	data, err := afero.ReadFile(p.FS, path)
	if err != nil {
		return fail(fmt.Errorf("reading %s: %w", path, err))
	}

	lines := splitLines(string(data))
	for i, line := range lines {
		body, term := splitTerminator(line)

		conv, err := ConvertLine(body, p.Direction, p.Layout)
		if err != nil {
			return fail(fmt.Errorf("%s:%d: %w", name, i+1, err))
		}
		if !conv.Matched {
			continue
		}

		move := types.ImageMove{Line: i + 1, Image: conv.Image, From: conv.From, To: conv.To}
		if err := p.Mover.Move(conv.Image, conv.From, conv.To); err != nil {
			if !errors.Is(err, assets.ErrMissingDestination) {
				return fail(fmt.Errorf("%s:%d: %w", name, i+1, err))
			}
			move.Error = err.Error()
			log.Warn("image not moved, reference rewritten anyway",
				"line", i+1, "image", conv.Image, "to", conv.To, "err", err)
		}
		result.Moves = append(result.Moves, move)

		lines[i] = conv.Text + term
		result.LinesRewritten++
		log.Debug("rewrote line", "line", i+1, "image", conv.Image)
	}

	if result.LinesRewritten == 0 {
		log.Debug("no image references")
		return result, nil
	}
	result.Status = types.DocumentRewritten

	if p.DryRun {
		log.Info("would rewrite", "lines", result.LinesRewritten)
		return result, nil
	}
	if err := afero.WriteFile(p.FS, path, []byte(strings.Join(lines, "")), info.Mode().Perm()); err != nil {
		return fail(fmt.Errorf("writing %s: %w", path, err))
	}
	log.Info("rewritten", "lines", result.LinesRewritten)
	return result, nil
}

// splitLines splits s after each newline, keeping terminators so unmatched
// lines are written back byte for byte.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitTerminator separates a line from its terminator. A final line
// without one gets "\n" so a rewritten reference always ends its line.
func splitTerminator(line string) (body, term string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return strings.TrimSuffix(line, "\r\n"), "\r\n"
	case strings.HasSuffix(line, "\n"):
		return strings.TrimSuffix(line, "\n"), "\n"
	default:
		return line, "\n"
	}
}
