// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/image-copier/pkg/types"
)

const (
	// forwardTrigger marks a line as a candidate for forward conversion.
	forwardTrigger = "!["
	// reverseTrigger marks a line as a candidate for reverse conversion,
	// together with Layout.ReverseTrigger.
	reverseTrigger = "<img src="
)

var (
	firstParenGroup   = regexp.MustCompile(`\((.*?)\)`)
	firstBracketGroup = regexp.MustCompile(`\[(.*?)\]`)
)

// LineResult is the outcome of converting a single line.
type LineResult struct {
	// Text is the converted line without a line terminator, or the input
	// unchanged when Matched is false.
	Text string

	// Matched reports whether the line held a reference for the direction.
	Matched bool

	// Image is the file name of the referenced image.
	Image string

	// From and To are the directories the image must move between.
	From string
	To   string
}

// ImageName returns the final "/"-separated segment of path, or path
// itself when it contains no "/".
func ImageName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ConvertLine converts one line in the given direction. Lines without the
// trigger for dir come back unchanged. It performs no I/O; callers move the
// image described by the result.
func ConvertLine(line string, dir types.Direction, layout types.Layout) (LineResult, error) {
	switch dir {
	case types.Forward:
		if !strings.Contains(line, forwardTrigger) {
			return LineResult{Text: line}, nil
		}
		return toEmbedded(line, layout)
	case types.Reverse:
		visible := stripComments(line)
		if !strings.Contains(visible, reverseTrigger) || !strings.Contains(visible, layout.ReverseTrigger) {
			return LineResult{Text: line}, nil
		}
		return toCompact(line, layout)
	default:
		return LineResult{}, fmt.Errorf("unknown direction %q", dir)
	}
}

// toEmbedded turns ![alt](path) into the theme's span-wrapped img element.
// The original directory of path is discarded; the image is expected to
// live in layout.AssetDir afterwards. The alt text is HTML-escaped so that
// toCompact, which decodes entities, gets back exactly what was written.
func toEmbedded(line string, layout types.Layout) (LineResult, error) {
	path := firstParenGroup.FindStringSubmatch(line)
	if path == nil {
		return LineResult{}, malformed(types.Forward, line, "no parenthesized path")
	}
	alt := firstBracketGroup.FindStringSubmatch(line)
	if alt == nil {
		return LineResult{}, malformed(types.Forward, line, "no bracketed alt text")
	}

	name := ImageName(path[1])
	if name == "" {
		return LineResult{}, malformed(types.Forward, line, "empty image name")
	}
	src := strings.TrimSuffix(layout.AssetDir, "/") + "/" + name

	text := fmt.Sprintf(`<span class="%s"><img src="{{ "%s" | %s }}" alt="%s" /></span>`,
		layout.ContainerClass, src, layout.URLFilter, html.EscapeString(alt[1]))

	return LineResult{
		Text:    text,
		Matched: true,
		Image:   name,
		From:    layout.PostAssetsDir,
		To:      layout.AssetDir,
	}, nil
}

// toCompact turns the first img element on the line back into ![alt](path).
func toCompact(line string, layout types.Layout) (LineResult, error) {
	img, ok := firstImage(line)
	switch {
	case !ok:
		return LineResult{}, malformed(types.Reverse, line, "no img element")
	case !img.hasSrc:
		return LineResult{}, malformed(types.Reverse, line, "img has no src attribute")
	case !img.hasAlt:
		return LineResult{}, malformed(types.Reverse, line, "img has no alt attribute")
	}

	name := ImageName(img.src)
	if name == "" {
		return LineResult{}, malformed(types.Reverse, line, "empty image name")
	}

	return LineResult{
		Text:    fmt.Sprintf("![%s](%s%s)", img.alt, layout.PostLinkPrefix, name),
		Matched: true,
		Image:   name,
		From:    layout.AssetDir,
		To:      layout.PostAssetsDir,
	}, nil
}
