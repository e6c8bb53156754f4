// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// liquidOutput matches a Liquid output tag wrapping a quoted string literal,
// optionally piped through filters: {{ "path" | relative_url }}.
var liquidOutput = regexp.MustCompile(`\{\{-?\s*(?:"([^"]*)"|'([^']*)')\s*(?:\|[^}]*)?-?\}\}`)

// unwrapLiquid replaces each Liquid output tag on the line with the string
// literal it renders. The quotes inside the tag would otherwise end the
// enclosing HTML attribute value early.
func unwrapLiquid(line string) string {
	return liquidOutput.ReplaceAllStringFunc(line, func(m string) string {
		sub := liquidOutput.FindStringSubmatch(m)
		if sub[1] != "" {
			return sub[1]
		}
		return sub[2]
	})
}

// htmlComment matches an HTML comment, or an unterminated one running to the
// end of the line.
var htmlComment = regexp.MustCompile(`<!--[\s\S]*?(?:-->|$)`)

// stripComments removes HTML comments from the line. A commented-out img is
// not a reference.
func stripComments(line string) string {
	return htmlComment.ReplaceAllString(line, "")
}

// imgAttrs holds the attributes of interest from an img element.
type imgAttrs struct {
	src, alt       string
	hasSrc, hasAlt bool
}

// firstImage returns the attributes of the first img element on the line.
// The boolean is false when the line has no img element.
func firstImage(line string) (imgAttrs, bool) {
	z := html.NewTokenizer(strings.NewReader(unwrapLiquid(line)))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return imgAttrs{}, false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, more := z.TagName()
			if string(name) != "img" {
				continue
			}
			var a imgAttrs
			for more {
				var key, val []byte
				key, val, more = z.TagAttr()
				switch string(key) {
				case "src":
					if !a.hasSrc {
						a.src, a.hasSrc = string(val), true
					}
				case "alt":
					if !a.hasAlt {
						a.alt, a.hasAlt = string(val), true
					}
				}
			}
			return a, true
		}
	}
}
