// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Direction selects which way image references are rewritten.
type Direction string

const (
	// Forward converts compact markdown references to embedded HTML.
	Forward Direction = "forward"
	// Reverse converts embedded HTML references back to compact markdown.
	Reverse Direction = "reverse"
)

// ParseDirection maps the command-line direction flag to a Direction.
// Only "True" and "true" select Reverse; every other value selects Forward.
func ParseDirection(arg string) Direction {
	if arg == "True" || arg == "true" {
		return Reverse
	}
	return Forward
}

// Default layout values. They reproduce the Jekyll site layout the tool was
// written for.
const (
	DefaultPostsDir       = "./_posts"
	DefaultAssetDir       = "./assets/images/segmentation_post"
	DefaultPostLinkPrefix = "./assets/"
	DefaultDocumentMatch  = ".md"
	DefaultContainerClass = "image blog"
	DefaultURLFilter      = "relative_url"
	DefaultReverseTrigger = "assets/images"

	// postAssetsSubdir is the image directory under PostsDir used by
	// compact-form references.
	postAssetsSubdir = "assets"
)

// Layout describes the directories and templates involved in a rewrite.
type Layout struct {
	// PostsDir holds the documents to rewrite.
	PostsDir string `json:"posts_dir" yaml:"posts_dir" mapstructure:"posts_dir"`

	// PostAssetsDir holds images referenced in compact form
	// (default "<PostsDir>/assets").
	PostAssetsDir string `json:"post_assets_dir" yaml:"post_assets_dir" mapstructure:"post_assets_dir"`

	// AssetDir holds images referenced in embedded form. It is also the
	// path prefix written into embedded src attributes.
	AssetDir string `json:"asset_dir" yaml:"asset_dir" mapstructure:"asset_dir"`

	// PostLinkPrefix is prepended to the image name in compact links
	// produced by reverse conversion.
	PostLinkPrefix string `json:"post_link_prefix" yaml:"post_link_prefix" mapstructure:"post_link_prefix"`

	// DocumentMatch is the substring a file name must contain to be
	// treated as a document.
	DocumentMatch string `json:"document_match" yaml:"document_match" mapstructure:"document_match"`

	// ContainerClass is the class attribute of the wrapping span.
	ContainerClass string `json:"container_class" yaml:"container_class" mapstructure:"container_class"`

	// URLFilter is the Liquid filter applied to embedded src paths.
	URLFilter string `json:"url_filter" yaml:"url_filter" mapstructure:"url_filter"`

	// ReverseTrigger must appear on a line, alongside "<img src=", for the
	// line to be reverse converted.
	ReverseTrigger string `json:"reverse_trigger" yaml:"reverse_trigger" mapstructure:"reverse_trigger"`
}

// DefaultLayout returns the layout with every field at its default.
func DefaultLayout() Layout {
	return Layout{}.WithDefaults()
}

// WithDefaults returns a copy of l with empty fields filled in. An empty
// PostAssetsDir is derived from PostsDir.
func (l Layout) WithDefaults() Layout {
	if l.PostsDir == "" {
		l.PostsDir = DefaultPostsDir
	}
	if l.PostAssetsDir == "" {
		l.PostAssetsDir = strings.TrimSuffix(l.PostsDir, "/") + "/" + postAssetsSubdir
	}
	if l.AssetDir == "" {
		l.AssetDir = DefaultAssetDir
	}
	if l.PostLinkPrefix == "" {
		l.PostLinkPrefix = DefaultPostLinkPrefix
	}
	if l.DocumentMatch == "" {
		l.DocumentMatch = DefaultDocumentMatch
	}
	if l.ContainerClass == "" {
		l.ContainerClass = DefaultContainerClass
	}
	if l.URLFilter == "" {
		l.URLFilter = DefaultURLFilter
	}
	if l.ReverseTrigger == "" {
		l.ReverseTrigger = DefaultReverseTrigger
	}
	return l
}

// RewriteConfig holds everything a single run needs.
type RewriteConfig struct {
	Layout `yaml:",inline" mapstructure:",squash"`

	// Direction is set from the positional argument, never from the config file.
	Direction Direction `json:"-" yaml:"-" mapstructure:"-"`

	// DryRun reports what would change without writing documents or
	// moving images.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`

	// ReportPath, when set, is where the YAML run report is written.
	ReportPath string `json:"report" yaml:"report,omitempty" mapstructure:"report"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
