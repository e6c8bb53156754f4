// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentStatus indicates what happened to a document during a run.
type DocumentStatus string

const (
	// DocumentUnchanged means no line matched and the file was not written.
	DocumentUnchanged DocumentStatus = "unchanged"
	// DocumentRewritten means at least one line was converted and the file
	// was overwritten (or would have been, in a dry run).
	DocumentRewritten DocumentStatus = "rewritten"
	// DocumentFailed means a fatal error stopped processing of the document
	// before it was written.
	DocumentFailed DocumentStatus = "failed"
)

// ImageMove records one image relocation attempted while rewriting a line.
type ImageMove struct {
	// Line is the 1-based line number of the reference.
	Line int `json:"line" yaml:"line"`

	// Image is the file name being moved.
	Image string `json:"image" yaml:"image"`

	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`

	// Error is set when the move did not happen (missing destination,
	// missing source). The line is still rewritten in that case.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Moved reports whether the image was relocated.
func (m ImageMove) Moved() bool {
	return m.Error == ""
}

// DocumentResult holds the outcome of processing one document.
type DocumentResult struct {
	// Name is the file name within the posts directory.
	Name string `json:"name" yaml:"name"`

	Status DocumentStatus `json:"status" yaml:"status"`

	// LinesRewritten counts converted lines.
	LinesRewritten int `json:"lines_rewritten" yaml:"lines_rewritten"`

	// Moves lists every move attempted, in line order.
	Moves []ImageMove `json:"moves,omitempty" yaml:"moves,omitempty"`

	// Error holds the fatal error message for a failed document.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunReport summarises a whole run across the posts directory.
type RunReport struct {
	Direction Direction `json:"direction" yaml:"direction"`
	DryRun    bool      `json:"dry_run" yaml:"dry_run"`

	Documents []DocumentResult `json:"documents" yaml:"documents"`

	Rewritten    int `json:"rewritten" yaml:"rewritten"`
	Unchanged    int `json:"unchanged" yaml:"unchanged"`
	Failed       int `json:"failed" yaml:"failed"`
	ImagesMoved  int `json:"images_moved" yaml:"images_moved"`
	MovesSkipped int `json:"moves_skipped" yaml:"moves_skipped"`
}

// Add appends a document result and updates the totals.
func (r *RunReport) Add(d DocumentResult) {
	r.Documents = append(r.Documents, d)
	switch d.Status {
	case DocumentRewritten:
		r.Rewritten++
	case DocumentUnchanged:
		r.Unchanged++
	case DocumentFailed:
		r.Failed++
	}
	for _, m := range d.Moves {
		if m.Moved() {
			r.ImagesMoved++
		} else {
			r.MovesSkipped++
		}
	}
}

// Total returns the number of documents processed.
func (r RunReport) Total() int {
	return r.Rewritten + r.Unchanged + r.Failed
}

// HasFailures reports whether any document failed.
func (r RunReport) HasFailures() bool {
	return r.Failed > 0
}
