// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/image-copier/pkg/types"
)

// ErrMalformedReference is returned when a line carries the trigger for the
// active direction but the reference cannot be extracted from it.
var ErrMalformedReference = errors.New("malformed image reference")

// ReferenceError describes a line that looked like an image reference but
// could not be parsed.
type ReferenceError struct {
	Direction types.Direction
	Reason    string
	Text      string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %q", ErrMalformedReference, e.Reason, e.Direction, e.Text)
}

func (e *ReferenceError) Unwrap() error {
	return ErrMalformedReference
}

func malformed(dir types.Direction, text, reason string) error {
	return &ReferenceError{Direction: dir, Reason: reason, Text: text}
}
