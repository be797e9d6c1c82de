// Package picker abstracts the external date and image choosers behind sum
// results, so screens consume them with the same discipline as repository
// calls: one outcome, no retry, cancellation is not an error.
package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Outcome discriminates a picker result.
type Outcome int

const (
	Selected Outcome = iota
	Cancelled
	Failed
)

// DateResult is the outcome of a date pick. Date is a date-only string with
// no timezone semantics; the core stores it verbatim and never parses it
// back.
type DateResult struct {
	Outcome Outcome
	Date    string
	Reason  error
}

// ImageResult is the outcome of an image pick. Ref is an opaque reference
// stored and forwarded without interpretation.
type ImageResult struct {
	Outcome Outcome
	Ref     string
	Reason  error
}

// DatePicker turns raw user input into a date result.
type DatePicker interface {
	Pick(input string) DateResult
}

// ImagePicker turns raw user input into an image result.
type ImagePicker interface {
	Pick(input string) ImageResult
}

// DateLayout is the format deadlines are entered and stored in.
const DateLayout = "2006-01-02"

// FieldDatePicker reads a calendar date from an inline text field. Empty
// input is a cancellation, an unparseable one a failure.
type FieldDatePicker struct{}

func (FieldDatePicker) Pick(input string) DateResult {
	if input == "" {
		return DateResult{Outcome: Cancelled}
	}
	d, err := time.Parse(DateLayout, input)
	if err != nil {
		return DateResult{Outcome: Failed, Reason: fmt.Errorf("expected YYYY-MM-DD: %w", err)}
	}
	return DateResult{Outcome: Selected, Date: d.Format(DateLayout)}
}

// FileImagePicker resolves a local file path into an attachment reference.
// The file must exist; its content is never inspected.
type FileImagePicker struct{}

func (FileImagePicker) Pick(input string) ImageResult {
	if input == "" {
		return ImageResult{Outcome: Cancelled}
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return ImageResult{Outcome: Failed, Reason: fmt.Errorf("resolve path: %w", err)}
	}
	if _, err := os.Stat(abs); err != nil {
		return ImageResult{Outcome: Failed, Reason: fmt.Errorf("stat image: %w", err)}
	}
	return ImageResult{Outcome: Selected, Ref: "file://" + abs}
}
