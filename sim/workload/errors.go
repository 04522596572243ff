package workload

import "fmt"

// InputOpenError reports an input file that could not be opened or read.
type InputOpenError struct {
	URL string
	Err error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("cannot read input %s: %v", e.URL, e.Err)
}

func (e *InputOpenError) Unwrap() error { return e.Err }

// MalformedRecordError reports an input line that does not parse. Line is
// 1-based and counts the header.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
