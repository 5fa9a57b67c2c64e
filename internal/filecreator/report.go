package filecreator

import (
	"fmt"
	"io"
)

// Message renders the one-line console message for r.
func (r Result) Message() string {
	if r.OK() {
		return fmt.Sprintf("File '%s' created successfully.", r.Path)
	}
	return fmt.Sprintf("An error occurred: %s", r.Err)
}

// Report writes exactly one line per result to w.
func Report(w io.Writer, results ...Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Message()); err != nil {
			return err
		}
	}
	return nil
}
