// Package filecreator guarantees that zero-byte files exist at target paths.
package filecreator

import (
	"errors"
	"io/fs"
	"os"
)

// defaultPerm matches os.Create and is applied before the process umask.
const defaultPerm fs.FileMode = 0o666

// ErrEmptyPath is reported when the target path is an empty string.
var ErrEmptyPath = errors.New("path is empty")

// Result describes the outcome of a single creation attempt.
type Result struct {
	// Path is the target path exactly as requested.
	Path string
	// Err is the failure cause, nil on success.
	Err error
	// Kind classifies Err; empty on success.
	Kind Kind
}

// OK reports whether the file was created or truncated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Creator opens targets in truncate-write mode and closes them immediately.
type Creator struct {
	perm fs.FileMode
	open func(name string, flag int, perm fs.FileMode) (*os.File, error)
}

// New constructs a Creator backed by the os package.
func New() *Creator {
	return &Creator{perm: defaultPerm, open: os.OpenFile}
}

// Create truncates or creates the file at path without writing any bytes.
// Missing parent directories are not created.
func (c *Creator) Create(path string) Result {
	if path == "" {
		return failure(path, ErrEmptyPath)
	}

	f, err := c.open(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, c.perm)
	if err != nil {
		return failure(path, err)
	}
	if err := f.Close(); err != nil {
		return failure(path, err)
	}
	return Result{Path: path}
}

// CreateAll runs Create for every path in order. A failed target does not stop the batch.
func (c *Creator) CreateAll(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, c.Create(p))
	}
	return results
}

// CreateEmpty is a shorthand for New().Create(path).
func CreateEmpty(path string) Result {
	return New().Create(path)
}

// Failed counts the unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

func failure(path string, err error) Result {
	return Result{Path: path, Err: err, Kind: Classify(err)}
}
