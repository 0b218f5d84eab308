package service

import (
	"errors"
	"fmt"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
	"github.com/RedSiamese/sitter-tree-mcp/internal/projection"
)

// Code is the error taxonomy rendered verbatim in error markers.
type Code string

const (
	CodeIOFailure           Code = "io_failure"
	CodeUnsupportedLanguage Code = "unsupported_language"
	CodeInvalidArgument     Code = "invalid_argument"
)

// FileError is a per-file failure recorded in the batch result map. The
// batch continues past it; only call-level argument errors abort a call.
type FileError struct {
	Path string
	Code Code
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// codeFor maps an error to its taxonomy code. Anything that is neither an
// argument error nor an unsupported extension is an I/O failure: the
// parser itself never fails (error-tolerant grammars always yield a
// tree), so file access is the only remaining failure source.
func codeFor(err error) Code {
	switch {
	case errors.Is(err, lang.ErrUnsupported):
		return CodeUnsupportedLanguage
	case errors.Is(err, projection.ErrInvalidMode), errors.Is(err, projection.ErrNoKeywords):
		return CodeInvalidArgument
	default:
		return CodeIOFailure
	}
}
