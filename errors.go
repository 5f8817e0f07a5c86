// errors.go defines sentinel errors for path validation failures.
//
// Sentinel errors (not error types) because a failure carries no context
// beyond its category and the offending path. Detailed messages are produced
// by wrapping these with fmt.Errorf in the constructors, so callers check the
// category with errors.Is and display the wrapped message as-is.

package typedpath

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAbsolute indicates a path lacked a root marker where an
	// absolute path was required.
	ErrNotAbsolute = errors.New("not an absolute path")

	// ErrNotRelative indicates a path had a root marker where a relative
	// path was required.
	ErrNotRelative = errors.New("not a relative path")

	// ErrNotNormalised indicates a non-collapsing absolute constructor
	// received a path containing "." or ".." segments.
	ErrNotNormalised = errors.New("path is not normalised")

	// ErrNormalisationFailed indicates collapsing ".." would traverse
	// above the root.
	ErrNormalisationFailed = errors.New("path could not be normalised")

	// ErrJoinedAbsolute indicates the path being joined onto a base was
	// itself rooted.
	ErrJoinedAbsolute = errors.New("joined path must be relative")

	// ErrPathsIdentical indicates two paths expected to differ did not.
	ErrPathsIdentical = errors.New("paths are identical")
)

func notAbsolute(p string) error {
	return fmt.Errorf("%w: %q", ErrNotAbsolute, p)
}

func notRelative(p string) error {
	return fmt.Errorf("%w: %q", ErrNotRelative, p)
}

func notNormalised(p string) error {
	return fmt.Errorf("%w: %q", ErrNotNormalised, p)
}

func normalisationFailed(p string) error {
	return fmt.Errorf("%w: %q", ErrNormalisationFailed, p)
}

func joinedAbsolute(base, candidate string) error {
	return fmt.Errorf("%w: %q joined to %q", ErrJoinedAbsolute, candidate, base)
}

func pathsIdentical(p string) error {
	return fmt.Errorf("%w: %q", ErrPathsIdentical, p)
}
