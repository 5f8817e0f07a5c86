//go:build !windows

// path_unix.go provides the separator mapping for Unix systems (Linux,
// macOS, etc).
//
// On Unix the native separator already is the slash, and backslashes are
// ordinary filename characters, so both directions are the identity. They
// must not be rewritten: replacing backslashes here would corrupt legal
// filenames.

package typedpath

func toSlash(p string) string { return p }

func fromSlash(p string) string { return p }
