//go:build windows

// path_windows.go provides the separator mapping for Windows, where the
// native separator is the backslash. Drive letters and UNC prefixes are out
// of scope for this package; the root marker is a bare leading separator.

package typedpath

import "path/filepath"

func toSlash(p string) string { return filepath.ToSlash(p) }

func fromSlash(p string) string { return filepath.FromSlash(p) }
