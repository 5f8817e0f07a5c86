// Package typedpath provides path values whose validity is established once,
// at construction, and carried by the type from then on.
//
// Three kinds of path are distinguished statically:
//
//   - AbsolutePath / AbsolutePathBuf: rooted and fully normalised. No "." or
//     ".." segment survives construction.
//   - RelativePath / RelativePathBuf: never rooted. The owning form is
//     lexically collapsed on construction; the view form keeps its input
//     spelling verbatim.
//   - CombinedPath / CombinedPathBuf: exactly one of the above, fixed at
//     construction by inspecting the root marker.
//
// Each kind comes in a view form (a relabelling of the caller's string, no
// copying or rewriting) and an owning form (a self-contained, canonically
// rendered value). Conversions between the two are explicit.
//
// Normalisation is purely lexical: "." and ".." are collapsed using only the
// text of the path. The package never touches the filesystem - no existence
// checks, no symlink resolution, no working-directory lookup. Resolving a
// relative path requires an explicit absolute base. Drive letters, UNC paths
// and URL-style paths are out of scope; a path is an ordered sequence of
// separator-delimited segments with an optional leading root marker.
//
// All values are immutable. Join and Parent return new values and never
// modify their receiver, so any number of goroutines may share a value
// without coordination.
//
// The zero value of the absolute types is not a valid path; always go through
// the constructors. The zero value of the relative and combined types is the
// empty relative path.
package typedpath
