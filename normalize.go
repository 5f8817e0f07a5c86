// normalize.go implements the segment-level collapse algorithm shared by all
// path kinds. Everything here works on the slash form; conversion to and from
// the native separator lives in the platform files.

package typedpath

import "strings"

// splitPath splits a slash-form path into its root marker and segments.
// Empty segments (duplicate or trailing separators) are dropped; "." and ".."
// are kept, since they are meaningful until normalisation.
func splitPath(p string) (rooted bool, segs []string) {
	rooted = strings.HasPrefix(p, "/")
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return rooted, segs
}

// renderPath is the inverse of splitPath, producing the canonical slash-form
// spelling: no duplicate or trailing separators, "/" for the bare root, ""
// for the empty relative path.
func renderPath(rooted bool, segs []string) string {
	if rooted {
		return "/" + strings.Join(segs, "/")
	}
	return strings.Join(segs, "/")
}

// joinRaw concatenates two slash-form paths without collapsing anything.
// Used to build the candidate that constructors then normalise, and to spell
// the original input in normalisation error messages.
func joinRaw(base, rel string) string {
	switch {
	case rel == "":
		return base
	case base == "":
		return rel
	case strings.HasSuffix(base, "/"):
		return base + rel
	default:
		return base + "/" + rel
	}
}

// normaliseRooted collapses "." and ".." in a root-anchored segment list.
// A ".." with no segment left to cancel is a traversal past the root and
// fails; display spells the offending path in the error. Collapsing down to
// zero segments is legal and denotes the root itself.
func normaliseRooted(segs []string, display string) ([]string, error) {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
		case "..":
			if len(out) == 0 {
				return nil, normalisationFailed(display)
			}
			out = out[:len(out)-1]
		default:
			out = append(out, s)
		}
	}
	return out, nil
}

// normaliseUnrooted collapses "." and ".." in an unanchored segment list.
// A ".." that cannot cancel a preceding segment is retained, since it means
// "up from wherever this path is eventually anchored". Never fails.
func normaliseUnrooted(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else {
				out = append(out, "..")
			}
		default:
			out = append(out, s)
		}
	}
	return out
}

// hasDotSegment reports whether any segment is a lexical marker, i.e. the
// path still needs normalisation.
func hasDotSegment(segs []string) bool {
	for _, s := range segs {
		if s == "." || s == ".." {
			return true
		}
	}
	return false
}
