package typedpath

// AbsolutePath is a view over an absolute, already-normalised path. It keeps
// the caller's spelling verbatim and performs no rewriting; construction only
// validates.
//
// Use AbsolutePathBuf when the input may still contain "." or ".." segments.
type AbsolutePath struct {
	path string // slash form, rooted, no "." or ".." segments
}

// NewAbsolutePath validates p as an absolute, normalised path.
// It fails with ErrNotAbsolute if p lacks a root marker, and with
// ErrNotNormalised if any "." or ".." segment is present.
func NewAbsolutePath(p string) (AbsolutePath, error) {
	s := toSlash(p)
	rooted, segs := splitPath(s)
	if !rooted {
		return AbsolutePath{}, notAbsolute(p)
	}
	if hasDotSegment(segs) {
		return AbsolutePath{}, notNormalised(p)
	}
	return AbsolutePath{path: s}, nil
}

// String returns the path in its native spelling.
func (p AbsolutePath) String() string {
	return fromSlash(p.path)
}

// IsRoot reports whether the path has no segment beyond the root.
func (p AbsolutePath) IsRoot() bool {
	_, segs := splitPath(p.path)
	return len(segs) == 0
}

// Join appends a raw candidate path and re-normalises.
// It fails with ErrJoinedAbsolute if the candidate is itself rooted, and with
// ErrNormalisationFailed if the candidate's ".." segments traverse past the
// root.
func (p AbsolutePath) Join(candidate string) (AbsolutePathBuf, error) {
	c := toSlash(candidate)
	if rooted, _ := splitPath(c); rooted {
		return AbsolutePathBuf{}, joinedAbsolute(p.String(), candidate)
	}
	return newAbsolutePathBuf(joinRaw(p.path, c))
}

// JoinRelative appends a path already known to be relative.
// The only possible failure is ErrNormalisationFailed.
func (p AbsolutePath) JoinRelative(r RelativePath) (AbsolutePathBuf, error) {
	return newAbsolutePathBuf(joinRaw(p.path, r.path))
}

// Parent returns the path with its final segment removed. The second return
// is false when the path is already the root.
func (p AbsolutePath) Parent() (AbsolutePath, bool) {
	_, segs := splitPath(p.path)
	if len(segs) == 0 {
		return AbsolutePath{}, false
	}
	// Derived by truncation from a validated path, so no re-validation.
	return AbsolutePath{path: renderPath(true, segs[:len(segs)-1])}, true
}

// RelativeTo returns the relative path that, joined onto base, reproduces p.
// It fails with ErrPathsIdentical when the two paths are equal segment-wise.
func (p AbsolutePath) RelativeTo(base AbsolutePath) (RelativePathBuf, error) {
	_, target := splitPath(p.path)
	_, from := splitPath(base.path)

	common := 0
	for common < len(target) && common < len(from) && target[common] == from[common] {
		common++
	}
	if common == len(target) && common == len(from) {
		return RelativePathBuf{}, pathsIdentical(p.String())
	}

	segs := make([]string, 0, len(from)-common+len(target)-common)
	for range from[common:] {
		segs = append(segs, "..")
	}
	segs = append(segs, target[common:]...)
	return RelativePathBuf{path: renderPath(false, segs)}, nil
}

// ToBuf copies the view into an owning AbsolutePathBuf with canonical
// spelling.
func (p AbsolutePath) ToBuf() AbsolutePathBuf {
	_, segs := splitPath(p.path)
	return AbsolutePathBuf{path: renderPath(true, segs)}
}

// AbsolutePathBuf is the owning counterpart of AbsolutePath. Construction
// normalises rather than rejecting, so the stored path is always rooted,
// collapsed, and canonically spelled.
type AbsolutePathBuf struct {
	path string // canonical slash form, rooted, no "." or ".." segments
}

// NewAbsolutePathBuf normalises p into an absolute path.
// It fails with ErrNotAbsolute if p lacks a root marker, and with
// ErrNormalisationFailed if collapsing ".." would traverse past the root.
// Collapsing down to exactly the root succeeds and yields the root path.
func NewAbsolutePathBuf(p string) (AbsolutePathBuf, error) {
	s := toSlash(p)
	if rooted, _ := splitPath(s); !rooted {
		return AbsolutePathBuf{}, notAbsolute(p)
	}
	return newAbsolutePathBuf(s)
}

// newAbsolutePathBuf normalises a slash-form path already known to be rooted.
func newAbsolutePathBuf(s string) (AbsolutePathBuf, error) {
	_, segs := splitPath(s)
	norm, err := normaliseRooted(segs, fromSlash(s))
	if err != nil {
		return AbsolutePathBuf{}, err
	}
	return AbsolutePathBuf{path: renderPath(true, norm)}, nil
}

// String returns the path in its native spelling.
func (p AbsolutePathBuf) String() string {
	return fromSlash(p.path)
}

// IsRoot reports whether the path has no segment beyond the root.
func (p AbsolutePathBuf) IsRoot() bool {
	return p.path == "/"
}

// AsPath returns a view of the buffer. The buffer's invariant already holds,
// so no re-validation happens.
func (p AbsolutePathBuf) AsPath() AbsolutePath {
	return AbsolutePath{path: p.path}
}

// Join appends a raw candidate path and re-normalises.
// It fails with ErrJoinedAbsolute if the candidate is itself rooted, and with
// ErrNormalisationFailed if the candidate's ".." segments traverse past the
// root.
func (p AbsolutePathBuf) Join(candidate string) (AbsolutePathBuf, error) {
	return p.AsPath().Join(candidate)
}

// JoinRelative appends a path already known to be relative.
// The only possible failure is ErrNormalisationFailed.
func (p AbsolutePathBuf) JoinRelative(r RelativePath) (AbsolutePathBuf, error) {
	return p.AsPath().JoinRelative(r)
}

// Parent returns the path with its final segment removed. The second return
// is false when the path is already the root.
func (p AbsolutePathBuf) Parent() (AbsolutePathBuf, bool) {
	v, ok := p.AsPath().Parent()
	if !ok {
		return AbsolutePathBuf{}, false
	}
	return v.ToBuf(), true
}

// RelativeTo returns the relative path that, joined onto base, reproduces p.
// It fails with ErrPathsIdentical when the two paths are equal.
func (p AbsolutePathBuf) RelativeTo(base AbsolutePathBuf) (RelativePathBuf, error) {
	return p.AsPath().RelativeTo(base.AsPath())
}
