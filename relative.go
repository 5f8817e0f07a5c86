package typedpath

// RelativePath is a view over a relative path. Its spelling is kept verbatim,
// "." and ".." segments included: a relative path cannot be root-checked
// until it is anchored, so collapsing is deferred to the owning form or to
// resolution against an absolute base.
type RelativePath struct {
	path string // slash form, never rooted, verbatim spelling
}

// NewRelativePath validates p as a relative path.
// The only failure is ErrNotRelative, when p carries a root marker.
func NewRelativePath(p string) (RelativePath, error) {
	s := toSlash(p)
	if rooted, _ := splitPath(s); rooted {
		return RelativePath{}, notRelative(p)
	}
	return RelativePath{path: s}, nil
}

// String returns the path in its native spelling.
func (p RelativePath) String() string {
	return fromSlash(p.path)
}

// Join appends a raw candidate path, producing the owning, collapsed form.
// It fails with ErrJoinedAbsolute if the candidate is rooted.
func (p RelativePath) Join(candidate string) (RelativePathBuf, error) {
	c := toSlash(candidate)
	if rooted, _ := splitPath(c); rooted {
		return RelativePathBuf{}, joinedAbsolute(p.String(), candidate)
	}
	return newRelativePathBuf(joinRaw(p.path, c)), nil
}

// JoinRelative appends a path already known to be relative. Two relative
// paths always join, so this cannot fail.
func (p RelativePath) JoinRelative(r RelativePath) RelativePathBuf {
	return newRelativePathBuf(joinRaw(p.path, r.path))
}

// IntoAbsolute resolves the path against an absolute base.
// The only failure is ErrNormalisationFailed, when the path's ".." segments
// traverse past the base's root.
func (p RelativePath) IntoAbsolute(base AbsolutePath) (AbsolutePathBuf, error) {
	return base.JoinRelative(p)
}

// ToBuf copies the view into an owning RelativePathBuf, collapsing its
// lexical markers.
func (p RelativePath) ToBuf() RelativePathBuf {
	return newRelativePathBuf(p.path)
}

// RelativePathBuf is the owning counterpart of RelativePath. Construction
// collapses "." and ".." lexically; because there is no root to violate,
// leading ".." segments are retained and collapsing never fails.
type RelativePathBuf struct {
	path string // canonical slash form, never rooted, collapsed
}

// NewRelativePathBuf collapses p into a relative path.
// The only failure is ErrNotRelative, when p carries a root marker.
func NewRelativePathBuf(p string) (RelativePathBuf, error) {
	s := toSlash(p)
	if rooted, _ := splitPath(s); rooted {
		return RelativePathBuf{}, notRelative(p)
	}
	return newRelativePathBuf(s), nil
}

// newRelativePathBuf collapses a slash-form path already known to be
// unrooted.
func newRelativePathBuf(s string) RelativePathBuf {
	_, segs := splitPath(s)
	return RelativePathBuf{path: renderPath(false, normaliseUnrooted(segs))}
}

// String returns the path in its native spelling.
func (p RelativePathBuf) String() string {
	return fromSlash(p.path)
}

// AsPath returns a view of the buffer without re-validation.
func (p RelativePathBuf) AsPath() RelativePath {
	return RelativePath{path: p.path}
}

// Join appends a raw candidate path.
// It fails with ErrJoinedAbsolute if the candidate is rooted.
func (p RelativePathBuf) Join(candidate string) (RelativePathBuf, error) {
	return p.AsPath().Join(candidate)
}

// JoinRelative appends a path already known to be relative; cannot fail.
func (p RelativePathBuf) JoinRelative(r RelativePath) RelativePathBuf {
	return p.AsPath().JoinRelative(r)
}

// IntoAbsolute resolves the path against an absolute base.
// The only failure is ErrNormalisationFailed.
func (p RelativePathBuf) IntoAbsolute(base AbsolutePath) (AbsolutePathBuf, error) {
	return base.JoinRelative(p.AsPath())
}
