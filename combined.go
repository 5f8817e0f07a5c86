package typedpath

// CombinedPath holds either a RelativePath or an AbsolutePath, decided once
// at construction by inspecting the root marker. The variant never changes
// for the life of the value; every operation dispatches on it exhaustively.
type CombinedPath struct {
	abs      AbsolutePath
	rel      RelativePath
	absolute bool
}

// NewCombinedPath classifies p by its root marker and validates the matching
// variant. The relative branch cannot fail, so the only possible failure is
// ErrNotNormalised from the absolute branch.
func NewCombinedPath(p string) (CombinedPath, error) {
	if rooted, _ := splitPath(toSlash(p)); rooted {
		a, err := NewAbsolutePath(p)
		if err != nil {
			return CombinedPath{}, err
		}
		return CombinedPath{abs: a, absolute: true}, nil
	}
	r, err := NewRelativePath(p)
	if err != nil {
		return CombinedPath{}, err
	}
	return CombinedPath{rel: r}, nil
}

// String returns the active variant in its native spelling.
func (p CombinedPath) String() string {
	if p.absolute {
		return p.abs.String()
	}
	return p.rel.String()
}

// IsAbsolute reports whether the absolute variant is active.
func (p CombinedPath) IsAbsolute() bool { return p.absolute }

// IsRelative reports whether the relative variant is active.
func (p CombinedPath) IsRelative() bool { return !p.absolute }

// Abs returns the absolute variant; ok is false when the path is relative.
func (p CombinedPath) Abs() (AbsolutePath, bool) {
	return p.abs, p.absolute
}

// Rel returns the relative variant; ok is false when the path is absolute.
func (p CombinedPath) Rel() (RelativePath, bool) {
	return p.rel, !p.absolute
}

// IntoAbsolute resolves the path into an owning absolute path: a copy when
// already absolute, otherwise the relative variant joined onto base.
// The only failure is ErrNormalisationFailed.
func (p CombinedPath) IntoAbsolute(base AbsolutePath) (AbsolutePathBuf, error) {
	if p.absolute {
		return p.abs.ToBuf(), nil
	}
	return p.rel.IntoAbsolute(base)
}

// ToBuf copies the view into an owning CombinedPathBuf, collapsing the
// relative variant.
func (p CombinedPath) ToBuf() CombinedPathBuf {
	if p.absolute {
		return CombinedPathBuf{abs: p.abs.ToBuf(), absolute: true}
	}
	return CombinedPathBuf{rel: p.rel.ToBuf()}
}

// CombinedPathBuf is the owning counterpart of CombinedPath.
type CombinedPathBuf struct {
	abs      AbsolutePathBuf
	rel      RelativePathBuf
	absolute bool
}

// NewCombinedPathBuf classifies p by its root marker and normalises the
// matching variant. The relative branch cannot fail, so the only possible
// failure is ErrNormalisationFailed from the absolute branch.
func NewCombinedPathBuf(p string) (CombinedPathBuf, error) {
	if rooted, _ := splitPath(toSlash(p)); rooted {
		a, err := NewAbsolutePathBuf(p)
		if err != nil {
			return CombinedPathBuf{}, err
		}
		return CombinedPathBuf{abs: a, absolute: true}, nil
	}
	r, err := NewRelativePathBuf(p)
	if err != nil {
		return CombinedPathBuf{}, err
	}
	return CombinedPathBuf{rel: r}, nil
}

// String returns the active variant in its native spelling.
func (p CombinedPathBuf) String() string {
	if p.absolute {
		return p.abs.String()
	}
	return p.rel.String()
}

// IsAbsolute reports whether the absolute variant is active.
func (p CombinedPathBuf) IsAbsolute() bool { return p.absolute }

// IsRelative reports whether the relative variant is active.
func (p CombinedPathBuf) IsRelative() bool { return !p.absolute }

// Abs returns the absolute variant; ok is false when the path is relative.
func (p CombinedPathBuf) Abs() (AbsolutePathBuf, bool) {
	return p.abs, p.absolute
}

// Rel returns the relative variant; ok is false when the path is absolute.
func (p CombinedPathBuf) Rel() (RelativePathBuf, bool) {
	return p.rel, !p.absolute
}

// IntoAbsolute resolves the path into an owning absolute path: a copy when
// already absolute, otherwise the relative variant joined onto base.
// The only failure is ErrNormalisationFailed.
func (p CombinedPathBuf) IntoAbsolute(base AbsolutePath) (AbsolutePathBuf, error) {
	if p.absolute {
		return p.abs, nil
	}
	return p.rel.IntoAbsolute(base)
}
