// sql.go binds the path types to a single text column via database/sql.
//
// Every type implements driver.Valuer, always emitting the normalised display
// string. Only the owning forms implement sql.Scanner: like text decoding,
// scanning allocates a fresh value and re-validates through the constructors,
// so a column value that is not normalised or not absolute as required fails
// the row decode. Views are write-only at this boundary.

package typedpath

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

var (
	_ driver.Valuer = AbsolutePath{}
	_ driver.Valuer = RelativePath{}
	_ driver.Valuer = CombinedPath{}
	_ driver.Valuer = AbsolutePathBuf{}
	_ driver.Valuer = RelativePathBuf{}
	_ driver.Valuer = CombinedPathBuf{}
	_ sql.Scanner   = (*AbsolutePathBuf)(nil)
	_ sql.Scanner   = (*RelativePathBuf)(nil)
	_ sql.Scanner   = (*CombinedPathBuf)(nil)
)

// Value emits the path's display string for storage in a text column.
func (p AbsolutePath) Value() (driver.Value, error) { return p.String(), nil }

// Value emits the path's display string for storage in a text column.
func (p RelativePath) Value() (driver.Value, error) { return p.String(), nil }

// Value emits the active variant's display string for storage in a text
// column.
func (p CombinedPath) Value() (driver.Value, error) { return p.String(), nil }

// Value emits the path's display string for storage in a text column.
func (p AbsolutePathBuf) Value() (driver.Value, error) { return p.String(), nil }

// Value emits the path's display string for storage in a text column.
func (p RelativePathBuf) Value() (driver.Value, error) { return p.String(), nil }

// Value emits the active variant's display string for storage in a text
// column.
func (p CombinedPathBuf) Value() (driver.Value, error) { return p.String(), nil }

// scanText coerces a scanned column value to its text form. NULL does not
// decode into a path; use a pointer or sql.Null wrapper for nullable columns.
func scanText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into a path", src)
	}
}

// Scan re-validates a text column value through NewAbsolutePathBuf.
func (p *AbsolutePathBuf) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// Scan re-validates a text column value through NewRelativePathBuf.
func (p *RelativePathBuf) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// Scan re-dispatches a text column value on its root marker.
func (p *CombinedPathBuf) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
