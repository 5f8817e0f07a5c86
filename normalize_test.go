package typedpath

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitRender(t *testing.T) {
	tests := []struct {
		input  string
		rooted bool
		segs   []string
		render string
	}{
		{"/a/b", true, []string{"a", "b"}, "/a/b"},
		{"/a//b/", true, []string{"a", "b"}, "/a/b"},
		{"/", true, nil, "/"},
		{"a/b", false, []string{"a", "b"}, "a/b"},
		{"", false, nil, ""},
		{"./a/../b", false, []string{".", "a", "..", "b"}, "./a/../b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rooted, segs := splitPath(tt.input)
			if rooted != tt.rooted {
				t.Errorf("splitPath(%q) rooted = %v, want %v", tt.input, rooted, tt.rooted)
			}
			if len(segs) != len(tt.segs) {
				t.Fatalf("splitPath(%q) segs = %v, want %v", tt.input, segs, tt.segs)
			}
			for i := range segs {
				if segs[i] != tt.segs[i] {
					t.Fatalf("splitPath(%q) segs = %v, want %v", tt.input, segs, tt.segs)
				}
			}
			if got := renderPath(rooted, segs); got != tt.render {
				t.Errorf("renderPath(%v, %v) = %q, want %q", rooted, segs, got, tt.render)
			}
		})
	}
}

func TestNormaliseRooted(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"/a/b", "/a/b", false},
		{"/a/./b/../c", "/a/c", false},
		{"/a/b/../..", "/", false}, // collapse to exactly the root succeeds
		{"/", "/", false},
		{"/a/..", "/", false},
		{"/..", "", true},
		{"/a/../..", "", true},
		{"/a/../../b", "", true}, // past the root even though segments remain
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, segs := splitPath(tt.input)
			norm, err := normaliseRooted(segs, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normaliseRooted(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrNormalisationFailed) {
					t.Errorf("normaliseRooted(%q) error = %v, want ErrNormalisationFailed", tt.input, err)
				}
				if !strings.Contains(err.Error(), tt.input) {
					t.Errorf("normaliseRooted(%q) error %q does not spell the input", tt.input, err)
				}
				return
			}
			if got := renderPath(true, norm); got != tt.want {
				t.Errorf("normaliseRooted(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormaliseUnrooted(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a/b", "a/b"},
		{"./a", "a"},
		{"a/..", ""},
		{"..", ".."},
		{"../..", "../.."}, // a retained ".." is never cancelled
		{"../a/..", ".."},  // but a regular segment after one is
		{"foo/../bar/../../baz/./quz.txt", "../baz/quz.txt"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, segs := splitPath(tt.input)
			if got := renderPath(false, normaliseUnrooted(segs)); got != tt.want {
				t.Errorf("normaliseUnrooted(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormaliseRootedIdempotent(t *testing.T) {
	inputs := []string{"/a/b", "/a/c", "/", "/x/y/z"}
	for _, in := range inputs {
		_, segs := splitPath(in)
		once, err := normaliseRooted(segs, in)
		if err != nil {
			t.Fatalf("normaliseRooted(%q) error = %v", in, err)
		}
		twice, err := normaliseRooted(once, in)
		if err != nil {
			t.Fatalf("re-normalising %q error = %v", in, err)
		}
		if renderPath(true, once) != renderPath(true, twice) {
			t.Errorf("normalising %q is not idempotent: %v vs %v", in, once, twice)
		}
	}
}
