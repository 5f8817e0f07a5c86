package typedpath_test

import (
	"encoding/json"
	"testing"

	"github.com/jpl-au/typedpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type jsonDoc struct {
	Abs      typedpath.AbsolutePathBuf `json:"abs"`
	Rel      typedpath.RelativePathBuf `json:"rel"`
	Combined typedpath.CombinedPathBuf `json:"combined"`
}

func TestJSON_RoundTrip(t *testing.T) {
	abs, err := typedpath.NewAbsolutePathBuf(native("/a/b"))
	require.NoError(t, err)
	rel, err := typedpath.NewRelativePathBuf(native("c/d"))
	require.NoError(t, err)
	combined, err := typedpath.NewCombinedPathBuf(native("../e"))
	require.NoError(t, err)

	in := jsonDoc{Abs: abs, Rel: rel, Combined: combined}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out jsonDoc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_MarshalViews(t *testing.T) {
	abs, err := typedpath.NewAbsolutePath(native("/a/b"))
	require.NoError(t, err)
	data, err := json.Marshal(abs)
	require.NoError(t, err)
	expected, err := json.Marshal(native("/a/b"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))

	// The relative view serialises its verbatim spelling.
	rel, err := typedpath.NewRelativePath("foo/./bar")
	require.NoError(t, err)
	data, err = json.Marshal(rel)
	require.NoError(t, err)
	assert.Equal(t, `"foo/./bar"`, string(data))

	combined, err := typedpath.NewCombinedPath("foo/./bar")
	require.NoError(t, err)
	data, err = json.Marshal(combined)
	require.NoError(t, err)
	assert.Equal(t, `"foo/./bar"`, string(data))
}

func TestJSON_UnmarshalNormalises(t *testing.T) {
	var p typedpath.AbsolutePathBuf
	require.NoError(t, json.Unmarshal([]byte(`"/a/./b/../c"`), &p))
	assert.Equal(t, native("/a/c"), p.String())
}

func TestJSON_UnmarshalRejects(t *testing.T) {
	var abs typedpath.AbsolutePathBuf
	err := json.Unmarshal([]byte(`"foo/bar"`), &abs)
	assert.ErrorIs(t, err, typedpath.ErrNotAbsolute)

	err = json.Unmarshal([]byte(`"/a/../../b"`), &abs)
	assert.ErrorIs(t, err, typedpath.ErrNormalisationFailed)

	var rel typedpath.RelativePathBuf
	err = json.Unmarshal([]byte(`"/a/b"`), &rel)
	assert.ErrorIs(t, err, typedpath.ErrNotRelative)

	var combined typedpath.CombinedPathBuf
	err = json.Unmarshal([]byte(`"/a/../../b"`), &combined)
	assert.ErrorIs(t, err, typedpath.ErrNormalisationFailed)
}

type yamlDoc struct {
	Abs      typedpath.AbsolutePathBuf `yaml:"abs"`
	Rel      typedpath.RelativePathBuf `yaml:"rel"`
	Combined typedpath.CombinedPathBuf `yaml:"combined"`
}

func TestYAML_RoundTrip(t *testing.T) {
	abs, err := typedpath.NewAbsolutePathBuf(native("/a/b"))
	require.NoError(t, err)
	rel, err := typedpath.NewRelativePathBuf(native("c/d"))
	require.NoError(t, err)
	combined, err := typedpath.NewCombinedPathBuf(native("/e/f"))
	require.NoError(t, err)

	in := yamlDoc{Abs: abs, Rel: rel, Combined: combined}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out yamlDoc
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML_UnmarshalNormalises(t *testing.T) {
	var doc yamlDoc
	input := "abs: /x/./y/../z\nrel: a/../b\ncombined: /q\n"
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))
	assert.Equal(t, native("/x/z"), doc.Abs.String())
	assert.Equal(t, "b", doc.Rel.String())
	assert.Equal(t, native("/q"), doc.Combined.String())
}

func TestYAML_UnmarshalRejects(t *testing.T) {
	var doc yamlDoc
	err := yaml.Unmarshal([]byte("abs: not/rooted\nrel: a\ncombined: b\n"), &doc)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not an absolute path")

	err = yaml.Unmarshal([]byte("abs: /a\nrel: /rooted\ncombined: b\n"), &doc)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not a relative path")
}
