package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareParams(t *testing.T) {
	p := Params{
		"Title": "Hello",
		"Nested": map[string]any{
			"SubKey": 1,
		},
		"YamlStyle": map[any]any{
			"Inner": "v",
		},
	}

	PrepareParams(p)

	assert.Equal(t, "Hello", p["title"])

	nested, ok := p["nested"].(Params)
	require.True(t, ok)
	assert.Equal(t, 1, nested["subkey"])

	yamlStyle, ok := p["yamlstyle"].(Params)
	require.True(t, ok)
	assert.Equal(t, "v", yamlStyle["inner"])
}

func TestParamsGet_Nested(t *testing.T) {
	p := Params{
		"a": Params{
			"b": "found",
		},
	}

	assert.Equal(t, "found", p.Get("a", "b"))
	assert.Equal(t, "found", p.Get("A", "B"))
	assert.Nil(t, p.Get("a", "missing"))
	assert.Nil(t, p.Get("x", "y"))
}

func TestParamsSet_MergesRecursively(t *testing.T) {
	p := Params{
		"a": Params{"keep": 1},
		"b": "old",
	}

	p.Set(Params{
		"a": Params{"new": 2},
		"b": "new",
		"c": true,
	})

	a := p["a"].(Params)
	assert.Equal(t, 1, a["keep"])
	assert.Equal(t, 2, a["new"])
	assert.Equal(t, "new", p["b"])
	assert.Equal(t, true, p["c"])
}

func TestToParamsAndPrepare(t *testing.T) {
	p, ok := ToParamsAndPrepare(map[string]any{"Key": "v"})
	require.True(t, ok)
	assert.Equal(t, "v", p["key"])

	p, ok = ToParamsAndPrepare(nil)
	require.True(t, ok)
	assert.Empty(t, p)

	_, ok = ToParamsAndPrepare(42)
	assert.False(t, ok)
}
