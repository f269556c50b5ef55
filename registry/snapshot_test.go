package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/cegconf/errors"
)

func TestLookup(t *testing.T) {
	v, ok := Lookup(KeyBaseURL)
	require.True(t, ok)
	assert.Equal(t, "services/rest/", v)

	x, _ := Lookup(KeyNodeX)
	y, _ := Lookup(KeyNodeY)
	assert.Equal(t, 100, x)
	assert.Equal(t, 100, y)

	chars, ok := Lookup(KeyIDAllowedChars)
	require.True(t, ok)
	assert.Len(t, chars, 26)

	_, ok = Lookup("ceg.node.z")
	assert.False(t, ok)
}

func TestKeysCoverMap(t *testing.T) {
	m := Defaults().Map()
	keys := Keys()
	assert.Len(t, m, len(keys))
	for _, k := range keys {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, KeyBaseURL, keys[0])
	assert.Equal(t, KeyIDMin, keys[len(keys)-1])
}

func TestMapRoundTrip(t *testing.T) {
	want := Defaults()

	got, err := FromMap(want.Map())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Empty(t, want.Diff(got))
}

func TestMapRoundTrip_ThroughJSON(t *testing.T) {
	// JSON turns ints into float64 and slices into []any
	data, err := json.Marshal(Defaults().Map())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	got, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestFromMap_UnknownKey(t *testing.T) {
	m := Defaults().Map()
	m["ceg.node.color"] = "red"

	_, err := FromMap(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownKey))
	assert.Contains(t, err.Error(), "ceg.node.color")
}

func TestFromMap_MissingKey(t *testing.T) {
	m := Defaults().Map()
	delete(m, KeyIDMin)

	_, err := FromMap(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyIDMin)
}

func TestDiff(t *testing.T) {
	base := Defaults()
	other := Defaults()
	other.CEG.Editor.Height = 800
	other.ID.AllowedChars = append(other.ID.AllowedChars, "u")

	drift := base.Diff(other)
	require.Len(t, drift, 2)
	assert.Equal(t, KeyEditorHeight, drift[0].Key)
	assert.Equal(t, 1000, drift[0].Want)
	assert.Equal(t, 800, drift[0].Got)
	assert.Equal(t, KeyIDAllowedChars, drift[1].Key)
}

func TestMapValuesAreCopies(t *testing.T) {
	s := Defaults()
	m := s.Map()
	m[KeyIDAllowedChars].([]string)[0] = "-"
	assert.Equal(t, "a", s.ID.AllowedChars[0])
}
