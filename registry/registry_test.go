package registry

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/cegconf/errors"
)

func TestCheck_CompiledValues(t *testing.T) {
	require.NoError(t, Check())
}

func TestSeparatorNotInAlphabet(t *testing.T) {
	for _, c := range AllowedChars() {
		assert.NotEqual(t, IDSeparator, c)
	}
	assert.False(t, IsAllowed('-'))
}

func TestForbiddenReplacementInAlphabet(t *testing.T) {
	assert.Contains(t, AllowedChars(), IDForbiddenReplacement)
	r, _ := utf8.DecodeRuneInString(IDForbiddenReplacement)
	assert.True(t, IsAllowed(r))
}

func TestAlphabet(t *testing.T) {
	chars := AllowedChars()

	seen := make(map[string]bool)
	letters := 0
	for _, c := range chars {
		require.Equal(t, 1, utf8.RuneCountInString(c), "entry %q", c)
		assert.False(t, seen[c], "duplicate %q", c)
		seen[c] = true
		if c >= "a" && c <= "z" {
			letters++
		}
	}

	// 25 lowercase letters (no u) plus the underscore
	assert.Equal(t, 25, letters)
	assert.Len(t, chars, 26)
	assert.False(t, seen["u"])
	assert.True(t, seen["_"])
	assert.False(t, seen["-"])
}

func TestLayoutValuesPositive(t *testing.T) {
	for name, v := range map[string]int{
		"NodeWidth":             NodeWidth,
		"NodeHeight":            NodeHeight,
		"EditorHeight":          EditorHeight,
		"EditorDescriptionRows": EditorDescriptionRows,
	} {
		assert.Greater(t, v, 0, name)
	}
	assert.GreaterOrEqual(t, IDMin, 0)
}

func TestDefaultLiterals(t *testing.T) {
	assert.Equal(t, "services/rest/", BaseURL)
	assert.Equal(t, 150, NodeWidth)
	assert.Equal(t, 50, NodeHeight)
	assert.Equal(t, 1000, EditorHeight)
	assert.Equal(t, 9, EditorDescriptionRows)
	assert.Equal(t, 100, NewNodeX)
	assert.Equal(t, 100, NewNodeY)
	assert.Equal(t, 1, IDMin)

	assert.Equal(t, "model", ModelBaseID)
	assert.Equal(t, "New Model", NewModelName)
	assert.Equal(t, "node", NodeBaseID)
	assert.Equal(t, "New Node", NewNodeName)
	assert.Equal(t, "conn", ConnectionBaseID)
	assert.Equal(t, "New Connection", NewConnectionName)
	assert.Empty(t, NewModelDescription)
	assert.Empty(t, NewNodeDescription)
	assert.Empty(t, NewConnectionDescription)

	assert.Equal(t, "-", IDSeparator)
	assert.Equal(t, "_", IDForbiddenReplacement)
}

func TestBaseIDsDoNotContainSeparator(t *testing.T) {
	for _, base := range []string{ModelBaseID, NodeBaseID, ConnectionBaseID} {
		assert.NotContains(t, base, IDSeparator)
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	chars := AllowedChars()
	chars[0] = "-"
	assert.Equal(t, "a", AllowedChars()[0])

	s := Defaults()
	s.BaseURL = "elsewhere/"
	s.ID.AllowedChars[1] = "-"
	s.CEG.Node.X = 7

	fresh := Defaults()
	assert.Equal(t, "services/rest/", fresh.BaseURL)
	assert.Equal(t, "b", fresh.ID.AllowedChars[1])
	assert.Equal(t, 100, fresh.CEG.Node.X)
	require.NoError(t, Check())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantMsg string
	}{
		{
			name:    "separator in alphabet",
			mutate:  func(s *Snapshot) { s.ID.AllowedChars = append(s.ID.AllowedChars, "-") },
			wantMsg: "must not be in",
		},
		{
			name:    "replacement outside alphabet",
			mutate:  func(s *Snapshot) { s.ID.ForbiddenReplacement = "*" },
			wantMsg: "must be in",
		},
		{
			name:    "duplicate alphabet entry",
			mutate:  func(s *Snapshot) { s.ID.AllowedChars = append(s.ID.AllowedChars, "a") },
			wantMsg: "twice",
		},
		{
			name:    "multi-character separator",
			mutate:  func(s *Snapshot) { s.ID.Separator = "--" },
			wantMsg: "single character",
		},
		{
			name:    "zero node width",
			mutate:  func(s *Snapshot) { s.CEG.NodeWidth = 0 },
			wantMsg: "ceg.node_width must be > 0",
		},
		{
			name:    "negative id min",
			mutate:  func(s *Snapshot) { s.ID.Min = -1 },
			wantMsg: "id.min must be >= 0",
		},
		{
			name:    "base id with separator",
			mutate:  func(s *Snapshot) { s.CEG.Node.BaseID = "my-node" },
			wantMsg: "contains id.separator",
		},
		{
			name:    "empty base url",
			mutate:  func(s *Snapshot) { s.BaseURL = "" },
			wantMsg: "base_url cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	s := Defaults()
	s.CEG.NodeWidth = 0
	s.CEG.NodeHeight = -5
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ceg.node_width")
	assert.Contains(t, err.Error(), "ceg.node_height")
	assert.False(t, errors.Is(err, errors.ErrUnknownKey))
}

func TestAlphabetListingOrder(t *testing.T) {
	assert.Equal(t, IDAllowedChars, strings.Join(AllowedChars(), ""))
}

func TestSingleByteRules(t *testing.T) {
	// mirrors the compile-time bounds next to the constants
	assert.Len(t, IDSeparator, 1)
	assert.Len(t, IDForbiddenReplacement, 1)
	assert.Equal(t, uint(0), uint(len(IDSeparator)-1))
	assert.Equal(t, uint(0), uint(1-len(IDForbiddenReplacement)))
}
