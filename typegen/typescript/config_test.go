package typescript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/cegconf/registry"
)

func TestGenerateConfigClass(t *testing.T) {
	out, err := GenerateConfigClass(registry.Defaults(), Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "/* eslint-disable */\n"))
	assert.Contains(t, out, "export class Config {\n")
	assert.Contains(t, out, "public static readonly BASE_URL: string = 'services/rest/';")
	assert.Contains(t, out, "public static readonly CEG_NODE_WIDTH: number = 150;")
	assert.Contains(t, out, "public static readonly CEG_NEW_NODE_DESCRIPTION: string = '';")
	assert.Contains(t, out, "public static readonly CEG_EDITOR_DESCRIPTION_ROWS: number = 9;")
	assert.Contains(t, out, "public static readonly ID_SEP: string = '-';")
	assert.Contains(t, out, "public static readonly ID_MIN: number = 1;")
	assert.Contains(t, out, "ID_ALLOWED_CHARS: string[] = ['a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'v', 'w', 'x', 'y', 'z', '_'];")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestGenerateConfigClass_AllMembers(t *testing.T) {
	out, err := GenerateConfigClass(registry.Defaults(), Options{})
	require.NoError(t, err)

	names := MemberNames()
	assert.Len(t, names, len(registry.Keys()))
	for _, name := range names {
		assert.Contains(t, out, " "+name+": ")
	}
}

func TestGenerateConfigClass_ClassNameAndEscaping(t *testing.T) {
	s := registry.Defaults()
	s.CEG.Node.Name = `Bob's \ node`

	out, err := GenerateConfigClass(s, Options{ClassName: "EditorConfig"})
	require.NoError(t, err)
	assert.Contains(t, out, "export class EditorConfig {")
	assert.Contains(t, out, `CEG_NEW_NODE_NAME: string = 'Bob\'s \\ node';`)
}

func TestWriteConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "web", "config")

	path, err := WriteConfigFile(dir, "config.ts", registry.Defaults(), Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.ts"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CEG_NEW_CONNECTION_NAME: string = 'New Connection';")
}
