package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates dir and writes a cegconf.toml into it
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPrecedence(t *testing.T) {
	t.Run("project config wins over user config", func(t *testing.T) {
		Reset()
		defer Reset()

		home := t.TempDir()
		project := t.TempDir()
		t.Setenv("HOME", home)

		writeConfig(t, filepath.Join(home, ".cegconf"), `
[output]
format = "yaml"

[typegen]
class_name = "UserConfig"
`)
		writeConfig(t, project, `
[typegen]
class_name = "ProjectConfig"
`)
		t.Chdir(project)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ProjectConfig", cfg.Typegen.ClassName)
		assert.Equal(t, "yaml", cfg.Output.Format, "user value survives when project leaves it unset")
		assert.Equal(t, "config.ts", cfg.Typegen.FileName, "default survives when no file sets it")
	})

	t.Run("environment wins over files", func(t *testing.T) {
		Reset()
		defer Reset()

		home := t.TempDir()
		project := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("CEGCONF_OUTPUT_FORMAT", "toml")

		writeConfig(t, project, `
[output]
format = "json"
`)
		t.Chdir(project)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "toml", cfg.Output.Format)
	})

	t.Run("project config found from a subdirectory", func(t *testing.T) {
		Reset()
		defer Reset()

		t.Setenv("HOME", t.TempDir())
		project := t.TempDir()
		writeConfig(t, project, `
[check]
file = "exported/registry.json"
`)
		nested := filepath.Join(project, "web", "src")
		require.NoError(t, os.MkdirAll(nested, 0755))
		t.Chdir(nested)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "exported/registry.json", cfg.Check.File)
	})
}

func TestConfigFiles(t *testing.T) {
	Reset()
	defer Reset()

	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	projectPath := writeConfig(t, project, "")
	t.Chdir(project)

	files := ConfigFiles()
	require.Len(t, files, 2)

	assert.Equal(t, "user", files[0].Source)
	assert.Equal(t, filepath.Join(home, ".cegconf", ConfigFileName), files[0].Path)
	assert.False(t, files[0].Exists)

	assert.Equal(t, "project", files[1].Source)
	assert.True(t, files[1].Exists)
	// t.TempDir may sit behind a symlink (macOS /var), so compare base names
	assert.Equal(t, filepath.Base(projectPath), filepath.Base(files[1].Path))
}
