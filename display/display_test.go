package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/cegconf/registry"
)

func TestShouldOutputJSON(t *testing.T) {
	t.Run("nil command", func(t *testing.T) {
		assert.False(t, ShouldOutputJSON(nil))
	})

	t.Run("local flag", func(t *testing.T) {
		cmd := &cobra.Command{Use: "x"}
		cmd.Flags().Bool("json", false, "")
		assert.False(t, ShouldOutputJSON(cmd))
		require.NoError(t, cmd.Flags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(cmd))
	})

	t.Run("root persistent flag", func(t *testing.T) {
		root := &cobra.Command{Use: "root"}
		root.PersistentFlags().Bool("json", false, "")
		child := &cobra.Command{Use: "child"}
		root.AddCommand(child)
		assert.False(t, ShouldOutputJSON(child))
		require.NoError(t, root.PersistentFlags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(child))
	})

	t.Run("no flag at all", func(t *testing.T) {
		assert.False(t, ShouldOutputJSON(&cobra.Command{Use: "bare"}))
	})
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["a"])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, `""`, FormatValue(""))
	assert.Equal(t, `"New Node"`, FormatValue("New Node"))
	assert.Equal(t, "150", FormatValue(150))
	assert.Equal(t, "a b _", FormatValue([]string{"a", "b", "_"}))
}

func TestRenderSnapshot(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	require.NoError(t, RenderSnapshot(&buf, registry.Defaults()))

	out := buf.String()
	for _, key := range registry.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, `"services/rest/"`)
	assert.Contains(t, out, "1000")
}
