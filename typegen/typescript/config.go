// Package typescript renders the registry as the TypeScript Config class
// consumed by the editor front-end, so both sides share one set of values.
package typescript

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/registry"
)

// Options controls the generated class.
type Options struct {
	ClassName string // default: Config
}

// member maps a registry key onto a static member of the class.
type member struct {
	key     string
	name    string
	comment string
}

// Groups are separated by a blank line in the output.
var groups = [][]member{
	{
		{key: registry.KeyBaseURL, name: "BASE_URL"},
	},
	{
		{key: registry.KeyNodeWidth, name: "CEG_NODE_WIDTH"},
		{key: registry.KeyNodeHeight, name: "CEG_NODE_HEIGHT"},
	},
	{
		{key: registry.KeyModelBaseID, name: "CEG_MODEL_BASE_ID"},
		{key: registry.KeyModelName, name: "CEG_NEW_MODEL_NAME"},
		{key: registry.KeyModelDescription, name: "CEG_NEW_MODEL_DESCRIPTION"},
	},
	{
		{key: registry.KeyNodeBaseID, name: "CEG_NODE_BASE_ID"},
		{key: registry.KeyNodeName, name: "CEG_NEW_NODE_NAME"},
		{key: registry.KeyNodeDescription, name: "CEG_NEW_NODE_DESCRIPTION"},
		{key: registry.KeyNodeX, name: "CEG_NEW_NODE_X"},
		{key: registry.KeyNodeY, name: "CEG_NEW_NODE_Y"},
	},
	{
		{key: registry.KeyConnectionBaseID, name: "CEG_CONNECTION_BASE_ID"},
		{key: registry.KeyConnectionName, name: "CEG_NEW_CONNECTION_NAME"},
		{key: registry.KeyConnectionDescription, name: "CEG_NEW_CONNECTION_DESCRIPTION"},
	},
	{
		{key: registry.KeyEditorHeight, name: "CEG_EDITOR_HEIGHT"},
	},
	{
		{key: registry.KeyEditorDescriptionRows, name: "CEG_EDITOR_DESCRIPTION_ROWS"},
	},
	{
		{key: registry.KeyIDSeparator, name: "ID_SEP", comment: "The separator to separate strings from id-numbers. Must not be included in the allowed chars."},
		{key: registry.KeyIDAllowedChars, name: "ID_ALLOWED_CHARS"},
		{key: registry.KeyIDForbiddenReplacement, name: "ID_FORBIDDEN_REPLACEMENT"},
		{key: registry.KeyIDMin, name: "ID_MIN"},
	},
}

// MemberNames lists the generated static member names in output order.
func MemberNames() []string {
	var names []string
	for _, g := range groups {
		for _, m := range g {
			names = append(names, m.name)
		}
	}
	return names
}

// GenerateConfigClass renders s as an exported class of readonly statics.
func GenerateConfigClass(s registry.Snapshot, opts Options) (string, error) {
	className := opts.ClassName
	if className == "" {
		className = "Config"
	}

	var sb strings.Builder
	sb.WriteString("/* eslint-disable */\n")
	sb.WriteString("// Code generated by cegconf typegen. DO NOT EDIT.\n\n")
	sb.WriteString(fmt.Sprintf("export class %s {\n", className))

	for i, g := range groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, m := range g {
			value, ok := s.Lookup(m.key)
			if !ok {
				return "", errors.Wrapf(errors.ErrUnknownKey, "%s", m.key)
			}
			tsType, literal, err := tsValue(value)
			if err != nil {
				return "", errors.Wrapf(err, "cannot render %s", m.key)
			}
			if m.comment != "" {
				sb.WriteString(fmt.Sprintf("    // %s\n", m.comment))
			}
			sb.WriteString(fmt.Sprintf("    public static readonly %s: %s = %s;\n", m.name, tsType, literal))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// tsValue returns the TypeScript type and literal for a registry value.
func tsValue(v any) (string, string, error) {
	switch val := v.(type) {
	case string:
		return "string", quote(val), nil
	case int:
		return "number", strconv.Itoa(val), nil
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = quote(s)
		}
		return "string[]", "[" + strings.Join(quoted, ", ") + "]", nil
	}
	return "", "", errors.Newf("unsupported value type %T", v)
}

// quote renders a single-quoted TypeScript string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// WriteConfigFile generates the class into dir/fileName and returns the path.
func WriteConfigFile(dir, fileName string, s registry.Snapshot, opts Options) (string, error) {
	content, err := GenerateConfigClass(s, opts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", dir)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", fileName)
	}
	return path, nil
}
