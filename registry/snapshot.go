package registry

import (
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/teranos/cegconf/errors"
)

// Snapshot is a value copy of the registry, shaped for export.
// Changing a Snapshot never changes the registry.
type Snapshot struct {
	BaseURL string      `json:"base_url" yaml:"base_url" toml:"base_url" mapstructure:"base_url"`
	CEG     CEGSettings `json:"ceg" yaml:"ceg" toml:"ceg" mapstructure:"ceg"`
	ID      IDRules     `json:"id" yaml:"id" toml:"id" mapstructure:"id"`
}

// CEGSettings groups the editor layout and the templates for new elements.
type CEGSettings struct {
	NodeWidth  int            `json:"node_width" yaml:"node_width" toml:"node_width" mapstructure:"node_width"`
	NodeHeight int            `json:"node_height" yaml:"node_height" toml:"node_height" mapstructure:"node_height"`
	Model      Template       `json:"model" yaml:"model" toml:"model" mapstructure:"model"`
	Node       NodeTemplate   `json:"node" yaml:"node" toml:"node" mapstructure:"node"`
	Connection Template       `json:"connection" yaml:"connection" toml:"connection" mapstructure:"connection"`
	Editor     EditorSettings `json:"editor" yaml:"editor" toml:"editor" mapstructure:"editor"`
}

// Template carries the id prefix and default texts of a new element.
type Template struct {
	BaseID      string `json:"base_id" yaml:"base_id" toml:"base_id" mapstructure:"base_id"`
	Name        string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Description string `json:"description" yaml:"description" toml:"description" mapstructure:"description"`
}

// NodeTemplate is a Template plus the canvas position of a new node.
type NodeTemplate struct {
	BaseID      string `json:"base_id" yaml:"base_id" toml:"base_id" mapstructure:"base_id"`
	Name        string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Description string `json:"description" yaml:"description" toml:"description" mapstructure:"description"`
	X           int    `json:"x" yaml:"x" toml:"x" mapstructure:"x"`
	Y           int    `json:"y" yaml:"y" toml:"y" mapstructure:"y"`
}

// EditorSettings sizes the editor canvas and its description field.
type EditorSettings struct {
	Height          int `json:"height" yaml:"height" toml:"height" mapstructure:"height"`
	DescriptionRows int `json:"description_rows" yaml:"description_rows" toml:"description_rows" mapstructure:"description_rows"`
}

// IDRules describes how element ids are built and sanitized.
type IDRules struct {
	Separator            string   `json:"separator" yaml:"separator" toml:"separator" mapstructure:"separator"`
	AllowedChars         []string `json:"allowed_chars" yaml:"allowed_chars" toml:"allowed_chars" mapstructure:"allowed_chars"`
	ForbiddenReplacement string   `json:"forbidden_replacement" yaml:"forbidden_replacement" toml:"forbidden_replacement" mapstructure:"forbidden_replacement"`
	Min                  int      `json:"min" yaml:"min" toml:"min" mapstructure:"min"`
}

// Dotted keys, in registry listing order.
const (
	KeyBaseURL                = "base_url"
	KeyNodeWidth              = "ceg.node_width"
	KeyNodeHeight             = "ceg.node_height"
	KeyModelBaseID            = "ceg.model.base_id"
	KeyModelName              = "ceg.model.name"
	KeyModelDescription       = "ceg.model.description"
	KeyNodeBaseID             = "ceg.node.base_id"
	KeyNodeName               = "ceg.node.name"
	KeyNodeDescription        = "ceg.node.description"
	KeyNodeX                  = "ceg.node.x"
	KeyNodeY                  = "ceg.node.y"
	KeyConnectionBaseID       = "ceg.connection.base_id"
	KeyConnectionName         = "ceg.connection.name"
	KeyConnectionDescription  = "ceg.connection.description"
	KeyEditorHeight           = "ceg.editor.height"
	KeyEditorDescriptionRows  = "ceg.editor.description_rows"
	KeyIDSeparator            = "id.separator"
	KeyIDAllowedChars         = "id.allowed_chars"
	KeyIDForbiddenReplacement = "id.forbidden_replacement"
	KeyIDMin                  = "id.min"
)

type field struct {
	key string
	get func(*Snapshot) any
}

var fields = []field{
	{KeyBaseURL, func(s *Snapshot) any { return s.BaseURL }},
	{KeyNodeWidth, func(s *Snapshot) any { return s.CEG.NodeWidth }},
	{KeyNodeHeight, func(s *Snapshot) any { return s.CEG.NodeHeight }},
	{KeyModelBaseID, func(s *Snapshot) any { return s.CEG.Model.BaseID }},
	{KeyModelName, func(s *Snapshot) any { return s.CEG.Model.Name }},
	{KeyModelDescription, func(s *Snapshot) any { return s.CEG.Model.Description }},
	{KeyNodeBaseID, func(s *Snapshot) any { return s.CEG.Node.BaseID }},
	{KeyNodeName, func(s *Snapshot) any { return s.CEG.Node.Name }},
	{KeyNodeDescription, func(s *Snapshot) any { return s.CEG.Node.Description }},
	{KeyNodeX, func(s *Snapshot) any { return s.CEG.Node.X }},
	{KeyNodeY, func(s *Snapshot) any { return s.CEG.Node.Y }},
	{KeyConnectionBaseID, func(s *Snapshot) any { return s.CEG.Connection.BaseID }},
	{KeyConnectionName, func(s *Snapshot) any { return s.CEG.Connection.Name }},
	{KeyConnectionDescription, func(s *Snapshot) any { return s.CEG.Connection.Description }},
	{KeyEditorHeight, func(s *Snapshot) any { return s.CEG.Editor.Height }},
	{KeyEditorDescriptionRows, func(s *Snapshot) any { return s.CEG.Editor.DescriptionRows }},
	{KeyIDSeparator, func(s *Snapshot) any { return s.ID.Separator }},
	{KeyIDAllowedChars, func(s *Snapshot) any { return append([]string(nil), s.ID.AllowedChars...) }},
	{KeyIDForbiddenReplacement, func(s *Snapshot) any { return s.ID.ForbiddenReplacement }},
	{KeyIDMin, func(s *Snapshot) any { return s.ID.Min }},
}

// Defaults returns the compiled registry values.
func Defaults() Snapshot {
	return Snapshot{
		BaseURL: BaseURL,
		CEG: CEGSettings{
			NodeWidth:  NodeWidth,
			NodeHeight: NodeHeight,
			Model: Template{
				BaseID:      ModelBaseID,
				Name:        NewModelName,
				Description: NewModelDescription,
			},
			Node: NodeTemplate{
				BaseID:      NodeBaseID,
				Name:        NewNodeName,
				Description: NewNodeDescription,
				X:           NewNodeX,
				Y:           NewNodeY,
			},
			Connection: Template{
				BaseID:      ConnectionBaseID,
				Name:        NewConnectionName,
				Description: NewConnectionDescription,
			},
			Editor: EditorSettings{
				Height:          EditorHeight,
				DescriptionRows: EditorDescriptionRows,
			},
		},
		ID: IDRules{
			Separator:            IDSeparator,
			AllowedChars:         AllowedChars(),
			ForbiddenReplacement: IDForbiddenReplacement,
			Min:                  IDMin,
		},
	}
}

// Keys lists every dotted key in registry listing order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Lookup returns the compiled value for a dotted key.
func Lookup(key string) (any, bool) {
	s := Defaults()
	return s.Lookup(key)
}

// Lookup returns the snapshot value for a dotted key.
func (s Snapshot) Lookup(key string) (any, bool) {
	for _, f := range fields {
		if f.key == key {
			return f.get(&s), true
		}
	}
	return nil, false
}

// Map exports the snapshot as a flat dotted-key map.
func (s Snapshot) Map() map[string]any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.key] = f.get(&s)
	}
	return m
}

// FromMap rebuilds a snapshot from a dotted-key map as produced by Map.
// Every key must be present and known.
func FromMap(m map[string]any) (Snapshot, error) {
	known := knownKeys()

	var unknown, missing []string
	for key := range m {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	for _, f := range fields {
		if _, ok := m[f.key]; !ok {
			missing = append(missing, f.key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Snapshot{}, errors.Wrapf(errors.ErrUnknownKey, "%s", strings.Join(unknown, ", "))
	}
	if len(missing) > 0 {
		return Snapshot{}, errors.Newf("snapshot is missing keys: %s", strings.Join(missing, ", "))
	}

	var s Snapshot
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &s,
		ErrorUnused: true,
		ErrorUnset:  true,
	})
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "failed to create snapshot decoder")
	}
	if err := decoder.Decode(unflatten(m)); err != nil {
		return Snapshot{}, errors.Wrap(err, "failed to decode snapshot")
	}
	return s, nil
}

func knownKeys() map[string]bool {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.key] = true
	}
	return known
}

// unknownKeys walks a nested document as decoded from JSON or YAML and
// returns the sorted dotted keys the registry does not define. Type
// mismatches are left to the struct decoder.
func unknownKeys(doc map[string]any) []string {
	known := knownKeys()
	groups := make(map[string]bool)
	for key := range known {
		for i := strings.Index(key, "."); i >= 0; i = nextDot(key, i) {
			groups[key[:i]] = true
		}
	}

	var unknown []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			switch {
			case strings.Contains(k, "."):
				// dotted names belong to Map, not to the nested document
				unknown = append(unknown, key)
			case known[key]:
			case groups[key]:
				if child, ok := v.(map[string]any); ok {
					walk(key, child)
				}
			default:
				unknown = append(unknown, key)
			}
		}
	}
	walk("", doc)
	sort.Strings(unknown)
	return unknown
}

func nextDot(key string, i int) int {
	j := strings.Index(key[i+1:], ".")
	if j < 0 {
		return -1
	}
	return i + 1 + j
}

// unflatten turns {"ceg.node.x": 1} into {"ceg": {"node": {"x": 1}}}.
// Keys must already be known registry keys.
func unflatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range m {
		parts := strings.Split(key, ".")
		node := out
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return out
}

// Drift is one key whose value differs between two snapshots.
type Drift struct {
	Key  string `json:"key" yaml:"key"`
	Want any    `json:"want" yaml:"want"`
	Got  any    `json:"got" yaml:"got"`
}

// Diff lists the keys where other differs from s, in listing order.
func (s Snapshot) Diff(other Snapshot) []Drift {
	var drift []Drift
	for _, f := range fields {
		want, got := f.get(&s), f.get(&other)
		if !cmp.Equal(want, got) {
			drift = append(drift, Drift{Key: f.key, Want: want, Got: got})
		}
	}
	return drift
}
