// Package registry holds the static configuration of the cause-effect graph
// (CEG) editor: REST base path, editor layout dimensions, templates for new
// models, nodes and connections, and the rules used to build element ids.
//
// Every value is a compile-time constant. There is nothing to load and
// nothing to mutate; readers on any goroutine see the same values.
//
// Identifiers have the form <prefix><IDSeparator><n>, e.g. "node-3". The
// prefix only uses characters from IDAllowedChars and the separator is not
// one of them, so splitting on the last separator always recovers the
// prefix and the numeric suffix. The package init refuses to start the
// program if that (or any other invariant checked by Check) does not hold.
package registry

// REST
const (
	BaseURL = "services/rest/"
)

// Editor layout, in pixels unless noted
const (
	NodeWidth  = 150
	NodeHeight = 50

	EditorHeight          = 1000
	EditorDescriptionRows = 9 // rows of the description text area
)

// Model template
const (
	ModelBaseID         = "model"
	NewModelName        = "New Model"
	NewModelDescription = ""
)

// Node template
const (
	NodeBaseID         = "node"
	NewNodeName        = "New Node"
	NewNodeDescription = ""
	NewNodeX           = 100
	NewNodeY           = 100
)

// Connection template
const (
	ConnectionBaseID         = "conn"
	NewConnectionName        = "New Connection"
	NewConnectionDescription = ""
)

// Identifier rules
const (
	// IDSeparator separates an id prefix from its number. Must not be in IDAllowedChars.
	IDSeparator = "-"

	// IDAllowedChars is the alphabet of id prefixes. The letter u is not part
	// of it; keep the listing as is, id generation relies on this exact set.
	IDAllowedChars = "abcdefghijklmnopqrstvwxyz_"

	// IDForbiddenReplacement replaces characters outside IDAllowedChars.
	IDForbiddenReplacement = "_"

	// IDMin is the lowest numeric suffix handed out.
	IDMin = 1
)

// Compile-time bounds: these fail to build when a value goes out of range.
const (
	_ uint = NodeWidth - 1
	_ uint = NodeHeight - 1
	_ uint = EditorHeight - 1
	_ uint = EditorDescriptionRows - 1
	_ uint = IDMin

	// exactly one byte each
	_ uint = uint(len(IDSeparator) - 1)
	_ uint = uint(1 - len(IDSeparator))
	_ uint = uint(len(IDForbiddenReplacement) - 1)
	_ uint = uint(1 - len(IDForbiddenReplacement))
)
