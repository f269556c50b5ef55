// Package ceg defines the elements of a cause-effect graph as the editor
// creates them: models containing nodes and the connections between them.
package ceg

import (
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/ids"
	"github.com/teranos/cegconf/registry"
)

// Kind tells models, nodes and connections apart.
type Kind string

const (
	KindModel      Kind = "model"
	KindNode       Kind = "node"
	KindConnection Kind = "connection"
)

// Element is a model, node or connection. Position is only meaningful for
// nodes and Source/Target only for connections.
type Element struct {
	ID          string     `json:"id" yaml:"id" validate:"cegid"`
	Kind        Kind       `json:"kind" yaml:"kind" validate:"oneof=model node connection"`
	Name        string     `json:"name" yaml:"name" validate:"cegname"`
	Description string     `json:"description" yaml:"description" validate:"cegtext"`
	X           int        `json:"x,omitempty" yaml:"x,omitempty"`
	Y           int        `json:"y,omitempty" yaml:"y,omitempty"`
	Source      string     `json:"source,omitempty" yaml:"source,omitempty" validate:"required_if=Kind connection"`
	Target      string     `json:"target,omitempty" yaml:"target,omitempty" validate:"required_if=Kind connection"`
	Children    []*Element `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// Template returns the registry template used for new elements of kind.
func Template(kind Kind) (registry.Template, error) {
	s := registry.Defaults()
	switch kind {
	case KindModel:
		return s.CEG.Model, nil
	case KindNode:
		n := s.CEG.Node
		return registry.Template{BaseID: n.BaseID, Name: n.Name, Description: n.Description}, nil
	case KindConnection:
		return s.CEG.Connection, nil
	}
	return registry.Template{}, errors.Newf("unknown element kind %q", kind)
}

// New creates an element of kind with the template name and description
// and the next free id among siblings. New nodes start at the default
// canvas position.
func New(kind Kind, siblings []*Element) (*Element, error) {
	tmpl, err := Template(kind)
	if err != nil {
		return nil, err
	}

	id, err := newID(kind, IDs(siblings))
	if err != nil {
		return nil, err
	}

	e := &Element{
		ID:          id,
		Kind:        kind,
		Name:        tmpl.Name,
		Description: tmpl.Description,
	}
	if kind == KindNode {
		e.X, e.Y = registry.NewNodeX, registry.NewNodeY
	}
	return e, nil
}

func newID(kind Kind, existing []string) (string, error) {
	switch kind {
	case KindModel:
		return ids.NewModelID(existing)
	case KindNode:
		return ids.NewNodeID(existing)
	case KindConnection:
		return ids.NewConnectionID(existing)
	}
	return "", errors.Newf("unknown element kind %q", kind)
}

// NewConnection creates a connection from source to target.
func NewConnection(source, target *Element, siblings []*Element) (*Element, error) {
	if source == nil || target == nil {
		return nil, errors.New("connection needs a source and a target")
	}
	e, err := New(KindConnection, siblings)
	if err != nil {
		return nil, err
	}
	e.Source, e.Target = source.ID, target.ID
	return e, nil
}

// IDs lists the ids of elements, skipping nil entries.
func IDs(elements []*Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if e != nil {
			out = append(out, e.ID)
		}
	}
	return out
}
