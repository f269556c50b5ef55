// Package ids builds, parses and sanitizes element identifiers following
// the rules in the registry: <prefix><separator><n> with n >= IDMin.
package ids

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/registry"
)

// Format joins a prefix and a number: Format("node", 3) == "node-3".
func Format(prefix string, n int) string {
	return prefix + registry.IDSeparator + strconv.Itoa(n)
}

// Parse splits an id on its last separator. The suffix must be a decimal
// number without leading zeros, no smaller than registry.IDMin, so that
// Format(Parse(id)) == id.
func Parse(id string) (prefix string, n int, err error) {
	i := strings.LastIndex(id, registry.IDSeparator)
	if i < 0 {
		return "", 0, errors.WithHint(
			errors.NewInvalidIDError("%q has no %q separator", id, registry.IDSeparator),
			"ids look like "+Format(registry.NodeBaseID, registry.IDMin))
	}

	prefix, suffix := id[:i], id[i+len(registry.IDSeparator):]
	if prefix == "" {
		return "", 0, errors.NewInvalidIDError("%q has an empty prefix", id)
	}
	if suffix == "" || strings.TrimFunc(suffix, isDigit) != "" {
		return "", 0, errors.NewInvalidIDError("%q has a non-numeric suffix %q", id, suffix)
	}
	if len(suffix) > 1 && suffix[0] == '0' {
		return "", 0, errors.NewInvalidIDError("%q suffix %q has leading zeros", id, suffix)
	}

	n, err = strconv.Atoi(suffix)
	if err != nil {
		return "", 0, errors.Wrap(errors.NewInvalidIDError("%q suffix out of range", id), err.Error())
	}
	if n < registry.IDMin {
		return "", 0, errors.NewInvalidIDError("%q suffix %d is below %d", id, n, registry.IDMin)
	}
	return prefix, n, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Sanitize maps free text onto the id alphabet: letters are lowercased and
// every other rune outside the alphabet becomes the forbidden replacement.
// Empty text yields a single replacement character. Sanitize is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return registry.IDForbiddenReplacement
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if registry.IsAllowed(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(registry.IDForbiddenReplacement)
	}
	return sb.String()
}

// Next returns the id following the highest suffix already used for
// prefix among existing. Ids with another prefix, or that do not parse,
// are ignored. The result is never below registry.IDMin, so an empty
// container starts at Format(prefix, IDMin). Once a prefix has reached
// the largest int suffix there is no next id.
func Next(prefix string, existing []string) (string, error) {
	next := registry.IDMin
	for _, id := range existing {
		p, n, err := Parse(id)
		if err != nil || p != prefix {
			continue
		}
		if n == math.MaxInt {
			return "", errors.NewInvalidIDError("%q already uses the largest suffix", id)
		}
		if n >= next {
			next = n + 1
		}
	}
	return Format(prefix, next), nil
}

// NewModelID returns the next free model id.
func NewModelID(existing []string) (string, error) {
	return Next(registry.ModelBaseID, existing)
}

// NewNodeID returns the next free node id.
func NewNodeID(existing []string) (string, error) {
	return Next(registry.NodeBaseID, existing)
}

// NewConnectionID returns the next free connection id.
func NewConnectionID(existing []string) (string, error) {
	return Next(registry.ConnectionBaseID, existing)
}

// FromName derives an id for a named element, e.g. "Main Flow" -> "main_flow-1".
func FromName(name string, existing []string) (string, error) {
	return Next(Sanitize(name), existing)
}
