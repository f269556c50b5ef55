package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/registry"
)

// RenderSnapshot writes a two-column key/value table of s in key order.
func RenderSnapshot(w io.Writer, s registry.Snapshot) error {
	data := pterm.TableData{{"Key", "Value"}}
	for _, key := range registry.Keys() {
		value, _ := s.Lookup(key)
		data = append(data, []string{key, FormatValue(value)})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// FormatValue renders a registry value for humans. Strings are quoted so
// empty descriptions stay visible.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprint(val)
	}
}
