package registry

import (
	"strings"

	"github.com/teranos/cegconf/errors"
)

func init() {
	if err := Check(); err != nil {
		panic(errors.AssertionFailedf("registry constants are inconsistent: %v", err))
	}
}

// Check verifies the compiled constants. It never fails for a released
// build; the package init calls it so that a bad edit stops the program
// before any id is generated or parsed.
func Check() error {
	return Defaults().Validate()
}

// Validate reports every invariant the snapshot violates, joined into one
// error. A nil result means ids built from these rules parse unambiguously.
func (s Snapshot) Validate() error {
	var errs []error

	positive := []struct {
		key   string
		value int
	}{
		{KeyNodeWidth, s.CEG.NodeWidth},
		{KeyNodeHeight, s.CEG.NodeHeight},
		{KeyEditorHeight, s.CEG.Editor.Height},
		{KeyEditorDescriptionRows, s.CEG.Editor.DescriptionRows},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, errors.Newf("%s must be > 0, got %d", p.key, p.value))
		}
	}
	if s.ID.Min < 0 {
		errs = append(errs, errors.Newf("%s must be >= 0, got %d", KeyIDMin, s.ID.Min))
	}

	if s.BaseURL == "" {
		errs = append(errs, errors.Newf("%s cannot be empty", KeyBaseURL))
	}

	if len([]rune(s.ID.Separator)) != 1 {
		errs = append(errs, errors.Newf("%s must be a single character, got %q", KeyIDSeparator, s.ID.Separator))
	}
	if len([]rune(s.ID.ForbiddenReplacement)) != 1 {
		errs = append(errs, errors.Newf("%s must be a single character, got %q", KeyIDForbiddenReplacement, s.ID.ForbiddenReplacement))
	}

	seen := make(map[string]bool, len(s.ID.AllowedChars))
	for _, c := range s.ID.AllowedChars {
		if len([]rune(c)) != 1 {
			errs = append(errs, errors.Newf("%s entry %q is not a single character", KeyIDAllowedChars, c))
			continue
		}
		if seen[c] {
			errs = append(errs, errors.Newf("%s lists %q twice", KeyIDAllowedChars, c))
		}
		seen[c] = true
	}
	if seen[s.ID.Separator] {
		errs = append(errs, errors.Newf("%s %q must not be in %s", KeyIDSeparator, s.ID.Separator, KeyIDAllowedChars))
	}
	if !seen[s.ID.ForbiddenReplacement] {
		errs = append(errs, errors.Newf("%s %q must be in %s", KeyIDForbiddenReplacement, s.ID.ForbiddenReplacement, KeyIDAllowedChars))
	}

	for _, base := range []struct{ key, value string }{
		{KeyModelBaseID, s.CEG.Model.BaseID},
		{KeyNodeBaseID, s.CEG.Node.BaseID},
		{KeyConnectionBaseID, s.CEG.Connection.BaseID},
	} {
		if base.value == "" {
			errs = append(errs, errors.Newf("%s cannot be empty", base.key))
			continue
		}
		if s.ID.Separator != "" && strings.Contains(base.value, s.ID.Separator) {
			errs = append(errs, errors.Newf("%s %q contains %s %q", base.key, base.value, KeyIDSeparator, s.ID.Separator))
		}
	}

	return errors.Join(errs...)
}
