// Package validation checks element ids, names and descriptions before
// they are stored, and the structure of an element tree: ids unique among
// siblings and connections pointing at sibling nodes.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/teranos/cegconf/ceg"
	"github.com/teranos/cegconf/errors"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxTextLength bounds names and descriptions, in runes.
	MaxTextLength = 4000

	// NameForbiddenChars may not appear in element names.
	NameForbiddenChars = ",;|"

	// Stored ids are more permissive than generated ones: upper case,
	// digits and the separator are accepted.
	idPattern = regexp.MustCompile(`^[a-zA-Z_0-9\-]+$`)
)

func init() {
	validate = validator.New()
	mustRegister("cegid", func(fl validator.FieldLevel) bool {
		return checkID(fl.Field().String()) == nil
	})
	mustRegister("cegname", func(fl validator.FieldLevel) bool {
		return checkName(fl.Field().String()) == nil
	})
	mustRegister("cegtext", func(fl validator.FieldLevel) bool {
		return checkText(fl.Field().String()) == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(errors.AssertionFailedf("failed to register %s validation: %v", tag, err))
	}
}

// ValidateID checks a stored element id.
func ValidateID(id string) error {
	return checkID(id)
}

// ValidateName checks an element name.
func ValidateName(name string) error {
	return checkName(name)
}

// ValidateText checks a free-text value such as a description.
func ValidateText(text string) error {
	return checkText(text)
}

func checkID(id string) error {
	if id == "" {
		return errors.NewInvalidIDError("id is empty")
	}
	if strings.TrimSpace(id) == "" {
		return errors.NewInvalidIDError("id is blank")
	}
	if !idPattern.MatchString(id) {
		return errors.WithHint(
			errors.NewInvalidIDError("id %q contains invalid characters", id),
			"only letters, digits, '_' and '-' are allowed")
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return errors.NewInvalidNameError("name is empty")
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidNameError("name is blank")
	}
	if i := strings.IndexAny(name, NameForbiddenChars); i >= 0 {
		return errors.NewInvalidNameError("name %q contains %q", name, name[i:i+1])
	}
	return checkText(name)
}

func checkText(text string) error {
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return errors.Wrapf(errors.ErrTextTooLong, "%d characters, maximum is %d", n, MaxTextLength)
	}
	return nil
}

// ValidateElement checks the fields of e and all its descendants.
func ValidateElement(e *ceg.Element) error {
	if e == nil {
		return errors.New("element cannot be nil")
	}
	if err := validate.Struct(e); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateTree runs ValidateElement and then the structural checks. The
// same id may appear in different branches, but never twice among the
// children of one element.
func ValidateTree(root *ceg.Element) error {
	if err := ValidateElement(root); err != nil {
		return err
	}
	var errs []error
	walk(root, &errs)
	return errors.Join(errs...)
}

func walk(parent *ceg.Element, errs *[]error) {
	seen := make(map[string]bool, len(parent.Children))
	nodes := make(map[string]bool)
	for _, child := range parent.Children {
		if child == nil {
			continue
		}
		if seen[child.ID] {
			*errs = append(*errs, errors.Wrapf(errors.ErrDuplicateID, "%q appears twice under %q", child.ID, parent.ID))
		}
		seen[child.ID] = true
		if child.Kind == ceg.KindNode {
			nodes[child.ID] = true
		}
	}

	for _, child := range parent.Children {
		if child == nil {
			continue
		}
		if child.Kind == ceg.KindConnection {
			for _, end := range []string{child.Source, child.Target} {
				if !nodes[end] {
					*errs = append(*errs, errors.NewInvalidIDError("connection %q refers to %q, which is not a node under %q", child.ID, end, parent.ID))
				}
			}
		}
		walk(child, errs)
	}
}

// formatValidationError converts validator errors to the package sentinels
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	errs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Namespace()
		value := fmt.Sprint(fe.Value())

		switch fe.Tag() {
		case "cegid":
			errs = append(errs, errors.Wrap(checkID(value), field))
		case "cegname":
			errs = append(errs, errors.Wrap(checkName(value), field))
		case "cegtext":
			errs = append(errs, errors.Wrap(checkText(value), field))
		case "required_if":
			errs = append(errs, errors.NewInvalidIDError("%s is required for connections", field))
		case "oneof":
			errs = append(errs, errors.Newf("%s: %q is not one of %s", field, value, fe.Param()))
		default:
			errs = append(errs, errors.Newf("%s: validation failed (%s)", field, fe.Tag()))
		}
	}
	return errors.Join(errs...)
}
