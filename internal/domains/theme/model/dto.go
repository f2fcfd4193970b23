package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	keyPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	forbiddenChar = ";{}<>"
)

// SafeValue - giá trị không thể thoát khỏi khai báo CSS
func SafeValue(v string) bool {
	return !strings.ContainsAny(v, forbiddenChar)
}

// UpdateThemeRequest - section -> key -> value, merge từng key vào theme hiện tại
type UpdateThemeRequest map[string]map[string]string

func (r UpdateThemeRequest) Validate() error {
	if len(r) == 0 {
		return validation.Errors{"theme": validation.NewError("validation_empty", "no theme values provided")}
	}

	errs := validation.Errors{}
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := CSSPrefixes[name]; !ok {
			errs[name] = validation.NewError("validation_unknown_section", "unknown theme section")
			continue
		}
		for key, value := range r[name] {
			field := name + "." + key
			switch {
			case !keyPattern.MatchString(key):
				errs[field] = validation.NewError("validation_key", "key must be alphanumeric camelCase")
			case strings.TrimSpace(value) == "":
				errs[field] = validation.NewError("validation_required", "cannot be blank")
			case len(value) > 200:
				errs[field] = validation.NewError("validation_length", "must be at most 200 characters")
			case !SafeValue(value):
				errs[field] = validation.NewError("validation_css_value", fmt.Sprintf("must not contain any of %q", forbiddenChar))
			}
		}
	}
	return errs.Filter()
}
