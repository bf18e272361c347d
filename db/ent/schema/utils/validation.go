package utils

import "fmt"

// EnumValidator builds a field validator for the string enums the schemas
// store as plain columns (extraction status, review status, doc type).
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
