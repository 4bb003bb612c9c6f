package models

import "strings"

// FieldError reports one missing or malformed field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Reason
}

// ValidationErrors collects every field problem found on a document.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields returns the offending field names in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v))
	for _, fe := range v {
		out = append(out, fe.Field)
	}
	return out
}

func (v *ValidationErrors) add(field, reason string) {
	*v = append(*v, FieldError{Field: field, Reason: reason})
}

func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
