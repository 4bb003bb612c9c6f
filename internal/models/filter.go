package models

// FilterAll is the console sentinel meaning "no constraint".
const FilterAll = "all"

func unset(v string) bool {
	return v == "" || v == FilterAll
}

// ResourceFilter narrows a resource list. Empty or "all" fields match everything;
// set fields are combined with AND.
type ResourceFilter struct {
	University string `form:"university"`
	Branch     string `form:"branch"`
	Semester   string `form:"semester"`
	Type       string `form:"type"`
}

// IsZero reports whether the filter constrains nothing.
func (f ResourceFilter) IsZero() bool {
	return unset(f.University) && unset(f.Branch) && unset(f.Semester) && unset(f.Type)
}

func (f ResourceFilter) Matches(r Resource) bool {
	return (unset(f.University) || string(r.University) == f.University) &&
		(unset(f.Branch) || string(r.Branch) == f.Branch) &&
		(unset(f.Semester) || string(r.Semester) == f.Semester) &&
		(unset(f.Type) || string(r.Type) == f.Type)
}

// Apply returns the matching resources in their original order.
func (f ResourceFilter) Apply(items []Resource) []Resource {
	out := make([]Resource, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// ClassFilter narrows a class list with the same rules as ResourceFilter.
type ClassFilter struct {
	University string `form:"university"`
	Branch     string `form:"branch"`
	Semester   string `form:"semester"`
	Status     string `form:"status"`
}

func (f ClassFilter) IsZero() bool {
	return unset(f.University) && unset(f.Branch) && unset(f.Semester) && unset(f.Status)
}

func (f ClassFilter) Matches(c Class) bool {
	return (unset(f.University) || string(c.University) == f.University) &&
		(unset(f.Branch) || string(c.Branch) == f.Branch) &&
		(unset(f.Semester) || string(c.Semester) == f.Semester) &&
		(unset(f.Status) || string(c.Status) == f.Status)
}

func (f ClassFilter) Apply(items []Class) []Class {
	out := make([]Class, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
