package models

import (
	"net/url"
	"strings"
	"time"
)

// Resource is a downloadable study material listed in the public catalog.
type Resource struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	SubjectCode string       `db:"subject_code" json:"subjectCode,omitempty"`
	Header      string       `db:"header" json:"header,omitempty"`
	University  University   `db:"university" json:"university"`
	Scheme      Scheme       `db:"scheme" json:"scheme,omitempty"`
	College     string       `db:"college" json:"college,omitempty"`
	Branch      Branch       `db:"branch" json:"branch,omitempty"`
	Semester    Semester     `db:"semester" json:"semester,omitempty"`
	Type        ResourceType `db:"type" json:"type"`
	FileURL     string       `db:"file_url" json:"fileUrl"`
	UploadedAt  time.Time    `db:"uploaded_at" json:"uploadedAt"`
}

// Validate checks the document against the catalog schema and normalises the
// affiliation fields: a VTU resource keeps only its scheme, an autonomous one
// only its college.
func (r *Resource) Validate() error {
	var errs ValidationErrors
	if blank(r.Name) {
		errs.add("name", "is required")
	}
	if r.Type == "" {
		errs.add("type", "is required")
	} else if !r.Type.Valid() {
		errs.add("type", "must be one of notes, pyq, handwritten, syllabus, important-questions")
	}
	if r.Branch != "" && !r.Branch.Valid() {
		errs.add("branch", "must be one of cse, ece, eee, mech, civil")
	}
	if r.Semester != "" && !r.Semester.Valid() {
		errs.add("semester", "must be one of 1st..8th")
	}
	if blank(r.FileURL) {
		errs.add("fileUrl", "is required")
	} else if !ValidFileURL(r.FileURL) {
		errs.add("fileUrl", "must be an absolute http(s) URL or an /uploads/ path")
	}

	aff, err := NewAffiliation(r.University, r.Scheme, r.College, ResourceAffiliationRules)
	if err != nil {
		errs = append(errs, err.(ValidationErrors)...)
	} else {
		r.Scheme, r.College = aff.Scheme(), aff.College()
	}
	return errs.err()
}

// Affiliation returns the university variant of the resource, or nil when the
// university fields are inconsistent.
func (r Resource) Affiliation() Affiliation {
	aff, err := NewAffiliation(r.University, r.Scheme, r.College, ResourceAffiliationRules)
	if err != nil {
		return nil
	}
	return aff
}

// ValidFileURL accepts absolute http(s) URLs and paths served from /uploads/.
func ValidFileURL(raw string) bool {
	if strings.HasPrefix(raw, "/uploads/") && len(raw) > len("/uploads/") {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
