package models

import "time"

// Class is a live or upcoming session announced on the site.
type Class struct {
	ID         string      `db:"id" json:"id"`
	Name       string      `db:"name" json:"name"`
	Status     ClassStatus `db:"status" json:"status"`
	Schedule   string      `db:"schedule" json:"schedule"`
	Time       string      `db:"time" json:"time"`
	University University  `db:"university" json:"university"`
	College    string      `db:"college" json:"college,omitempty"`
	Branch     Branch      `db:"branch" json:"branch"`
	Semester   Semester    `db:"semester" json:"semester"`
	CreatedAt  time.Time   `db:"created_at" json:"createdAt"`
}

// Validate checks the document against the class schema.
func (c *Class) Validate() error {
	var errs ValidationErrors
	if blank(c.Name) {
		errs.add("name", "is required")
	}
	if c.Status == "" {
		errs.add("status", "is required")
	} else if !c.Status.Valid() {
		errs.add("status", "must be one of ongoing, upcoming")
	}
	if blank(c.Schedule) {
		errs.add("schedule", "is required")
	}
	if blank(c.Time) {
		errs.add("time", "is required")
	}
	if c.Branch == "" {
		errs.add("branch", "is required")
	} else if !c.Branch.Valid() {
		errs.add("branch", "must be one of cse, ece, eee, mech, civil")
	}
	if c.Semester == "" {
		errs.add("semester", "is required")
	} else if !c.Semester.Valid() {
		errs.add("semester", "must be one of 1st..8th")
	}

	aff, err := NewAffiliation(c.University, "", c.College, ClassAffiliationRules)
	if err != nil {
		errs = append(errs, err.(ValidationErrors)...)
	} else {
		c.College = aff.College()
	}
	return errs.err()
}
