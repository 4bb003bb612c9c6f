package models

// Affiliation is the university-keyed variant of a document. Each variant carries
// only the optional field that applies to it.
type Affiliation interface {
	University() University
	Scheme() Scheme
	College() string
}

// VTUAffiliation applies to VTU-affiliated documents.
type VTUAffiliation struct {
	SchemeYear Scheme
}

func (a VTUAffiliation) University() University { return UniversityVTU }
func (a VTUAffiliation) Scheme() Scheme         { return a.SchemeYear }
func (a VTUAffiliation) College() string        { return "" }

// AutonomousAffiliation applies to documents of an autonomous college.
type AutonomousAffiliation struct {
	CollegeName string
}

func (a AutonomousAffiliation) University() University { return UniversityAutonomous }
func (a AutonomousAffiliation) Scheme() Scheme         { return "" }
func (a AutonomousAffiliation) College() string        { return a.CollegeName }

// AffiliationRules controls which variant detail is mandatory.
type AffiliationRules struct {
	RequireScheme  bool
	RequireCollege bool
}

var (
	// ResourceAffiliationRules: a VTU resource needs a scheme, an autonomous one a college.
	ResourceAffiliationRules = AffiliationRules{RequireScheme: true, RequireCollege: true}
	// ClassAffiliationRules keeps both details optional.
	ClassAffiliationRules = AffiliationRules{}
)

// NewAffiliation validates the university-specific fields and returns the
// matching variant. Fields that do not belong to the variant are dropped.
func NewAffiliation(university University, scheme Scheme, college string, rules AffiliationRules) (Affiliation, error) {
	var errs ValidationErrors
	switch university {
	case UniversityVTU:
		if scheme == "" {
			if rules.RequireScheme {
				errs.add("scheme", "is required for vtu")
			}
		} else if !scheme.Valid() {
			errs.add("scheme", "must be one of 2018, 2021, 2022, 2025")
		}
		if err := errs.err(); err != nil {
			return nil, err
		}
		return VTUAffiliation{SchemeYear: scheme}, nil
	case UniversityAutonomous:
		if blank(college) && rules.RequireCollege {
			errs.add("college", "is required for autonomous")
			return nil, errs
		}
		return AutonomousAffiliation{CollegeName: college}, nil
	case "":
		errs.add("university", "is required")
	default:
		errs.add("university", "must be one of vtu, autonomous")
	}
	return nil, errs
}
