package models

// University is the affiliation root of the catalog taxonomy.
type University string

const (
	UniversityVTU        University = "vtu"
	UniversityAutonomous University = "autonomous"
)

// Valid reports membership in the closed set of universities.
func (u University) Valid() bool {
	return u == UniversityVTU || u == UniversityAutonomous
}

// Scheme is the curriculum revision year of a VTU resource.
type Scheme string

const (
	Scheme2018 Scheme = "2018"
	Scheme2021 Scheme = "2021"
	Scheme2022 Scheme = "2022"
	Scheme2025 Scheme = "2025"
)

func (s Scheme) Valid() bool {
	switch s {
	case Scheme2018, Scheme2021, Scheme2022, Scheme2025:
		return true
	}
	return false
}

// Branch is the academic discipline.
type Branch string

const (
	BranchCSE   Branch = "cse"
	BranchECE   Branch = "ece"
	BranchEEE   Branch = "eee"
	BranchMech  Branch = "mech"
	BranchCivil Branch = "civil"
)

func (b Branch) Valid() bool {
	switch b {
	case BranchCSE, BranchECE, BranchEEE, BranchMech, BranchCivil:
		return true
	}
	return false
}

// Semester is an ordinal from 1st to 8th.
type Semester string

var semesters = []Semester{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th"}

func (s Semester) Valid() bool {
	for _, candidate := range semesters {
		if s == candidate {
			return true
		}
	}
	return false
}

// ResourceType classifies a downloadable resource.
type ResourceType string

const (
	TypeNotes              ResourceType = "notes"
	TypePYQ                ResourceType = "pyq"
	TypeHandwritten        ResourceType = "handwritten"
	TypeSyllabus           ResourceType = "syllabus"
	TypeImportantQuestions ResourceType = "important-questions"
)

func (t ResourceType) Valid() bool {
	switch t {
	case TypeNotes, TypePYQ, TypeHandwritten, TypeSyllabus, TypeImportantQuestions:
		return true
	}
	return false
}

// ClassStatus tells whether a class is running or announced.
type ClassStatus string

const (
	ClassOngoing  ClassStatus = "ongoing"
	ClassUpcoming ClassStatus = "upcoming"
)

func (s ClassStatus) Valid() bool {
	return s == ClassOngoing || s == ClassUpcoming
}

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

var (
	UniversityOptions = []Option{
		{Value: string(UniversityVTU), Label: "VTU"},
		{Value: string(UniversityAutonomous), Label: "Autonomous"},
	}
	SchemeOptions = []Option{
		{Value: string(Scheme2018), Label: "2018 Scheme"},
		{Value: string(Scheme2021), Label: "2021 Scheme"},
		{Value: string(Scheme2022), Label: "2022 Scheme"},
		{Value: string(Scheme2025), Label: "2025 Scheme"},
	}
	// CollegeOptions is the curated list offered by the console; any non-empty
	// college is accepted by the store.
	CollegeOptions = []Option{
		{Value: "bms", Label: "BMS College"},
		{Value: "rv", Label: "RV College"},
		{Value: "ramaiah", Label: "Ramaiah Institute"},
	}
	BranchOptions = []Option{
		{Value: string(BranchCSE), Label: "Computer Science"},
		{Value: string(BranchECE), Label: "Electronics and Communication (E&C)"},
		{Value: string(BranchEEE), Label: "Electrical and Electronics (EEE)"},
		{Value: string(BranchMech), Label: "Mechanical"},
		{Value: string(BranchCivil), Label: "Civil"},
	}
	ResourceTypeOptions = []Option{
		{Value: string(TypeNotes), Label: "Notes"},
		{Value: string(TypePYQ), Label: "Previous Year Questions"},
		{Value: string(TypeHandwritten), Label: "Handwritten Notes"},
		{Value: string(TypeSyllabus), Label: "Syllabus"},
		{Value: string(TypeImportantQuestions), Label: "Important Questions"},
	}
	ClassStatusOptions = []Option{
		{Value: string(ClassOngoing), Label: "Ongoing"},
		{Value: string(ClassUpcoming), Label: "Upcoming"},
	}
)

// SemesterOptions lists 1st..8th with display labels.
func SemesterOptions() []Option {
	out := make([]Option, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, Option{Value: string(s), Label: string(s) + " Semester"})
	}
	return out
}
