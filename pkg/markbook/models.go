package markbook

// Role is the nesting tag the classifier assigns to a markbook row
type Role string

const (
	RoleHeader     Role = "header"
	RoleUnit       Role = "unit"
	RoleSection    Role = "section"
	RoleAssignment Role = "assignment"
)

// Comment is the teacher remark attached to a markbook row
type Comment struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Row is one classified record from a course markbook.
// Empty or "None" Date, Weight and Denominator mean the cell was blank.
type Row struct {
	Name        string   `json:"name" validate:"required_unless=Role header"`
	RawMark     string   `json:"mark"`
	Date        string   `json:"date,omitempty"`
	Weight      string   `json:"weight,omitempty"`
	Denominator string   `json:"denominator,omitempty"`
	Comment     *Comment `json:"comment,omitempty"`
	Role        Role     `json:"role" validate:"required,oneof=header unit section assignment"`
}

// Assignment is a leaf mark, owned by a Section or directly by a Unit
type Assignment struct {
	Name         string   `json:"name"`
	Mark         Mark     `json:"mark"`
	Weight       Mark     `json:"weight"`
	Denominator  Mark     `json:"denominator"`
	Date         string   `json:"date,omitempty"`
	Comment      *Comment `json:"comment,omitempty"`
	Unit         string   `json:"unit"`
	Section      string   `json:"section,omitempty"`
	UpdatedToday bool     `json:"updated_today"`
}

// Section groups assignments inside a Unit
type Section struct {
	Name         string       `json:"name"`
	Mark         Mark         `json:"mark"`
	Weight       Mark         `json:"weight"`
	Denominator  Mark         `json:"denominator"`
	Comment      *Comment     `json:"comment,omitempty"`
	Assignments  []Assignment `json:"assignments"`
	UpdatedToday bool         `json:"updated_today"`
}

// Unit is a top level markbook category.
// When HasSections is set, Assignments only holds rows seen before the first section.
type Unit struct {
	Name         string       `json:"name"`
	Mark         Mark         `json:"mark"`
	Weight       Mark         `json:"weight"`
	Denominator  Mark         `json:"denominator"`
	Comment      *Comment     `json:"comment,omitempty"`
	HasSections  bool         `json:"has_sections"`
	Sections     []Section    `json:"sections"`
	Assignments  []Assignment `json:"assignments"`
	UpdatedToday bool         `json:"updated_today"`
}

// Course is a single class from the portal's course list along with its markbook tree
type Course struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Alias        string `json:"alias,omitempty"`
	Teacher      string `json:"teacher"`
	LastUpdated  string `json:"last_updated,omitempty"` // Raw string e.g. "10/14/2026"
	Absences     *int   `json:"absences"`
	Excused      *int   `json:"excused"`
	Late         *int   `json:"late"`
	Mark         Mark   `json:"mark"`
	Active       bool   `json:"active"`
	Units        []Unit `json:"units"`
	UpdatedToday bool   `json:"updated_today"`
}

// DisplayName prefers the configured alias over the portal name
func (c Course) DisplayName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// AssignmentCount returns the number of leaves in the course tree
func (c Course) AssignmentCount() int {
	n := 0
	for _, u := range c.Units {
		n += len(u.Assignments)
		for _, s := range u.Sections {
			n += len(s.Assignments)
		}
	}
	return n
}

// CourseRows pairs a course with its classified markbook rows as delivered by the row source.
// FetchError is set when the rows could not be retrieved.
type CourseRows struct {
	Course     Course `json:"course"`
	Rows       []Row  `json:"rows"`
	FetchError string `json:"fetch_error,omitempty"`
}
