package registration

// Column positions of a registration row in the spreadsheet. The layout is
// fixed; every scan and every append relies on it.
const (
	ColTeamName    = 0
	ColProjectName = 1
	ColDescription = 2
	ColStudentID1  = 3
	ColStudentID2  = 4
	ColStudentID3  = 5
)

// Submission is one candidate registration as received from the form.
type Submission struct {
	TeamName           string `json:"teamName"`
	ProjectName        string `json:"projectName"`
	ProjectDescription string `json:"projectDescription,omitempty"`
	StudentID1         string `json:"studentId1"`
	StudentID2         string `json:"studentId2,omitempty"`
	StudentID3         string `json:"studentId3,omitempty"`
}

// Row flattens the submission into the fixed spreadsheet column order.
// Optional fields become empty cells.
func (s Submission) Row() []string {
	return []string{
		s.TeamName,
		s.ProjectName,
		s.ProjectDescription,
		s.StudentID1,
		s.StudentID2,
		s.StudentID3,
	}
}

// studentIDFields returns the submission's student ID fields in field order,
// including empty ones, paired with their JSON field names.
func (s Submission) studentIDFields() [3]struct{ Field, Value string } {
	return [3]struct{ Field, Value string }{
		{"studentId1", s.StudentID1},
		{"studentId2", s.StudentID2},
		{"studentId3", s.StudentID3},
	}
}
