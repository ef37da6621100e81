package registration

import (
	"regexp"
	"strings"

	"github.com/regsheet/regsheet/internal/sheets"
)

var studentIDPattern = regexp.MustCompile(`^\d{13}$`)

// ValidateShape checks the submission without touching the network: required
// fields, student ID format, then duplicate student IDs within the submission
// itself. Fail-fast; the first violation wins.
func ValidateShape(s Submission) error {
	if strings.TrimSpace(s.TeamName) == "" {
		return newErrMissingField("teamName", "Team name is required")
	}
	if strings.TrimSpace(s.ProjectName) == "" {
		return newErrMissingField("projectName", "Project name is required")
	}
	if strings.TrimSpace(s.StudentID1) == "" {
		return newErrMissingField("studentId1", "At least one student ID is required")
	}

	for i, f := range s.studentIDFields() {
		if f.Value != "" && !studentIDPattern.MatchString(f.Value) {
			return newErrInvalidStudentID(f.Field, i+1)
		}
	}

	seen := make(map[string]bool, 3)
	for _, f := range s.studentIDFields() {
		if f.Value == "" {
			continue
		}
		if seen[f.Value] {
			return newErrDuplicateInSubmission(f.Field, f.Value)
		}
		seen[f.Value] = true
	}

	return nil
}

// CheckUniqueness evaluates the submission against a freshly fetched table.
// The order is part of the contract: team name first, then project name, then
// student IDs in field order, returning on the first conflict found.
func CheckUniqueness(table sheets.Table, s Submission) error {
	if TeamNameExists(table, s.TeamName) {
		return newErrTeamNameTaken(s.TeamName)
	}
	if ProjectNameExists(table, s.ProjectName) {
		return newErrProjectNameTaken(s.ProjectName)
	}
	for _, f := range s.studentIDFields() {
		if f.Value == "" {
			continue
		}
		if StudentIDExists(table, f.Value) {
			return newErrStudentIDTaken(f.Field, f.Value)
		}
	}
	return nil
}
