package registration

import "fmt"

// Error codes carried to the API layer. Local validation failures and table
// conflicts are both client errors; upstream failures are not represented
// here, they surface as sheets package errors.
const (
	CodeMissingField          = "MISSING_FIELD"
	CodeInvalidFormat         = "INVALID_FORMAT"
	CodeDuplicateInSubmission = "DUPLICATE_IN_SUBMISSION"
	CodeTeamNameTaken         = "TEAM_NAME_TAKEN"
	CodeProjectNameTaken      = "PROJECT_NAME_TAKEN"
	CodeStudentIDTaken        = "STUDENT_ID_TAKEN"
)

// ValidationError is a local rejection of a submission, detected before any
// network call.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation against the current table
// snapshot, identifying the conflicting field and value.
type ConflictError struct {
	Field   string
	Value   string
	Code    string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func newErrMissingField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Code: CodeMissingField, Message: message}
}

func newErrInvalidStudentID(field string, n int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("Student ID %d must be a 13-digit number", n),
	}
}

func newErrDuplicateInSubmission(field, id string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeDuplicateInSubmission,
		Message: fmt.Sprintf("Student ID %s is entered more than once in this submission", id),
	}
}

func newErrTeamNameTaken(name string) *ConflictError {
	return &ConflictError{
		Field:   "teamName",
		Value:   name,
		Code:    CodeTeamNameTaken,
		Message: "Team name already exists. Please choose a different name.",
	}
}

func newErrProjectNameTaken(name string) *ConflictError {
	return &ConflictError{
		Field:   "projectName",
		Value:   name,
		Code:    CodeProjectNameTaken,
		Message: "Project name already exists. Please choose a different name.",
	}
}

func newErrStudentIDTaken(field, id string) *ConflictError {
	return &ConflictError{
		Field:   field,
		Value:   id,
		Code:    CodeStudentIDTaken,
		Message: fmt.Sprintf("Student ID %s is already registered. Each student can only be part of one team.", id),
	}
}
