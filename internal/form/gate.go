package form

import (
	"context"
	"sync"
	"time"

	"github.com/regsheet/regsheet/internal/registration"
)

// DefaultCheckDelay is how long a field must be idle before its duplicate
// probe is issued.
const DefaultCheckDelay = 500 * time.Millisecond

// Checker probes the duplicate-check endpoints. *Client implements it.
type Checker interface {
	CheckTeamName(ctx context.Context, name string) (bool, error)
	CheckProjectName(ctx context.Context, name string) (bool, error)
	CheckStudentID(ctx context.Context, id string) (bool, error)
}

type fieldState struct {
	value    string
	exists   bool
	inFlight bool
}

// Gate mirrors the server's checks on the client. It holds the submission as
// the user edits it, debounces per-field duplicate probes, and blocks
// submission while any field has an invalid shape, a known conflict, a probe
// still in flight, or a student ID repeated within the submission.
type Gate struct {
	checker Checker
	deb     *Debouncer

	mu     sync.Mutex
	sub    registration.Submission
	fields map[string]*fieldState
}

// NewGate creates a Gate probing through the given checker after the given
// idle delay (DefaultCheckDelay when zero).
func NewGate(checker Checker, delay time.Duration) *Gate {
	if delay <= 0 {
		delay = DefaultCheckDelay
	}
	g := &Gate{
		checker: checker,
		fields:  make(map[string]*fieldState),
	}
	g.deb = NewDebouncer(delay, g.onResult)
	return g
}

// SetField records an edit to a form field. Checked fields (team name,
// project name, student IDs) schedule a debounced duplicate probe; clearing
// a field cancels its pending probe.
func (g *Gate) SetField(field, value string) {
	g.mu.Lock()
	g.applyToSubmission(field, value)

	check := g.checkFuncFor(field)
	if check == nil {
		g.mu.Unlock()
		return
	}

	if value == "" {
		delete(g.fields, field)
		g.mu.Unlock()
		g.deb.Cancel(field)
		return
	}

	g.fields[field] = &fieldState{value: value, inFlight: true}
	g.mu.Unlock()

	g.deb.Trigger(field, value, check)
}

// SubmitAllowed reports whether the form may be submitted right now. This is
// a UX optimization only; the server re-validates everything.
func (g *Gate) SubmitAllowed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if registration.ValidateShape(g.sub) != nil {
		return false
	}
	for _, st := range g.fields {
		if st.inFlight || st.exists {
			return false
		}
	}
	return true
}

// Conflicts returns the fields currently known to conflict with the table.
func (g *Gate) Conflicts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var fields []string
	for field, st := range g.fields {
		if st.exists {
			fields = append(fields, field)
		}
	}
	return fields
}

// onResult receives a finished probe. Results are keyed by field+value: a
// response for a value the user has since replaced is discarded.
func (g *Gate) onResult(res Result) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.fields[res.Field]
	if !ok || st.value != res.Value {
		return
	}

	st.inFlight = false
	if res.Err != nil {
		// An unreachable check endpoint leaves the field unknown rather
		// than blocking submission; the server still has the last word.
		st.exists = false
		return
	}
	st.exists = res.Exists
}

func (g *Gate) applyToSubmission(field, value string) {
	switch field {
	case "teamName":
		g.sub.TeamName = value
	case "projectName":
		g.sub.ProjectName = value
	case "projectDescription":
		g.sub.ProjectDescription = value
	case "studentId1":
		g.sub.StudentID1 = value
	case "studentId2":
		g.sub.StudentID2 = value
	case "studentId3":
		g.sub.StudentID3 = value
	}
}

func (g *Gate) checkFuncFor(field string) CheckFunc {
	switch field {
	case "teamName":
		return func(ctx context.Context, v string) (bool, error) {
			return g.checker.CheckTeamName(ctx, v)
		}
	case "projectName":
		return func(ctx context.Context, v string) (bool, error) {
			return g.checker.CheckProjectName(ctx, v)
		}
	case "studentId1", "studentId2", "studentId3":
		return func(ctx context.Context, v string) (bool, error) {
			return g.checker.CheckStudentID(ctx, v)
		}
	}
	return nil
}
