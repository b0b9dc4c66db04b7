// internal/domain/plan.go
package domain

// SessionType distinguishes the kinds of activity a day can hold.
type SessionType string

const (
	SessionTraining SessionType = "TRAINING"
	SessionMatch    SessionType = "MATCH"
	SessionGym      SessionType = "GYM"
	SessionRecovery SessionType = "RECOVERY"
)

// Exercise is a single prescribed movement inside a gym or recovery session.
type Exercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`            // Free-form range, e.g. "3–5" or "10–20 min"
	Notes string `json:"notes,omitempty"` // Optional coaching cue
}

// Session is one activity block assigned to a day.
type Session struct {
	Type      SessionType `json:"type"`
	Title     string      `json:"title"`
	Exercises []Exercise  `json:"exercises,omitempty"` // Only GYM and RECOVERY carry exercises
}

// DayPlan holds the sessions of one day in the order they were assigned.
type DayPlan struct {
	Day      Day       `json:"day"`
	Sessions []Session `json:"sessions"`
}

// Has reports whether the day already holds a session of type t.
func (p DayPlan) Has(t SessionType) bool {
	return p.Count(t) > 0
}

// Count returns how many sessions of type t the day holds.
func (p DayPlan) Count(t SessionType) int {
	n := 0
	for _, s := range p.Sessions {
		if s.Type == t {
			n++
		}
	}
	return n
}

// WeekPlan is the seven-day output of the planner, Monday first.
type WeekPlan []DayPlan

// Day returns the plan for d, or nil when d is not part of the week.
func (w WeekPlan) Day(d Day) *DayPlan {
	for i := range w {
		if w[i].Day == d {
			return &w[i]
		}
	}
	return nil
}

// Sessions returns every session of type t across the week, in calendar order.
func (w WeekPlan) Sessions(t SessionType) []Session {
	var out []Session
	for _, dp := range w {
		for _, s := range dp.Sessions {
			if s.Type == t {
				out = append(out, s)
			}
		}
	}
	return out
}

// PlanRequest is the input to the planner.
type PlanRequest struct {
	TrainingDays []Day `json:"trainingDays"`
	MatchDay     Day   `json:"matchDay"`
	Goal         Goal  `json:"goal"`
}

// IsTrainingDay reports whether d is one of the requested team training days.
func (r PlanRequest) IsTrainingDay(d Day) bool {
	for _, td := range r.TrainingDays {
		if td == d {
			return true
		}
	}
	return false
}
