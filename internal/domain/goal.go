package domain

import "strings"

// Goal is the training focus selected by the athlete.
type Goal string

const (
	GoalStrength  Goal = "strength"
	GoalMaintain  Goal = "maintain"
	GoalFreshness Goal = "freshness"
)

// DefaultGoal is used when a request leaves the goal blank.
const DefaultGoal = GoalMaintain

// Goals lists the accepted goals in display order.
var Goals = []Goal{GoalStrength, GoalMaintain, GoalFreshness}

var goalLabels = map[Goal]string{
	GoalStrength:  "Get stronger",
	GoalMaintain:  "Maintain & stay fresh",
	GoalFreshness: "Freshness first",
}

func (g Goal) Valid() bool {
	_, ok := goalLabels[g]
	return ok
}

func (g Goal) Label() string {
	return goalLabels[g]
}

// ParseGoal accepts a goal token case-insensitively.
func ParseGoal(s string) (Goal, bool) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	return g, g.Valid()
}
