package planner

import "trainbalance/week-planner/internal/domain"

// Session titles assigned by the planner.
const (
	TitleTeamTraining = "Team Training"
	TitleMatch        = "Match Day"
	TitleLowerBody    = "Lower Body – In-season"
	TitleUpperBody    = "Upper Body – In-season"
	TitleRecovery     = "Recovery Session"
)

// Static templates. Never hand these slices out directly; use the accessor
// functions, which return copies.
var (
	lowerInSeason = [...]domain.Exercise{
		{Name: "Back Squat", Sets: 3, Reps: "3–5", Notes: "Heavy, 1–2 RIR"},
		{Name: "Reverse Lunge", Sets: 2, Reps: "6–8 / leg"},
		{Name: "Romanian Deadlift", Sets: 2, Reps: "6–8"},
		{Name: "Plank", Sets: 2, Reps: "30–45s"},
	}

	upperInSeason = [...]domain.Exercise{
		{Name: "Bench Press", Sets: 3, Reps: "5–8"},
		{Name: "DB Row", Sets: 3, Reps: "6–10"},
		{Name: "Shoulder Press", Sets: 2, Reps: "8–10"},
		{Name: "Triceps Extensions", Sets: 2, Reps: "10–12"},
	}

	recoverySession = [...]domain.Exercise{
		{Name: "Easy bike / jog", Sets: 1, Reps: "10–20 min"},
		{Name: "Stretching", Sets: 1, Reps: "10–15 min"},
	}
)

// LowerBodyTemplate returns a fresh copy of the in-season lower body session.
func LowerBodyTemplate() []domain.Exercise {
	return append([]domain.Exercise(nil), lowerInSeason[:]...)
}

// UpperBodyTemplate returns a fresh copy of the in-season upper body session.
func UpperBodyTemplate() []domain.Exercise {
	return append([]domain.Exercise(nil), upperInSeason[:]...)
}

// RecoveryTemplate returns a fresh copy of the post-match recovery session.
func RecoveryTemplate() []domain.Exercise {
	return append([]domain.Exercise(nil), recoverySession[:]...)
}
