// Package planner builds a seven-day in-season week around team training and
// a single weekly match.
package planner

import "trainbalance/week-planner/internal/domain"

// minGymDistance is the smallest linear day distance from the match at which
// a gym session may be scheduled.
const minGymDistance = 2

// Generate builds the week for req. It is pure and deterministic. The goal is
// accepted but does not influence any rule yet.
//
// Generate does not validate; call Validate first. Unknown days in the
// request are ignored rather than causing a panic.
func Generate(req domain.PlanRequest) domain.WeekPlan {
	week := make(domain.WeekPlan, len(domain.Days))
	for i, d := range domain.Days {
		week[i] = domain.DayPlan{Day: d, Sessions: []domain.Session{}}
	}

	for _, d := range req.TrainingDays {
		if dp := week.Day(d); dp != nil {
			dp.Sessions = append(dp.Sessions, domain.Session{
				Type:  domain.SessionTraining,
				Title: TitleTeamTraining,
			})
		}
	}

	match := week.Day(req.MatchDay)
	if match == nil {
		return week
	}
	match.Sessions = append(match.Sessions, domain.Session{
		Type:  domain.SessionMatch,
		Title: TitleMatch,
	})

	slots := gymSlots(req)
	if len(slots) > 0 {
		dp := week.Day(slots[0])
		dp.Sessions = append(dp.Sessions, domain.Session{
			Type:      domain.SessionGym,
			Title:     TitleLowerBody,
			Exercises: LowerBodyTemplate(),
		})
	}
	if len(slots) > 1 {
		dp := week.Day(slots[1])
		dp.Sessions = append(dp.Sessions, domain.Session{
			Type:      domain.SessionGym,
			Title:     TitleUpperBody,
			Exercises: UpperBodyTemplate(),
		})
	}

	// Recovery wraps around the week, unlike the gym distance check.
	recovery := week.Day(req.MatchDay.Next())
	if !recovery.Has(domain.SessionGym) {
		recovery.Sessions = append(recovery.Sessions, domain.Session{
			Type:      domain.SessionRecovery,
			Title:     TitleRecovery,
			Exercises: RecoveryTemplate(),
		})
	}

	return week
}

// gymSlots ranks the days eligible for gym work: free days first, then
// training days, each group in calendar order. At most two are returned.
func gymSlots(req domain.PlanRequest) []domain.Day {
	var free, fallback []domain.Day
	for _, d := range domain.Days {
		if d == req.MatchDay || d.Distance(req.MatchDay) < minGymDistance {
			continue
		}
		if req.IsTrainingDay(d) {
			fallback = append(fallback, d)
		} else {
			free = append(free, d)
		}
	}

	slots := append(free, fallback...)
	if len(slots) > 2 {
		slots = slots[:2]
	}
	return slots
}
