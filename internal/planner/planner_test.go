package planner

import (
	"encoding/json"
	"reflect"
	"testing"

	"trainbalance/week-planner/internal/domain"
)

// allRequests enumerates every single-training-day and two-training-day
// combination against every match day.
func allRequests() []domain.PlanRequest {
	var reqs []domain.PlanRequest
	for _, match := range domain.Days {
		for i, a := range domain.Days {
			reqs = append(reqs, domain.PlanRequest{
				TrainingDays: []domain.Day{a},
				MatchDay:     match,
				Goal:         domain.GoalMaintain,
			})
			for _, b := range domain.Days[i+1:] {
				reqs = append(reqs, domain.PlanRequest{
					TrainingDays: []domain.Day{a, b},
					MatchDay:     match,
					Goal:         domain.GoalStrength,
				})
			}
		}
	}
	return reqs
}

func titlesOn(w domain.WeekPlan, d domain.Day) []string {
	var titles []string
	for _, s := range w.Day(d).Sessions {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestGenerateCompleteness(t *testing.T) {
	for _, req := range allRequests() {
		week := Generate(req)
		if len(week) != 7 {
			t.Fatalf("%+v: got %d days, want 7", req, len(week))
		}
		for i, dp := range week {
			if dp.Day != domain.Days[i] {
				t.Errorf("%+v: position %d holds %q, want %q", req, i, dp.Day, domain.Days[i])
			}
			if dp.Sessions == nil {
				t.Errorf("%+v: %s sessions is nil", req, dp.Day)
			}
		}
	}
}

func TestGenerateTrainingAndMatchFidelity(t *testing.T) {
	for _, req := range allRequests() {
		week := Generate(req)
		for _, dp := range week {
			wantTraining := 0
			if req.IsTrainingDay(dp.Day) {
				wantTraining = 1
			}
			if got := dp.Count(domain.SessionTraining); got != wantTraining {
				t.Errorf("%+v: %s has %d training sessions, want %d", req, dp.Day, got, wantTraining)
			}
			wantMatch := 0
			if dp.Day == req.MatchDay {
				wantMatch = 1
			}
			if got := dp.Count(domain.SessionMatch); got != wantMatch {
				t.Errorf("%+v: %s has %d match sessions, want %d", req, dp.Day, got, wantMatch)
			}
		}
	}
}

func TestGenerateGymRules(t *testing.T) {
	for _, req := range allRequests() {
		week := Generate(req)

		gym := week.Sessions(domain.SessionGym)
		if len(gym) > 2 {
			t.Errorf("%+v: %d gym sessions, want at most 2", req, len(gym))
		}
		lower, upper := 0, 0
		for _, s := range gym {
			switch s.Title {
			case TitleLowerBody:
				lower++
			case TitleUpperBody:
				upper++
			default:
				t.Errorf("%+v: unexpected gym title %q", req, s.Title)
			}
		}
		if lower > 1 || upper > 1 {
			t.Errorf("%+v: lower=%d upper=%d, want at most one each", req, lower, upper)
		}
		if upper == 1 && lower == 0 {
			t.Errorf("%+v: upper body scheduled without lower body", req)
		}

		for _, dp := range week {
			if !dp.Has(domain.SessionGym) {
				continue
			}
			if dp.Day == req.MatchDay {
				t.Errorf("%+v: gym on match day", req)
			}
			if dp.Day.Distance(req.MatchDay) <= 1 {
				t.Errorf("%+v: gym on %s, too close to match on %s", req, dp.Day, req.MatchDay)
			}
		}
	}
}

func TestGenerateRecoveryPlacement(t *testing.T) {
	for _, req := range allRequests() {
		week := Generate(req)
		next := req.MatchDay.Next()

		recoveries := week.Sessions(domain.SessionRecovery)
		if len(recoveries) > 1 {
			t.Fatalf("%+v: %d recovery sessions, want at most 1", req, len(recoveries))
		}
		dp := week.Day(next)
		if dp.Has(domain.SessionGym) {
			if dp.Has(domain.SessionRecovery) {
				t.Errorf("%+v: %s has both gym and recovery", req, next)
			}
		} else if dp.Count(domain.SessionRecovery) != 1 {
			t.Errorf("%+v: %s should hold exactly one recovery session", req, next)
		}
		for _, other := range week {
			if other.Day != next && other.Has(domain.SessionRecovery) {
				t.Errorf("%+v: recovery on %s, want only %s", req, other.Day, next)
			}
		}
	}
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name string
		req  domain.PlanRequest
		want map[domain.Day][]string
	}{
		{
			name: "saturday match with tue/thu training",
			req: domain.PlanRequest{
				TrainingDays: []domain.Day{domain.Tuesday, domain.Thursday},
				MatchDay:     domain.Saturday,
				Goal:         domain.GoalMaintain,
			},
			want: map[domain.Day][]string{
				domain.Monday:    {TitleLowerBody},
				domain.Tuesday:   {TitleTeamTraining},
				domain.Wednesday: {TitleUpperBody},
				domain.Thursday:  {TitleTeamTraining},
				domain.Friday:    nil,
				domain.Saturday:  {TitleMatch},
				domain.Sunday:    {TitleRecovery},
			},
		},
		{
			name: "training and match on the same monday",
			req: domain.PlanRequest{
				TrainingDays: []domain.Day{domain.Monday},
				MatchDay:     domain.Monday,
				Goal:         domain.GoalStrength,
			},
			want: map[domain.Day][]string{
				domain.Monday:    {TitleTeamTraining, TitleMatch},
				domain.Tuesday:   {TitleRecovery},
				domain.Wednesday: {TitleLowerBody},
				domain.Thursday:  {TitleUpperBody},
				domain.Friday:    nil,
				domain.Saturday:  nil,
				domain.Sunday:    nil,
			},
		},
		{
			name: "training days reused when no free day qualifies",
			req: domain.PlanRequest{
				TrainingDays: []domain.Day{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
				MatchDay:     domain.Saturday,
				Goal:         domain.GoalFreshness,
			},
			want: map[domain.Day][]string{
				domain.Monday:    {TitleTeamTraining, TitleLowerBody},
				domain.Tuesday:   {TitleTeamTraining, TitleUpperBody},
				domain.Wednesday: {TitleTeamTraining},
				domain.Thursday:  {TitleTeamTraining},
				domain.Friday:    {TitleTeamTraining},
				domain.Saturday:  {TitleMatch},
				domain.Sunday:    {TitleRecovery},
			},
		},
		{
			name: "gym on the day after the match suppresses recovery",
			req: domain.PlanRequest{
				TrainingDays: []domain.Day{domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday, domain.Saturday},
				MatchDay:     domain.Sunday,
				Goal:         domain.GoalMaintain,
			},
			want: map[domain.Day][]string{
				domain.Monday:    {TitleLowerBody},
				domain.Tuesday:   {TitleTeamTraining, TitleUpperBody},
				domain.Wednesday: {TitleTeamTraining},
				domain.Thursday:  {TitleTeamTraining},
				domain.Friday:    {TitleTeamTraining},
				domain.Saturday:  {TitleTeamTraining},
				domain.Sunday:    {TitleMatch},
			},
		},
		{
			name: "free day ranks ahead of earlier training days",
			req: domain.PlanRequest{
				TrainingDays: []domain.Day{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday, domain.Saturday},
				MatchDay:     domain.Thursday,
				Goal:         domain.GoalMaintain,
			},
			want: map[domain.Day][]string{
				domain.Monday:    {TitleTeamTraining, TitleUpperBody},
				domain.Tuesday:   {TitleTeamTraining},
				domain.Wednesday: {TitleTeamTraining},
				domain.Thursday:  {TitleTeamTraining, TitleMatch},
				domain.Friday:    {TitleTeamTraining, TitleRecovery},
				domain.Saturday:  {TitleTeamTraining},
				domain.Sunday:    {TitleLowerBody},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := Generate(tt.req)
			for day, want := range tt.want {
				if got := titlesOn(week, day); !reflect.DeepEqual(got, want) {
					t.Errorf("%s: got %q, want %q", day, got, want)
				}
			}
		})
	}
}

func TestGenerateTemplates(t *testing.T) {
	week := Generate(domain.PlanRequest{
		TrainingDays: []domain.Day{domain.Tuesday, domain.Thursday},
		MatchDay:     domain.Saturday,
		Goal:         domain.GoalMaintain,
	})

	lower := week.Day(domain.Monday).Sessions[0]
	if len(lower.Exercises) != 4 || lower.Exercises[0].Name != "Back Squat" || lower.Exercises[0].Notes != "Heavy, 1–2 RIR" {
		t.Errorf("unexpected lower body template: %+v", lower.Exercises)
	}
	upper := week.Day(domain.Wednesday).Sessions[0]
	if len(upper.Exercises) != 4 || upper.Exercises[3].Name != "Triceps Extensions" {
		t.Errorf("unexpected upper body template: %+v", upper.Exercises)
	}
	recovery := week.Day(domain.Sunday).Sessions[0]
	if len(recovery.Exercises) != 2 || recovery.Exercises[1].Reps != "10–15 min" {
		t.Errorf("unexpected recovery template: %+v", recovery.Exercises)
	}
	for _, s := range week.Day(domain.Tuesday).Sessions {
		if s.Exercises != nil {
			t.Errorf("training session carries exercises: %+v", s)
		}
	}
}

func TestGenerateDoesNotShareTemplates(t *testing.T) {
	req := domain.PlanRequest{
		TrainingDays: []domain.Day{domain.Tuesday},
		MatchDay:     domain.Saturday,
		Goal:         domain.GoalMaintain,
	}
	first := Generate(req)
	first.Day(domain.Monday).Sessions[0].Exercises[0].Name = "Leg Press"

	second := Generate(req)
	if got := second.Day(domain.Monday).Sessions[0].Exercises[0].Name; got != "Back Squat" {
		t.Errorf("template mutated through a previous plan: got %q", got)
	}
	if got := LowerBodyTemplate()[0].Name; got != "Back Squat" {
		t.Errorf("LowerBodyTemplate returned %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, req := range allRequests() {
		a, err := json.Marshal(Generate(req))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		b, err := json.Marshal(Generate(req))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(a) != string(b) {
			t.Fatalf("%+v: output differs between calls", req)
		}
	}
}

func TestGenerateGoalInvariance(t *testing.T) {
	base := domain.PlanRequest{
		TrainingDays: []domain.Day{domain.Tuesday, domain.Thursday},
		MatchDay:     domain.Saturday,
	}
	var want domain.WeekPlan
	for i, g := range domain.Goals {
		req := base
		req.Goal = g
		got := Generate(req)
		if i == 0 {
			want = got
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("goal %q changed the plan", g)
		}
	}
}

func TestGenerateIgnoresUnknownDays(t *testing.T) {
	week := Generate(domain.PlanRequest{
		TrainingDays: []domain.Day{"someday", domain.Tuesday},
		MatchDay:     "funday",
		Goal:         domain.GoalMaintain,
	})
	if len(week) != 7 {
		t.Fatalf("got %d days, want 7", len(week))
	}
	if len(week.Sessions(domain.SessionMatch)) != 0 {
		t.Errorf("match scheduled for an unknown day")
	}
	if len(week.Sessions(domain.SessionTraining)) != 1 {
		t.Errorf("want exactly the one known training day scheduled")
	}
}

func TestJSONShape(t *testing.T) {
	week := Generate(domain.PlanRequest{
		TrainingDays: []domain.Day{domain.Tuesday},
		MatchDay:     domain.Saturday,
		Goal:         domain.GoalMaintain,
	})
	data, err := json.Marshal(week[4]) // Friday: no sessions
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"day":"fri","sessions":[]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	data, err = json.Marshal(week[1]) // Tuesday: training only
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"day":"tue","sessions":[{"type":"TRAINING","title":"Team Training"}]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
