package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"trainbalance/week-planner/internal/domain"
	"trainbalance/week-planner/internal/render"
	"trainbalance/week-planner/internal/service"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		training []string
		match    string
		goal     string
		asJSON   bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a week plan",
		Example: `  weekplan generate --training tue,thu --match sat
  weekplan generate --training mon --match mon --goal strength --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unknown tokens pass through so validation can name them.
			var req domain.PlanRequest
			req.MatchDay, _ = domain.ParseDay(match)
			req.Goal, _ = domain.ParseGoal(goal)
			for _, raw := range training {
				d, _ := domain.ParseDay(raw)
				req.TrainingDays = append(req.TrainingDays, d)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			plan, err := service.NewPlanService("", 0).GeneratePlan(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(struct {
					OK   bool            `json:"ok"`
					Plan domain.WeekPlan `json:"plan"`
				}{OK: true, Plan: plan})
			}
			return render.Week(out, req, plan, render.Options{NoColor: noColor})
		},
	}

	cmd.Flags().StringSliceVarP(&training, "training", "t", nil, "team training days, e.g. tue,thu")
	cmd.Flags().StringVarP(&match, "match", "m", "", "match day, e.g. sat")
	cmd.Flags().StringVarP(&goal, "goal", "g", string(domain.DefaultGoal), fmt.Sprintf("goal: %s", goalTokens()))
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = cmd.MarkFlagRequired("training")
	_ = cmd.MarkFlagRequired("match")

	return cmd
}

func goalTokens() string {
	tokens := make([]string, len(domain.Goals))
	for i, g := range domain.Goals {
		tokens[i] = string(g)
	}
	return strings.Join(tokens, ", ")
}
