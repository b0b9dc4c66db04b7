package planner

import (
	"errors"
	"fmt"

	"trainbalance/week-planner/internal/domain"
)

// ErrInvalidRequest is matched by every ValidationError via errors.Is.
var ErrInvalidRequest = errors.New("invalid plan request")

// ValidationKind names the precondition a request violated.
type ValidationKind string

const (
	KindNoTrainingDays       ValidationKind = "no_training_days"
	KindInvalidTrainingDay   ValidationKind = "invalid_training_day"
	KindDuplicateTrainingDay ValidationKind = "duplicate_training_day"
	KindInvalidMatchDay      ValidationKind = "invalid_match_day"
	KindInvalidGoal          ValidationKind = "invalid_goal"
)

// ValidationError reports the first violated precondition of a PlanRequest.
type ValidationError struct {
	Kind  ValidationKind
	Value string // Offending input, empty when nothing was supplied
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNoTrainingDays:
		return "at least one training day is required"
	case KindInvalidTrainingDay:
		return fmt.Sprintf("unknown training day %q", e.Value)
	case KindDuplicateTrainingDay:
		return fmt.Sprintf("training day %q listed more than once", e.Value)
	case KindInvalidMatchDay:
		return fmt.Sprintf("unknown match day %q", e.Value)
	case KindInvalidGoal:
		return fmt.Sprintf("unknown goal %q", e.Value)
	default:
		return string(e.Kind)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Validate checks the preconditions Generate relies on.
func Validate(req domain.PlanRequest) error {
	if len(req.TrainingDays) == 0 {
		return &ValidationError{Kind: KindNoTrainingDays}
	}
	seen := make(map[domain.Day]bool, len(req.TrainingDays))
	for _, d := range req.TrainingDays {
		if !d.Valid() {
			return &ValidationError{Kind: KindInvalidTrainingDay, Value: string(d)}
		}
		if seen[d] {
			return &ValidationError{Kind: KindDuplicateTrainingDay, Value: string(d)}
		}
		seen[d] = true
	}
	if !req.MatchDay.Valid() {
		return &ValidationError{Kind: KindInvalidMatchDay, Value: string(req.MatchDay)}
	}
	if !req.Goal.Valid() {
		return &ValidationError{Kind: KindInvalidGoal, Value: string(req.Goal)}
	}
	return nil
}

// KindOf extracts the validation kind from err, if it carries one.
func KindOf(err error) (ValidationKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return "", false
}
