package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainbalance/week-planner/internal/domain"
	"trainbalance/week-planner/internal/planner"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrSharingDisabled   = errors.New("plan sharing is not configured")
	ErrShareTokenInvalid = errors.New("share link is invalid")
	ErrShareTokenExpired = errors.New("share link has expired")
	ErrTokenGeneration   = errors.New("failed to generate share link")
)

const (
	DefaultShareExpiration = 7 * 24 * time.Hour
	shareTokenIssuer       = "trainbalance"
)

// --- Service Interface ---
type PlanService interface {
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WeekPlan, error)
	CreateShareToken(ctx context.Context, req domain.PlanRequest) (token string, expiresAt time.Time, err error)
	ResolveShareToken(ctx context.Context, token string) (domain.PlanRequest, error)
}

// --- Service Implementation ---

// planService implements the PlanService interface.
type planService struct {
	shareSecret     string
	shareExpiration time.Duration
	now             func() time.Time
}

// NewPlanService creates a new instance of planService. An empty shareSecret
// disables share links; plan generation works regardless.
func NewPlanService(shareSecret string, shareExpiration time.Duration) PlanService {
	if shareExpiration <= 0 {
		shareExpiration = DefaultShareExpiration
	}
	return &planService{
		shareSecret:     shareSecret,
		shareExpiration: shareExpiration,
		now:             time.Now,
	}
}

// GeneratePlan validates the request and builds the week. A blank goal falls
// back to domain.DefaultGoal.
func (s *planService) GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WeekPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req = withDefaults(req)
	if err := planner.Validate(req); err != nil {
		return nil, err
	}
	return planner.Generate(req), nil
}

// --- Share links ---

// shareClaims carries the plan request inside a signed token so a plan can be
// rebuilt later without storing anything.
type shareClaims struct {
	TrainingDays []domain.Day `json:"td"`
	MatchDay     domain.Day   `json:"md"`
	Goal         domain.Goal  `json:"g"`
	jwt.RegisteredClaims
}

// CreateShareToken signs req into a token that expires after the configured lifetime.
func (s *planService) CreateShareToken(ctx context.Context, req domain.PlanRequest) (string, time.Time, error) {
	if s.shareSecret == "" {
		return "", time.Time{}, ErrSharingDisabled
	}
	if err := ctx.Err(); err != nil {
		return "", time.Time{}, err
	}
	req = withDefaults(req)
	if err := planner.Validate(req); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.shareExpiration)
	claims := &shareClaims{
		TrainingDays: req.TrainingDays,
		MatchDay:     req.MatchDay,
		Goal:         req.Goal,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    shareTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.shareSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return signed, expiresAt, nil
}

// ResolveShareToken verifies a share token and returns the request it carries.
// The carried request must still pass planner.Validate.
func (s *planService) ResolveShareToken(ctx context.Context, tokenString string) (domain.PlanRequest, error) {
	if s.shareSecret == "" {
		return domain.PlanRequest{}, ErrSharingDisabled
	}
	if err := ctx.Err(); err != nil {
		return domain.PlanRequest{}, err
	}

	claims := &shareClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.shareSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.PlanRequest{}, ErrShareTokenExpired
		}
		return domain.PlanRequest{}, ErrShareTokenInvalid
	}
	if !token.Valid || claims.Issuer != shareTokenIssuer {
		return domain.PlanRequest{}, ErrShareTokenInvalid
	}

	req := domain.PlanRequest{
		TrainingDays: claims.TrainingDays,
		MatchDay:     claims.MatchDay,
		Goal:         claims.Goal,
	}
	if err := planner.Validate(req); err != nil {
		return domain.PlanRequest{}, ErrShareTokenInvalid
	}
	return req, nil
}

func withDefaults(req domain.PlanRequest) domain.PlanRequest {
	if req.Goal == "" {
		req.Goal = domain.DefaultGoal
	}
	return req
}
