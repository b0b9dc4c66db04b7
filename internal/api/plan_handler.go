package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"trainbalance/week-planner/internal/domain"
	"trainbalance/week-planner/internal/planner"
	"trainbalance/week-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// msgInvalidRequest is the generic client-facing failure message.
const msgInvalidRequest = "Invalid request"

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
	baseURL     string
}

// NewPlanHandler creates a new PlanHandler. baseURL prefixes share links.
func NewPlanHandler(planService service.PlanService, baseURL string) *PlanHandler {
	return &PlanHandler{planService: planService, baseURL: baseURL}
}

// --- DTOs for API ---

// GeneratePlanRequest is the JSON body accepted by the plan endpoints.
type GeneratePlanRequest struct {
	TrainingDays []domain.Day `json:"trainingDays"`
	MatchDay     domain.Day   `json:"matchDay"`
	Goal         domain.Goal  `json:"goal"`
}

func (r GeneratePlanRequest) toDomain() domain.PlanRequest {
	return domain.PlanRequest{
		TrainingDays: r.TrainingDays,
		MatchDay:     r.MatchDay,
		Goal:         r.Goal,
	}
}

// GeneratePlanResponse is the success envelope.
type GeneratePlanResponse struct {
	OK   bool            `json:"ok"`
	Plan domain.WeekPlan `json:"plan"`
}

type ShareResponse struct {
	OK        bool      `json:"ok"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SharedPlanResponse struct {
	OK      bool               `json:"ok"`
	Request domain.PlanRequest `json:"request"`
	Plan    domain.WeekPlan    `json:"plan"`
}

type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Days  []OptionResponse `json:"days"`
	Goals []OptionResponse `json:"goals"`
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a week plan
// @Description Builds a seven-day in-season plan from training days, match day and goal.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Weekly constraints"
// @Success 200 {object} GeneratePlanResponse
// @Failure 400 {object} gin.H "Malformed or invalid request"
// @Router /api/generate-plan [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("WARN: [%s] malformed plan request: %v", requestIDFromContext(c), err)
		abortWithError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), req.toDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{OK: true, Plan: plan})
}

// CreateShareLink godoc
// @Summary Create a share link for a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Weekly constraints"
// @Success 201 {object} ShareResponse
// @Failure 400 {object} gin.H "Malformed or invalid request"
// @Failure 503 {object} gin.H "Sharing not configured"
// @Router /api/v1/plans/share [post]
func (h *PlanHandler) CreateShareLink(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	token, expiresAt, err := h.planService.CreateShareToken(c.Request.Context(), req.toDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ShareResponse{
		OK:        true,
		Token:     token,
		URL:       h.baseURL + "/shared/" + token,
		ExpiresAt: expiresAt,
	})
}

// GetSharedPlan godoc
// @Summary Rebuild a plan from a share link
// @Tags Plans
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} SharedPlanResponse
// @Failure 400 {object} gin.H "Invalid token"
// @Failure 410 {object} gin.H "Expired token"
// @Router /api/v1/plans/{token} [get]
func (h *PlanHandler) GetSharedPlan(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.planService.ResolveShareToken(ctx, c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	plan, err := h.planService.GeneratePlan(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SharedPlanResponse{OK: true, Request: req, Plan: plan})
}

// GetOptions lists the day and goal tokens the plan endpoints accept.
func (h *PlanHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, planOptions())
}

func planOptions() OptionsResponse {
	resp := OptionsResponse{
		Days:  make([]OptionResponse, 0, len(domain.Days)),
		Goals: make([]OptionResponse, 0, len(domain.Goals)),
	}
	for _, d := range domain.Days {
		resp.Days = append(resp.Days, OptionResponse{ID: string(d), Label: d.Label()})
	}
	for _, g := range domain.Goals {
		resp.Goals = append(resp.Goals, OptionResponse{ID: string(g), Label: g.Label()})
	}
	return resp
}

// handleError maps service errors onto the {ok:false} envelope.
func (h *PlanHandler) handleError(c *gin.Context, err error) {
	code, msg := errorStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("ERROR: [%s] plan request failed: %v", requestIDFromContext(c), err)
	}
	abortWithError(c, code, msg)
}

// errorStatus maps service and validation errors to a status code and the
// message shown to the client. Pages and the JSON API share it.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrShareTokenExpired):
		return http.StatusGone, err.Error()
	case errors.Is(err, service.ErrShareTokenInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSharingDisabled):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, msgInvalidRequest
	}
}
