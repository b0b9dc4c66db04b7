package api

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"trainbalance/week-planner/internal/domain"
	"trainbalance/week-planner/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates.
func LoadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// PageHandler renders the server-side pages: landing, setup and plan.
type PageHandler struct {
	planService service.PlanService
}

func NewPageHandler(planService service.PlanService) *PageHandler {
	return &PageHandler{planService: planService}
}

type dayOption struct {
	ID       string
	Label    string
	Training bool
	Match    bool
}

type goalOption struct {
	ID       string
	Label    string
	Selected bool
}

type setupView struct {
	Days  []dayOption
	Goals []goalOption
	Error string
}

type sessionView struct {
	Type      string
	Title     string
	Exercises []domain.Exercise
}

type dayView struct {
	ID       string
	Label    string
	Sessions []sessionView
	Gym      bool
}

type planView struct {
	Goal     string
	Days     []dayView
	SetupURL string
}

// waitlistFormURL receives beta signups. Nothing is stored on our side.
const waitlistFormURL = "https://formspree.io/f/xldadorq"

// Landing renders the marketing page with the beta waitlist form. The form
// provider redirects back with ?joined=1 after a signup.
func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Goals":       planOptions().Goals,
		"WaitlistURL": waitlistFormURL,
		"NextURL":     requestOrigin(c) + "/?joined=1",
		"Joined":      c.Query("joined") != "",
	})
}

// defaultSetup pre-fills the form for a first visit.
var defaultSetup = domain.PlanRequest{
	TrainingDays: []domain.Day{domain.Tuesday, domain.Thursday},
	MatchDay:     domain.Saturday,
	Goal:         domain.DefaultGoal,
}

// Setup renders the constraint form, pre-filled from the query string.
func (h *PageHandler) Setup(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		req = defaultSetup
	}
	c.HTML(http.StatusOK, "setup.html", newSetupView(req, ""))
}

// Plan renders the week for the constraints in the query string. Without a
// match day the visitor is sent to the setup form; a match day with no
// training days re-renders the form with the validation message.
func (h *PageHandler) Plan(c *gin.Context) {
	req, _ := requestFromQuery(c)
	if req.MatchDay == "" {
		c.Redirect(http.StatusFound, "/setup")
		return
	}
	h.renderPlan(c, req)
}

// SharedPlan renders the week carried by a share token.
func (h *PageHandler) SharedPlan(c *gin.Context) {
	req, err := h.planService.ResolveShareToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		code, msg := errorStatus(err)
		if code == http.StatusInternalServerError {
			log.Printf("ERROR: [%s] resolving share link: %v", requestIDFromContext(c), err)
		}
		c.HTML(code, "setup.html", newSetupView(domain.PlanRequest{}, msg))
		return
	}
	h.renderPlan(c, req)
}

func (h *PageHandler) renderPlan(c *gin.Context, req domain.PlanRequest) {
	plan, err := h.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		code, msg := errorStatus(err)
		if code == http.StatusInternalServerError {
			log.Printf("ERROR: [%s] rendering plan page: %v", requestIDFromContext(c), err)
		}
		c.HTML(code, "setup.html", newSetupView(req, msg))
		return
	}

	goal := req.Goal
	if goal == "" {
		goal = domain.DefaultGoal
	}
	view := planView{
		Goal:     goal.Label(),
		Days:     make([]dayView, 0, len(plan)),
		SetupURL: "/setup?" + encodeQuery(req),
	}
	for _, dp := range plan {
		dv := dayView{
			ID:    string(dp.Day),
			Label: dp.Day.Label(),
			Gym:   dp.Has(domain.SessionGym),
		}
		for _, s := range dp.Sessions {
			dv.Sessions = append(dv.Sessions, sessionView{
				Type:      strings.ToLower(string(s.Type)),
				Title:     s.Title,
				Exercises: s.Exercises,
			})
		}
		view.Days = append(view.Days, dv)
	}
	c.HTML(http.StatusOK, "plan.html", view)
}

// requestFromQuery reads trainingDays (comma separated or repeated), matchDay
// and goal. ok is false unless both training days and a match day were given.
func requestFromQuery(c *gin.Context) (domain.PlanRequest, bool) {
	var req domain.PlanRequest
	for _, raw := range c.QueryArray("trainingDays") {
		for _, part := range strings.Split(raw, ",") {
			if d, _ := domain.ParseDay(part); d != "" {
				req.TrainingDays = append(req.TrainingDays, d)
			}
		}
	}
	req.MatchDay, _ = domain.ParseDay(c.Query("matchDay"))
	req.Goal, _ = domain.ParseGoal(c.Query("goal"))
	return req, len(req.TrainingDays) > 0 && req.MatchDay != ""
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func encodeQuery(req domain.PlanRequest) string {
	days := make([]string, len(req.TrainingDays))
	for i, d := range req.TrainingDays {
		days[i] = string(d)
	}
	q := url.Values{}
	q.Set("trainingDays", strings.Join(days, ","))
	q.Set("matchDay", string(req.MatchDay))
	if req.Goal != "" {
		q.Set("goal", string(req.Goal))
	}
	return q.Encode()
}

func newSetupView(req domain.PlanRequest, errMsg string) setupView {
	goal := req.Goal
	if !goal.Valid() {
		goal = domain.DefaultGoal
	}
	view := setupView{Error: errMsg}
	for _, d := range domain.Days {
		view.Days = append(view.Days, dayOption{
			ID:       string(d),
			Label:    d.Short(),
			Training: req.IsTrainingDay(d),
			Match:    d == req.MatchDay,
		})
	}
	for _, g := range domain.Goals {
		view.Goals = append(view.Goals, goalOption{
			ID:       string(g),
			Label:    g.Label(),
			Selected: g == goal,
		})
	}
	return view
}
