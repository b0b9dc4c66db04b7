package api

import (
	"net/http"

	"trainbalance/week-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// RouteOptions carries the settings SetupRoutes needs beyond the services.
type RouteOptions struct {
	CORSOrigin   string
	ShareBaseURL string
}

func SetupRoutes(
	router *gin.Engine,
	planService service.PlanService,
	opts RouteOptions,
) {
	planHandler := NewPlanHandler(planService, opts.ShareBaseURL)
	pageHandler := NewPageHandler(planService)

	// Global so preflight requests are answered even for unregistered OPTIONS routes.
	router.Use(RequestIDMiddleware(), CORSMiddleware(opts.CORSOrigin))
	router.SetHTMLTemplate(LoadTemplates())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Pages ---
	router.GET("/", pageHandler.Landing)
	router.GET("/setup", pageHandler.Setup)
	router.GET("/plan", pageHandler.Plan)
	router.GET("/shared/:token", pageHandler.SharedPlan)

	// --- JSON API ---
	apiGroup := router.Group("/api")
	{
		// POST /api/generate-plan
		apiGroup.POST("/generate-plan", planHandler.GeneratePlan)

		apiV1 := apiGroup.Group("/v1")
		{
			// GET /api/v1/options
			apiV1.GET("/options", planHandler.GetOptions)
			// POST /api/v1/plans/share
			apiV1.POST("/plans/share", planHandler.CreateShareLink)
			// GET /api/v1/plans/{token}
			apiV1.GET("/plans/:token", planHandler.GetSharedPlan)
		}
	}
}
