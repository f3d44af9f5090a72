package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sightlinehq/sightline/docs"
	"github.com/sightlinehq/sightline/internal/auth"
	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
	"github.com/sightlinehq/sightline/internal/middleware"
	"github.com/sightlinehq/sightline/internal/service"
)

type Handler struct {
	authService      service.AuthServicer
	projectService   service.ProjectServicer
	trackService     service.TrackServicer
	analyticsService service.AnalyticsServicer
	issuer           *auth.TokenIssuer
	corsOrigins      string
	router           *gin.Engine
	log              *zap.Logger
}

func NewHandler(
	authService service.AuthServicer,
	projectService service.ProjectServicer,
	trackService service.TrackServicer,
	analyticsService service.AnalyticsServicer,
	issuer *auth.TokenIssuer,
	corsOrigins string,
	log *zap.Logger,
) *Handler {
	h := &Handler{
		authService:      authService,
		projectService:   projectService,
		trackService:     trackService,
		analyticsService: analyticsService,
		issuer:           issuer,
		corsOrigins:      corsOrigins,
		router:           gin.Default(),
		log:              log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.Use(middleware.CORS(h.corsOrigins))

	h.router.GET("/health", h.healthCheck)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group("/api")
	api.GET("", h.apiInfo)

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	// The track endpoint is public: the snippet authenticates with the
	// project's tracking code, not a tenant token.
	api.POST("/track", h.track)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(h.issuer, h.log))

	authed.POST("/projects", h.createProject)
	authed.GET("/projects", h.listProjects)
	authed.GET("/projects/:projectId", h.getProject)
	authed.DELETE("/projects/:projectId", h.deleteProject)

	authed.GET("/analytics/:projectId/overview", h.overview)
	authed.GET("/analytics/:projectId/export", h.exportCSV)
	authed.POST("/nlq", h.answerQuestion)
}

// respondError maps service errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_error", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: "timeout", Message: err.Error()})
	default:
		h.log.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error", Message: err.Error()})
	}
}

func tenantID(c *gin.Context) string {
	return c.GetString(middleware.ContextTenantID)
}

func tenantEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextEmail)
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// apiInfo handles GET /api
// @Summary API info
// @Description Service name and version
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api [get]
func (h *Handler) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "sightline",
		"version": "1.0",
	})
}

// register handles POST /api/auth/register
// @Summary Register a tenant
// @Description Create a tenant account and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Signup data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createProject handles POST /api/projects
// @Summary Create a project
// @Description Register a new tracked website for the authenticated tenant
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.projectService.CreateProject(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listProjects handles GET /api/projects
// @Summary List projects
// @Description List the authenticated tenant's projects, newest first
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	resp, err := h.projectService.ListProjects(c.Request.Context(), tenantID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getProject handles GET /api/projects/:projectId
// @Summary Get a project
// @Description Get one project owned by the authenticated tenant
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{projectId} [get]
func (h *Handler) getProject(c *gin.Context) {
	resp, err := h.projectService.GetProject(c.Request.Context(), c.Param("projectId"), tenantID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteProject handles DELETE /api/projects/:projectId
// @Summary Delete a project
// @Description Delete one project owned by the authenticated tenant
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{projectId} [delete]
func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("projectId"), tenantID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	h.log.Info("Project deleted",
		zap.String("project_id", c.Param("projectId")),
		zap.String("tenant_email", tenantEmail(c)))

	c.Status(http.StatusNoContent)
}

// track handles POST /api/track
// @Summary Track an event
// @Description Accept an event from the tracking snippet and queue it for ingestion
// @Tags track
// @Accept json
// @Produce json
// @Param event body dto.TrackEventRequest true "Event data"
// @Success 202 {object} dto.TrackEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/track [post]
func (h *Handler) track(c *gin.Context) {
	var req dto.TrackEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}
	doNotTrack := c.GetHeader("DNT") == "1"

	resp, err := h.trackService.Track(c.Request.Context(), &req, c.ClientIP(), doNotTrack)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// overview handles GET /api/analytics/:projectId/overview
// @Summary Analytics overview
// @Description Compute the project's analytics overview for a trailing window
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param days query int false "Window size in days (7, 30, or 90)" Enums(7, 30, 90) default(7)
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/analytics/{projectId}/overview [get]
func (h *Handler) overview(c *gin.Context) {
	days, err := daysParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.analyticsService.Overview(c.Request.Context(), c.Param("projectId"), tenantID(c), days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// exportCSV handles GET /api/analytics/:projectId/export
// @Summary Export analytics as CSV
// @Description Export the project's overview metrics as a CSV download
// @Tags analytics
// @Produce text/csv
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param days query int false "Window size in days (7, 30, or 90)" Enums(7, 30, 90) default(7)
// @Success 200 {string} string "CSV data"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/analytics/{projectId}/export [get]
func (h *Handler) exportCSV(c *gin.Context) {
	days, err := daysParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	data, err := h.analyticsService.ExportCSV(c.Request.Context(), c.Param("projectId"), tenantID(c), days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="analytics-export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// answerQuestion handles POST /api/nlq
// @Summary Ask a question
// @Description Answer a natural-language question about the project's analytics
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NLQRequest true "Question"
// @Success 200 {object} dto.NLQResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/nlq [post]
func (h *Handler) answerQuestion(c *gin.Context) {
	var req dto.NLQRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.analyticsService.AnswerQuestion(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func daysParam(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("days", "7")
	return strconv.Atoi(raw)
}
