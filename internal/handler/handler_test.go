package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sightlinehq/sightline/internal/auth"
	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
)

// MockAuthService is a mock implementation of service.AuthServicer
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

// MockProjectService is a mock implementation of service.ProjectServicer
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, tenantID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, tenantID string) ([]dto.ProjectResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID, tenantID string) (*dto.ProjectResponse, error) {
	args := m.Called(ctx, projectID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID, tenantID string) error {
	args := m.Called(ctx, projectID, tenantID)
	return args.Error(0)
}

// MockTrackService is a mock implementation of service.TrackServicer
type MockTrackService struct {
	mock.Mock
}

func (m *MockTrackService) Track(ctx context.Context, req *dto.TrackEventRequest, clientIP string, doNotTrack bool) (*dto.TrackEventResponse, error) {
	args := m.Called(ctx, req, clientIP, doNotTrack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TrackEventResponse), args.Error(1)
}

// MockAnalyticsService is a mock implementation of service.AnalyticsServicer
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context, projectID, tenantID string, days int) (*dto.OverviewResponse, error) {
	args := m.Called(ctx, projectID, tenantID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OverviewResponse), args.Error(1)
}

func (m *MockAnalyticsService) ExportCSV(ctx context.Context, projectID, tenantID string, days int) ([]byte, error) {
	args := m.Called(ctx, projectID, tenantID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAnalyticsService) AnswerQuestion(ctx context.Context, tenantID string, req *dto.NLQRequest) (*dto.NLQResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NLQResponse), args.Error(1)
}

type testMocks struct {
	auth      *MockAuthService
	projects  *MockProjectService
	track     *MockTrackService
	analytics *MockAnalyticsService
}

var testIssuer = auth.NewTokenIssuer("test-secret", time.Hour)

func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()

	mocks := &testMocks{
		auth:      new(MockAuthService),
		projects:  new(MockProjectService),
		track:     new(MockTrackService),
		analytics: new(MockAnalyticsService),
	}

	handler := NewHandler(mocks.auth, mocks.projects, mocks.track, mocks.analytics, testIssuer, "*", zap.NewNop())

	return handler, mocks
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	token, err := testIssuer.Issue("tenant-1", "owner@acme.dev")
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	return req
}

func TestHandler_HealthCheck(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_Register_Success(t *testing.T) {
	handler, mocks := newTestHandler(t)

	registerReq := dto.RegisterRequest{
		Name:     "Acme Inc",
		Email:    "owner@acme.dev",
		Password: "correct-horse-battery",
	}

	mocks.auth.On("Register", mock.Anything, &registerReq).Return(&dto.AuthResponse{
		Token:  "signed-token",
		Tenant: dto.TenantInfo{ID: "tenant-1", Name: "Acme Inc", Email: "owner@acme.dev"},
	}, nil)

	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, "tenant-1", response.Tenant.ID)
	mocks.auth.AssertExpectations(t)
}

func TestHandler_Register_MissingFields(t *testing.T) {
	handler, mocks := newTestHandler(t)

	body, _ := json.Marshal(map[string]string{"name": "Acme Inc"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.auth.AssertNotCalled(t, "Register")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized))

	body, _ := json.Marshal(dto.LoginRequest{Email: "owner@acme.dev", Password: "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "unauthorized", response.Error)
}

func TestHandler_Projects_RequireAuth(t *testing.T) {
	handler, mocks := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mocks.projects.AssertNotCalled(t, "ListProjects")
}

func TestHandler_CreateProject_Success(t *testing.T) {
	handler, mocks := newTestHandler(t)

	createReq := dto.CreateProjectRequest{Name: "Marketing Site", Domain: "acme.dev"}

	mocks.projects.On("CreateProject", mock.Anything, "tenant-1", &createReq).
		Return(&dto.ProjectResponse{ID: "proj-1", TenantID: "tenant-1", Name: "Marketing Site"}, nil)

	body, _ := json.Marshal(createReq)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/projects", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.ProjectResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "proj-1", response.ID)
	mocks.projects.AssertExpectations(t)
}

func TestHandler_GetProject_NotFound(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.projects.On("GetProject", mock.Anything, "missing", "tenant-1").
		Return(nil, fmt.Errorf("project not found: %w", domain.ErrNotFound))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/projects/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteProject_NoContent(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.projects.On("DeleteProject", mock.Anything, "proj-1", "tenant-1").Return(nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/projects/proj-1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.projects.AssertExpectations(t)
}

func TestHandler_DeleteProject_LogsActingTenant(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	mocks := &testMocks{
		auth:      new(MockAuthService),
		projects:  new(MockProjectService),
		track:     new(MockTrackService),
		analytics: new(MockAnalyticsService),
	}
	handler := NewHandler(mocks.auth, mocks.projects, mocks.track, mocks.analytics, testIssuer, "*", zap.New(core))

	mocks.projects.On("DeleteProject", mock.Anything, "proj-1", "tenant-1").Return(nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/projects/proj-1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)

	entries := logs.FilterMessage("Project deleted").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "proj-1", entries[0].ContextMap()["project_id"])
	assert.Equal(t, "owner@acme.dev", entries[0].ContextMap()["tenant_email"])
}

func TestHandler_Track_Success(t *testing.T) {
	handler, mocks := newTestHandler(t)

	trackReq := dto.TrackEventRequest{
		ProjectID:    "proj-1",
		TrackingCode: "code-1",
		SessionID:    "sess-1",
		EventType:    "pageview",
		UserAgent:    "Mozilla/5.0",
		ConsentGiven: true,
	}

	mocks.track.On("Track", mock.Anything, &trackReq, mock.AnythingOfType("string"), false).
		Return(&dto.TrackEventResponse{Status: "tracked", EventID: "evt-1"}, nil)

	body, _ := json.Marshal(trackReq)
	req := httptest.NewRequest(http.MethodPost, "/api/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var response dto.TrackEventResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "tracked", response.Status)
	assert.Equal(t, "evt-1", response.EventID)
}

func TestHandler_Track_PassesDNTHeader(t *testing.T) {
	handler, mocks := newTestHandler(t)

	trackReq := dto.TrackEventRequest{
		ProjectID:    "proj-1",
		TrackingCode: "code-1",
		SessionID:    "sess-1",
		EventType:    "pageview",
		UserAgent:    "Mozilla/5.0",
	}

	mocks.track.On("Track", mock.Anything, &trackReq, mock.AnythingOfType("string"), true).
		Return(&dto.TrackEventResponse{Status: "ignored"}, nil)

	body, _ := json.Marshal(trackReq)
	req := httptest.NewRequest(http.MethodPost, "/api/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("DNT", "1")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	mocks.track.AssertExpectations(t)
}

func TestHandler_Track_Forbidden(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.track.On("Track", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("tracking code rejected: %w", domain.ErrForbidden))

	body, _ := json.Marshal(dto.TrackEventRequest{
		ProjectID:    "proj-1",
		TrackingCode: "wrong-code",
		SessionID:    "sess-1",
		EventType:    "pageview",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Overview_Success(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.analytics.On("Overview", mock.Anything, "proj-1", "tenant-1", 30).
		Return(&dto.OverviewResponse{TotalPageviews: 1204, TotalEvents: 1650}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/overview?days=30", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.OverviewResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 1204, response.TotalPageviews)
	mocks.analytics.AssertExpectations(t)
}

func TestHandler_Overview_DefaultsToSevenDays(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.analytics.On("Overview", mock.Anything, "proj-1", "tenant-1", 7).
		Return(&dto.OverviewResponse{}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/overview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.analytics.AssertExpectations(t)
}

func TestHandler_Overview_UnsupportedDays(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.analytics.On("Overview", mock.Anything, "proj-1", "tenant-1", 14).
		Return(nil, fmt.Errorf("%w: days must be one of 7, 30, 90", domain.ErrValidation))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/overview?days=14", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Overview_NonNumericDays(t *testing.T) {
	handler, mocks := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/overview?days=week", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.analytics.AssertNotCalled(t, "Overview")
}

func TestHandler_Overview_Timeout(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.analytics.On("Overview", mock.Anything, "proj-1", "tenant-1", 90).
		Return(nil, fmt.Errorf("overview query exceeded 5s: %w", domain.ErrTimeout))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/overview?days=90", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestHandler_Export_CSVHeaders(t *testing.T) {
	handler, mocks := newTestHandler(t)

	mocks.analytics.On("ExportCSV", mock.Anything, "proj-1", "tenant-1", 7).
		Return([]byte("metric,value\ntotal_pageviews,1\n"), nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/analytics/proj-1/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "total_pageviews,1")
}

func TestHandler_NLQ_Success(t *testing.T) {
	handler, mocks := newTestHandler(t)

	nlqReq := dto.NLQRequest{
		ProjectID: "proj-1",
		Question:  "Which pages grew the most this week?",
		DateRange: "7d",
	}

	mocks.analytics.On("AnswerQuestion", mock.Anything, "tenant-1", &nlqReq).
		Return(&dto.NLQResponse{
			Question: nlqReq.Question,
			Answer:   "Pricing grew the most.",
			Insights: []string{"The most viewed page is /pricing with 42 views."},
		}, nil)

	body, _ := json.Marshal(nlqReq)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/nlq", body))

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.NLQResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Pricing grew the most.", response.Answer)
	mocks.analytics.AssertExpectations(t)
}
