package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"archetypeagent/catalog"
	"archetypeagent/internal/session"
	"archetypeagent/middlewares"
	"archetypeagent/models"
	"archetypeagent/services"
	"archetypeagent/structs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, submissions int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	services.InitAssessmentService(services.AssessmentDeps{
		Now: func() time.Time { return time.Date(2025, 6, 1, 18, 5, 0, 0, time.UTC) },
	})
	limiter := session.NewMemoryLimiter(session.RateLimitConfig{MaxSubmissions: submissions, Window: time.Minute})
	router := gin.New()
	SetupAssessmentRoutes(router, middlewares.RateLimitMiddleware(limiter, zap.NewNop()))
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestListAndQuestions(t *testing.T) {
	router := newTestRouter(t, 10)

	w := do(router, http.MethodGet, "/assessments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"models":["archetype","jungian"]}`, w.Body.String())

	w = do(router, http.MethodGet, "/assessments/archetype/questions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var q structs.QuestionnaireResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Len(t, q.Groups, 12)
	assert.Equal(t, "1 = Strongly Disagree, 7 = Strongly Agree", q.Scale.Legend)

	w = do(router, http.MethodGet, "/assessments/tarot/questions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitValidation(t *testing.T) {
	router := newTestRouter(t, 10)

	w := do(router, http.MethodPost, "/assessments/archetype/submit", `{"responses":{"q1":9}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/assessments/archetype/submit", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/assessments/tarot/submit", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestSubmitFetchAndExport(t *testing.T) {
	router := newTestRouter(t, 10)

	w := do(router, http.MethodPost, "/assessments/archetype/submit",
		`{"responses":{"q7":7,"q8":7},"freeText":"I care for and help others","includeInsight":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var a models.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(t, catalog.Caregiver, a.Result.Top[0].Category)
	require.NotNil(t, a.Insight)
	assert.False(t, a.Insight.Available)

	w = do(router, http.MethodGet, "/results/"+a.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/results/"+a.ID+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="archetype_report_20250601_1805.json"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	var report services.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, a.ID, report.ID)
	assert.Equal(t, "I care for and help others", report.Notes)

	w = do(router, http.MethodGet, "/results/does-not-exist/export", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRateLimited(t *testing.T) {
	router := newTestRouter(t, 1)

	w := do(router, http.MethodPost, "/assessments/jungian/submit", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(router, http.MethodPost, "/assessments/jungian/submit", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// reads are not limited
	w = do(router, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
