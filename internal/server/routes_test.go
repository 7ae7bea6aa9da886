package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekh777/AIInterviewV4-0/internal/config"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// testServer builds a full router against a fresh seeded in-memory
// store. The rate limit is raised so bursty tests never trip it.
func testServer(t *testing.T) *gin.Engine {
	t.Helper()
	store := storage.NewMemStorage()
	require.NoError(t, storage.SeedSampleJobs(store))

	cfg := &config.Config{
		Port:         "8080",
		Env:          "test",
		AllowOrigins: []string{"http://localhost:5173"},
		RateLimitRPS: 1000,
	}
	s := New(cfg, store, zerolog.Nop())
	return s.RegisterRoutes().(*gin.Engine)
}

func TestHelloRoute(t *testing.T) {
	r := testServer(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job board API", resp["message"])
}

func TestHealthRoute(t *testing.T) {
	r := testServer(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
	assert.Equal(t, "memory", resp["backend"])
}

func TestMetricsRoute(t *testing.T) {
	r := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobboard_")
}

func TestRequestIDHeader(t *testing.T) {
	r := testServer(t)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateJobRoute(t *testing.T) {
	r := testServer(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":              "Backend Engineer",
		"company":            "ACME",
		"location":           "Denver, CO",
		"description":        "Build APIs.",
		"responsibilities":   "Ship code",
		"companyDescription": "We make everything.",
		"jobType":            "Full-time",
		"workType":           "Remote",
		"experienceLevel":    "Mid-level",
	}, "", r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(6), resp["id"])
	assert.Equal(t, true, resp["isActive"])
}

func TestCreateJobRoute_RejectsUnknownWorkType(t *testing.T) {
	r := testServer(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":              "Backend Engineer",
		"company":            "ACME",
		"location":           "Denver, CO",
		"description":        "Build APIs.",
		"responsibilities":   "Ship code",
		"companyDescription": "We make everything.",
		"jobType":            "Full-time",
		"workType":           "From the beach",
		"experienceLevel":    "Mid-level",
	}, "", r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["message"], "Invalid request body")
}

// End to end: register, log in, search, save, apply, then read
// everything back through the user-facing routes.
func TestJobSeekerFlow(t *testing.T) {
	r := testServer(t)

	rec, user := testutil.MakeJSONRequest(gin.H{
		"username": "alice",
		"password": "hunter2",
		"email":    "alice@example.com",
	}, "", r, "/api/auth/register", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(1), user["id"])

	rec, _ = testutil.MakeJSONRequest(gin.H{
		"username": "alice",
		"password": "hunter2",
	}, "", r, "/api/auth/login", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, me := testutil.MakeJSONRequest(nil, "1", r, "/api/user", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", me["username"])

	recList, jobs := testutil.MakeJSONListRequest(r, "/api/jobs?q=copywriter", http.MethodGet)
	require.Equal(t, http.StatusOK, recList.Code)
	require.Len(t, jobs, 1)

	rec, saved := testutil.MakeJSONRequest(gin.H{"userId": 1}, "", r, "/api/jobs/3/save", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(3), saved["jobId"])

	rec, check := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/3/saved?userId=1", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, check["saved"])

	rec, app := testutil.MakeJSONRequest(gin.H{
		"userId":   1,
		"fullName": "Alice Doe",
		"email":    "alice@example.com",
		"phone":    "555-0100",
		"resume":   "https://example.com/resume.pdf",
	}, "", r, "/api/jobs/3/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "applied", app["status"])

	recList, apps := testutil.MakeJSONListRequest(r, "/api/users/1/applications", http.MethodGet)
	require.Equal(t, http.StatusOK, recList.Code)
	require.Len(t, apps, 1)

	recList, bookmarks := testutil.MakeJSONListRequest(r, "/api/users/1/saved-jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, recList.Code)
	require.Len(t, bookmarks, 1)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/jobs/3/save?userId=1", http.MethodDelete)
	require.Equal(t, http.StatusNoContent, rec.Code)

	recList, bookmarks = testutil.MakeJSONListRequest(r, "/api/users/1/saved-jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, recList.Code)
	assert.Empty(t, bookmarks)
}

func TestCORSHeaders(t *testing.T) {
	r := testServer(t)

	req, _ := http.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH"))
}

func TestValidWorkType(t *testing.T) {
	// exercised through the binding tag above; the lookup itself is a
	// plain whitelist
	for _, tc := range []struct {
		value string
		ok    bool
	}{
		{"Remote", true},
		{"Onsite", true},
		{"Hybrid", true},
		{"remote", false},
		{"", false},
	} {
		assert.Equal(t, tc.ok, workTypeAllowed(tc.value), tc.value)
	}
}
