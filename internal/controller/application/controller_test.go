package application

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func applicationRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	store := storage.NewMemStorage()
	require.NoError(t, storage.SeedSampleJobs(store))
	_, err := store.CreateUser(model.User{Username: "alice", Password: "pw", Email: "alice@example.com"})
	require.NoError(t, err)

	controller := NewApplicationController(store)

	r := gin.New()
	r.POST("/api/jobs/:id/apply", controller.ApplyHandler)
	r.GET("/api/jobs/:id/applications", controller.ListByJobHandler)
	r.GET("/api/users/:id/applications", controller.ListByUserHandler)
	r.PATCH("/api/applications/:id/status", controller.UpdateStatusHandler)
	return r, store
}

func applyBody() gin.H {
	return gin.H{
		"userId":   1,
		"fullName": "Alice Doe",
		"email":    "alice@example.com",
		"phone":    "555-0100",
		"resume":   "https://example.com/resume.pdf",
	}
}

func TestApplyHandler_Success(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/2/apply", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, float64(2), resp["jobId"])
	assert.Equal(t, float64(1), resp["userId"])
	assert.Equal(t, "applied", resp["status"])
	assert.NotEmpty(t, resp["applicationDate"])
}

// A status smuggled into the request body must not survive; every new
// application starts as "applied".
func TestApplyHandler_IgnoresCallerStatus(t *testing.T) {
	r, _ := applicationRouter(t)

	body := applyBody()
	body["status"] = "hired"
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/api/jobs/1/apply", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "applied", resp["status"])
}

func TestApplyHandler_DuplicatesAllowed(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, first := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/1/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, second := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/1/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.NotEqual(t, first["id"], second["id"])
}

func TestApplyHandler_JobNotFound(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/999/apply", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["message"])
}

func TestApplyHandler_InvalidJobID(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/abc/apply", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job ID", resp["message"])
}

func TestApplyHandler_MissingRequiredFields(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"userId": 1}, "", r, "/api/jobs/1/apply", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["message"], "Invalid request body")
}

func TestUpdateStatusHandler(t *testing.T) {
	r, _ := applicationRouter(t)
	rec, _ := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/1/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "reviewed"}, "", r, "/api/applications/1/status", http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reviewed", resp["status"])
}

func TestUpdateStatusHandler_MissingStatus(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, "", r, "/api/applications/1/status", http.MethodPatch)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be provided", resp["message"])
}

func TestUpdateStatusHandler_NotFound(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "reviewed"}, "", r, "/api/applications/999/status", http.MethodPatch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Application not found", resp["message"])
}

func TestListByJobHandler(t *testing.T) {
	r, _ := applicationRouter(t)
	for i := 0; i < 2; i++ {
		rec, _ := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/3/apply", http.MethodPost)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec, _ := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/1/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	recList, resp := testutil.MakeJSONListRequest(r, "/api/jobs/3/applications", http.MethodGet)

	assert.Equal(t, http.StatusOK, recList.Code)
	require.Len(t, resp, 2)
	for _, app := range resp {
		assert.Equal(t, float64(3), app["jobId"])
	}
}

func TestListByJobHandler_JobNotFound(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/999/applications", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["message"])
}

func TestListByUserHandler(t *testing.T) {
	r, _ := applicationRouter(t)
	rec, _ := testutil.MakeJSONRequest(applyBody(), "", r, "/api/jobs/1/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	recList, resp := testutil.MakeJSONListRequest(r, "/api/users/1/applications", http.MethodGet)

	assert.Equal(t, http.StatusOK, recList.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, float64(1), resp[0]["userId"])
}

func TestListByUserHandler_EmptyList(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/users/1/applications", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp)
}

func TestListByUserHandler_UserNotFound(t *testing.T) {
	r, _ := applicationRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/users/999/applications", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", resp["message"])
}
