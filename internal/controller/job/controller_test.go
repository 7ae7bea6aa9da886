package job

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

func jobRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	store := storage.NewMemStorage()
	require.NoError(t, storage.SeedSampleJobs(store))
	controller := NewJobController(store)

	r := gin.New()
	r.GET("/api/jobs", controller.GetJobs)
	r.GET("/api/jobs/:id", controller.GetJobByID)
	r.PATCH("/api/jobs/:id", controller.EditJobHandler)
	return r, store
}

func TestGetJobs_ReturnsAllActiveNewestFirst(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 5)
	assert.Equal(t, "UI / UX Designer", resp[0]["title"])
	assert.Equal(t, "Laborum", resp[0]["company"])
	assert.Equal(t, "Product Designer", resp[4]["title"])
}

func TestGetJobs_FreeTextQuery(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?q=copywriter", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, "UX Copywriter", resp[0]["title"])
}

func TestGetJobs_LocationFilter(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?location=tucson", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.Equal(t, "Tucson, AZ", resp[0]["location"])
}

func TestGetJobs_QueryAndFilterCombined(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?q=UX&workType=Onsite", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 2)
	for _, job := range resp {
		assert.Equal(t, "Onsite", job["workType"])
	}
}

func TestGetJobs_CompanyTypeHasNoEffect(t *testing.T) {
	r, _ := jobRouter(t)

	_, plain := testutil.MakeJSONListRequest(r, "/api/jobs", http.MethodGet)
	rec, filtered := testutil.MakeJSONListRequest(r, "/api/jobs?companyType=Startup", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(plain), len(filtered))
}

func TestGetJobs_ExcludesInactive(t *testing.T) {
	r, store := jobRouter(t)

	inactive := false
	_, err := store.UpdateJob(2, model.JobUpdate{IsActive: &inactive})
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp, 4)
	for _, job := range resp {
		assert.NotEqual(t, float64(2), job["id"])
	}
}

func TestGetJobByID(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/3", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UX Copywriter", resp["title"])
	assert.Equal(t, float64(3), resp["id"])
}

func TestGetJobByID_InvalidID(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/abc", http.MethodGet)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job ID", resp["message"])
}

func TestGetJobByID_NotFound(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/jobs/999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["message"])
}

// An inactive posting disappears from listings but stays reachable by id.
func TestEditJob_SoftDelete(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"isActive": false}, "", r, "/api/jobs/1", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["isActive"])

	_, listed := testutil.MakeJSONListRequest(r, "/api/jobs", http.MethodGet)
	assert.Len(t, listed, 4)

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/api/jobs/1", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["isActive"])
}

func TestEditJob_PartialUpdateKeepsOtherFields(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"title": "Lead Product Designer"}, "", r, "/api/jobs/5", http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lead Product Designer", resp["title"])
	assert.Equal(t, "TechSolutions Inc.", resp["company"])
	assert.Equal(t, true, resp["isActive"])
}

func TestEditJob_NotFound(t *testing.T) {
	r, _ := jobRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"title": "Anything"}, "", r, "/api/jobs/999", http.MethodPatch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["message"])
}
