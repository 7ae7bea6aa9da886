package storage

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
)

// gormStore connects to the database named by TEST_DATABASE_URL, or
// skips the test when it is not set. Each caller gets unique usernames
// via the returned suffix so runs do not collide.
func gormStore(t *testing.T) (*GormStorage, string) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	g, err := NewGormStorage(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })

	return g, fmt.Sprintf("%s-%d", t.Name(), time.Now().UnixNano())
}

func TestGormStorage_UserRoundTrip(t *testing.T) {
	g, suffix := gormStore(t)

	created, err := g.CreateUser(model.User{
		Username: "alice-" + suffix,
		Password: "pw",
		Email:    suffix + "@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := g.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)

	byName, err := g.GetUserByUsername(created.Username)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = g.CreateUser(model.User{
		Username: "alice-" + suffix,
		Password: "pw",
		Email:    "other-" + suffix + "@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = g.CreateUser(model.User{
		Username: "bob-" + suffix,
		Password: "pw",
		Email:    suffix + "@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGormStorage_SavedJobIdempotent(t *testing.T) {
	g, suffix := gormStore(t)

	user, err := g.CreateUser(model.User{
		Username: "saver-" + suffix,
		Password: "pw",
		Email:    "saver-" + suffix + "@example.com",
	})
	require.NoError(t, err)

	job, err := g.CreateJob(model.Job{
		Title: "Engineer", Company: "ACME", Location: "Denver, CO",
		Description: "d", Responsibilities: "r", CompanyDescription: "c",
		JobType: "Full-time", WorkType: "Remote", ExperienceLevel: "Mid-level",
	})
	require.NoError(t, err)

	first, err := g.CreateSavedJob(job.ID, user.ID)
	require.NoError(t, err)
	second, err := g.CreateSavedJob(job.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	ok, err := g.IsSavedJob(job.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.DeleteSavedJob(first.ID))
	assert.ErrorIs(t, g.DeleteSavedJob(first.ID), ErrNotFound)
}

func TestGormStorage_ApplicationStatusForced(t *testing.T) {
	g, _ := gormStore(t)

	job, err := g.CreateJob(model.Job{
		Title: "Engineer", Company: "ACME", Location: "Denver, CO",
		Description: "d", Responsibilities: "r", CompanyDescription: "c",
		JobType: "Full-time", WorkType: "Remote", ExperienceLevel: "Mid-level",
	})
	require.NoError(t, err)

	app, err := g.CreateApplication(model.Application{
		JobID: job.ID, UserID: 1,
		FullName: "A", Email: "a@example.com", Phone: "1", Resume: "r",
		Status: "hired",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusApplied, app.Status)

	updated, err := g.UpdateApplicationStatus(app.ID, model.ApplicationStatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusReviewed, updated.Status)
}
