package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/utilities"
)

// pgUniqueViolation is the postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

// migrateAble lists every model the postgres backend migrates.
var migrateAble = []interface{}{
	&model.User{},
	&model.Job{},
	&model.Application{},
	&model.SavedJob{},
}

// GormStorage is the postgres-backed Storage implementation. It exposes
// the exact surface MemStorage does; uniqueness is additionally backed by
// database constraints so races that slip past the lookup still fail
// safely.
type GormStorage struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// NewGormStorage connects to postgres with the given DSN and runs the
// schema migration.
func NewGormStorage(dsn string) (*GormStorage, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := gdb.AutoMigrate(migrateAble...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	raw, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	return &GormStorage{db: gdb, sqlDB: raw}, nil
}

// Close closes the underlying connection pool.
func (g *GormStorage) Close() error {
	return g.sqlDB.Close()
}

func (g *GormStorage) GetUser(id int) (*model.User, error) {
	var user model.User
	if err := g.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (g *GormStorage) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := g.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (g *GormStorage) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := g.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// CreateUser inserts the user inside a transaction that re-checks
// username and email uniqueness; the unique indexes catch whatever a
// concurrent transaction slipped in between.
func (g *GormStorage) CreateUser(user model.User) (*model.User, error) {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		if err := tx.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		user.ID = 0
		user.CreatedAt = time.Now()
		return tx.Create(&user).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == "idx_users_email" {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

func (g *GormStorage) UpdateUser(id int, patch model.User) (*model.User, error) {
	var user model.User
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			return translateErr(err)
		}
		patch.ID = 0
		utilities.MergeNonEmpty(&user, &patch)
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *GormStorage) GetJob(id int) (*model.Job, error) {
	var job model.Job
	if err := g.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, translateErr(err)
	}
	return &job, nil
}

func (g *GormStorage) GetAllJobs() ([]model.Job, error) {
	jobs := []model.Job{}
	err := g.db.Where("is_active = ?", true).
		Order("posted_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *GormStorage) SearchJobs(query string, filters model.JobFilters) ([]model.Job, error) {
	result := g.db.Where("is_active = ?", true)

	if query != "" {
		pattern := "%" + query + "%"
		result = result.Where(
			"title ILIKE ? OR company ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filters.Location != "" {
		result = result.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.JobType != "" {
		result = result.Where("job_type = ?", filters.JobType)
	}
	if filters.ExperienceLevel != "" {
		result = result.Where("experience_level = ?", filters.ExperienceLevel)
	}
	if filters.WorkType != "" {
		result = result.Where("work_type = ?", filters.WorkType)
	}
	// filters.CompanyType has no column; it is accepted and ignored.

	jobs := []model.Job{}
	if err := result.Order("posted_date DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *GormStorage) CreateJob(job model.Job) (*model.Job, error) {
	job.ID = 0
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now()
	}
	job.IsActive = true
	if err := g.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (g *GormStorage) UpdateJob(id int, patch model.JobUpdate) (*model.Job, error) {
	var job model.Job
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&job).Error; err != nil {
			return translateErr(err)
		}
		patch.ApplyTo(&job)
		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (g *GormStorage) GetApplication(id int) (*model.Application, error) {
	var app model.Application
	if err := g.db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, translateErr(err)
	}
	return &app, nil
}

func (g *GormStorage) GetApplicationsByJob(jobID int) ([]model.Application, error) {
	apps := []model.Application{}
	err := g.db.Where("job_id = ?", jobID).
		Order("application_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (g *GormStorage) GetApplicationsByUser(userID int) ([]model.Application, error) {
	apps := []model.Application{}
	err := g.db.Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (g *GormStorage) CreateApplication(app model.Application) (*model.Application, error) {
	app.ID = 0
	app.ApplicationDate = time.Now()
	app.Status = model.ApplicationStatusApplied
	if err := g.db.Create(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (g *GormStorage) UpdateApplicationStatus(id int, status string) (*model.Application, error) {
	var app model.Application
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&app).Error; err != nil {
			return translateErr(err)
		}
		app.Status = status
		return tx.Save(&app).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (g *GormStorage) GetSavedJobsByUser(userID int) ([]model.SavedJob, error) {
	saved := []model.SavedJob{}
	err := g.db.Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// CreateSavedJob is idempotent per pair. The unique index on
// (job_id, user_id) closes the lookup-then-insert race: a concurrent
// insert surfaces as a unique violation and the existing row is returned.
func (g *GormStorage) CreateSavedJob(jobID, userID int) (*model.SavedJob, error) {
	var saved model.SavedJob
	err := g.db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&saved).Error
	if err == nil {
		return &saved, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved = model.SavedJob{JobID: jobID, UserID: userID, SavedAt: time.Now()}
	if err := g.db.Create(&saved).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			var existing model.SavedJob
			if ferr := g.db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &saved, nil
}

func (g *GormStorage) DeleteSavedJob(id int) error {
	result := g.db.Delete(&model.SavedJob{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStorage) IsSavedJob(jobID, userID int) (bool, error) {
	var count int64
	err := g.db.Model(&model.SavedJob{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Health pings the database and reports connection pool statistics.
func (g *GormStorage) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)
	stats["backend"] = "postgres"

	if err := g.sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	dbStats := g.sqlDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	return stats
}

// translateErr maps gorm's not-found onto the storage sentinel so callers
// only ever test against package errors.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
