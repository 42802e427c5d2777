// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"courses_backend/internal/feature/courses/adapters"
	"courses_backend/internal/feature/courses/usecase"
	"courses_backend/internal/platform/cache"
)

// NewCourseRepository creates a CourseRepository implementation.
// If Redis is available, reads are served through a caching decorator.
// Otherwise it falls back to the plain database repository.
func NewCourseRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.CourseRepository {
	repo := adapters.NewCoursePostgres(db)
	if rdb != nil {
		return cache.NewCachingCourseRepository(rdb, ttl, repo, "courses")
	}
	return repo
}
