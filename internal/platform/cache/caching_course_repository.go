// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"courses_backend/internal/feature/courses/domain/entity"
	"courses_backend/internal/feature/courses/usecase"
)

// CachingCourseRepository decorates a CourseRepository with Redis caching.
// It implements the decorator pattern, transparently adding read-through
// caching without modifying the underlying repository. Writes invalidate
// the affected entries.
type CachingCourseRepository struct {
	inner     usecase.CourseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCourseRepositoryがCourseRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CourseRepository = (*CachingCourseRepository)(nil)

// NewCachingCourseRepository decorates a CourseRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "courses".
func NewCachingCourseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CourseRepository, namespace string) *CachingCourseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "courses"
	}
	return &CachingCourseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key for the full course listing.
func (c *CachingCourseRepository) listKey() string {
	return c.namespace + ":all"
}

// itemKey is the cache key for a single course.
func (c *CachingCourseRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// invalidate deletes the given cache keys. Best effort: cache failures never
// fail the write that triggered them.
func (c *CachingCourseRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

// Create persists a course and invalidates the listing cache.
func (c *CachingCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Create(ctx, course); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

// FindAll retrieves all courses, checking the cache first then falling back
// to the database.
func (c *CachingCourseRepository) FindAll(ctx context.Context) ([]entity.CourseWithOwner, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.CourseWithOwner
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves a single course, checking the cache first then falling
// back to the database. Not-found results are never cached.
func (c *CachingCourseRepository) FindByID(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.CourseWithOwner
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves a course's content fields and invalidates the affected entries.
func (c *CachingCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Update(ctx, course); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.itemKey(course.ID))
	return nil
}

// Delete removes a course and invalidates the affected entries.
func (c *CachingCourseRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.itemKey(id))
	return nil
}
