package jobinfra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/go-redis/redis/v8"
)

const activeJobsKey = "jobs:active"

// CachedJobRepository serves ListActive from Redis and invalidates it on every write.
// Redis failures are logged and fall through to the wrapped repository.
type CachedJobRepository struct {
	job.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedJobRepository wraps repo with a Redis read-through cache for the public job list
func NewCachedJobRepository(repo job.Repository, client *redis.Client, ttl time.Duration) *CachedJobRepository {
	return &CachedJobRepository{
		Repository: repo,
		client:     client,
		ttl:        ttl,
	}
}

// ListActive returns the cached public list or loads and caches it
func (r *CachedJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	data, err := r.client.Get(ctx, activeJobsKey).Bytes()
	switch {
	case err == nil:
		var jobs []job.Job
		if err := json.Unmarshal(data, &jobs); err == nil {
			return jobs, nil
		}
		logx.Warnf("discarding unreadable active jobs cache entry: %v", err)
	case !errors.Is(err, redis.Nil):
		logx.Warnf("active jobs cache read failed: %v", err)
	}

	jobs, err := r.Repository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(jobs); err == nil {
		if err := r.client.Set(ctx, activeJobsKey, data, r.ttl).Err(); err != nil {
			logx.Warnf("active jobs cache write failed: %v", err)
		}
	}

	return jobs, nil
}

func (r *CachedJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	if err := r.Repository.Create(ctx, jobEntity); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedJobRepository) Update(ctx context.Context, jobEntity *job.Job) error {
	if err := r.Repository.Update(ctx, jobEntity); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedJobRepository) ToggleActive(ctx context.Context, id kernel.JobID, updatedDate time.Time) (*job.Job, error) {
	j, err := r.Repository.ToggleActive(ctx, id, updatedDate)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return j, nil
}

func (r *CachedJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedJobRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, activeJobsKey).Err(); err != nil {
		logx.Warnf("active jobs cache invalidation failed: %v", err)
	}
}
