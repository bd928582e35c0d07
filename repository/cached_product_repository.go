package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"sportsstore-service/models"
	aws_pkg "sportsstore-service/pkg/aws"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogVersionKey   = "catalog:version"
	catalogSnapshotKeyf = "catalog:v:%d:products"
)

// CachedProductRepository caches the full ordered catalog in Redis. Writes bump a
// version key so stale snapshots are never read again. Redis failures fall through
// to the wrapped repository.
type CachedProductRepository struct {
	next    ProductRepository
	redis   *redis.Client
	ttl     time.Duration
	metrics aws_pkg.MetricsRecorder
	logger  *zap.Logger
}

func NewCachedProductRepository(next ProductRepository, client *redis.Client, ttl time.Duration, metrics aws_pkg.MetricsRecorder, logger *zap.Logger) *CachedProductRepository {
	return &CachedProductRepository{next: next, redis: client, ttl: ttl, metrics: metrics, logger: logger}
}

func (r *CachedProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	version, err := r.version(ctx)
	if err == nil {
		if products, ok := r.get(ctx, version); ok {
			r.record(aws_pkg.MetricCacheHits)
			return products, nil
		}
	}
	r.record(aws_pkg.MetricCacheMisses)

	products, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if version >= 0 {
		r.set(ctx, version, products)
	}
	return products, nil
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.next.FindByID(ctx, id)
}

func (r *CachedProductRepository) Save(ctx context.Context, product *models.Product) error {
	if err := r.next.Save(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		r.invalidate(ctx)
	}
	return deleted, nil
}

// version returns the current snapshot version, 0 when never bumped, -1 on error.
func (r *CachedProductRepository) version(ctx context.Context) (int64, error) {
	raw, err := r.redis.Get(ctx, catalogVersionKey).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return -1, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1, fmt.Errorf("bad catalog version %q: %w", raw, err)
	}
	return v, nil
}

func (r *CachedProductRepository) get(ctx context.Context, version int64) ([]models.Product, bool) {
	data, err := r.redis.Get(ctx, fmt.Sprintf(catalogSnapshotKeyf, version)).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.logger.Warn("Failed to unmarshal cached catalog", zap.Error(err))
		return nil, false
	}
	return products, true
}

func (r *CachedProductRepository) set(ctx context.Context, version int64, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		r.logger.Warn("Failed to marshal catalog for cache", zap.Error(err))
		return
	}
	if err := r.redis.Set(ctx, fmt.Sprintf(catalogSnapshotKeyf, version), data, r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to cache catalog", zap.Error(err))
	}
}

func (r *CachedProductRepository) invalidate(ctx context.Context) {
	if err := r.redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		r.logger.Warn("Failed to bump catalog cache version", zap.Error(err))
	}
}

func (r *CachedProductRepository) record(metric string) {
	if r.metrics == nil || !r.metrics.IsEnabled() {
		return
	}
	go func() {
		mctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = r.metrics.RecordCount(mctx, metric, map[string]string{"Cache": "catalog"})
	}()
}
