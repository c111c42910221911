// internal/services/repository.go
package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/cache"
	"github.com/javajoker/ecom-backend/internal/metrics"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

// Options tune every service built over the same connection pool.
type Options struct {
	// QueryTimeout bounds each storage call. Zero leaves only the caller's deadline.
	QueryTimeout time.Duration
	Cache        cache.Store
	CacheTTL     time.Duration
}

// repository is the storage access shared by the services. It holds no
// per-request state and is safe for concurrent use.
type repository struct {
	db      *gorm.DB
	dialect string
	opts    Options
}

func newRepository(db *gorm.DB, opts Options) *repository {
	if opts.Cache == nil {
		opts.Cache = cache.Noop{}
	}
	return &repository{
		db:      db,
		dialect: db.Dialector.Name(),
		opts:    opts,
	}
}

// exec runs fn under the configured timeout, records its latency and
// classifies any failure as a StorageError for op.
func (r *repository) exec(ctx context.Context, op string, fn func(tx *gorm.DB) error) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDBQuery(op, start, err) }()

	if r.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.QueryTimeout)
		defer cancel()
	}

	if err = fn(r.db.WithContext(ctx)); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// raw scans one statement into dest and returns the number of rows read.
func (r *repository) raw(ctx context.Context, op string, stmt query.Statement, dest interface{}) (int64, error) {
	var rows int64
	err := r.exec(ctx, op, func(tx *gorm.DB) error {
		res := tx.Raw(stmt.SQL, stmt.Args...).Scan(dest)
		rows = res.RowsAffected
		return res.Error
	})
	return rows, err
}

// fetchPage runs the data statement and its count over the same predicates
// concurrently.
func fetchPage[R any](ctx context.Context, r *repository, op string, b *query.Builder, page, limit int) ([]R, int64, error) {
	offset, size, err := utils.ToOffsetLimit(page, limit)
	if err != nil {
		return nil, 0, err
	}

	data := b.Limit(size).Offset(offset).Build()
	count := b.Count().Build()

	var (
		rows  []R
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := r.raw(gctx, op, data, &rows)
		return err
	})
	g.Go(func() error {
		_, err := r.raw(gctx, op+".count", count, &total)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// cached serves key from the cache or loads it and stores the result.
// Cache write failures never fail the read.
func cached[T any](ctx context.Context, r *repository, key string, load func() (T, error)) (T, error) {
	var out T
	if r.opts.Cache.Get(ctx, key, &out) {
		return out, nil
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	_ = r.opts.Cache.Set(ctx, key, out, r.opts.CacheTTL)
	return out, nil
}

func validID(id int64) error {
	if id <= 0 {
		return ErrInvalidFilter
	}
	return nil
}
