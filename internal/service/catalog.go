package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/metrics"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/repository"
)

// DefaultSnapshotTTL is how long a loaded catalog snapshot stays fresh
// before the next request triggers a reload.
const DefaultSnapshotTTL = 5 * time.Minute

// CatalogService exposes the ingredient catalog as an immutable indexed
// snapshot. Totals and wire serialization both resolve against the same
// snapshot, so a single request never observes two catalog versions.
type CatalogService interface {
	Index(ctx context.Context) (*CatalogIndex, error)
	StepsWithOptions(ctx context.Context) ([]dto.CatalogStepResponse, error)
	Invalidate()
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithSnapshotTTL overrides the snapshot freshness window.
func WithSnapshotTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// CatalogServiceImpl implements CatalogService with a single cached
// snapshot. The last good snapshot is kept past its TTL and served when
// a reload fails, so catalog outages degrade to stale data instead of
// failed requests.
type CatalogServiceImpl struct {
	repo repository.CatalogRepositoryInterface
	ttl  time.Duration

	mu       sync.Mutex
	snapshot *CatalogIndex
	loadedAt time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		repo: repo,
		ttl:  DefaultSnapshotTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index returns the current catalog snapshot, reloading it from the
// repository when the cached one has expired.
func (s *CatalogServiceImpl) Index(ctx context.Context) (*CatalogIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && time.Since(s.loadedAt) < s.ttl {
		metrics.SetCatalogSnapshotAge(time.Since(s.loadedAt))
		return s.snapshot, nil
	}

	idx, err := s.load(ctx)
	if err != nil {
		if s.snapshot != nil {
			log.Warn().Err(err).
				Dur("snapshot_age", time.Since(s.loadedAt)).
				Msg("Catalog reload failed, serving stale snapshot")
			metrics.RecordCatalogLoad("stale")
			return s.snapshot, nil
		}
		metrics.RecordCatalogLoad("error")
		return nil, err
	}

	s.snapshot = idx
	s.loadedAt = time.Now()
	metrics.RecordCatalogLoad("success")
	metrics.SetCatalogSnapshotAge(0)
	return idx, nil
}

// load fetches steps and options and builds a fresh index. A repository
// whose circuit breaker is open reports no data and no error; that case
// builds an empty index so option resolution degrades to misses.
func (s *CatalogServiceImpl) load(ctx context.Context) (*CatalogIndex, error) {
	steps, err := s.repo.ListSteps(ctx)
	if err != nil {
		return nil, err
	}

	options, err := s.repo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	return NewCatalogIndex(steps, groupOptionsByCategory(options)), nil
}

// StepsWithOptions returns the wizard view of the catalog: steps in
// display order, each with its active options.
func (s *CatalogServiceImpl) StepsWithOptions(ctx context.Context) ([]dto.CatalogStepResponse, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	steps := idx.StepsOrdered()
	out := make([]dto.CatalogStepResponse, 0, len(steps))
	for _, step := range steps {
		out = append(out, dto.CatalogStepResponse{
			Step:    step,
			Options: idx.ActiveOptions(step.ID),
		})
	}
	return out, nil
}

// Invalidate drops the cached snapshot so the next Index call reloads.
func (s *CatalogServiceImpl) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.loadedAt = time.Time{}
}
