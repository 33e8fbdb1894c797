package adapter

import (
	"context"
	"errors"

	"github.com/MKhiriev/participant-tracker/internal/cache"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/models"
)

// cachedProgressSource is a read-through cache in front of another
// [ProgressSource]. Cache failures never fail a call: reads fall back to the
// wrapped source and writes only log.
type cachedProgressSource struct {
	next  ProgressSource
	cache ProgressCache
}

// NewCachedProgressSource wraps next so that ReadAll is served from c while
// the cached rows are fresh. UpsertMedals always goes to next and drops the
// cached rows on success.
func NewCachedProgressSource(next ProgressSource, c ProgressCache) ProgressSource {
	return &cachedProgressSource{next: next, cache: c}
}

func (s *cachedProgressSource) ReadAll(ctx context.Context) ([]models.ProgressRow, error) {
	log := logger.FromContext(ctx)

	rows, err := s.cache.GetProgress(ctx)
	if err == nil {
		log.Debug().Str("func", "*cachedProgressSource.ReadAll").Int("rows", len(rows)).Msg("progress served from cache")
		return rows, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "*cachedProgressSource.ReadAll").Msg("progress cache read failed")
	}

	rows, err = s.next.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = s.cache.SetProgress(ctx, rows); err != nil {
		log.Warn().Err(err).Str("func", "*cachedProgressSource.ReadAll").Msg("progress cache write failed")
	}

	return rows, nil
}

func (s *cachedProgressSource) UpsertMedals(ctx context.Context, studentID string, medals models.Medals) error {
	if err := s.next.UpsertMedals(ctx, studentID, medals); err != nil {
		return err
	}

	if err := s.cache.InvalidateProgress(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedProgressSource.UpsertMedals").Msg("progress cache invalidation failed")
	}

	return nil
}
