package cache

import (
	"context"

	"github.com/MKhiriev/participant-tracker/models"
)

const progressKey = "progress:all"

// GetProgress returns the cached progress rows or ErrCacheMiss.
func (c *Cache) GetProgress(ctx context.Context) ([]models.ProgressRow, error) {
	var rows []models.ProgressRow
	if err := c.Get(ctx, progressKey, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// SetProgress replaces the cached progress rows.
func (c *Cache) SetProgress(ctx context.Context, rows []models.ProgressRow) error {
	if rows == nil {
		rows = []models.ProgressRow{}
	}

	return c.Set(ctx, progressKey, rows)
}

// InvalidateProgress drops the cached progress rows so the next read goes
// to the progress service.
func (c *Cache) InvalidateProgress(ctx context.Context) error {
	return c.Delete(ctx, progressKey)
}
