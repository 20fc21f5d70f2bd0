package ports

import (
	"context"

	"github.com/studentplanner/core/internal/domain/entities"
)

// HolidaySource fetches the official holidays for a year from the
// upstream provider, normalized into the internal holiday shape with
// IsOfficial set. A transport or payload failure is returned as an error;
// rendering callers recover by treating the year as holiday-free.
type HolidaySource interface {
	FetchYear(ctx context.Context, year int) ([]entities.Holiday, error)
}
