package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/domain/planner"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/ports"
)

// CreateHolidayRequest is the payload for creating a custom holiday.
type CreateHolidayRequest struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateHolidayRequest is the payload for updating a custom holiday.
// Nil fields are left unchanged.
type UpdateHolidayRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HolidayListFilter narrows the holiday list view.
type HolidayListFilter struct {
	Search string
	Type   string
}

// HolidayService manages custom holidays and the per-year official
// holiday cache. Each year is fetched from the upstream provider at most
// once per process; because results are keyed by year, a slow response
// can never clobber another year's data.
type HolidayService struct {
	holidayRepo ports.HolidayRepository
	source      ports.HolidaySource
	logger      *logger.Logger
	now         func() time.Time

	mu    sync.Mutex
	cache map[int][]entities.Holiday
}

// NewHolidayService creates a new holiday service
func NewHolidayService(holidayRepo ports.HolidayRepository, source ports.HolidaySource, appLogger *logger.Logger) *HolidayService {
	return &HolidayService{
		holidayRepo: holidayRepo,
		source:      source,
		logger:      appLogger,
		now:         time.Now,
		cache:       make(map[int][]entities.Holiday),
	}
}

// OfficialHolidays returns the official holidays for a year, fetching
// from the upstream provider on first use. Failed fetches are not cached
// so a later navigation to the year retries.
func (s *HolidayService) OfficialHolidays(ctx context.Context, year int) ([]entities.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[year]; ok {
		return cached, nil
	}

	holidays, err := s.source.FetchYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays for %d: %w", year, err)
	}

	s.cache[year] = holidays
	s.logger.Infow("Official holidays fetched", "year", year, "count", len(holidays))

	return holidays, nil
}

// officialOrEmpty is the rendering-path variant: any fetch failure is
// logged and degrades to zero official holidays.
func (s *HolidayService) officialOrEmpty(ctx context.Context, year int) []entities.Holiday {
	holidays, err := s.OfficialHolidays(ctx, year)
	if err != nil {
		s.logger.Errorw("Rendering without official holidays", "year", year, "error", err)
		return []entities.Holiday{}
	}
	return holidays
}

// Merged returns the official holidays for a year combined with all
// custom holidays.
func (s *HolidayService) Merged(ctx context.Context, year int) []entities.Holiday {
	official := s.officialOrEmpty(ctx, year)
	custom := s.holidayRepo.List()

	merged := make([]entities.Holiday, 0, len(official)+len(custom))
	merged = append(merged, official...)
	merged = append(merged, custom...)
	return merged
}

// ListHolidays returns the holiday list narrowed by the optional search
// term and type filter, sorted by date. With a non-zero year the list
// merges that year's official holidays; otherwise it holds custom
// holidays only.
func (s *HolidayService) ListHolidays(ctx context.Context, year int, filter HolidayListFilter) []entities.Holiday {
	holidays := s.holidayRepo.List()
	if year != 0 {
		holidays = s.Merged(ctx, year)
	}

	out := make([]entities.Holiday, 0, len(holidays))
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, h := range holidays {
		if term != "" &&
			!strings.Contains(strings.ToLower(h.Name), term) &&
			!strings.Contains(strings.ToLower(h.Description), term) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(h.Type, filter.Type) {
			continue
		}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// UpcomingHolidays returns holidays within the next `days` days across
// official (current year) and custom holidays.
func (s *HolidayService) UpcomingHolidays(ctx context.Context, days, limit int) []entities.Holiday {
	now := s.now()
	return planner.UpcomingHolidays(s.Merged(ctx, now.Year()), now, days, limit)
}

// CreateCustomHoliday creates a user-owned holiday. The type must be one
// of the fixed custom categories.
func (s *HolidayService) CreateCustomHoliday(req CreateHolidayRequest) (entities.Holiday, error) {
	if !entities.HolidayType(req.Type).IsValid() {
		return entities.Holiday{}, entities.ErrInvalidHolidayType
	}
	if _, err := calendar.ParseDateKey(req.Date); err != nil {
		return entities.Holiday{}, fmt.Errorf("invalid holiday date: %w", err)
	}

	holiday := entities.Holiday{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
		IsOfficial:  false,
	}

	s.holidayRepo.Create(holiday)
	s.logger.Infow("Custom holiday created", "holiday_id", holiday.ID, "name", holiday.Name)

	return holiday, nil
}

// UpdateCustomHoliday updates a user-owned holiday. Official holidays
// are read-only.
func (s *HolidayService) UpdateCustomHoliday(id string, req UpdateHolidayRequest) (entities.Holiday, error) {
	holiday, err := s.holidayRepo.Get(id)
	if err != nil {
		if s.isOfficialID(id) {
			return entities.Holiday{}, entities.ErrHolidayReadOnly
		}
		return entities.Holiday{}, err
	}

	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Date != nil {
		if _, err := calendar.ParseDateKey(*req.Date); err != nil {
			return entities.Holiday{}, fmt.Errorf("invalid holiday date: %w", err)
		}
		holiday.Date = *req.Date
	}
	if req.Type != nil {
		if !entities.HolidayType(*req.Type).IsValid() {
			return entities.Holiday{}, entities.ErrInvalidHolidayType
		}
		holiday.Type = *req.Type
	}
	if req.Description != nil {
		holiday.Description = *req.Description
	}

	if err := s.holidayRepo.Update(holiday); err != nil {
		return entities.Holiday{}, err
	}

	s.logger.Infow("Custom holiday updated", "holiday_id", holiday.ID)

	return holiday, nil
}

// DeleteCustomHoliday deletes a user-owned holiday. Official holidays
// are read-only.
func (s *HolidayService) DeleteCustomHoliday(id string) error {
	if err := s.holidayRepo.Delete(id); err != nil {
		if s.isOfficialID(id) {
			return entities.ErrHolidayReadOnly
		}
		return err
	}

	s.logger.Infow("Custom holiday deleted", "holiday_id", id)
	return nil
}

// isOfficialID reports whether the id belongs to an already-fetched
// official holiday, to distinguish "read-only" from "not found".
func (s *HolidayService) isOfficialID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, holidays := range s.cache {
		for _, h := range holidays {
			if h.ID == id {
				return true
			}
		}
	}
	return false
}
