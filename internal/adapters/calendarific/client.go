// Package calendarific fetches official holidays from the Calendarific
// API and normalizes them into the internal holiday shape.
package calendarific

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/infrastructure/config"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

// Client calls the holiday provider. Outbound calls share a rate limiter
// so year-by-year navigation cannot hammer the upstream API.
type Client struct {
	baseURL string
	apiKey  string
	country string
	client  *http.Client
	limiter *rate.Limiter
	logger  *logger.Logger
}

// New creates a provider client from configuration.
func New(cfg config.HolidaysConfig, appLogger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		country: cfg.Country,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:  appLogger.WithComponent("calendarific"),
	}
}

// Upstream payload. Only the fields the planner needs are decoded; any
// unknown upstream shape fails the strict mapping below instead of
// leaking through.
type apiResponse struct {
	Response struct {
		Holidays []apiHoliday `json:"holidays"`
	} `json:"response"`
}

type apiHoliday struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        []string `json:"type"`
	Date        struct {
		ISO string `json:"iso"`
	} `json:"date"`
}

// FetchYear returns the official holidays for the given year. Transport
// errors, non-success statuses and malformed payloads are returned as
// errors; rendering callers recover with an empty holiday list.
func (c *Client) FetchYear(ctx context.Context, year int) ([]entities.Holiday, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/holidays?api_key=%s&country=%s&year=%d",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(c.country), year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := float64(time.Since(start).Nanoseconds()) / 1e6
	if err != nil {
		c.logger.LogUpstreamCall(c.baseURL+"/holidays", 0, duration, err)
		return nil, fmt.Errorf("holiday request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.LogUpstreamCall(c.baseURL+"/holidays", resp.StatusCode, duration, nil)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday response: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	return c.normalize(payload.Response.Holidays), nil
}

// normalize maps upstream records onto the internal holiday shape.
// Records without a name or a parsable date are skipped rather than
// poisoning the collection.
func (c *Client) normalize(records []apiHoliday) []entities.Holiday {
	holidays := make([]entities.Holiday, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			c.logger.Warnw("Skipping upstream holiday without a name")
			continue
		}

		dateKey := rec.Date.ISO
		if len(dateKey) > len(calendar.DateKeyLayout) {
			dateKey = dateKey[:len(calendar.DateKeyLayout)]
		}
		if _, err := calendar.ParseDateKey(dateKey); err != nil {
			c.logger.Warnw("Skipping upstream holiday with unparsable date",
				"name", rec.Name, "date", rec.Date.ISO)
			continue
		}

		holidayType := "Official"
		if len(rec.Type) > 0 && rec.Type[0] != "" {
			holidayType = rec.Type[0]
		}

		holidays = append(holidays, entities.Holiday{
			// Names alone are not unique within a year upstream, so the
			// id also carries the date.
			ID:          slug(rec.Name) + "-" + dateKey,
			Name:        rec.Name,
			Date:        dateKey,
			Type:        holidayType,
			Description: rec.Description,
			IsOfficial:  true,
		})
	}
	return holidays
}

func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
