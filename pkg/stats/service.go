package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultIndicatorURL is the WHO Global Health Observatory endpoint for the
// BLOODSAFETY_01 indicator (blood donation rate per 1000 population).
const DefaultIndicatorURL = "https://ghoapi.azureedge.net/api/BLOODSAFETY_01"

// greecePopulation approximates the population used to estimate total
// donations from the per-1000 rate.
const greecePopulation = 10_400_000

// BloodSafetyStats is the public statistics payload.
type BloodSafetyStats struct {
	RatePer1000 string `json:"ratePer1000"`
	Donations   string `json:"donations"`
	Year        int    `json:"year"`
	Source      string `json:"source"`
}

var fallbackStats = BloodSafetyStats{
	RatePer1000: "32.5",
	Donations:   "348,500",
	Year:        2023,
	Source:      "WHO GHO (Estimated)",
}

// StatsService proxies the WHO blood-safety indicator for Greece. It is
// stateless and never fails: any upstream problem yields the static
// fallback payload.
type StatsService struct {
	indicatorURL string
	httpClient   *http.Client
}

// NewStatsService creates a stats service. An empty indicatorURL selects
// the WHO GHO default.
func NewStatsService(indicatorURL string) *StatsService {
	if indicatorURL == "" {
		indicatorURL = DefaultIndicatorURL
	}
	return &StatsService{
		indicatorURL: indicatorURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

type ghoResponse struct {
	Value []struct {
		TimeDimension any      `json:"TimeDimension"`
		Value         *float64 `json:"Value"`
	} `json:"value"`
}

// BloodSafety returns the most recent Greek blood-safety figures, or the
// fallback when the upstream call fails or carries no rows.
func (s *StatsService) BloodSafety(ctx context.Context) BloodSafetyStats {
	query := url.Values{
		"$format": {"json"},
		"$filter": {"SpatialDimension eq 'GRC'"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.indicatorURL+"?"+query.Encode(), nil)
	if err != nil {
		return fallbackStats
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Warn("WHO indicator fetch failed", "err", err)
		return fallbackStats
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("WHO indicator returned non-OK status", "status", resp.StatusCode)
		return fallbackStats
	}

	var body ghoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("WHO indicator response unparseable", "err", err)
		return fallbackStats
	}
	if len(body.Value) == 0 {
		return fallbackStats
	}

	latest := body.Value[0]
	for _, row := range body.Value[1:] {
		if yearOf(row.TimeDimension) > yearOf(latest.TimeDimension) {
			latest = row
		}
	}
	if latest.Value == nil {
		return fallbackStats
	}

	rate := *latest.Value
	donations := int(math.Round(rate / 1000 * greecePopulation))

	result := BloodSafetyStats{
		RatePer1000: strconv.FormatFloat(rate, 'f', 1, 64),
		Donations:   groupThousands(donations),
		Year:        yearOf(latest.TimeDimension),
		Source:      "WHO GHO",
	}
	if result.Year == 0 {
		result.Year = fallbackStats.Year
	}
	return result
}

// yearOf tolerates the indicator reporting the year as either a number or
// a string.
func yearOf(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
