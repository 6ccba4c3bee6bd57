package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloodSafety_PicksMostRecentYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("$format"))
		assert.Equal(t, "SpatialDimension eq 'GRC'", r.URL.Query().Get("$filter"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[
			{"TimeDimension":2019,"Value":30.1},
			{"TimeDimension":2022,"Value":33.2},
			{"TimeDimension":2020,"Value":31.7}
		]}`))
	}))
	defer server.Close()

	stats := NewStatsService(server.URL).BloodSafety(context.Background())

	assert.Equal(t, "33.2", stats.RatePer1000)
	assert.Equal(t, 2022, stats.Year)
	assert.Equal(t, "WHO GHO", stats.Source)
	// 33.2 per 1000 over 10.4M people
	assert.Equal(t, "345,280", stats.Donations)
}

func TestBloodSafety_YearAsString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":[{"TimeDimension":"2021","Value":28.0}]}`))
	}))
	defer server.Close()

	stats := NewStatsService(server.URL).BloodSafety(context.Background())

	assert.Equal(t, 2021, stats.Year)
	assert.Equal(t, "28.0", stats.RatePer1000)
}

func TestBloodSafety_FallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
		{"empty value set", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"value":[]}`))
		}},
		{"null value", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"value":[{"TimeDimension":2022,"Value":null}]}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			stats := NewStatsService(server.URL).BloodSafety(context.Background())
			assert.Equal(t, fallbackStats, stats)
		})
	}
}

func TestBloodSafety_UnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	stats := NewStatsService(server.URL).BloodSafety(context.Background())
	assert.Equal(t, fallbackStats, stats)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "348,500", groupThousands(348500))
	assert.Equal(t, "12,345,678", groupThousands(12345678))
}
