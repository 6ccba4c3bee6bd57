package clinic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOpenAt(t *testing.T) {
	c := Clinic{
		Name: "Central Blood Center",
		OpeningHours: OpeningHours{
			"monday":   {"09:00-14:00", "17:00-20:00"},
			"saturday": {"10:00-13:00"},
		},
	}

	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		time string
		open bool
	}{
		{"opening boundary inclusive", monday, "09:00", true},
		{"mid morning", monday, "11:30", true},
		{"closing boundary exclusive", monday, "14:00", false},
		{"between ranges", monday, "15:30", false},
		{"second range", monday, "18:00", true},
		{"second range closing", monday, "20:00", false},
		{"saturday open", saturday, "10:45", true},
		{"saturday late", saturday, "13:30", false},
		{"closed day", sunday, "11:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, c.IsOpenAt(tc.date, tc.time))
		})
	}
}

func TestIsOpenAt_NoHours(t *testing.T) {
	c := Clinic{Name: "Pop-up Drive"}
	assert.False(t, c.IsOpenAt(time.Now(), "11:00"))
}

func TestIsOpenAt_MalformedRange(t *testing.T) {
	c := Clinic{
		OpeningHours: OpeningHours{"monday": {"not-a-range", "09:00-14:00"}},
	}
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsOpenAt(monday, "10:00"))
}
