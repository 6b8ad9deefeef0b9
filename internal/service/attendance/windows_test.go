package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/shift"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 3, 9, hour, minute, second, 0, time.UTC)
}

func TestEvaluateCheckIn(t *testing.T) {
	tests := []struct {
		name      string
		shift     shift.Name
		punch     time.Time
		wantLate  *string
		wantError error
	}{
		{"morning window open boundary", shift.Morning, at(5, 45, 0), nil, nil},
		{"morning on time", shift.Morning, at(5, 52, 30), nil, nil},
		{"morning on-time cutoff boundary", shift.Morning, at(6, 0, 0), nil, nil},
		{"morning thirty minutes late", shift.Morning, at(6, 30, 0), ptr("0h 30m"), nil},
		{"morning seconds truncated", shift.Morning, at(6, 30, 45), ptr("0h 30m"), nil},
		{"morning late cutoff boundary", shift.Morning, at(12, 0, 0), ptr("6h 0m"), nil},
		{"morning past late cutoff", shift.Morning, at(13, 0, 0), nil, attendance.ErrNotEligible},
		{"morning before window opens", shift.Morning, at(5, 30, 0), nil, attendance.ErrNotEligible},
		{"general on time", shift.General, at(9, 50, 0), nil, nil},
		{"general late", shift.General, at(11, 15, 0), ptr("1h 15m"), nil},
		{"general past cutoff", shift.General, at(16, 1, 0), nil, attendance.ErrNotEligible},
		{"evening on time", shift.Evening, at(14, 5, 0), nil, nil},
		{"evening late", shift.Evening, at(16, 20, 0), ptr("2h 15m"), nil},
		{"evening past cutoff", shift.Evening, at(18, 31, 0), nil, attendance.ErrNotEligible},
		{"night shift always rejected", shift.Night, at(22, 0, 0), nil, attendance.ErrNotEligible},
		{"night shift rejected even at midday", shift.Night, at(12, 0, 0), nil, attendance.ErrNotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			late, err := evaluateCheckIn(tt.shift, tt.punch)

			if tt.wantError != nil {
				assert.True(t, errors.Is(err, tt.wantError), "got error %v", err)
				return
			}
			require.NoError(t, err)

			if tt.wantLate == nil {
				assert.Nil(t, late)
			} else {
				require.NotNil(t, late)
				assert.Equal(t, *tt.wantLate, *late)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0h 0m"},
		{"sub-minute truncates to zero", 59 * time.Second, "0h 0m"},
		{"exact minutes", 30 * time.Minute, "0h 30m"},
		{"hours and minutes", 9*time.Hour + 12*time.Minute, "9h 12m"},
		{"seconds dropped", 2*time.Hour + 5*time.Minute + 59*time.Second, "2h 5m"},
		{"negative clamps to zero", -5 * time.Minute, "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func ptr(s string) *string { return &s }
