package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestDerivePaidDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		paid *bool
		prev *time.Time
		want *time.Time
	}{
		{"absent keeps unpaid", nil, nil, nil},
		{"absent keeps stored date", nil, timePtr(earlier), timePtr(earlier)},
		{"true stamps today", boolPtr(true), nil, timePtr(today)},
		{"true refreshes already-paid", boolPtr(true), timePtr(earlier), timePtr(today)},
		{"false clears", boolPtr(false), timePtr(earlier), nil},
		{"false on unpaid stays nil", boolPtr(false), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePaidDate(tt.paid, tt.prev, now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestDerivePaidDate_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2026, 8, 29, 23, 30, 0, 0, loc)

	got := DerivePaidDate(boolPtr(true), nil, now)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, loc), *got)
}
