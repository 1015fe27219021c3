package conflictcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		session domain.Session
		want    *NormalizedSession
	}{
		{
			name:    "plain date",
			session: domain.Session{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00", EndTime: "12:00"},
			want:    &NormalizedSession{Venue: "Hall A", DateKey: "2025-06-01", StartMinutes: 600, EndMinutes: 720},
		},
		{
			name:    "iso timestamp keeps calendar day as given",
			session: domain.Session{Venue: "Hall A", SessionDate: "2025-06-01T18:30:00Z", StartTime: "09:15", EndTime: "23:45"},
			want:    &NormalizedSession{Venue: "Hall A", DateKey: "2025-06-01", StartMinutes: 555, EndMinutes: 1425},
		},
		{
			name:    "iso timestamp with offset keeps calendar day as given",
			session: domain.Session{Venue: "Lawn", SessionDate: "2025-12-31T23:00:00+05:30", StartTime: "00:00", EndTime: "01:00"},
			want:    &NormalizedSession{Venue: "Lawn", DateKey: "2025-12-31", StartMinutes: 0, EndMinutes: 60},
		},
		{
			name:    "missing venue",
			session: domain.Session{SessionDate: "2025-06-01", StartTime: "10:00", EndTime: "12:00"},
			want:    nil,
		},
		{
			name:    "missing date",
			session: domain.Session{Venue: "Hall A", StartTime: "10:00", EndTime: "12:00"},
			want:    nil,
		},
		{
			name:    "missing start time",
			session: domain.Session{Venue: "Hall A", SessionDate: "2025-06-01", EndTime: "12:00"},
			want:    nil,
		},
		{
			name:    "missing end time",
			session: domain.Session{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00"},
			want:    nil,
		},
		{
			name:    "unparseable date",
			session: domain.Session{Venue: "Hall A", SessionDate: "01/06/2025", StartTime: "10:00", EndTime: "12:00"},
			want:    nil,
		},
		{
			name:    "unparseable time",
			session: domain.Session{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "25:99", EndTime: "12:00"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.session)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Venue, got.Venue)
			assert.Equal(t, tt.want.DateKey, got.DateKey)
			assert.Equal(t, tt.want.StartMinutes, got.StartMinutes)
			assert.Equal(t, tt.want.EndMinutes, got.EndMinutes)
			assert.Equal(t, tt.session, got.Source)
		})
	}
}

func TestNormalizeAllDropsIncomplete(t *testing.T) {
	sessions := []domain.Session{
		{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00", EndTime: "12:00"},
		{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00"}, // no end time
		{Venue: "Hall B", SessionDate: "garbage", StartTime: "10:00", EndTime: "12:00"},
	}

	normalized := NormalizeAll(sessions)

	require.Len(t, normalized, 1)
	assert.Equal(t, "Hall A", normalized[0].Venue)
}
