package trajectory

import (
	"sync"
	"testing"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func rec(lat, lng float64, ts string) entity.PointRecord {
	return entity.PointRecord{Lat: lat, Lng: lng, Time: ts}
}

func TestStore_Append(t *testing.T) {
	tests := []struct {
		name    string
		input   entity.PointRecord
		wantErr error
	}{
		{
			name:  "valid point",
			input: rec(51.5, -0.09, "2024-03-01 10:00:00"),
		},
		{
			name:  "boundary coordinates",
			input: rec(-90, 180, "2024-03-01 10:00:00"),
		},
		{
			name:    "latitude out of range",
			input:   rec(90.0001, 0, "2024-03-01 10:00:00"),
			wantErr: domainerrors.ErrInvalidPoint,
		},
		{
			name:    "longitude out of range",
			input:   rec(0, -180.5, "2024-03-01 10:00:00"),
			wantErr: domainerrors.ErrInvalidPoint,
		},
		{
			name:    "impossible calendar date",
			input:   rec(0, 0, "2024-02-30 10:00:00"),
			wantErr: domainerrors.ErrInvalidPoint,
		},
		{
			name:    "wrong timestamp layout",
			input:   rec(0, 0, "2024-03-01T10:00:00Z"),
			wantErr: domainerrors.ErrInvalidPoint,
		},
		{
			name:    "missing timestamp",
			input:   rec(0, 0, ""),
			wantErr: domainerrors.ErrInvalidPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()

			_, err := s.Append(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, s.Len(), "rejected write must leave the store unchanged")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_AppendRoundsCoordinates(t *testing.T) {
	s := NewStore()

	p, err := s.Append(entity.PointRecord{Lat: 51.50000049, Lng: -0.0912345678, Time: "2024-03-01 10:00:00", Altitude: ptr(12.5)})

	require.NoError(t, err)
	assert.Equal(t, 51.5, p.Latitude)
	assert.Equal(t, -0.091235, p.Longitude)
	assert.Equal(t, "2024-03-01 10:00:00", p.FormattedTimestamp())
	require.NotNil(t, p.Altitude)
	assert.Equal(t, 12.5, *p.Altitude)
}

func TestStore_InvalidPointDetails(t *testing.T) {
	s := NewStore()

	_, err := s.Append(rec(0, 0, "2024-02-30 10:00:00"))

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_POINT", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "time must be a valid")
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	_, err := s.Append(rec(1, 1, "2024-03-01 10:00:00"))
	require.NoError(t, err)
	_, err = s.Append(rec(2, 2, "2024-03-01 10:00:05"))
	require.NoError(t, err)

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		p, err := s.Update(1, PointPatch{Lat: ptr(3.0)})

		require.NoError(t, err)
		assert.Equal(t, 3.0, p.Latitude)
		assert.Equal(t, 2.0, p.Longitude)
		assert.Equal(t, "2024-03-01 10:00:05", p.FormattedTimestamp())
	})

	t.Run("invalid patch is rejected", func(t *testing.T) {
		_, err := s.Update(0, PointPatch{Time: ptr("2023-13-01 00:00:00")})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPoint)
		got, err := s.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01 10:00:00", got.FormattedTimestamp())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := s.Update(2, PointPatch{Lat: ptr(0.0)})

		assert.ErrorIs(t, err, domainerrors.ErrPointNotFound)
	})
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	for _, ts := range []string{"2024-03-01 10:00:00", "2024-03-01 10:00:01", "2024-03-01 10:00:02"} {
		_, err := s.Append(rec(0, 0, ts))
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove(1))

	assert.Equal(t, 2, s.Len())
	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 10:00:02", got.FormattedTimestamp())

	assert.ErrorIs(t, s.Remove(-1), domainerrors.ErrPointNotFound)
	assert.ErrorIs(t, s.Remove(2), domainerrors.ErrPointNotFound)
}

func TestStore_ReplaceAllIsAtomic(t *testing.T) {
	s := NewStore()
	_, err := s.Append(rec(1, 1, "2024-03-01 10:00:00"))
	require.NoError(t, err)

	err = s.ReplaceAll([]entity.PointRecord{
		rec(2, 2, "2024-03-01 10:00:00"),
		rec(100, 2, "2024-03-01 10:00:01"),
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidPoint)
	assert.Contains(t, err.Error(), "point 1")
	require.Equal(t, 1, s.Len())
	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Latitude)

	require.NoError(t, s.ReplaceAll([]entity.PointRecord{
		rec(2, 2, "2024-03-01 10:00:00"),
		rec(3, 3, "2024-03-01 10:00:01"),
	}))
	assert.Equal(t, 2, s.Len())
}

func TestStore_PointsReturnsCopy(t *testing.T) {
	s := NewStore()
	_, err := s.Append(rec(1, 1, "2024-03-01 10:00:00"))
	require.NoError(t, err)

	pts := s.Points()
	pts[0].Latitude = 42

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Latitude)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Len(t, pts, 1)
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Append(rec(1, 1, "2024-03-01 10:00:00"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
}
