package blob

import (
	"context"
	"testing"
	"time"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestRepository(t *testing.T) (*RouteRepository, context.Context) {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	repo := New(bucket, "routes/")
	t.Cleanup(func() { _ = repo.Close() })

	return repo, context.Background()
}

func testRoute(name string) *entity.Route {
	alt := 35.5
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.Route{
		Name: name,
		Points: []entity.TrajectoryPoint{
			{Latitude: 51.5, Longitude: -0.09, Timestamp: ts, Altitude: &alt},
			{Latitude: 51.501, Longitude: -0.091, Timestamp: ts.Add(5 * time.Second)},
		},
		UpdatedAt: ts,
	}
}

func TestRouteRepository_RoundTrip(t *testing.T) {
	repo, ctx := newTestRepository(t)
	want := testRoute("thames walk")

	require.NoError(t, repo.SaveRoute(ctx, want))
	got, err := repo.FindRouteByName(ctx, "thames walk")

	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
	require.Len(t, got.Points, 2)
	for i := range want.Points {
		assert.Equal(t, want.Points[i].Latitude, got.Points[i].Latitude)
		assert.Equal(t, want.Points[i].Longitude, got.Points[i].Longitude)
		assert.True(t, want.Points[i].Timestamp.Equal(got.Points[i].Timestamp))
	}
	require.NotNil(t, got.Points[0].Altitude)
	assert.Equal(t, 35.5, *got.Points[0].Altitude)
	assert.Nil(t, got.Points[1].Altitude)
}

func TestRouteRepository_NotFound(t *testing.T) {
	repo, ctx := newTestRepository(t)

	_, err := repo.FindRouteByName(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)

	assert.ErrorIs(t, repo.DeleteRoute(ctx, "missing"), repository.ErrRouteNotFound)
}

func TestRouteRepository_ListSortedAndDelete(t *testing.T) {
	repo, ctx := newTestRepository(t)
	for _, name := range []string{"a-b", "a", "c"} {
		require.NoError(t, repo.SaveRoute(ctx, testRoute(name)))
	}

	names, err := repo.ListRouteNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a-b", "c"}, names)

	require.NoError(t, repo.DeleteRoute(ctx, "a"))
	names, err = repo.ListRouteNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-b", "c"}, names)
}

func TestRouteRepository_CorruptObject(t *testing.T) {
	repo, ctx := newTestRepository(t)
	require.NoError(t, repo.bucket.WriteAll(ctx, "broken.json", []byte(`{"markers":[{"lat":1,"lng":1,"time":"yesterday"}]}`), nil))

	_, err := repo.FindRouteByName(ctx, "broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrRouteNotFound)
}
