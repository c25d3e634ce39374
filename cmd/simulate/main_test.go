package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{
			name:    "bare array",
			input:   `[{"lat":1,"lng":2,"time":"2024-03-01 10:00:00"}]`,
			wantLen: 1,
		},
		{
			name:    "points object",
			input:   `{"points":[{"lat":1,"lng":2,"time":"2024-03-01 10:00:00"},{"lat":1,"lng":2,"time":"2024-03-01 10:00:01"}]}`,
			wantLen: 2,
		},
		{
			name:    "saved route document",
			input:   `{"name":"walk","markers":[{"lat":1,"lng":2,"time":"2024-03-01 10:00:00"}]}`,
			wantLen: 1,
		},
		{
			name:    "not json",
			input:   `lat,lng`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseRecords([]byte(tt.input))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Len(t, recs, tt.wantLen)
		})
	}
}

func TestLoadRecords_FlagConflicts(t *testing.T) {
	ctx := context.Background()

	_, err := loadRecords(ctx, &simulateFlags{})
	assert.ErrorContains(t, err, "required")

	_, err = loadRecords(ctx, &simulateFlags{points: "a.json", route: "walk"})
	assert.ErrorContains(t, err, "not both")

	_, err = loadRecords(ctx, &simulateFlags{route: "walk"})
	assert.ErrorContains(t, err, "-bucket")
}

func TestRun_WritesFrontierGeoJSON(t *testing.T) {
	// Each point i > 0 yields one provisional subroute i-1 -> i; everything before i-1 is committed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Coordinates struct {
				Idx int `json:"Idx"`
			} `json:"coordinates"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		idx := body.Coordinates.Idx
		subroutes := []map[string]any{}
		if idx > 0 {
			subroutes = append(subroutes, map[string]any{
				"start_idx": idx - 1,
				"end_idx":   idx,
				"coordinates": map[string]any{
					"coordinates": []map[string]string{
						{"Lat": "1", "Lon": "2"},
						{"Lat": "1.1", "Lon": "2.1"},
					},
				},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"active_states":         []any{},
			"committed_idx":         idx - 1,
			"provisional_subroutes": subroutes,
		})
	}))
	defer server.Close()

	dir := t.TempDir()
	pointsPath := filepath.Join(dir, "walk.json")
	outPath := filepath.Join(dir, "walk.geojson")
	plotPath := filepath.Join(dir, "walk.png")
	require.NoError(t, os.WriteFile(pointsPath, []byte(`[
		{"lat":1,"lng":2,"time":"2024-03-01 10:00:00"},
		{"lat":1.1,"lng":2.1,"time":"2024-03-01 10:00:05"}
	]`), 0o600))

	err := run(context.Background(), &simulateFlags{
		points:   pointsPath,
		matcher:  server.URL,
		path:     "/map_match_dynamic",
		out:      outPath,
		plot:     plotPath,
		logLevel: "error",
	})
	require.NoError(t, err)

	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	var kinds []string
	for _, f := range fc.Features {
		kinds = append(kinds, f.Properties.MustString("kind"))
	}
	assert.Equal(t, []string{"provisional", "trajectory_point", "trajectory_point"}, kinds)
}

func TestRun_RejectsInvalidPoints(t *testing.T) {
	pointsPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(pointsPath, []byte(`[{"lat":100,"lng":0,"time":"2024-03-01 10:00:00"}]`), 0o600))

	err := run(context.Background(), &simulateFlags{points: pointsPath, out: "-", logLevel: "error"})

	assert.ErrorContains(t, err, "invalid point list")
}

func TestTimedClient_Summary(t *testing.T) {
	c := newTimedClient(nil)
	c.latencies = []float64{40, 10, 30, 20, 100}
	c.failures = 1

	s := c.summary()

	assert.Equal(t, 5, s.Requests)
	assert.Equal(t, 1, s.Failures)
	assert.InDelta(t, 40.0, s.MeanMs, 1e-9)
	assert.InDelta(t, 30.0, s.P50Ms, 1e-9)
	assert.InDelta(t, 100.0, s.P95Ms, 1e-9)
	assert.InDelta(t, 100.0, s.MaxMs, 1e-9)
	assert.Equal(t, []float64{40, 10, 30, 20, 100}, c.latencies, "summary sorts a copy")
}

func TestTimedClient_Empty(t *testing.T) {
	assert.Equal(t, latencySummary{}, newTimedClient(nil).summary())
}
