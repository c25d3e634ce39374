package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trajmatch/config"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/trajectory"
	logs "trajmatch/internal/infra/log"
	"trajmatch/internal/infra/matcher"
	"trajmatch/internal/infra/persistence/blob"
	"trajmatch/internal/infra/pubsub"
	"trajmatch/internal/usecase/impl"

	"github.com/pkg/errors"
)

// simulate runs one headless map matching pass over a point list and prints
// the resulting frontier as GeoJSON.
//
//	simulate -points walk.json -matcher http://localhost:8080 -out walk.geojson
//	simulate -bucket file:///var/routes -route walk -plot walk.png

type simulateFlags struct {
	points   string
	bucket   string
	route    string
	matcher  string
	path     string
	timeout  time.Duration
	interval time.Duration
	out      string
	plot     string
	logLevel string
}

func main() {
	cmd := flag.NewFlagSet("simulate", flag.ExitOnError)

	var flags simulateFlags
	cmd.StringVar(&flags.points, "points", "", "JSON file with the point list (array, or object with points/markers)")
	cmd.StringVar(&flags.bucket, "bucket", "", "Bucket URL holding saved routes, used with -route")
	cmd.StringVar(&flags.route, "route", "", "Saved route name to load from -bucket")
	cmd.StringVar(&flags.matcher, "matcher", "http://localhost:8080", "Map matching server base URL")
	cmd.StringVar(&flags.path, "path", "/map_match_dynamic", "Map matching endpoint path")
	cmd.DurationVar(&flags.timeout, "timeout", 30*time.Second, "Per request timeout")
	cmd.DurationVar(&flags.interval, "interval", 0, "Delay between requests")
	cmd.StringVar(&flags.out, "out", "-", "Output GeoJSON path, - for stdout")
	cmd.StringVar(&flags.plot, "plot", "", "Optional PNG path for a plot of the matched path")
	cmd.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	_ = cmd.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *simulateFlags) error {
	logger, err := logs.NewWithWriter(os.Stderr, flags.logLevel, true)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	recs, err := loadRecords(ctx, flags)
	if err != nil {
		return err
	}

	store := trajectory.NewStore()
	if err := store.ReplaceAll(recs); err != nil {
		return errors.Wrap(err, "invalid point list")
	}

	cfg := &config.Config{
		Matcher: &config.MatcherConfig{
			BaseURL:         flags.matcher,
			Path:            flags.path,
			Timeout:         flags.timeout,
			RequestInterval: flags.interval,
		},
	}
	client := newTimedClient(matcher.NewMatchingClient(cfg, logger))
	publisher := pubsub.NewNoopPublisher(logger)
	defer publisher.Close()

	simulation := impl.NewSimulationService(ctx, cfg, logger, store, client, publisher)
	if err := simulation.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start simulation")
	}

	if err := simulation.Wait(ctx); err != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = simulation.Stop(stopCtx)

		return errors.Wrap(err, "simulation interrupted")
	}

	latency := client.summary()
	logger.Info("Match requests",
		slog.Int("requests", latency.Requests),
		slog.Int("failures", latency.Failures),
		slog.Float64("mean_ms", latency.MeanMs),
		slog.Float64("p50_ms", latency.P50Ms),
		slog.Float64("p95_ms", latency.P95Ms),
		slog.Float64("max_ms", latency.MaxMs),
	)

	status := simulation.Status()
	if status.LastError != "" {
		return errors.Errorf("simulation failed at index %d: %s", status.AtIdx, status.LastError)
	}
	logger.Info("Simulation finished",
		slog.Int("points", status.TrajectoryLength),
		slog.Int("gaps", status.GapCount),
	)

	state := simulation.Snapshot()
	points := store.Points()
	if flags.plot != "" {
		if err := plotFrontier(state, points, flags.plot); err != nil {
			return err
		}
	}

	return writeOutput(flags.out, state.FeatureCollection(points))
}

func loadRecords(ctx context.Context, flags *simulateFlags) ([]entity.PointRecord, error) {
	switch {
	case flags.points != "" && flags.route != "":
		return nil, errors.New("use either -points or -route, not both")
	case flags.points != "":
		data, err := os.ReadFile(flags.points)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read point list")
		}

		return parseRecords(data)
	case flags.route != "":
		if flags.bucket == "" {
			return nil, errors.New("-route needs -bucket")
		}
		repo, err := blob.Open(ctx, flags.bucket, "")
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		route, err := repo.FindRouteByName(ctx, flags.route)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load route %q", flags.route)
		}

		return entity.Records(route.Points), nil
	default:
		return nil, errors.New("one of -points or -route is required")
	}
}

// parseRecords accepts a bare array or the object shapes the API and the
// route stores write.
func parseRecords(data []byte) ([]entity.PointRecord, error) {
	var recs []entity.PointRecord
	if err := json.Unmarshal(data, &recs); err == nil {
		return recs, nil
	}

	var wrapped struct {
		Points  []entity.PointRecord `json:"points"`
		Markers []entity.PointRecord `json:"markers"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, errors.Wrap(err, "failed to decode point list")
	}
	if wrapped.Points != nil {
		return wrapped.Points, nil
	}

	return wrapped.Markers, nil
}

func writeOutput(path string, v any) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "failed to write GeoJSON")
}
