package main

import (
	"context"
	"slices"
	"sync"
	"time"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/service"

	"gonum.org/v1/gonum/stat"
)

// timedClient records the latency of every match request it forwards.
type timedClient struct {
	next service.MatchingClient

	mu        sync.Mutex
	latencies []float64 // milliseconds
	failures  int
}

func newTimedClient(next service.MatchingClient) *timedClient {
	return &timedClient{next: next}
}

func (c *timedClient) RequestMatch(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
	start := time.Now()
	resp, err := c.next.RequestMatch(ctx, req)
	elapsed := float64(time.Since(start)) / float64(time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.latencies = append(c.latencies, elapsed)
	if err != nil {
		c.failures++
	}

	return resp, err
}

type latencySummary struct {
	Requests int
	Failures int
	MeanMs   float64
	P50Ms    float64
	P95Ms    float64
	MaxMs    float64
}

func (c *timedClient) summary() latencySummary {
	c.mu.Lock()
	xs := slices.Clone(c.latencies)
	failures := c.failures
	c.mu.Unlock()

	s := latencySummary{Requests: len(xs), Failures: failures}
	if len(xs) == 0 {
		return s
	}
	slices.Sort(xs)
	s.MeanMs = stat.Mean(xs, nil)
	s.P50Ms = stat.Quantile(0.5, stat.Empirical, xs, nil)
	s.P95Ms = stat.Quantile(0.95, stat.Empirical, xs, nil)
	s.MaxMs = xs[len(xs)-1]

	return s
}
