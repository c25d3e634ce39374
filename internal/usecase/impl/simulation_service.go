package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"trajmatch/config"
	deliverycontext "trajmatch/internal/delivery/context"
	"trajmatch/internal/domain/constants"
	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/frontier"
	"trajmatch/internal/domain/lifecycle"
	"trajmatch/internal/domain/service"
	"trajmatch/internal/domain/trajectory"
	"trajmatch/internal/errors"
	"trajmatch/internal/usecase"

	"github.com/google/uuid"
)

const minSimulationPoints = 2

type simulationService struct {
	// cmdMu serialises Start, Pause and Stop so a Start cannot slip into a Stop's wait.
	cmdMu sync.Mutex
	// mu guards everything below, including the engine.
	mu sync.Mutex

	baseCtx   context.Context
	logger    *slog.Logger
	store     *trajectory.Store
	client    service.MatchingClient
	publisher service.EventPublisher
	interval  time.Duration

	state  entity.SimulationState
	engine *frontier.Engine
	runID  string
	// requestID is the API request that last started or resumed the run.
	requestID string
	cancel    context.CancelFunc
	done      chan struct{}
	lastErr   error
	gaps      int
}

// NewSimulationService creates the simulation driver. ctx outlives individual
// HTTP requests and parents every run loop.
func NewSimulationService(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	store *trajectory.Store,
	client service.MatchingClient,
	publisher service.EventPublisher,
) usecase.SimulationUsecase {
	var interval time.Duration
	if cfg.Matcher != nil {
		interval = cfg.Matcher.RequestInterval
	}

	return &simulationService{
		baseCtx:   ctx,
		logger:    logger,
		store:     store,
		client:    client,
		publisher: publisher,
		interval:  interval,
		state:     entity.SimulationStopped,
		engine:    frontier.NewEngine(logger),
	}
}

// Start moves the driver to Running and spawns the request loop when none is active.
func (s *simulationService) Start(ctx context.Context) error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == entity.SimulationRunning {
		return nil
	}

	if n := s.store.Len(); n < minSimulationPoints {
		return domainerrors.ErrInsufficientData.WithDetails(
			fmt.Sprintf("need at least %d trajectory points, have %d", minSimulationPoints, n))
	}

	if s.state == entity.SimulationStopped {
		s.engine.Reset()
		s.runID = uuid.NewString()
		s.lastErr = nil
		s.gaps = 0
	}
	s.engine.Begin()
	s.state = entity.SimulationRunning
	s.requestID = deliverycontext.GetRequestIDFromContext(ctx)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Simulation running",
		slog.String("run_id", s.runID),
		slog.Int("at_idx", s.engine.AtIdx()),
		slog.Int("trajectory_length", s.store.Len()),
	)

	if s.done == nil {
		loopCtx, cancel := context.WithCancel(s.baseCtx)
		s.cancel = cancel
		s.done = make(chan struct{})
		go s.run(loopCtx, s.runID, s.done)
	}

	return nil
}

// Pause only flips the state; the loop notices after the in-flight response is applied.
func (s *simulationService) Pause(ctx context.Context) error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.SimulationRunning {
		return nil
	}
	s.state = entity.SimulationPaused

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Simulation paused",
		slog.String("run_id", s.runID),
		slog.Int("at_idx", s.engine.AtIdx()),
	)

	return nil
}

// Stop cancels any in-flight request, waits for the loop to exit and clears the frontier.
func (s *simulationService) Stop(ctx context.Context) error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	wasActive := s.state != entity.SimulationStopped
	s.state = entity.SimulationStopped
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	s.engine.Reset()
	runID := s.runID
	length := s.store.Len()
	s.mu.Unlock()

	if !wasActive {
		return nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Simulation stopped", slog.String("run_id", runID))
	s.publish(&service.SimulationEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		RunID:            runID,
		Type:             constants.EventSimulationStopped,
		State:            entity.SimulationStopped.String(),
		RequestIdx:       frontier.NotStarted,
		AtIdx:            frontier.NotStarted,
		TrajectoryLength: length,
	})

	return nil
}

// Toggle mirrors the single start/continue/pause button of the editor.
func (s *simulationService) Toggle(ctx context.Context) (entity.SimulationState, error) {
	s.mu.Lock()
	running := s.state == entity.SimulationRunning
	s.mu.Unlock()

	if running {
		if err := s.Pause(ctx); err != nil {
			return entity.SimulationRunning, err
		}

		return entity.SimulationPaused, nil
	}

	if err := s.Start(ctx); err != nil {
		return s.Status().State, err
	}

	return entity.SimulationRunning, nil
}

func (s *simulationService) Status() usecase.SimulationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := usecase.SimulationStatus{
		RunID:            s.runID,
		State:            s.state,
		AtIdx:            s.engine.AtIdx(),
		TrajectoryLength: s.store.Len(),
		GapCount:         s.gaps,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}

	return status
}

func (s *simulationService) Snapshot() frontier.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Snapshot()
}

func (s *simulationService) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run issues one request at a time for as long as the driver stays Running.
func (s *simulationService) run(ctx context.Context, runID string, done chan struct{}) {
	defer close(done)

	for {
		req, events, ok := s.next(runID, done)
		s.publish(events...)
		if !ok {
			return
		}

		resp, err := s.client.RequestMatch(ctx, req)

		events, ok = s.apply(runID, done, req.Index, resp, err)
		s.publish(events...)
		if !ok {
			return
		}

		if s.interval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.interval):
			}
		}
	}
}

// next builds the request for the current index, or ends the loop when the
// run is no longer Running or the trajectory is exhausted.
func (s *simulationService) next(runID string, done chan struct{}) (service.MatchRequest, []*service.SimulationEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.SimulationRunning || s.runID != runID {
		// A Stop that gave up waiting leaves clearing the frontier to the loop.
		if s.state == entity.SimulationStopped && s.runID == runID && s.done == done {
			s.engine.Reset()
		}
		s.detach(done)

		return service.MatchRequest{}, nil, false
	}

	idx := s.engine.AtIdx()
	length := s.store.Len()
	if idx >= length {
		s.state = entity.SimulationStopped
		s.detach(done)
		s.logger.Info("Simulation completed",
			slog.String("run_id", runID),
			slog.Int("trajectory_length", length),
			slog.Int("gap_count", s.gaps),
		)

		return service.MatchRequest{}, []*service.SimulationEvent{s.event(constants.EventSimulationCompleted, idx-1)}, false
	}

	point, err := s.store.Get(idx)
	if err != nil {
		// The trajectory shrank under the run.
		return service.MatchRequest{}, s.fail(runID, done, idx, err), false
	}

	return service.MatchRequest{
		Index:              idx,
		Point:              point,
		ActiveStates:       slices.Clone(s.engine.ActiveStates()),
		AlternativeParents: s.engine.AlternativeParents(),
	}, nil, true
}

// apply reconciles one response. A Stop that raced the request leaves the
// state Stopped, in which case the frontier is cleared right after the update.
func (s *simulationService) apply(
	runID string,
	done chan struct{},
	idx int,
	resp *entity.MatchResponse,
	reqErr error,
) ([]*service.SimulationEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runID != runID {
		s.detach(done)

		return nil, false
	}

	if reqErr != nil {
		if s.state == entity.SimulationStopped {
			s.engine.Reset()
			s.detach(done)

			return nil, false
		}

		return s.fail(runID, done, idx, reqErr), false
	}

	out := s.engine.Apply(idx, resp)
	s.gaps += len(out.Gaps)

	events := make([]*service.SimulationEvent, 0, len(out.Gaps)+1)
	for _, gap := range out.Gaps {
		ev := s.event(constants.EventConnectionGap, idx)
		ev.GapStartIdx = &gap.StartIdx
		ev.GapEndIdx = &gap.EndIdx
		ev.Error = gap.Error()
		events = append(events, ev)
	}
	events = append(events, s.event(constants.EventFrontierUpdated, idx))

	s.logger.Debug("Frontier updated",
		slog.String("run_id", runID),
		slog.Int("request_idx", idx),
		slog.Int("promoted", out.Promoted),
		slog.Int("trimmed", out.Trimmed),
		slog.Int("appended", out.Appended),
		slog.Int("bridged", out.Bridged),
		slog.Int("gaps", len(out.Gaps)),
	)

	if s.state == entity.SimulationStopped {
		s.engine.Reset()
		s.detach(done)

		return nil, false
	}

	return events, true
}

// fail ends the run after a matcher error. Caller holds mu.
func (s *simulationService) fail(runID string, done chan struct{}, idx int, err error) []*service.SimulationEvent {
	if !errors.Is(err, domainerrors.ErrMatchRequestFailed) {
		err = domainerrors.NewMatchRequestError(idx, err)
	}

	s.state = entity.SimulationStopped
	s.lastErr = err
	s.engine.Reset()
	s.detach(done)

	s.logger.Error("Simulation failed",
		slog.String("run_id", runID),
		slog.Int("request_idx", idx),
		slog.Any("error", err),
	)

	ev := s.event(constants.EventSimulationFailed, idx)
	ev.Error = err.Error()

	return []*service.SimulationEvent{ev}
}

// detach forgets the loop identified by done. Caller holds mu.
func (s *simulationService) detach(done chan struct{}) {
	if s.done != done {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.done = nil
}

// event captures the current frontier counters. Caller holds mu.
func (s *simulationService) event(eventType string, requestIdx int) *service.SimulationEvent {
	committed, provisional := s.engine.Counts()

	return &service.SimulationEvent{
		RequestID:        s.requestID,
		RunID:            s.runID,
		Type:             eventType,
		State:            s.state.String(),
		RequestIdx:       requestIdx,
		AtIdx:            s.engine.AtIdx(),
		TrajectoryLength: s.store.Len(),
		CommittedCount:   committed,
		ProvisionalCount: provisional,
	}
}

// publish delivers events outside the driver lock. Failures are logged only.
func (s *simulationService) publish(events ...*service.SimulationEvent) {
	for _, ev := range events {
		ev.EventID = uuid.NewString()
		ev.OccurredAt = time.Now().UTC()

		ctx, cancel := context.WithTimeout(s.baseCtx, lifecycle.DefaultTimeout)
		if err := s.publisher.PublishSimulationEvent(ctx, ev); err != nil {
			s.logger.Warn("Failed to publish simulation event",
				slog.String("type", ev.Type),
				slog.String("run_id", ev.RunID),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}
