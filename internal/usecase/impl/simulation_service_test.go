package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"trajmatch/config"
	deliverycontext "trajmatch/internal/delivery/context"
	"trajmatch/internal/domain/constants"
	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/frontier"
	"trajmatch/internal/domain/service"
	"trajmatch/internal/domain/trajectory"
	mockSvc "trajmatch/internal/mocks/service"
	"trajmatch/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// eventRecorder collects published simulation events.
type eventRecorder struct {
	mu     sync.Mutex
	events []*service.SimulationEvent
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}

	return out
}

func (r *eventRecorder) ofType(eventType string) []*service.SimulationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*service.SimulationEvent
	for _, ev := range r.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}

	return out
}

func newRecordingPublisher(t *testing.T) (*mockSvc.MockEventPublisher, *eventRecorder) {
	rec := &eventRecorder{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishSimulationEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.SimulationEvent) {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			rec.events = append(rec.events, event)
		}).
		Return(nil).
		Maybe()

	return publisher, rec
}

func newTestStore(t *testing.T, n int) *trajectory.Store {
	t.Helper()
	store := trajectory.NewStore()
	for i := range n {
		_, err := store.Append(entity.PointRecord{
			Lat:  51.5 + float64(i)*0.001,
			Lng:  -0.09,
			Time: fmt.Sprintf("2024-03-01 10:00:%02d", i),
		})
		require.NoError(t, err)
	}

	return store
}

func createTestSimulationService(t *testing.T, points int) (
	usecase.SimulationUsecase,
	*trajectory.Store,
	*mockSvc.MockMatchingClient,
	*eventRecorder,
) {
	store := newTestStore(t, points)
	client := mockSvc.NewMockMatchingClient(t)
	publisher, rec := newRecordingPublisher(t)

	svc := NewSimulationService(context.Background(), &config.Config{}, newDiscardLogger(), store, client, publisher)

	return svc, store, client, rec
}

func line(start, end int) entity.Subroute {
	return entity.Subroute{StartIdx: start, EndIdx: end, Coords: orb.LineString{{-0.09, 51.5}, {-0.09, 51.501}}}
}

// stepMatcher answers request i with a provisional {i-1, i} and commits up to i-1.
func stepMatcher(_ context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
	if req.Index == 0 {
		return &entity.MatchResponse{ActiveStates: []byte(`[]`)}, nil
	}

	return &entity.MatchResponse{
		ActiveStates:         []byte(fmt.Sprintf(`[{"idx":%d}]`, req.Index)),
		CommittedIdx:         req.Index - 1,
		ProvisionalSubroutes: []entity.Subroute{line(req.Index-1, req.Index)},
	}, nil
}

func waitLoop(t *testing.T, svc usecase.SimulationUsecase) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))
}

func TestSimulationService_Start_InsufficientData(t *testing.T) {
	svc, _, _, _ := createTestSimulationService(t, 1)

	err := svc.Start(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrInsufficientData)
	status := svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, frontier.NotStarted, status.AtIdx)
}

func TestSimulationService_RunsToCompletion(t *testing.T) {
	svc, _, client, rec := createTestSimulationService(t, 4)
	var (
		mu       sync.Mutex
		requests []service.MatchRequest
	)
	client.EXPECT().
		RequestMatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			mu.Lock()
			requests = append(requests, req)
			mu.Unlock()

			return stepMatcher(ctx, req)
		}).
		Times(4)

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	status := svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, 4, status.AtIdx, "completion keeps the frontier")
	assert.Empty(t, status.LastError)

	snap := svc.Snapshot()
	assert.Equal(t, []int{0, 1}, []int{snap.Committed[0].StartIdx, snap.Committed[0].EndIdx})
	assert.Len(t, snap.Committed, 2)
	assert.Len(t, snap.Provisional, 1)
	assert.True(t, snap.Contiguous())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 4)
	for i, req := range requests {
		assert.Equal(t, i, req.Index, "requests are strictly sequential")
	}
	assert.Empty(t, requests[0].ActiveStates)
	assert.JSONEq(t, `[{"idx":1}]`, string(requests[2].ActiveStates))
	require.Len(t, requests[3].AlternativeParents, 2)
	assert.Equal(t, 1, requests[3].AlternativeParents[0].Idx)
	assert.Equal(t, 2, requests[3].AlternativeParents[1].Idx)

	assert.Len(t, rec.ofType(constants.EventFrontierUpdated), 4)
	completed := rec.ofType(constants.EventSimulationCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, status.RunID, completed[0].RunID)
	assert.NotEmpty(t, completed[0].EventID)
}

func TestSimulationService_RestartAfterCompletionStartsFresh(t *testing.T) {
	svc, _, client, _ := createTestSimulationService(t, 2)
	client.EXPECT().RequestMatch(mock.Anything, mock.Anything).RunAndReturn(stepMatcher).Times(4)

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)
	firstRun := svc.Status().RunID

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	status := svc.Status()
	assert.NotEqual(t, firstRun, status.RunID)
	assert.Equal(t, 2, status.AtIdx)
	assert.Len(t, svc.Snapshot().History, 2)
}

func TestSimulationService_MatchFailureStopsRun(t *testing.T) {
	svc, _, client, rec := createTestSimulationService(t, 3)
	client.EXPECT().
		RequestMatch(mock.Anything, mock.MatchedBy(func(req service.MatchRequest) bool { return req.Index == 0 })).
		RunAndReturn(stepMatcher).
		Once()
	client.EXPECT().
		RequestMatch(mock.Anything, mock.MatchedBy(func(req service.MatchRequest) bool { return req.Index == 1 })).
		Return(nil, domainerrors.NewMatchRequestError(1, errors.New("connection refused"))).
		Once()

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	status := svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, frontier.NotStarted, status.AtIdx)
	assert.Contains(t, status.LastError, "connection refused")
	assert.Empty(t, svc.Snapshot().History)

	failed := rec.ofType(constants.EventSimulationFailed)
	require.Len(t, failed, 1, "the failure is surfaced once")
	assert.Equal(t, 1, failed[0].RequestIdx)
}

func TestSimulationService_StopWhileInFlight(t *testing.T) {
	svc, _, client, rec := createTestSimulationService(t, 3)
	inFlight := make(chan struct{})
	client.EXPECT().
		RequestMatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			if req.Index == 0 {
				return stepMatcher(ctx, req)
			}
			close(inFlight)
			<-ctx.Done()

			return nil, domainerrors.NewMatchRequestError(req.Index, ctx.Err())
		}).
		Times(2)

	require.NoError(t, svc.Start(context.Background()))
	<-inFlight

	require.NoError(t, svc.Stop(context.Background()))

	status := svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, frontier.NotStarted, status.AtIdx)
	assert.Empty(t, status.LastError, "a cancelled request is not a failure")
	snap := svc.Snapshot()
	assert.Empty(t, snap.Committed)
	assert.Empty(t, snap.Provisional)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.ActiveStates)
	assert.Empty(t, rec.ofType(constants.EventSimulationFailed))
	assert.Len(t, rec.ofType(constants.EventSimulationStopped), 1)
}

func TestSimulationService_PauseLetsInFlightResponseApply(t *testing.T) {
	svc, _, client, _ := createTestSimulationService(t, 3)
	inFlight := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().
		RequestMatch(mock.Anything, mock.MatchedBy(func(req service.MatchRequest) bool { return req.Index == 0 })).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			close(inFlight)
			<-release

			return stepMatcher(ctx, req)
		}).
		Once()

	require.NoError(t, svc.Start(context.Background()))
	<-inFlight
	require.NoError(t, svc.Pause(context.Background()))
	close(release)
	waitLoop(t, svc)

	status := svc.Status()
	assert.Equal(t, entity.SimulationPaused, status.State)
	assert.Equal(t, 1, status.AtIdx, "the in-flight response was applied")

	client.EXPECT().
		RequestMatch(mock.Anything, mock.MatchedBy(func(req service.MatchRequest) bool { return req.Index > 0 })).
		RunAndReturn(stepMatcher).
		Times(2)

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	status = svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, 3, status.AtIdx)
}

func TestSimulationService_StartWhileRunningIsNoop(t *testing.T) {
	svc, _, client, _ := createTestSimulationService(t, 2)
	inFlight := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().
		RequestMatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			if req.Index == 0 {
				close(inFlight)
				<-release
			}

			return stepMatcher(ctx, req)
		}).
		Times(2)

	require.NoError(t, svc.Start(context.Background()))
	<-inFlight
	runID := svc.Status().RunID
	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, runID, svc.Status().RunID)
	close(release)
	waitLoop(t, svc)

	assert.Equal(t, 2, svc.Status().AtIdx)
}

func TestSimulationService_Toggle(t *testing.T) {
	svc, _, client, _ := createTestSimulationService(t, 2)
	inFlight := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().
		RequestMatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			if req.Index == 0 {
				close(inFlight)
				<-release
			}

			return stepMatcher(ctx, req)
		}).
		Times(2)

	state, err := svc.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SimulationRunning, state)
	<-inFlight

	state, err = svc.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SimulationPaused, state)
	close(release)
	waitLoop(t, svc)

	state, err = svc.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SimulationRunning, state)
	waitLoop(t, svc)
	assert.Equal(t, entity.SimulationStopped, svc.Status().State)
}

func TestSimulationService_GapIsReportedAndRunContinues(t *testing.T) {
	svc, _, client, rec := createTestSimulationService(t, 3)
	client.EXPECT().
		RequestMatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
			if req.Index == 1 {
				return &entity.MatchResponse{ProvisionalSubroutes: []entity.Subroute{line(0, 1), line(7, 9)}}, nil
			}

			return stepMatcher(ctx, req)
		}).
		Times(3)

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	status := svc.Status()
	assert.Equal(t, 3, status.AtIdx)
	assert.Equal(t, 1, status.GapCount)

	gaps := rec.ofType(constants.EventConnectionGap)
	require.Len(t, gaps, 1)
	require.NotNil(t, gaps[0].GapStartIdx)
	assert.Equal(t, 7, *gaps[0].GapStartIdx)
	assert.Equal(t, 9, *gaps[0].GapEndIdx)
	assert.Contains(t, rec.types(), constants.EventSimulationCompleted)
}

func TestSimulationService_PublishFailureDoesNotAffectRun(t *testing.T) {
	store := newTestStore(t, 2)
	client := mockSvc.NewMockMatchingClient(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSimulationEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	client.EXPECT().RequestMatch(mock.Anything, mock.Anything).RunAndReturn(stepMatcher).Times(2)

	svc := NewSimulationService(context.Background(), &config.Config{}, newDiscardLogger(), store, client, publisher)

	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	assert.Equal(t, 2, svc.Status().AtIdx)
	assert.Empty(t, svc.Status().LastError)
}

func TestSimulationService_StopTimeoutStillClearsFrontier(t *testing.T) {
	store := newTestStore(t, 3)
	client := mockSvc.NewMockMatchingClient(t)
	client.EXPECT().RequestMatch(mock.Anything, mock.Anything).RunAndReturn(stepMatcher).Once()

	// Hold the loop inside the first publish so Stop times out before it exits.
	publishing := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishSimulationEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.SimulationEvent) {
			if event.Type == constants.EventFrontierUpdated {
				once.Do(func() {
					close(publishing)
					<-release
				})
			}
		}).
		Return(nil).
		Maybe()
	cfg := &config.Config{Matcher: &config.MatcherConfig{RequestInterval: time.Hour}}

	svc := NewSimulationService(context.Background(), cfg, newDiscardLogger(), store, client, publisher)
	require.NoError(t, svc.Start(context.Background()))
	<-publishing

	stopCtx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, svc.Stop(stopCtx), context.Canceled)
	assert.Equal(t, 1, svc.Status().AtIdx, "the applied response is still visible")

	close(release)
	waitLoop(t, svc)

	status := svc.Status()
	assert.Equal(t, entity.SimulationStopped, status.State)
	assert.Equal(t, frontier.NotStarted, status.AtIdx)
	assert.Empty(t, svc.Snapshot().History)
}

func TestSimulationService_RequestInterval(t *testing.T) {
	store := newTestStore(t, 3)
	client := mockSvc.NewMockMatchingClient(t)
	publisher, _ := newRecordingPublisher(t)
	client.EXPECT().RequestMatch(mock.Anything, mock.Anything).RunAndReturn(stepMatcher).Times(3)
	cfg := &config.Config{Matcher: &config.MatcherConfig{RequestInterval: 20 * time.Millisecond}}

	svc := NewSimulationService(context.Background(), cfg, newDiscardLogger(), store, client, publisher)

	start := time.Now()
	require.NoError(t, svc.Start(context.Background()))
	waitLoop(t, svc)

	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	assert.Equal(t, 3, svc.Status().AtIdx)
}

func TestSimulationService_EventsCarryStartingRequestID(t *testing.T) {
	svc, _, client, rec := createTestSimulationService(t, 3)
	client.EXPECT().RequestMatch(mock.Anything, mock.Anything).RunAndReturn(stepMatcher)

	require.NoError(t, svc.Start(deliverycontext.WithRequestID(context.Background(), "req-start")))
	waitLoop(t, svc)

	completed := rec.ofType(constants.EventSimulationCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "req-start", completed[0].RequestID)
	for _, ev := range rec.ofType(constants.EventFrontierUpdated) {
		assert.Equal(t, "req-start", ev.RequestID)
		assert.NotEmpty(t, ev.EventID)
		assert.False(t, ev.OccurredAt.IsZero())
	}
}
