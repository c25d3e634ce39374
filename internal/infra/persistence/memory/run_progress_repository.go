package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
)

type trackedRun struct {
	progress entity.RunProgress
	seen     map[string]struct{}
}

type runProgressRepository struct {
	mu      sync.Mutex
	maxRuns int
	runs    map[string]*trackedRun
}

// NewRunProgressRepository keeps at most maxRuns runs; the least recently
// updated one is forgotten first, together with its seen event ids.
func NewRunProgressRepository(maxRuns int) repository.RunProgressRepository {
	return &runProgressRepository{
		maxRuns: maxRuns,
		runs:    make(map[string]*trackedRun),
	}
}

func (repo *runProgressRepository) MarkEventSeen(_ context.Context, runID, eventID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	run := repo.track(runID)
	if _, ok := run.seen[eventID]; ok {
		return false, nil
	}
	run.seen[eventID] = struct{}{}

	return true, nil
}

func (repo *runProgressRepository) SaveRun(_ context.Context, progress *entity.RunProgress) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	run := repo.track(progress.RunID)
	run.progress = cloneProgress(progress)
	repo.evict()

	return nil
}

func (repo *runProgressRepository) FindRun(_ context.Context, runID string) (*entity.RunProgress, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	run, ok := repo.runs[runID]
	if !ok || run.progress.RunID == "" {
		return nil, repository.ErrRunNotFound
	}
	progress := cloneProgress(&run.progress)

	return &progress, nil
}

func (repo *runProgressRepository) ListRuns(_ context.Context, limit int) ([]*entity.RunProgress, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	runs := make([]*entity.RunProgress, 0, len(repo.runs))
	for _, run := range repo.runs {
		if run.progress.RunID == "" {
			continue
		}
		progress := cloneProgress(&run.progress)
		runs = append(runs, &progress)
	}
	slices.SortFunc(runs, func(a, b *entity.RunProgress) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.RunID, b.RunID)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}

	return runs, nil
}

// track returns the entry for runID, creating an empty one. Callers hold mu.
func (repo *runProgressRepository) track(runID string) *trackedRun {
	run, ok := repo.runs[runID]
	if !ok {
		run = &trackedRun{seen: make(map[string]struct{})}
		repo.runs[runID] = run
	}

	return run
}

// evict drops the least recently updated runs beyond maxRuns. Callers hold mu.
func (repo *runProgressRepository) evict() {
	for repo.maxRuns > 0 && len(repo.runs) > repo.maxRuns {
		var (
			oldestID string
			oldest   *trackedRun
		)
		for id, run := range repo.runs {
			if oldest == nil || run.progress.UpdatedAt.Before(oldest.progress.UpdatedAt) {
				oldestID, oldest = id, run
			}
		}
		delete(repo.runs, oldestID)
	}
}

func cloneProgress(progress *entity.RunProgress) entity.RunProgress {
	cloned := *progress
	if progress.FinishedAt != nil {
		finished := *progress.FinishedAt
		cloned.FinishedAt = &finished
	}

	return cloned
}
