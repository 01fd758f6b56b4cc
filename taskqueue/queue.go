package taskqueue

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TaskID identifies one task within a Queue's dependency graph.
type TaskID int

// TaskFunc is the work a task performs. It receives the Run context, which
// is cancelled the moment any task in the queue returns an error.
type TaskFunc func(ctx context.Context) error

type taskEntry struct {
	fn   TaskFunc
	deps []TaskID
}

// Queue is a static dependency-graph task scheduler. It is single-use: once
// Run has been called, a Queue cannot be reused.
type Queue struct {
	maxParallel int

	mu      sync.Mutex
	tasks   map[TaskID]taskEntry
	order   []TaskID
	hasRun  bool
}

// New returns an empty Queue that runs at most maxParallel tasks
// concurrently. maxParallel <= 0 means unlimited.
func New(maxParallel int) *Queue {
	return &Queue{
		maxParallel: maxParallel,
		tasks:       make(map[TaskID]taskEntry),
	}
}

// AddTask registers a task and the IDs of the tasks it depends on. Order of
// registration does not matter; dependencies may be added before or after
// the tasks they name.
func (q *Queue) AddTask(id TaskID, fn TaskFunc, dependencies ...TaskID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.hasRun {
		return ErrAlreadyRun
	}
	if _, exists := q.tasks[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateTask, id)
	}
	deps := append([]TaskID(nil), dependencies...)
	q.tasks[id] = taskEntry{fn: fn, deps: deps}
	q.order = append(q.order, id)
	return nil
}

// TaskCount returns how many tasks have been registered.
func (q *Queue) TaskCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Run executes every registered task, respecting the dependency graph and
// the configured parallelism cap. It returns the first task error
// encountered (cancelling the shared context so sibling tasks can stop
// early) or a graph-validation error if the dependencies don't form a DAG
// over known tasks. If ctx is cancelled before every task has been started,
// Run waits for the started tasks and returns ctx.Err() when none of them
// failed.
func (q *Queue) Run(ctx context.Context) error {
	q.mu.Lock()
	if q.hasRun {
		q.mu.Unlock()
		return ErrAlreadyRun
	}
	q.hasRun = true
	tasks := q.tasks
	order := append([]TaskID(nil), q.order...)
	q.mu.Unlock()

	remaining := make(map[TaskID]int, len(tasks))
	dependents := make(map[TaskID][]TaskID, len(tasks))
	for id, entry := range tasks {
		remaining[id] = len(entry.deps)
		for _, dep := range entry.deps {
			if _, ok := tasks[dep]; !ok {
				return fmt.Errorf("%w: task %d depends on %d", ErrUnknownDependency, id, dep)
			}
			dependents[dep] = append(dependents[dep], id)
		}
	}
	if err := checkAcyclic(order, tasks); err != nil {
		return err
	}

	if len(tasks) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if q.maxParallel > 0 {
		g.SetLimit(q.maxParallel)
	}

	// readyCh carries task IDs that just became runnable. It is sized for
	// every task to become ready exactly once, so a completing task never
	// blocks handing its newly-unblocked dependents to the dispatcher.
	readyCh := make(chan TaskID, len(tasks))
	var schedMu sync.Mutex
	for _, id := range order {
		if remaining[id] == 0 {
			readyCh <- id
		}
	}

	// dispatch submits one task to g.Go. Only the dispatcher loop below
	// calls it, never a running task itself: g.Go can block here waiting
	// for a free slot in the SetLimit semaphore without risk of deadlock,
	// because the dispatcher holds no slot of its own.
	dispatch := func(id TaskID) {
		entry := tasks[id]
		g.Go(func() error {
			if err := entry.fn(gctx); err != nil {
				return fmt.Errorf("task %d: %w", id, err)
			}
			var newlyReady []TaskID
			schedMu.Lock()
			for _, dependent := range dependents[id] {
				remaining[dependent]--
				if remaining[dependent] == 0 {
					newlyReady = append(newlyReady, dependent)
				}
			}
			schedMu.Unlock()
			for _, next := range newlyReady {
				readyCh <- next
			}
			return nil
		})
	}

	dispatchDone := make(chan struct{})
	stoppedEarly := false
	go func() {
		defer close(dispatchDone)
		scheduled := 0
		for scheduled < len(tasks) {
			select {
			case id := <-readyCh:
				dispatch(id)
				scheduled++
			case <-gctx.Done():
				// A task failed (or the caller's context was cancelled):
				// tasks still blocked on a failed dependency will never
				// reach remaining==0, so stop waiting for them.
				stoppedEarly = true
				return
			}
		}
	}()
	<-dispatchDone

	if err := g.Wait(); err != nil {
		return err
	}
	if stoppedEarly {
		return ctx.Err()
	}
	return nil
}

// checkAcyclic performs a simple white/gray/black DFS to confirm the
// dependency graph has no cycles, so Run never deadlocks waiting on a task
// that can never become ready.
func checkAcyclic(order []TaskID, tasks map[TaskID]taskEntry) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[TaskID]int, len(tasks))

	var visit func(id TaskID) error
	visit = func(id TaskID) error {
		switch color[id] {
		case black:
			return nil
		case gray:
			return fmt.Errorf("%w: at task %d", ErrCycle, id)
		}
		color[id] = gray
		for _, dep := range tasks[id].deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[id] = black
		return nil
	}

	for _, id := range order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
