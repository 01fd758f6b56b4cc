package taskqueue

import "errors"

// ErrDuplicateTask is returned by AddTask when the given TaskID was already
// registered.
var ErrDuplicateTask = errors.New("taskqueue: duplicate task id")

// ErrUnknownDependency is returned by Run when a task lists a dependency
// that was never added.
var ErrUnknownDependency = errors.New("taskqueue: dependency refers to an unknown task")

// ErrCycle is returned by Run when the dependency graph is not a DAG.
var ErrCycle = errors.New("taskqueue: dependency graph has a cycle")

// ErrAlreadyRun is returned by AddTask or Run when the queue has already
// been run once. A Queue is single-use.
var ErrAlreadyRun = errors.New("taskqueue: queue has already run")
