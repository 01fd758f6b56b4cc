// Package taskqueue schedules a static, known-ahead-of-time graph of tasks
// with dependencies, running each only after every task it depends on has
// completed, bounded to a configurable amount of parallelism.
//
// It is "static" in the sense the whole graph is registered with AddTask
// before Run starts; nothing can be added once running. The engine uses one
// Queue to wire its left-base and right-base aggregation runs (each with its
// own Census/init stages) into the ten-task dependency graph the
// matching controller assembles.
package taskqueue
