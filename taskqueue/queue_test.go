package taskqueue_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sgmvision/camsgm/taskqueue"
	"github.com/stretchr/testify/require"
)

func TestAddTask_DuplicateRejected(t *testing.T) {
	q := taskqueue.New(2)
	require.NoError(t, q.AddTask(1, func(ctx context.Context) error { return nil }))
	err := q.AddTask(1, func(ctx context.Context) error { return nil })
	require.ErrorIs(t, err, taskqueue.ErrDuplicateTask)
}

func TestRun_RespectsDependencyOrder(t *testing.T) {
	q := taskqueue.New(4)
	var mu sync.Mutex
	var order []int

	require.NoError(t, q.AddTask(1, func(ctx context.Context) error {
		mu.Lock()
		order = append(order, 1)
		mu.Unlock()
		return nil
	}))
	require.NoError(t, q.AddTask(2, func(ctx context.Context) error {
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		return nil
	}, 1))
	require.NoError(t, q.AddTask(3, func(ctx context.Context) error {
		mu.Lock()
		order = append(order, 3)
		mu.Unlock()
		return nil
	}, 2))

	require.NoError(t, q.Run(context.Background()))
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestRun_UnknownDependency(t *testing.T) {
	q := taskqueue.New(2)
	require.NoError(t, q.AddTask(1, func(ctx context.Context) error { return nil }, 99))
	err := q.Run(context.Background())
	require.ErrorIs(t, err, taskqueue.ErrUnknownDependency)
}

func TestRun_Cycle(t *testing.T) {
	q := taskqueue.New(2)
	require.NoError(t, q.AddTask(1, func(ctx context.Context) error { return nil }, 2))
	require.NoError(t, q.AddTask(2, func(ctx context.Context) error { return nil }, 1))
	err := q.Run(context.Background())
	require.ErrorIs(t, err, taskqueue.ErrCycle)
}

func TestRun_PropagatesTaskError(t *testing.T) {
	q := taskqueue.New(2)
	boom := errors.New("boom")
	require.NoError(t, q.AddTask(1, func(ctx context.Context) error { return boom }))
	err := q.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestRun_AlreadyRun(t *testing.T) {
	q := taskqueue.New(2)
	require.NoError(t, q.AddTask(1, func(ctx context.Context) error { return nil }))
	require.NoError(t, q.Run(context.Background()))

	err := q.Run(context.Background())
	require.ErrorIs(t, err, taskqueue.ErrAlreadyRun)

	err = q.AddTask(2, func(ctx context.Context) error { return nil })
	require.ErrorIs(t, err, taskqueue.ErrAlreadyRun)
}

func TestRun_DiamondDependency(t *testing.T) {
	q := taskqueue.New(4)
	var mu sync.Mutex
	done := map[int]bool{}

	require.NoError(t, q.AddTask(1, func(ctx context.Context) error {
		mu.Lock()
		done[1] = true
		mu.Unlock()
		return nil
	}))
	require.NoError(t, q.AddTask(2, func(ctx context.Context) error {
		mu.Lock()
		require.True(t, done[1])
		done[2] = true
		mu.Unlock()
		return nil
	}, 1))
	require.NoError(t, q.AddTask(3, func(ctx context.Context) error {
		mu.Lock()
		require.True(t, done[1])
		done[3] = true
		mu.Unlock()
		return nil
	}, 1))
	require.NoError(t, q.AddTask(4, func(ctx context.Context) error {
		mu.Lock()
		require.True(t, done[2])
		require.True(t, done[3])
		mu.Unlock()
		return nil
	}, 2, 3))

	require.NoError(t, q.Run(context.Background()))
}
