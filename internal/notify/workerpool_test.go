package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failLast   bool
	}{
		{
			name:       "Executes every task",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:       "Failing task does not stop the pool",
			numTasks:   3,
			numWorkers: 2,
			failLast:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var executed int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				i := i
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					mu.Lock()
					executed++
					mu.Unlock()
					if tt.failLast && i == tt.numTasks-1 {
						return assert.AnError
					}
					return nil
				})
				assert.NoError(t, err)
			}

			wg.Wait()
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, tt.numTasks, executed)
		})
	}
}

func TestWorkerPool_AddTaskCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// Saturate the queue so AddTask has to wait on the context.
	block := make(chan struct{})
	defer close(block)
	for i := 0; i < 2; i++ {
		_ = wp.AddTask(context.Background(), func() error {
			<-block
			return nil
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
