package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcamargo/lexgym/internal/worker"
)

type countJob struct {
	ran *int32
	err error
}

func (j *countJob) Run(context.Context) error {
	atomic.AddInt32(j.ran, 1)
	return j.err
}

func (j *countJob) Name() string { return "count" }

func TestPoolRunsSubmittedJobs(t *testing.T) {
	p := worker.NewPool(3, 8)
	p.Start(context.Background())
	defer p.Stop()

	var ran int32
	for i := 0; i < 20; i++ {
		p.Submit(&countJob{ran: &ran})
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ran) == 20
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPoolSurvivesFailingJobs(t *testing.T) {
	p := worker.NewPool(1, 4)
	p.Start(context.Background())
	defer p.Stop()

	var ran int32
	p.Submit(&countJob{ran: &ran, err: errors.New("enrichment backend down")})
	p.Submit(&countJob{ran: &ran})

	// The worker keeps going after a failed job.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ran) == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPoolStopWaitsForInFlightWork(t *testing.T) {
	p := worker.NewPool(1, 1)
	ctx := context.Background()
	p.Start(ctx)

	var ran int32
	p.Submit(&countJob{ran: &ran})
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ran) == 1
	}, 2*time.Second, 5*time.Millisecond)

	p.Stop()
	assert.Equal(t, 0, p.QueueSize())
}
