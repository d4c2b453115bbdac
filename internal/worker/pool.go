package worker

import (
	"context"
	"sync"
	"time"

	"github.com/mcamargo/lexgym/internal/logger"
)

// Job is a unit of background work. Name is used only for logging.
type Job interface {
	Run(context.Context) error
	Name() string
}

// Pool runs submitted jobs on a fixed set of goroutines. Submit blocks once
// the queue is full, which throttles enrichment bursts instead of dropping
// them.
type Pool struct {
	queue   chan Job
	workers int
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	log     *logger.Logger
}

func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 16
	}
	return &Pool{
		queue:   make(chan Job, queueSize),
		workers: workers,
		log:     logger.Default().WithPrefix("worker"),
	}
}

// Start launches the workers. They run until Stop is called or the parent
// context is cancelled.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.log.Info("pool started: workers=%d, queue=%d", p.workers, cap(p.queue))
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i+1)
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	log := p.log.WithField("worker", id)
	for {
		select {
		case <-ctx.Done():
			log.Debug("worker exiting: %v", ctx.Err())
			return
		case job, ok := <-p.queue:
			if !ok {
				log.Debug("worker exiting: queue closed")
				return
			}
			p.process(ctx, log, job)
		}
	}
}

func (p *Pool) process(ctx context.Context, log *logger.Logger, job Job) {
	jobLog := log.WithField("job", job.Name())
	started := time.Now()
	if err := job.Run(logger.NewContext(ctx, jobLog)); err != nil {
		jobLog.Error("job failed after %v: %v", time.Since(started), err)
		return
	}
	jobLog.Debug("job done in %v", time.Since(started))
}

// Stop cancels the workers and waits for in-flight jobs to finish. Jobs
// still queued at that point are dropped.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	close(p.queue)
	p.wg.Wait()
	p.log.Info("pool stopped")
}

// Submit enqueues a job. It blocks while the queue is full.
func (p *Pool) Submit(job Job) {
	p.queue <- job
}

// QueueSize reports the number of jobs waiting to run.
func (p *Pool) QueueSize() int {
	return len(p.queue)
}
