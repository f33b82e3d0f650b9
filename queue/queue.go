// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package queue runs persisted jobs on named lanes. Every lane has a bounded
// number of concurrently running jobs and a limit on how many jobs may start
// per interval. Jobs are delivered at least once, handlers have to be
// idempotent.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/monitoring"
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"
)

type Handler func(ctx context.Context, job jobs.Job) error

type LaneConfig struct {
	Name        string
	Concurrency int
	// at most Max jobs start within Interval
	Max      int
	Interval time.Duration
}

func DefaultLanes() []LaneConfig {
	concurrency := shared.GetEnvIntOrDefault("QUEUE_CONCURRENCY", 2)
	maxStarts := shared.GetEnvIntOrDefault("QUEUE_RATE_MAX", 5)
	interval := time.Duration(shared.GetEnvIntOrDefault("QUEUE_RATE_INTERVAL_MS", 1000)) * time.Millisecond

	return []LaneConfig{
		{Name: jobs.LaneDependency, Concurrency: concurrency, Max: maxStarts, Interval: interval},
		{Name: jobs.LaneVulnerabilities, Concurrency: concurrency, Max: maxStarts, Interval: interval},
	}
}

type lane struct {
	config  LaneConfig
	handler Handler
	limiter *rate.Limiter
	sem     *semaphore.Weighted
	wakeup  chan struct{}
}

type Option func(*Queue)

// WithClock replaces time.Now, the clock has to return UTC.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(q *Queue) {
		q.pollInterval = d
	}
}

func WithStaleAfter(d time.Duration) Option {
	return func(q *Queue) {
		q.staleAfter = d
	}
}

type Queue struct {
	jobRepository shared.JobRepository
	// nil disables cross process wake-ups, polling still works
	broker pubsub.Broker

	mu    sync.RWMutex
	lanes map[string]*lane

	now          func() time.Time
	pollInterval time.Duration
	staleAfter   time.Duration

	wg sync.WaitGroup
}

func NewQueue(jobRepository shared.JobRepository, broker pubsub.Broker, lanes []LaneConfig, opts ...Option) *Queue {
	q := &Queue{
		jobRepository: jobRepository,
		broker:        broker,
		lanes:         make(map[string]*lane, len(lanes)),
		now:           func() time.Time { return time.Now().UTC() },
		pollInterval:  time.Second,
		staleAfter:    10 * time.Minute,
	}
	for _, o := range opts {
		o(q)
	}

	for _, cfg := range lanes {
		if cfg.Concurrency <= 0 {
			cfg.Concurrency = 1
		}
		limit := rate.Inf
		if cfg.Max > 0 && cfg.Interval > 0 {
			limit = rate.Every(cfg.Interval / time.Duration(cfg.Max))
		}
		// a burst above one would allow up to 2*Max-1 starts in one Interval
		q.lanes[cfg.Name] = &lane{
			config:  cfg,
			limiter: rate.NewLimiter(limit, 1),
			sem:     semaphore.NewWeighted(int64(cfg.Concurrency)),
			wakeup:  make(chan struct{}, 1),
		}
	}
	return q
}

// Register binds the handler to a lane. Only lanes with a handler are
// processed by Start.
func (q *Queue) Register(laneName string, handler Handler) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	l, ok := q.lanes[laneName]
	if !ok {
		return fmt.Errorf("unknown lane %q", laneName)
	}
	if l.handler != nil {
		return fmt.Errorf("lane %q already has a handler", laneName)
	}
	l.handler = handler
	return nil
}

func (q *Queue) getLane(name string) (*lane, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	l, ok := q.lanes[name]
	if !ok {
		return nil, fmt.Errorf("unknown lane %q", name)
	}
	return l, nil
}

func (q *Queue) Enqueue(ctx context.Context, job jobs.Job, opts jobs.EnqueueOptions) (models.Job, error) {
	if _, err := q.getLane(job.Lane()); err != nil {
		return models.Job{}, err
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return models.Job{}, errors.Wrap(err, "could not marshal job payload")
	}

	backoffType := opts.Backoff.Type
	if backoffType == "" {
		backoffType = models.BackoffFixed
	}

	row := models.Job{
		Lane:             job.Lane(),
		Name:             job.JobName(),
		Payload:          datatypes.JSON(payload),
		State:            models.JobStateQueued,
		MaxAttempts:      max(opts.Attempts, 1),
		BackoffType:      backoffType,
		BackoffDelay:     opts.Backoff.Delay,
		RemoveOnComplete: opts.RemoveOnComplete,
		RunAt:            q.now().Add(opts.Delay),
	}
	if err := q.jobRepository.Create(ctx, &row); err != nil {
		return models.Job{}, errors.Wrap(err, "could not persist job")
	}
	monitoring.JobsEnqueued.WithLabelValues(row.Lane, row.Name).Inc()

	q.wake(ctx, row.Lane)
	return row, nil
}

func (q *Queue) wake(ctx context.Context, laneName string) {
	if l, err := q.getLane(laneName); err == nil {
		select {
		case l.wakeup <- struct{}{}:
		default:
		}
	}
	if q.broker == nil {
		return
	}
	if err := q.broker.Publish(ctx, pubsub.NewSimpleMessage(pubsub.QueueChannel(laneName), map[string]any{"lane": laneName})); err != nil {
		// the poll loop picks the job up anyway
		slog.Warn("could not publish queue wake-up", "lane", laneName, "err", err)
	}
}

// ProcessNext claims and runs a single due job of the lane in the calling
// goroutine. It reports whether a job was found.
func (q *Queue) ProcessNext(ctx context.Context, laneName string) (bool, error) {
	l, err := q.getLane(laneName)
	if err != nil {
		return false, err
	}
	if l.handler == nil {
		return false, fmt.Errorf("lane %q has no handler", laneName)
	}

	job, ok, err := q.jobRepository.ClaimNext(ctx, laneName, q.now())
	if err != nil || !ok {
		return false, err
	}
	return true, q.run(ctx, l, job)
}

// Start requeues stale jobs and starts a worker loop for every lane with a
// registered handler. The loops stop once ctx is done, Wait blocks until
// every running job returned.
func (q *Queue) Start(ctx context.Context) error {
	requeued, err := q.jobRepository.RequeueStale(ctx, q.now().Add(-q.staleAfter))
	if err != nil {
		return errors.Wrap(err, "could not requeue stale jobs")
	}
	if requeued > 0 {
		slog.Info("requeued stale jobs", "count", requeued)
		monitoring.StaleJobsRequeued.Add(float64(requeued))
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	for name, l := range q.lanes {
		if l.handler == nil {
			continue
		}
		if q.broker != nil {
			ch, err := q.broker.Subscribe(pubsub.QueueChannel(name))
			if err != nil {
				return errors.Wrapf(err, "could not subscribe to lane %s", name)
			}
			go forwardWakeups(ctx, ch, l.wakeup)
		}

		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.loop(ctx, l)
		}()
		slog.Info("started queue lane", "lane", name, "concurrency", l.config.Concurrency, "max", l.config.Max, "interval", l.config.Interval)
	}
	return nil
}

func (q *Queue) Wait() {
	q.wg.Wait()
}

func forwardWakeups(ctx context.Context, ch <-chan map[string]any, wakeup chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			select {
			case wakeup <- struct{}{}:
			default:
			}
		}
	}
}

func (q *Queue) loop(ctx context.Context, l *lane) {
	timer := time.NewTimer(q.pollInterval)
	defer timer.Stop()

	for {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return
		}

		job, ok, err := q.jobRepository.ClaimNext(ctx, l.config.Name, q.now())
		if err != nil || !ok {
			l.sem.Release(1)
			if err != nil && ctx.Err() == nil {
				slog.Error("could not claim job", "lane", l.config.Name, "err", err)
			}

			timer.Reset(q.pollInterval)
			select {
			case <-ctx.Done():
				return
			case <-l.wakeup:
			case <-timer.C:
			}
			continue
		}

		if err := l.limiter.Wait(ctx); err != nil {
			// shutting down, hand the claimed job back
			q.release(job)
			l.sem.Release(1)
			return
		}

		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			defer l.sem.Release(1)
			if err := q.run(ctx, l, job); err != nil {
				slog.Error("could not finish job", "lane", l.config.Name, "job", job.Name, "id", job.ID, "err", err)
			}
		}()
	}
}

// run executes the job and records the outcome. The returned error is only
// about persisting that outcome, handler errors are retried.
func (q *Queue) run(ctx context.Context, l *lane, job models.Job) error {
	decoded, err := jobs.Decode(job.Name, job.Payload)
	if err != nil {
		// retrying would not make the payload any better
		job.Attempts = job.MaxAttempts
		return q.fail(job, err)
	}

	start := time.Now()
	err = q.handle(ctx, l.handler, decoded)
	monitoring.JobDuration.WithLabelValues(job.Lane, job.Name).Observe(time.Since(start).Seconds())

	if err != nil && ctx.Err() != nil {
		// interrupted by a shutdown, this does not count as an attempt
		q.release(job)
		return nil
	}
	if err != nil {
		job.Attempts++
		return q.fail(job, err)
	}

	job.Attempts++
	return q.complete(job)
}

func (q *Queue) handle(ctx context.Context, handler Handler, job jobs.Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("job handler panicked", r)
			err = fmt.Errorf("job handler panicked: %v", r)
		}
	}()
	return handler(ctx, job)
}

func (q *Queue) complete(job models.Job) error {
	monitoring.JobsProcessed.WithLabelValues(job.Lane, job.Name, "completed").Inc()
	// the outcome has to be stored even if the worker is shutting down
	ctx := context.Background()
	if job.RemoveOnComplete {
		return q.jobRepository.Delete(ctx, job.ID)
	}
	job.State = models.JobStateCompleted
	job.LockedAt = nil
	job.LastError = ""
	return q.jobRepository.Update(ctx, &job)
}

func (q *Queue) fail(job models.Job, cause error) error {
	job.LastError = cause.Error()
	job.LockedAt = nil

	if job.Attempts < job.MaxAttempts {
		job.State = models.JobStateQueued
		job.RunAt = q.now().Add(backoffDelay(job))
		monitoring.JobsProcessed.WithLabelValues(job.Lane, job.Name, "retried").Inc()
		slog.Warn("job failed, retrying", "lane", job.Lane, "job", job.Name, "id", job.ID, "attempt", job.Attempts, "runAt", job.RunAt, "err", cause)
	} else {
		job.State = models.JobStateFailed
		monitoring.JobsProcessed.WithLabelValues(job.Lane, job.Name, "failed").Inc()
		monitoring.Alert(fmt.Sprintf("job %s (%s) failed after %d attempts", job.Name, job.ID, job.Attempts), cause)
	}
	return q.jobRepository.Update(context.Background(), &job)
}

func (q *Queue) release(job models.Job) {
	job.State = models.JobStateQueued
	job.LockedAt = nil
	if err := q.jobRepository.Update(context.Background(), &job); err != nil {
		slog.Error("could not release job", "id", job.ID, "err", err)
	}
}

// backoffDelay is the delay before the next attempt. Attempts is the number
// of attempts already made.
func backoffDelay(job models.Job) time.Duration {
	if job.BackoffType != models.BackoffExponential {
		return job.BackoffDelay
	}
	return time.Duration(float64(job.BackoffDelay) * math.Pow(2, float64(max(job.Attempts-1, 0))))
}
