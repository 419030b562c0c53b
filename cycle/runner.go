package cycle

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/lvlcycle/core"
)

// DefaultConcurrency bounds the worker pool when WithConcurrency is not given.
const DefaultConcurrency = 4

// Job is one edge list to check.
type Job struct {
	Name  string
	Edges []core.Edge
	// Source overrides the runner's source for this job when non-nil.
	Source *core.VertexID
}

// Result pairs a job with its outcome. Exactly one of Report and Err is set.
type Result struct {
	Name   string
	Report *Report
	Err    error
	// Cached is true when Report was served from the fingerprint cache.
	Cached bool
}

// cacheKey identifies checks whose reports are interchangeable.
type cacheKey struct {
	fingerprint   uint64
	source        core.VertexID
	strategy      Strategy
	allComponents bool
}

// Runner checks many jobs on a bounded pool of goroutines.
// A Runner is safe for concurrent use; its cache lives as long as the Runner.
type Runner struct {
	concurrency int
	checkOpts   []Option
	logger      *slog.Logger
	metrics     *Metrics
	verify      bool

	mu    sync.Mutex
	cache map[cacheKey]Report
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the maximum number of jobs checked at once; n < 1 is ignored.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.concurrency = n
		}
	}
}

// WithCheckOptions sets the per-check options (strategy, source, ...) for every job.
func WithCheckOptions(opts ...Option) RunnerOption {
	return func(r *Runner) {
		r.checkOpts = append(r.checkOpts, opts...)
	}
}

// WithLogger sets the logger; nil keeps the default, which discards.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics publishes check counts and latencies to m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithVerify cross-checks every fresh report with Verify before it is cached.
// A disagreement becomes the job's error.
func WithVerify() RunnerOption {
	return func(r *Runner) {
		r.verify = true
	}
}

// NewRunner returns a Runner with DefaultConcurrency and the default check options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		concurrency: DefaultConcurrency,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:       make(map[cacheKey]Report),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run checks every job and returns one Result per job, in job order.
//
// Per-job failures (unknown source, bad strategy) are reported in Result.Err and
// do not stop the other jobs. When ctx is cancelled no further jobs are started;
// the unstarted ones get ctx.Err() and Run returns ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	p := pool.New().WithMaxGoroutines(r.concurrency)

	r.logger.Debug("cycle run started", "jobs", len(jobs), "concurrency", r.concurrency)
	started := time.Now()

	for i := range jobs {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(jobs); j++ {
				results[j] = Result{Name: jobs[j].Name, Err: err}
			}
			break
		}
		i := i
		p.Go(func() {
			results[i] = r.runJob(ctx, jobs[i])
		})
	}
	p.Wait()

	r.logger.Debug("cycle run finished", "jobs", len(jobs), "elapsed", time.Since(started))

	return results, ctx.Err()
}

// runJob checks one job, consulting the cache first.
func (r *Runner) runJob(ctx context.Context, job Job) Result {
	res := Result{Name: job.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	opts := r.checkOpts
	if job.Source != nil {
		opts = append(append([]Option(nil), opts...), WithSource(*job.Source))
	}
	o, err := newOptions(opts...)
	if err != nil {
		res.Err = err
		r.metrics.record(nil, err, false, 0)
		r.logger.Warn("cycle check rejected", "job", job.Name, "error", err)
		return res
	}

	start := time.Now()
	g := core.NewUndirectedGraph(job.Edges)
	key := cacheKey{
		fingerprint:   Fingerprint(g),
		source:        o.sourceFor(job.Edges),
		strategy:      o.Strategy,
		allComponents: o.AllComponents,
	}

	if rep, ok := r.lookup(key); ok {
		res.Report, res.Cached = &rep, true
		r.metrics.record(&rep, nil, true, 0)
		r.logger.Debug("cycle check cached", "job", job.Name, "fingerprint", key.fingerprint)
		return res
	}

	rep, err := o.check(g, key.source, key.fingerprint)
	if err == nil && r.verify {
		if err = verify(g, rep); err != nil {
			rep = nil
		}
	}
	elapsed := time.Since(start)
	r.metrics.record(rep, err, false, elapsed)
	if err != nil {
		res.Err = err
		r.logger.Warn("cycle check failed", "job", job.Name, "error", err)
		return res
	}
	r.store(key, *rep)

	res.Report = rep
	r.logger.Info("cycle checked",
		"job", job.Name,
		"strategy", rep.Strategy,
		"vertices", rep.Vertices,
		"edges", rep.Edges,
		"has_cycle", rep.HasCycle,
		"elapsed", elapsed,
	)

	return res
}

func (r *Runner) lookup(key cacheKey) (Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.cache[key]
	if !ok {
		return Report{}, false
	}

	return rep.clone(), true
}

func (r *Runner) store(key cacheKey, rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = rep.clone()
}

// CacheLen reports how many distinct checks are cached.
func (r *Runner) CacheLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.cache)
}
