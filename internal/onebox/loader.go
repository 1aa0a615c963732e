package onebox

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/conneroisu/prettytext/internal/config"
	"github.com/conneroisu/prettytext/internal/logging"
)

// LoaderConfig holds the drain delays.
type LoaderConfig struct {
	// Delay is the pause before the first drain and between requests.
	Delay time.Duration
	// BackoffDelay is the pause after a rate-limited request.
	BackoffDelay time.Duration
}

// DefaultLoaderConfig returns the standard 150ms/2s delays.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Delay:        config.DefaultOneboxDelay,
		BackoffDelay: config.DefaultBackoffDelay,
	}
}

// LoadOptions are the per-call options of Loader.Load.
type LoadOptions struct {
	Refresh     bool
	Synchronous bool
	CategoryID  int
	TopicID     int
}

// job is a queued URL and every element waiting on it.
type job struct {
	req      Request
	elements []Element
}

// Loader drains preview requests one at a time. A URL is either cached,
// recorded as failed, or queued (the request in flight counts as queued).
type Loader struct {
	store   Store
	fetcher Fetcher
	cfg     LoaderConfig
	logger  logging.Logger
	metrics *Metrics

	ctx    context.Context
	cancel context.CancelFunc

	// attempt is held for the whole of one request.
	attempt sync.Mutex

	mu    sync.Mutex
	queue []*job
	jobs  map[string]*job
	timer *time.Timer
	// notBefore holds every attempt back until a backoff has passed.
	notBefore time.Time
	closed    bool
}

// New creates a Loader. metrics may be nil.
func New(store Store, fetcher Fetcher, cfg LoaderConfig, logger logging.Logger, metrics *Metrics) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	def := DefaultLoaderConfig()
	if cfg.Delay <= 0 {
		cfg.Delay = def.Delay
	}
	if cfg.BackoffDelay <= 0 {
		cfg.BackoffDelay = def.BackoffDelay
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		store:   store,
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.WithComponent("onebox"),
		metrics: metrics,
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(map[string]*job),
	}
}

// Load resolves the preview for el. A cache hit replaces el at once and
// returns the preview. A known failure, an element that is loaded or
// loading, and a closed loader all return false. Otherwise el is marked
// loading and queued; with Synchronous set the queue is drained before
// Load returns.
func (l *Loader) Load(ctx context.Context, el Element, opts LoadOptions) (string, bool) {
	if el.Loaded() || el.HasClass(LoadingClass) {
		return "", false
	}
	url := NormalizeURL(el.URL())

	if !opts.Refresh {
		if html, ok := l.store.Get(url); ok {
			l.metrics.recordHit()
			el.Replace(html)
			el.MarkLoaded()
			return html, true
		}
		if l.store.Failed(url) {
			return "", false
		}
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return "", false
	}
	el.AddClass(LoadingClass)
	if j, ok := l.jobs[url]; ok {
		j.elements = append(j.elements, el)
		j.req.Refresh = j.req.Refresh || opts.Refresh
	} else {
		j := &job{
			req: Request{
				URL:        url,
				Refresh:    opts.Refresh,
				CategoryID: opts.CategoryID,
				TopicID:    opts.TopicID,
			},
			elements: []Element{el},
		}
		l.queue = append(l.queue, j)
		l.jobs[url] = j
	}
	l.metrics.setQueueLength(len(l.queue))
	l.mu.Unlock()

	if !opts.Synchronous {
		l.schedule(l.cfg.Delay, false)
		return "", false
	}

	l.drain(ctx)
	if html, ok := l.store.Get(url); ok && el.Loaded() {
		return html, true
	}
	return "", false
}

// Pending returns the number of URLs waiting to be requested.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Queued reports whether url is waiting or in flight.
func (l *Loader) Queued(url string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.jobs[NormalizeURL(url)]
	return ok
}

// Close stops the drain timer and cancels the request in flight. Queued
// elements keep their loading marker.
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()
	l.cancel()
}

// drain runs attempts inline until the queue is empty. A rate-limited or
// cancelled attempt, or a backoff still running, hands the rest of the
// queue to the timer.
func (l *Loader) drain(ctx context.Context) {
	for {
		delay, more, limited := l.step(ctx)
		if limited {
			l.schedule(delay, true)
			return
		}
		if ctx.Err() != nil {
			l.schedule(l.cfg.Delay, false)
			return
		}
		if !more {
			return
		}
	}
}

// schedule arms the drain timer. replace swaps out a pending timer, which
// lets a backoff delay win over a shorter one already armed.
func (l *Loader) schedule(delay time.Duration, replace bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || len(l.queue) == 0 {
		return
	}
	if l.timer != nil {
		if !replace {
			return
		}
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(delay, l.run)
}

func (l *Loader) run() {
	l.mu.Lock()
	l.timer = nil
	l.mu.Unlock()

	delay, more, limited := l.step(l.ctx)
	if more {
		l.schedule(delay, limited)
	}
}

// step performs one request. It returns the delay before the next attempt,
// whether anything is left to do, and whether the endpoint rate limited us.
// While a backoff is running it requests nothing and reports what is left
// of it.
func (l *Loader) step(ctx context.Context) (time.Duration, bool, bool) {
	l.attempt.Lock()
	defer l.attempt.Unlock()

	l.mu.Lock()
	if l.closed || len(l.queue) == 0 {
		l.mu.Unlock()
		return 0, false, false
	}
	if wait := time.Until(l.notBefore); wait > 0 {
		l.mu.Unlock()
		return wait, true, true
	}
	j := l.queue[0]
	l.queue = l.queue[1:]
	req := j.req
	l.metrics.setQueueLength(len(l.queue))
	l.mu.Unlock()

	html, err := l.fetcher.Fetch(ctx, req)

	l.mu.Lock()
	defer l.mu.Unlock()

	if stderrors.Is(err, ErrRateLimited) || (err != nil && ctx.Err() != nil) {
		l.queue = append([]*job{j}, l.queue...)
		l.metrics.setQueueLength(len(l.queue))
		if ctx.Err() != nil {
			return 0, false, false
		}
		l.notBefore = time.Now().Add(l.cfg.BackoffDelay)
		l.metrics.recordRateLimited()
		l.logger.Info(ctx, "onebox endpoint rate limited, backing off",
			"url", req.URL, "backoff", l.cfg.BackoffDelay)
		return l.cfg.BackoffDelay, true, true
	}

	if err != nil || strings.TrimSpace(html) == "" {
		l.store.PutFailure(req.URL)
		l.metrics.recordFailure()
		l.logger.Debug(ctx, "onebox preview failed", "url", req.URL, "error", err)
		for _, el := range j.elements {
			el.RemoveClass(LoadingClass)
		}
	} else {
		l.store.Put(req.URL, html)
		l.metrics.recordSuccess()
		l.logger.Debug(ctx, "onebox preview loaded", "url", req.URL, "bytes", len(html))
		for _, el := range j.elements {
			el.Replace(html)
			el.MarkLoaded()
			el.RemoveClass(LoadingClass)
		}
	}
	delete(l.jobs, req.URL)
	return l.cfg.Delay, len(l.queue) > 0, false
}
