// Package audit runs validation passes over manifests and keeps a record of
// each run as a Report.
//
// A check loads the manifest, validates its fields, stamps the outcome with
// an id and a timestamp and, when storage is configured, persists it. Every
// check is traced and counted through the global OpenTelemetry providers.
package audit

import (
	"context"
	"time"

	"github.com/gabapcia/fieldguard/internal/manifest"
	"github.com/gabapcia/fieldguard/internal/pkg/resilience/retry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/gabapcia/fieldguard/internal/audit"

	defaultWorkers = 4
)

// Outcome is the result of checking one source in a batch.
type Outcome struct {
	Source string
	Report Report
	Err    error
}

// Service checks manifests and looks up stored reports.
type Service interface {
	// Check runs a validation pass over the manifest at source.
	//
	// Violations are part of the returned Report, not errors. An error means
	// the manifest could not be loaded or decoded, or the report could not
	// be persisted.
	Check(ctx context.Context, source string) (Report, error)

	// CheckAll checks every source concurrently and streams one Outcome per
	// source. The channel is closed once all sources are done or ctx is
	// canceled; outcomes arrive in completion order.
	CheckAll(ctx context.Context, sources []string) <-chan Outcome

	// Report returns a previously stored report.
	Report(ctx context.Context, id string) (Report, error)
}

type service struct {
	loader        manifest.Loader
	reportStorage ReportStorage

	retry   retry.Retry
	workers int

	now   func() time.Time
	newID func() string

	tracer            trace.Tracer
	checkCounter      metric.Int64Counter
	violationsCounter metric.Int64Counter
}

var _ Service = (*service)(nil)

// Option configures the audit service.
type Option func(*service)

// WithReportStorage enables report persistence.
func WithReportStorage(rs ReportStorage) Option {
	return func(s *service) {
		s.reportStorage = rs
	}
}

// WithRetry sets the retry policy used when persisting reports.
func WithRetry(r retry.Retry) Option {
	return func(s *service) {
		s.retry = r
	}
}

// WithWorkers sets how many sources CheckAll processes in parallel.
// Values below one are ignored.
func WithWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates an audit service that reads manifests with loader.
//
// Without WithReportStorage reports are returned but not persisted.
func New(loader manifest.Loader, opts ...Option) *service {
	s := &service{
		loader:  loader,
		retry:   retry.New(),
		workers: defaultWorkers,
		now:     time.Now,
		newID:   uuid.NewString,
		tracer:  otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.initMetrics()
	return s
}

// initMetrics creates the service counters, falling back to no-op
// instruments if the meter rejects them.
func (s *service) initMetrics() {
	meter := otel.Meter(instrumentationName)

	var err error
	s.checkCounter, err = meter.Int64Counter(
		"fieldguard.checks",
		metric.WithDescription("Number of completed manifest checks."),
	)
	if err != nil {
		s.checkCounter = noop.Int64Counter{}
	}

	s.violationsCounter, err = meter.Int64Counter(
		"fieldguard.violations",
		metric.WithDescription("Number of violations reported by manifest checks."),
	)
	if err != nil {
		s.violationsCounter = noop.Int64Counter{}
	}
}
