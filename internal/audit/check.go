package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/fieldguard/internal/fieldcheck"
	"github.com/gabapcia/fieldguard/internal/pkg/logger"
	"github.com/gabapcia/fieldguard/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidReportID is returned when a report id is not a UUID.
var ErrInvalidReportID = errors.New("invalid report id")

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// saveReport persists r with the configured retry policy.
func (s *service) saveReport(ctx context.Context, r Report) error {
	return s.retry.Execute(ctx, func() error {
		err := s.reportStorage.SaveReport(ctx, r)
		if err != nil {
			logger.Warn(ctx, "failed to save report", "report_id", r.ID, "error", err)
		}

		return err
	})
}

// Check implements Service.
func (s *service) Check(ctx context.Context, source string) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Check",
		trace.WithAttributes(attribute.String("manifest.source", source)),
	)
	defer span.End()

	ctx = logger.Derive(ctx, "source", source)

	fields, err := s.loader.Load(ctx, source)
	if err != nil {
		recordSpanError(span, err)
		logger.Error(ctx, "failed to load manifest", "error", err)
		return Report{}, err
	}

	result, err := fieldcheck.Validate(fields)
	if err != nil {
		recordSpanError(span, err)
		logger.Error(ctx, "failed to validate manifest", "error", err)
		return Report{}, err
	}

	report := Report{
		ID:         s.newID(),
		Source:     source,
		CheckedAt:  s.now().UTC(),
		Fields:     len(fields),
		Violations: result.Violations(),
	}
	span.SetAttributes(
		attribute.String("report.id", report.ID),
		attribute.Int("report.violations", len(report.Violations)),
	)

	if s.reportStorage != nil {
		if err := s.saveReport(ctx, report); err != nil {
			recordSpanError(span, err)
			logger.Error(ctx, "failed to persist report", "report_id", report.ID, "error", err)
			return Report{}, fmt.Errorf("save report %s: %w", report.ID, err)
		}
	}

	s.checkCounter.Add(ctx, 1, metric.WithAttributes(attribute.Bool("passed", report.Passed())))
	s.violationsCounter.Add(ctx, int64(len(report.Violations)))

	logger.Info(ctx, "manifest checked",
		"report_id", report.ID,
		"fields", report.Fields,
		"violations", len(report.Violations),
	)

	return report, nil
}

// CheckAll implements Service.
func (s *service) CheckAll(ctx context.Context, sources []string) <-chan Outcome {
	var (
		sourceCh  = make(chan string)
		outcomeCh = make(chan Outcome, len(sources))
		wg        sync.WaitGroup
	)

	go func() {
		defer close(sourceCh)

		for _, source := range sources {
			if !chflow.Send(ctx, sourceCh, source) {
				return
			}
		}
	}()

	for range min(s.workers, len(sources)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				source, ok := chflow.Receive(ctx, sourceCh)
				if !ok || ctx.Err() != nil {
					return
				}

				report, err := s.Check(ctx, source)
				if !chflow.Send(ctx, outcomeCh, Outcome{Source: source, Report: report, Err: err}) {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	return outcomeCh
}

// Report implements Service.
func (s *service) Report(ctx context.Context, id string) (Report, error) {
	if s.reportStorage == nil {
		return Report{}, ErrStorageDisabled
	}

	if _, err := uuid.Parse(id); err != nil {
		return Report{}, fmt.Errorf("%w: %q", ErrInvalidReportID, id)
	}

	return s.reportStorage.LoadReport(ctx, id)
}
