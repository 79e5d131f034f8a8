package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sstent/fittracker-go/internal/models"
	"github.com/sstent/fittracker-go/internal/observability"
	"github.com/sstent/fittracker-go/internal/parser"
	"github.com/sstent/fittracker-go/internal/workout"
)

// Stats describes one report run.
type Stats struct {
	Total    int `json:"total"`
	Rendered int `json:"rendered"`
	Failed   int `json:"failed"`
}

// Service turns sensor packages into summary lines.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Summarize dispatches a package and computes its summary.
func Summarize(pkg parser.Package) (models.Summary, error) {
	w, err := pkg.Workout()
	if err != nil {
		return models.Summary{}, err
	}
	return w.Info()
}

// Run writes one line per package to out, in order. A package that fails
// is logged and skipped; only write errors and cancellation stop the run.
func (s *Service) Run(ctx context.Context, packages []parser.Package, out io.Writer) (Stats, error) {
	startTime := time.Now()
	stats := Stats{Total: len(packages)}
	s.logger.Debug("Starting report", "packages", len(packages))

	for i, pkg := range packages {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		summary, err := Summarize(pkg)
		if err != nil {
			stats.Failed++
			observability.RecordPackageFailed(failureReason(err))
			s.logger.Warn("Skipping package", "index", i, "code", pkg.Code, "error", err)
			continue
		}

		if _, err := fmt.Fprintln(out, summary.Message()); err != nil {
			return stats, fmt.Errorf("failed to write summary: %w", err)
		}
		stats.Rendered++
		observability.RecordWorkoutReported(summary.TrainingType)
	}

	s.logger.Debug("Report completed",
		"rendered", stats.Rendered,
		"failed", stats.Failed,
		"duration", time.Since(startTime),
	)
	return stats, nil
}

func failureReason(err error) string {
	var arityErr *workout.ArityError
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return "unknown_type"
	case errors.As(err, &arityErr):
		return "arity"
	case errors.Is(err, workout.ErrCaloriesNotImplemented):
		return "not_implemented"
	default:
		return "other"
	}
}
