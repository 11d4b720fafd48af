// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the site.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/internal/domain/types"
	"github.com/okian/caltrack/pkg/logger"
	"github.com/okian/caltrack/pkg/metrics"
)

// Calculation is the stamped result returned to callers.
type Calculation = types.Calculation

// Recorder receives metrics for each submission.
type Recorder interface {
	RecordCalculation(balance string, net, stepsCalories float64)
	RecordValidationError(field string)
}

type globalRecorder struct{}

func (globalRecorder) RecordCalculation(balance string, net, stepsCalories float64) {
	metrics.RecordCalculation(balance, net, stepsCalories)
}

func (globalRecorder) RecordValidationError(field string) {
	metrics.RecordValidationError(field)
}

// Service runs calculations and keeps the latest one for display.
type Service struct {
	mu      sync.RWMutex
	started bool

	latest atomic.Pointer[Calculation]

	calculations atomic.Int64
	rejected     atomic.Int64
	byBalance    map[calorie.Balance]*atomic.Int64

	logger   logger.Logger
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder replaces the global metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the calculation id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		byBalance: make(map[calorie.Balance]*atomic.Int64, len(calorie.Balances)),
		recorder:  globalRecorder{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, b := range calorie.Balances {
		s.byBalance[b] = new(atomic.Int64)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start marks the service ready. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "calorie service started",
		logger.Float64("stepsCaloriesFactor", calorie.StepsCaloriesFactor),
	)
	return nil
}

// Stop drops the latest result and marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.latest.Store(nil)
	s.started = false
	s.logger.Info(context.Background(), "calorie service stopped",
		logger.Int64("calculations", s.calculations.Load()),
	)
}

// Calculate validates in, computes its balance and stores it as the latest
// result. Validation errors are returned unchanged and leave the latest
// result untouched.
func (s *Service) Calculate(ctx context.Context, in calorie.Input) (Calculation, error) {
	res, err := calorie.Compute(in)
	if err != nil {
		s.Reject(ctx, err)
		return Calculation{}, err
	}

	calc := &Calculation{
		ID:         s.newID(),
		ComputedAt: s.now().UTC(),
		Input:      in,
		Result:     res,
	}
	s.latest.Store(calc)

	s.calculations.Add(1)
	if c, ok := s.byBalance[res.Balance]; ok {
		c.Add(1)
	}
	s.recorder.RecordCalculation(res.Balance.String(), res.NetCalories, res.StepsCalories)

	s.log().Debug(ctx, "calculation completed",
		logger.String("id", calc.ID),
		logger.Float64("totalIn", res.TotalIn),
		logger.Float64("totalOut", res.TotalOut),
		logger.Float64("net", res.NetCalories),
		logger.String("balance", res.Balance.String()),
	)
	return *calc, nil
}

// Reject counts a submission that failed validation before reaching
// Calculate, such as form text that is not a number.
func (s *Service) Reject(ctx context.Context, err error) {
	s.rejected.Add(1)
	if ve, ok := calorie.AsValidation(err); ok {
		for _, field := range ve.FieldNames() {
			s.recorder.RecordValidationError(field)
		}
	}
	s.log().Debug(ctx, "calculation rejected", logger.Error(err))
}

// Latest returns the most recent successful calculation.
func (s *Service) Latest(_ context.Context) (Calculation, bool) {
	calc := s.latest.Load()
	if calc == nil {
		return Calculation{}, false
	}
	return *calc, true
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	byBalance := make(map[string]int64, len(s.byBalance))
	for b, c := range s.byBalance {
		byBalance[b.String()] = c.Load()
	}

	stats := map[string]interface{}{
		"started":      started,
		"calculations": s.calculations.Load(),
		"rejected":     s.rejected.Load(),
		"byBalance":    byBalance,
	}
	if calc := s.latest.Load(); calc != nil {
		stats["latestId"] = calc.ID
		stats["latestBalance"] = calc.Result.Balance.String()
	}
	return stats
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Nop()
	}
	return s.logger
}
