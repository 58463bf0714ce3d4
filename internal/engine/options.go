package engine

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

type options struct {
	logger     Logger
	recorder   Recorder
	policy     domain.MatchPolicy
	holdPeriod time.Duration
}

// Option настройка движка
type Option func(*options)

// WithLogger задаёт логгер
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRecorder задаёт счётчики исходов (например, prometheus метрики)
func WithRecorder(recorder Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// WithMatchPolicy задаёт, какие бронирования закрывают слот
func WithMatchPolicy(policy domain.MatchPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithHoldPeriod задаёт период удержания неподтверждённого бронирования
func WithHoldPeriod(holdPeriod time.Duration) Option {
	return func(o *options) {
		o.holdPeriod = holdPeriod
	}
}
