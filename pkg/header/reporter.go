package header

import (
	"sync"

	"go.uber.org/zap"
)

// Reporter receives dataset diagnostics. DatasetError is called for
// recoverable errors that clear a dataset's OK flag, DatasetWarning for
// conditions that leave it set.
type Reporter interface {
	DatasetError(name, msg string)
	DatasetWarning(name, msg string)
}

// ZapReporter writes diagnostics to a zap logger
type ZapReporter struct {
	logger *zap.Logger
}

// NewZapReporter creates a reporter backed by logger. A nil logger discards
// everything.
func NewZapReporter(logger *zap.Logger) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapReporter{logger: logger}
}

func (r *ZapReporter) DatasetError(name, msg string) {
	r.logger.Error("dataset error", zap.String("dataset", name), zap.String("reason", msg))
}

func (r *ZapReporter) DatasetWarning(name, msg string) {
	r.logger.Warn("dataset warning", zap.String("dataset", name), zap.String("reason", msg))
}

// Diagnostic is a single message recorded by a CollectingReporter
type Diagnostic struct {
	Dataset string
	Message string
	Warning bool
}

// CollectingReporter keeps diagnostics in memory. It is safe for concurrent
// use by ValidateAll.
type CollectingReporter struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (r *CollectingReporter) DatasetError(name, msg string) {
	r.add(Diagnostic{Dataset: name, Message: msg})
}

func (r *CollectingReporter) DatasetWarning(name, msg string) {
	r.add(Diagnostic{Dataset: name, Message: msg, Warning: true})
}

func (r *CollectingReporter) add(d Diagnostic) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

// Diagnostics returns a copy of everything reported so far
func (r *CollectingReporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}
