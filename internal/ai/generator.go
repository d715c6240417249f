package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ai_site_builder/internal/llm"
	"ai_site_builder/internal/metrics"
	"ai_site_builder/internal/sanitize"
)

// GeneratorConfig tunes a Generator.
type GeneratorConfig struct {
	// Timeout bounds each completion call. Zero leaves the call unbounded.
	Timeout time.Duration

	// SanitizeEnhanced runs enhanced section markup through the sanitizer.
	SanitizeEnhanced bool
}

// Generator turns builder requests into websites using a text-completion
// provider. It holds no per-request state and is safe for concurrent use.
type Generator struct {
	completer        llm.Completer
	log              *zap.Logger
	timeout          time.Duration
	sanitizeEnhanced bool
}

// NewGenerator wires a Completer into a Generator. completer may be nil.
func NewGenerator(completer llm.Completer, cfg GeneratorConfig, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		completer:        completer,
		log:              log,
		timeout:          cfg.Timeout,
		sanitizeEnhanced: cfg.SanitizeEnhanced,
	}
}

// Provider returns the name of the configured completion provider.
func (g *Generator) Provider() string {
	if g.completer == nil {
		return "none"
	}
	return g.completer.Name()
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.completer == nil {
		return "", llm.ErrConfigurationMissing
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.completer.Complete(ctx, prompt)
}

func recordRewrites(st sanitize.Stats) {
	if st.Images > 0 {
		metrics.SanitizerRewrites.WithLabelValues(metrics.RuleImage).Add(float64(st.Images))
	}
	if st.Attributes > 0 {
		metrics.SanitizerRewrites.WithLabelValues(metrics.RuleAttribute).Add(float64(st.Attributes))
	}
	if st.Backgrounds > 0 {
		metrics.SanitizerRewrites.WithLabelValues(metrics.RuleBackground).Add(float64(st.Backgrounds))
	}
}
