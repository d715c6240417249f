package ai

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/logger"
	"ai_site_builder/internal/metrics"
	"ai_site_builder/internal/sanitize"
	"ai_site_builder/internal/utils"
)

var errEmptyEnhancement = errors.New("model returned empty section")

// EnhanceSection revises one section's markup following instructions. On
// any failure the original content is returned unchanged.
func (g *Generator) EnhanceSection(ctx context.Context, content, instructions string) (enhanced string) {
	log := logger.FromContext(ctx, g.log).With(zap.String("provider", g.Provider()))

	defer func() {
		if r := recover(); r != nil {
			log.Error("section enhancement panicked", zap.Any("panic", r))
			metrics.SectionEnhancements.WithLabelValues(metrics.OutcomeUnchanged).Inc()
			enhanced = content
		}
	}()

	raw, err := g.complete(ctx, prompts.GetSectionEnhancementPrompt(content, instructions))
	if err == nil && strings.TrimSpace(raw) == "" {
		err = errEmptyEnhancement
	}
	if err != nil {
		log.Warn("section enhancement failed, keeping original content",
			zap.Error(err),
			zap.Bool("transient", utils.IsTransient(err)),
		)
		metrics.SectionEnhancements.WithLabelValues(metrics.OutcomeUnchanged).Inc()
		return content
	}

	enhanced = strings.TrimSpace(raw)
	if g.sanitizeEnhanced {
		var st sanitize.Stats
		enhanced, st = sanitize.Report(enhanced)
		recordRewrites(st)
	}

	metrics.SectionEnhancements.WithLabelValues(metrics.OutcomeEnhanced).Inc()
	log.Debug("section enhanced", zap.Int("before", len(content)), zap.Int("after", len(enhanced)))
	return enhanced
}
