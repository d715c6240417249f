package ai

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/logger"
	"ai_site_builder/internal/metrics"
	"ai_site_builder/internal/types"
	"ai_site_builder/internal/utils"
)

// GenerateWebsite asks the model for a complete site. It never fails: any
// completion, parsing or runtime failure yields FallbackWebsite().
func (g *Generator) GenerateWebsite(ctx context.Context, req types.GenerationRequest) (record *types.WebsiteRecord) {
	start := time.Now()
	provider := g.Provider()
	log := logger.FromContext(ctx, g.log).With(
		zap.String("provider", provider),
		zap.String("businessType", req.BusinessType),
		zap.String("style", string(req.Style)),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("website generation panicked, serving fallback site", zap.Any("panic", r), zap.Stack("stack"))
			record = fallbackFor(metrics.ReasonPanic)
		}
		metrics.SiteGenerationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}()

	prompt := prompts.GetSiteGenerationPrompt(req)
	log.Debug("generating website", zap.Int("promptLength", len(prompt)), zap.Strings("features", req.Features))

	raw, err := g.complete(ctx, prompt)
	if err != nil {
		reason := metrics.ReasonServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			reason = metrics.ReasonTimeout
		}
		log.Warn("completion failed, serving fallback site",
			zap.Error(err),
			zap.Bool("transient", utils.IsTransient(err)),
		)
		return fallbackFor(reason)
	}

	res, err := parseWebsiteResponse(raw)
	if err != nil {
		log.Warn("model response rejected, serving fallback site",
			zap.Error(err),
			zap.Int("responseLength", len(raw)),
		)
		return fallbackFor(metrics.ReasonMalformedResponse)
	}

	recordRewrites(res.Rewrites)
	metrics.SiteGenerations.WithLabelValues(metrics.OutcomeGenerated, metrics.ReasonNone).Inc()
	log.Info("website generated",
		zap.String("title", res.Record.Title),
		zap.Int("sections", len(res.Record.Sections)),
		zap.Bool("assembledFromSections", res.Assembled),
		zap.Int("sanitizerRewrites", res.Rewrites.Total()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res.Record
}

func fallbackFor(reason string) *types.WebsiteRecord {
	metrics.SiteGenerations.WithLabelValues(metrics.OutcomeFallback, reason).Inc()
	return FallbackWebsite()
}
