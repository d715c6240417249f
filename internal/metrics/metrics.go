package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"

	ReasonNone               = "none"
	ReasonServiceUnavailable = "service_unavailable"
	ReasonTimeout            = "timeout"
	ReasonMalformedResponse  = "malformed_response"
	ReasonPanic              = "panic"

	OutcomeEnhanced  = "enhanced"
	OutcomeUnchanged = "unchanged"

	RuleImage      = "image"
	RuleAttribute  = "attribute"
	RuleBackground = "background"
)

var (
	SiteGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_generations_total",
			Help: "Total number of website generations by outcome",
		},
		[]string{"outcome", "reason"},
	)

	SiteGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_generation_duration_seconds",
			Help:    "Duration of website generation in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)

	SanitizerRewrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_sanitizer_rewrites_total",
			Help: "External asset references rewritten by the sanitizer",
		},
		[]string{"rule"},
	)

	SectionEnhancements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_section_enhancements_total",
			Help: "Total number of section enhancement requests by outcome",
		},
		[]string{"outcome"},
	)
)
