package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	valuationsCalculated  *prometheus.CounterVec
	valuationDuration     prometheus.Histogram
	cashflowAggregations  *prometheus.CounterVec
	aggregationDuration   prometheus.Histogram
	occurrencesExpanded   prometheus.Counter
	goalContributions     prometheus.Counter
	portfolioCurrentValue *prometheus.GaugeVec
	quoteUpdatesTotal     *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		valuationsCalculated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valuations_calculated_total",
				Help: "Total number of investment valuations calculated",
			},
			[]string{"asset_type"},
		),
		valuationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "valuation_duration_milliseconds",
				Help:    "Portfolio valuation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cashflowAggregations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_aggregations_total",
				Help: "Total number of cash flow aggregations",
			},
			[]string{"scope"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cashflow_aggregation_duration_milliseconds",
				Help:    "Cash flow aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		occurrencesExpanded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recurring_occurrences_expanded_total",
				Help: "Total number of recurring occurrences materialized",
			},
		),
		goalContributions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goal_contributions_total",
				Help: "Total number of goal contributions recorded",
			},
		),
		portfolioCurrentValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "portfolio_current_value",
				Help: "Last computed portfolio value in base currency units",
			},
			[]string{"user_id"},
		),
		quoteUpdatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_updates_total",
				Help: "Total number of manual quote updates",
			},
			[]string{"symbol"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "valuations_calculated":
		m.valuationsCalculated.WithLabelValues(tags["asset_type"]).Inc()
	case "cashflow_aggregations":
		m.cashflowAggregations.WithLabelValues(tags["scope"]).Inc()
	case "occurrences_expanded":
		m.occurrencesExpanded.Inc()
	case "goal_contributions":
		m.goalContributions.Inc()
	case "quote_updates":
		if symbol := tags["symbol"]; symbol != "" {
			m.quoteUpdatesTotal.WithLabelValues(symbol).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "portfolio_valuation":
		m.valuationDuration.Observe(float64(duration.Milliseconds()))
	case "cashflow_aggregation":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "portfolio_current_value":
		if userID := tags["user_id"]; userID != "" {
			m.portfolioCurrentValue.WithLabelValues(userID).Set(value)
		}
	}
}
