package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helphood/internal/db"
)

var (
	answersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helphood_chat_answers_total",
			Help: "Chat answers served by source and topic category",
		},
		[]string{"source", "category"},
	)

	fallbackReasonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helphood_fallback_reasons_total",
			Help: "Fallback answers served by reason",
		},
		[]string{"reason"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "helphood_upstream_request_duration_seconds",
			Help:    "Gemini generateContent latency by outcome",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 10, 15},
		},
		[]string{"outcome"},
	)

	upstreamUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "helphood_upstream_up",
		Help: "Whether the last Gemini reachability probe succeeded",
	})

	answerOutcomeDesc = prometheus.NewDesc(
		"helphood_answer_outcomes_total",
		"Persisted answer count by topic category and source",
		[]string{"category", "source"},
		nil,
	)
)

const (
	// collectTimeout bounds the database read done on each scrape.
	collectTimeout = 5 * time.Second
	// recordTimeout bounds each asynchronous outcome write.
	recordTimeout = 5 * time.Second
)

// OutcomeCollector is a custom Prometheus collector that reads persisted
// answer outcome counts from the database on each scrape.
type OutcomeCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *OutcomeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- answerOutcomeDesc
}

// Collect queries the database for all answer outcomes and emits them as counters.
func (c *OutcomeCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	outcomes, err := c.db.GetAllAnswerOutcomes(ctx)
	if err != nil {
		slog.Error("failed to collect answer outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			answerOutcomeDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Category,
			o.Source,
		)
	}
}

// outcomeStore is the write side of the answer outcome table.
type outcomeStore interface {
	IncrementAnswerOutcome(ctx context.Context, category, source string) error
}

// Recorder persists answer outcomes asynchronously.
type Recorder struct {
	store outcomeStore
}

var (
	recorder *Recorder
	initOnce sync.Once
)

// Init registers the collectors with the default registry. A nil database
// keeps counters in-process only. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(answersTotal, fallbackReasonsTotal, upstreamDuration, upstreamUp)
		if database != nil {
			recorder = &Recorder{store: database}
			prometheus.MustRegister(&OutcomeCollector{db: database})
		}
	})
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// RecordAnswer counts a served answer and, when a database is configured,
// asynchronously persists it.
func RecordAnswer(category, source string) {
	answersTotal.WithLabelValues(source, category).Inc()

	r := recorder
	if r == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.store.IncrementAnswerOutcome(ctx, category, source); err != nil {
			slog.Error("failed to record answer outcome", "category", category, "source", source, "error", err)
		}
	}()
}

// RecordFallbackReason counts why a fallback answer was served.
func RecordFallbackReason(reason string) {
	fallbackReasonsTotal.WithLabelValues(reason).Inc()
}

// ObserveUpstream records the latency of one Gemini call.
func ObserveUpstream(outcome string, d time.Duration) {
	upstreamDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// SetUpstreamUp records the result of a reachability probe.
func SetUpstreamUp(up bool) {
	if up {
		upstreamUp.Set(1)
		return
	}
	upstreamUp.Set(0)
}
