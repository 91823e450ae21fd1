// SPDX-License-Identifier: MIT
package solver

import (
	"time"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "crowdtsp"

// Metrics holds the pipeline collectors.
type Metrics struct {
	RunsCompleted     prometheus.Counter
	ExpertDistance    prometheus.Histogram
	RunDuration       prometheus.Histogram
	ConsensusDistance prometheus.Gauge
	DistanceAgreement prometheus.Gauge
	PathAgreement     prometheus.Gauge
	VotingRounds      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ga_runs_completed_total",
			Help:      "Completed independent GA runs.",
		}),
		ExpertDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "expert_distance",
			Help:      "Distance of each expert tour.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ga_run_duration_seconds",
			Help:      "Wall-clock duration of one GA run.",
			Buckets:   prometheus.DefBuckets,
		}),
		ConsensusDistance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "consensus_distance",
			Help:      "Recomputed distance of the consensus tour.",
		}),
		DistanceAgreement: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "distance_agreement_ratio",
			Help:      "Share of the crowd on the modal distance.",
		}),
		PathAgreement: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "path_agreement_ratio",
			Help:      "Share of the legitimate subset that survived voting.",
		}),
		VotingRounds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "voting_rounds",
			Help:      "Positional voting rounds held.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.RunsCompleted, m.ExpertDistance, m.RunDuration,
		m.ConsensusDistance, m.DistanceAgreement, m.PathAgreement, m.VotingRounds,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observeRun records one finished GA run. Safe on a nil receiver.
func (m *Metrics) observeRun(distance float64, took time.Duration) {
	if m == nil {
		return
	}
	m.RunsCompleted.Inc()
	m.ExpertDistance.Observe(distance)
	m.RunDuration.Observe(took.Seconds())
}

// observeConsensus records the aggregation outcome. Safe on a nil receiver.
func (m *Metrics) observeConsensus(r crowd.Result) {
	if m == nil {
		return
	}
	m.ConsensusDistance.Set(r.Tour.Distance)
	m.DistanceAgreement.Set(r.DistanceAgreement)
	m.PathAgreement.Set(r.PathAgreement)
	m.VotingRounds.Set(float64(r.Rounds))
}
