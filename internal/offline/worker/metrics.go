package worker

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics records worker activity. A nil *Metrics records nothing.
type Metrics struct {
	fetches        *prom.CounterVec
	installs       *prom.CounterVec
	activations    *prom.CounterVec
	bucketsDeleted prom.Counter
	activeVersion  *prom.GaugeVec
}

// NewMetrics builds the worker metrics and registers them on reg.
func NewMetrics(reg prom.Registerer) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		fetches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "oneday",
			Subsystem: "offline",
			Name:      "fetches_total",
			Help:      "Intercepted requests by request class and response source",
		}, []string{"class", "source"}),
		installs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "oneday",
			Subsystem: "offline",
			Name:      "installs_total",
			Help:      "Install attempts by result",
		}, []string{"result"}),
		activations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "oneday",
			Subsystem: "offline",
			Name:      "activations_total",
			Help:      "Activation attempts by result",
		}, []string{"result"}),
		bucketsDeleted: prom.NewCounter(prom.CounterOpts{
			Namespace: "oneday",
			Subsystem: "offline",
			Name:      "buckets_deleted_total",
			Help:      "Outdated cache buckets removed on activation",
		}),
		activeVersion: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "oneday",
			Subsystem: "offline",
			Name:      "active_version",
			Help:      "1 for the cache name of the worker in control",
		}, []string{"cache"}),
	}
	reg.MustRegister(m.fetches, m.installs, m.activations, m.bucketsDeleted, m.activeVersion)
	return m
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func (m *Metrics) fetch(class Class, src Source) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(string(class), string(src)).Inc()
}

func (m *Metrics) install(err error) {
	if m == nil {
		return
	}
	m.installs.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) activate(err error) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) bucketDeleted() {
	if m == nil {
		return
	}
	m.bucketsDeleted.Inc()
}

func (m *Metrics) setActive(cacheName string) {
	if m == nil {
		return
	}
	m.activeVersion.Reset()
	m.activeVersion.WithLabelValues(cacheName).Set(1)
}
