// Package metric publishes histogram snapshots as prometheus metrics:
// one gauge per label plus the total measure.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// An Exporter owns the prometheus collectors for one histogram
type Exporter struct {
	source   ISource
	measures *prometheus.GaugeVec
	total    prometheus.Gauge
}

// New creates an exporter and registers its collectors in the
// default prometheus registry
func New(namespace, name string, source ISource) (*Exporter, error) {
	return NewWithRegisterer(namespace, name, source, prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates an exporter with a custom registerer
func NewWithRegisterer(namespace, name string, source ISource, reg prometheus.Registerer) (*Exporter, error) {

	e := &Exporter{source: source}

	e.measures = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name + "_measure",
		Help:      "Histogram measure per label",
	}, []string{"label"})

	e.total = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name + "_total_measure",
		Help:      "Histogram total measure",
	})

	if err := processPrometheusError(reg.Register(e.measures)); err != nil {
		return nil, err
	}
	if err := processPrometheusError(reg.Register(e.total)); err != nil {
		return nil, err
	}

	return e, nil
}

// Update publishes the current histogram state
func (e *Exporter) Update() {

	entries, total := e.source.Export()

	e.measures.Reset()
	for _, entry := range entries {
		e.measures.WithLabelValues(entry.Label).Set(entry.Value)
	}
	e.total.Set(total)
}

func processPrometheusError(err error) error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case prometheus.AlreadyRegisteredError:
		return nil
	default:
		return err
	}
}
