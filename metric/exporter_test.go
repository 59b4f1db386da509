package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/histkit/histogram-go-lib/hist"
)

func TestSource(t *testing.T) {

	src := hist.NewLocked[string, uint64]()
	src.BumpBy("a", 3)
	src.BumpBy("b", 6)

	entries, total := Source(src, nil).Export()
	require.Equal(t, 9.0, total)
	require.Equal(t, []Entry{{"b", 6}, {"a", 3}}, entries)
}

func TestSourceFormat(t *testing.T) {

	src := hist.NewLocked[int, float64]()
	src.BumpBy(200, 1.5)

	entries, total := Source(src, func(label int) string {
		return "code-" + string(rune('0'+label/100))
	}).Export()

	require.Equal(t, 1.5, total)
	require.Equal(t, []Entry{{"code-2", 1.5}}, entries)
}

func TestExporter(t *testing.T) {

	src := hist.NewLocked[string, uint64]()
	src.BumpBy("a", 3)
	src.BumpBy("b", 6)

	registry := prometheus.NewRegistry()
	e, err := NewWithRegisterer("test", "labels", Source(src, nil), registry)
	require.NoError(t, err)

	// double registration is not an error
	_, err = NewWithRegisterer("test", "labels", Source(src, nil), registry)
	require.NoError(t, err)

	e.Update()
	require.Equal(t, map[string]float64{"a": 3, "b": 6}, gatherGauges(t, registry, "test_labels_measure"))
	require.Equal(t, 9.0, gatherValue(t, registry, "test_labels_total_measure"))

	// stale labels are dropped on the next update
	src.BumpBy("a", 1)
	e.Update()
	require.Equal(t, map[string]float64{"a": 4, "b": 6}, gatherGauges(t, registry, "test_labels_measure"))
	require.Equal(t, 10.0, gatherValue(t, registry, "test_labels_total_measure"))
}

func gatherFamily(t *testing.T, registry *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}

	t.Fatalf("metric family not found: %s", name)
	return nil
}

func gatherGauges(t *testing.T, registry *prometheus.Registry, name string) map[string]float64 {
	t.Helper()

	res := make(map[string]float64)
	for _, m := range gatherFamily(t, registry, name).GetMetric() {
		require.Len(t, m.GetLabel(), 1)
		res[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}
	return res
}

func gatherValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	metrics := gatherFamily(t, registry, name).GetMetric()
	require.Len(t, metrics, 1)
	return metrics[0].GetGauge().GetValue()
}
