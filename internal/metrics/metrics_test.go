package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.BordereauxGeneres.WithLabelValues("success").Inc()
	m.BordereauxGeneres.WithLabelValues("success").Inc()
	m.ReprisesDeclenchees.WithLabelValues("impaye").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BordereauxGeneres.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReprisesDeclenchees.WithLabelValues("impaye")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["commission_bordereaux_generated_total"])
	assert.True(t, names["commission_reprises_triggered_total"])
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
