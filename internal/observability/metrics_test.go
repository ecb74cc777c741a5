package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadMetrics(t *testing.T) {
	t.Parallel()

	m := NewLoadMetrics("")
	require.NotNil(t, m)
	assert.NotNil(t, m.Registry())
}

func TestLoadMetrics_RecordLoad(t *testing.T) {
	t.Parallel()

	m := NewLoadMetrics("test")

	m.RecordLoad(LoadResultSuccess, 2*time.Millisecond)
	m.RecordLoad(LoadResultParseError, time.Millisecond)
	m.RecordLoad(LoadResultParseError, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.loadsTotal.WithLabelValues(LoadResultSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.loadsTotal.WithLabelValues(LoadResultParseError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.loadDuration))
}

func TestLoadMetrics_SetTopology(t *testing.T) {
	t.Parallel()

	m := NewLoadMetrics("test")

	m.SetTopology(2, 3, 7)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.entities.WithLabelValues("service")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.entities.WithLabelValues("group")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.entities.WithLabelValues("node")))
}
