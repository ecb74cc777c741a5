package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopology() *Config {
	return &Config{Probe: ProbeConfig{Service: []Service{
		{
			ID:   "web",
			Node: []Node{{ID: "router", Mode: NodeModePoll}},
			Group: []Group{
				{ID: "eu", Node: []Node{{ID: "router", Mode: NodeModePush}, {ID: "api"}}},
				{ID: "us", Node: []Node{{ID: "api"}}},
			},
		},
		{ID: "db"},
	}}}
}

func TestConfig_Stats(t *testing.T) {
	t.Parallel()

	stats := testTopology().Stats()

	assert.Equal(t, 2, stats.Services)
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 1, stats.ServiceNodes)
	assert.Equal(t, 3, stats.GroupNodes)
	assert.Equal(t, 4, stats.Nodes())

	var nilConfig *Config
	assert.Equal(t, Stats{}, nilConfig.Stats())
}

func TestProbeConfig_FindService(t *testing.T) {
	t.Parallel()

	cfg := testTopology()

	svc, ok := cfg.Probe.FindService("db")
	require.True(t, ok)
	assert.Same(t, &cfg.Probe.Service[1], svc)

	_, ok = cfg.Probe.FindService("cache")
	assert.False(t, ok)
}

func TestService_FindNodeAndGroup(t *testing.T) {
	t.Parallel()

	cfg := testTopology()
	web := &cfg.Probe.Service[0]

	node, ok := web.FindNode("router")
	require.True(t, ok)
	assert.Equal(t, NodeModePoll, node.Mode)

	// Grouped nodes are a separate scope.
	_, ok = web.FindNode("api")
	assert.False(t, ok)

	group, ok := web.FindGroup("eu")
	require.True(t, ok)

	grouped, ok := group.FindNode("router")
	require.True(t, ok)
	assert.Equal(t, NodeModePush, grouped.Mode)

	_, ok = group.FindNode("missing")
	assert.False(t, ok)

	_, ok = web.FindGroup("asia")
	assert.False(t, ok)
}
