package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcppgo/mcpp/config"
	"github.com/mcppgo/mcpp/grid"
)

func TestNew_AllocatesDistinctFreeSeeds(t *testing.T) {
	g := freeGrid(t, 4, 4)
	cfg := config.Default()
	cfg.Handler = "NoOp"

	p, err := New(g, 3, cfg)
	require.NoError(t, err)
	require.NoError(t, p.Plan())

	assert.Len(t, p.Names(), 3)
	assert.Len(t, p.Trajectories(), 3)
	seen := map[grid.Coord]bool{}
	for i := 0; i < 3; i++ {
		c := p.state.Seeds[i]
		assert.False(t, seen[c], "seeds must be distinct")
		seen[c] = true
	}
}

func TestNew_UnknownPartitionerPropagatesError(t *testing.T) {
	g := freeGrid(t, 4, 4)
	cfg := config.Default()
	cfg.MultiPlanner = "Bogus"
	_, err := New(g, 1, cfg)
	assert.ErrorIs(t, err, ErrUnknownPartitioner)
}

func TestNew_UnknownHandlerPropagatesError(t *testing.T) {
	g := freeGrid(t, 4, 4)
	cfg := config.Default()
	cfg.Handler = "Bogus"
	_, err := New(g, 1, cfg)
	assert.Error(t, err)
}

func TestContinuousPlanner_HandleNewAgent_GrowsFleet(t *testing.T) {
	g := freeGrid(t, 4, 4)
	cfg := config.Default()
	cfg.Handler = "Transfer"

	p, err := New(g, 2, cfg)
	require.NoError(t, err)
	require.NoError(t, p.Plan())

	require.NoError(t, p.HandleNewAgent("UAV-999999"))
	assert.Len(t, p.Names(), 3)
	assert.Equal(t, "UAV-999999", p.Names()[2])
}

func TestContinuousPlanner_HandleRemovedAgent_ShrinksFleet(t *testing.T) {
	g := freeGrid(t, 4, 6)
	cfg := config.Default()
	cfg.Handler = "Transfer"

	p, err := New(g, 3, cfg)
	require.NoError(t, err)
	require.NoError(t, p.Plan())

	target := p.Names()[1]
	require.NoError(t, p.HandleRemovedAgent(target))
	assert.Len(t, p.Names(), 2)
	assert.NotContains(t, p.Names(), target)
}

func TestContinuousPlanner_HandleRemovedAgent_UnknownNameIsAnError(t *testing.T) {
	g := freeGrid(t, 4, 4)
	cfg := config.Default()
	cfg.Handler = "Transfer"

	p, err := New(g, 1, cfg)
	require.NoError(t, err)
	require.NoError(t, p.Plan())

	err = p.HandleRemovedAgent("no-such-agent")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}
