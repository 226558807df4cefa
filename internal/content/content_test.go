package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megapayer/site/internal/scene"
)

func TestProductsHaveScenes(t *testing.T) {
	kinds := make(map[string]bool)
	for _, k := range scene.Kinds() {
		kinds[k] = true
	}
	for _, p := range Products() {
		assert.True(t, kinds[p.Kind], p.Kind)
		assert.NotEmpty(t, p.Features, p.Kind)
	}
}

func TestProductName(t *testing.T) {
	assert.Equal(t, "Megapayer DEX", ProductName("dex"))
	assert.Equal(t, "our next product", ProductName("teleporter"))
}

func TestOverall(t *testing.T) {
	assert.Equal(t, StateOperational, Overall([]ServiceStatus{{State: StateOperational}}))
	assert.Equal(t, StateMaintenance, Overall([]ServiceStatus{{State: StateOperational}, {State: StateMaintenance}}))
	assert.Equal(t, StateDegraded, Overall(Services))
}

func TestLeaderboardSorted(t *testing.T) {
	lb := Leaderboard()
	require.Len(t, lb, len(leaderboard))
	for i := 1; i < len(lb); i++ {
		assert.GreaterOrEqual(t, lb[i-1].Points, lb[i].Points)
	}
	lb[0].Points = -1
	assert.NotEqual(t, -1, Leaderboard()[0].Points)
}
