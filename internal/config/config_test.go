package config

import (
	"testing"

	"github.com/limaJavier/gatimetabling/pkg/ga"
	"github.com/limaJavier/gatimetabling/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults match the reference parameters", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, ga.DefaultConfig(), cfg.GA)
		assert.Equal(t, model.DefaultGrid, cfg.Grid)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, uint64(0), cfg.Seed)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("GA_POP_SIZE", "80")
		t.Setenv("GA_USE_TOURNAMENT", "false")
		t.Setenv("GA_MUTATION_RATE", "0.3")
		t.Setenv("GRID_TERMS", "2")
		t.Setenv("SEED", "42")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 80, cfg.GA.PopSize)
		assert.False(t, cfg.GA.UseTournament)
		assert.Equal(t, 0.3, cfg.GA.MutationRate)
		assert.Equal(t, 2, cfg.Grid.Terms)
		assert.Equal(t, uint64(42), cfg.Seed)
	})

	t.Run("Malformed value", func(t *testing.T) {
		t.Setenv("GA_GENERATIONS", "many")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}
