package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Reference parameters", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("Degenerate but accepted parameters", func(t *testing.T) {
		config := DefaultConfig()
		config.Generations = 0
		config.ElitismSize = config.PopSize + 5
		assert.NoError(t, config.Validate())

		config = DefaultConfig()
		config.UseTournament = false
		config.TournamentSize = 0
		assert.NoError(t, config.Validate())
	})

	t.Run("Invalid parameters", func(t *testing.T) {
		mutations := []func(config *Config){
			func(config *Config) { config.PopSize = 0 },
			func(config *Config) { config.Generations = -1 },
			func(config *Config) { config.CrossoverProb = 1.5 },
			func(config *Config) { config.MutationRate = -0.1 },
			func(config *Config) { config.ElitismSize = -1 },
			func(config *Config) { config.TournamentSize = 0 },
			func(config *Config) { config.TournamentSize = config.PopSize + 1 },
		}
		for _, mutation := range mutations {
			config := DefaultConfig()
			mutation(&config)
			assert.Error(t, config.Validate())
		}
	})
}

func TestConfigWithParameters(t *testing.T) {
	t.Run("Overrides present fields only", func(t *testing.T) {
		//** Arrange
		parameters := map[string]any{
			"PopSize":       float64(20), // JSON numbers decode as float64
			"UseTournament": false,
			"MutationRate":  0.25,
		}

		//** Act
		config, err := DefaultConfig().WithParameters(parameters)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 20, config.PopSize)
		assert.False(t, config.UseTournament)
		assert.Equal(t, 0.25, config.MutationRate)
		assert.Equal(t, 100, config.Generations)
		assert.Equal(t, 0.9, config.CrossoverProb)
	})

	t.Run("Empty parameters", func(t *testing.T) {
		config, err := DefaultConfig().WithParameters(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("Unknown parameter", func(t *testing.T) {
		_, err := DefaultConfig().WithParameters(map[string]any{"PopulationSize": 10})
		assert.Error(t, err)
	})
}
