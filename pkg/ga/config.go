package ga

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	PopSize        int     `mapstructure:"PopSize" env:"POP_SIZE" envDefault:"50" validate:"gte=1"`
	Generations    int     `mapstructure:"Generations" env:"GENERATIONS" envDefault:"100" validate:"gte=0"`
	UseTournament  bool    `mapstructure:"UseTournament" env:"USE_TOURNAMENT" envDefault:"true"`
	CrossoverProb  float64 `mapstructure:"CrossoverProb" env:"CROSSOVER_PROB" envDefault:"0.9" validate:"gte=0,lte=1"`
	ElitismSize    int     `mapstructure:"ElitismSize" env:"ELITISM_SIZE" envDefault:"2" validate:"gte=0"`
	MutationRate   float64 `mapstructure:"MutationRate" env:"MUTATION_RATE" envDefault:"0.1" validate:"gte=0,lte=1"`
	TournamentSize int     `mapstructure:"TournamentSize" env:"TOURNAMENT_SIZE" envDefault:"3" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns the reference parameters
func DefaultConfig() Config {
	return Config{
		PopSize:        50,
		Generations:    100,
		UseTournament:  true,
		CrossoverProb:  0.9,
		ElitismSize:    2,
		MutationRate:   0.1,
		TournamentSize: 3,
	}
}

// Validate rejects parameters the engine cannot run with.
// An elitism size at or above the population size is accepted and freezes the population.
func (config Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}
	if config.UseTournament && (config.TournamentSize < 1 || config.TournamentSize > config.PopSize) {
		return fmt.Errorf("tournament size must be between 1 and the population size %d (got %d)", config.PopSize, config.TournamentSize)
	}
	return nil
}

// WithParameters overrides the fields of config present in parameters, as decoded from a JSON document
func (config Config) WithParameters(parameters map[string]any) (Config, error) {
	if len(parameters) == 0 {
		return config, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &config,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(parameters); err != nil {
		return Config{}, fmt.Errorf("cannot decode engine parameters: %w", err)
	}
	return config, nil
}
