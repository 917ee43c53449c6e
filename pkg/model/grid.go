package model

import "fmt"

// Grid holds the dimensions of the weekly slot space
type Grid struct {
	Terms   int `mapstructure:"Terms" env:"TERMS" envDefault:"6"`
	Days    int `mapstructure:"Days" env:"DAYS" envDefault:"5"`
	Periods int `mapstructure:"Periods" env:"PERIODS" envDefault:"4"`
}

// DefaultGrid is six terms of five days with four periods each
var DefaultGrid = Grid{Terms: 6, Days: 5, Periods: 4}

func (grid Grid) Validate() error {
	if grid.Terms < 1 || grid.Days < 1 || grid.Periods < 1 {
		return fmt.Errorf("grid dimensions must be positive: terms=%d, days=%d, periods=%d", grid.Terms, grid.Days, grid.Periods)
	}
	return nil
}

func (grid Grid) Size() int {
	return grid.Terms * grid.Days * grid.Periods
}

// TermCapacity is the number of slots each term provides
func (grid Grid) TermCapacity() int {
	return grid.Days * grid.Periods
}
