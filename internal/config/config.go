// Package config loads the settings of the treecheck soak harness.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Tree forms exercised by the soak harness.
const (
	FormBalance = "balance"
	FormHeight  = "height"
	FormBST     = "bst"
)

// Default values.
const (
	DefaultSeed        = 1
	DefaultOperations  = 100_000
	DefaultKeySpace    = 4096
	DefaultRemoveRatio = 0.4
	DefaultCheckEvery  = 1000
)

// DefaultForms lists the forms exercised when none are configured.
var DefaultForms = []string{FormBalance, FormHeight, FormBST}

// Sentinel errors returned by Validate.
var (
	ErrInvalidOperations  = errors.New("operations must be positive")
	ErrInvalidKeySpace    = errors.New("key_space must be positive")
	ErrInvalidRemoveRatio = errors.New("remove_ratio must be within [0, 1]")
	ErrInvalidCheckEvery  = errors.New("check_every must not be negative")
	ErrUnknownForm        = errors.New("unknown tree form")
	ErrNoForms            = errors.New("at least one tree form is required")
)

// Config holds the settings of a soak run.
type Config struct {
	Seed        int64    `mapstructure:"seed"         yaml:"seed"`
	Operations  int      `mapstructure:"operations"   yaml:"operations"`
	KeySpace    int      `mapstructure:"key_space"    yaml:"key_space"`
	RemoveRatio float64  `mapstructure:"remove_ratio" yaml:"remove_ratio"`
	CheckEvery  int      `mapstructure:"check_every"  yaml:"check_every"`
	Forms       []string `mapstructure:"forms"        yaml:"forms"`
}

// Validate checks that the configuration can drive a soak run.
func (c *Config) Validate() error {
	if c.Operations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOperations, c.Operations)
	}
	if c.KeySpace <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKeySpace, c.KeySpace)
	}
	if c.RemoveRatio < 0 || c.RemoveRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidRemoveRatio, c.RemoveRatio)
	}
	if c.CheckEvery < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCheckEvery, c.CheckEvery)
	}
	if len(c.Forms) == 0 {
		return ErrNoForms
	}
	for _, form := range c.Forms {
		if !slices.Contains(DefaultForms, form) {
			return fmt.Errorf("%w: %q", ErrUnknownForm, form)
		}
	}
	return nil
}
