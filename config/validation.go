package config

import (
	"fmt"

	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	mode, err := advice.ParseFilterMode(c.Filter.Mode)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid filter.mode").
			WithDetail("mode", c.Filter.Mode)
	}

	for _, name := range c.Filter.Initial {
		if _, err := advice.ParseCategory(name); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("invalid filter.initial category '%s'", name)).
				WithDetail("category", name)
		}
	}
	if mode == advice.FilterSingle && len(c.Filter.Initial) > 1 {
		return errors.New(errors.ErrCodeConfigValidation, "filter.initial may name at most one category in single mode").
			WithDetail("initial", c.Filter.Initial)
	}

	if c.Animation.Leave < 0 || c.Animation.Enter < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "animation durations cannot be negative")
	}

	for action, combo := range c.Keys {
		if len(combo) == 0 {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("keys.%s must list at least one key", action)).
				WithDetail("action", action)
		}
	}

	return nil
}

// InitialScope converts filter.initial into a scope. Call after Validate.
func (c *Config) InitialScope() advice.Scope {
	var cats []advice.Category
	for _, name := range c.Filter.Initial {
		if cat, err := advice.ParseCategory(name); err == nil {
			cats = append(cats, cat)
		}
	}
	return advice.ScopeOf(cats...)
}

// FilterMode returns the parsed filter mode, defaulting to single.
func (c *Config) FilterMode() advice.FilterMode {
	mode, err := advice.ParseFilterMode(c.Filter.Mode)
	if err != nil {
		return advice.FilterSingle
	}
	return mode
}
