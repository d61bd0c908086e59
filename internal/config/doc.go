// Package config loads, merges, and validates the application configuration.
//
// Values are collected from environment variables, command-line flags, and
// an optional JSON file, merged in that order so that later sources fill in
// fields earlier ones left empty. The result is a single value object that
// is constructed once at startup and injected into every component, keeping
// secrets out of business logic and making components testable with fixed
// fake configuration.
package config
