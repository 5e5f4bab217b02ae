// Package config holds run configuration for rstcheck.
//
// Configuration comes from two places: CLI flags (which populate Config)
// and an optional YAML file (.rstcheck.yaml) that can set default modes
// and register extra language checkers. Flags always win over the file.
//
// Design decision: Configuration is passed through the application via
// dependency injection rather than global state, so tests can construct
// arbitrary configurations without touching the environment.
package config
