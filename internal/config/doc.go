// Package config loads, normalizes, and validates paperforge configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PAPERFORGE_WORKSPACE. The Config type centralizes every knob the CLI and
// the document core need: workspace location, recents cap, autosave debounce,
// default locale, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
