// Package config loads the optional application configuration from a YAML
// file. Everything has a sensible default; a missing file is not an error.
package config
