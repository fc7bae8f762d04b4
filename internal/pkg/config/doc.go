// Package config provides functionality for loading and managing
// application configuration.
//
// Settings are read from a YAML file (overridable through CONFIG_PATH),
// bound onto typed settings structs and validated before anything else
// starts up.
package config
