// Package config manages user-level settings stored at ~/.pai/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the managed script directories, loads .env files into the environment, and
// validates the config file against an embedded JSON schema.
package config
