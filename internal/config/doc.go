// Package config manages user-level settings stored at ~/.svk-setup/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the vcpkg clone URL and the default setup mode. Every key can also be set
// through an SVK_-prefixed environment variable.
package config
