// Package config defines the env-tagged configuration structs the server
// reads at startup with cleanenv. Each concern (database, email transport,
// application URLs, JWT) has its own struct so binaries compose only what
// they need.
package config
