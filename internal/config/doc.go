// Package config assembles the application configuration from environment
// variables, command-line flags and an optional JSON file. Later sources
// fill in only what earlier ones left zero, so the effective priority is
// env, then flags, then the JSON file.
//
// [GetStructuredConfig] builds the server configuration; [GetClientConfig]
// builds the client's.
package config
