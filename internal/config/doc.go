// Package config provides configuration loading, merging, and validation
// facilities for the DocVault binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, after loading a .env file when present
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
