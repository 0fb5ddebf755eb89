// Package config resolves the runtime settings for the workorders CLI.
//
// Settings come from four layers, highest precedence first:
//
//  1. explicit command-line flags (--env-path, --config)
//  2. an optional YAML settings file (.workorders.yaml by default)
//  3. WORKORDERS_* process environment variables
//  4. built-in defaults
//
// The dotenv file holding the API key is deliberately NOT handled here —
// that file is part of the program's core contract and is parsed by the
// envfile package at run time. This package only decides which paths,
// endpoint, and timeouts that run uses.
package config
