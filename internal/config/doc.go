// Package config provides configuration loading, merging, and validation
// facilities for the strata binaries themselves (not for the values
// documents they resolve; see internal/values for those).
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
