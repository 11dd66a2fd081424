// Package cli implements the strata command-line interface.
//
// Commands operate either on a local values directory or, with --server,
// against a running strata server through the adapter package.
package cli
