// Package source loads configuration layers for the resolver.
//
// Two implementations are provided: a filesystem source reading a values
// directory in the conventional layout (values.yaml base plus
// values-<environment>.yaml overlays), and an HTTP source fetching the same
// documents from a remote strata server.
package source
