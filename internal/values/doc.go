// Package values implements the layered configuration document model: YAML
// decoding into [models.Tree], the deep-merge of overlay layers onto a base
// layer, dotted-path lookups, and `--set` style override parsing.
//
// All functions in this package are pure: they never mutate their inputs and
// produce identical outputs for identical inputs.
package values
