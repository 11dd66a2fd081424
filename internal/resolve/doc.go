// Package resolve turns a base document and an ordered list of environment
// overlays into a [models.ResolvedConfig]: defaults are applied at the lowest
// precedence, overlays are merged in order, the shared global section is
// injected into every service subtree, and required paths are enforced
// before the result is fingerprinted and returned.
//
// Resolution is deterministic and side-effect free; a Resolver holds only
// immutable options and is safe for concurrent use.
package resolve
