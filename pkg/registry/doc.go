// Package registry provides the generic thread-safe registry and the term
// registry built on it.
//
// The term registry accumulates every resolved glossary term of one
// rendering run so a later glossary table can list them. It is owned by the
// run's session and passed explicitly; there is no package-level instance.
package registry
