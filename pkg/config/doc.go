// Package config resolves the per-occurrence glossary configuration.
//
// Configuration comes in layers. Library defaults are embedded TOML, a
// project may override them with _glossary.toml or GLOSSARY_* environment
// variables, documents override them with a `glossary` metadata block, and
// every shortcode can override all of those with named options. Each layer
// is an Options value with optional fields; Merge applies them in order.
package config
