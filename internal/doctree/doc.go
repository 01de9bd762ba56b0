// Package doctree wraps a parsed YAML document into a small, format-agnostic
// node abstraction: field enumeration, scalar text access, sub-node access
// and sequence iteration.
//
// Why not decode straight into Go structs?
//
// The readers validate the *shape* of a document before constructing any
// pipeline object: every field name present on a node is checked against a
// closed schema, unknown fields are hard errors, and the model's attributes
// must keep their declaration order. A struct decode would silently drop
// unknown fields and a map decode would lose ordering. yaml.Node keeps both,
// and wrapping it here keeps every other package free of the serialization
// format.
package doctree
