// Package model holds the plain data containers a pipeline run operates on:
// named attributes and their ordered collections, the document-scoped Model,
// task result variables, and the ephemeral per-invocation parameter and
// result values.
//
// Everything in this package is format-agnostic and free of behavior beyond
// container bookkeeping. The readers fill these values during document
// construction; the executor treats the Model as read-only and merges task
// results into the owning group's variable map.
package model
