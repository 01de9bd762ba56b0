// Package reader turns a generic document tree into the typed pipeline
// object graph. One reader exists per node kind; each validates the node's
// field set against a closed schema first and only then constructs objects,
// so a malformed document fails before anything runs.
//
// Task nodes dispatch on their "type" discriminator through a registry of
// reader constructors; nodes without a type are shell tasks. The docker
// task readers additionally require a reachable container runtime at read
// time; a missing runtime is a document error, not a run-time surprise.
package reader
