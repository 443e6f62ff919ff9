// Package store provides abstractions for data persistence: the generic
// repository and exploration contracts implemented by the postgres platform
// package, the exploration protocol types, and the sentinel errors shared
// by all store implementations.
package store
