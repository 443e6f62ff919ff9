// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields so tests can
// override individual behaviors, with an in-memory default where one makes
// sense.
package mocks
