// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields: set the ones the
// test cares about, leave the rest to the in-memory default behavior.
package mocks
