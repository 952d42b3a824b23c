// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields so individual
// tests can override behavior, with a simple in-memory default when the
// field is left nil.
package mocks
