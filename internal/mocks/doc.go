// Package mocks provides in-memory implementations of the store interfaces
// for testing services and handlers without a database. The fakes keep
// entities in maps guarded by a mutex and assign IDs from a counter, so
// tests can run create/read round-trips concurrently.
package mocks
