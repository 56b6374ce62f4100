// Package store holds the latest form snapshot with pub/sub for renderers.
//
// This package is internal to pullbadge. The form controller publishes a
// [Snapshot] after every change; renderers subscribe and redraw.
//
// The main components are:
//
//   - [Store]: Interface defining storage and subscription operations
//   - [MemoryStore]: In-memory implementation of Store with pub/sub
//   - [Snapshot]: Storage representation of a form's visible state
//
// The store is safe for concurrent access. Subscribers receive updates via
// buffered channels with non-blocking sends; a slow subscriber misses
// updates rather than blocking the form.
package store
