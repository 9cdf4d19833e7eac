// Package store defines the persistence interfaces and shared database
// abstractions used by the Unitip API. Implementations live under
// internal/platform; services and handlers depend only on these
// interfaces so storage can be swapped or mocked in tests.
package store
