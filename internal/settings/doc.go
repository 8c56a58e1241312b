// Package settings persists host-facing key/value configuration as a JSON
// document on disk. Access is guarded by an in-process mutex plus a
// cross-process file lock, and writes are atomic.
package settings
