// Package api exposes the lookup engine and settings store over HTTP for
// hosts that prefer a local service to linking the engine directly.
package api
