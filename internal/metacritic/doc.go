// Package metacritic provides a minimal JSON client for the Metacritic
// backend: a free-text title search and a per-slug score detail fetch.
//
// The client never retries. Failures split into two classes surfaced as
// sentinel errors: ErrTransport for connection, TLS, timeout, and non-200
// responses, and ErrDecode for bodies that are not valid JSON. Callers
// classify with errors.Is. Response payloads decode upfront into the typed
// schemas in this package; missing optional fields stay zero-valued and are
// the caller's business to interpret.
package metacritic
