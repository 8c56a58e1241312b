// Package lookup implements the critic-score lookup engine.
//
// A lookup runs the two-stage disambiguation flow: search the backend for the
// free-text title, score and select the best game candidate, fetch that
// candidate's score details by slug, resolve the requested platform's
// sub-entry, and assemble an immutable Result. Successful results are held in
// a shared TTL cache keyed by (title, platform); misses are never cached.
//
// Lookup is the single host-facing boundary: transport and decode failures
// from the fetch layer are logged there and reported as a generic miss, so a
// caller only ever sees a fully populated found Result or a reasoned miss.
// The engine is safe for concurrent use, but concurrent lookups for the same
// uncached key may each perform the full two-request fetch; both converge to
// the same cached value afterward.
package lookup
