// Package ttlcache implements a small in-memory key/value cache with
// time-bounded validity and lazy expiry.
package ttlcache
