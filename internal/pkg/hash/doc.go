// Package hash provides one-shot digest primitives behind a small interface.
//
// Typical usage is hashing a short string (a password, a checksum source)
// and displaying or comparing the uppercase hex digest. One implementation
// per algorithm lives in this package behind the Hash interface.
package hash
