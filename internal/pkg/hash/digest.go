package hash

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	stdhash "hash"
	"strings"
)

// Digest implements the Hash interface for plain (unkeyed) digests rendered
// as uppercase hex. MD5 and SHA-1 are kept for checksum interoperability,
// not for security-sensitive use.
type Digest struct {
	algo func() stdhash.Hash
}

// NewMD5 returns an MD5-backed Digest (32 hex chars).
func NewMD5() *Digest {
	return &Digest{algo: md5.New}
}

// NewSHA1 returns a SHA-1-backed Digest (40 hex chars).
func NewSHA1() *Digest {
	return &Digest{algo: sha1.New}
}

// NewSHA256 returns a SHA-256-backed Digest (64 hex chars).
func NewSHA256() *Digest {
	return &Digest{algo: sha256.New}
}

// NewSHA512 returns a SHA-512-backed Digest (128 hex chars).
func NewSHA512() *Digest {
	return &Digest{algo: sha512.New}
}

// Hash returns the uppercase hex digest of str, bytes in digest order.
func (d *Digest) Hash(str string) ([]byte, error) {
	h := d.algo()
	//nolint:errcheck,gosec // hash.Hash writes never fail
	h.Write([]byte(str))
	sum := h.Sum(nil)

	const hexUpper = "0123456789ABCDEF"
	out := make([]byte, 0, len(sum)*2)
	for _, b := range sum {
		out = append(out, hexUpper[b>>4], hexUpper[b&0x0f])
	}

	return out, nil
}

// Verify checks whether the plaintext string matches the given hex digest.
// The comparison is case-insensitive on the hex representation.
func (d *Digest) Verify(hashed, str string) bool {
	expected, err := d.Hash(str)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(bytes.ToUpper([]byte(strings.TrimSpace(hashed))), expected) == 1
}
