// Package salt generates short random salts to append to digest inputs.
//
// Salts come from a fixed 79-character alphabet and are sampled without
// replacement within a single draw, so no character repeats inside one salt.
// The generator uses the general-purpose PRNG (math/rand/v2), not
// crypto/rand; do not use these salts for key derivation.
package salt

import "math/rand/v2"

// Alphabet is the fixed salt alphabet: lowercase letters except 'm',
// uppercase letters except 'I', digits, and symbols.
const Alphabet = "abcdefghijklnopqrstuvwxyz" +
	"ABCDEFGHJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}~"

// Length is the number of characters in a generated salt.
const Length = 14

// Generator draws fixed-length salts from Alphabet.
type Generator struct{}

// NewGenerator returns a salt Generator. It holds no state; draws are
// independent and safe for concurrent use.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a new 14-character salt in draw order.
func (*Generator) Generate() string {
	buf := make([]byte, 0, Length)
	for _, pos := range rand.Perm(len(Alphabet))[:Length] {
		buf = append(buf, Alphabet[pos])
	}

	return string(buf)
}
