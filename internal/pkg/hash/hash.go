package hash

// Hash is the contract for one-shot string hashing.
type Hash interface {
	// Hash takes a plaintext string and returns its hashed representation.
	Hash(str string) ([]byte, error)

	// Verify checks if the given plaintext string matches the hashed value.
	Verify(hashed, str string) bool
}
