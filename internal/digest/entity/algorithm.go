package entity

import "strings"

// Algorithm enumerates the digest algorithms supported by the service.
type Algorithm int16

const (
	AlgorithmUnknown Algorithm = iota
	AlgorithmMD5
	AlgorithmSHA1
	AlgorithmSHA256
	AlgorithmSHA512
)

// String returns the canonical uppercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmMD5:
		return "MD5"
	case AlgorithmSHA1:
		return "SHA1"
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	default:
		return "UNKNOWN"
	}
}

// IsUnknown reports whether the algorithm is outside the supported set.
func (a Algorithm) IsUnknown() bool {
	return a <= AlgorithmUnknown || a > AlgorithmSHA512
}

// AlgorithmFromString parses a case-insensitive algorithm name.
func AlgorithmFromString(s string) Algorithm {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MD5":
		return AlgorithmMD5
	case "SHA1":
		return AlgorithmSHA1
	case "SHA256":
		return AlgorithmSHA256
	case "SHA512":
		return AlgorithmSHA512
	default:
		return AlgorithmUnknown
	}
}
