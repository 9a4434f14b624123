// Package domain holds the core types of equip: the closed enumerations accepted
// on the command line, the per-invocation request values and the error sentinels.
package domain

// Algorithm names a hashing algorithm supported by the hash command.
type Algorithm string

const (
	// AlgorithmMD5 is the MD5 message digest.
	AlgorithmMD5 Algorithm = "md5"
	// AlgorithmSHA1 is the SHA-1 message digest.
	AlgorithmSHA1 Algorithm = "sha1"
	// AlgorithmSHA256 is the SHA-256 message digest.
	AlgorithmSHA256 Algorithm = "sha256"
	// AlgorithmSHA512 is the SHA-512 message digest.
	AlgorithmSHA512 Algorithm = "sha512"
	// AlgorithmBcrypt is the bcrypt password hash.
	AlgorithmBcrypt Algorithm = "bcrypt"
)

// DigestAlgorithms returns the plain digest algorithms in display order.
func DigestAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512}
}

// ParseAlgorithm converts a name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512, AlgorithmBcrypt:
		return a, nil
	default:
		return "", Annotate(ErrUnsupportedAlgorithm, "algorithm", name)
	}
}

// IsDigest reports whether the algorithm produces raw digest bytes that go
// through output formatting. Bcrypt self-encodes its result.
func (a Algorithm) IsDigest() bool {
	switch a {
	case AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return true
	default:
		return false
	}
}

func (a Algorithm) String() string {
	return string(a)
}
