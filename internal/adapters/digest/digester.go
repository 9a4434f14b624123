// Package digest computes plain message digests with the standard library.
package digest

import (
	"crypto/md5"  //nolint:gosec // md5 is a user-selectable algorithm, not used for security
	"crypto/sha1" //nolint:gosec // sha1 is a user-selectable algorithm, not used for security
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
)

var _ ports.Digester = (*Digester)(nil)

// Digester implements ports.Digester for md5, sha1, sha256 and sha512.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// Digest returns the raw digest of data.
func (d *Digester) Digest(algo domain.Algorithm, data []byte) ([]byte, error) {
	var h hash.Hash
	switch algo {
	case domain.AlgorithmMD5:
		h = md5.New() //nolint:gosec // see import
	case domain.AlgorithmSHA1:
		h = sha1.New() //nolint:gosec // see import
	case domain.AlgorithmSHA256:
		h = sha256.New()
	case domain.AlgorithmSHA512:
		h = sha512.New()
	default:
		return nil, domain.Annotate(domain.ErrUnsupportedAlgorithm, "algorithm", algo.String())
	}

	// hash.Hash.Write never returns an error.
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}
