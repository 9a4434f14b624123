package digest_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/adapters/digest"
	"go.trai.ch/equip/internal/core/domain"
)

func TestDigester_Digest(t *testing.T) {
	tests := []struct {
		algo domain.Algorithm
		data string
		want string
	}{
		{domain.AlgorithmMD5, "hello", "5d41402abc4b2a76b9719d911017c592"},
		{domain.AlgorithmMD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{domain.AlgorithmSHA1, "hello", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{domain.AlgorithmSHA256, "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{
			domain.AlgorithmSHA512, "hello",
			"9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
				"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
	}

	d := digest.NewDigester()
	for _, tt := range tests {
		t.Run(tt.algo.String()+"/"+tt.data, func(t *testing.T) {
			got, err := d.Digest(tt.algo, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestDigester_Digest_Deterministic(t *testing.T) {
	d := digest.NewDigester()
	for _, algo := range domain.DigestAlgorithms() {
		first, err := d.Digest(algo, []byte("same input"))
		require.NoError(t, err)
		second, err := d.Digest(algo, []byte("same input"))
		require.NoError(t, err)
		assert.Equal(t, first, second, algo.String())
	}
}

func TestDigester_Digest_Unsupported(t *testing.T) {
	d := digest.NewDigester()

	_, err := d.Digest(domain.AlgorithmBcrypt, []byte("pw"))
	require.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
}
