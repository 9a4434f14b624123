package render_test

import (
	"crypto/md5" //nolint:gosec // test vector
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/engine/render"
)

func TestDigest(t *testing.T) {
	md5Hello := md5.Sum([]byte("hello")) //nolint:gosec // test vector
	sha256Hello := sha256.Sum256([]byte("hello"))

	tests := []struct {
		name   string
		raw    []byte
		format domain.OutputFormat
		want   string
	}{
		{name: "md5 hex", raw: md5Hello[:], format: domain.FormatHex, want: "5d41402abc4b2a76b9719d911017c592"},
		{name: "sha256 base64", raw: sha256Hello[:], format: domain.FormatBase64, want: "LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ="},
		{name: "binary passthrough", raw: []byte{0x00, 0xff, 0x10}, format: domain.FormatBinary, want: "\x00\xff\x10"},
		{name: "empty hex", raw: nil, format: domain.FormatHex, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.Digest(tt.raw, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every format must decode back to the same digest bytes.
func TestDigest_FormatsAgree(t *testing.T) {
	raw := sha256.Sum256([]byte("format equivalence"))

	h, err := render.Digest(raw[:], domain.FormatHex)
	require.NoError(t, err)
	b, err := render.Digest(raw[:], domain.FormatBase64)
	require.NoError(t, err)
	bin, err := render.Digest(raw[:], domain.FormatBinary)
	require.NoError(t, err)

	fromHex, err := hex.DecodeString(h)
	require.NoError(t, err)
	fromBase64, err := base64.StdEncoding.DecodeString(b)
	require.NoError(t, err)

	assert.Equal(t, raw[:], fromHex)
	assert.Equal(t, raw[:], fromBase64)
	assert.Equal(t, raw[:], []byte(bin))
}

func TestDigest_Unsupported(t *testing.T) {
	_, err := render.Digest([]byte("x"), domain.OutputFormat("octal"))
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		v    float64
		base domain.NumberBase
		want string
	}{
		{42, domain.BaseDecimal, "42"},
		{3.25, domain.BaseDecimal, "3.25"},
		{-7, domain.BaseDecimal, "-7"},
		{0.1, domain.BaseBinary, "0.0001100110011001100110011001100110011001100110011001101"},
		{0.1, domain.BaseOctal, "0.0631463146314631464"},
		{0.1, domain.BaseHex, "0.1999999999999a"},
		{255.5, domain.BaseHex, "ff.8"},
		{-10, domain.BaseBinary, "-1010"},
		{8, domain.BaseOctal, "10"},
		{1e20, domain.BaseHex, "56bc75e2d63100000"},
		{0, domain.BaseHex, "0"},
		{42, domain.BaseBase64, "NDI="},
		{0.5, domain.BaseBase64, "MC41"},
	}

	for _, tt := range tests {
		t.Run(tt.base.String()+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Number(tt.v, tt.base))
		})
	}
}
