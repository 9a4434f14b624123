// Package render turns raw results into the text printed by the commands.
package render

import (
	"encoding/base64"
	"encoding/hex"
	"math"
	"math/big"
	"strconv"
	"strings"

	"go.trai.ch/equip/internal/core/domain"
)

// Digest renders a raw digest in the requested output format.
// Binary returns the bytes unchanged.
func Digest(raw []byte, f domain.OutputFormat) (string, error) {
	switch f {
	case domain.FormatHex:
		return hex.EncodeToString(raw), nil
	case domain.FormatBase64:
		return base64.StdEncoding.EncodeToString(raw), nil
	case domain.FormatBinary:
		return string(raw), nil
	default:
		return "", domain.Annotate(domain.ErrUnsupportedFormat, "format", f.String())
	}
}

// Number renders a generated number in the requested base.
// Binary, octal and hex print the exact expansion of v, which always
// terminates because a float64 is a dyadic rational. Base64 encodes the
// decimal text.
func Number(v float64, base domain.NumberBase) string {
	if v == 0 {
		// Normalise negative zero.
		v = 0
	}

	switch base {
	case domain.BaseBase64:
		return base64.StdEncoding.EncodeToString([]byte(decimal(v)))
	case domain.BaseBinary, domain.BaseOctal, domain.BaseHex:
		return radixString(v, base.Radix())
	default:
		return decimal(v)
	}
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func radixString(v float64, radix int) string {
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}

	whole := math.Floor(v)
	frac := v - whole

	n, _ := new(big.Float).SetFloat64(whole).Int(nil)
	b.WriteString(n.Text(radix))

	if frac == 0 {
		return b.String()
	}

	b.WriteByte('.')
	for frac > 0 {
		frac *= float64(radix)
		digit := math.Floor(frac)
		frac -= digit
		b.WriteString(strconv.FormatInt(int64(digit), radix))
	}
	return b.String()
}
