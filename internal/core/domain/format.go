package domain

// OutputFormat is the textual rendering of a digest.
type OutputFormat string

const (
	// FormatBinary writes the raw digest bytes unchanged.
	FormatBinary OutputFormat = "binary"
	// FormatHex writes lowercase hexadecimal, two characters per byte.
	FormatHex OutputFormat = "hex"
	// FormatBase64 writes standard padded base64.
	FormatBase64 OutputFormat = "base64"

	// DefaultOutputFormat is used when no format is requested.
	DefaultOutputFormat = FormatHex
)

// OutputFormats returns every accepted output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatBinary, FormatHex, FormatBase64}
}

// ParseOutputFormat converts a name into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(name); f {
	case FormatBinary, FormatHex, FormatBase64:
		return f, nil
	default:
		return "", Annotate(ErrUnsupportedFormat, "format", name)
	}
}

func (f OutputFormat) String() string {
	return string(f)
}

// NumberBase is the textual rendering of a generated random number.
type NumberBase string

const (
	// BaseBinary renders numbers in base 2.
	BaseBinary NumberBase = "binary"
	// BaseOctal renders numbers in base 8.
	BaseOctal NumberBase = "octal"
	// BaseDecimal renders numbers in base 10.
	BaseDecimal NumberBase = "decimal"
	// BaseHex renders numbers in base 16.
	BaseHex NumberBase = "hex"
	// BaseBase64 renders the decimal text encoded as base64.
	BaseBase64 NumberBase = "base64"

	// DefaultNumberBase is used when no base is requested.
	DefaultNumberBase = BaseDecimal
)

// NumberBases returns every accepted number base.
func NumberBases() []NumberBase {
	return []NumberBase{BaseBinary, BaseOctal, BaseDecimal, BaseHex, BaseBase64}
}

// ParseNumberBase converts a name into a NumberBase.
func ParseNumberBase(name string) (NumberBase, error) {
	switch b := NumberBase(name); b {
	case BaseBinary, BaseOctal, BaseDecimal, BaseHex, BaseBase64:
		return b, nil
	default:
		return "", Annotate(ErrUnsupportedBase, "format", name)
	}
}

// Radix returns the numeric radix for positional bases, or 0 for base64.
func (b NumberBase) Radix() int {
	switch b {
	case BaseBinary:
		return 2
	case BaseOctal:
		return 8
	case BaseDecimal:
		return 10
	case BaseHex:
		return 16
	default:
		return 0
	}
}

func (b NumberBase) String() string {
	return string(b)
}
