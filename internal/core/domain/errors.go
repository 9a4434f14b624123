package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInput is returned when input resolution produced an empty text.
	ErrNoInput = zerr.New("no input was provided")

	// ErrFileReadFailed is returned when the input file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read input file")

	// ErrFileDecodeFailed is returned when the input file is not valid UTF-8 text.
	ErrFileDecodeFailed = zerr.New("input file is not valid UTF-8 text")

	// ErrPromptFailed is returned when the interactive prompt cannot be read.
	ErrPromptFailed = zerr.New("failed to read input from prompt")

	// ErrPromptInterrupted is returned when the prompt is aborted by cancellation.
	ErrPromptInterrupted = zerr.New("prompt was interrupted")

	// ErrUnsupportedAlgorithm is returned for an algorithm outside the supported set.
	ErrUnsupportedAlgorithm = zerr.New("unsupported algorithm, expected one of md5, sha1, sha256, sha512, bcrypt")

	// ErrUnsupportedFormat is returned for an output format outside binary, hex and base64.
	ErrUnsupportedFormat = zerr.New("unsupported output format, expected one of binary, hex, base64")

	// ErrUnsupportedBase is returned for a number base outside the supported set.
	ErrUnsupportedBase = zerr.New("unsupported number format, expected one of binary, octal, decimal, hex, base64")

	// ErrRoundsNotInteger is returned when the bcrypt rounds value is not an integer.
	ErrRoundsNotInteger = zerr.New("bcrypt expects a valid integer number for rounds")

	// ErrRoundsNotPositive is returned when the bcrypt rounds value is below 1.
	ErrRoundsNotPositive = zerr.New("bcrypt expects a valid positive number for rounds")

	// ErrRoundsTooHigh is returned when the bcrypt rounds value is above 20.
	ErrRoundsTooHigh = zerr.New("bcrypt hashing only supports up to 20 rounds, for your own sanity")

	// ErrDigestFailed is returned when the underlying digest computation fails.
	ErrDigestFailed = zerr.New("failed to compute digest")

	// ErrInvalidNumber is returned when a range bound cannot be parsed as a finite number.
	ErrInvalidNumber = zerr.New("supplied value could not be parsed as a number")

	// ErrInvalidRepeat is returned when the repeat count is below 1.
	ErrInvalidRepeat = zerr.New("repeat count must be a positive integer")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected one of debug, info, warn, error")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the settings file holds invalid values.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrInvalidUsage wraps flag and argument errors raised before a command runs.
	ErrInvalidUsage = zerr.New("invalid usage")

	// ErrRequestFailed is returned by a command whose failure has already been reported.
	ErrRequestFailed = zerr.New("request failed")
)

// Annotate attaches a key-value pair to err without replacing it, so that
// errors.Is still matches err after the metadata is added.
func Annotate(err error, key string, value any) error {
	if err == nil {
		return nil
	}
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
