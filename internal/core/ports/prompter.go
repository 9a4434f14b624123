package ports

import "context"

// Prompter defines the interface for reading a line of input from the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Prompt shows marker and blocks until a line is entered, input ends or ctx
	// is cancelled. When secret is set, typed characters are not echoed.
	// End of input yields an empty string.
	Prompt(ctx context.Context, marker string, secret bool) (string, error)
}
