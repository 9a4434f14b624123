package domain

import "strings"

type inputKind uint8

const (
	inputAbsent inputKind = iota
	inputText
	inputTokens
)

// Input is the positional text of a command. It is either a single text or a
// sequence of tokens, decided once where the command line is parsed.
// The zero value means no positional text was given.
type Input struct {
	kind   inputKind
	text   string
	tokens []string
}

// TextInput returns an Input holding a single text.
func TextInput(text string) Input {
	return Input{kind: inputText, text: text}
}

// TokensInput returns an Input holding positional tokens.
// An empty token list yields the absent Input.
func TokensInput(tokens []string) Input {
	if len(tokens) == 0 {
		return Input{}
	}
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return Input{kind: inputTokens, tokens: cp}
}

// Present reports whether positional text was supplied.
// A single empty text counts as absent; tokens count as present even when
// they join to an empty string.
func (i Input) Present() bool {
	switch i.kind {
	case inputText:
		return i.text != ""
	case inputTokens:
		return len(i.tokens) > 0
	default:
		return false
	}
}

// String returns the text, or the tokens joined with a single space.
func (i Input) String() string {
	switch i.kind {
	case inputText:
		return i.text
	case inputTokens:
		return strings.Join(i.tokens, " ")
	default:
		return ""
	}
}

// InputSpec describes every source the text to hash may come from.
type InputSpec struct {
	// Input is the positional text.
	Input Input
	// File is the path of a file whose contents are hashed.
	File string
	// ForcePrompt skips every other source and prompts interactively.
	ForcePrompt bool
	// Secret hides typed characters when prompting.
	Secret bool
}
