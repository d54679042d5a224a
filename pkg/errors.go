package foldeq

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Kinds of parse failure. Every error returned by the parser wraps exactly
// one of them; test with errors.Is.
var (
	// ErrExpectedToken is a required '=' or ')' replaced by another rune.
	ErrExpectedToken = errors.New("expected token")
	// ErrUnexpectedCharacter is a rune that cannot start a primary.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrUnexpectedEnd is input ending where another token is required.
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	// ErrTrailingInput is anything left over after a complete statement.
	ErrTrailingInput = errors.New("trailing input")
)

// ParseError is a fatal parse failure at a position in the input.
type ParseError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Col is the 1-based rune column of the offending rune, or one past the
	// last rune when the input ended early.
	Col int
	// Expected describes what the parser needed, e.g. "'='".
	Expected string
	// Found is the offending rune, EOF if none.
	Found rune
	// Rest is the unconsumed input for ErrTrailingInput.
	Rest string
}

var _ error = &ParseError{}
var _ fmt.Formatter = &ParseError{}
var _ errors.SafeFormatter = &ParseError{}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrExpectedToken:
		msg = fmt.Sprintf("expected %s, found %s", e.Expected, strconv.QuoteRune(e.Found))
	case ErrUnexpectedCharacter:
		msg = fmt.Sprintf("unexpected character %s", strconv.QuoteRune(e.Found))
	case ErrUnexpectedEnd:
		msg = fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	case ErrTrailingInput:
		msg = fmt.Sprintf("unexpected trailing input %q", e.Rest)
	default:
		msg = e.Kind.Error()
	}

	return errpos(e.Col, msg)
}

// Format is part of the fmt.Formatter interface.
func (e *ParseError) Format(s fmt.State, verb rune) {
	errors.FormatError(e, s, verb)
}

// SafeFormatError is part of the errors.SafeFormatter interface. The column
// and what was expected are safe; runes taken from the input are not.
func (e *ParseError) SafeFormatError(p errors.Printer) (next error) {
	col := redact.Safe(e.Col)
	switch e.Kind {
	case ErrExpectedToken:
		p.Printf("%d: expected %s, found %s", col, redact.Safe(e.Expected), strconv.QuoteRune(e.Found))
	case ErrUnexpectedCharacter:
		p.Printf("%d: unexpected character %s", col, strconv.QuoteRune(e.Found))
	case ErrUnexpectedEnd:
		p.Printf("%d: unexpected end of input, expected %s", col, redact.Safe(e.Expected))
	case ErrTrailingInput:
		p.Printf("%d: unexpected trailing input %q", col, e.Rest)
	default:
		p.Printf("%d: %v", col, e.Kind)
	}

	return nil
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Pos returns the column of the failure.
func (e *ParseError) Pos() int {
	return e.Col
}

// errpos prefixes a message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
