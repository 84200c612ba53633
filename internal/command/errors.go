// Package command implements the REPL's tiny fixed grammar: insert and
// select statements, plus dot-prefixed meta-commands.
//
// EDUCATIONAL NOTES:
// ------------------
// There is no lexer/parser split here the way there is for a real SQL
// dialect: the grammar is small enough that a single token scan covers
// it. What's worth keeping from a bigger parser is the error taxonomy:
// every way user input can fail to become a Statement gets its own
// sentinel error, so the REPL can print a precise diagnostic and keep
// going instead of aborting the session.
package command

import "errors"

var (
	// ErrSyntax is returned when insert does not have exactly three
	// arguments, or when its id argument is not an integer.
	ErrSyntax = errors.New("command: syntax error")

	// ErrNegativeID is returned when insert's id argument parses but is
	// negative.
	ErrNegativeID = errors.New("command: id must be positive")

	// ErrStringTooLong is returned when username or email exceeds its
	// fixed field size.
	ErrStringTooLong = errors.New("command: string is too long")

	// ErrUnrecognizedStatement is returned when the input isn't insert or
	// select.
	ErrUnrecognizedStatement = errors.New("command: unrecognized statement")

	// ErrUnrecognizedMeta is returned when a dot-prefixed input doesn't
	// match any known meta-command.
	ErrUnrecognizedMeta = errors.New("command: unrecognized meta-command")
)
