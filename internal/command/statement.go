package command

import (
	"strconv"
	"strings"

	"github.com/shxntanu/tinysql/internal/storage"
)

// StatementType distinguishes insert from select.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// Statement is a parsed (but not yet executed) insert or select.
type Statement struct {
	Type        StatementType
	RowToInsert storage.Row
}

// PrepareStatement parses a single line of input into a Statement.
// input must not start with '.' (route those to PrepareMetaCommand
// instead).
func PrepareStatement(input string) (Statement, error) {
	switch {
	case strings.HasPrefix(input, "insert"):
		return prepareInsert(input)
	case input == "select":
		return Statement{Type: StatementSelect}, nil
	default:
		return Statement{}, ErrUnrecognizedStatement
	}
}

func prepareInsert(input string) (Statement, error) {
	fields := strings.Fields(input)
	// fields[0] is the "insert" keyword.
	if len(fields) != 4 {
		return Statement{}, ErrSyntax
	}

	idStr, username, email := fields[1], fields[2], fields[3]

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Statement{}, ErrSyntax
	}
	if id < 0 {
		return Statement{}, ErrNegativeID
	}

	if len(username) > storage.UsernameSize || len(email) > storage.EmailSize {
		return Statement{}, ErrStringTooLong
	}

	row, err := storage.NewRow(uint32(id), username, email)
	if err != nil {
		// NewRow's own bounds checks are redundant with the ones above but
		// guard against the package's invariants changing independently.
		return Statement{}, ErrStringTooLong
	}

	return Statement{Type: StatementInsert, RowToInsert: row}, nil
}

// MetaCommand names a recognized dot-command.
type MetaCommand int

const (
	MetaExit MetaCommand = iota
	MetaBTree
	MetaConstants
	MetaHelp
)

// PrepareMetaCommand parses a dot-prefixed line. input must start with
// '.'.
func PrepareMetaCommand(input string) (MetaCommand, error) {
	switch input {
	case ".exit":
		return MetaExit, nil
	case ".btree":
		return MetaBTree, nil
	case ".constants":
		return MetaConstants, nil
	case ".help":
		return MetaHelp, nil
	default:
		return 0, ErrUnrecognizedMeta
	}
}
