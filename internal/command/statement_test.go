package command

import (
	"strings"
	"testing"

	"github.com/shxntanu/tinysql/internal/storage"
)

func TestPrepareInsertValid(t *testing.T) {
	stmt, err := PrepareStatement("insert 1 user1 person1@example.com")
	if err != nil {
		t.Fatalf("PrepareStatement failed: %v", err)
	}
	if stmt.Type != StatementInsert {
		t.Fatalf("expected StatementInsert, got %v", stmt.Type)
	}
	want := storage.Row{ID: 1, Username: "user1", Email: "person1@example.com"}
	if stmt.RowToInsert != want {
		t.Errorf("expected row %+v, got %+v", want, stmt.RowToInsert)
	}
}

func TestPrepareSelect(t *testing.T) {
	stmt, err := PrepareStatement("select")
	if err != nil {
		t.Fatalf("PrepareStatement failed: %v", err)
	}
	if stmt.Type != StatementSelect {
		t.Errorf("expected StatementSelect, got %v", stmt.Type)
	}
}

func TestPrepareInsertMissingArguments(t *testing.T) {
	if _, err := PrepareStatement("insert 1 user1"); err != ErrSyntax {
		t.Errorf("expected ErrSyntax, got %v", err)
	}
}

func TestPrepareInsertNonNumericID(t *testing.T) {
	if _, err := PrepareStatement("insert abc user1 a@b.com"); err != ErrSyntax {
		t.Errorf("expected ErrSyntax for non-numeric id, got %v", err)
	}
}

func TestPrepareInsertNegativeID(t *testing.T) {
	if _, err := PrepareStatement("insert -1 a b"); err != ErrNegativeID {
		t.Errorf("expected ErrNegativeID, got %v", err)
	}
}

func TestPrepareInsertStringTooLong(t *testing.T) {
	longUsername := strings.Repeat("a", storage.UsernameSize+1)
	if _, err := PrepareStatement("insert 1 " + longUsername + " a@b.com"); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong for long username, got %v", err)
	}

	longEmail := strings.Repeat("a", storage.EmailSize+1)
	if _, err := PrepareStatement("insert 1 user " + longEmail); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong for long email, got %v", err)
	}
}

func TestPrepareUnrecognizedStatement(t *testing.T) {
	if _, err := PrepareStatement("delete 1"); err != ErrUnrecognizedStatement {
		t.Errorf("expected ErrUnrecognizedStatement, got %v", err)
	}
}

func TestPrepareMetaCommands(t *testing.T) {
	cases := map[string]MetaCommand{
		".exit":      MetaExit,
		".btree":     MetaBTree,
		".constants": MetaConstants,
		".help":      MetaHelp,
	}
	for input, want := range cases {
		got, err := PrepareMetaCommand(input)
		if err != nil {
			t.Errorf("PrepareMetaCommand(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("PrepareMetaCommand(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPrepareUnrecognizedMetaCommand(t *testing.T) {
	if _, err := PrepareMetaCommand(".frobnicate"); err != ErrUnrecognizedMeta {
		t.Errorf("expected ErrUnrecognizedMeta, got %v", err)
	}
}
