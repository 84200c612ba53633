package storage

import (
	"encoding/binary"
	"fmt"
)

// Row is the engine's single fixed-schema value type. id is also the
// primary key used to order and locate rows in the B+ tree.
//
// Layout on disk (ROW_SIZE = 293 bytes), little-endian:
//
//	id (u32)                  offset 0,   size 4
//	username (NUL-padded)     offset 4,   size 33
//	email (NUL-padded)        offset 37,  size 256
type Row struct {
	ID       uint32
	Username string
	Email    string
}

const (
	// UsernameSize is the maximum stored length of Username, not counting
	// the terminating NUL.
	UsernameSize = 32
	// EmailSize is the maximum stored length of Email, not counting the
	// terminating NUL.
	EmailSize = 255

	idSize       = 4
	usernameSize = UsernameSize + 1 // + NUL terminator
	emailSize    = EmailSize + 1

	idOffset       = 0
	usernameOffset = idOffset + idSize
	emailOffset    = usernameOffset + usernameSize

	// RowSize is the exact serialized size of a Row.
	RowSize = idOffset + idSize + usernameSize + emailSize
)

// NewRow validates and constructs a Row. It enforces the §3 invariant
// that Username and Email fit in their NUL-terminated fields.
func NewRow(id uint32, username, email string) (Row, error) {
	if len(username) > UsernameSize {
		return Row{}, fmt.Errorf("storage: username %q exceeds %d bytes", username, UsernameSize)
	}
	if len(email) > EmailSize {
		return Row{}, fmt.Errorf("storage: email %q exceeds %d bytes", email, EmailSize)
	}
	return Row{ID: id, Username: username, Email: email}, nil
}

// serializeRow writes row into the ROW_SIZE bytes at dst[0:RowSize].
func serializeRow(row Row, dst []byte) {
	binary.LittleEndian.PutUint32(dst[idOffset:], row.ID)
	writeFixedString(dst[usernameOffset:usernameOffset+usernameSize], row.Username)
	writeFixedString(dst[emailOffset:emailOffset+emailSize], row.Email)
}

// deserializeRow reads a Row back out of src[0:RowSize].
func deserializeRow(src []byte) Row {
	return Row{
		ID:       binary.LittleEndian.Uint32(src[idOffset:]),
		Username: readFixedString(src[usernameOffset : usernameOffset+usernameSize]),
		Email:    readFixedString(src[emailOffset : emailOffset+emailSize]),
	}
}

// writeFixedString NUL-pads s into a fixed-size field. Caller guarantees
// len(s) < len(field).
func writeFixedString(field []byte, s string) {
	for i := range field {
		field[i] = 0
	}
	copy(field, s)
}

// readFixedString reads a NUL-terminated string out of a fixed-size field.
func readFixedString(field []byte) string {
	n := 0
	for n < len(field) && field[n] != 0 {
		n++
	}
	return string(field[:n])
}
