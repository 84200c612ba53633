package storage

import "errors"

// ErrDuplicateKey is returned by Tree.Insert when a row with the given id
// already exists. The tree is left byte-for-byte unchanged.
var ErrDuplicateKey = errors.New("storage: duplicate key")
