package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator issues ids for users, reviews and comments. It satisfies
// store.IDGenerator.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate prefers UUIDv7 so rows inserted later sort after earlier ones in
// the primary key index. uuid.NewV7 only fails when the random source does.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// IsUUID accepts ids in the form the store writes them: 36 characters,
// hyphenated and lower-case. Ids are compared as plain strings by the
// ownership guard and by SQLite, so an upper-cased copy of a valid id would
// name a different row.
func IsUUID(s string) bool {
	if len(s) != 36 || s != strings.ToLower(s) {
		return false
	}

	return uuid.Validate(s) == nil
}
