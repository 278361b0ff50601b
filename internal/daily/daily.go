// Package daily derives a date-bound randomness source so every player
// gets the same sequence of secrets on a given UTC day.
package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/robalobadob/baseball/internal/random"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a seed for date using HKDF-SHA256(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) (int64, error) {
	r := hkdf.New(sha256.New, []byte(salt), nil, []byte(DateKey(date)))
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("derive daily seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

// Picker returns a seeded picker for date.
func Picker(date time.Time, salt string) (*random.Seeded, error) {
	seed, err := Seed(date, salt)
	if err != nil {
		return nil, err
	}
	return random.NewSeeded(seed), nil
}
