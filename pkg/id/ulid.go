// Package id generates ULIDs used as request identifiers.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// Crockford base32, no I L O U.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ErrInvalidULID is returned by Time for malformed input.
var ErrInvalidULID = errors.New("id: invalid ULID")

// NewULID returns a 26 character ULID: 48 bits of millisecond time followed
// by 80 random bits. IDs sort lexicographically by creation time.
func NewULID() string {
	return newULID(time.Now())
}

func newULID(t time.Time) string {
	var entropy [10]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		binary.BigEndian.PutUint64(entropy[:8], uint64(t.UnixNano()))
	}

	ms := uint64(t.UnixMilli()) & (1<<48 - 1)
	hi := ms<<16 | uint64(binary.BigEndian.Uint16(entropy[:2]))
	lo := binary.BigEndian.Uint64(entropy[2:])

	var out [26]byte
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Time returns the timestamp encoded in a ULID.
func Time(ulid string) (time.Time, error) {
	if len(ulid) != 26 {
		return time.Time{}, ErrInvalidULID
	}
	var ms uint64
	for i := range 10 {
		v := strings.IndexByte(alphabet, ulid[i])
		if v < 0 {
			return time.Time{}, ErrInvalidULID
		}
		ms = ms<<5 | uint64(v)
	}
	return time.UnixMilli(int64(ms)), nil
}
