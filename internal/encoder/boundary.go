package encoder

import (
	"crypto/rand"
	"fmt"
	"io"
)

// boundaryPrefix pads generated tokens to the canonical dash run emitted by
// common multipart implementations. The prefix is part of the token itself,
// so the Content-Type header and every delimiter line carry it verbatim.
const boundaryPrefix = "---------------------------"

const boundaryDigits = 29

// RandomSource supplies the bytes consumed when generating boundary tokens.
// Seeded once per process; tests substitute a deterministic reader.
var RandomSource io.Reader = rand.Reader

func randomBoundary() (string, error) {
	var buf [boundaryDigits]byte
	if _, err := io.ReadFull(RandomSource, buf[:]); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = '0' + b%10
	}
	return boundaryPrefix + string(buf[:]), nil
}

func validateBoundary(boundary string) error {
	// rfc2046#section-5.1.1
	if len(boundary) < 1 || len(boundary) > 69 {
		return fmt.Errorf("%w: bad length %d", ErrInvalidBoundary, len(boundary))
	}
	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return fmt.Errorf("%w: bad character %q", ErrInvalidBoundary, b)
	}
	return nil
}
