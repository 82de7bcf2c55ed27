package fstring

import (
	"fmt"
	"io"
)

// WriteTo writes the content to w. Byte strings write the buffer directly
// without allocating; wider units go through the string conversion.
func (s *String[C, A]) WriteTo(w io.Writer) (int64, error) {
	if b, ok := any(s.cells()[:s.n]).([]byte); ok {
		n, err := w.Write(b)
		return int64(n), err
	}
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// stores it, silently truncating to capacity, so fmt.Fscan fills a String
// the way it fills a plain string variable.
func (s *String[C, A]) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s.Clear()
	s.AppendString(string(tok))
	return nil
}

// MarshalText implements encoding.TextMarshaler, so the type composes with
// encoding/json and friends. Value receiver, for encoders that check the
// interface on field values rather than their addresses.
func (s String[C, A]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Oversized input is
// truncated to capacity, never rejected.
func (s *String[C, A]) UnmarshalText(text []byte) error {
	s.Clear()
	s.AppendString(string(text))
	return nil
}
