// Package charset folds Polish national characters into a single byte range
// so one glyph table serves both legacy Windows-1250 text and UTF-8 text.
//
// The eighteen letters ĄĆĘŁŃÓŚŹŻąćęłńóśźż are mapped, in that order, onto
// the private codes First..Last, directly after the printable ASCII range.
// Every other byte passes through unchanged.
//
// UTF-8 input needs two bytes per letter, so decoding is a small state
// machine: Idle, or PendingLead holding one of the lead bytes 0xC3, 0xC4 or
// 0xC5. Step is the pure transition function; Decoder wraps it for callers
// that feed a byte stream.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// First is the code of 'Ą'.
	First = 128
	// Last is the code of 'ż'.
	Last = First + 17

	// None is returned for a lead byte: nothing is to be drawn yet.
	None byte = 0
)

var letters = []rune("ĄĆĘŁŃÓŚŹŻąćęłńóśźż")

// Code returns the private code for r.
func Code(r rune) (byte, bool) {
	for i, l := range letters {
		if l == r {
			return byte(First + i), true
		}
	}
	return 0, false
}

// Rune returns the letter behind a private code.
func Rune(code byte) (rune, bool) {
	if code < First || int(code) > Last {
		return 0, false
	}
	return letters[code-First], true
}

// State is the decoder state. The zero value is Idle.
type State struct {
	lead byte
}

// Idle is the state with no pending lead byte.
var Idle = State{}

// PendingLead returns the state waiting for the continuation of lead.
func PendingLead(lead byte) State {
	return State{lead: lead}
}

// Lead returns the pending lead byte, if any.
func (s State) Lead() (byte, bool) {
	return s.lead, s.lead != 0
}

func (s State) String() string {
	if s.lead == 0 {
		return "Idle"
	}
	return fmt.Sprintf("PendingLead(%#x)", s.lead)
}

func isLead(b byte) bool {
	return b == 0xc3 || b == 0xc4 || b == 0xc5
}

// Step consumes b in state s and returns the next state and the output byte.
//
// A lead byte always moves to PendingLead and outputs None. With a lead
// pending, the pair is decoded as UTF-8; otherwise b is decoded as
// Windows-1250. Letters of the table come out as their private code, any
// other byte comes out unchanged. Every non-lead byte returns to Idle.
func Step(s State, b byte) (State, byte) {
	if isLead(b) {
		return PendingLead(b), None
	}
	var r rune
	if s.lead != 0 {
		var n int
		r, n = utf8.DecodeRune([]byte{s.lead, b})
		if n != 2 {
			return Idle, b
		}
	} else {
		r = charmap.Windows1250.DecodeByte(b)
	}
	if c, ok := Code(r); ok {
		return Idle, c
	}
	return Idle, b
}

// Decoder feeds a byte stream through Step. Bytes must be fed in stream
// order. A Decoder is not safe for concurrent use.
type Decoder struct {
	state State
}

// Feed consumes one byte and returns the code to draw, or None.
func (d *Decoder) Feed(b byte) byte {
	var out byte
	d.state, out = Step(d.state, b)
	return out
}

// State returns the current state.
func (d *Decoder) State() State {
	return d.state
}

// SetState restores a state returned by State.
func (d *Decoder) SetState(s State) {
	d.state = s
}

// Reset drops any pending lead byte.
func (d *Decoder) Reset() {
	d.state = Idle
}
