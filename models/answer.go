package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// AnswerKind discriminates the value held by an [Answer].
type AnswerKind int

const (
	// AnswerNull is a missing or JSON null answer.
	AnswerNull AnswerKind = iota
	// AnswerText is a string answer (option code or free text).
	AnswerText
	// AnswerNumber is a numeric answer.
	AnswerNumber
)

// Answer is a single questionnaire answer. The front-end sends answers as an
// untyped JSON array, so each element can be a string, a number or null.
// Booleans, objects and arrays are kept as text holding their raw JSON.
type Answer struct {
	Kind   AnswerKind
	Text   string
	Number float64
}

// TextAnswer builds a text answer.
func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerText, Text: s}
}

// NumberAnswer builds a numeric answer.
func NumberAnswer(n float64) Answer {
	return Answer{Kind: AnswerNumber, Number: n}
}

// NullAnswer builds an empty answer.
func NullAnswer() Answer {
	return Answer{Kind: AnswerNull}
}

// IsNull reports whether the answer carries no value.
func (a Answer) IsNull() bool {
	return a.Kind == AnswerNull
}

// String returns the textual form of the answer. Numbers are rendered in
// their shortest decimal form, so both 1 and 1.0 become "1" and 2.5 becomes
// "2.5". JSON does not distinguish 1 from 1.0, and no text option of the
// questionnaire is numeric, so a number never matches a text option in
// either form.
func (a Answer) String() string {
	switch a.Kind {
	case AnswerText:
		return a.Text
	case AnswerNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Int returns the answer as an integer. Numbers are truncated toward zero;
// text must be a base-10 integer literal.
func (a Answer) Int() (int, bool) {
	switch a.Kind {
	case AnswerNumber:
		if math.IsNaN(a.Number) || math.IsInf(a.Number, 0) {
			return 0, false
		}
		return int(a.Number), true
	case AnswerText:
		n, err := strconv.Atoi(a.Text)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Answer) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = NullAnswer()
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("error decoding text answer: %w", err)
		}
		*a = TextAnswer(s)
	case '{', '[', 't', 'f':
		*a = TextAnswer(string(trimmed))
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("error decoding numeric answer: %w", err)
		}
		*a = NumberAnswer(n)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerNumber:
		return json.Marshal(a.Number)
	default:
		return []byte("null"), nil
	}
}
