// Package domain defines the core value types of SurveyAuth.
package domain

import (
	"encoding/json"
	"fmt"
)

// Token binds an identity to a salt and a shortened keyed hash.
//
// A Token is an immutable value: it is derived fresh for every generate
// or verify call and never stored. Its canonical string form is
// salt+hash with no separator; that string is what clients see and
// re-submit.
type Token struct {
	id   int64
	salt string
	hash string
}

// NewToken creates a Token from its parts. Lengths are not validated
// here; the issuer that derives or parses the token owns that check.
func NewToken(id int64, salt, hash string) Token {
	return Token{
		id:   id,
		salt: salt,
		hash: hash,
	}
}

// ParseToken splits a canonical token string into salt and hash.
//
// Returns ErrInvalidFormat unless len(s) == saltLength+hashLength.
func ParseToken(id int64, s string, saltLength, hashLength int) (Token, error) {
	if saltLength < 0 || hashLength < 0 || len(s) != saltLength+hashLength {
		return Token{}, ErrInvalidFormat.WithDetails(
			fmt.Sprintf("expected %d characters, got %d", saltLength+hashLength, len(s)))
	}
	return NewToken(id, s[:saltLength], s[saltLength:]), nil
}

// ID returns the identity the token was issued for.
func (t Token) ID() int64 { return t.id }

// Salt returns the salt part of the token.
func (t Token) Salt() string { return t.salt }

// Hash returns the shortened hash part of the token.
func (t Token) Hash() string { return t.hash }

// String returns the canonical form: salt followed by hash.
func (t Token) String() string {
	return t.salt + t.hash
}

// Equal reports whether both tokens carry the same identity, salt and hash.
func (t Token) Equal(other Token) bool {
	return t.id == other.id && t.salt == other.salt && t.hash == other.hash
}

// Compare is the dynamically typed form of Equal. Both arguments must be
// a Token or a non-nil *Token, otherwise ErrTypeMismatch is returned.
func Compare(a, b any) (bool, error) {
	ta, ok := asToken(a)
	if !ok {
		return false, ErrTypeMismatch.WithDetails(fmt.Sprintf("got %T", a))
	}
	tb, ok := asToken(b)
	if !ok {
		return false, ErrTypeMismatch.WithDetails(fmt.Sprintf("got %T", b))
	}
	return ta.Equal(tb), nil
}

func asToken(v any) (Token, bool) {
	switch t := v.(type) {
	case Token:
		return t, true
	case *Token:
		if t == nil {
			return Token{}, false
		}
		return *t, true
	default:
		return Token{}, false
	}
}

// tokenView is the external shape of a token: the identity echoed back
// next to the canonical string.
type tokenView struct {
	ID    int64  `json:"id" yaml:"id"`
	Token string `json:"token" yaml:"token"`
}

// MarshalJSON renders the token as {"id": ..., "token": "..."}.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenView{ID: t.id, Token: t.String()})
}

// MarshalYAML renders the token with the same fields as MarshalJSON.
func (t Token) MarshalYAML() (any, error) {
	return tokenView{ID: t.id, Token: t.String()}, nil
}
