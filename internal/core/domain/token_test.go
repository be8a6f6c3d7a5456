package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewToken(t *testing.T) {
	tok := NewToken(42, "ab", "d46de7b1")

	if tok.ID() != 42 {
		t.Errorf("ID() = %d, want 42", tok.ID())
	}
	if tok.Salt() != "ab" {
		t.Errorf("Salt() = %q, want %q", tok.Salt(), "ab")
	}
	if tok.Hash() != "d46de7b1" {
		t.Errorf("Hash() = %q, want %q", tok.Hash(), "d46de7b1")
	}
}

func TestNewToken_NoLengthValidation(t *testing.T) {
	tok := NewToken(1, "", "x")
	if tok.String() != "x" {
		t.Errorf("String() = %q, want %q", tok.String(), "x")
	}
}

func TestToken_String(t *testing.T) {
	tok := NewToken(42, "ab", "d46de7b1")
	if got := tok.String(); got != "abd46de7b1" {
		t.Errorf("String() = %q, want %q", got, "abd46de7b1")
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		saltLength int
		hashLength int
		wantSalt   string
		wantHash   string
		wantErr    bool
	}{
		{"default lengths", "abd46de7b1", 2, 8, "ab", "d46de7b1", false},
		{"long salt", "abcd46de", 3, 5, "abc", "d46de", false},
		{"too short", "short", 2, 8, "", "", true},
		{"too long", "abd46de7b1x", 2, 8, "", "", true},
		{"empty", "", 2, 8, "", "", true},
		{"negative length", "ab", -1, 3, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := ParseToken(7, tt.input, tt.saltLength, tt.hashLength)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseToken() error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseToken() error = %v", err)
			}
			if tok.ID() != 7 {
				t.Errorf("ID() = %d, want 7", tok.ID())
			}
			if tok.Salt() != tt.wantSalt {
				t.Errorf("Salt() = %q, want %q", tok.Salt(), tt.wantSalt)
			}
			if tok.Hash() != tt.wantHash {
				t.Errorf("Hash() = %q, want %q", tok.Hash(), tt.wantHash)
			}
		})
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	tokens := []Token{
		NewToken(0, "00", "fcb3b4e3"),
		NewToken(42, "ab", "d46de7b1"),
		NewToken(99999, "f", "0123456789abcdef"),
	}

	for _, tok := range tokens {
		parsed, err := ParseToken(tok.ID(), tok.String(), len(tok.Salt()), len(tok.Hash()))
		if err != nil {
			t.Fatalf("ParseToken(%q) error = %v", tok.String(), err)
		}
		if !parsed.Equal(tok) {
			t.Errorf("ParseToken(%q) = %+v, want %+v", tok.String(), parsed, tok)
		}
	}
}

func TestToken_Equal(t *testing.T) {
	base := NewToken(42, "ab", "d46de7b1")

	tests := []struct {
		name  string
		other Token
		want  bool
	}{
		{"identical", NewToken(42, "ab", "d46de7b1"), true},
		{"different id", NewToken(43, "ab", "d46de7b1"), false},
		{"different salt", NewToken(42, "ac", "d46de7b1"), false},
		{"different hash", NewToken(42, "ab", "d46de7b2"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := NewToken(42, "ab", "d46de7b1")
	b := NewToken(42, "ab", "d46de7b1")
	c := NewToken(1, "ab", "d46de7b1")
	var nilTok *Token

	tests := []struct {
		name    string
		a, b    any
		want    bool
		wantErr bool
	}{
		{"values equal", a, b, true, false},
		{"pointer and value", &a, b, true, false},
		{"values differ", a, c, false, false},
		{"string operand", a, "abd46de7b1", false, true},
		{"nil operand", nil, a, false, true},
		{"nil pointer", a, nilTok, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("Compare() error = %v, want ErrTypeMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToken_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewToken(42, "ab", "d46de7b1"))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"id":42,"token":"abd46de7b1"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestToken_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(NewToken(42, "ab", "d46de7b1"))
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	want := "id: 42\ntoken: abd46de7b1\n"
	if string(data) != want {
		t.Errorf("yaml.Marshal() = %q, want %q", data, want)
	}
}
