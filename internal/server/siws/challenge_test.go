package siws

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/solsocial/internal/common"
)

func TestChallenge_MessageRoundTrip(t *testing.T) {
	t.Parallel()

	wallet := "4Nd1mYvM6L4nMvvooZWGkpcYFvRPuxPJ8zXiD4EvkUAJ"
	ch := NewChallenge(wallet)
	msg := ch.Message()

	if !strings.HasPrefix(msg, Marker) {
		t.Fatalf("message must start with the marker line:\n%s", msg)
	}

	parsed, err := ParseMessage(msg)
	if err != nil {
		t.Fatalf("ParseMessage error: %v", err)
	}
	if parsed.WalletAddress != wallet {
		t.Fatalf("wallet mismatch: got %q", parsed.WalletAddress)
	}
	if parsed.Nonce != ch.Nonce {
		t.Fatalf("nonce mismatch: got %q want %q", parsed.Nonce, ch.Nonce)
	}
	if !parsed.IssuedAt.Equal(ch.IssuedAt) {
		t.Fatalf("issued-at mismatch: got %v want %v", parsed.IssuedAt, ch.IssuedAt)
	}
}

func TestNewChallenge_NoncesDiffer(t *testing.T) {
	t.Parallel()

	a := NewChallenge("w")
	b := NewChallenge("w")
	if a.Nonce == b.Nonce {
		t.Fatalf("consecutive challenges must carry distinct nonces")
	}
}

func TestParseMessage_Malformed(t *testing.T) {
	t.Parallel()

	valid := NewChallenge("w").Message()

	tests := []struct {
		name string
		msg  string
	}{
		{"empty", ""},
		{"no marker", strings.Replace(valid, Marker, "Other service:", 1)},
		{"missing nonce line", strings.Replace(valid, "Nonce: ", "nonce=", 1)},
		{"empty nonce", strings.Replace(valid, "Nonce: "+mustParse(valid).Nonce, "Nonce: ", 1)},
		{"bad timestamp", strings.Replace(valid, "Issued At: ", "Issued At: yesterday-", 1)},
		{"extra lines", valid + "\nRider: pay me"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseMessage(tc.msg); err != common.ErrorValidation {
				t.Fatalf("got %v, want ErrorValidation", err)
			}
		})
	}
}

func mustParse(msg string) *Challenge {
	ch, err := ParseMessage(msg)
	if err != nil {
		panic(err)
	}
	return ch
}
