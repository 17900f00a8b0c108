package keys

import (
	"strings"
	"testing"
)

// TestHashStableAndHex verifies hash transforms are deterministic and render
// lowercase hex of a fixed width.
func TestHashStableAndHex(t *testing.T) {
	h := Hash(nil) // MD5 default

	a := h("greeting")
	b := h("greeting")
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if len(a) != 32 { // 128-bit digest, hex
		t.Fatalf("md5 hex length = %d, want 32", len(a))
	}
	if a != strings.ToLower(a) {
		t.Fatalf("hash output not lowercase: %q", a)
	}
	if a == h("greeting2") {
		t.Fatalf("distinct keys collided")
	}
}

func TestHashCustomDigest(t *testing.T) {
	h := Hash(XXH64)
	out := h("x")
	if len(out) != 16 { // 64-bit digest, hex
		t.Fatalf("xxh64 hex length = %d, want 16", len(out))
	}
	if out != h("x") {
		t.Fatalf("xxh64 transform not stable")
	}
}

func TestPrefix(t *testing.T) {
	p := Prefix("StringCache:")
	if got := p("greeting"); got != "StringCache:greeting" {
		t.Fatalf("Prefix = %q", got)
	}
	// the key itself stays untouched, whatever it contains
	if got := p(""); got != "StringCache:" {
		t.Fatalf("Prefix empty key = %q", got)
	}
}

func TestChainOrder(t *testing.T) {
	c := Chain(Prefix("IntCache:"), Hash(nil))
	want := Hash(nil)("IntCache:count")
	if got := c("count"); got != want {
		t.Fatalf("Chain = %q, want %q", got, want)
	}
}
