package ledger

import "testing"

func TestNewKeyDeterministic(t *testing.T) {
	first, err := NewKey("participant", "Alice", "AAD1")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	second, err := NewKey("participant", "Alice", "AAD1")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical keys, got %q and %q", first, second)
	}
}

func TestNewKeyOrderMatters(t *testing.T) {
	first, err := NewKey("participant", "Alice", "AAD1")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	second, err := NewKey("participant", "AAD1", "Alice")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	if first == second {
		t.Fatal("expected reordered attributes to produce a different key")
	}
}

func TestNewKeyKindSeparatesNamespaces(t *testing.T) {
	participant, err := NewKey("participant", "P1")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	property, err := NewKey("property", "P1")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	if participant == property {
		t.Fatal("expected different kinds to produce different keys")
	}
}

func TestNewKeyNoBoundaryCollision(t *testing.T) {
	// ("a", "bc") and ("ab", "c") must not collide even though the
	// concatenated attribute text is identical.
	first, err := NewKey("participant", "a", "bc")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	second, err := NewKey("participant", "ab", "c")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	if first == second {
		t.Fatal("expected attribute boundaries to be preserved")
	}
}

func TestNewKeyRejectsReservedSeparator(t *testing.T) {
	if _, err := NewKey("participant", "Ali\x00ce"); err == nil {
		t.Fatal("expected rejection of attribute containing the separator")
	}
	if _, err := NewKey("part\x00icipant"); err == nil {
		t.Fatal("expected rejection of kind containing the separator")
	}
	if _, err := NewKey(""); err == nil {
		t.Fatal("expected rejection of empty kind")
	}
}
