package cryptob25

import "testing"

func TestDecryptBlock00_ZeroKeyZeroBlock(t *testing.T) {
	key := ExpandKey00(0, 0)
	got := DecryptBlock00(0, key)
	const want uint64 = 16467544269716193282
	if got != want {
		t.Errorf("DecryptBlock00(0, key) = %d, want %d", got, want)
	}
}

func TestEncryptDecryptBlock00_RoundTrip(t *testing.T) {
	key := ExpandKey00(0x15f8c5bf840b6694, 0)
	const plain uint64 = 0x1234_5678_9abc_def0
	ct := EncryptBlock00(plain, key)
	pt := DecryptBlock00(ct, key)
	if pt != plain {
		t.Errorf("round trip mismatch: got %#x, want %#x", pt, plain)
	}
}

func TestKnownAnswerBlock00(t *testing.T) {
	key := ExpandKey00(0x15f8c5bf840b6694, 0)
	const plain uint64 = 10846542336961433923
	const want uint64 = 13290258443935467468
	if got := EncryptBlock00(plain, key); got != want {
		t.Errorf("EncryptBlock00(%d) = %d, want %d", plain, got, want)
	}
}
