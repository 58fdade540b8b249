package cryptob25

import (
	"bytes"
	"testing"
)

func TestCBCDecryptKnownAnswer(t *testing.T) {
	key := ExpandKey00(0x15F8C5BF840B6694, 0)
	ciphertext := []byte{
		0x9F, 0x3A, 0x52, 0x4C, 0x57, 0x17, 0x41, 0x0F, 0xB1, 0x5A, 0xCD, 0x67,
		0x25, 0x37, 0xB4, 0x58, 0x96, 0x86, 0xA8, 0xC9, 0xBB, 0xD2, 0x51, 0x43,
		0x57, 0xBE, 0x8C,
	}
	want := []byte{
		0x72, 0x74, 0x00, 0xE2, 0x3C, 0x37, 0x80, 0x25, 0xA2, 0xE8, 0xD8, 0xFD,
		0x5D, 0x82, 0x42, 0x62, 0x01, 0xCF, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x16,
		0xEF, 0xCE, 0xF7,
	}

	got := CBCDecryptBlock00(ciphertext, key, DefaultIV)
	if !bytes.Equal(got, want) {
		t.Errorf("CBCDecryptBlock00 = % X, want % X", got, want)
	}
}

func TestCBCRoundTripAligned(t *testing.T) {
	key := ExpandKey00(0x15f8c5bf840b6694, 0)
	plain := []byte("01234567ABCDEFGH") // 16 bytes, 2 aligned blocks

	ct := CBCEncryptBlock00(plain, key, DefaultIV)
	pt := CBCDecryptBlock00(ct, key, DefaultIV)
	if !bytes.Equal(pt, plain) {
		t.Errorf("CBC round trip mismatch: got %q, want %q", pt, plain)
	}
}

func TestCBCRoundTripWithResidual(t *testing.T) {
	key := ExpandKey00(0x15f8c5bf840b6694, 0)
	plain := []byte("0123456789ABCDEFGHIJK") // 21 bytes: 2 full blocks + 5 residual

	ct := CBCEncryptBlock00(plain, key, DefaultIV)
	pt := CBCDecryptBlock00(ct, key, DefaultIV)
	if !bytes.Equal(pt, plain) {
		t.Errorf("CBC residual round trip mismatch: got %q, want %q", pt, plain)
	}
	if len(ct) != len(plain) {
		t.Errorf("CBC ciphertext length = %d, want %d", len(ct), len(plain))
	}
}

func TestCBCRoundTripShorterThanOneBlock(t *testing.T) {
	key := ExpandKey00(0xaabbccddeeff0011, 0)
	plain := []byte("abc") // shorter than one block: falls back to the IV

	ct := CBCEncryptBlock00(plain, key, DefaultIV)
	pt := CBCDecryptBlock00(ct, key, DefaultIV)
	if !bytes.Equal(pt, plain) {
		t.Errorf("sub-block CBC round trip mismatch: got %q, want %q", pt, plain)
	}
}

func TestCBCDifferentIVsDiffer(t *testing.T) {
	key := ExpandKey00(1, 0)
	plain := []byte("same plaintext payload!")

	a := CBCEncryptBlock00(plain, key, 0x1111111111111111)
	b := CBCEncryptBlock00(plain, key, 0x2222222222222222)
	if bytes.Equal(a, b) {
		t.Fatal("ciphertexts under different IVs should differ")
	}
}
