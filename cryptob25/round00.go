package cryptob25

import "encoding/binary"

// EncryptRound00 encrypts one 8-byte block with the Round00 cipher: a
// single Feistel round pair (both halves flavor 3) keyed directly by the
// raw 64-bit key's high and low halves, with no key schedule. Round00 is
// never used to recover a scramble key; it exists only to drive the CBC-MAC
// that authenticates ECM and EMM payloads.
func EncryptRound00(block [8]byte, key uint64) [8]byte {
	b := binary.BigEndian.Uint64(block[:])
	left := uint32(b >> 32)
	right := uint32(b)

	kLeft := uint32(key >> 32)
	kRight := uint32(key)

	left, right = feistel(left, right, kLeft, kRight, 3, 3)

	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(left)<<32|uint64(right))
	return out
}

// CBCMac00 computes a CBC-MAC over msg using Round00 as the block cipher,
// under the given 64-bit MAC key. msg is zero-padded up to the next
// 8-byte boundary before the final block is processed, matching how a
// buffered CBC-MAC finalizer handles a trailing partial block.
func CBCMac00(msg []byte, key uint64) [8]byte {
	var chain [8]byte

	for len(msg) > 0 {
		var block [8]byte
		n := copy(block[:], msg)
		for i := 0; i < BlockSize; i++ {
			block[i] ^= chain[i]
		}
		chain = EncryptRound00(block, key)
		if n < len(msg) {
			msg = msg[n:]
		} else {
			msg = nil
		}
	}
	return chain
}

// VerifyMAC00 reports whether mac matches the truncated CBC-MAC of msg
// under key. Only the rightmost len(mac) bytes of the computed MAC are
// compared, matching the ECM/EMM wire format's truncated authentication
// tag.
func VerifyMAC00(mac, msg []byte, key uint64) bool {
	if len(mac) == 0 || len(mac) > BlockSize {
		return false
	}
	full := CBCMac00(msg, key)
	computed := full[BlockSize-len(mac):]
	if len(computed) != len(mac) {
		return false
	}
	for i := range mac {
		if mac[i] != computed[i] {
			return false
		}
	}
	return true
}
