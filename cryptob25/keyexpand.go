package cryptob25

// ExpandedKey is the 128-bit round-key schedule Block00 is driven by,
// derived from a single 64-bit working key half by ExpandKey00.
type ExpandedKey [4]uint32

// ExpandKey00 derives the 4-word round-key schedule Block00 uses from a
// raw 64-bit working key half and the ECM/EMM protocol byte. The protocol
// byte's low nibble selects between two fixed chaining constants; the
// schedule is produced by feeding the key words, interleaved with the
// running chain value, through eight passes of roundFunction00 at flavor 0.
func ExpandKey00(key uint64, protocol uint8) ExpandedKey {
	var kext ExpandedKey
	kext[0] = uint32(key >> 32)
	kext[1] = uint32(key)
	kext[2] = 0x08090a0b
	kext[3] = 0x0c0d0e0f

	var chain uint32
	if protocol&0x0c != 0 {
		chain = 0x84e5c4e7
	} else {
		chain = 0x6aa32b6f
	}
	for i := 0; i < 8; i++ {
		chain = roundFunction00(kext[i&3], chain, 0)
		kext[i&3] = chain
	}
	return kext
}
