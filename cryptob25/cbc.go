package cryptob25

import "encoding/binary"

// DefaultIV is the fixed CBC initialization vector used for ECM working-key
// block conversion, taken from the B-CAS card's well-known init_cbc value.
const DefaultIV uint64 = 0xfe27199919690911

// CBCDecryptBlock00 decrypts ciphertext under the given expanded key and
// IV, chaining Block00 blocks in standard CBC fashion. Unlike a padded
// block cipher mode, a trailing partial block (len(ciphertext)%8 != 0) is
// not an error: the last full ciphertext block (or the IV, if there is no
// full block at all) is re-encrypted to produce a keystream, and the
// residual bytes are recovered by XORing them against the leading bytes
// of that keystream in big-endian order. The output is exactly
// len(ciphertext) bytes long.
func CBCDecryptBlock00(ciphertext []byte, key ExpandedKey, iv uint64) []byte {
	out := make([]byte, len(ciphertext))
	fullBlocks := len(ciphertext) / BlockSize
	residual := len(ciphertext) % BlockSize

	chain := iv
	lastCipherBlock := iv
	for i := 0; i < fullBlocks; i++ {
		cBlock := binary.BigEndian.Uint64(ciphertext[i*BlockSize:])
		pBlock := DecryptBlock00(cBlock, key) ^ chain
		binary.BigEndian.PutUint64(out[i*BlockSize:], pBlock)
		chain = cBlock
		lastCipherBlock = cBlock
	}

	if residual > 0 {
		residualBytes := ciphertext[fullBlocks*BlockSize:]
		var tail [8]byte
		binary.BigEndian.PutUint64(tail[:], EncryptBlock00(lastCipherBlock, key))
		for x := 0; x < residual; x++ {
			out[fullBlocks*BlockSize+x] = residualBytes[x] ^ tail[x]
		}
	}

	return out
}

// CBCEncryptBlock00 is the inverse of CBCDecryptBlock00: it encrypts
// plaintext under the given expanded key and IV using the same residual
// convention for a trailing partial block.
func CBCEncryptBlock00(plaintext []byte, key ExpandedKey, iv uint64) []byte {
	out := make([]byte, len(plaintext))
	fullBlocks := len(plaintext) / BlockSize
	residual := len(plaintext) % BlockSize

	chain := iv
	for i := 0; i < fullBlocks; i++ {
		pBlock := binary.BigEndian.Uint64(plaintext[i*BlockSize:])
		cBlock := EncryptBlock00(pBlock^chain, key)
		binary.BigEndian.PutUint64(out[i*BlockSize:], cBlock)
		chain = cBlock
	}

	if residual > 0 {
		residualBytes := plaintext[fullBlocks*BlockSize:]
		var tail [8]byte
		binary.BigEndian.PutUint64(tail[:], EncryptBlock00(chain, key))
		for x := 0; x < residual; x++ {
			out[fullBlocks*BlockSize+x] = residualBytes[x] ^ tail[x]
		}
	}

	return out
}
