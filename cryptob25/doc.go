// Package cryptob25 implements the Feistel-based block cipher family used
// by the ARIB STD-B25 conditional access system: the Block00 cipher used to
// recover scramble keys from ECM payloads, the Round00 single-round-pair
// cipher used as the core of the ECM/EMM MAC, and the CBC mode (with its
// non-block-aligned residual handling) both ciphers are driven through.
//
// # Overview
//
// One half of a working key pair (Kw0 or Kw1) is expanded by ExpandKey00
// into a 128-bit round-key schedule. Block00 then runs that schedule
// through 16 Feistel half-rounds (8 full rounds) over a 64-bit block. CBC
// mode chains Block00 blocks with a fixed initialization vector and
// reverses the usual padding story: a trailing partial block is recovered
// by re-encrypting the last full ciphertext block as a keystream and
// XORing its leading big-endian bytes against the residual bytes.
//
// Round00 is a distinct, simpler cipher: it runs only a single Feistel
// round pair (flavor 3 on both halves) keyed directly from the raw 64-bit
// working key, and exists solely to drive a CBC-MAC used to authenticate
// ECM/EMM payloads before any Block00 decryption is trusted.
//
// # Key Derivation
//
// There is no password-based key derivation in this package: working keys
// arrive as raw 64-bit values delivered over the EMM channel or supplied
// directly on the command line, and are expanded algorithmically by
// ExpandKey00, never derived from a passphrase.
package cryptob25
