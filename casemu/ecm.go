package casemu

import "github.com/kazuki0824/recisdb-rs/cryptob25"

// minECMPayloadLen is the smallest ECM payload select_key_by_auth will
// even attempt: 3 unencrypted header bytes plus a 16-byte body is the
// floor below which there isn't room for a scramble key and a MAC.
const minECMPayloadLen = 19

// AuthenticateECM implements the ECM authenticator (component E): it
// selects the candidate key list by the parity of the ECM's working-key
// id byte, tries each candidate working key from registry in order,
// and on the first one whose CBC-MAC matches, decrypts payload in place
// (mutating payload[3:]) and returns the expanded key that succeeded.
//
// On failure it returns a zero key and a non-nil error: ErrNoCandidateKeys
// if the registry holds no candidates at all, or a *AuthFailure if every
// candidate was tried and none verified (including when the payload is
// too short to even attempt). payload is left untouched in both cases.
func AuthenticateECM(payload []byte, registry *KeyRegistry) (cryptob25.ExpandedKey, error) {
	if len(payload) < minECMPayloadLen {
		return cryptob25.ExpandedKey{}, &AuthFailure{Kind: "ecm", TriedKeys: 0, PayloadSize: len(payload)}
	}

	workingKeyID := payload[2]
	candidates := registry.Snapshot()
	if len(candidates) == 0 {
		return cryptob25.ExpandedKey{}, ErrNoCandidateKeys
	}
	pool := make([]uint64, 0, len(candidates))
	for _, pair := range candidates {
		if workingKeyID&1 == 1 {
			pool = append(pool, pair.Kw1)
		} else {
			pool = append(pool, pair.Kw0)
		}
	}

	tmp := make([]byte, len(payload))
	copy(tmp, payload)

	tried := 0
	for _, kw := range pool {
		tried++
		ek := cryptob25.ExpandKey00(kw, 0)

		decrypted := cryptob25.CBCDecryptBlock00(payload[3:], ek, cryptob25.DefaultIV)
		copy(tmp[3:], decrypted)

		// content for the MAC covers the whole payload minus the trailing
		// 4-byte MAC, including the 3 unencrypted header bytes.
		content := tmp[:len(tmp)-4]
		mac := tmp[len(tmp)-4:]

		if cryptob25.VerifyMAC00(mac, content, kw) {
			copy(payload[3:], tmp[3:])
			return ek, nil
		}
	}

	return cryptob25.ExpandedKey{}, &AuthFailure{Kind: "ecm", TriedKeys: tried, PayloadSize: len(payload)}
}

// ScrambleKeyFromPlaintext extracts the 16-byte scramble key from an
// authenticated ECM payload's plaintext region, at the fixed [3:19]
// offset the B-CAS wire format uses.
func ScrambleKeyFromPlaintext(payload []byte) (key [16]byte, ok bool) {
	if len(payload) < 19 {
		return key, false
	}
	copy(key[:], payload[3:19])
	return key, true
}
