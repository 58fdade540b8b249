package casemu

import (
	"encoding/binary"

	"github.com/kazuki0824/recisdb-rs/cryptob25"
)

// emmBlock40IV is the fixed Block40 CBC initialization vector used for EMM
// body decryption, stored little-endian on the wire (0x11096919991927FE).
const emmBlock40IV uint64 = 0x11096919991927FE

// EmmBody is the raw EMM section payload as handed up from the engine
// callback, before any decryption or MAC verification.
type EmmBody struct {
	CardID   int64 // 48-bit signed, sign-extended
	Protocol uint8
	Info     []byte
}

// ParseEmmBody parses a raw EMM section body per the wire layout: a
// 6-byte big-endian signed card id, one skipped byte, one protocol byte,
// and the remaining bytes as the addressed message body.
func ParseEmmBody(raw []byte) (EmmBody, bool) {
	const headerLen = 8
	if len(raw) < headerLen {
		return EmmBody{}, false
	}

	var cardIDBytes [8]byte
	copy(cardIDBytes[2:], raw[0:6])
	cardID := int64(binary.BigEndian.Uint64(cardIDBytes[:]))
	// sign-extend from bit 47
	if raw[0]&0x80 != 0 {
		cardID |= ^int64(0xffffffffffff)
	}

	info := make([]byte, len(raw)-headerLen)
	copy(info, raw[headerLen:])

	return EmmBody{
		CardID:   cardID,
		Protocol: raw[7],
		Info:     info,
	}, true
}

// EmmKey is a single EMM-receiving key, scoped to one card id, used to
// authenticate and decrypt EMM bodies addressed to that card.
type EmmKey struct {
	CardID int64
	Key    uint64
}

// DecryptedEmm is the plaintext yielded by a successful EMM decryption.
type DecryptedEmm struct {
	BroadcasterGroupID uint8
	UpdateNumber       uint16
	ExpirationDate     uint16
	Info               []byte
}

// DecryptEMM decrypts and authenticates body against every key in keys
// whose CardID matches body.CardID, in order, stopping at the first MAC
// match. It never returns plaintext for a body whose MAC did not verify:
// EMM authentication is enforced here rather than left as an unchecked
// TODO, exactly like ECM authentication.
func DecryptEMM(body EmmBody, keys []EmmKey) (DecryptedEmm, error) {
	if len(body.Info) < 9 {
		return DecryptedEmm{}, &AuthFailure{Kind: "emm", TriedKeys: 0, PayloadSize: len(body.Info)}
	}

	tried := 0
	for _, k := range keys {
		if k.CardID != body.CardID {
			continue
		}
		tried++

		ek := cryptob25.ExpandKey00(k.Key, body.Protocol)
		// The 5-byte header (group id, update number, expiration date) is
		// sent in the clear; only the bytes after it are encrypted.
		decrypted := append(append([]byte(nil), body.Info[:5]...),
			cryptob25.CBCDecryptBlock00(body.Info[5:], ek, emmBlock40IV)...)

		if len(decrypted) < 9 {
			continue
		}
		content := decrypted[:len(decrypted)-4]
		mac := decrypted[len(decrypted)-4:]
		if !cryptob25.VerifyMAC00(mac, content, k.Key) {
			continue
		}

		return DecryptedEmm{
			BroadcasterGroupID: decrypted[0],
			UpdateNumber:       binary.BigEndian.Uint16(decrypted[1:3]),
			ExpirationDate:     binary.BigEndian.Uint16(decrypted[3:5]),
			Info:               append([]byte(nil), decrypted[5:len(decrypted)-4]...),
		}, nil
	}

	return DecryptedEmm{}, &AuthFailure{Kind: "emm", TriedKeys: tried, PayloadSize: len(body.Info)}
}

// EmmChannel is the single-producer/single-consumer queue of parsed EMM
// bodies (component G). The engine callback is the sole producer; an
// optional external receiver drains it concurrently with descrambling.
// A send with no room (or no receiver ever having been set up to drain)
// is silently dropped, matching the "send failures are silently dropped"
// contract — descrambling must never stall waiting on an EMM consumer.
type EmmChannel struct {
	ch chan EmmBody
}

// NewEmmChannel creates an EMM channel with the given buffer depth.
func NewEmmChannel(depth int) *EmmChannel {
	return &EmmChannel{ch: make(chan EmmBody, depth)}
}

// Send enqueues body, dropping it silently if the channel is full.
func (c *EmmChannel) Send(body EmmBody) {
	select {
	case c.ch <- body:
	default:
	}
}

// Receive returns the channel's receive end for an external consumer.
func (c *EmmChannel) Receive() <-chan EmmBody {
	return c.ch
}
