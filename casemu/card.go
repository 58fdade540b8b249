package casemu

import (
	"github.com/google/uuid"
	"github.com/kazuki0824/recisdb-rs/engine"
)

// Fixed constants carried by the soft B-CAS card's private data block,
// taken from the reference B-CAS card this emulation replaces.
var (
	systemKey = [32]byte{
		0x36, 0x31, 0x04, 0x66, 0x4b, 0x17, 0xea, 0x5c,
		0x32, 0xdf, 0x9c, 0xf5, 0xc4, 0xc3, 0x6c, 0x1b,
		0xec, 0x99, 0x39, 0x21, 0x68, 0x9d, 0x4b, 0xb7,
		0xb7, 0x4e, 0x40, 0x84, 0x0d, 0x2e, 0x7d, 0x98,
	}
	initCBC = [8]byte{0xfe, 0x27, 0x19, 0x99, 0x19, 0x69, 0x09, 0x11}
)

const (
	bcasCardID uint64 = 0x0FE2719991969091
	caSystemID int32  = 5
	ecmSuccess uint16 = 0x0800
)

// returnCodeForAuthFailure is the CAS-level return code surfaced when ECM
// authentication fails outright (no candidate key verified). It is not a
// 0x0800 success and the engine's error taxonomy classifies it as a
// warning (unpurchased ECM), not a fatal code.
const returnCodeForAuthFailure uint16 = 0x0200

// SoftCard is the software emulation of a B-CAS card: it implements
// engine.Card and owns the private data block the reference card's init()
// call would have allocated, plus a reference to the key registry (E)
// authenticates ECM payloads against.
//
// SoftCard is pinned in the sense described by the streaming adapter's
// design notes: once handed to the engine via SetBCasCard, its address
// must remain stable until Release is observed, so callers must always
// keep it behind a pointer and never copy it by value after construction.
type SoftCard struct {
	registry *KeyRegistry
	emmChan  *EmmChannel
	emmProc  bool

	sessionID uuid.UUID
	released  bool
}

// NewSoftCard constructs a software B-CAS card bound to registry. If
// emmChan is non-nil and emmProc is true, ProcEmm parses and enqueues the
// EMM body it is given instead of the unconditional no-op path.
func NewSoftCard(registry *KeyRegistry, emmChan *EmmChannel, emmProc bool) *SoftCard {
	return &SoftCard{
		registry:  registry,
		emmChan:   emmChan,
		emmProc:   emmProc,
		sessionID: uuid.New(),
	}
}

// Release frees the card's private state. Called exactly once by the
// engine; idempotent calls after the first are a caller bug but are not
// guarded against, matching the "idempotent not required" contract.
func (c *SoftCard) Release() {
	c.released = true
}

// Init allocates (logically — Go needs no explicit allocation call) the
// private data block and always succeeds.
func (c *SoftCard) Init() int {
	return 0
}

// GetInitStatus copies the fixed status block out.
func (c *SoftCard) GetInitStatus() (engine.Status, int) {
	return engine.Status{
		SystemKey:  systemKey,
		InitCBC:    initCBC,
		CardID:     bcasCardID,
		CardStatus: 0,
		CASystemID: caSystemID,
	}, 0
}

// GetID returns the card's identity block.
func (c *SoftCard) GetID() (engine.ID, int) {
	return engine.ID{
		CardID:   [1]uint64{bcasCardID},
		CardType: [1]int32{caSystemID},
	}, 0
}

// GetPwrOnCtrl returns the power-on-control block; the software card has
// no physical power rail to control, so it always reports "on".
func (c *SoftCard) GetPwrOnCtrl() (engine.PowerOnCtl, int) {
	return engine.PowerOnCtl{Control: [1]int32{1}}, 0
}

// ProcEcm authenticates an ECM payload and, on success, copies the
// recovered 16-byte scramble key into the result and reports success.
// On authentication failure it reports a non-success return code but
// still returns 0 from the call itself — the caller inspects ReturnCode,
// not the call's own return value, matching the reference card's
// "never fail the call" shape.
func (c *SoftCard) ProcEcm(src []byte) (engine.EcmResult, int) {
	buf := make([]byte, len(src))
	copy(buf, src)

	_, err := AuthenticateECM(buf, c.registry)
	if err != nil {
		return engine.EcmResult{ReturnCode: returnCodeForAuthFailure}, 0
	}

	key, ok := ScrambleKeyFromPlaintext(buf)
	if !ok {
		return engine.EcmResult{ReturnCode: returnCodeForAuthFailure}, 0
	}

	return engine.EcmResult{ScrambleKey: key, ReturnCode: ecmSuccess}, 0
}

// ProcEmm enqueues the parsed EMM body onto the card's EMM channel when
// EMM processing is enabled; otherwise it is the unconditional no-op the
// reference card's simplest form takes. This module resolves that
// documented ambiguity by enqueuing whenever EMM processing is enabled,
// since a channel nothing ever feeds would make component G dead code.
func (c *SoftCard) ProcEmm(src []byte) int {
	if !c.emmProc || c.emmChan == nil {
		return 0
	}
	if body, ok := ParseEmmBody(src); ok {
		c.emmChan.Send(body)
	}
	return 0
}
