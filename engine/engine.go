// Package engine defines the interfaces the upstream ARIB TS/PAT/PMT/ECM
// demultiplexer is expected to satisfy. That demultiplexer — the "b25
// engine" — is an external collaborator: this package only specifies the
// callback vtable it calls into (a software B-CAS card) and the handful
// of methods the rest of this module calls on it. No TS/PAT/PMT/ECM
// section reassembly logic lives here.
package engine

// Status mirrors the B-CAS card's init status block.
type Status struct {
	SystemKey  [32]byte
	InitCBC    [8]byte
	CardID     uint64
	CardStatus int32
	CASystemID int32
}

// ID mirrors the card identity block returned by GetID.
type ID struct {
	CardID   [1]uint64
	CardType [1]int32
}

// PowerOnCtl mirrors the power-on-control block returned by GetPwrOnCtrl.
type PowerOnCtl struct {
	Control [1]int32
}

// EcmResult carries the outcome of a ProcEcm call: the recovered
// 16-byte scramble key and a card-specific return code, where 0x0800
// means success.
type EcmResult struct {
	ScrambleKey [16]byte
	ReturnCode  uint16
}

// Card is the software B-CAS card vtable the engine calls into. Every
// method corresponds 1:1 to a function slot of the C vtable described in
// the interface contract: Release frees the card's private state, and the
// remaining methods mirror smart-card APDU responses.
type Card interface {
	Release()
	Init() int
	GetInitStatus() (Status, int)
	GetID() (ID, int)
	GetPwrOnCtrl() (PowerOnCtl, int)
	ProcEcm(src []byte) (EcmResult, int)
	ProcEmm(src []byte) int
}

// Engine is the subset of the upstream engine's API this module drives
// directly: writing scrambled bytes in, reading descrambled bytes out,
// flushing, and wiring in a Card plus a handful of feature toggles.
type Engine interface {
	Put(buf []byte) (int, error)
	Get(out []byte) (int, error)
	Flush() error
	SetBCasCard(card Card)
	SetMulti2Round(n int)
	SetStrip(enabled bool)
	SetEmmProc(enabled bool)
	SetSimdMode(enabled bool)
}
