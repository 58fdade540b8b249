package casemu

import (
	"testing"
)

func TestSoftCard_ProcEcmSuccess(t *testing.T) {
	const kw1 uint64 = 0x15F8C5BF840B6694
	header := [3]byte{0x00, 0x01, 0x01}
	var body [16]byte
	for i := range body {
		body[i] = byte(i + 1)
	}
	payload := buildECMPayload(t, header, body, kw1)

	registry := NewKeyRegistry()
	registry.Add(WorkingKeyPair{Kw1: kw1})
	card := NewSoftCard(registry, nil, false)

	result, rc := card.ProcEcm(payload)
	if rc != 0 {
		t.Fatalf("ProcEcm call itself returned %d, want 0", rc)
	}
	if result.ReturnCode != ecmSuccess {
		t.Errorf("ReturnCode = %#x, want %#x", result.ReturnCode, ecmSuccess)
	}
	if result.ScrambleKey != body {
		t.Errorf("ScrambleKey = % X, want % X", result.ScrambleKey, body)
	}
}

func TestSoftCard_ProcEcmFailureReportsNonSuccessButCallSucceeds(t *testing.T) {
	registry := NewKeyRegistry()
	registry.Add(WorkingKeyPair{Kw0: 1, Kw1: 2})
	card := NewSoftCard(registry, nil, false)

	payload := make([]byte, 25)
	result, rc := card.ProcEcm(payload)
	if rc != 0 {
		t.Fatalf("ProcEcm call itself returned %d, want 0 even on auth failure", rc)
	}
	if result.ReturnCode == ecmSuccess {
		t.Error("expected a non-success return code when no candidate key verifies")
	}
}

func TestSoftCard_ProcEmmEnqueuesWhenEnabled(t *testing.T) {
	registry := NewKeyRegistry()
	ch := NewEmmChannel(4)
	card := NewSoftCard(registry, ch, true)

	raw := []byte{0, 0, 0, 0, 0x12, 0x34, 0xff, 0x01, 'x'}
	if rc := card.ProcEmm(raw); rc != 0 {
		t.Fatalf("ProcEmm returned %d, want 0", rc)
	}

	select {
	case body := <-ch.Receive():
		if body.CardID != 0x1234 {
			t.Errorf("CardID = %#x, want 0x1234", body.CardID)
		}
	default:
		t.Fatal("expected ProcEmm to enqueue a body when EMM processing is enabled")
	}
}

func TestSoftCard_ProcEmmNoopWhenDisabled(t *testing.T) {
	registry := NewKeyRegistry()
	ch := NewEmmChannel(4)
	card := NewSoftCard(registry, ch, false)

	card.ProcEmm([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	select {
	case <-ch.Receive():
		t.Fatal("expected no enqueue when EMM processing is disabled")
	default:
	}
}

func TestSoftCard_GetInitStatus(t *testing.T) {
	card := NewSoftCard(NewKeyRegistry(), nil, false)
	status, rc := card.GetInitStatus()
	if rc != 0 {
		t.Fatalf("GetInitStatus returned %d, want 0", rc)
	}
	if status.CardID != bcasCardID {
		t.Errorf("CardID = %#x, want %#x", status.CardID, bcasCardID)
	}
	if status.SystemKey != systemKey {
		t.Error("SystemKey mismatch against the fixed constant")
	}
}

func TestSoftCard_Release(t *testing.T) {
	card := NewSoftCard(NewKeyRegistry(), nil, false)
	card.Release()
	if !card.released {
		t.Error("expected Release to mark the card released")
	}
}
