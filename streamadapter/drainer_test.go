package streamadapter

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func TestDrainer_DeliversAllBytesInOrder(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789"), 1000)
	d := NewDrainer(bytes.NewReader(payload), 64, 16)
	defer d.Close()

	src := NewChannelSource(d)
	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("drained bytes did not match the source exactly")
	}
}

type erroringReader struct{}

func (erroringReader) Read(p []byte) (int, error) {
	return 0, errors.New("device error")
}

func TestDrainer_SurfacesIOErrors(t *testing.T) {
	d := NewDrainer(erroringReader{}, 64, 4)
	defer d.Close()

	src := NewChannelSource(d)
	_, err := src.Read(make([]byte, 16))
	if err == nil {
		t.Fatal("expected the device error to surface through the channel source")
	}
}

func TestDrainer_CloseAfterDeviceEOF(t *testing.T) {
	r, w := io.Pipe()
	go func() {
		w.Write([]byte("hi"))
		w.Close()
	}()
	d := NewDrainer(r, 64, 4)

	src := NewChannelSource(d)
	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestChannelSource_WaitTimeoutNoData(t *testing.T) {
	r, w := io.Pipe()
	d := NewDrainer(r, 64, 4)
	defer func() {
		w.Close()
		d.Close()
	}()

	src := NewChannelSource(d)
	if src.WaitTimeout(30 * time.Millisecond) {
		t.Error("expected WaitTimeout to report no data arrived")
	}
}
