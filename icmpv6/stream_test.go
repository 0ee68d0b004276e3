package icmpv6

import "testing"

func TestReaderShortRead(t *testing.T) {
	r := newReader([]byte{0x01, 0x02})
	if _, err := r.readUint32(); err == nil {
		t.Fatalf("expected short-read error, got nil")
	}
}

func TestReaderPrimitives(t *testing.T) {
	r := newReader([]byte{0xAB, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02})
	b, err := r.readUint8()
	if err != nil || b != 0xAB {
		t.Fatalf("readUint8: got (%v, %v)", b, err)
	}
	u16, err := r.readUint16()
	if err != nil || u16 != 1 {
		t.Fatalf("readUint16: got (%v, %v)", u16, err)
	}
	u32, err := r.readUint32()
	if err != nil || u32 != 2 {
		t.Fatalf("readUint32: got (%v, %v)", u32, err)
	}
	if len(r.remaining()) != 0 {
		t.Fatalf("expected buffer exhausted, %d bytes left", len(r.remaining()))
	}
}

func TestReaderSkip(t *testing.T) {
	r := newReader([]byte{1, 2, 3, 4})
	if err := r.skip(2); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if len(r.remaining()) != 2 {
		t.Fatalf("expected 2 bytes remaining, got %d", len(r.remaining()))
	}
	if err := r.skip(10); err == nil {
		t.Fatalf("expected error skipping past end")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	w := newWriter(buf)
	w.writeUint8(1)
	w.writeUint16(0x0203)
	w.writeUint32(0x04050607)
	w.writeUint8(0)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, buf[i], want[i])
		}
	}
}
