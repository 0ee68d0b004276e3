package icmpext

import "testing"

func TestContainerRoundTrip(t *testing.T) {
	c := &Container{Objects: []Object{
		{Class: 1, CType: 2, Payload: []byte{0xAA, 0xBB, 0xCC}},
	}}

	buf, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if len(buf) != c.Size() {
		t.Fatalf("expected %d bytes, got %d", c.Size(), len(buf))
	}

	decoded, err := Parse(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(decoded.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(decoded.Objects))
	}
	got := decoded.Objects[0]
	if got.Class != 1 || got.CType != 2 || string(got.Payload) != "\xaa\xbb\xcc" {
		t.Fatalf("unexpected object: %+v", got)
	}
}

func TestParseRejectsShortHeader(t *testing.T) {
	if _, err := Parse([]byte{0x20, 0x00}); err == nil {
		t.Fatalf("expected error for a header shorter than 4 octets")
	}
}

func TestParseRejectsBadVersion(t *testing.T) {
	buf := []byte{0x10, 0x00, 0x00, 0x00} // version 1, not 2
	if _, err := Parse(buf); err == nil {
		t.Fatalf("expected error for unsupported version")
	}
}

func TestContainerSizeWithNoObjects(t *testing.T) {
	c := &Container{}
	if c.Size() != 4 {
		t.Fatalf("expected bare header size of 4, got %d", c.Size())
	}
}
