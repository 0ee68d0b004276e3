package icmpv6

import "testing"

func TestBodySizeByType(t *testing.T) {
	var b Body
	cases := []struct {
		t    Type
		want int
	}{
		{TypeEchoRequest, 0},
		{TypeNeighborSolicit, 16},
		{TypeNeighborAdvert, 16},
		{TypeRedirect, 32},
		{TypeRouterAdvert, 8},
	}
	for _, c := range cases {
		if got := b.size(c.t); got != c.want {
			t.Errorf("size(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestBodyDecodeFailsShortBuffer(t *testing.T) {
	var b Body
	r := newReader([]byte{1, 2, 3})
	if err := b.decode(r, TypeNeighborSolicit); err == nil {
		t.Fatalf("expected malformed_packet for truncated target address")
	}
}

func TestBodyRouterAdvertTimers(t *testing.T) {
	var b Body
	b.ReachableTime = 30000
	b.RetransmitTimer = 1000
	buf := make([]byte, b.size(TypeRouterAdvert))
	b.encode(newWriter(buf), TypeRouterAdvert)

	var decoded Body
	if err := decoded.decode(newReader(buf), TypeRouterAdvert); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ReachableTime != 30000 || decoded.RetransmitTimer != 1000 {
		t.Fatalf("timers not preserved: %+v", decoded)
	}
}
