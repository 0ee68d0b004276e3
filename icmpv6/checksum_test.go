package icmpv6

import (
	"encoding/binary"
	"net/netip"
	"testing"
)

type staticPseudoHeader struct{ src, dst netip.Addr }

func (p staticPseudoHeader) SrcAddr() netip.Addr { return p.src }
func (p staticPseudoHeader) DstAddr() netip.Addr { return p.dst }

// TestChecksumFoldsToAllOnes checks spec.md §8's "Checksum" property:
// the one's-complement sum of pseudo-header ++ serialized bytes folds to
// 0xFFFF once the checksum field holds the correct value.
func TestChecksumFoldsToAllOnes(t *testing.T) {
	ph := staticPseudoHeader{src: netip.MustParseAddr("::1"), dst: netip.MustParseAddr("::1")}
	serialized := []byte{0x80, 0x00, 0x00, 0x00, 0x12, 0x34, 0x00, 0x07}

	cksum := computeChecksum(ph, serialized)
	binary.BigEndian.PutUint16(serialized[2:4], cksum)

	sum := pseudoHeaderSum(ph, len(serialized))
	sum = sumBytes(sum, serialized)
	if folded := foldChecksum(sum); folded != 0xFFFF {
		t.Fatalf("expected fold to 0xFFFF, got %#x", folded)
	}
}

func TestFoldChecksumCarries(t *testing.T) {
	if got := foldChecksum(0x1FFFF); got != 0x0001 {
		t.Fatalf("expected end-around carry fold to give 1, got %#x", got)
	}
}

func TestSumBytesOddLength(t *testing.T) {
	sum := sumBytes(0, []byte{0x01})
	if sum != 0x0100 {
		t.Fatalf("expected trailing byte treated as high octet, got %#x", sum)
	}
}
