package icmpv6

import "encoding/binary"

// nextHeaderICMPv6 is the upper-layer protocol number ICMPv6 occupies in
// the IPv6 pseudo-header (spec.md §6).
const nextHeaderICMPv6 = 58

// sumBytes adds the 16-bit big-endian words of b into a running
// accumulator, treating a trailing odd byte as the high octet of a final
// word (spec.md §4.5). Grounded on the teacher's one's-complement fold in
// listener/tun/ipstack/system/mars/tcpip.Checksum, generalised from a
// fixed sum-then-fold call into the two-stage accumulate/fold split this
// codec needs (pseudo-header words, then the serialized message).
func sumBytes(sum uint32, b []byte) uint32 {
	n := len(b)
	for i := 0; i+1 < n; i += 2 {
		sum += uint32(binary.BigEndian.Uint16(b[i : i+2]))
	}
	if n%2 == 1 {
		sum += uint32(b[n-1]) << 8
	}
	return sum
}

func foldChecksum(sum uint32) uint16 {
	for sum>>16 != 0 {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return uint16(sum)
}

// pseudoHeaderSum accumulates the IPv6 pseudo-header words: src_addr (8
// words), dst_addr (8 words), upper-layer length (as a 32-bit value split
// into two 16-bit words), and next_header=58 (also as a 32-bit value).
func pseudoHeaderSum(ph PseudoHeaderer, upperLayerLength int) uint32 {
	var sum uint32
	src := ph.SrcAddr().As16()
	dst := ph.DstAddr().As16()
	sum = sumBytes(sum, src[:])
	sum = sumBytes(sum, dst[:])

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(upperLayerLength))
	sum = sumBytes(sum, lenBuf[:])

	var nhBuf [4]byte
	binary.BigEndian.PutUint32(nhBuf[:], nextHeaderICMPv6)
	sum = sumBytes(sum, nhBuf[:])
	return sum
}

// computeChecksum implements spec.md §4.5 in full: pseudo-header sum plus
// the one's-complement sum of the serialized ICMPv6 bytes, folded and
// complemented. serialized must have its checksum field already zeroed.
func computeChecksum(ph PseudoHeaderer, serialized []byte) uint16 {
	sum := pseudoHeaderSum(ph, len(serialized))
	sum = sumBytes(sum, serialized)
	return ^foldChecksum(sum)
}
