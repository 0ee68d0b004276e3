package icmpv6

import (
	"fmt"
	"net/netip"

	"github.com/google/gopacket"
)

// PseudoHeaderer is the "IPv6 datagram assembly" external collaborator
// spec.md §1 places out of scope, narrowed to exactly the surface the
// checksum needs (spec.md §4.5): the enclosing datagram's source and
// destination addresses.
type PseudoHeaderer interface {
	SrcAddr() netip.Addr
	DstAddr() netip.Addr
}

// networkLayerPseudoHeader adapts a gopacket.NetworkLayer to
// PseudoHeaderer, the same shape as gopacket/layers.TCP's
// SetNetworkLayerForChecksum(gopacket.NetworkLayer) — this is the module's
// concrete binding of that collaborator interface (SPEC_FULL.md's DOMAIN
// STACK table).
type networkLayerPseudoHeader struct {
	src, dst netip.Addr
}

func (p networkLayerPseudoHeader) SrcAddr() netip.Addr { return p.src }
func (p networkLayerPseudoHeader) DstAddr() netip.Addr { return p.dst }

// newPseudoHeaderFromNetworkLayer extracts the source/destination
// addresses gopacket exposes through a network layer's flow. It requires
// both flow endpoints to carry a 16-octet address, matching this core's
// IPv6-only checksum (spec.md §4.5's pseudo-header is IPv6-shaped).
func newPseudoHeaderFromNetworkLayer(l gopacket.NetworkLayer) (PseudoHeaderer, error) {
	flow := l.NetworkFlow()
	srcEP, dstEP := flow.Endpoints()
	src, err := addrFromEndpoint(srcEP)
	if err != nil {
		return nil, fmt.Errorf("icmpv6: pseudo-header source: %w", err)
	}
	dst, err := addrFromEndpoint(dstEP)
	if err != nil {
		return nil, fmt.Errorf("icmpv6: pseudo-header destination: %w", err)
	}
	return networkLayerPseudoHeader{src: src, dst: dst}, nil
}

func addrFromEndpoint(ep gopacket.Endpoint) (netip.Addr, error) {
	raw := ep.Raw()
	if len(raw) != 16 {
		return netip.Addr{}, fmt.Errorf("expected a 16-octet IPv6 address, got %d octets", len(raw))
	}
	var a [16]byte
	copy(a[:], raw)
	return netip.AddrFrom16(a), nil
}
