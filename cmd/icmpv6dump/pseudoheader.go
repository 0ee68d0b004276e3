package main

import (
	"fmt"
	"net/netip"
)

type staticPseudoHeader struct{ src, dst netip.Addr }

func (p staticPseudoHeader) SrcAddr() netip.Addr { return p.src }
func (p staticPseudoHeader) DstAddr() netip.Addr { return p.dst }

func newPseudoHeader(src, dst string) (staticPseudoHeader, error) {
	s, err := netip.ParseAddr(src)
	if err != nil {
		return staticPseudoHeader{}, fmt.Errorf("src: %w", err)
	}
	d, err := netip.ParseAddr(dst)
	if err != nil {
		return staticPseudoHeader{}, fmt.Errorf("dst: %w", err)
	}
	return staticPseudoHeader{src: s, dst: d}, nil
}
