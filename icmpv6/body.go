package icmpv6

import "net/netip"

// Body holds the type-dependent fixed fields that follow the header's
// 8 octets: embedded addresses and, for ROUTER_ADVERT, the reachable/
// retransmit timers (spec.md §3, "Body addresses" / "Router-advert
// timers"). Which fields are meaningful is governed entirely by the
// enclosing Header.Type; the zero Body is valid for types that use none
// of these fields.
type Body struct {
	TargetAddress   netip.Addr
	DestAddress     netip.Addr
	ReachableTime   uint32
	RetransmitTimer uint32
}

func (b *Body) size(t Type) int {
	n := 0
	if t.HasTargetAddress() {
		n += 16
	}
	if t.HasDestAddress() {
		n += 16
	}
	if t == TypeRouterAdvert {
		n += 8
	}
	return n
}

func readAddr(r *reader) (netip.Addr, error) {
	raw, err := r.readBytes(16)
	if err != nil {
		return netip.Addr{}, err
	}
	var a [16]byte
	copy(a[:], raw)
	return netip.AddrFrom16(a), nil
}

func (b *Body) decode(r *reader, t Type) error {
	if t.HasTargetAddress() {
		addr, err := readAddr(r)
		if err != nil {
			return err
		}
		b.TargetAddress = addr
	}
	if t.HasDestAddress() {
		addr, err := readAddr(r)
		if err != nil {
			return err
		}
		b.DestAddress = addr
	}
	if t == TypeRouterAdvert {
		reachable, err := r.readUint32()
		if err != nil {
			return err
		}
		retrans, err := r.readUint32()
		if err != nil {
			return err
		}
		b.ReachableTime = reachable
		b.RetransmitTimer = retrans
	}
	return nil
}

func (b *Body) encode(w *writer, t Type) {
	if t.HasTargetAddress() {
		addr16 := b.TargetAddress.As16()
		w.writeBytes(addr16[:])
	}
	if t.HasDestAddress() {
		addr16 := b.DestAddress.As16()
		w.writeBytes(addr16[:])
	}
	if t == TypeRouterAdvert {
		w.writeUint32(b.ReachableTime)
		w.writeUint32(b.RetransmitTimer)
	}
}
