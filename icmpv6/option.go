package icmpv6

import "fmt"

// OptionKind identifies a Neighbor Discovery option (spec.md §4.2, §6).
// Values match the IANA "IPv6 Neighbor Discovery Option Formats"
// registry entries this core codifies; see SPEC_FULL.md's supplemented
// features for the ones original_source/src/icmpv6.cpp adds beyond
// spec.md's own enumeration.
type OptionKind uint8

const (
	OptSourceLinkLayerAddress OptionKind = 1
	OptTargetLinkLayerAddress OptionKind = 2
	OptPrefixInformation      OptionKind = 3
	OptRedirectedHeader       OptionKind = 4
	OptMTU                    OptionKind = 5
	OptNBMAShortcutLimit      OptionKind = 6
	OptAdvertisementInterval  OptionKind = 7
	OptHomeAgentInformation   OptionKind = 8
	OptSourceAddressList      OptionKind = 9
	OptTargetAddressList      OptionKind = 10
	OptRSASignature           OptionKind = 12
	OptTimestamp              OptionKind = 13
	OptNonce                  OptionKind = 14
	OptIPAddressPrefix        OptionKind = 17
	OptLinkLayerAddress       OptionKind = 19
	OptNAACK                  OptionKind = 20
	OptMAP                    OptionKind = 23
	OptRouteInformation       OptionKind = 24
	OptRecursiveDNSServer     OptionKind = 25
	OptHandoverKeyRequest     OptionKind = 27
	OptHandoverKeyReply       OptionKind = 28
	OptHandoverAssistInfo     OptionKind = 29
	OptMobileNodeIdentifier   OptionKind = 30
	OptDNSSearchList          OptionKind = 31
)

// Option is the untyped {kind, payload} storage form (spec.md §3,
// "Option record (C3)"). The payload is stored verbatim as parsed off
// the wire, minus the kind/length octets, including any intra-payload
// reserved or padding bytes; this is what preserves unrecognised options
// across a round-trip.
type Option struct {
	Kind    OptionKind
	Payload []byte
}

// wireLengthUnits is (1 + 1 + len(payload)) in units of 8 octets, i.e. the
// value written to the option's on-wire length field. No rounding is done:
// a payload whose record is not a multiple of 8 octets is reported as
// ErrMalformedOption.
func (o Option) wireLengthUnits() (uint8, error) {
	total := 2 + len(o.Payload)
	if total%8 != 0 {
		return 0, fmt.Errorf("%w: option payload of %d bytes does not pad to a multiple of 8", ErrMalformedOption, len(o.Payload))
	}
	return uint8(total / 8), nil
}

// padTo8 returns the number of zero bytes to append to a payload of
// length n so that (2 + n + pad) is a multiple of 8.
func padTo8(n int) int {
	rem := (n + 2) % 8
	if rem == 0 {
		return 0
	}
	return 8 - rem
}

// OptionList is the ordered sequence of options carried by Neighbor
// Discovery message types (spec.md §3, "Option list (C6)"). The zero
// value is an empty, usable list.
type OptionList struct {
	records []Option
	size    int // cached Σ(len(payload) + 2), the "options_size" of spec.md
}

// Size returns the cached total serialized size of all options, in
// octets, including their kind/length prefixes.
func (l *OptionList) Size() int { return l.size }

// Len returns the number of option records.
func (l *OptionList) Len() int { return len(l.records) }

// All returns the option records in insertion order. The returned slice
// must not be mutated.
func (l *OptionList) All() []Option { return l.records }

// Add appends rec and increases Size() by len(rec.Payload)+2.
func (l *OptionList) Add(rec Option) {
	l.records = append(l.records, rec)
	l.size += len(rec.Payload) + 2
}

// Remove deletes the first record with the given kind, reports whether
// one was found.
func (l *OptionList) Remove(kind OptionKind) bool {
	for i, rec := range l.records {
		if rec.Kind == kind {
			l.size -= len(rec.Payload) + 2
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns the first record of the given kind.
func (l *OptionList) Search(kind OptionKind) (Option, error) {
	for _, rec := range l.records {
		if rec.Kind == kind {
			return rec, nil
		}
	}
	return Option{}, fmt.Errorf("%w: kind %d", ErrOptionNotFound, kind)
}

func (l *OptionList) decode(r *reader) error {
	for len(r.remaining()) > 0 {
		kind, err := r.readUint8()
		if err != nil {
			return err
		}
		lengthUnits, err := r.readUint8()
		if err != nil {
			return err
		}
		if lengthUnits < 1 {
			return fmt.Errorf("%w: option length field is 0", ErrMalformedPacket)
		}
		payloadSize := int(lengthUnits)*8 - 2
		payload, err := r.readBytes(payloadSize)
		if err != nil {
			return err
		}
		// Copy: the reader's slice aliases the input buffer, which the
		// caller may reuse after Parse returns.
		owned := make([]byte, len(payload))
		copy(owned, payload)
		l.Add(Option{Kind: OptionKind(kind), Payload: owned})
	}
	return nil
}

func (l *OptionList) encode(w *writer) error {
	for _, rec := range l.records {
		units, err := rec.wireLengthUnits()
		if err != nil {
			return err
		}
		w.writeUint8(uint8(rec.Kind))
		w.writeUint8(units)
		w.writeBytes(rec.Payload)
	}
	return nil
}
