package icmpv6

import (
	"encoding/binary"
	"fmt"

	"github.com/google/gopacket"

	"github.com/ljx0305/libtins/icmpext"
)

// LayerTypeICMPv6 registers Message with gopacket so it can sit in a
// decode chain (spec.md §1's "generic PDU-chaining framework"
// collaborator — this package plugs into gopacket's chaining rather than
// reimplementing one, per SPEC_FULL.md's DOMAIN STACK).
var LayerTypeICMPv6 = gopacket.RegisterLayerType(
	6001,
	gopacket.LayerTypeMetadata{Name: "ICMPv6", Decoder: gopacket.DecodeFunc(decodeICMPv6)},
)

func decodeICMPv6(data []byte, p gopacket.PacketBuilder) error {
	m := &Message{}
	if err := m.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(m)
	return p.NextDecoder(gopacket.LayerTypePayload)
}

// Message is the codec's top-level type: a parsed or hand-built ICMPv6
// PDU (spec.md §2's C8, wrapping C3-C7). It implements
// gopacket.DecodingLayer and gopacket.SerializableLayer so it composes
// with the rest of a gopacket decode/serialize pipeline.
type Message struct {
	Header  Header
	Body    Body
	Options OptionList

	// Extensions is the RFC 4884 extension collaborator (spec.md §3,
	// "Extensions (C7)"); nil unless populated by DecodeFromBytes or
	// assigned directly by the caller. Only meaningful when
	// Header.Type.AllowsExtensions().
	Extensions *icmpext.Container

	// Payload is the raw inner-PDU collaborator (spec.md §3, "Inner
	// payload"); nil if there are no trailing bytes.
	Payload *gopacket.Payload

	pseudoHeader PseudoHeaderer
	raw          []byte
}

// NewMessage builds an empty PDU of the given type: zeroed addresses and
// timers, no options, no extensions, no inner payload (spec.md §3,
// "Lifecycle", case (a)).
func NewMessage(t Type) *Message {
	return &Message{Header: Header{Type: t}}
}

// ParseMessage is the non-gopacket convenience entry point for
// `from_bytes` (spec.md §4.3).
func ParseMessage(buf []byte) (*Message, error) {
	m := &Message{}
	if err := m.DecodeFromBytes(buf, gopacket.NilDecodeFeedback); err != nil {
		return nil, err
	}
	return m, nil
}

// SetPseudoHeader records the pseudo-header collaborator used to compute
// the checksum on the next Marshal/SerializeTo call.
func (m *Message) SetPseudoHeader(ph PseudoHeaderer) { m.pseudoHeader = ph }

// SetNetworkLayerForChecksum adapts a gopacket.NetworkLayer into this
// message's pseudo-header collaborator, mirroring
// gopacket/layers.TCP.SetNetworkLayerForChecksum's signature and intent.
func (m *Message) SetNetworkLayerForChecksum(l gopacket.NetworkLayer) error {
	ph, err := newPseudoHeaderFromNetworkLayer(l)
	if err != nil {
		return err
	}
	m.pseudoHeader = ph
	return nil
}

// --- gopacket.Layer / gopacket.DecodingLayer ---

func (m *Message) LayerType() gopacket.LayerType     { return LayerTypeICMPv6 }
func (m *Message) LayerContents() []byte             { return m.raw }
func (m *Message) LayerPayload() []byte              { return innerPayloadBytes(m.Payload) }
func (m *Message) CanDecode() gopacket.LayerClass    { return LayerTypeICMPv6 }
func (m *Message) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

// DecodeFromBytes implements spec.md §4.3's `from_bytes` parser.
func (m *Message) DecodeFromBytes(data []byte, _ gopacket.DecodeFeedback) error {
	m.raw = data
	m.Extensions = nil
	m.Payload = nil
	m.Options = OptionList{}

	r := newReader(data)
	if err := m.Header.decode(r); err != nil {
		return err
	}
	t := m.Header.Type

	if err := m.Body.decode(r, t); err != nil {
		return err
	}

	if t.HasOptions() {
		if err := m.Options.decode(r); err != nil {
			return err
		}
		return nil // spec.md §4.3 step 6: options consume the remainder for ND types.
	}

	if t.AllowsExtensions() {
		length := m.Header.ExtensionLength()
		if length > 0 {
			declaredPaddedInner := int(length) * 8
			remaining := r.remaining()
			if declaredPaddedInner > len(remaining) {
				return fmt.Errorf("%w: declared extension length %d exceeds %d remaining bytes", ErrMalformedPacket, declaredPaddedInner, len(remaining))
			}
			innerBytes := remaining[:declaredPaddedInner]
			extBytes := remaining[declaredPaddedInner:]
			if len(innerBytes) > 0 {
				setInnerPayload(&m.Payload, innerBytes)
			}
			if len(extBytes) > 0 {
				ext, err := icmpext.Parse(extBytes)
				if err != nil {
					return err
				}
				m.Extensions = ext
			}
			return nil
		}
	}

	// spec.md §4.3 step 8: remaining bytes become the inner payload.
	if remaining := r.remaining(); len(remaining) > 0 {
		setInnerPayload(&m.Payload, remaining)
	}
	return nil
}

func (m *Message) innerSize() int {
	return len(innerPayloadBytes(m.Payload))
}

func (m *Message) optionsSize() int {
	if m.Header.Type.HasOptions() {
		return m.Options.Size()
	}
	return 0
}

// headerSize implements spec.md §4.3's header_size() formula.
func (m *Message) headerSize() int {
	return m.Header.size() + m.Body.size(m.Header.Type) + m.optionsSize()
}

// trailerSize implements spec.md §4.3's trailer_size() formula.
func (m *Message) trailerSize() int {
	if !m.Header.Type.AllowsExtensions() || m.Extensions == nil {
		return 0
	}
	return extensionsTrailerSize(m.Extensions, m.innerSize())
}

// toBytes is the shared implementation behind Marshal and SerializeTo:
// spec.md §4.3's `to_bytes(out, parent)`.
func (m *Message) toBytes(ph PseudoHeaderer, withChecksum bool) ([]byte, error) {
	t := m.Header.Type
	inner := innerPayloadBytes(m.Payload)

	hdr := m.Header
	if t.AllowsExtensions() && m.Extensions != nil {
		hdr.SetExtensionLength(extensionLengthUnits(len(inner)))
	}

	total := m.headerSize() + m.innerSize() + m.trailerSize()
	buf := make([]byte, total)
	w := newWriter(buf)

	hdr.encode(w)
	m.Body.encode(w, t)
	if t.HasOptions() {
		if err := m.Options.encode(w); err != nil {
			return nil, err
		}
	}

	if t.AllowsExtensions() && m.Extensions != nil {
		padded := paddedInnerSize(len(inner))
		if padded > 0 && padded < 128 {
			padded = 128
		}
		w.writeBytes(inner)
		w.zero(padded - len(inner))
		extBytes, err := m.Extensions.Serialize()
		if err != nil {
			return nil, err
		}
		w.writeBytes(extBytes)
	} else {
		w.writeBytes(inner)
	}

	if withChecksum && ph != nil {
		cksum := computeChecksum(ph, buf)
		binary.BigEndian.PutUint16(buf[2:4], cksum)
	}
	return buf, nil
}

// Marshal implements spec.md §4.3's `to_bytes` for callers outside a
// gopacket pipeline: ph may be nil, in which case the checksum field is
// left at zero (spec.md §7: "if no parent IPv6 context is supplied ...
// checksum is left at zero and patching is skipped").
func (m *Message) Marshal(ph PseudoHeaderer) ([]byte, error) {
	return m.toBytes(ph, ph != nil)
}

// SerializeTo implements gopacket.SerializableLayer.
func (m *Message) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	buf, err := m.toBytes(m.pseudoHeader, opts.ComputeChecksums)
	if err != nil {
		return err
	}
	bytes, err := b.PrependBytes(len(buf))
	if err != nil {
		return err
	}
	copy(bytes, buf)
	return nil
}
