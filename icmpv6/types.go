// Package icmpv6 implements a bidirectional codec for ICMPv6 protocol data
// units: header parsing, per-message-type variable fields, Neighbor
// Discovery options, RFC 4884 extension framing, and the pseudo-header
// checksum. IPv6 datagram assembly, a generic PDU-chaining framework and
// the RFC 4884 extension objects themselves are external collaborators
// (see gopacket.NetworkLayer, gopacket.SerializableLayer and package
// icmpext respectively); this package only describes when and how the
// core invokes them.
package icmpv6

import "errors"

// Type is the ICMPv6 message type field (RFC 4443 and friends).
type Type uint8

// Message types this codec dispatches on. Values are the wire-exact
// numbers assigned by IANA; names exist for readability only.
const (
	TypeDestUnreachable Type = 1
	TypePacketTooBig    Type = 2
	TypeTimeExceeded    Type = 3
	TypeParamProblem    Type = 4
	TypeEchoRequest     Type = 128
	TypeEchoReply       Type = 129
	TypeRouterSolicit   Type = 133
	TypeRouterAdvert    Type = 134
	TypeNeighborSolicit Type = 135
	TypeNeighborAdvert  Type = 136
	TypeRedirect        Type = 137
)

func (t Type) String() string {
	switch t {
	case TypeDestUnreachable:
		return "destination-unreachable"
	case TypePacketTooBig:
		return "packet-too-big"
	case TypeTimeExceeded:
		return "time-exceeded"
	case TypeParamProblem:
		return "parameter-problem"
	case TypeEchoRequest:
		return "echo-request"
	case TypeEchoReply:
		return "echo-reply"
	case TypeRouterSolicit:
		return "router-solicitation"
	case TypeRouterAdvert:
		return "router-advertisement"
	case TypeNeighborSolicit:
		return "neighbor-solicitation"
	case TypeNeighborAdvert:
		return "neighbor-advertisement"
	case TypeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// HasTargetAddress reports whether the type-dispatched body carries a
// 16-octet target_address field (spec.md §3, "Body addresses").
func (t Type) HasTargetAddress() bool {
	switch t {
	case TypeNeighborSolicit, TypeNeighborAdvert, TypeRedirect:
		return true
	default:
		return false
	}
}

// HasDestAddress reports whether the type-dispatched body carries a
// 16-octet dest_address field.
func (t Type) HasDestAddress() bool {
	return t == TypeRedirect
}

// HasOptions reports whether Neighbor Discovery options can follow the
// fixed fields for this type.
func (t Type) HasOptions() bool {
	switch t {
	case TypeNeighborSolicit, TypeNeighborAdvert, TypeRouterSolicit, TypeRouterAdvert, TypeRedirect:
		return true
	default:
		return false
	}
}

// AllowsExtensions reports whether RFC 4884 extension framing applies to
// this type. Only TIME_EXCEEDED is recognised by this core.
func (t Type) AllowsExtensions() bool {
	return t == TypeTimeExceeded
}

// Sentinel errors making up the error surface from spec.md §7. Wrap them
// with fmt.Errorf("...: %w", err) for context; callers compare with
// errors.Is.
var (
	// ErrMalformedPacket is raised by the parser on short reads or
	// internally inconsistent length fields.
	ErrMalformedPacket = errors.New("icmpv6: malformed packet")
	// ErrMalformedOption is raised by typed option decoders when the
	// payload size doesn't match the decoded structure.
	ErrMalformedOption = errors.New("icmpv6: malformed option")
	// ErrOptionNotFound is the lookup outcome for search_<X> accessors
	// when no matching option record exists.
	ErrOptionNotFound = errors.New("icmpv6: option not found")
)
