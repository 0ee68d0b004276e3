// Package icmpext implements the RFC 4884 extension structure: a small
// versioned header plus a sequence of class/type-tagged objects appended
// after an ICMPv6 message's zero-padded original-datagram field. It is
// the "generic ICMP-extensions container" spec.md §1 names as an
// external collaborator of the icmpv6 codec; icmpv6 only decides when
// and where to invoke Parse/Serialize (see icmpv6.ExtensionContainer).
//
// Grounded on golang.org/x/net/icmp's own extension parser
// (_examples/other_examples/kubernetes-kubernetes__extension.go), which
// establishes the wire layout this package reproduces: a 4-octet header
// (version nibble + reserved, then a 16-bit checksum) followed by
// 4-octet object headers (length, class, c-type) each covering their own
// payload.
package icmpext

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Version is the only RFC 4884 extension structure version this package
// recognises, matching x/net/icmp's extensionVersion.
const Version = 2

// ErrMalformed is returned by Parse when the extension header or an
// object header fails to validate.
var ErrMalformed = errors.New("icmpext: malformed extension structure")

// Object is a single RFC 4884 extension object: MPLS label stacks,
// interface information, and any class/c-type this package doesn't know
// about are all represented uniformly, matching icmpv6's own
// unknown-option-preserving Option (spec.md §3).
type Object struct {
	Class   uint8
	CType   uint8
	Payload []byte
}

func (o Object) wireSize() int { return 4 + len(o.Payload) }

// Container is a full RFC 4884 extension structure: header plus objects.
type Container struct {
	Objects []Object
}

// Size returns the serialized size in octets: the 4-octet structure
// header plus each object's 4-octet header and payload.
func (c *Container) Size() int {
	total := 4
	for _, o := range c.Objects {
		total += o.wireSize()
	}
	return total
}

// Serialize renders c to its wire form with a freshly computed checksum.
func (c *Container) Serialize() ([]byte, error) {
	buf := make([]byte, c.Size())
	buf[0] = Version << 4
	// buf[1] is reserved, left zero; buf[2:4] (checksum) is patched below.
	off := 4
	for _, o := range c.Objects {
		size := o.wireSize()
		if size > 0xFFFF {
			return nil, fmt.Errorf("icmpext: object payload too large (%d bytes)", len(o.Payload))
		}
		binary.BigEndian.PutUint16(buf[off:off+2], uint16(size))
		buf[off+2] = o.Class
		buf[off+3] = o.CType
		copy(buf[off+4:off+size], o.Payload)
		off += size
	}
	binary.BigEndian.PutUint16(buf[2:4], checksum(buf))
	return buf, nil
}

// Parse decodes b as an RFC 4884 extension structure: a 4-octet header
// (version + checksum) followed by zero or more object records. The
// checksum, if nonzero, is verified; a mismatch is reported as
// ErrMalformed rather than silently accepted, mirroring
// validExtensionHeader's strictness in the grounding source.
func Parse(b []byte) (*Container, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("%w: structure shorter than 4 octets", ErrMalformed)
	}
	version := int(b[0]&0xf0) >> 4
	if version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformed, version)
	}
	if s := binary.BigEndian.Uint16(b[2:4]); s != 0 {
		if checksum(b) != 0 {
			return nil, fmt.Errorf("%w: checksum mismatch", ErrMalformed)
		}
	}
	c := &Container{}
	rest := b[4:]
	for len(rest) >= 4 {
		length := int(binary.BigEndian.Uint16(rest[:2]))
		if length < 4 || length > len(rest) {
			return nil, fmt.Errorf("%w: object length %d out of range", ErrMalformed, length)
		}
		c.Objects = append(c.Objects, Object{
			Class:   rest[2],
			CType:   rest[3],
			Payload: append([]byte(nil), rest[4:length]...),
		})
		rest = rest[length:]
	}
	return c, nil
}

// checksum computes the RFC 4884 extension structure's own one's-
// complement checksum, independent of any pseudo-header — this covers
// only the extension bytes themselves.
func checksum(b []byte) uint16 {
	var sum uint32
	n := len(b)
	for i := 0; i+1 < n; i += 2 {
		sum += uint32(binary.BigEndian.Uint16(b[i : i+2]))
	}
	if n%2 == 1 {
		sum += uint32(b[n-1]) << 8
	}
	for sum>>16 != 0 {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return ^uint16(sum)
}
