package icmpv6

import "github.com/google/gopacket"

// innerPayload wraps the "remaining bytes" collaborator spec.md §1 calls
// out as a raw byte container external to this core: gopacket.Payload
// already is exactly that (a byte slice implementing gopacket.Layer /
// gopacket.SerializableLayer). This file only adds the nil-safe get/set
// helpers the codec needs around it (spec.md §3, "Inner payload").

// innerPayloadBytes returns the raw bytes of p, or nil if p is nil.
func innerPayloadBytes(p *gopacket.Payload) []byte {
	if p == nil {
		return nil
	}
	return []byte(*p)
}

// setInnerPayload points *p at a freshly allocated gopacket.Payload holding
// a copy of data.
func setInnerPayload(p **gopacket.Payload, data []byte) {
	pl := gopacket.Payload(append([]byte(nil), data...))
	*p = &pl
}
