package icmpv6

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// This file implements C11 (typed-option accessors): a bijection between
// each recognised OptionKind's payload bytes and a small Go struct. Both
// directions validate length and report ErrMalformedOption on mismatch
// (spec.md §4.2). Encoding always zero-pads the payload so that
// (len(payload)+2) is a multiple of 8 (spec.md §3, "Option record"
// invariant); decoding is grounded byte-for-byte on
// original_source/src/icmpv6.cpp's setters and from_option() methods,
// per SPEC_FULL.md's supplemented-features section.

func addOptionPadded(l *OptionList, kind OptionKind, payload []byte) {
	pad := padTo8(len(payload))
	if pad > 0 {
		payload = append(payload, make([]byte, pad)...)
	}
	l.Add(Option{Kind: kind, Payload: payload})
}

// --- SOURCE_ADDRESS / TARGET_ADDRESS: 6-octet link-layer address ---

func (l *OptionList) SetSourceLinkLayerAddress(mac [6]byte) {
	addOptionPadded(l, OptSourceLinkLayerAddress, mac[:])
}

func (l *OptionList) SetTargetLinkLayerAddress(mac [6]byte) {
	addOptionPadded(l, OptTargetLinkLayerAddress, mac[:])
}

func linkLayerAddr6(l *OptionList, kind OptionKind) ([6]byte, error) {
	var out [6]byte
	opt, err := l.Search(kind)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 6 {
		return out, fmt.Errorf("%w: link-layer address option too short", ErrMalformedOption)
	}
	copy(out[:], opt.Payload[:6])
	return out, nil
}

func (l *OptionList) SourceLinkLayerAddress() ([6]byte, error) {
	return linkLayerAddr6(l, OptSourceLinkLayerAddress)
}

func (l *OptionList) TargetLinkLayerAddress() ([6]byte, error) {
	return linkLayerAddr6(l, OptTargetLinkLayerAddress)
}

// --- PREFIX_INFO ---

// PrefixInfo is the RFC 4861 §4.6.2 Prefix Information option payload.
type PrefixInfo struct {
	PrefixLength      uint8
	OnLink            bool // L bit
	Autonomous        bool // A bit
	ValidLifetime     uint32
	PreferredLifetime uint32
	Prefix            netip.Addr
}

func (l *OptionList) SetPrefixInformation(p PrefixInfo) {
	buf := make([]byte, 2+4+4+4+16)
	buf[0] = p.PrefixLength
	if p.OnLink {
		buf[1] |= 1 << 7
	}
	if p.Autonomous {
		buf[1] |= 1 << 6
	}
	binary.BigEndian.PutUint32(buf[2:6], p.ValidLifetime)
	binary.BigEndian.PutUint32(buf[6:10], p.PreferredLifetime)
	// buf[10:14] is reserved, left zero.
	addr16 := p.Prefix.As16()
	copy(buf[14:30], addr16[:])
	addOptionPadded(l, OptPrefixInformation, buf)
}

func (l *OptionList) PrefixInformation() (PrefixInfo, error) {
	var out PrefixInfo
	opt, err := l.Search(OptPrefixInformation)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 2+4+4+4+16 {
		return out, fmt.Errorf("%w: prefix information option has wrong size", ErrMalformedOption)
	}
	p := opt.Payload
	out.PrefixLength = p[0]
	out.OnLink = p[1]&(1<<7) != 0
	out.Autonomous = p[1]&(1<<6) != 0
	out.ValidLifetime = binary.BigEndian.Uint32(p[2:6])
	out.PreferredLifetime = binary.BigEndian.Uint32(p[6:10])
	var addr [16]byte
	copy(addr[:], p[14:30])
	out.Prefix = netip.AddrFrom16(addr)
	return out, nil
}

// --- REDIRECT_HEADER: opaque payload ---

func (l *OptionList) SetRedirectedHeader(data []byte) {
	addOptionPadded(l, OptRedirectedHeader, append([]byte(nil), data...))
}

func (l *OptionList) RedirectedHeader() ([]byte, error) {
	opt, err := l.Search(OptRedirectedHeader)
	if err != nil {
		return nil, err
	}
	return opt.Payload, nil
}

// --- MTU: 2 reserved octets + mtu:u32 ---

func (l *OptionList) SetMTU(mtu uint32) {
	buf := make([]byte, 2+4)
	binary.BigEndian.PutUint32(buf[2:6], mtu)
	addOptionPadded(l, OptMTU, buf)
}

func (l *OptionList) MTU() (uint32, error) {
	opt, err := l.Search(OptMTU)
	if err != nil {
		return 0, err
	}
	if len(opt.Payload) != 6 {
		return 0, fmt.Errorf("%w: MTU option has wrong size", ErrMalformedOption)
	}
	return binary.BigEndian.Uint32(opt.Payload[2:6]), nil
}

// --- NBMA_SHORT_LIMIT: limit:u8, reserved1:u8, reserved2:u32 ---

type NBMAShortcutLimit struct {
	Limit     uint8
	Reserved1 uint8
	Reserved2 uint32
}

func (l *OptionList) SetNBMAShortcutLimit(v NBMAShortcutLimit) {
	buf := make([]byte, 6)
	buf[0] = v.Limit
	buf[1] = v.Reserved1
	binary.BigEndian.PutUint32(buf[2:6], v.Reserved2)
	addOptionPadded(l, OptNBMAShortcutLimit, buf)
}

func (l *OptionList) NBMAShortcutLimit() (NBMAShortcutLimit, error) {
	var out NBMAShortcutLimit
	opt, err := l.Search(OptNBMAShortcutLimit)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 6 {
		return out, fmt.Errorf("%w: NBMA shortcut limit option has wrong size", ErrMalformedOption)
	}
	out.Limit = opt.Payload[0]
	out.Reserved1 = opt.Payload[1]
	out.Reserved2 = binary.BigEndian.Uint32(opt.Payload[2:6])
	return out, nil
}

// --- ADVERT_INTERVAL: reserved:u16, interval:u32 ---

type AdvertisementInterval struct {
	Reserved uint16
	Interval uint32
}

func (l *OptionList) SetAdvertisementInterval(v AdvertisementInterval) {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], v.Reserved)
	binary.BigEndian.PutUint32(buf[2:6], v.Interval)
	addOptionPadded(l, OptAdvertisementInterval, buf)
}

func (l *OptionList) AdvertisementInterval() (AdvertisementInterval, error) {
	var out AdvertisementInterval
	opt, err := l.Search(OptAdvertisementInterval)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 6 {
		return out, fmt.Errorf("%w: advertisement interval option has wrong size", ErrMalformedOption)
	}
	out.Reserved = binary.BigEndian.Uint16(opt.Payload[0:2])
	out.Interval = binary.BigEndian.Uint32(opt.Payload[2:6])
	return out, nil
}

// --- HOME_AGENT_INFO: three u16 values ---

// HomeAgentInfo is the RFC 6275 §7.4 Home Agent Information option: three
// big-endian u16 fields (a reserved/flags word, a preference, and a
// lifetime). The original C++ source writes all three values at the
// same buffer offset (`buffer + sizeof(uint16_t)`, repeated three times
// — a bug documented as an open question in spec.md §9). Per spec.md
// §9's guidance this implementation uses the RFC-correct layout
// instead: ReservedFlags at wire offset 2-3 (payload offset 0-1),
// Preference at wire offset 4-5 (payload offset 2-3), Lifetime at wire
// offset 6-7 (payload offset 4-5).
type HomeAgentInfo struct {
	ReservedFlags uint16
	Preference    uint16
	Lifetime      uint16
}

func (l *OptionList) SetHomeAgentInformation(v HomeAgentInfo) {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], v.ReservedFlags)
	binary.BigEndian.PutUint16(buf[2:4], v.Preference)
	binary.BigEndian.PutUint16(buf[4:6], v.Lifetime)
	addOptionPadded(l, OptHomeAgentInformation, buf)
}

func (l *OptionList) HomeAgentInformation() (HomeAgentInfo, error) {
	var out HomeAgentInfo
	opt, err := l.Search(OptHomeAgentInformation)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 6 {
		return out, fmt.Errorf("%w: home agent information option has wrong size", ErrMalformedOption)
	}
	out.ReservedFlags = binary.BigEndian.Uint16(opt.Payload[0:2])
	out.Preference = binary.BigEndian.Uint16(opt.Payload[2:4])
	out.Lifetime = binary.BigEndian.Uint16(opt.Payload[4:6])
	return out, nil
}

// --- S_ADDRESS_LIST / T_ADDRESS_LIST: 6 reserved + N*16 addresses ---

func addrList(l *OptionList, kind OptionKind, addrs []netip.Addr) {
	buf := make([]byte, 6+16*len(addrs))
	for i, a := range addrs {
		a16 := a.As16()
		copy(buf[6+i*16:6+(i+1)*16], a16[:])
	}
	addOptionPadded(l, kind, buf)
}

func readAddrList(l *OptionList, kind OptionKind) ([]netip.Addr, error) {
	opt, err := l.Search(kind)
	if err != nil {
		return nil, err
	}
	if len(opt.Payload) < 6+16 || (len(opt.Payload)-6)%16 != 0 {
		return nil, fmt.Errorf("%w: address list option has wrong size", ErrMalformedOption)
	}
	ptr := opt.Payload[6:]
	out := make([]netip.Addr, 0, len(ptr)/16)
	for len(ptr) > 0 {
		var a [16]byte
		copy(a[:], ptr[:16])
		out = append(out, netip.AddrFrom16(a))
		ptr = ptr[16:]
	}
	return out, nil
}

func (l *OptionList) SetSourceAddressList(addrs []netip.Addr) {
	addrList(l, OptSourceAddressList, addrs)
}

func (l *OptionList) SourceAddressList() ([]netip.Addr, error) {
	return readAddrList(l, OptSourceAddressList)
}

func (l *OptionList) SetTargetAddressList(addrs []netip.Addr) {
	addrList(l, OptTargetAddressList, addrs)
}

func (l *OptionList) TargetAddressList() ([]netip.Addr, error) {
	return readAddrList(l, OptTargetAddressList)
}

// --- RSA_SIGN: 2 reserved + 16-byte key hash + signature bytes (>=1) ---

type RSASignature struct {
	KeyHash   [16]byte
	Signature []byte
}

func (l *OptionList) SetRSASignature(v RSASignature) {
	buf := make([]byte, 2+16+len(v.Signature))
	copy(buf[2:18], v.KeyHash[:])
	copy(buf[18:], v.Signature)
	addOptionPadded(l, OptRSASignature, buf)
}

func (l *OptionList) RSASignature() (RSASignature, error) {
	var out RSASignature
	opt, err := l.Search(OptRSASignature)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2+16+1 {
		return out, fmt.Errorf("%w: RSA signature option too short", ErrMalformedOption)
	}
	copy(out.KeyHash[:], opt.Payload[2:18])
	out.Signature = opt.Payload[18:]
	return out, nil
}

// --- TIMESTAMP: 6 reserved + timestamp:u64 ---

func (l *OptionList) SetTimestamp(ts uint64) {
	buf := make([]byte, 6+8)
	binary.BigEndian.PutUint64(buf[6:14], ts)
	addOptionPadded(l, OptTimestamp, buf)
}

func (l *OptionList) Timestamp() (uint64, error) {
	opt, err := l.Search(OptTimestamp)
	if err != nil {
		return 0, err
	}
	if len(opt.Payload) != 6+8 {
		return 0, fmt.Errorf("%w: timestamp option has wrong size", ErrMalformedOption)
	}
	return binary.BigEndian.Uint64(opt.Payload[6:14]), nil
}

// --- NONCE: opaque bytes ---

func (l *OptionList) SetNonce(v []byte) {
	addOptionPadded(l, OptNonce, append([]byte(nil), v...))
}

func (l *OptionList) Nonce() ([]byte, error) {
	opt, err := l.Search(OptNonce)
	if err != nil {
		return nil, err
	}
	return opt.Payload, nil
}

// --- IP_PREFIX: option_code:u8, prefix_len:u8, 4 reserved, 16-octet addr ---

type IPAddressPrefix struct {
	OptionCode   uint8
	PrefixLength uint8
	Address      netip.Addr
}

func (l *OptionList) SetIPAddressPrefix(v IPAddressPrefix) {
	buf := make([]byte, 2+4+16)
	buf[0] = v.OptionCode
	buf[1] = v.PrefixLength
	addr16 := v.Address.As16()
	copy(buf[6:22], addr16[:])
	addOptionPadded(l, OptIPAddressPrefix, buf)
}

func (l *OptionList) IPAddressPrefix() (IPAddressPrefix, error) {
	var out IPAddressPrefix
	opt, err := l.Search(OptIPAddressPrefix)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 2+4+16 {
		return out, fmt.Errorf("%w: IP address/prefix option has wrong size", ErrMalformedOption)
	}
	out.OptionCode = opt.Payload[0]
	out.PrefixLength = opt.Payload[1]
	var addr [16]byte
	copy(addr[:], opt.Payload[6:22])
	out.Address = netip.AddrFrom16(addr)
	return out, nil
}

// --- LINK_ADDRESS: option_code:u8, link-layer bytes, padded to 8 ---

type LinkLayerAddress struct {
	OptionCode uint8
	Address    []byte
}

func (l *OptionList) SetLinkLayerAddress(v LinkLayerAddress) {
	buf := make([]byte, 1+len(v.Address))
	buf[0] = v.OptionCode
	copy(buf[1:], v.Address)
	addOptionPadded(l, OptLinkLayerAddress, buf)
}

func (l *OptionList) LinkLayerAddress() (LinkLayerAddress, error) {
	var out LinkLayerAddress
	opt, err := l.Search(OptLinkLayerAddress)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 1 {
		return out, fmt.Errorf("%w: link-layer address option too short", ErrMalformedOption)
	}
	out.OptionCode = opt.Payload[0]
	out.Address = opt.Payload[1:]
	return out, nil
}

// --- NAACK: code:u8, status:u8, 4 reserved octets ---

type NAACK struct {
	Code   uint8
	Status uint8
}

func (l *OptionList) SetNAACK(v NAACK) {
	buf := make([]byte, 6)
	buf[0] = v.Code
	buf[1] = v.Status
	addOptionPadded(l, OptNAACK, buf)
}

func (l *OptionList) NAACK() (NAACK, error) {
	var out NAACK
	opt, err := l.Search(OptNAACK)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 6 {
		return out, fmt.Errorf("%w: NAACK option has wrong size", ErrMalformedOption)
	}
	out.Code = opt.Payload[0]
	out.Status = opt.Payload[1]
	return out, nil
}

// --- MAP: (dist:u4, pref:u4), (r:u1, reserved:u7), valid_lifetime:u32,
// 16-octet address ---

type MAP struct {
	Distance      uint8
	Preference    uint8
	RouterBit     bool
	ValidLifetime uint32
	Address       netip.Addr
}

func (l *OptionList) SetMAP(v MAP) {
	buf := make([]byte, 2+4+16)
	buf[0] = (v.Distance << 4) | (v.Preference & 0x0f)
	if v.RouterBit {
		buf[1] |= 1 << 7
	}
	binary.BigEndian.PutUint32(buf[2:6], v.ValidLifetime)
	addr16 := v.Address.As16()
	copy(buf[6:22], addr16[:])
	addOptionPadded(l, OptMAP, buf)
}

func (l *OptionList) MAP() (MAP, error) {
	var out MAP
	opt, err := l.Search(OptMAP)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) != 2+4+16 {
		return out, fmt.Errorf("%w: MAP option has wrong size", ErrMalformedOption)
	}
	out.Distance = (opt.Payload[0] >> 4) & 0x0f
	out.Preference = opt.Payload[0] & 0x0f
	out.RouterBit = opt.Payload[1]&(1<<7) != 0
	out.ValidLifetime = binary.BigEndian.Uint32(opt.Payload[2:6])
	var addr [16]byte
	copy(addr[:], opt.Payload[6:22])
	out.Address = netip.AddrFrom16(addr)
	return out, nil
}

// --- ROUTE_INFO: prefix_len:u8, (reserved:3,pref:2,reserved:3) byte,
// route_lifetime:u32, prefix bytes padded to 8 ---

type RouteInformation struct {
	PrefixLength  uint8
	Preference    uint8
	RouteLifetime uint32
	Prefix        []byte
}

func (l *OptionList) SetRouteInformation(v RouteInformation) {
	buf := make([]byte, 2+4+len(v.Prefix))
	buf[0] = v.PrefixLength
	buf[1] = (v.Preference & 0x3) << 3
	binary.BigEndian.PutUint32(buf[2:6], v.RouteLifetime)
	copy(buf[6:], v.Prefix)
	addOptionPadded(l, OptRouteInformation, buf)
}

func (l *OptionList) RouteInformation() (RouteInformation, error) {
	var out RouteInformation
	opt, err := l.Search(OptRouteInformation)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2+4 {
		return out, fmt.Errorf("%w: route information option too short", ErrMalformedOption)
	}
	out.PrefixLength = opt.Payload[0]
	out.Preference = (opt.Payload[1] >> 3) & 0x3
	out.RouteLifetime = binary.BigEndian.Uint32(opt.Payload[2:6])
	out.Prefix = opt.Payload[6:]
	return out, nil
}

// --- RECURSIVE_DNS_SERV: 2 reserved, lifetime:u32, N*16 server addrs ---

type RecursiveDNSServer struct {
	Lifetime uint32
	Servers  []netip.Addr
}

func (l *OptionList) SetRecursiveDNSServers(v RecursiveDNSServer) {
	buf := make([]byte, 2+4+16*len(v.Servers))
	binary.BigEndian.PutUint32(buf[2:6], v.Lifetime)
	for i, a := range v.Servers {
		a16 := a.As16()
		copy(buf[6+i*16:6+(i+1)*16], a16[:])
	}
	addOptionPadded(l, OptRecursiveDNSServer, buf)
}

func (l *OptionList) RecursiveDNSServers() (RecursiveDNSServer, error) {
	var out RecursiveDNSServer
	opt, err := l.Search(OptRecursiveDNSServer)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2+4+16 {
		return out, fmt.Errorf("%w: recursive DNS server option too short", ErrMalformedOption)
	}
	out.Lifetime = binary.BigEndian.Uint32(opt.Payload[2:6])
	ptr := opt.Payload[6:]
	if len(ptr)%16 != 0 {
		return out, fmt.Errorf("%w: recursive DNS server option has partial address", ErrMalformedOption)
	}
	for len(ptr) > 0 {
		var a [16]byte
		copy(a[:], ptr[:16])
		out.Servers = append(out.Servers, netip.AddrFrom16(a))
		ptr = ptr[16:]
	}
	return out, nil
}

// --- HANDOVER_KEY_REQ (RFC 5568-style: padding count + AT + key) ---

type HandoverKeyRequest struct {
	AT  uint8 // 2-bit authentication token type
	Key []byte
}

func (l *OptionList) SetHandoverKeyRequest(v HandoverKeyRequest) {
	unpadded := 2 + len(v.Key)
	pad := 8 - (len(v.Key)+4)%8
	if pad == 8 {
		pad = 0
	}
	buf := make([]byte, unpadded+pad)
	buf[0] = uint8(pad)
	buf[1] = (v.AT & 0x3) << 4
	copy(buf[2:], v.Key)
	l.Add(Option{Kind: OptHandoverKeyRequest, Payload: buf})
}

func (l *OptionList) HandoverKeyRequest() (HandoverKeyRequest, error) {
	var out HandoverKeyRequest
	opt, err := l.Search(OptHandoverKeyRequest)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2 {
		return out, fmt.Errorf("%w: handover key request option too short", ErrMalformedOption)
	}
	pad := int(opt.Payload[0])
	out.AT = (opt.Payload[1] >> 4) & 0x3
	body := opt.Payload[2:]
	if len(body) < pad {
		return out, fmt.Errorf("%w: handover key request padding exceeds payload", ErrMalformedOption)
	}
	out.Key = body[:len(body)-pad]
	return out, nil
}

// --- HANDOVER_KEY_REPLY: padding count + AT + lifetime:u16 + key ---

type HandoverKeyReply struct {
	AT       uint8
	Lifetime uint16
	Key      []byte
}

func (l *OptionList) SetHandoverKeyReply(v HandoverKeyReply) {
	dataSize := 2 + 2 + len(v.Key)
	pad := 8 - (dataSize+2)%8
	if pad == 8 {
		pad = 0
	}
	buf := make([]byte, dataSize+pad)
	buf[0] = uint8(pad)
	buf[1] = (v.AT & 0x3) << 4
	binary.BigEndian.PutUint16(buf[2:4], v.Lifetime)
	copy(buf[4:], v.Key)
	l.Add(Option{Kind: OptHandoverKeyReply, Payload: buf})
}

func (l *OptionList) HandoverKeyReply() (HandoverKeyReply, error) {
	var out HandoverKeyReply
	opt, err := l.Search(OptHandoverKeyReply)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 4 {
		return out, fmt.Errorf("%w: handover key reply option too short", ErrMalformedOption)
	}
	pad := int(opt.Payload[0])
	out.AT = (opt.Payload[1] >> 4) & 0x3
	out.Lifetime = binary.BigEndian.Uint16(opt.Payload[2:4])
	body := opt.Payload[4:]
	if len(body) < pad {
		return out, fmt.Errorf("%w: handover key reply padding exceeds payload", ErrMalformedOption)
	}
	out.Key = body[:len(body)-pad]
	return out, nil
}

// --- HANDOVER_ASSIST_INFO: option_code:u8, len:u8, hai bytes ---

type HandoverAssistInfo struct {
	OptionCode uint8
	HAI        []byte
}

func (l *OptionList) SetHandoverAssistInfo(v HandoverAssistInfo) {
	dataSize := 2 + len(v.HAI)
	pad := 8 - (dataSize+2)%8
	if pad == 8 {
		pad = 0
	}
	buf := make([]byte, dataSize+pad)
	buf[0] = v.OptionCode
	buf[1] = uint8(len(v.HAI))
	copy(buf[2:], v.HAI)
	l.Add(Option{Kind: OptHandoverAssistInfo, Payload: buf})
}

func (l *OptionList) HandoverAssistInfo() (HandoverAssistInfo, error) {
	var out HandoverAssistInfo
	opt, err := l.Search(OptHandoverAssistInfo)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2 {
		return out, fmt.Errorf("%w: handover assist info option too short", ErrMalformedOption)
	}
	out.OptionCode = opt.Payload[0]
	length := int(opt.Payload[1])
	if len(opt.Payload)-2 < length {
		return out, fmt.Errorf("%w: handover assist info length exceeds payload", ErrMalformedOption)
	}
	out.HAI = opt.Payload[2 : 2+length]
	return out, nil
}

// --- MOBILE_NODE_ID: option_code:u8, len:u8, mn bytes ---

type MobileNodeIdentifier struct {
	OptionCode uint8
	MN         []byte
}

func (l *OptionList) SetMobileNodeIdentifier(v MobileNodeIdentifier) {
	dataSize := 2 + len(v.MN)
	pad := 8 - (dataSize+2)%8
	if pad == 8 {
		pad = 0
	}
	buf := make([]byte, dataSize+pad)
	buf[0] = v.OptionCode
	buf[1] = uint8(len(v.MN))
	copy(buf[2:], v.MN)
	l.Add(Option{Kind: OptMobileNodeIdentifier, Payload: buf})
}

func (l *OptionList) MobileNodeIdentifier() (MobileNodeIdentifier, error) {
	var out MobileNodeIdentifier
	opt, err := l.Search(OptMobileNodeIdentifier)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2 {
		return out, fmt.Errorf("%w: mobile node identifier option too short", ErrMalformedOption)
	}
	out.OptionCode = opt.Payload[0]
	length := int(opt.Payload[1])
	if len(opt.Payload)-2 < length {
		return out, fmt.Errorf("%w: mobile node identifier length exceeds payload", ErrMalformedOption)
	}
	out.MN = opt.Payload[2 : 2+length]
	return out, nil
}

// --- DNS_SEARCH_LIST: 2 reserved, lifetime:u32, dot-labelled domains ---

type DNSSearchList struct {
	Lifetime uint32
	Domains  []string
}

func (l *OptionList) SetDNSSearchList(v DNSSearchList) {
	buf := make([]byte, 2+4)
	binary.BigEndian.PutUint32(buf[2:6], v.Lifetime)
	for _, domain := range v.Domains {
		start := 0
		for start <= len(domain) {
			idx := indexByte(domain[start:], '.')
			var end int
			if idx < 0 {
				end = len(domain)
			} else {
				end = start + idx
			}
			label := domain[start:end]
			buf = append(buf, uint8(len(label)))
			buf = append(buf, label...)
			if idx < 0 {
				break
			}
			start = end + 1
		}
		buf = append(buf, 0) // domain delimiter
	}
	addOptionPadded(l, OptDNSSearchList, buf)
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// DNSSearchListOption decodes the DNS_SEARCH_LIST option. Per spec.md §9's
// open question, the label-length comparison against the remaining
// buffer is strict-less (`label_len < remaining`), matching
// original_source/src/icmpv6.cpp: a label that exactly fills the
// remaining payload is rejected with ErrMalformedOption rather than
// accepted.
func (l *OptionList) DNSSearchListOption() (DNSSearchList, error) {
	var out DNSSearchList
	opt, err := l.Search(OptDNSSearchList)
	if err != nil {
		return out, err
	}
	if len(opt.Payload) < 2+4 {
		return out, fmt.Errorf("%w: DNS search list option too short", ErrMalformedOption)
	}
	out.Lifetime = binary.BigEndian.Uint32(opt.Payload[2:6])
	ptr := opt.Payload[6:]
	for len(ptr) > 0 && ptr[0] != 0 {
		var domain []byte
		for len(ptr) > 0 && ptr[0] != 0 && int(ptr[0]) < len(ptr) {
			labelLen := int(ptr[0])
			if len(domain) > 0 {
				domain = append(domain, '.')
			}
			domain = append(domain, ptr[1:1+labelLen]...)
			ptr = ptr[1+labelLen:]
		}
		if len(ptr) > 0 && ptr[0] != 0 {
			return out, fmt.Errorf("%w: DNS search list label overruns payload", ErrMalformedOption)
		}
		out.Domains = append(out.Domains, string(domain))
		if len(ptr) == 0 {
			return out, fmt.Errorf("%w: DNS search list missing terminating zero", ErrMalformedOption)
		}
		ptr = ptr[1:]
	}
	return out, nil
}
