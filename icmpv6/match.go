package icmpv6

// MatchesResponse implements spec.md §4.4 (C10): reports whether resp,
// still in wire form, is the echo reply that answers m. Only echo
// request/reply pairs are correlated; every other combination reports
// false.
func (m *Message) MatchesResponse(resp []byte) bool {
	if m.Header.Type != TypeEchoRequest {
		return false
	}
	if len(resp) < 8 {
		return false
	}
	if Type(resp[0]) != TypeEchoReply {
		return false
	}
	wantID := m.Header.EchoIdentifier()
	wantSeq := m.Header.EchoSequence()
	gotID := be16(resp[4:6])
	gotSeq := be16(resp[6:8])
	return gotID == wantID && gotSeq == wantSeq
}
