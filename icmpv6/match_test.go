package icmpv6

import "testing"

func TestMatchesResponse(t *testing.T) {
	req := NewMessage(TypeEchoRequest)
	req.Header.SetEchoIdentifier(0x1234)
	req.Header.SetEchoSequence(7)

	reply := NewMessage(TypeEchoReply)
	reply.Header.SetEchoIdentifier(0x1234)
	reply.Header.SetEchoSequence(7)
	replyBytes, err := reply.Marshal(nil)
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}

	if !req.MatchesResponse(replyBytes) {
		t.Fatalf("expected matching identifier/sequence to match")
	}
}

func TestMatchesResponseRejectsMismatch(t *testing.T) {
	req := NewMessage(TypeEchoRequest)
	req.Header.SetEchoIdentifier(1)
	req.Header.SetEchoSequence(1)

	other := NewMessage(TypeEchoReply)
	other.Header.SetEchoIdentifier(2)
	other.Header.SetEchoSequence(1)
	otherBytes, _ := other.Marshal(nil)

	if req.MatchesResponse(otherBytes) {
		t.Fatalf("expected identifier mismatch to reject")
	}
}

func TestMatchesResponseRejectsNonEchoRequest(t *testing.T) {
	req := NewMessage(TypeRouterSolicit)
	reply := NewMessage(TypeEchoReply)
	replyBytes, _ := reply.Marshal(nil)
	if req.MatchesResponse(replyBytes) {
		t.Fatalf("only ECHO_REQUEST should ever match")
	}
}
