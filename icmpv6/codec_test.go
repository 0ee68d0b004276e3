package icmpv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljx0305/libtins/icmpext"
)

func TestParseEchoRequest(t *testing.T) {
	in := []byte{0x80, 0x00, 0x00, 0x00, 0x12, 0x34, 0x00, 0x07}
	m, err := ParseMessage(in)
	require.NoError(t, err)
	assert.Equal(t, TypeEchoRequest, m.Header.Type)
	assert.Equal(t, uint8(0), m.Header.Code)
	assert.Equal(t, uint16(0x1234), m.Header.EchoIdentifier())
	assert.Equal(t, uint16(0x0007), m.Header.EchoSequence())
	assert.Equal(t, 0, m.Options.Len())
	assert.Nil(t, m.Payload)

	ph := staticPseudoHeader{src: mustAddr("::1"), dst: mustAddr("::1")}
	out, err := m.Marshal(ph)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	assert.Equal(t, in[:2], out[:2])
	assert.Equal(t, in[4:], out[4:])
	assert.NotEqual(t, uint16(0), be16(out[2:4]))

	sum := pseudoHeaderSum(ph, len(out))
	sum = sumBytes(sum, out)
	assert.Equal(t, uint16(0xFFFF), foldChecksum(sum))
}

func TestNeighborSolicitationWithSourceLinkLayerOption(t *testing.T) {
	m := NewMessage(TypeNeighborSolicit)
	m.Body.TargetAddress = mustAddr("fe80::1")
	m.Options.SetSourceLinkLayerAddress([6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})

	out, err := m.Marshal(nil)
	require.NoError(t, err)

	decoded, err := ParseMessage(out)
	require.NoError(t, err)
	assert.Equal(t, TypeNeighborSolicit, decoded.Header.Type)
	assert.Equal(t, mustAddr("fe80::1"), decoded.Body.TargetAddress)

	mac, err := decoded.Options.SourceLinkLayerAddress()
	require.NoError(t, err)
	assert.Equal(t, [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, mac)

	roundTrip, err := decoded.Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, out, roundTrip)
}

func TestRouterAdvertWithPrefixInformation(t *testing.T) {
	m := NewMessage(TypeRouterAdvert)
	m.Header.SetRouterAdvertHopLimit(64)
	m.Header.SetRouterAdvertManaged(true)
	m.Header.SetRouterAdvertLifetime(1800)
	m.Body.ReachableTime = 30000
	m.Body.RetransmitTimer = 1000

	prefix := PrefixInfo{
		PrefixLength:      64,
		OnLink:            true,
		Autonomous:        true,
		ValidLifetime:     2592000,
		PreferredLifetime: 604800,
		Prefix:            mustAddr("2001:db8::"),
	}
	m.Options.SetPrefixInformation(prefix)

	out, err := m.Marshal(nil)
	require.NoError(t, err)
	require.Equal(t, m.headerSize(), len(out))

	decoded, err := ParseMessage(out)
	require.NoError(t, err)
	assert.Equal(t, uint8(64), decoded.Header.RouterAdvertHopLimit())
	assert.True(t, decoded.Header.RouterAdvertManaged())
	assert.Equal(t, uint16(1800), decoded.Header.RouterAdvertLifetime())
	assert.Equal(t, uint32(30000), decoded.Body.ReachableTime)
	assert.Equal(t, uint32(1000), decoded.Body.RetransmitTimer)

	got, err := decoded.Options.PrefixInformation()
	require.NoError(t, err)
	assert.Equal(t, prefix, got)
}

func TestRedirectFieldOrdering(t *testing.T) {
	m := NewMessage(TypeRedirect)
	m.Body.TargetAddress = mustAddr("fe80::2")
	m.Body.DestAddress = mustAddr("2001:db8::1")

	out, err := m.Marshal(nil)
	require.NoError(t, err)
	require.Len(t, out, 8+16+16)

	target := [16]byte(out[8:24])
	dest := [16]byte(out[24:40])
	assert.Equal(t, mustAddr("fe80::2").As16(), target)
	assert.Equal(t, mustAddr("2001:db8::1").As16(), dest)

	decoded, err := ParseMessage(out)
	require.NoError(t, err)
	assert.Equal(t, mustAddr("fe80::2"), decoded.Body.TargetAddress)
	assert.Equal(t, mustAddr("2001:db8::1"), decoded.Body.DestAddress)
}

func TestTimeExceededWithExtensions(t *testing.T) {
	m := NewMessage(TypeTimeExceeded)
	setInnerPayload(&m.Payload, make([]byte, 40))
	m.Extensions = &icmpext.Container{
		Objects: []icmpext.Object{{Class: 1, CType: 1, Payload: []byte{0xAA, 0xBB}}},
	}

	out, err := m.Marshal(nil)
	require.NoError(t, err)

	// padded inner = max(pad8(40),128) = 128; header length field = 128/8 = 16.
	assert.Equal(t, TypeTimeExceeded, Type(out[0]))
	assert.Equal(t, uint8(16), out[4])

	decoded, err := ParseMessage(out)
	require.NoError(t, err)
	require.NotNil(t, decoded.Extensions)
	require.Len(t, decoded.Extensions.Objects, 1)
	assert.Equal(t, []byte{0xAA, 0xBB}, decoded.Extensions.Objects[0].Payload)
	// The decoder keeps the whole length*8 padded region as the inner payload.
	assert.Equal(t, 128, len(innerPayloadBytes(decoded.Payload)))
}

func TestMalformedOptionLengthZero(t *testing.T) {
	buf := make([]byte, 8+16+2)
	buf[0] = uint8(TypeNeighborSolicit)
	buf[24] = 0x1F // kind
	buf[25] = 0x00 // length = 0, invalid
	_, err := ParseMessage(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestHeaderSizeMatchesOutputLength(t *testing.T) {
	m := NewMessage(TypeNeighborAdvert)
	m.Body.TargetAddress = mustAddr("fe80::1")
	m.Options.SetTargetLinkLayerAddress([6]byte{1, 2, 3, 4, 5, 6})
	setInnerPayload(&m.Payload, []byte{0xDE, 0xAD})

	out, err := m.Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, m.headerSize()+m.innerSize()+m.trailerSize(), len(out))
}
