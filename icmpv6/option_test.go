package icmpv6

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionListAddRemoveAccounting(t *testing.T) {
	var l OptionList
	l.Add(Option{Kind: OptSourceLinkLayerAddress, Payload: []byte{1, 2, 3, 4, 5, 6}})
	require.Equal(t, 8, l.Size())
	require.Equal(t, 1, l.Len())

	l.Add(Option{Kind: OptMTU, Payload: make([]byte, 6)})
	require.Equal(t, 16, l.Size())

	require.True(t, l.Remove(OptSourceLinkLayerAddress))
	assert.Equal(t, 8, l.Size())
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Remove(OptSourceLinkLayerAddress))
}

func TestOptionListSearchNotFound(t *testing.T) {
	var l OptionList
	_, err := l.Search(OptMTU)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOptionNotFound))
}

func TestOptionListDecodeRejectsZeroLength(t *testing.T) {
	var l OptionList
	r := newReader([]byte{0x01, 0x00})
	err := l.decode(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPacket))
}

func TestOptionListRoundTrip(t *testing.T) {
	var l OptionList
	l.SetSourceLinkLayerAddress([6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})

	buf := make([]byte, l.Size())
	w := newWriter(buf)
	require.NoError(t, l.encode(w))

	var decoded OptionList
	require.NoError(t, decoded.decode(newReader(buf)))

	mac, err := decoded.SourceLinkLayerAddress()
	require.NoError(t, err)
	assert.Equal(t, [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, mac)
}

func TestTypedOptionPaddingInvariant(t *testing.T) {
	var l OptionList
	l.SetNonce([]byte{1, 2, 3})
	for _, rec := range l.All() {
		assert.Zero(t, (len(rec.Payload)+2)%8, "option payload does not pad to a multiple of 8")
	}
}

func TestPrefixInformationRoundTrip(t *testing.T) {
	var l OptionList
	want := PrefixInfo{
		PrefixLength:      64,
		OnLink:            true,
		Autonomous:        true,
		ValidLifetime:     2592000,
		PreferredLifetime: 604800,
		Prefix:            mustAddr("2001:db8::"),
	}
	l.SetPrefixInformation(want)

	got, err := l.PrefixInformation()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDNSSearchListStrictLengthGuard(t *testing.T) {
	// A label byte claiming to consume the entire remaining payload
	// (rather than leaving room for the terminating zero octet) must be
	// rejected, per spec.md §9's preserved open-question behavior.
	var l OptionList
	payload := []byte{0, 0, 0, 0, 0, 0, 3, 'a', 'b', 'c'} // label len 3, exactly fills remainder
	l.Add(Option{Kind: OptDNSSearchList, Payload: payload})

	_, err := l.DNSSearchListOption()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedOption))
}

func TestDNSSearchListRoundTrip(t *testing.T) {
	var l OptionList
	want := DNSSearchList{Lifetime: 3600, Domains: []string{"example.com", "go.dev"}}
	l.SetDNSSearchList(want)

	got, err := l.DNSSearchListOption()
	require.NoError(t, err)
	assert.Equal(t, want.Lifetime, got.Lifetime)
	assert.Equal(t, want.Domains, got.Domains)
}

func TestHomeAgentInformationUsesRFCLayout(t *testing.T) {
	var l OptionList
	want := HomeAgentInfo{ReservedFlags: 0, Preference: 10, Lifetime: 1800}
	l.SetHomeAgentInformation(want)

	opt, err := l.Search(OptHomeAgentInformation)
	require.NoError(t, err)
	// Distinct offsets, unlike the original C++ source's same-offset bug.
	assert.Equal(t, byte(0), opt.Payload[0])
	assert.Equal(t, byte(10), opt.Payload[3])
	assert.Equal(t, byte(1800>>8), opt.Payload[4])

	got, err := l.HomeAgentInformation()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
