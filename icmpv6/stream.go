package icmpv6

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounded read cursor over a caller-owned buffer. Every read
// past the end of buf fails with ErrMalformedPacket, matching spec.md
// §4.1's "reads fail when short".
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) canRead(n int) bool {
	return n >= 0 && r.off+n <= len(r.buf)
}

func (r *reader) remaining() []byte {
	return r.buf[r.off:]
}

func (r *reader) skip(n int) error {
	if !r.canRead(n) {
		return fmt.Errorf("%w: cannot skip %d bytes, %d remaining", ErrMalformedPacket, n, len(r.buf)-r.off)
	}
	r.off += n
	return nil
}

func (r *reader) readUint8() (uint8, error) {
	if !r.canRead(1) {
		return 0, fmt.Errorf("%w: short read for u8", ErrMalformedPacket)
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) readUint16() (uint16, error) {
	if !r.canRead(2) {
		return 0, fmt.Errorf("%w: short read for u16", ErrMalformedPacket)
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) readUint32() (uint32, error) {
	if !r.canRead(4) {
		return 0, fmt.Errorf("%w: short read for u32", ErrMalformedPacket)
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) readUint64() (uint64, error) {
	if !r.canRead(8) {
		return 0, fmt.Errorf("%w: short read for u64", ErrMalformedPacket)
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if !r.canRead(n) {
		return nil, fmt.Errorf("%w: short read for %d bytes", ErrMalformedPacket, n)
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

// writer is a fixed-size write cursor. The caller sizes the backing
// buffer exactly (header_size() + inner size + trailer_size()); writes
// past the end panic on a slice bounds error, since that indicates a
// codec sizing bug rather than malformed input.
type writer struct {
	buf []byte
	off int
}

func newWriter(buf []byte) *writer {
	return &writer{buf: buf}
}

func (w *writer) writeUint8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *writer) writeUint16(v uint16) {
	binary.BigEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *writer) writeUint32(v uint32) {
	binary.BigEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *writer) writeUint64(v uint64) {
	binary.BigEndian.PutUint64(w.buf[w.off:], v)
	w.off += 8
}

func (w *writer) writeBytes(b []byte) {
	copy(w.buf[w.off:w.off+len(b)], b)
	w.off += len(b)
}

func (w *writer) zero(n int) {
	for i := 0; i < n; i++ {
		w.buf[w.off+i] = 0
	}
	w.off += n
}
