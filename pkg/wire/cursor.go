package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer indicates a read ran past the end of the underlying buffer.
var ErrShortBuffer = errors.New("wire: short buffer")

// Cursor is a seekable reader/writer over a byte buffer. Reads advance the
// position and fail with ErrShortBuffer instead of panicking; writes grow
// the backing buffer as needed.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a read cursor over an existing buffer.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewWriteCursor creates a cursor suitable for building a new buffer.
func NewWriteCursor() *Cursor {
	return &Cursor{buf: make([]byte, 0, 64)}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the accumulated buffer (for a write cursor, the encoded output).
func (c *Cursor) Bytes() []byte { return c.buf }

// Seek repositions the cursor to an absolute offset.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return fmt.Errorf("%w: seek to %d, len %d", ErrShortBuffer, pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

func (c *Cursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, c.pos, len(c.buf))
	}
	return nil
}

// ReadBytes reads n raw bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// WriteBytes appends raw bytes.
func (c *Cursor) WriteBytes(b []byte) {
	c.buf = append(c.buf, b...)
}

// ReadU8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// WriteU8 appends an unsigned 8-bit integer.
func (c *Cursor) WriteU8(v uint8) {
	c.buf = append(c.buf, v)
}

// ReadI8 reads a signed 8-bit integer.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// WriteI8 appends a signed 8-bit integer.
func (c *Cursor) WriteI8(v int8) {
	c.WriteU8(uint8(v))
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// WriteU16 appends a little-endian unsigned 16-bit integer.
func (c *Cursor) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

// ReadI16 reads a little-endian signed 16-bit integer.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// WriteI16 appends a little-endian signed 16-bit integer.
func (c *Cursor) WriteI16(v int16) {
	c.WriteU16(uint16(v))
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// WriteU32 appends a little-endian unsigned 32-bit integer.
func (c *Cursor) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

// ReadI32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// WriteI32 appends a little-endian signed 32-bit integer.
func (c *Cursor) WriteI32(v int32) {
	c.WriteU32(uint32(v))
}

// ReadF32 reads a little-endian IEEE-754 single-precision float.
// NaN is a valid decode result and signals "sensor not present" to callers.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteF32 appends a little-endian IEEE-754 single-precision float.
func (c *Cursor) WriteF32(v float32) {
	c.WriteU32(math.Float32bits(v))
}

// ReadString reads a u8-length-prefixed ASCII string.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadU8()
	if err != nil {
		return "", err
	}
	b, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteString appends a u8-length-prefixed ASCII string.
func (c *Cursor) WriteString(s string) error {
	if len(s) > 0xFF {
		return fmt.Errorf("wire: string too long (%d bytes)", len(s))
	}
	c.WriteU8(uint8(len(s)))
	c.buf = append(c.buf, s...)
	return nil
}

// ReadVarBytes reads a u8-length-prefixed byte slice.
func (c *Cursor) ReadVarBytes() ([]byte, error) {
	n, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// WriteVarBytes appends a u8-length-prefixed byte slice.
func (c *Cursor) WriteVarBytes(b []byte) error {
	if len(b) > 0xFF {
		return fmt.Errorf("wire: bytes too long (%d bytes)", len(b))
	}
	c.WriteU8(uint8(len(b)))
	c.buf = append(c.buf, b...)
	return nil
}
