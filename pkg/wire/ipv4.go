package wire

import "fmt"

// ReadIPv4 reads four raw bytes and renders them as a dotted-decimal
// address string.
func (c *Cursor) ReadIPv4() (string, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3]), nil
}

// WriteIPv4 parses a dotted-decimal address string and appends its four
// raw bytes. A malformed address is written as 0.0.0.0 rather than
// failing, since network info is advisory configuration, not wire data
// whose corruption should abort an encode.
func (c *Cursor) WriteIPv4(addr string) {
	var a, b, d, e int
	if n, err := fmt.Sscanf(addr, "%d.%d.%d.%d", &a, &b, &d, &e); err != nil || n != 4 {
		c.WriteBytes([]byte{0, 0, 0, 0})
		return
	}
	c.WriteBytes([]byte{byte(a), byte(b), byte(d), byte(e)})
}
