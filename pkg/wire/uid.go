package wire

import "strings"

// uid5BitsToChar renders a 5-bit UID chunk (0-31) as ASCII: digits 0-9 for
// 0-9, then A-V for 10-31, with O (visually close to zero) mapped to Z.
func uid5BitsToChar(n int) byte {
	if n < 0 || n >= 32 {
		return '#'
	}
	if n < 10 {
		return byte('0' + n)
	}
	c := byte('A' + n - 10)
	if c == 'O' {
		return 'Z'
	}
	return c
}

// uidStamp computes the two-byte check appended to the raw UID string
// before 5-bit encoding. It is a CRC-16 variant (poly 0xA001, init
// 0xA3A3) applied byte-by-byte over the ASCII UID.
func uidStamp(s string) [2]byte {
	crc := uint16(0xA3A3)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i])
		for b := 0; b < 8; b++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return [2]byte{byte(crc % 256), byte((crc / 256) % 256)}
}

// ReadUID reads a length-prefixed raw UID string and renders it as its
// check-stamped ASCII form, one character (0-9, A-V, with O written as Z)
// per 5 bits: 12 raw bytes plus the 2-byte stamp give 23 characters, with
// no separators.
func (c *Cursor) ReadUID() (string, error) {
	raw, err := c.ReadVarBytes()
	if err != nil {
		return "", err
	}
	return EncodeUID(string(raw)), nil
}

// EncodeUID converts a raw UID payload into its printable 5-bit (base-32) form.
func EncodeUID(raw string) string {
	stamp := uidStamp(raw)
	input := raw + string(stamp[:])

	const baseBits = 5
	const charBits = 8
	inputBits := len(input) * charBits
	outputLen := inputBits / baseBits
	if inputBits%baseBits != 0 {
		outputLen++
	}

	var out strings.Builder
	out.Grow(outputLen)
	chars := make([]byte, outputLen)

	convInt := 0
	convSize := 0
	j := 0
	for i := 0; i < outputLen; i++ {
		if convSize < baseBits && j < len(input) {
			convInt += int(input[j]) << convSize
			convSize += charBits
			j++
		}
		code := convInt % 32
		convInt /= 32
		convSize -= baseBits
		chars[outputLen-1-i] = uid5BitsToChar(code)
	}
	out.Write(chars)
	return out.String()
}
