package structures_test

import (
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductInfo(t *testing.T) {
	w := wire.NewWriteCursor()
	w.WriteU8(0x04)
	w.WriteU16(0x0054)
	require.NoError(t, w.WriteVarBytes([]byte{0, 1, 2, 3, 4, 5}))
	w.WriteU16(0)
	w.WriteU16(0)
	require.NoError(t, w.WriteString("ecoMAX 850i"))

	r := wire.NewCursor(w.Bytes())
	info, err := structures.DecodeProductInfo(r)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x04), info.ProductType)
	assert.Equal(t, uint16(0x0054), info.ID)
	assert.NotEmpty(t, info.UID)
	assert.Equal(t, "ecoMAX 850i", info.Model)
}

func TestDecodeProductInfoTruncatedPayload(t *testing.T) {
	r := wire.NewCursor([]byte{0x01})
	_, err := structures.DecodeProductInfo(r)
	assert.Error(t, err)
}
