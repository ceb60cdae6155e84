package structures_test

import (
	"testing"

	"github.com/pyplumio/pyplumio-go/pkg/structures"
	"github.com/pyplumio/pyplumio-go/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameVersionsRoundTrip(t *testing.T) {
	versions := structures.FrameVersions{0x39: 3, 0x55: 1}

	w := wire.NewWriteCursor()
	structures.EncodeFrameVersions(w, versions)

	r := wire.NewCursor(w.Bytes())
	got, err := structures.DecodeFrameVersions(r)
	require.NoError(t, err)
	assert.Equal(t, versions, got)
}

func TestFrameVersionsDiverging(t *testing.T) {
	current := structures.FrameVersions{0x39: 3, 0x55: 1, 0x60: 2}
	requested := structures.FrameVersions{0x39: 3, 0x55: 0}

	diverging := current.Diverging(requested)
	assert.ElementsMatch(t, []uint16{0x55, 0x60}, diverging)
}

func TestFrameVersionsDivergingNoneWhenEqual(t *testing.T) {
	current := structures.FrameVersions{0x39: 3}
	requested := structures.FrameVersions{0x39: 3}
	assert.Empty(t, current.Diverging(requested))
}
