package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)

	ev1 := Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-1",
		Direction:    DirectionIn,
		Category:     CategoryFrame,
		Frame:        &FrameEvent{FrameType: 0x35, Size: 40, Name: "SensorDataMessage"},
	}
	ev2 := Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-1",
		Direction:    DirectionOut,
		Category:     CategoryState,
		StateChange:  &StateChangeEvent{OldState: "HANDSHAKE", NewState: "READY"},
	}

	fl.Log(ev1)
	fl.Log(ev2)
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	var got1, got2 Event
	require.NoError(t, dec.Decode(&got1))
	require.NoError(t, dec.Decode(&got2))

	require.Equal(t, "conn-1", got1.ConnectionID)
	require.Equal(t, CategoryFrame, got1.Category)
	require.NotNil(t, got1.Frame)
	require.Equal(t, uint8(0x35), got1.Frame.FrameType)

	require.Equal(t, CategoryState, got2.Category)
	require.NotNil(t, got2.StateChange)
	require.Equal(t, "READY", got2.StateChange.NewState)
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")

	fl1, err := NewFileLogger(path)
	require.NoError(t, err)
	fl1.Log(Event{ConnectionID: "a"})
	require.NoError(t, fl1.Close())

	fl2, err := NewFileLogger(path)
	require.NoError(t, err)
	fl2.Log(Event{ConnectionID: "b"})
	require.NoError(t, fl2.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	var got Event
	require.NoError(t, dec.Decode(&got))
	require.Equal(t, "a", got.ConnectionID)
	require.NoError(t, dec.Decode(&got))
	require.Equal(t, "b", got.ConnectionID)
}

func TestFileLoggerIgnoresLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)
	require.NoError(t, fl.Close())
	require.NoError(t, fl.Close()) // idempotent

	fl.Log(Event{ConnectionID: "ignored"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestFileLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*FileLogger)(nil)
}
