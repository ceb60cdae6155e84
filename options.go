package pyplumio

import (
	"github.com/google/uuid"
	"github.com/pyplumio/pyplumio-go/pkg/log"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// openConfig collects OpenTCP/OpenSerial options before a Connection is
// built.
type openConfig struct {
	logger      log.Logger
	networkInfo structures.NetworkInfo
	connID      string
	raw         bool
}

// Option configures a Connection at open time.
type Option func(*openConfig)

// WithLogger routes the connection's protocol and state-change events
// through logger instead of discarding them.
func WithLogger(logger log.Logger) Option {
	return func(c *openConfig) { c.logger = logger }
}

// WithNetworkInfo overrides the NetworkInfo block this library advertises
// back to the controller during the handshake. Without this option the
// connection advertises structures.DefaultNetworkInfo.
func WithNetworkInfo(info structures.NetworkInfo) Option {
	return func(c *openConfig) { c.networkInfo = info }
}

// WithConnectionID overrides the connection identifier attached to every
// logged event. Without this option a random one is generated.
func WithConnectionID(id string) Option {
	return func(c *openConfig) { c.connID = id }
}

// WithRawFrames opens the connection without running the driver's
// handshake or device model at all: Connect only opens the transport, and
// the caller reads and writes frames directly with ReadFrame/WriteFrame.
// This mirrors the DummyProtocol alternative to the full protocol stack.
func WithRawFrames() Option {
	return func(c *openConfig) { c.raw = true }
}

func newOpenConfig(opts []Option) *openConfig {
	cfg := &openConfig{
		logger:      log.NoopLogger{},
		networkInfo: structures.DefaultNetworkInfo(),
		connID:      uuid.New().String(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
