// Package config loads connection and network-identity settings from a
// YAML file, the same way it would be handed to OpenTCP/OpenSerial in code.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pyplumio/pyplumio-go/pkg/connection"
	"github.com/pyplumio/pyplumio-go/pkg/structures"
)

// TransportConfig selects and configures the physical link to the
// controller: exactly one of TCP or Serial should be populated.
type TransportConfig struct {
	TCP    *TCPConfig    `yaml:"tcp,omitempty"`
	Serial *SerialConfig `yaml:"serial,omitempty"`
}

// TCPConfig configures a network-attached ecoNET adapter (RS-485/Wi-Fi
// module).
type TCPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SerialConfig configures a directly wired RS-485 converter.
type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate,omitempty"`
}

// EthernetConfig mirrors structures.EthernetParameters for YAML loading.
type EthernetConfig struct {
	Status  bool   `yaml:"status"`
	IP      string `yaml:"ip,omitempty"`
	Netmask string `yaml:"netmask,omitempty"`
	Gateway string `yaml:"gateway,omitempty"`
}

// WirelessConfig mirrors structures.WirelessParameters for YAML loading.
type WirelessConfig struct {
	Status        bool   `yaml:"status"`
	IP            string `yaml:"ip,omitempty"`
	Netmask       string `yaml:"netmask,omitempty"`
	Gateway       string `yaml:"gateway,omitempty"`
	SignalQuality uint8  `yaml:"signal_quality,omitempty"`
	Encryption    string `yaml:"encryption,omitempty"` // "none", "wep", "wpa", "wpa2"
	SSID          string `yaml:"ssid,omitempty"`
}

// NetworkInfoConfig is what this library reports about itself back to the
// controller during the handshake.
type NetworkInfoConfig struct {
	Ethernet     EthernetConfig `yaml:"ethernet,omitempty"`
	Wireless     WirelessConfig `yaml:"wireless,omitempty"`
	ServerStatus bool           `yaml:"server_status"`
}

// BackoffConfig configures the reconnection delay curve.
type BackoffConfig struct {
	InitialMs  int     `yaml:"initial_ms,omitempty"`
	MaxMs      int     `yaml:"max_ms,omitempty"`
	Multiplier float64 `yaml:"multiplier,omitempty"`
	Jitter     float64 `yaml:"jitter,omitempty"`
}

// LoggingConfig selects where protocol frame logging is written.
type LoggingConfig struct {
	FilePath string `yaml:"file_path,omitempty"`
}

// Config is the top-level connection configuration.
type Config struct {
	Transport TransportConfig   `yaml:"transport"`
	Network   NetworkInfoConfig `yaml:"network_info,omitempty"`
	Backoff   BackoffConfig     `yaml:"backoff,omitempty"`
	Logging   LoggingConfig     `yaml:"logging,omitempty"`
}

// Default returns a Config with an inert ethernet-only NetworkInfo and the
// library's default backoff curve, suitable as a starting point before
// overriding Transport.
func Default() *Config {
	return &Config{
		Network: NetworkInfoConfig{
			Ethernet: EthernetConfig{
				Status:  true,
				IP:      "0.0.0.0",
				Netmask: "255.255.255.0",
				Gateway: "0.0.0.0",
			},
			ServerStatus: true,
		},
		Backoff: BackoffConfig{
			InitialMs:  int(connection.InitialBackoff / time.Millisecond),
			MaxMs:      int(connection.MaxBackoff / time.Millisecond),
			Multiplier: connection.BackoffMultiplier,
			Jitter:     connection.JitterFactor,
		},
	}
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks that exactly one transport is configured and every
// field is within an acceptable range.
func Validate(cfg *Config) error {
	if (cfg.Transport.TCP == nil) == (cfg.Transport.Serial == nil) {
		return fmt.Errorf("exactly one of transport.tcp or transport.serial must be set")
	}
	if cfg.Transport.TCP != nil {
		if cfg.Transport.TCP.Host == "" {
			return fmt.Errorf("transport.tcp.host is required")
		}
		if cfg.Transport.TCP.Port <= 0 || cfg.Transport.TCP.Port > 65535 {
			return fmt.Errorf("transport.tcp.port must be between 1 and 65535")
		}
	}
	if cfg.Transport.Serial != nil {
		if cfg.Transport.Serial.Device == "" {
			return fmt.Errorf("transport.serial.device is required")
		}
	}
	if cfg.Backoff.MaxMs > 0 && cfg.Backoff.InitialMs > cfg.Backoff.MaxMs {
		return fmt.Errorf("backoff.initial_ms must not exceed backoff.max_ms")
	}
	if w := cfg.Network.Wireless; w.Status {
		switch w.Encryption {
		case "", "none", "wep", "wpa", "wpa2":
		default:
			return fmt.Errorf("network_info.wireless.encryption must be one of none, wep, wpa, wpa2")
		}
	}
	return nil
}

// NetworkInfo converts the loaded configuration into the wire-level
// structure the driver's handshake advertises.
func (c *Config) NetworkInfo() structures.NetworkInfo {
	return structures.NetworkInfo{
		Ethernet: structures.EthernetParameters{
			Status:  c.Network.Ethernet.Status,
			IP:      c.Network.Ethernet.IP,
			Netmask: c.Network.Ethernet.Netmask,
			Gateway: c.Network.Ethernet.Gateway,
		},
		Wireless: structures.WirelessParameters{
			Status:        c.Network.Wireless.Status,
			IP:            c.Network.Wireless.IP,
			Netmask:       c.Network.Wireless.Netmask,
			Gateway:       c.Network.Wireless.Gateway,
			SignalQuality: c.Network.Wireless.SignalQuality,
			Encryption:    encryptionFromString(c.Network.Wireless.Encryption),
			SSID:          c.Network.Wireless.SSID,
		},
		ServerStatus: c.Network.ServerStatus,
	}
}

func encryptionFromString(s string) structures.Encryption {
	switch s {
	case "none":
		return structures.EncryptionNone
	case "wep":
		return structures.EncryptionWEP
	case "wpa":
		return structures.EncryptionWPA
	case "wpa2":
		return structures.EncryptionWPA2
	default:
		return structures.EncryptionUnknown
	}
}

// BackoffConfig converts the loaded backoff settings into a
// connection.BackoffConfig, ready for connection.NewBackoffWithConfig.
func (c *Config) BackoffConfig() connection.BackoffConfig {
	return connection.BackoffConfig{
		Initial:    time.Duration(c.Backoff.InitialMs) * time.Millisecond,
		Max:        time.Duration(c.Backoff.MaxMs) * time.Millisecond,
		Multiplier: c.Backoff.Multiplier,
		Jitter:     c.Backoff.Jitter,
	}
}
