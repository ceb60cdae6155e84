package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// Encryption identifies the wireless encryption standard advertised in a
// DeviceAvailableResponse.
type Encryption uint8

// Recognised encryption standards.
const (
	EncryptionUnknown Encryption = iota
	EncryptionNone
	EncryptionWEP
	EncryptionWPA
	EncryptionWPA2
)

// EthernetParameters describes the controller's wired network interface.
type EthernetParameters struct {
	Status  bool
	IP      string
	Netmask string
	Gateway string
}

// WirelessParameters describes the controller's wireless network interface.
type WirelessParameters struct {
	Status        bool
	IP            string
	Netmask       string
	Gateway       string
	SignalQuality uint8
	Encryption    Encryption
	SSID          string
}

// NetworkInfo is the configuration the library advertises back to the
// controller in a DeviceAvailableResponse during the handshake.
type NetworkInfo struct {
	Ethernet     EthernetParameters
	Wireless     WirelessParameters
	ServerStatus bool
	WANType      uint8
}

// DefaultNetworkInfo returns a NetworkInfo with unconfigured, inert values
// suitable as a starting point for a caller that only wants to report an
// ethernet connection.
func DefaultNetworkInfo() NetworkInfo {
	return NetworkInfo{
		Ethernet: EthernetParameters{
			Status:  true,
			IP:      "0.0.0.0",
			Netmask: "255.255.255.0",
			Gateway: "0.0.0.0",
		},
		Wireless: WirelessParameters{
			IP:         "0.0.0.0",
			Netmask:    "255.255.255.0",
			Gateway:    "0.0.0.0",
			Encryption: EncryptionNone,
		},
		ServerStatus: true,
	}
}

// EncodeNetworkInfo serialises n for a DeviceAvailableResponse.
func EncodeNetworkInfo(w *wire.Cursor, n NetworkInfo) {
	w.WriteU8(boolToByte(n.Ethernet.Status))
	w.WriteIPv4(n.Ethernet.IP)
	w.WriteIPv4(n.Ethernet.Netmask)
	w.WriteIPv4(n.Ethernet.Gateway)

	w.WriteU8(boolToByte(n.Wireless.Status))
	w.WriteIPv4(n.Wireless.IP)
	w.WriteIPv4(n.Wireless.Netmask)
	w.WriteIPv4(n.Wireless.Gateway)
	w.WriteU8(n.Wireless.SignalQuality)
	w.WriteU8(uint8(n.Wireless.Encryption))
	_ = w.WriteString(n.Wireless.SSID)

	w.WriteU8(boolToByte(n.ServerStatus))
	w.WriteU8(n.WANType)
}

// DecodeNetworkInfo parses a NetworkInfo from a CheckDeviceRequest or a
// DeviceAvailableResponse payload.
func DecodeNetworkInfo(r *wire.Cursor) (NetworkInfo, error) {
	var n NetworkInfo

	ethStatus, err := r.ReadU8()
	if err != nil {
		return n, err
	}
	n.Ethernet.Status = ethStatus != 0
	if n.Ethernet.IP, err = r.ReadIPv4(); err != nil {
		return n, err
	}
	if n.Ethernet.Netmask, err = r.ReadIPv4(); err != nil {
		return n, err
	}
	if n.Ethernet.Gateway, err = r.ReadIPv4(); err != nil {
		return n, err
	}

	wlanStatus, err := r.ReadU8()
	if err != nil {
		return n, err
	}
	n.Wireless.Status = wlanStatus != 0
	if n.Wireless.IP, err = r.ReadIPv4(); err != nil {
		return n, err
	}
	if n.Wireless.Netmask, err = r.ReadIPv4(); err != nil {
		return n, err
	}
	if n.Wireless.Gateway, err = r.ReadIPv4(); err != nil {
		return n, err
	}
	signal, err := r.ReadU8()
	if err != nil {
		return n, err
	}
	n.Wireless.SignalQuality = signal
	encryption, err := r.ReadU8()
	if err != nil {
		return n, err
	}
	n.Wireless.Encryption = Encryption(encryption)
	if n.Wireless.SSID, err = r.ReadString(); err != nil {
		return n, err
	}

	serverStatus, err := r.ReadU8()
	if err != nil {
		return n, err
	}
	n.ServerStatus = serverStatus != 0
	if n.WANType, err = r.ReadU8(); err != nil {
		return n, err
	}

	return n, nil
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
