package pyplumio

import "github.com/pyplumio/pyplumio-go/pkg/frame"

// FrameType is a numeric ecoNET frame-type code.
type FrameType = frame.Type

// DeviceAddress identifies a protocol peer.
type DeviceAddress = frame.DeviceAddress

// Device addresses, per §6 of the wire protocol.
const (
	Broadcast = frame.Broadcast
	EcoMAX    = frame.EcoMAX
	EcoSTER   = frame.EcoSTER
	Library   = frame.Library
)

// Core request frame types.
const (
	StopMaster              = frame.StopMaster
	StartMaster             = frame.StartMaster
	CheckDevice             = frame.CheckDevice
	EcomaxParametersReq     = frame.EcomaxParametersReq
	MixerParametersReq      = frame.MixerParametersReq
	SetEcomaxParameter      = frame.SetEcomaxParameter
	SetMixerParameter       = frame.SetMixerParameter
	UIDReq                  = frame.UIDReq
	PasswordReq             = frame.PasswordReq
	EcomaxControl           = frame.EcomaxControl
	AlertsReq               = frame.AlertsReq
	ProgramVersionReq       = frame.ProgramVersionReq
	SchedulesReq            = frame.SchedulesReq
	SetSchedule             = frame.SetSchedule
	ThermostatParametersReq = frame.ThermostatParametersReq
	SetThermostatParameter  = frame.SetThermostatParameter
	RegulatorDataSchemaReq  = frame.RegulatorDataSchemaReq
)

// Core response frame types: request code | 0x80.
const (
	CheckDeviceResponse            = frame.CheckDeviceResponse
	EcomaxParametersResponse       = frame.EcomaxParametersResponse
	MixerParametersResponse        = frame.MixerParametersResponse
	SetEcomaxParameterResponse     = frame.SetEcomaxParameterResponse
	SetMixerParameterResponse      = frame.SetMixerParameterResponse
	UIDResponse                    = frame.UIDResponse
	PasswordResponse               = frame.PasswordResponse
	EcomaxControlResponse          = frame.EcomaxControlResponse
	AlertsResponse                 = frame.AlertsResponse
	ProgramVersionResponse         = frame.ProgramVersionResponse
	SchedulesResponse              = frame.SchedulesResponse
	SetScheduleResponse            = frame.SetScheduleResponse
	ThermostatParametersResponse   = frame.ThermostatParametersResponse
	SetThermostatParameterResponse = frame.SetThermostatParameterResponse
	RegulatorDataSchemaResponse    = frame.RegulatorDataSchemaResponse
)

// Core message frame types: unsolicited, broadcast or unicast.
const (
	RegulatorDataMessage = frame.RegulatorDataMessage
	SensorDataMessage    = frame.SensorDataMessage
)

// StateOff and StateOn are the binary values accepted by switch-style
// parameters (for example "summer_mode") and sent in the control request
// by TurnOff/TurnOn, matching the controller's own generic on/off
// convention.
const (
	StateOff uint16 = 0
	StateOn  uint16 = 1
)
