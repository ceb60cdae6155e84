package structures

import (
	"time"

	"github.com/pyplumio/pyplumio-go/pkg/wire"
)

// alertEpoch is the controller's own alert-timestamp epoch: seconds since
// 2000-01-01 UTC, distinct from the unix epoch used elsewhere on the wire.
var alertEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const alertOngoingSentinel = 0xFFFFFFFF

// Alert is a single logged controller fault or warning.
type Alert struct {
	Code uint8
	From time.Time
	To   *time.Time // nil while the alert is still active
}

// DecodeAlerts parses an AlertsResponse payload.
func DecodeAlerts(r *wire.Cursor) ([]Alert, uint8, error) {
	total, err := r.ReadU8()
	if err != nil {
		return nil, 0, err
	}
	start, err := r.ReadU8()
	if err != nil {
		return nil, 0, err
	}
	count, err := r.ReadU8()
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return nil, total, nil
	}

	alerts := make([]Alert, 0, count)
	for i := uint8(0); i < count; i++ {
		_ = start + i
		code, err := r.ReadU8()
		if err != nil {
			return nil, 0, err
		}
		from, err := r.ReadU32()
		if err != nil {
			return nil, 0, err
		}
		to, err := r.ReadU32()
		if err != nil {
			return nil, 0, err
		}

		alert := Alert{Code: code, From: alertEpoch.Add(time.Duration(from) * time.Second)}
		if to != alertOngoingSentinel {
			t := alertEpoch.Add(time.Duration(to) * time.Second)
			alert.To = &t
		}
		alerts = append(alerts, alert)
	}

	return alerts, total, nil
}
