package structures

import "github.com/pyplumio/pyplumio-go/pkg/wire"

// ProductInfo identifies the controller model, reported in a UID response.
type ProductInfo struct {
	ProductType uint8
	ID          uint16
	UID         string
	Logo        uint16
	Image       uint16
	Model       string
}

// DecodeProductInfo parses a ProductInfo from a UID response payload.
func DecodeProductInfo(r *wire.Cursor) (ProductInfo, error) {
	var p ProductInfo

	productType, err := r.ReadU8()
	if err != nil {
		return p, err
	}
	p.ProductType = productType

	id, err := r.ReadU16()
	if err != nil {
		return p, err
	}
	p.ID = id

	uid, err := r.ReadUID()
	if err != nil {
		return p, err
	}
	p.UID = uid

	logo, err := r.ReadU16()
	if err != nil {
		return p, err
	}
	p.Logo = logo

	image, err := r.ReadU16()
	if err != nil {
		return p, err
	}
	p.Image = image

	model, err := r.ReadString()
	if err != nil {
		return p, err
	}
	p.Model = model

	return p, nil
}
