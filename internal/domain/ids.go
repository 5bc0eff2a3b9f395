package domain

import "github.com/google/uuid"

// LocationID identifies a Location. It is opaque: equality and hashing are
// by value, never by any structure a caller might assume it has.
type LocationID string

// ShipmentID identifies a Shipment.
type ShipmentID string

// VehicleID identifies a Vehicle.
type VehicleID string

// NewLocationID returns s as a LocationID. Pass "" to mint a fresh random
// identifier instead. Any non-empty s is accepted as is; the error is
// always nil.
func NewLocationID(s string) (LocationID, error) {
	if s == "" {
		return LocationID(uuid.NewString()), nil
	}
	return LocationID(s), nil
}

// NewShipmentID mirrors NewLocationID for shipments.
func NewShipmentID(s string) (ShipmentID, error) {
	if s == "" {
		return ShipmentID(uuid.NewString()), nil
	}
	return ShipmentID(s), nil
}

// NewVehicleID mirrors NewLocationID for vehicles.
func NewVehicleID(s string) (VehicleID, error) {
	if s == "" {
		return VehicleID(uuid.NewString()), nil
	}
	return VehicleID(s), nil
}
