package domain

// Shipment is a pickup-and-delivery pair. PickupLocation and
// DeliveryLocation are optional: a nil pointer means "anywhere", which the
// internal model turns into an arbitrary node (zero cost to/from it).
type Shipment struct {
	ID                   ShipmentID
	PickupLocation       *LocationID
	DeliveryLocation     *LocationID
	PickupHandlingTime   int64
	DeliveryHandlingTime int64
	PickupTimeWindow     ValueRange
	DeliveryTimeWindow   ValueRange
	Weight               int64
}
