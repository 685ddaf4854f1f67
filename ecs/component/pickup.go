package component

// Pickup restores grip stamina. Edible pickups are consumed on contact,
// others restore Amount per second while the climber stays in Radius.
type Pickup struct {
	Amount   float64
	Edible   bool
	Radius   float64
	BobPhase float64
}

var PickupComponent = NewComponent[Pickup]()
