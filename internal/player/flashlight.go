package player

const (
	batteryMax        = 100.0
	batteryDrainRate  = 2.5 // percent per second while on
	batteryChargeRate = 4.0 // percent per second while off
)

// Flashlight models the battery-powered lamp. Battery is a percentage kept in
// [0, 100]; the lamp switches itself off when drained.
type Flashlight struct {
	On      bool
	Battery float64
}

// NewFlashlight returns a full, switched-off flashlight.
func NewFlashlight() Flashlight {
	return Flashlight{Battery: batteryMax}
}

// Toggle flips the lamp unless the battery is empty.
func (f *Flashlight) Toggle() {
	if !f.On && f.Battery <= 0 {
		return
	}
	f.On = !f.On
}

// Update drains or recharges the battery over dt seconds, clamping to
// [0, 100].
func (f *Flashlight) Update(dt float64) {
	if f.On {
		f.Battery -= batteryDrainRate * dt
		if f.Battery <= 0 {
			f.Battery = 0
			f.On = false
		}
		return
	}
	f.Battery += batteryChargeRate * dt
	if f.Battery > batteryMax {
		f.Battery = batteryMax
	}
}
