package calorie

// Balance is the qualitative label of a net calorie value.
type Balance string

// Balance values.
const (
	Surplus     Balance = "surplus"
	Deficit     Balance = "deficit"
	Maintenance Balance = "maintenance"
)

// Balances lists every balance, in display order.
var Balances = []Balance{Surplus, Deficit, Maintenance}

// Tone is the color cue a renderer applies to the net balance panel.
type Tone string

// Tone values.
const (
	ToneRed     Tone = "red"
	ToneEmerald Tone = "emerald"
	ToneAmber   Tone = "amber"
)

// Classify labels a net calorie value by its sign.
func Classify(net float64) Balance {
	switch {
	case net > 0:
		return Surplus
	case net < 0:
		return Deficit
	default:
		return Maintenance
	}
}

// Description is the sentence shown under the net balance.
func (b Balance) Description() string {
	switch b {
	case Surplus:
		return "Caloric surplus - may lead to weight gain"
	case Deficit:
		return "Caloric deficit - may lead to weight loss"
	case Maintenance:
		return "Balanced calories - maintenance mode"
	default:
		return "Enter your data to see results"
	}
}

// Tone returns the color cue for b.
func (b Balance) Tone() Tone {
	switch b {
	case Surplus:
		return ToneRed
	case Deficit:
		return ToneEmerald
	default:
		return ToneAmber
	}
}

// String implements fmt.Stringer.
func (b Balance) String() string { return string(b) }
