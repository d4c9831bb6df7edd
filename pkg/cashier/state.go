package cashier

// State is the lifecycle position of the current order.
type State int

const (
	NoActiveOrder State = iota
	ActiveOrder
	AwaitingPayment
)

func (s State) String() string {
	switch s {
	case NoActiveOrder:
		return "no_active_order"
	case ActiveOrder:
		return "active"
	case AwaitingPayment:
		return "awaiting_payment"
	default:
		return "unknown"
	}
}

// MarshalText lets State appear as a string in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
