package prototype

// Coin is an amount of a native denomination attached to a call.
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}
