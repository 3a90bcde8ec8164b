package cw20

import (
	"encoding/json"
	"fmt"

	"github.com/coschain/mide-token/prototype"
	vmcontext "github.com/coschain/mide-token/vm/context"
)

// Expiration is one of at_height, at_time or never. The zero value never expires.
type Expiration struct {
	AtHeight *uint64              `json:"at_height,omitempty"`
	AtTime   *prototype.Timestamp `json:"at_time,omitempty"`
	Never    *struct{}            `json:"never,omitempty"`
}

func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

func ExpiresAtTime(t prototype.Timestamp) Expiration {
	return Expiration{AtTime: &t}
}

func ExpiresNever() Expiration {
	return Expiration{Never: &struct{}{}}
}

func (e Expiration) IsExpired(block vmcontext.BlockInfo) bool {
	switch {
	case e.AtHeight != nil:
		return block.Height >= *e.AtHeight
	case e.AtTime != nil:
		return block.Time >= *e.AtTime
	}
	return false
}

func (e Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return fmt.Sprintf("expiration height: %d", *e.AtHeight)
	case e.AtTime != nil:
		return fmt.Sprintf("expiration time: %d", e.AtTime.Nanos())
	}
	return "expiration: never"
}

type expirationJSON Expiration

func (e Expiration) MarshalJSON() ([]byte, error) {
	if e.AtHeight == nil && e.AtTime == nil {
		e = ExpiresNever()
	}
	return json.Marshal(expirationJSON(e))
}

func (e *Expiration) UnmarshalJSON(input []byte) error {
	var v expirationJSON
	if err := json.Unmarshal(input, &v); err != nil {
		return err
	}
	set := 0
	for _, b := range []bool{v.AtHeight != nil, v.AtTime != nil, v.Never != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("expiration must be exactly one of at_height, at_time, never")
	}
	*e = Expiration(v)
	return nil
}
