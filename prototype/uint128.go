package prototype

import (
	"encoding/json"
	"math/big"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// Uint128 is an unsigned 128-bit integer, encoded in JSON as a decimal string.
type Uint128 struct {
	hi, lo uint64
}

var (
	ZeroUint128 = Uint128{}
	MaxUint128  = Uint128{hi: ^uint64(0), lo: ^uint64(0)}
)

func NewUint128(v uint64) Uint128 {
	return Uint128{lo: v}
}

// ParseUint128 parses a base-10 string.
func ParseUint128(s string) (Uint128, error) {
	if strings.HasPrefix(s, "-") {
		return ZeroUint128, ErrUint128Range
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ZeroUint128, errors.Errorf("invalid Uint128 %q", s)
	}
	return Uint128FromBig(b)
}

func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return ZeroUint128, ErrUint128Range
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

func (u Uint128) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

func (u Uint128) CheckedAdd(v Uint128) (Uint128, error) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, overflow := bits.Add64(u.hi, v.hi, carry)
	if overflow != 0 {
		return ZeroUint128, &OverflowError{Operation: "Add", Operand1: u.String(), Operand2: v.String()}
	}
	return Uint128{hi: hi, lo: lo}, nil
}

func (u Uint128) CheckedSub(v Uint128) (Uint128, error) {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, underflow := bits.Sub64(u.hi, v.hi, borrow)
	if underflow != 0 {
		return ZeroUint128, &OverflowError{Operation: "Sub", Operand1: u.String(), Operand2: v.String()}
	}
	return Uint128{hi: hi, lo: lo}, nil
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return new(big.Int).SetUint64(u.lo).String()
	}
	return u.Big().String()
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint128) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return errors.Wrap(ErrJSONFormatErr, "Uint128 must be a string")
	}
	v, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
