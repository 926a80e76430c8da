package curves

import "github.com/smallyu/go-btc-ecc/internal/crypto/field"

// arith chains field operations and keeps the first error, so formulas can
// be written inline and checked once.
type arith struct {
	err error
}

func (a *arith) add(x, y *field.FieldElement) *field.FieldElement {
	if a.err != nil {
		return nil
	}
	r, err := x.Add(y)
	a.err = err
	return r
}

func (a *arith) sub(x, y *field.FieldElement) *field.FieldElement {
	if a.err != nil {
		return nil
	}
	r, err := x.Sub(y)
	a.err = err
	return r
}

func (a *arith) mul(x, y *field.FieldElement) *field.FieldElement {
	if a.err != nil {
		return nil
	}
	r, err := x.Mul(y)
	a.err = err
	return r
}

func (a *arith) div(x, y *field.FieldElement) *field.FieldElement {
	if a.err != nil {
		return nil
	}
	r, err := x.Div(y)
	a.err = err
	return r
}
