package field

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

func mustField(t *testing.T, order int64) *FiniteField {
	t.Helper()
	f, err := NewFiniteField(big.NewInt(order))
	require.NoError(t, err)
	return f
}

func el(t *testing.T, f *FiniteField, v int64) *FieldElement {
	t.Helper()
	e, err := f.NewElement(big.NewInt(v))
	require.NoError(t, err)
	return e
}

func TestNewFiniteField(t *testing.T) {
	f := mustField(t, 2)
	assert.Equal(t, big.NewInt(2), f.Order())
	assert.Equal(t, "Finite field of order 2", f.String())

	for _, order := range []int64{0, 1, 4, 378} {
		_, err := NewFiniteField(big.NewInt(order))
		assert.True(t, errors.Is(err, ecc.ErrInvalidFieldOrder), "order %d", order)
	}
	_, err := NewFiniteField(nil)
	assert.True(t, errors.Is(err, ecc.ErrInvalidFieldOrder))

	assert.True(t, mustField(t, 31).Equal(mustField(t, 31)))
	assert.False(t, mustField(t, 31).Equal(mustField(t, 13)))
}

func TestNewFieldElement(t *testing.T) {
	f := mustField(t, 13)

	a := el(t, f, 7)
	assert.Equal(t, "FieldElement_13(7)", a.String())
	assert.Equal(t, big.NewInt(7), a.Value())
	assert.True(t, a.Field().Equal(f))

	for _, v := range []int64{13, 14, -1} {
		_, err := f.NewElement(big.NewInt(v))
		assert.True(t, errors.Is(err, ecc.ErrOutOfRange), "value %d", v)
	}

	// Value returns a copy
	v := a.Value()
	v.SetInt64(3)
	assert.Equal(t, big.NewInt(7), a.Value())
}

func TestEqual(t *testing.T) {
	f := mustField(t, 13)
	a := el(t, f, 7)
	b := el(t, f, 6)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(el(t, mustField(t, 31), 7)))
}

func TestArithmetic(t *testing.T) {
	f := mustField(t, 31)

	tests := []struct {
		name    string
		op      func(a, b *FieldElement) (*FieldElement, error)
		a, b, c int64
	}{
		{"add", (*FieldElement).Add, 2, 15, 17},
		{"add wraps", (*FieldElement).Add, 17, 21, 7},
		{"sub", (*FieldElement).Sub, 29, 4, 25},
		{"sub wraps", (*FieldElement).Sub, 15, 30, 16},
		{"mul", (*FieldElement).Mul, 24, 19, 22},
		{"div", (*FieldElement).Div, 3, 24, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(el(t, f, tt.a), el(t, f, tt.b))
			require.NoError(t, err)
			assert.True(t, got.Equal(el(t, f, tt.c)), "got %s", got)
		})
	}
}

func TestPow(t *testing.T) {
	f := mustField(t, 31)

	assert.True(t, el(t, f, 17).Pow(big.NewInt(3)).Equal(el(t, f, 15)))

	b5, err := el(t, f, 5).Pow(big.NewInt(5)).Mul(el(t, f, 18))
	require.NoError(t, err)
	assert.True(t, b5.Equal(el(t, f, 16)))

	// 17^-3 = 29, 4^-4 * 11 = 13
	assert.True(t, el(t, f, 17).Pow(big.NewInt(-3)).Equal(el(t, f, 29)))
	c, err := el(t, f, 4).Pow(big.NewInt(-4)).Mul(el(t, f, 11))
	require.NoError(t, err)
	assert.True(t, c.Equal(el(t, f, 13)))

	assert.True(t, el(t, f, 0).Pow(big.NewInt(0)).Equal(f.One()))
}

func TestDivisionByZero(t *testing.T) {
	f := mustField(t, 31)
	_, err := el(t, f, 3).Div(f.Zero())
	assert.True(t, errors.Is(err, ecc.ErrDivisionByZero))

	_, err = f.Zero().Inverse()
	assert.True(t, errors.Is(err, ecc.ErrDivisionByZero))
}

func TestFieldMismatch(t *testing.T) {
	a := el(t, mustField(t, 31), 3)
	b := el(t, mustField(t, 13), 3)

	ops := map[string]func(a, b *FieldElement) (*FieldElement, error){
		"add": (*FieldElement).Add,
		"sub": (*FieldElement).Sub,
		"mul": (*FieldElement).Mul,
		"div": (*FieldElement).Div,
	}
	for name, op := range ops {
		_, err := op(a, b)
		assert.True(t, errors.Is(err, ecc.ErrFieldMismatch), name)
	}
}

func TestNegAndReduce(t *testing.T) {
	f := mustField(t, 31)
	assert.True(t, el(t, f, 5).Neg().Equal(el(t, f, 26)))
	assert.True(t, f.Zero().Neg().IsZero())
	assert.True(t, f.Reduce(big.NewInt(-1)).Equal(el(t, f, 30)))
	assert.True(t, f.Int64(63).Equal(el(t, f, 1)))
}

func TestSqrt(t *testing.T) {
	// 223 = 3 mod 4
	f := mustField(t, 223)
	for v := int64(1); v < 223; v++ {
		sq, err := el(t, f, v).Mul(el(t, f, v))
		require.NoError(t, err)
		root := sq.Sqrt()
		back, err := root.Mul(root)
		require.NoError(t, err)
		assert.True(t, back.Equal(sq), "sqrt of %s", sq)
	}
}

func TestBytes(t *testing.T) {
	f := mustField(t, 223)
	assert.Equal(t, []byte{0x07}, el(t, f, 7).Bytes())

	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	f256, err := NewFiniteField(p)
	require.NoError(t, err)
	b := f256.Int64(1).Bytes()
	assert.Len(t, b, 32)
	assert.Equal(t, byte(1), b[31])
}

// a + 0 = a and (a*b)/b = a for random elements of a 256-bit field.
func TestFieldProperties(t *testing.T) {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	f, err := NewFiniteField(p)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		av, _ := rand.Int(rand.Reader, p)
		bv, _ := rand.Int(rand.Reader, p)
		if bv.Sign() == 0 {
			bv.SetInt64(1)
		}
		a, _ := f.NewElement(av)
		b, _ := f.NewElement(bv)

		sum, err := a.Add(f.Zero())
		require.NoError(t, err)
		assert.True(t, sum.Equal(a))

		prod, err := a.Mul(b)
		require.NoError(t, err)
		quot, err := prod.Div(b)
		require.NoError(t, err)
		assert.True(t, quot.Equal(a))
	}
}
