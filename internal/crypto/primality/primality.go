package primality

import (
	"crypto/rand"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Rounds returns the number of Miller-Rabin iterations used for a candidate
// of the given bit length. Smaller candidates get more rounds.
func Rounds(bits int) int {
	switch {
	case bits <= 64:
		return 7
	case bits <= 100:
		return 6
	case bits <= 128:
		return 5
	case bits <= 156:
		return 4
	case bits <= 191:
		return 3
	case bits <= 256:
		return 2
	default:
		return 1
	}
}

// IsProbablePrime reports whether n passes the Miller-Rabin test with
// Rounds(n.BitLen()) random witnesses.
func IsProbablePrime(n *big.Int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// 1. Decompose n-1 = d * 2^s
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// 2. Run the witness rounds
	k := Rounds(n.BitLen())
	for i := 0; i < k; i++ {
		a := witness(n, i)

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for j := 1; j < s; j++ {
			x.Exp(x, two, n)
			if x.Cmp(one) == 0 {
				return false
			}
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// witness picks a random base in [2, n-2]. n is odd and at least 5.
func witness(n *big.Int, round int) *big.Int {
	span := new(big.Int).Sub(n, three)
	a, err := rand.Int(rand.Reader, span)
	if err != nil {
		// Fall back to the small fixed bases if the system RNG fails.
		a = big.NewInt(int64(round))
		a.Mod(a, span)
	}
	return a.Add(a, two)
}
