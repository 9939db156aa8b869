package curve

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 is the group-theoretic collaborator for the secp256k1 curve.
// It is a stateless value type, safe to pass around and compare by value.
type Secp256k1 struct{}

var _ Curve = Secp256k1{}

func (Secp256k1) Name() string { return "secp256k1" }

func (Secp256k1) curve() elliptic.Curve { return secp256k1.S256() }

func (c Secp256k1) order() *big.Int { return c.curve().Params().N }

func (c Secp256k1) NewScalar() Scalar {
	return &secp256k1Scalar{curve: c, v: new(big.Int)}
}

func (c Secp256k1) NewPoint() Point {
	return &secp256k1Point{curve: c, x: nil, y: nil}
}

func (c Secp256k1) Generator() Point {
	p := c.curve().Params()
	return &secp256k1Point{curve: c, x: new(big.Int).Set(p.Gx), y: new(big.Int).Set(p.Gy)}
}

func (c Secp256k1) ScalarSize() int { return 32 }

func (c Secp256k1) RandomScalar(r io.Reader) (Scalar, error) {
	if r == nil {
		r = rand.Reader
	}
	for {
		k, err := rand.Int(r, c.order())
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return &secp256k1Scalar{curve: c, v: k}, nil
		}
	}
}

// HashToScalar implements RFC 9380's hash_to_field for a single field
// element, using the expand_message_xmd construction with the fixed
// secp256k1 DST from original_source/src/traits/tk256.rs. The DST is
// the literal wire-mandated string, with no per-call suffix: any other
// spec-conformant peer must compute the same challenge from the same
// message.
func (c Secp256k1) HashToScalar(data ...[]byte) (Scalar, error) {
	dst := []byte("secp256k1_XMD:SHA-256_RO_NUL_")
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	uniform, err := expandMessageXMD(msg, dst, 48)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(uniform)
	v.Mod(v, c.order())
	return &secp256k1Scalar{curve: c, v: v}, nil
}

func (c Secp256k1) SumOfProducts(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return nil, errors.New("curve: SumOfProducts: mismatched lengths")
	}
	acc := c.NewPoint()
	for i, s := range scalars {
		acc = acc.Add(s.Act(points[i]))
	}
	return acc, nil
}

type secp256k1Scalar struct {
	curve Secp256k1
	v     *big.Int
}

func (s *secp256k1Scalar) Curve() Curve { return s.curve }

func (s *secp256k1Scalar) Add(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	s.v = new(big.Int).Add(s.v, o.v)
	s.v.Mod(s.v, s.curve.order())
	return s
}

func (s *secp256k1Scalar) Sub(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	s.v = new(big.Int).Sub(s.v, o.v)
	s.v.Mod(s.v, s.curve.order())
	return s
}

func (s *secp256k1Scalar) Mul(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	s.v = new(big.Int).Mul(s.v, o.v)
	s.v.Mod(s.v, s.curve.order())
	return s
}

func (s *secp256k1Scalar) Negate() Scalar {
	s.v = new(big.Int).Neg(s.v)
	s.v.Mod(s.v, s.curve.order())
	return s
}

func (s *secp256k1Scalar) Invert() (Scalar, error) {
	if s.v.Sign() == 0 {
		return nil, errors.New("curve: cannot invert zero scalar")
	}
	s.v = new(big.Int).ModInverse(s.v, s.curve.order())
	return s, nil
}

func (s *secp256k1Scalar) Equal(other Scalar) bool {
	o, ok := other.(*secp256k1Scalar)
	if !ok {
		return false
	}
	return s.v.Cmp(o.v) == 0
}

func (s *secp256k1Scalar) ConstantTimeEqual(other Scalar) bool {
	o, ok := other.(*secp256k1Scalar)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(s.Bytes(), o.Bytes()) == 1
}

func (s *secp256k1Scalar) IsZero() bool { return s.v.Sign() == 0 }

func (s *secp256k1Scalar) Bytes() []byte {
	buf := make([]byte, s.curve.ScalarSize())
	s.v.FillBytes(buf)
	return buf
}

func (s *secp256k1Scalar) SetBytes(data []byte) (Scalar, error) {
	if len(data) != s.curve.ScalarSize() {
		return nil, fmt.Errorf("curve: scalar must be %d bytes, got %d", s.curve.ScalarSize(), len(data))
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(s.curve.order()) >= 0 {
		return nil, errors.New("curve: scalar out of range")
	}
	s.v = v
	return s, nil
}

func (s *secp256k1Scalar) Act(p Point) Point {
	pt := p.(*secp256k1Point)
	if pt.x == nil {
		return s.curve.NewPoint()
	}
	x, y := s.curve.curve().ScalarMult(pt.x, pt.y, s.v.Bytes())
	return s.curve.newPoint(x, y)
}

func (s *secp256k1Scalar) ActOnBase() Point {
	x, y := s.curve.curve().ScalarBaseMult(s.v.Bytes())
	return s.curve.newPoint(x, y)
}

// newPoint wraps affine coordinates returned by the library, which
// reports the point at infinity as (0, 0), mapping that to the nil
// identity representation used here.
func (c Secp256k1) newPoint(x, y *big.Int) *secp256k1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return &secp256k1Point{curve: c}
	}
	return &secp256k1Point{curve: c, x: x, y: y}
}

type secp256k1Point struct {
	curve Secp256k1
	x, y  *big.Int // nil, nil denotes the identity element
}

func (p *secp256k1Point) Curve() Curve { return p.curve }

func (p *secp256k1Point) IsIdentity() bool { return p.x == nil }

func (p *secp256k1Point) Add(other Point) Point {
	o := other.(*secp256k1Point)
	if p.x == nil {
		p.x, p.y = o.x, o.y
		return p
	}
	if o.x == nil {
		return p
	}
	p.x, p.y = p.curve.curve().Add(p.x, p.y, o.x, o.y)
	if p.x.Sign() == 0 && p.y.Sign() == 0 {
		p.x, p.y = nil, nil
	}
	return p
}

func (p *secp256k1Point) Negate() Point {
	if p.x == nil {
		return p
	}
	mod := p.curve.curve().Params().P
	p.y = new(big.Int).Sub(mod, p.y)
	p.y.Mod(p.y, mod)
	return p
}

func (p *secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*secp256k1Point)
	if !ok {
		return false
	}
	if p.x == nil || o.x == nil {
		return p.x == nil && o.x == nil
	}
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}

func (p *secp256k1Point) Bytes() []byte {
	if p.x == nil {
		return []byte{0x00}
	}
	return elliptic.MarshalCompressed(p.curve.curve(), p.x, p.y)
}

func (p *secp256k1Point) SetBytes(data []byte) (Point, error) {
	if len(data) == 1 && data[0] == 0x00 {
		p.x, p.y = nil, nil
		return p, nil
	}
	if len(data) != secp256k1.PubKeyBytesLenCompressed {
		return nil, errors.New("curve: invalid compressed point encoding")
	}
	pk, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, errors.New("curve: invalid compressed point encoding")
	}
	p.x, p.y = pk.X(), pk.Y()
	return p, nil
}
