// Package party provides identifier-generation rules for DKG
// participants. Identifiers are curve scalars (spec.md requires
// id in F\{0}), not the bare strings luxfi-threshold's own pkg/party.ID
// uses, since a DKG identifier must support Lagrange arithmetic.
//
// IDRule mirrors original_source's ParticipantIdGeneratorType
// (Sequential vs Explicit), reshaped as a Go interface per the
// tagged-variant design note rather than an enum with a payload union.
package party

import (
	"errors"
	"fmt"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

// IDRule generates the n participant identifiers for a run.
type IDRule interface {
	Generate(group curve.Curve, n int) ([]curve.Scalar, error)
}

// Sequential assigns identifiers start, start+increment, ...,
// start+(n-1)*increment. This is the default rule (start=1,
// increment=1) when a Parameters value is constructed without one; the
// zero value of Increment is likewise treated as 1, so existing
// Sequential{Start: 1} literals keep their original meaning.
type Sequential struct {
	Start     uint64
	Increment uint64
}

func (s Sequential) Generate(group curve.Curve, n int) ([]curve.Scalar, error) {
	if n <= 0 {
		return nil, errors.New("party: n must be positive")
	}
	increment := s.Increment
	if increment == 0 {
		increment = 1
	}
	ids := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		v := s.Start + uint64(i)*increment
		if v == 0 {
			return nil, errors.New("party: sequential rule produced a zero identifier")
		}
		buf := make([]byte, group.ScalarSize())
		for j := 0; j < 8 && j < len(buf); j++ {
			buf[len(buf)-1-j] = byte(v >> (8 * j))
		}
		id, err := group.NewScalar().SetBytes(buf)
		if err != nil {
			return nil, fmt.Errorf("party: sequential rule: %w", err)
		}
		ids[i] = id
	}
	return ids, nil
}

// Explicit uses a caller-supplied identifier list verbatim.
type Explicit struct {
	IDs []curve.Scalar
}

func (e Explicit) Generate(group curve.Curve, n int) ([]curve.Scalar, error) {
	if len(e.IDs) != n {
		return nil, fmt.Errorf("party: explicit rule: expected %d ids, got %d", n, len(e.IDs))
	}
	for i, id := range e.IDs {
		if id.IsZero() {
			return nil, fmt.Errorf("party: explicit rule: id at index %d is zero", i)
		}
		for j := 0; j < i; j++ {
			if e.IDs[j].Equal(id) {
				return nil, fmt.Errorf("party: explicit rule: duplicate id at index %d", i)
			}
		}
	}
	return e.IDs, nil
}
