package dkg

import (
	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/party"
)

// Parameters describes a single DKG run: the group it operates over,
// the threshold and participant count, the Feldman commitment base,
// and the rule used to assign participant identifiers.
type Parameters struct {
	Group          curve.Curve
	Threshold      int
	Limit          int
	CommitmentBase curve.Point
	IdentifierRule party.IDRule
	identifiers    []curve.Scalar
}

// NewParameters validates and constructs a Parameters value. If base is
// nil, the group's own generator is used as the commitment base (plain
// FROST). If rule is nil, identifiers default to Sequential{Start: 1}.
func NewParameters(group curve.Curve, threshold, limit int, base curve.Point, rule party.IDRule) (*Parameters, error) {
	if group == nil {
		return nil, newInitErr("group must not be nil")
	}
	if threshold < 1 {
		return nil, newInitErr("threshold must be at least 1, got %d", threshold)
	}
	if limit < threshold {
		return nil, newInitErr("limit (%d) must be at least threshold (%d)", limit, threshold)
	}
	if base == nil {
		base = group.Generator()
	}
	if base.IsIdentity() {
		return nil, newInitErr("commitment base must not be the identity element")
	}
	if rule == nil {
		rule = party.Sequential{Start: 1}
	}
	ids, err := rule.Generate(group, limit)
	if err != nil {
		return nil, newInitErr("identifier generation failed: %v", err)
	}
	return &Parameters{
		Group:          group,
		Threshold:      threshold,
		Limit:          limit,
		CommitmentBase: base,
		IdentifierRule: rule,
		identifiers:    ids,
	}, nil
}

// Identifiers returns the n participant identifiers for this run, in
// the fixed ordinal order every participant shares.
func (p *Parameters) Identifiers() []curve.Scalar {
	out := make([]curve.Scalar, len(p.identifiers))
	copy(out, p.identifiers)
	return out
}

func (p *Parameters) ordinalOf(id curve.Scalar) (int, bool) {
	for i, x := range p.identifiers {
		if x.Equal(id) {
			return i, true
		}
	}
	return 0, false
}
