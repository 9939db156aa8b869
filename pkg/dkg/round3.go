package dkg

// advanceRound3 aggregates every accepted Round-2 share into this
// participant's final additive share, and every accepted Round-1
// constant-term commitment into the group's public key.
func (p *Participant) advanceRound3() (*Output, error) {
	if len(p.receivedR2) < p.params.Threshold {
		return nil, newRoundErr(p.round, "only %d of %d required Round 2 payloads accepted", len(p.receivedR2), p.params.Threshold)
	}

	group := p.params.Group
	finalShareValue := group.NewScalar()
	publicKey := group.NewPoint()
	allRefresh := true

	for o, r2 := range p.receivedR2 {
		finalShareValue = finalShareValue.Add(r2.Share.Value)
		r1, ok := p.receivedR1[o]
		if !ok {
			return nil, newRoundErr(p.round, "no Round 1 data on file for accepted Round 2 sender ordinal %d", o)
		}
		publicKey = publicKey.Add(r1.Commitments[0])
		if r1.SenderType != Refresh {
			allRefresh = false
		}
	}

	pkIdentity := publicKey.IsIdentity()
	if allRefresh != pkIdentity {
		return nil, newRoundErr(p.round, "inconsistent run: all-refresh=%v but public key identity=%v", allRefresh, pkIdentity)
	}

	if finalShareValue.ConstantTimeEqual(p.selfShares[p.ordinal]) {
		return nil, newRoundErr(p.round, "aggregated share trivially equals this participant's own Round 1 self-share")
	}

	p.finalShare = Share{ID: p.id, Value: finalShareValue}
	p.publicKey = publicKey
	p.round = RoundFour
	p.completed = true

	return newEmptyOutput(p), nil
}
