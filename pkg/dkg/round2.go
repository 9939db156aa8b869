package dkg

import (
	"sort"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/feldman"
)

func verifyShareAgainstCommitments(group curve.Curve, base curve.Point, share Share, commitments []curve.Point) (bool, error) {
	return feldman.Verify(group, base, feldman.Share{ID: share.ID, Value: share.Value}, commitments)
}

func sortedOrdinals(m map[int]Round1Data) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// advanceRound2 requires at least Threshold accepted Round-1 payloads
// (including self). It builds the Round-2 transcript over every
// accepted ordinal in order, fixes the valid participant set to
// exactly those ordinals, and prepares this participant's share of its
// own polynomial for distribution to each of them.
func (p *Participant) advanceRound2() (*Output, error) {
	if len(p.receivedR1) < p.params.Threshold {
		return nil, newRoundErr(p.round, "only %d of %d required Round 1 payloads accepted", len(p.receivedR1), p.params.Threshold)
	}

	tr := newTranscript()
	ordinals := sortedOrdinals(p.receivedR1)
	p.validIDs = make(map[int]curve.Scalar, len(ordinals))
	for _, o := range ordinals {
		d := p.receivedR1[o]
		tr.appendRound1(d)
		p.validIDs[o] = d.SenderID
	}
	p.selfTranscript = tr.challenge()

	p.receivedR2[p.ordinal] = Round2Data{
		SenderOrdinal:  p.ordinal,
		SenderID:       p.id,
		SenderType:     p.kind,
		Share:          Share{ID: p.id, Value: p.selfShares[p.ordinal]},
		TranscriptHash: p.selfTranscript,
	}

	p.round = RoundThree
	return newRound2Output(p, ordinals)
}

// receiveRound2 validates and stores a peer's Round-2 point-to-point
// share.
func (p *Participant) receiveRound2(d Round2Data) error {
	if p.round > RoundThree {
		return newRoundErr(p.round, "Round 2 data received too late")
	}
	if err := p.checkSendingParticipantID(d.SenderOrdinal, d.SenderID); err != nil {
		return err
	}
	if _, known := p.validIDs[d.SenderOrdinal]; !known {
		return newRoundErr(p.round, "ordinal %d did not send an accepted Round 1 payload", d.SenderOrdinal)
	}
	if _, dup := p.receivedR2[d.SenderOrdinal]; dup {
		return newRoundErr(p.round, "duplicate Round 2 data from ordinal %d", d.SenderOrdinal)
	}
	if d.TranscriptHash != p.selfTranscript {
		return newRoundErr(p.round, "ordinal %d disagrees on the Round 2 transcript", d.SenderOrdinal)
	}
	if !d.Share.ID.Equal(p.id) {
		return newRoundErr(p.round, "share from ordinal %d is addressed to a different identifier", d.SenderOrdinal)
	}

	senderR1, ok := p.receivedR1[d.SenderOrdinal]
	if !ok {
		return newRoundErr(p.round, "no Round 1 commitments on file for ordinal %d", d.SenderOrdinal)
	}
	ok2, err := verifyShareAgainstCommitments(p.params.Group, p.params.CommitmentBase, d.Share, senderR1.Commitments)
	if err != nil {
		return newRoundErr(p.round, "verifying share from ordinal %d: %v", d.SenderOrdinal, err)
	}
	if !ok2 {
		return newRoundErr(p.round, "share from ordinal %d fails Feldman verification", d.SenderOrdinal)
	}

	p.receivedR2[d.SenderOrdinal] = d
	return nil
}
