package dkg

import (
	"iter"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

// Recipient identifies who an Output entry should be delivered to.
type Recipient struct {
	Ordinal int
	ID      curve.Scalar
}

// Output is the lazy, single-pass description of what a round of
// Advance produced: a sequence of (Recipient, wire bytes) pairs the
// host delivers point-to-point (Round 1's payload happens to be
// identical for every recipient; Round 2's is not). An Output is not
// restartable: range over All() exactly once per Advance call.
type Output struct {
	round Round
	seq   iter.Seq2[Recipient, []byte]
}

// All returns the (recipient, wire bytes) pairs to deliver.
func (o *Output) All() iter.Seq2[Recipient, []byte] { return o.seq }

// Round reports which round produced this Output.
func (o *Output) Round() Round { return o.round }

func newRound1Output(p *Participant) (*Output, error) {
	self := p.receivedR1[p.ordinal]
	payload, err := p.encodeRound1(self)
	if err != nil {
		return nil, newRoundErr(RoundOne, "encoding outgoing payload: %v", err)
	}
	ids := p.params.identifiers
	selfOrdinal := p.ordinal
	return &Output{
		round: RoundOne,
		seq: func(yield func(Recipient, []byte) bool) {
			for o, id := range ids {
				if o == selfOrdinal {
					continue
				}
				if !yield(Recipient{Ordinal: o, ID: id}, payload) {
					return
				}
			}
		},
	}, nil
}

func newRound2Output(p *Participant, ordinals []int) (*Output, error) {
	selfOrdinal := p.ordinal
	selfID := p.id
	kind := p.kind
	transcriptHash := p.selfTranscript
	ids := p.params.identifiers
	shares := p.selfShares

	return &Output{
		round: RoundTwo,
		seq: func(yield func(Recipient, []byte) bool) {
			for _, o := range ordinals {
				if o == selfOrdinal {
					continue
				}
				d := Round2Data{
					SenderOrdinal:  selfOrdinal,
					SenderID:       selfID,
					SenderType:     kind,
					Share:          Share{ID: ids[o], Value: shares[o]},
					TranscriptHash: transcriptHash,
				}
				payload, err := p.encodeRound2(d)
				if err != nil {
					return
				}
				if !yield(Recipient{Ordinal: o, ID: ids[o]}, payload) {
					return
				}
			}
		},
	}, nil
}

func newEmptyOutput(p *Participant) *Output {
	return &Output{
		round: RoundThree,
		seq:   func(yield func(Recipient, []byte) bool) {},
	}
}
