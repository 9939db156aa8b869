// Package dkg implements a FROST-style distributed key generation
// participant: a per-participant state machine driven by the host
// through Advance (produce this round's outgoing messages) and Deliver
// (consume a peer's incoming message), per spec.md section 5. No
// network transport, scheduling, or persistence lives here — the host
// owns all of that.
package dkg

import (
	"crypto/rand"
	"io"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/feldman"
	"github.com/luxfi/frost-dkg/pkg/math/polynomial"
)

// Participant is one party's view of a single DKG run. It is not safe
// for concurrent use: the host drives it from a single goroutine at a
// time, per spec.md's single-threaded-per-participant scheduling model.
type Participant struct {
	params *Parameters
	rand   io.Reader

	ordinal int
	id      curve.Scalar
	kind    ParticipantType

	contributedSecret curve.Scalar // a0; used only to sign round 1, never exposed
	selfShares        []curve.Scalar
	feldmanVerifiers  []curve.Point

	carriedValue curve.Scalar // Refresh-only passthrough, untouched by the FSM

	round     Round
	completed bool

	receivedR1 map[int]Round1Data
	receivedR2 map[int]Round2Data
	validIDs   map[int]curve.Scalar

	selfTranscript [32]byte

	finalShare Share
	publicKey  curve.Point
}

// NewSecretParticipant constructs a participant that contributes a
// random nonzero polynomial constant term to the generated secret.
func NewSecretParticipant(params *Parameters, id curve.Scalar) (*Participant, error) {
	a0, err := params.Group.RandomScalar(rand.Reader)
	if err != nil {
		return nil, newInitErr("sampling secret: %v", err)
	}
	return initialize(params, id, Secret, a0, nil)
}

// NewParticipantWithSecret constructs a migrated Secret participant: it
// folds oldShare into a fresh nonzero polynomial constant term via the
// Lagrange coefficient for oldShare's identifier within prevIDs, so the
// resulting run reproduces the same group secret under a new id/threshold
// layout without ever reconstructing that secret directly.
func NewParticipantWithSecret(params *Parameters, newID curve.Scalar, oldShare Share, prevIDs []curve.Scalar) (*Participant, error) {
	lambda, err := polynomial.CoefficientAtZero(params.Group, prevIDs, oldShare.ID)
	if err != nil {
		return nil, newInitErr("computing migration coefficient: %v", err)
	}
	a0 := params.Group.NewScalar().Add(oldShare.Value).Mul(lambda)
	return initialize(params, newID, Secret, a0, nil)
}

// NewRefreshParticipant constructs a participant that contributes a
// zero polynomial constant term, re-randomizing existing shares without
// changing the group public key. carry is never used by the FSM; it is
// stored only so the caller can retrieve it later via CarriedValue, to
// re-add it to the refreshed share after Round 3 completes.
func NewRefreshParticipant(params *Parameters, id curve.Scalar, carry curve.Scalar) (*Participant, error) {
	a0 := params.Group.NewScalar()
	p, err := initialize(params, id, Refresh, a0, carry)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func initialize(params *Parameters, id curve.Scalar, kind ParticipantType, a0 curve.Scalar, carry curve.Scalar) (*Participant, error) {
	if id.IsZero() {
		return nil, newInitErr("participant identifier must be nonzero")
	}
	ordinal, ok := params.ordinalOf(id)
	if !ok {
		return nil, newInitErr("identifier is not a member of this run's identifier set")
	}

	shares, commitments, err := feldman.Split(params.Group, params.Threshold, a0, params.CommitmentBase, params.Identifiers(), rand.Reader)
	if err != nil {
		return nil, newInitErr("splitting secret: %v", err)
	}

	switch kind {
	case Secret:
		if commitments[0].IsIdentity() {
			return nil, newInitErr("secret participant produced an identity constant-term commitment")
		}
	case Refresh:
		if !commitments[0].IsIdentity() {
			return nil, newInitErr("refresh participant must commit to a zero constant term")
		}
	default:
		return nil, newInitErr("unknown participant type %d", kind)
	}

	selfShares := make([]curve.Scalar, len(shares))
	for i, s := range shares {
		selfShares[i] = s.Value
	}

	return &Participant{
		params:            params,
		rand:              rand.Reader,
		ordinal:           ordinal,
		id:                id,
		kind:              kind,
		contributedSecret: a0,
		selfShares:        selfShares,
		feldmanVerifiers:  commitments,
		carriedValue:      carry,
		round:             RoundOne,
		receivedR1:        make(map[int]Round1Data),
		receivedR2:        make(map[int]Round2Data),
		validIDs:          make(map[int]curve.Scalar),
	}, nil
}

func (p *Participant) Ordinal() int          { return p.ordinal }
func (p *Participant) ID() curve.Scalar      { return p.id }
func (p *Participant) Type() ParticipantType { return p.kind }
func (p *Participant) Round() Round          { return p.round }
func (p *Participant) Completed() bool       { return p.completed }

// CarriedValue returns the value passed to NewRefreshParticipant, for
// callers that need to re-apply it after the refresh completes. It is
// the zero value for Secret participants.
func (p *Participant) CarriedValue() curve.Scalar { return p.carriedValue }

// FinalShare returns the participant's aggregated share once Round 3
// has completed.
func (p *Participant) FinalShare() (Share, bool) {
	if !p.completed {
		return Share{}, false
	}
	return p.finalShare, true
}

// PublicKey returns the group's aggregated public key once Round 3 has
// completed.
func (p *Participant) PublicKey() (curve.Point, bool) {
	if !p.completed {
		return nil, false
	}
	return p.publicKey, true
}

// TranscriptHash returns this participant's view of the Round-2
// transcript hash, computed once Round 2 has been advanced. Every
// participant that accepted the same Round-1 sender set computes the
// same value; the zero value is returned before Round 2 runs.
func (p *Participant) TranscriptHash() [32]byte { return p.selfTranscript }

// checkSendingParticipantID rejects payloads from unknown senders,
// senders claiming someone else's identifier, or a payload claiming to
// be from the local participant itself.
func (p *Participant) checkSendingParticipantID(ordinal int, id curve.Scalar) error {
	if ordinal < 0 || ordinal >= p.params.Limit {
		return newRoundErr(p.round, "sender ordinal %d out of range", ordinal)
	}
	if ordinal == p.ordinal {
		return newRoundErr(p.round, "received a payload claiming to be from self")
	}
	expected := p.params.identifiers[ordinal]
	if !expected.Equal(id) {
		return newRoundErr(p.round, "sender ordinal %d does not match claimed identifier", ordinal)
	}
	return nil
}

// Advance runs the current round's Finalize step and returns the
// Output describing what to send and to whom. It must not be called
// again for the same round until the host has sent everything the
// prior Output yielded.
func (p *Participant) Advance() (*Output, error) {
	switch p.round {
	case RoundOne:
		return p.advanceRound1()
	case RoundTwo:
		return p.advanceRound2()
	case RoundThree:
		return p.advanceRound3()
	case RoundFour:
		return nil, newRoundErr(p.round, "protocol is already complete")
	default:
		return nil, newRoundErr(p.round, "unknown round")
	}
}
