package dkg

import "github.com/luxfi/frost-dkg/pkg/curve"

// Round identifies where a Participant is in its lifecycle.
type Round uint8

const (
	// RoundOne: commit to a polynomial and prove knowledge of its
	// constant term.
	RoundOne Round = iota + 1
	// RoundTwo: agree on the set of honest Round-1 senders and
	// distribute shares to them.
	RoundTwo
	// RoundThree: aggregate received shares into the final output.
	RoundThree
	// RoundFour: terminal. The protocol is complete.
	RoundFour
)

func (r Round) String() string {
	switch r {
	case RoundOne:
		return "1"
	case RoundTwo:
		return "2"
	case RoundThree:
		return "3"
	case RoundFour:
		return "4"
	default:
		return "unknown"
	}
}

// ParticipantType distinguishes a participant contributing a random
// nonzero polynomial constant (Secret) from one contributing a zero
// constant used only to re-randomize existing shares (Refresh).
type ParticipantType uint16

const (
	Secret ParticipantType = iota + 1
	Refresh
)

func (t ParticipantType) String() string {
	switch t {
	case Secret:
		return "secret"
	case Refresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Share is a participant's final additive share of the generated
// secret, indexed by its owner's identifier.
type Share struct {
	ID    curve.Scalar
	Value curve.Scalar
}

// Signature is a Schnorr proof of knowledge of a polynomial's constant
// coefficient.
type Signature struct {
	R curve.Point
	S curve.Scalar
}

// Round1Data is one participant's Round-1 broadcast: its Feldman
// commitment vector and a Schnorr proof of knowledge of the
// polynomial's constant coefficient.
type Round1Data struct {
	SenderOrdinal int
	SenderID      curve.Scalar
	SenderType    ParticipantType
	Commitments   []curve.Point
	Signature     Signature
}

// Round2Data is one participant's Round-2 point-to-point message: the
// share it owes the recipient, plus the sender's view of the Round-2
// transcript, so the recipient can detect disagreement on the honest
// set.
type Round2Data struct {
	SenderOrdinal  int
	SenderID       curve.Scalar
	SenderType     ParticipantType
	Share          Share
	TranscriptHash [32]byte
}
