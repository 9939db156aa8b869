package dkg

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

// Wire envelope: [round_tag:u8] || body. body is a deterministic cbor
// array encoding (cbor:",toarray", matching pkg/protocol/handler.go's
// cbor.Marshal/Unmarshal usage) of the Round1Data/Round2Data fields, in
// the field order spec.md section 3 declares.
const (
	tagRound1 byte = 1
	tagRound2 byte = 2
)

var canonicalMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	m, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	canonicalMode = m
}

type round1Wire struct {
	_             struct{} `cbor:",toarray"`
	SenderOrdinal uint16
	SenderID      []byte
	SenderType    uint16
	Commitments   [][]byte
	SigR          []byte
	SigS          []byte
}

type round2Wire struct {
	_              struct{} `cbor:",toarray"`
	SenderOrdinal  uint16
	SenderID       []byte
	SenderType     uint16
	ShareID        []byte
	ShareValue     []byte
	TranscriptHash []byte
}

func (p *Participant) encodeRound1(d Round1Data) ([]byte, error) {
	w := round1Wire{
		SenderOrdinal: uint16(d.SenderOrdinal),
		SenderID:      d.SenderID.Bytes(),
		SenderType:    uint16(d.SenderType),
		Commitments:   make([][]byte, len(d.Commitments)),
		SigR:          d.Signature.R.Bytes(),
		SigS:          d.Signature.S.Bytes(),
	}
	for i, c := range d.Commitments {
		w.Commitments[i] = c.Bytes()
	}
	body, err := canonicalMode.Marshal(w)
	if err != nil {
		return nil, err
	}
	return append([]byte{tagRound1}, body...), nil
}

func (p *Participant) decodeRound1(body []byte) (Round1Data, error) {
	var w round1Wire
	if err := cbor.Unmarshal(body, &w); err != nil {
		return Round1Data{}, fmt.Errorf("dkg: decode round 1: %w", err)
	}
	group := p.params.Group
	id, err := group.NewScalar().SetBytes(w.SenderID)
	if err != nil {
		return Round1Data{}, fmt.Errorf("dkg: decode round 1: sender id: %w", err)
	}
	commitments := make([]curve.Point, len(w.Commitments))
	for i, c := range w.Commitments {
		pt, err := group.NewPoint().SetBytes(c)
		if err != nil {
			return Round1Data{}, fmt.Errorf("dkg: decode round 1: commitment %d: %w", i, err)
		}
		commitments[i] = pt
	}
	r, err := group.NewPoint().SetBytes(w.SigR)
	if err != nil {
		return Round1Data{}, fmt.Errorf("dkg: decode round 1: signature R: %w", err)
	}
	s, err := group.NewScalar().SetBytes(w.SigS)
	if err != nil {
		return Round1Data{}, fmt.Errorf("dkg: decode round 1: signature s: %w", err)
	}
	return Round1Data{
		SenderOrdinal: int(w.SenderOrdinal),
		SenderID:      id,
		SenderType:    ParticipantType(w.SenderType),
		Commitments:   commitments,
		Signature:     Signature{R: r, S: s},
	}, nil
}

func (p *Participant) encodeRound2(d Round2Data) ([]byte, error) {
	w := round2Wire{
		SenderOrdinal:  uint16(d.SenderOrdinal),
		SenderID:       d.SenderID.Bytes(),
		SenderType:     uint16(d.SenderType),
		ShareID:        d.Share.ID.Bytes(),
		ShareValue:     d.Share.Value.Bytes(),
		TranscriptHash: d.TranscriptHash[:],
	}
	body, err := canonicalMode.Marshal(w)
	if err != nil {
		return nil, err
	}
	return append([]byte{tagRound2}, body...), nil
}

func (p *Participant) decodeRound2(body []byte) (Round2Data, error) {
	var w round2Wire
	if err := cbor.Unmarshal(body, &w); err != nil {
		return Round2Data{}, fmt.Errorf("dkg: decode round 2: %w", err)
	}
	group := p.params.Group
	id, err := group.NewScalar().SetBytes(w.SenderID)
	if err != nil {
		return Round2Data{}, fmt.Errorf("dkg: decode round 2: sender id: %w", err)
	}
	shareID, err := group.NewScalar().SetBytes(w.ShareID)
	if err != nil {
		return Round2Data{}, fmt.Errorf("dkg: decode round 2: share id: %w", err)
	}
	shareValue, err := group.NewScalar().SetBytes(w.ShareValue)
	if err != nil {
		return Round2Data{}, fmt.Errorf("dkg: decode round 2: share value: %w", err)
	}
	if len(w.TranscriptHash) != 32 {
		return Round2Data{}, errors.New("dkg: decode round 2: transcript hash must be 32 bytes")
	}
	var hash [32]byte
	copy(hash[:], w.TranscriptHash)
	return Round2Data{
		SenderOrdinal:  int(w.SenderOrdinal),
		SenderID:       id,
		SenderType:     ParticipantType(w.SenderType),
		Share:          Share{ID: shareID, Value: shareValue},
		TranscriptHash: hash,
	}, nil
}

// Deliver decodes a wire envelope produced by a peer's Output and
// validates it against the participant's current round.
func (p *Participant) Deliver(wire []byte) error {
	if len(wire) < 1 {
		return newRoundErr(p.round, "empty delivery")
	}
	tag, body := wire[0], wire[1:]
	switch tag {
	case tagRound1:
		d, err := p.decodeRound1(body)
		if err != nil {
			return err
		}
		return p.receiveRound1(d)
	case tagRound2:
		d, err := p.decodeRound2(body)
		if err != nil {
			return err
		}
		return p.receiveRound2(d)
	default:
		return newRoundErr(p.round, "unknown wire tag %d", tag)
	}
}
