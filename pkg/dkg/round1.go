package dkg

import (
	"encoding/binary"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

// bytesForSchnorr builds the domain-separated byte string the Round-1
// Schnorr challenge is hashed from, per spec.md section 4.2:
//
//	id || u16be(ordinal) || u16be(type) || u16be(t) || u16be(n) || H ||
//	(id_j for j in ordinal order) || R || (C_k for k=0..t-1)
func (p *Participant) bytesForSchnorr(ordinal int, id curve.Scalar, kind ParticipantType, commitments []curve.Point, r curve.Point) []byte {
	var buf []byte
	buf = append(buf, id.Bytes()...)
	buf = appendU16(buf, ordinal)
	buf = appendU16(buf, int(kind))
	buf = appendU16(buf, p.params.Threshold)
	buf = appendU16(buf, p.params.Limit)
	buf = append(buf, p.params.CommitmentBase.Bytes()...)
	for _, pid := range p.params.identifiers {
		buf = append(buf, pid.Bytes()...)
	}
	buf = append(buf, r.Bytes()...)
	for _, c := range commitments {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}

func appendU16(buf []byte, v int) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	return append(buf, tmp[:]...)
}

// computeSignature produces the Round-1 Schnorr proof of knowledge of
// the polynomial's constant coefficient a0: s = k + c*a0, where
// c = H(bytesForSchnorr(...)) and R = k.Act(CommitmentBase).
func (p *Participant) computeSignature() (Signature, error) {
	k, err := p.params.Group.RandomScalar(p.rand)
	if err != nil {
		return Signature{}, err
	}
	r := k.Act(p.params.CommitmentBase)
	msg := p.bytesForSchnorr(p.ordinal, p.id, p.kind, p.feldmanVerifiers, r)
	c, err := p.params.Group.HashToScalar(msg)
	if err != nil {
		return Signature{}, err
	}
	ca0 := p.params.Group.NewScalar().Add(c).Mul(p.contributedSecret)
	s := p.params.Group.NewScalar().Add(k).Add(ca0)
	return Signature{R: r, S: s}, nil
}

// verifySignature checks R' = s.Act(H) - c.Act(C0) == R.
func (p *Participant) verifySignature(d Round1Data) error {
	if len(d.Commitments) == 0 || d.Commitments[0] == nil {
		return newRoundErr(p.round, "missing constant-term commitment")
	}
	msg := p.bytesForSchnorr(d.SenderOrdinal, d.SenderID, d.SenderType, d.Commitments, d.Signature.R)
	c, err := p.params.Group.HashToScalar(msg)
	if err != nil {
		return err
	}
	sH := d.Signature.S.Act(p.params.CommitmentBase)
	cC0 := c.Act(d.Commitments[0])
	rPrime := p.params.Group.NewPoint().Add(sH).Add(cC0.Negate())
	if !rPrime.Equal(d.Signature.R) {
		return newRoundErr(p.round, "invalid Round 1 Schnorr signature from ordinal %d", d.SenderOrdinal)
	}
	return nil
}

func (p *Participant) advanceRound1() (*Output, error) {
	sig, err := p.computeSignature()
	if err != nil {
		return nil, newRoundErr(p.round, "computing Round 1 signature: %v", err)
	}
	p.receivedR1[p.ordinal] = Round1Data{
		SenderOrdinal: p.ordinal,
		SenderID:      p.id,
		SenderType:    p.kind,
		Commitments:   p.feldmanVerifiers,
		Signature:     sig,
	}
	p.round = RoundTwo
	return newRound1Output(p)
}

// receiveRound1 validates and stores a peer's Round-1 broadcast.
func (p *Participant) receiveRound1(d Round1Data) error {
	if p.round > RoundTwo {
		return newRoundErr(p.round, "Round 1 data received too late")
	}
	if _, dup := p.receivedR1[d.SenderOrdinal]; dup {
		return newRoundErr(p.round, "duplicate Round 1 data from ordinal %d", d.SenderOrdinal)
	}
	if err := p.checkSendingParticipantID(d.SenderOrdinal, d.SenderID); err != nil {
		return err
	}
	if len(d.Commitments) != p.params.Threshold {
		return newRoundErr(p.round, "expected %d commitments from ordinal %d, got %d", p.params.Threshold, d.SenderOrdinal, len(d.Commitments))
	}
	for k, c := range d.Commitments {
		if k == 0 {
			continue
		}
		if c.IsIdentity() {
			return newRoundErr(p.round, "non-constant commitment %d from ordinal %d is the identity element", k, d.SenderOrdinal)
		}
	}
	switch d.SenderType {
	case Secret:
		if d.Commitments[0].IsIdentity() {
			return newRoundErr(p.round, "ordinal %d claims type secret but committed to a zero constant term", d.SenderOrdinal)
		}
	case Refresh:
		if !d.Commitments[0].IsIdentity() {
			return newRoundErr(p.round, "ordinal %d claims type refresh but committed to a nonzero constant term", d.SenderOrdinal)
		}
	default:
		return newRoundErr(p.round, "ordinal %d: unknown participant type %d", d.SenderOrdinal, d.SenderType)
	}
	if err := p.verifySignature(d); err != nil {
		return err
	}
	p.receivedR1[d.SenderOrdinal] = d
	return nil
}
