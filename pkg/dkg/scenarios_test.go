package dkg_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/dkg"
)

// driveToCompletion mirrors runToCompletion but for ginkgo specs, which
// don't carry a *testing.T.
func driveToCompletion(participants []*dkg.Participant) error {
	byOrdinal := make(map[int]*dkg.Participant, len(participants))
	for _, p := range participants {
		byOrdinal[p.Ordinal()] = p
	}
	for round := 0; round < 3; round++ {
		type delivery struct {
			to   int
			wire []byte
		}
		var deliveries []delivery
		for _, p := range participants {
			out, err := p.Advance()
			if err != nil {
				return err
			}
			for recipient, wire := range out.All() {
				deliveries = append(deliveries, delivery{to: recipient.Ordinal, wire: wire})
			}
		}
		for _, d := range deliveries {
			if err := byOrdinal[d.to].Deliver(d.wire); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ = Describe("FROST DKG happy path", func() {
	It("completes a 2-of-3 run with a final share for every participant", func() {
		group := curve.Secp256k1{}
		params, err := dkg.NewParameters(group, 2, 3, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		participants := make([]*dkg.Participant, 3)
		for i, id := range params.Identifiers() {
			p, err := dkg.NewSecretParticipant(params, id)
			Expect(err).NotTo(HaveOccurred())
			participants[i] = p
		}

		Expect(driveToCompletion(participants)).To(Succeed())

		for _, p := range participants {
			Expect(p.Completed()).To(BeTrue())
			_, ok := p.FinalShare()
			Expect(ok).To(BeTrue())
		}
	})

	It("rejects a run that never reaches threshold agreement", func() {
		group := curve.Secp256k1{}
		params, err := dkg.NewParameters(group, 3, 3, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		ids := params.Identifiers()
		p0, err := dkg.NewSecretParticipant(params, ids[0])
		Expect(err).NotTo(HaveOccurred())
		p1, err := dkg.NewSecretParticipant(params, ids[1])
		Expect(err).NotTo(HaveOccurred())

		// Only two of three required Round 1 participants run at all;
		// p0 should refuse to advance past Round 1.
		out0, err := p0.Advance()
		Expect(err).NotTo(HaveOccurred())
		for recipient, wire := range out0.All() {
			_ = recipient
			_ = wire
		}
		out1, err := p1.Advance()
		Expect(err).NotTo(HaveOccurred())
		for recipient, wire := range out1.All() {
			if recipient.Ordinal == p0.Ordinal() {
				Expect(p0.Deliver(wire)).To(Succeed())
			}
		}
		_, err = p0.Advance()
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FROST DKG Round 1 tamper detection", func() {
	It("rejects a single flipped byte in a delivered Round 1 payload", func() {
		group := curve.Secp256k1{}
		params, err := dkg.NewParameters(group, 2, 3, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		participants := make([]*dkg.Participant, 3)
		outs := make([]*dkg.Output, 3)
		for i, id := range params.Identifiers() {
			p, err := dkg.NewSecretParticipant(params, id)
			Expect(err).NotTo(HaveOccurred())
			participants[i] = p
		}
		for i, p := range participants {
			out, err := p.Advance()
			Expect(err).NotTo(HaveOccurred())
			outs[i] = out
		}

		var victimWire []byte
		for recipient, wire := range outs[2].All() {
			if recipient.Ordinal == 0 {
				victimWire = append([]byte{}, wire...)
			}
		}
		Expect(victimWire).NotTo(BeNil())
		victimWire[10] ^= 0x01

		Expect(participants[0].Deliver(victimWire)).To(HaveOccurred())
	})
})

var _ = Describe("FROST DKG secret migration", func() {
	It("reproduces the same group public key under a new identifier set", func() {
		group := curve.Secp256k1{}
		oldParams, err := dkg.NewParameters(group, 2, 3, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		oldParticipants := make([]*dkg.Participant, 3)
		for i, id := range oldParams.Identifiers() {
			p, err := dkg.NewSecretParticipant(oldParams, id)
			Expect(err).NotTo(HaveOccurred())
			oldParticipants[i] = p
		}
		Expect(driveToCompletion(oldParticipants)).To(Succeed())

		prevIDs := make([]curve.Scalar, 3)
		shares := make([]dkg.Share, 3)
		for i, p := range oldParticipants {
			prevIDs[i] = p.ID()
			s, ok := p.FinalShare()
			Expect(ok).To(BeTrue())
			shares[i] = s
		}

		newParams, err := dkg.NewParameters(group, 2, 3, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		migrated := make([]*dkg.Participant, 3)
		for i, id := range newParams.Identifiers() {
			p, err := dkg.NewParticipantWithSecret(newParams, id, shares[i], prevIDs)
			Expect(err).NotTo(HaveOccurred())
			migrated[i] = p
		}
		Expect(driveToCompletion(migrated)).To(Succeed())

		oldPK, _ := oldParticipants[0].PublicKey()
		newPK, _ := migrated[0].PublicKey()
		Expect(newPK.Equal(oldPK)).To(BeTrue())
	})
})

var _ = Describe("FROST DKG randomness", func() {
	It("produces distinct Round 1 payloads for two fresh participants", func() {
		group := curve.Secp256k1{}
		params, err := dkg.NewParameters(group, 2, 2, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		ids := params.Identifiers()

		p1, err := dkg.NewSecretParticipant(params, ids[0])
		Expect(err).NotTo(HaveOccurred())
		p2, err := dkg.NewSecretParticipant(params, ids[1])
		Expect(err).NotTo(HaveOccurred())

		out1, err := p1.Advance()
		Expect(err).NotTo(HaveOccurred())
		out2, err := p2.Advance()
		Expect(err).NotTo(HaveOccurred())

		var w1, w2 []byte
		for _, wire := range out1.All() {
			w1 = wire
		}
		for _, wire := range out2.All() {
			w2 = wire
		}
		Expect(w1).NotTo(Equal(w2))
	})
})
