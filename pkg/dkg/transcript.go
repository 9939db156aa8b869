package dkg

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// transcript replaces the original implementation's merlin::Transcript
// (unavailable in the Go retrieval pack) with an unkeyed zeebo/blake3
// hasher seeded by writing a fixed domain label first, following the keyed/derived hashing idiom in
// luxfi-threshold's protocols/frost/sign/round1.go and the
// r.Hash().WriteAny()/.Sum() transcript pattern in pkg/protocol/handler.go.
type transcript struct {
	h *blake3.Hasher
}

const (
	transcriptLabel = "Frost DKG - Round 2 Transcript"
	challengeLabel  = "round 2 result"
)

func newTranscript() *transcript {
	h := blake3.New()
	h.Write([]byte(transcriptLabel))
	return &transcript{h: h}
}

func writeU16(h *blake3.Hasher, v int) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	h.Write(buf[:])
}

func writeU64(h *blake3.Hasher, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// appendRound1 absorbs one accepted Round-1 payload into the
// transcript, in a fixed tagged order so every honest participant that
// accepted the same set computes the same hash.
func (t *transcript) appendRound1(d Round1Data) {
	writeU16(t.h, d.SenderOrdinal)
	t.h.Write(d.SenderID.Bytes())
	writeU16(t.h, int(d.SenderType))
	t.h.Write(d.Signature.R.Bytes())
	t.h.Write(d.Signature.S.Bytes())
	writeU16(t.h, len(d.Commitments))
	for i, c := range d.Commitments {
		writeU64(t.h, uint64(i))
		t.h.Write(c.Bytes())
	}
}

// challenge absorbs the challenge label and extracts the 32-byte
// transcript hash used to detect Round-2 disagreement on the honest
// participant set.
func (t *transcript) challenge() [32]byte {
	h := t.h.Clone()
	h.Write([]byte(challengeLabel))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
