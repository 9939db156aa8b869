package curve

import (
	"crypto/sha256"
	"errors"
	"fmt"
)

const sha256BlockSize = 64

// expandMessageXMD implements expand_message_xmd from RFC 9380 section
// 5.3.1, instantiated with SHA-256. No library in the retrieval pack
// exposes this primitive, so it is implemented directly from the RFC.
func expandMessageXMD(msg, dst []byte, outLen int) ([]byte, error) {
	if len(dst) > 255 {
		return nil, errors.New("curve: dst too long")
	}
	hOutLen := sha256.Size
	ell := (outLen + hOutLen - 1) / hOutLen
	if ell > 255 {
		return nil, fmt.Errorf("curve: requested output too long: %d blocks", ell)
	}
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))
	zPad := make([]byte, sha256BlockSize)
	lIBStr := []byte{byte(outLen >> 8), byte(outLen)}

	h0 := sha256.New()
	h0.Write(zPad)
	h0.Write(msg)
	h0.Write(lIBStr)
	h0.Write([]byte{0})
	h0.Write(dstPrime)
	b0 := h0.Sum(nil)

	h1 := sha256.New()
	h1.Write(b0)
	h1.Write([]byte{1})
	h1.Write(dstPrime)
	bVals := make([][]byte, ell+1)
	bVals[1] = h1.Sum(nil)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, hOutLen)
		for j := range xored {
			xored[j] = b0[j] ^ bVals[i-1][j]
		}
		hi := sha256.New()
		hi.Write(xored)
		hi.Write([]byte{byte(i)})
		hi.Write(dstPrime)
		bVals[i] = hi.Sum(nil)
	}

	out := make([]byte, 0, ell*hOutLen)
	for i := 1; i <= ell; i++ {
		out = append(out, bVals[i]...)
	}
	return out[:outLen], nil
}
