// Package dkg is the core of this module: a per-participant FSM
// implementing FROST distributed key generation over any curve.Curve.
//
// Lifecycle: construct one Participant per local identity via
// NewSecretParticipant, NewParticipantWithSecret, or
// NewRefreshParticipant, then repeatedly call Advance to get this
// round's Output and Deliver to consume each peer's wire payload, until
// Completed reports true and FinalShare/PublicKey are available.
//
// The host owns all scheduling, transport, and persistence; a
// Participant never blocks, spawns a goroutine, or touches the
// network.
package dkg
