// Package netcode implements the client-side prediction toolkit: the input
// command model, naive extrapolation, snapshot interpolation, and the
// Predictor that reconciles locally predicted state against authoritative
// server updates. Like package wire it must have zero dependencies on ebiten
// or any graphics library so the headless server binary can share it.
package netcode

// Movement and correction tuning shared by the client predictor and the
// authoritative server simulation. Both sides must integrate inputs with the
// same constants or every reconcile produces a spurious correction.
const (
	// MoveSpeed converts a unit input intent into units per second.
	MoveSpeed = 120.0

	// MaxUnackedInputs bounds the pending-input buffer (~2 seconds at 60 Hz).
	// Past it the oldest input is shed; ShouldThrottle trips at half.
	MaxUnackedInputs = 120

	// ErrorCorrectionRate is the fraction of residual correction applied per
	// second while smoothing a reconcile snap.
	ErrorCorrectionRate = 5.0

	// ErrorEpsilon is the residual magnitude below which correction stops.
	ErrorEpsilon = 0.01
)

// InputCommand is one tick of local control intent: normalized per-axis
// direction in [-1, 1] plus the tick duration it was held for. The DT field
// is what lets replay reproduce exact displacement rather than just
// direction. Commands are immutable once created and are owned by the
// Predictor's pending buffer until acknowledged or evicted.
type InputCommand struct {
	Seq    uint32
	VX, VY float32
	DT     float32
}
