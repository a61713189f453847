package netcode

import (
	"math"

	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// state is a position/velocity pair that inputs integrate into. The same
// displacement rule drives live prediction and reconciliation replay.
type state struct {
	x, y   float32
	vx, vy float32
}

// apply integrates one input command: intent scales to velocity, velocity
// advances position over the command's tick duration.
func (s *state) apply(cmd InputCommand) {
	s.vx = cmd.VX * MoveSpeed
	s.vy = cmd.VY * MoveSpeed
	s.x += s.vx * cmd.DT
	s.y += s.vy * cmd.DT
}

// Predictor owns the locally predicted state for one entity. Inputs apply
// immediately for lag-free movement and are buffered until the server
// acknowledges them; each authoritative update rolls the state back, replays
// the still-unacknowledged inputs, and schedules the visible difference to be
// smoothed out over the following frames instead of snapping.
//
// A Predictor belongs to a single goroutine. None of its methods lock, block,
// or return errors; callers feeding it from both a render loop and a network
// receive path must hand packets to the owning goroutine (a buffered channel
// works well). Reconcile is O(pending inputs); everything else is O(1).
type Predictor struct {
	pred   state
	server state

	lastAckedSeq uint32
	pending      []InputCommand

	// Residual correction still to be blended into pred.
	errX, errY float32
}

// NewPredictor returns a Predictor whose predicted and acknowledged states
// both start at the given position with zero velocity.
func NewPredictor(x, y float32) *Predictor {
	start := state{x: x, y: y}
	return &Predictor{
		pred:    start,
		server:  start,
		pending: make([]InputCommand, 0, MaxUnackedInputs),
	}
}

// ApplyInput advances the predicted state by cmd and buffers it for
// reconciliation. When the buffer is full the oldest command is shed:
// bounded memory wins over replay completeness, and ShouldThrottle tells the
// sender to back off long before that point.
func (p *Predictor) ApplyInput(cmd InputCommand) {
	p.pred.apply(cmd)

	p.pending = append(p.pending, cmd)
	if len(p.pending) > MaxUnackedInputs {
		p.pending = p.pending[1:]
	}
}

// Reconcile folds an authoritative server update into the predicted state:
// drop every input the server has consumed, replay the rest on top of the
// server's state, snap prediction to the result, and stash the visible
// difference for Update to dissipate.
//
// The acknowledged sequence is a high-water mark. A stale or duplicate
// packet (sequence not above the mark) never regresses it, never resurrects
// evicted inputs, and reconciling against it a second time is a no-op.
func (p *Predictor) Reconcile(pkt wire.Packet) {
	if pkt.Seq > p.lastAckedSeq {
		p.lastAckedSeq = pkt.Seq
		p.server = state{x: pkt.X, y: pkt.Y, vx: pkt.VX, vy: pkt.VY}
	}

	for len(p.pending) > 0 && p.pending[0].Seq <= p.lastAckedSeq {
		p.pending = p.pending[1:]
	}

	recon := p.server
	for _, cmd := range p.pending {
		recon.apply(cmd)
	}

	p.errX = recon.x - p.pred.x
	p.errY = recon.y - p.pred.y
	p.pred = recon
}

// Update runs one frame of smooth error correction, moving the displayed
// position by a rate-limited share of the residual. The correction is
// clamped so it never overshoots what remains; below ErrorEpsilon it stops
// entirely.
func (p *Predictor) Update(dt float32) {
	if abs(p.errX) <= ErrorEpsilon && abs(p.errY) <= ErrorEpsilon {
		return
	}

	cx := p.errX * ErrorCorrectionRate * dt
	cy := p.errY * ErrorCorrectionRate * dt
	if abs(cx) > abs(p.errX) {
		cx = p.errX
	}
	if abs(cy) > abs(p.errY) {
		cy = p.errY
	}

	p.pred.x += cx
	p.pred.y += cy
	p.errX -= cx
	p.errY -= cy
}

// PredictedPosition returns the position the local entity should render at.
func (p *Predictor) PredictedPosition() (x, y float32) {
	return p.pred.x, p.pred.y
}

// PredictedVelocity returns the current predicted velocity.
func (p *Predictor) PredictedVelocity() (vx, vy float32) {
	return p.pred.vx, p.pred.vy
}

// LastAckedSeq returns the highest server sequence reconciled so far.
func (p *Predictor) LastAckedSeq() uint32 {
	return p.lastAckedSeq
}

// PendingInputs returns how many inputs await server acknowledgment.
func (p *Predictor) PendingInputs() int {
	return len(p.pending)
}

// ShouldThrottle reports whether the sender should reduce its transmission
// rate: true once more than half the input buffer is unacknowledged.
func (p *Predictor) ShouldThrottle() bool {
	return len(p.pending) > MaxUnackedInputs/2
}

// ResidualError returns the correction still being smoothed, for HUD display.
func (p *Predictor) ResidualError() (x, y float32) {
	return p.errX, p.errY
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
