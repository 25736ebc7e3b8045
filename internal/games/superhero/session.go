package superhero

// Outcome is how a finished run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Session is the per-run scoreboard and state machine flags.
type Session struct {
	Score    int
	Level    int
	GameOver bool
	Outcome  Outcome
	Paused   bool
	Tick     int
}

func newSession() Session {
	return Session{Level: 1}
}

// AddScore adds points. Negative amounts are ignored.
func (s *Session) AddScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// Finish ends the run. The first outcome wins; later calls are no-ops.
// It reports whether this call ended the run.
func (s *Session) Finish(o Outcome) bool {
	if s.GameOver {
		return false
	}
	s.GameOver = true
	s.Outcome = o
	s.Paused = false
	return true
}
