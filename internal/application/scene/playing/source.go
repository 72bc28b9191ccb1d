package playing

import (
	"github.com/younwookim/burger/internal/application/replay"
	"github.com/younwookim/burger/internal/infrastructure/input"
)

// ReplaySource feeds recorded frames as input. Once the recording ends it
// reports idle input.
type ReplaySource struct {
	replayer *replay.Replayer
}

// NewReplaySource plays data from its first frame.
func NewReplaySource(data replay.ReplayData) *ReplaySource {
	return &ReplaySource{replayer: replay.NewReplayer(data)}
}

// Poll implements input.Source.
func (s *ReplaySource) Poll() input.Snapshot {
	in, ok := s.replayer.GetInput()
	if !ok {
		return input.Snapshot{}
	}
	return input.Snapshot(in)
}

// Done reports whether every recorded frame was played.
func (s *ReplaySource) Done() bool {
	return s.replayer.Done()
}

// Progress returns the current and total frame counts.
func (s *ReplaySource) Progress() (int, int) {
	return s.replayer.CurrentFrame(), s.replayer.TotalFrames()
}
