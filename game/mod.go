package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	MaxHealth     = 6
	WallBreakCost = 4
	ElixirHeal    = 4
	// MaxTileRerolls bounds the reroll-on-6 loop for next-tile faces.
	MaxTileRerolls = 64
)

// Face is a die face in [1,6]. NoFace marks an empty die or slot.
type Face int

const NoFace Face = 0

// Roller produces die faces in [1,6].
type Roller interface {
	RollD6() int
}

type pcgRoller struct {
	rng *rand.Rand
}

// NewRoller returns a seeded die stream. The same seed replays the same faces.
func NewRoller(seed uint64) Roller {
	return &pcgRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *pcgRoller) RollD6() int {
	return r.rng.Intn(6) + 1
}

// SequenceRoller replays a fixed list of faces and panics once exhausted.
type SequenceRoller struct {
	Faces []int
	next  int
}

// NewSequenceRoller returns a roller that yields faces in order.
func NewSequenceRoller(faces ...int) *SequenceRoller {
	return &SequenceRoller{Faces: faces}
}

func (s *SequenceRoller) RollD6() int {
	if s.next >= len(s.Faces) {
		panic(fmt.Sprintf("sequence roller exhausted after %d rolls", len(s.Faces)))
	}
	f := s.Faces[s.next]
	s.next++
	return f
}

// Remaining is the number of faces not yet rolled.
func (s *SequenceRoller) Remaining() int {
	return len(s.Faces) - s.next
}
