package battleship

import (
	"math/rand"

	cerr "github.com/som1414/sea-battle/internal/error"
)

// Strategy picks the next dot the computer fires at.
type Strategy interface {
	ChooseTarget(enemy BoardView) (Dot, error)
}

// HuntStrategy searches at random until a ship is wounded, then keeps
// firing along the wounded ship's line until it sinks.
type HuntStrategy struct {
	rng *rand.Rand
}

var _ Strategy = (*HuntStrategy)(nil)

func NewHuntStrategy(rng *rand.Rand) *HuntStrategy {
	return &HuntStrategy{rng: rng}
}

func (hs *HuntStrategy) ChooseTarget(enemy BoardView) (Dot, error) {
	if candidates := hs.Candidates(enemy); len(candidates) > 0 {
		return candidates[hs.rng.Intn(len(candidates))], nil
	}

	free := Unfired(enemy)
	if len(free) == 0 {
		return Dot{}, cerr.ErrNoTargetsLeft()
	}
	return free[hs.rng.Intn(len(free))], nil
}

// Candidates returns the follow-up shots for the most recently wounded
// ship. It is empty when no ship is wounded, which puts the strategy in
// search mode.
func (hs *HuntStrategy) Candidates(enemy BoardView) []Dot {
	anchor, ok := lastWound(enemy)
	if !ok {
		return nil
	}

	if dx, dy, ok := woundAxis(enemy, anchor); ok {
		ends := make([]Dot, 0, 2)
		for _, sign := range []int{-1, 1} {
			d := anchor
			for !enemy.Out(d) && enemy.Cell(d) == CellHit {
				d = d.Add(sign*dx, sign*dy)
			}
			if isOpen(enemy, d) {
				ends = append(ends, d)
			}
		}
		if len(ends) > 0 {
			return ends
		}
	}

	near := make([]Dot, 0, 4)
	for _, d := range anchor.Orthogonal() {
		if isOpen(enemy, d) {
			near = append(near, d)
		}
	}
	return near
}

// Unfired lists every dot of the board nobody has fired at yet.
func Unfired(enemy BoardView) []Dot {
	free := make([]Dot, 0, enemy.Size()*enemy.Size())
	for x := 0; x < enemy.Size(); x++ {
		for y := 0; y < enemy.Size(); y++ {
			d := NewDot(x, y)
			if !enemy.IsFired(d) {
				free = append(free, d)
			}
		}
	}
	return free
}

func isOpen(enemy BoardView, d Dot) bool {
	return !enemy.Out(d) && !enemy.IsFired(d)
}

// lastWound walks the shot history backwards to the latest hit on a
// ship that is still afloat.
func lastWound(enemy BoardView) (Dot, bool) {
	shots := enemy.Shots()
	for i := len(shots) - 1; i >= 0; i-- {
		if enemy.Cell(shots[i]) == CellHit {
			return shots[i], true
		}
	}
	return Dot{}, false
}

// woundAxis finds the direction of the hit run through anchor from the
// most recent hit orthogonally next to it.
func woundAxis(enemy BoardView, anchor Dot) (int, int, bool) {
	shots := enemy.Shots()
	for i := len(shots) - 1; i >= 0; i-- {
		s := shots[i]
		if s == anchor || enemy.Cell(s) != CellHit {
			continue
		}
		switch {
		case s.X == anchor.X && abs(s.Y-anchor.Y) == 1:
			return 0, 1, true
		case s.Y == anchor.Y && abs(s.X-anchor.X) == 1:
			return 1, 0, true
		}
	}
	return 0, 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
