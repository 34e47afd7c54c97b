package engine

import (
	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/prng"
)

// Phase distinguishes the three states a game's active turn can be in.
type Phase int

const (
	PhaseGameOver Phase = iota
	PhaseDraft
	PhaseCall
)

// Turn is the game's current phase plus whichever of Draft/Call applies.
type Turn struct {
	Phase Phase
	Draft *Draft
	Call  *Call
}

func (t *Turn) asDraft() (*Draft, error) {
	if t.Phase != PhaseDraft {
		return nil, &WrongPhaseError{Want: "draft"}
	}
	return t.Draft, nil
}

func (t *Turn) asCall() (*Call, error) {
	if t.Phase != PhaseCall {
		return nil, &WrongPhaseError{Want: "call"}
	}
	return t.Call, nil
}

// Call identifies which rank is acting. EndOfRound marks the special
// Emperor's-heir sub-phase that follows the last rank in play when the
// Emperor was killed.
type Call struct {
	Rank       catalogue.Rank
	EndOfRound bool
}

// Draft is the in-progress role selection for a round.
type Draft struct {
	PlayerCount     int
	Player          PlayerIndex
	TheaterStep     bool
	Remaining       []catalogue.RoleName
	InitialDiscard  *catalogue.RoleName
	FaceupDiscard   []catalogue.RoleName
}

// beginDraft sets up a fresh draft: in 4+ player games it discards some
// roles face up (never rank 4), then always discards exactly one more
// facedown, before restoring rank order for the remaining roles.
func beginDraft(playerCount int, crowned PlayerIndex, roles []catalogue.RoleName, rng *prng.Source) *Draft {
	d := &Draft{
		PlayerCount: playerCount,
		Player:      crowned,
		Remaining:   append([]catalogue.RoleName(nil), roles...),
	}

	roleCount := len(d.Remaining)
	if playerCount >= 4 {
		for i := playerCount + 2; i < roleCount; i++ {
			var index int
			for {
				index = rng.IntN(len(d.Remaining))
				if d.Remaining[index].CanBeDiscardedFaceup() {
					break
				}
			}
			d.FaceupDiscard = append(d.FaceupDiscard, d.Remaining[index])
			d.Remaining = swapRemoveRole(d.Remaining, index)
		}
	}

	i := rng.IntN(len(d.Remaining))
	discard := d.Remaining[i]
	d.InitialDiscard = &discard
	d.Remaining = swapRemoveRole(d.Remaining, i)

	sortRolesByRank(d.Remaining)
	return d
}

func swapRemoveRole(roles []catalogue.RoleName, i int) []catalogue.RoleName {
	last := len(roles) - 1
	roles[i] = roles[last]
	return roles[:last]
}

func sortRolesByRank(roles []catalogue.RoleName) {
	for i := 1; i < len(roles); i++ {
		for j := i; j > 0 && roles[j-1].Rank() > roles[j].Rank(); j-- {
			roles[j-1], roles[j] = roles[j], roles[j-1]
		}
	}
}
