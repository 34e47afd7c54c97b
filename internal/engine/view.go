package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// CharacterView is the public-knowledge slice of one character card: its
// role and holder are hidden until the card is revealed by play.
type CharacterView struct {
	Rank     catalogue.Rank
	Revealed bool
	Role     catalogue.RoleName `json:",omitempty"`
	Player   *PlayerIndex       `json:",omitempty"`
	Markers  []Marker
}

// PlayerView is what any observer is allowed to know about one seat. Hand
// contents are populated only on the requesting player's own entry.
type PlayerView struct {
	Index    PlayerIndex
	Name     string
	Gold     int
	HandSize int
	Hand     []catalogue.DistrictName `json:",omitempty"`
	City     []CityDistrict
	RoleCount int
}

// GameView is the redacted, JSON-serializable projection of a Game that
// internal/transport sends to a connected client: everything public, plus
// the requesting player's own hand and currently allowed actions.
type GameView struct {
	Round           int
	Phase           Phase
	Crowned         PlayerIndex
	FirstToComplete *PlayerIndex
	Players         []PlayerView
	Characters      []CharacterView
	Logs            []string
	AllowedActions  []catalogue.ActionTag
}

// ViewFor builds the view of the game visible to the player with the given
// ID. An empty or unrecognized ID still gets the fully public view, just
// with no hand and no allowed actions.
func (g *Game) ViewFor(id string) GameView {
	view := GameView{
		Round:           g.Round,
		Phase:           g.ActiveTurn.Phase,
		Crowned:         g.Crowned,
		FirstToComplete: g.FirstToComplete,
		Logs:            g.Logs,
		AllowedActions:  g.AllowedFor(id),
	}

	for _, p := range g.Players {
		pv := PlayerView{
			Index:     p.Index,
			Name:      p.Name,
			Gold:      p.Gold,
			HandSize:  len(p.Hand),
			City:      p.City,
			RoleCount: len(p.Roles),
		}
		if p.ID == id {
			pv.Hand = p.Hand
		}
		view.Players = append(view.Players, pv)
	}

	for i := 0; i < g.Characters.Len(); i++ {
		role := &g.Characters.roles[i]
		cv := CharacterView{Rank: catalogue.Rank(i + 1), Revealed: role.Revealed}
		if role.Revealed {
			cv.Role = role.Role
			cv.Player = role.Player
			cv.Markers = role.Markers
		}
		view.Characters = append(view.Characters, cv)
	}

	return view
}
