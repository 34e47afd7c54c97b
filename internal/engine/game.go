// Package engine implements the Citadels turn state machine: the draft,
// the role call order, the ~50 player actions and their follow-ups, and
// end-of-game scoring. Nothing in this package talks to a network or a
// database; internal/transport and internal/persistence wrap it for that.
package engine

import (
	"fmt"
	"log"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/deck"
	"github.com/kevlar-tabletop/citadels/internal/museum"
	"github.com/kevlar-tabletop/citadels/internal/prng"
)

// ForcedToGatherReason explains why the active player cannot act freely and
// must gather resources first.
type ForcedToGatherReason int

const (
	ForcedByWitch ForcedToGatherReason = iota
	ForcedByBewitched
	ForcedByBlackmail
)

// LobbyPlayer is the minimal seat info the lobby hands to Start.
type LobbyPlayer struct {
	ID   string
	Name string
}

// Game is one in-progress Citadels match.
type Game struct {
	rng *prng.Source

	Round           int
	Deck            *deck.Deck[catalogue.DistrictName]
	Players         []*Player
	Characters      Characters
	Crowned         PlayerIndex
	FirstToComplete *PlayerIndex

	ActiveTurn      Turn
	Followup        *Followup
	TurnActions     []Action
	RemainingBuilds int

	Logs []string

	Museum       museum.Museum
	Alchemist    int
	TaxCollector int
}

// Start deals a fresh game: shuffles seating, builds the district deck from
// the lobby's configuration, deals starting hands, and assigns the rank
// cards before opening the first draft.
func Start(players []LobbyPlayer, roles []catalogue.RoleName, districts []catalogue.DistrictName, seed int64) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("need at least 2 players")
	}
	rng := prng.New(seed)

	seating := append([]LobbyPlayer(nil), players...)
	rng.Shuffle(len(seating), func(i, j int) { seating[i], seating[j] = seating[j], seating[i] })

	gamePlayers := make([]*Player, len(seating))
	for i, p := range seating {
		gamePlayers[i] = &Player{Index: PlayerIndex(i), ID: p.ID, Name: p.Name, Gold: 2}
	}

	pile := append([]catalogue.DistrictName(nil), districts...)
	d := deck.New(pile)
	d.Shuffle(rng)

	for _, p := range gamePlayers {
		p.Hand = d.DrawMany(4)
	}

	g := &Game{
		rng:        rng,
		Players:    gamePlayers,
		Characters: newCharacters(roles),
		Crowned:    PlayerIndex(0),
		Deck:       d,
	}

	g.beginDraft()
	return g, nil
}

func (g *Game) beginDraft() {
	g.Round++
	draft := beginDraft(len(g.Players), g.Crowned, g.Characters.Iter(), g.rng)
	for _, role := range draft.FaceupDiscard {
		g.Characters.Get(role.Rank()).Markers = append(g.Characters.Get(role.Rank()).Markers, Marker{Kind: MarkerDiscarded})
	}
	g.ActiveTurn = Turn{Phase: PhaseDraft, Draft: draft}
}

// ResponderIndex returns the player who must respond to the pending
// followup, if any.
func (g *Game) ResponderIndex() (PlayerIndex, error) {
	f := g.Followup
	if f == nil {
		return 0, &NoResponderError{}
	}
	switch f.Kind {
	case FollowupWarrant:
		return f.Magistrate, nil
	case FollowupBlackmail:
		return f.Blackmailer, nil
	default:
		return g.ActivePlayerIndex()
	}
}

// Responder returns the player who must respond to the pending followup.
func (g *Game) Responder() (*Player, error) {
	i, err := g.ResponderIndex()
	if err != nil {
		return nil, err
	}
	return g.Players[i], nil
}

// ActivePlayerIndex returns whose turn it currently is. During the call
// phase, a bewitched character's turn (after resources are gathered)
// belongs to the Witch.
func (g *Game) ActivePlayerIndex() (PlayerIndex, error) {
	switch g.ActiveTurn.Phase {
	case PhaseGameOver:
		return 0, fmt.Errorf("game over")
	case PhaseDraft:
		return g.ActiveTurn.Draft.Player, nil
	default:
		call := g.ActiveTurn.Call
		c := g.Characters.Get(call.Rank)
		if g.hasGatheredResources() && c.hasMarker(MarkerBewitched) {
			witch := g.Characters.Get(catalogue.RankOne)
			if witch.Player == nil {
				return 0, fmt.Errorf("no witch")
			}
			return *witch.Player, nil
		}
		if c.Player == nil {
			return 0, fmt.Errorf("no player with rank %s", call.Rank)
		}
		return *c.Player, nil
	}
}

// ActivePlayer returns whose turn it currently is.
func (g *Game) ActivePlayer() (*Player, error) {
	i, err := g.ActivePlayerIndex()
	if err != nil {
		return nil, err
	}
	return g.Players[i], nil
}

func (g *Game) activeRole() (*GameRole, error) {
	call, err := g.ActiveTurn.asCall()
	if err != nil {
		return nil, err
	}
	return g.Characters.Get(call.Rank), nil
}

func (g *Game) activePerformCount(tag catalogue.ActionTag) int {
	n := 0
	for _, a := range g.TurnActions {
		if a.Tag == tag {
			n++
		}
	}
	return n
}

func (g *Game) hasGatheredResources() bool {
	if g.Followup != nil && g.Followup.Kind == FollowupGatherCardsPick {
		return false
	}
	for _, a := range g.TurnActions {
		if a.Tag.IsResourceGathering() {
			return true
		}
	}
	return false
}

func (g *Game) forcedToGatherResources() (ForcedToGatherReason, bool) {
	if g.hasGatheredResources() {
		return 0, false
	}
	role, err := g.activeRole()
	if err != nil {
		return 0, false
	}
	switch {
	case role.Role == catalogue.Witch:
		return ForcedByWitch, true
	case role.hasMarker(MarkerBewitched):
		return ForcedByBewitched, true
	case role.hasBlackmail():
		return ForcedByBlackmail, true
	default:
		return 0, false
	}
}

// AllowedFor returns the action tags currently permitted for the given
// player ID: the responses to a pending followup if they are the
// responder, or their normal turn options if they are the active player,
// or nothing otherwise.
func (g *Game) AllowedFor(id string) []catalogue.ActionTag {
	if responder, err := g.Responder(); err == nil {
		if responder.ID == id {
			return g.Followup.Actions()
		}
		return nil
	}
	if active, err := g.ActivePlayer(); err == nil && active.ID == id {
		return g.activePlayerActions()
	}
	return nil
}

func (g *Game) activePlayerActions() []catalogue.ActionTag {
	switch g.ActiveTurn.Phase {
	case PhaseGameOver:
		return nil
	case PhaseDraft:
		draft := g.ActiveTurn.Draft
		if draft.TheaterStep {
			for _, a := range g.TurnActions {
				if a.Tag == catalogue.ActTheater || a.Tag == catalogue.TheaterPass {
					return nil
				}
			}
			return []catalogue.ActionTag{catalogue.ActTheater, catalogue.TheaterPass}
		}
		if g.activePerformCount(catalogue.DraftPick) == 0 {
			return []catalogue.ActionTag{catalogue.DraftPick}
		}
		return []catalogue.ActionTag{catalogue.DraftDiscard}
	default:
		call := g.ActiveTurn.Call
		if call.EndOfRound {
			role, err := g.activeRole()
			if err != nil || role.Role != catalogue.Emperor {
				log.Printf("engine: end-of-round sub-phase with no Emperor active")
				return nil
			}
			if g.activePerformCount(catalogue.EmperorHeirGiveCrown) == 0 {
				return []catalogue.ActionTag{catalogue.EmperorHeirGiveCrown}
			}
			return nil
		}

		player, err := g.ActivePlayer()
		if err != nil {
			return nil
		}

		if _, forced := g.forcedToGatherResources(); forced {
			return []catalogue.ActionTag{catalogue.GatherResourceGold, catalogue.GatherResourceCards}
		}

		var actions []catalogue.ActionTag
		role := g.Characters.Get(call.Rank)
		for _, ra := range role.Role.Data().Actions {
			if g.activePerformCount(ra.Action) < ra.Count {
				actions = append(actions, ra.Action)
			}
		}

		for _, card := range player.City {
			if tag, ok := card.Name.Action(); ok && g.activePerformCount(tag) < 1 {
				actions = append(actions, tag)
			}
		}

		if !g.hasGatheredResources() {
			actions = append(actions, catalogue.GatherResourceGold, catalogue.GatherResourceCards)
		} else if role.Role != catalogue.Navigator {
			actions = append(actions, catalogue.Build)
		}

		required := false
		for _, a := range actions {
			if a.IsRequired() {
				required = true
				break
			}
		}
		if !required {
			actions = append(actions, catalogue.EndTurn)
		}
		return actions
	}
}

// Perform validates and applies an action taken by the player with the
// given ID, then ends the turn if the action output says so. A runtime
// panic raised while applying the action is recovered and returned as an
// error.
func (g *Game) Perform(action Action, id string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	allowed := false
	for _, tag := range g.AllowedFor(id) {
		if tag == action.Tag {
			allowed = true
			break
		}
	}
	if !allowed {
		return &NotAllowedError{Tag: fmt.Sprintf("%d", action.Tag)}
	}

	out, err := g.performAction(&action)
	if err != nil {
		return err
	}

	g.Followup = out.followup
	log.Printf("engine: %s", out.log)

	g.TurnActions = append(g.TurnActions, action)
	if role, err := g.activeRole(); err == nil {
		role.Logs = append(role.Logs, out.log)
	}

	if out.endTurn {
		return g.endTurn()
	}
	return nil
}

// actionOutput is the result of applying one action: a human-readable log
// line, an optional followup continuation, and whether the turn ends.
type actionOutput struct {
	log      string
	followup *Followup
	endTurn  bool
}

func newOutput(log string) actionOutput { return actionOutput{log: log} }

func (o actionOutput) withEndTurn() actionOutput {
	o.endTurn = true
	return o
}

func (o actionOutput) withFollowup(f *Followup) actionOutput {
	o.followup = f
	return o
}

func (g *Game) startTurn() error {
	call := g.ActiveTurn.Call
	if g.ActiveTurn.Phase == PhaseCall && call.EndOfRound {
		return nil
	}

	role, err := g.activeRole()
	if err != nil {
		return nil
	}

	if role.hasMarker(MarkerKilled) {
		role.Logs = append(role.Logs, "They were killed!")
		g.callNext()
		return g.startTurn()
	}

	if role.Player == nil {
		role.Logs = append(role.Logs, "No one responds")
		g.callNext()
		return g.startTurn()
	}

	role.Revealed = true
	g.RemainingBuilds = role.Role.BuildLimit()

	player := g.Players[*role.Player]
	role.Logs = append(role.Logs, fmt.Sprintf("%s starts their turn.", player.Name))

	if role.hasMarker(MarkerBewitched) {
		witch := g.Players[*g.Characters.Get(catalogue.RankOne).Player]
		role.Logs = append(role.Logs, fmt.Sprintf(
			"They are bewitched! After gathering resources, their turn will be yielded to the Witch (%s).",
			witch.Name))
	}

	if role.hasMarker(MarkerRobbed) {
		gold := player.Gold
		player.Gold = 0
		thief := g.Players[*g.Characters.Get(catalogue.RankTwo).Player]
		thief.Gold += gold
		role.Logs = append(role.Logs, fmt.Sprintf("The Thief (%s) takes all %d of their gold!", thief.Name, gold))
	}

	return nil
}

func (g *Game) discardDistrict(district catalogue.DistrictName) {
	if district == catalogue.Museum {
		tucked := g.Museum.Empty()
		toDiscard := append(tucked, catalogue.Museum)
		g.rng.Shuffle(len(toDiscard), func(i, j int) { toDiscard[i], toDiscard[j] = toDiscard[j], toDiscard[i] })
		g.Deck.DiscardManyToBottom(toDiscard)
		return
	}
	g.Deck.DiscardToBottom(district)
}

func (g *Game) completeBuild(playerIndex PlayerIndex, spent int, district catalogue.DistrictName) {
	player := g.Players[playerIndex]
	player.City = append(player.City, CityDistrict{Name: district})
	if role, err := g.activeRole(); err == nil && role.Role == catalogue.Alchemist {
		g.Alchemist += spent
	}
	g.checkCityForCompletion()
}

func (g *Game) checkCityForCompletion() {
	player, err := g.ActivePlayer()
	if err != nil {
		return
	}
	if player.CitySize() >= g.CompleteCitySize() && g.FirstToComplete == nil {
		log.Printf("engine: %s is the first to complete their city", player.Name)
		idx := player.Index
		g.FirstToComplete = &idx
	}
}

func (g *Game) afterGatherResources() *Followup {
	reason, forced := g.forcedToGatherResources()
	if !forced {
		return nil
	}
	switch reason {
	case ForcedByWitch:
		return &Followup{Kind: FollowupBewitch}
	case ForcedByBlackmail:
		return &Followup{Kind: FollowupHandleBlackmail}
	default:
		return nil
	}
}

func (g *Game) gainCards(amount int) int {
	tally := 0
	player, err := g.ActivePlayer()
	if err != nil {
		return 0
	}
	for i := 0; i < amount; i++ {
		card, ok := g.Deck.Draw()
		if !ok {
			break
		}
		player.Hand = append(player.Hand, card)
		tally++
	}
	return tally
}

func (g *Game) gainGoldForSuit(suit catalogue.Suit) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	amount := player.CountSuitForResourceGain(suit)
	player.Gold += amount
	role, _ := g.activeRole()
	return newOutput(fmt.Sprintf("The %s (%s) gains %d gold from their %s districts.",
		role.Role.DisplayName(), player.Name, amount, suit)), nil
}

func (g *Game) gainCardsForSuit(suit catalogue.Suit) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	count := player.CountSuitForResourceGain(suit)
	amount := g.gainCards(count)
	role, _ := g.activeRole()
	return newOutput(fmt.Sprintf("The %s (%s) gains %d cards from their %s districts.",
		role.Role.DisplayName(), player.Name, amount, suit)), nil
}

func (g *Game) endTurn() error {
	g.TurnActions = nil

	switch g.ActiveTurn.Phase {
	case PhaseGameOver:
		// nothing to do
	case PhaseDraft:
		draft := g.ActiveTurn.Draft
		if draft.TheaterStep {
			g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: catalogue.RankOne}}
			break
		}

		if len(g.Players) == 3 && g.Characters.Len() == 9 && len(draft.Remaining) == 5 {
			idx := g.rng.IntN(len(draft.Remaining))
			draft.Remaining = append(draft.Remaining[:idx], draft.Remaining[idx+1:]...)
		}

		if len(g.Players)+1 == g.Characters.Len() && len(draft.Remaining) == 1 && draft.InitialDiscard != nil {
			draft.Remaining = append(draft.Remaining, *draft.InitialDiscard)
			draft.InitialDiscard = nil
		}

		roleCount := 1
		if len(g.Players) <= 3 {
			roleCount = 2
		}
		allPicked := true
		for _, p := range g.Players {
			if len(p.Roles) != roleCount {
				allPicked = false
				break
			}
		}
		if allPicked {
			theaterPlayer := -1
			for _, p := range g.Players {
				if p.CityHas(catalogue.Theater) {
					theaterPlayer = int(p.Index)
					break
				}
			}
			if theaterPlayer >= 0 {
				draft.Player = PlayerIndex(theaterPlayer)
				draft.TheaterStep = true
			} else {
				g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: catalogue.RankOne}}
			}
		} else {
			draft.Player = PlayerIndex((int(draft.Player) + 1) % len(g.Players))
		}

	default:
		call := g.ActiveTurn.Call
		if call.EndOfRound {
			g.endRound()
			break
		}

		if player, err := g.ActivePlayer(); err == nil {
			role, _ := g.activeRole()
			isWitch := role.Role == catalogue.Witch
			if !isWitch && player.Gold == 0 && player.CityHas(catalogue.PoorHouse) {
				player.Gold++
				role.Logs = append(role.Logs, fmt.Sprintf("%s gains 1 gold from their Poor House.", player.Name))
			}
			if !isWitch && len(player.Hand) == 0 && player.CityHas(catalogue.Park) {
				g.gainCards(2)
				role.Logs = append(role.Logs, fmt.Sprintf("%s gains 2 cards from their Park.", player.Name))
			}
			if g.Alchemist > 0 {
				refund := g.Alchemist
				g.Alchemist = 0
				player.Gold += refund
				role.Logs = append(role.Logs, fmt.Sprintf("The Alchemist is refunded %d gold spent building.", refund))
			}
		}
		g.callNext()
	}

	return g.startTurn()
}

func (g *Game) callNext() {
	if g.ActiveTurn.Phase != PhaseCall {
		return
	}
	call := g.ActiveTurn.Call
	if rank, ok := g.Characters.Next(call.Rank); ok {
		g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: rank}}
		return
	}
	if rank4 := g.Characters.Get(catalogue.RankFour); rank4.Role == catalogue.Emperor && rank4.hasMarker(MarkerKilled) && rank4.Player != nil {
		g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: catalogue.RankFour, EndOfRound: true}}
		return
	}
	g.endRound()
}

func (g *Game) endRound() {
	rank4 := g.Characters.Get(catalogue.RankFour)
	if rank4.hasMarker(MarkerKilled) && rank4.Player != nil {
		if rank4.Role == catalogue.King || rank4.Role == catalogue.Patrician {
			g.Crowned = *rank4.Player
			g.Logs = append(g.Logs, fmt.Sprintf("%s's heir %s crowned.", rank4.Role.DisplayName(), g.Players[g.Crowned].Name))
		}
		if g.Characters.Len() >= 9 {
			n := len(g.Players)
			ninth := g.Characters.Get(catalogue.RankNine)
			p2 := *rank4.Player
			if ninth.Role == catalogue.Queen && ninth.Player != nil {
				p1 := int(*ninth.Player)
				if (p1+1)%n == int(p2) || (int(p2)+1)%n == p1 {
					g.Players[*ninth.Player].Gold += 3
					g.Logs = append(g.Logs, fmt.Sprintf(
						"The Queen (%s) is seated next to the dead %s; they gain 3 gold.",
						g.Players[*ninth.Player].Name, rank4.Role.DisplayName()))
				}
			}
		}
	}

	if g.FirstToComplete != nil {
		g.ActiveTurn = Turn{Phase: PhaseGameOver}
		return
	}

	g.cleanupRound()
	g.beginDraft()
}

func (g *Game) cleanupRound() {
	for i := range g.Characters.roles[:g.Characters.inPlay] {
		g.Characters.roles[i].cleanupRound()
	}
	for _, p := range g.Players {
		p.cleanupRound()
	}
}
