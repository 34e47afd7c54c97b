package engine

import (
	"fmt"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func (g *Game) performTakeCrown() (actionOutput, error) {
	// Hardcoded to rank four; this overrides the Witch.
	rank4 := g.Characters.Get(catalogue.RankFour)
	if rank4.Player == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "no royalty to take the crown"}
	}
	g.Crowned = *rank4.Player
	return newOutput(fmt.Sprintf("%s takes the crown.", g.Players[g.Crowned].Name)), nil
}

func (g *Game) performEmperorGiveCrown(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if active.Name == action.Player {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot give the crown to yourself"}
	}

	var target *Player
	for _, p := range g.Players {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "player does not exist"}
	}
	if target.Index == g.Crowned {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot give the crown to the already crowned player"}
	}
	g.Crowned = target.Index

	resourceWord := "gold"
	switch action.Resource {
	case ResourceGold:
		if target.Gold > 0 {
			target.Gold--
			active.Gold++
		}
	case ResourceCards:
		resourceWord = "cards"
		if len(target.Hand) > 0 {
			i := g.rng.IntN(len(target.Hand))
			card := target.Hand[i]
			target.Hand = append(target.Hand[:i], target.Hand[i+1:]...)
			active.Hand = append(active.Hand, card)
		}
	}

	return newOutput(fmt.Sprintf("The Emperor (%s) gives %s the crown and takes one of their %s.",
		active.Name, action.Player, resourceWord)), nil
}

func (g *Game) performEmperorHeirGiveCrown(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if active.Name == action.Player {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot give the crown to yourself"}
	}

	var target *Player
	for _, p := range g.Players {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "player does not exist"}
	}
	if target.Index == g.Crowned {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot give the crown to the already crowned player"}
	}
	g.Crowned = target.Index

	return newOutput(fmt.Sprintf("The Emperor's advisor (%s) gives %s the crown.",
		active.Name, action.Player)).withEndTurn(), nil
}

func (g *Game) performAssassinate(action *Action) (actionOutput, error) {
	if action.Role.Rank() == catalogue.RankOne {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot kill self"}
	}
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	target := g.Characters.Get(action.Role.Rank())
	target.Markers = append(target.Markers, Marker{Kind: MarkerKilled})

	return newOutput(fmt.Sprintf("The Assassin (%s) kills the %s; Their turn will be skipped.",
		active.Name, action.Role.DisplayName())), nil
}

func (g *Game) performSteal(action *Action) (actionOutput, error) {
	if action.Role.Rank() < catalogue.RankThree {
		return actionOutput{}, &InvalidTargetError{Reason: "target rank is too low"}
	}
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	target := g.Characters.Get(action.Role.Rank())
	if target.hasMarker(MarkerKilled) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot rob from the dead"}
	}
	if target.hasMarker(MarkerBewitched) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot rob from the bewitched"}
	}
	target.Markers = append(target.Markers, Marker{Kind: MarkerRobbed})

	return newOutput(fmt.Sprintf("The Thief (%s) robs the %s; At the start of their turn, all their gold will be taken.",
		active.Name, action.Role.DisplayName())), nil
}

func (g *Game) performMagic(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}

	if action.MagicianKind == MagicianSwapHands {
		var target *Player
		for _, p := range g.Players {
			if p.Name == action.MagicianPlayer {
				target = p
				break
			}
		}
		if target == nil {
			return actionOutput{}, &InvalidTargetError{Reason: "invalid target"}
		}
		handCount, targetCount := len(active.Hand), len(target.Hand)
		active.Hand, target.Hand = target.Hand, active.Hand
		return newOutput(fmt.Sprintf("The Magician (%s) swaps their hand of %d cards with %s's hand of %d cards.",
			active.Name, handCount, action.MagicianPlayer, targetCount)), nil
	}

	newHand, ok := removeAllCards(active.Hand, action.MagicianDiscard)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "can't discard cards not in your hand"}
	}
	active.Hand = newHand
	for _, c := range action.MagicianDiscard {
		g.Deck.DiscardToBottom(c)
	}
	drawn := len(action.MagicianDiscard)
	g.gainCards(drawn)

	return newOutput(fmt.Sprintf("The Magician (%s) discarded %d cards and drew %d more.",
		active.Name, drawn, drawn)), nil
}

func (g *Game) performSpy(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if action.Player == active.Name {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot spy on self"}
	}

	var target *Player
	for _, p := range g.Players {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "no player with that name"}
	}

	matches := 0
	for _, c := range target.Hand {
		if c.Data().Suit == action.Suit {
			matches++
		}
	}
	goldTaken := matches
	if target.Gold < goldTaken {
		goldTaken = target.Gold
	}
	target.Gold -= goldTaken
	active.Gold += goldTaken
	cardsDrawn := g.gainCards(matches)

	return newOutput(fmt.Sprintf(
		"The Spy (%s) is counting %s districts. They spy on %s, and find %d matches. They take %d gold, and draw %d cards.",
		active.Name, action.Suit, target.Name, matches, goldTaken, cardsDrawn,
	)).withFollowup(&Followup{
		Kind:    FollowupSpyAcknowledge,
		SpyOn:   target.Name,
		SpyHand: target.Hand,
	}), nil
}

func (g *Game) performSpyAcknowledge() (actionOutput, error) {
	return newOutput("Spy is done peeking at the revealed hand"), nil
}

func (g *Game) performScholarReveal() (actionOutput, error) {
	drawn := g.Deck.DrawMany(7)
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	return newOutput(fmt.Sprintf("The Scholar (%s) is choosing from the top %d cards of the deck.",
		player.Name, len(drawn))).withFollowup(&Followup{Kind: FollowupScholarPick, Revealed: drawn}), nil
}

func (g *Game) performScholarPick(action *Action) (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupScholarPick {
		return actionOutput{}, &NotAllowedError{Tag: "ScholarPick"}
	}
	revealed, ok := removeFirstDistrict(g.Followup.Revealed, action.District)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "invalid choice"}
	}
	for _, remaining := range revealed {
		g.Deck.DiscardToBottom(remaining)
	}
	g.Deck.Shuffle(g.rng)

	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	player.Hand = append(player.Hand, action.District)

	return newOutput(fmt.Sprintf("The Scholar (%s) picks a card, discarding the rest and shuffling the deck.", player.Name)), nil
}

func (g *Game) performSeerTake() (actionOutput, error) {
	myIndex, err := g.ActivePlayerIndex()
	if err != nil {
		return actionOutput{}, err
	}
	active := g.Players[myIndex]
	activeHand := active.Hand
	active.Hand = nil

	var takenFrom []PlayerIndex
	for _, player := range g.Players {
		if player.Index == myIndex || len(player.Hand) == 0 {
			continue
		}
		i := g.rng.IntN(len(player.Hand))
		card := player.Hand[i]
		player.Hand = append(player.Hand[:i], player.Hand[i+1:]...)
		takenFrom = append(takenFrom, player.Index)
		activeHand = append(activeHand, card)
	}
	active.Hand = activeHand

	out := newOutput(fmt.Sprintf("The Seer (%s) takes 1 card from everyone.", active.Name))
	if len(takenFrom) == 0 {
		return out, nil
	}
	return out.withFollowup(&Followup{Kind: FollowupSeerDistribute, Players: takenFrom}), nil
}

func (g *Game) performSeerDistribute(action *Action) (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupSeerDistribute {
		return actionOutput{}, &NotAllowedError{Tag: "SeerDistribute"}
	}

	byName := make(map[string]PlayerIndex, len(g.Players))
	for _, p := range g.Players {
		byName[p.Name] = p.Index
	}

	type pair struct {
		index    PlayerIndex
		district catalogue.DistrictName
	}
	pairs := make([]pair, 0, len(action.SeerGifts))
	for name, district := range action.SeerGifts {
		index, ok := byName[name]
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: fmt.Sprintf("cannot give %s a card", name)}
		}
		pairs = append(pairs, pair{index, district})
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	for _, pr := range pairs {
		hand, ok := removeFirstDistrict(active.Hand, pr.district)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot assign district not in hand"}
		}
		active.Hand = hand
	}
	for _, pr := range pairs {
		g.Players[pr.index].Hand = append(g.Players[pr.index].Hand, pr.district)
	}

	return newOutput("The Seer gives cards back."), nil
}

func (g *Game) performWizardPeek(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	var target *Player
	for _, p := range g.Players {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "invalid player target"}
	}

	return newOutput(fmt.Sprintf("The Wizard (%s) peeks at %s's hand.", active.Name, action.Player)).
		withFollowup(&Followup{Kind: FollowupWizardPick, Player: target.Index}), nil
}

func (g *Game) performWizardPick(action *Action) (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupWizardPick {
		return actionOutput{}, &NotAllowedError{Tag: "WizardPick"}
	}
	targetIndex := g.Followup.Player
	target := g.Players[targetIndex]
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}

	if action.Wizard.Kind == WizardTakeToHand {
		hand, ok := removeFirstDistrict(target.Hand, action.Wizard.District)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "district not in target player's hand"}
		}
		target.Hand = hand
		active.Hand = append(active.Hand, action.Wizard.District)
		return newOutput(fmt.Sprintf("The Wizard (%s) takes a card from %s's hand.", active.Name, target.Name)), nil
	}

	var districtName catalogue.DistrictName
	switch action.Wizard.Kind {
	case WizardBuild, WizardBuildFramework:
		districtName = action.Wizard.District
	case WizardBuildThievesDen:
		districtName = catalogue.ThievesDen
	case WizardBuildNecropolis:
		districtName = catalogue.Necropolis
	}

	inHand := false
	for _, c := range target.Hand {
		if c == districtName {
			inHand = true
			break
		}
	}
	if !inHand {
		return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
	}
	if districtName == catalogue.Monument && len(active.City) >= 5 {
		return actionOutput{}, &InvalidTargetError{Reason: "you can only build the Monument if you have fewer than 5 districts in your city"}
	}

	cost := costWithFactory(active, districtName)

	switch action.Wizard.Kind {
	case WizardBuild:
		if cost > active.Gold {
			return actionOutput{}, &InvalidTargetError{Reason: "not enough gold"}
		}
		active.Gold -= cost

	case WizardBuildThievesDen:
		discard := action.Wizard.Discard
		if len(discard) > cost {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot discard more cards than the cost"}
		}
		if active.Gold+len(discard) < cost {
			return actionOutput{}, &InvalidTargetError{Reason: "not enough gold or cards discarded"}
		}
		newHand, ok := removeAllCards(active.Hand, discard)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "can't discard cards not in your hand"}
		}
		cost -= len(discard)
		active.Gold -= cost
		active.Hand = newHand
		for _, c := range discard {
			g.Deck.DiscardToBottom(c)
		}

	case WizardBuildFramework:
		cityIndex, ok := findCityIndex(active.City, CityDistrictTarget{District: catalogue.Framework})
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot sacrifice a district you don't own"}
		}
		active.City = append(active.City[:cityIndex], active.City[cityIndex+1:]...)

	case WizardBuildNecropolis:
		cityIndex, ok := findCityIndex(active.City, action.Wizard.Sacrifice)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot sacrifice a district you don't own"}
		}
		sacrificed := active.City[cityIndex]
		active.City = append(active.City[:cityIndex], active.City[cityIndex+1:]...)
		g.discardDistrict(sacrificed.Name)
	}

	hand, ok := removeFirstDistrict(target.Hand, districtName)
	if !ok {
		return actionOutput{}, fmt.Errorf("impossible: wizard target card vanished")
	}
	target.Hand = hand

	return g.finishBuild(active, cost, districtName, "The Wizard")
}
