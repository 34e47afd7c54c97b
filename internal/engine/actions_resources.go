package engine

import (
	"fmt"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func (g *Game) performGatherGold() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	amount := 2
	var log string
	if player.CityHas(catalogue.GoldMine) {
		amount++
		log = fmt.Sprintf("%s gathers 3 gold. (1 extra from their Gold Mine).", player.Name)
	} else {
		log = fmt.Sprintf("%s gathers %d gold.", player.Name, amount)
	}
	player.Gold += amount
	return newOutput(log).withFollowup(g.afterGatherResources()), nil
}

func (g *Game) performGatherCards() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	drawAmount := 2
	if player.CityHas(catalogue.Observatory) {
		drawAmount++
	}

	drawn := g.Deck.DrawMany(drawAmount)

	if player.CityHas(catalogue.Library) {
		player.Hand = append(player.Hand, drawn...)
		return newOutput(fmt.Sprintf(
			"%s gathers cards. With the aid of their library they keep all %d cards.",
			player.Name, len(drawn))).withFollowup(g.afterGatherResources()), nil
	}

	log := fmt.Sprintf("%s reveals %d cards from the top of the deck.", player.Name, len(drawn))
	if len(drawn) > 0 {
		return newOutput(log).withFollowup(&Followup{Kind: FollowupGatherCardsPick, Revealed: drawn}), nil
	}
	return newOutput(log).withFollowup(g.afterGatherResources()), nil
}

func (g *Game) performGatherCardsPick(action *Action) (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupGatherCardsPick {
		return actionOutput{}, &NotAllowedError{Tag: "GatherCardsPick"}
	}
	revealed, ok := removeFirstDistrict(g.Followup.Revealed, action.District)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "invalid choice"}
	}

	g.rng.Shuffle(len(revealed), func(i, j int) { revealed[i], revealed[j] = revealed[j], revealed[i] })
	for _, remaining := range revealed {
		g.Deck.DiscardToBottom(remaining)
	}

	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	player.Hand = append(player.Hand, action.District)
	return newOutput("They pick a card.").withFollowup(g.afterGatherResources()), nil
}

func (g *Game) performResourcesFromReligion(action *Action) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	count := player.CountSuitForResourceGain(catalogue.Religious)
	total := action.ReligionGold + action.ReligionCards
	if total < count {
		return actionOutput{}, &InvalidTargetError{Reason: fmt.Sprintf("too few resources, you should select %d", count)}
	}
	if total > count {
		return actionOutput{}, &InvalidTargetError{Reason: fmt.Sprintf("too many resources, you should select %d", count)}
	}

	player.Gold += action.ReligionGold
	g.gainCards(action.ReligionCards)

	return newOutput(fmt.Sprintf("The Abbot (%s) gained %d gold and %d cards from their Religious districts",
		player.Name, action.ReligionGold, action.ReligionCards)), nil
}

func (g *Game) performMerchantGainOneGold() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	player.Gold++
	return newOutput(fmt.Sprintf("The Merchant (%s) gains 1 extra gold.", player.Name)), nil
}

func (g *Game) performArchitectGainCards() (actionOutput, error) {
	g.gainCards(2)
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	return newOutput(fmt.Sprintf("The Architect (%s) gains 2 extra cards.", player.Name)), nil
}

func (g *Game) performTakeFromRich(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if action.Player == active.Name {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot take from yourself"}
	}

	myGold := active.Gold
	var richest []*Player
	for _, p := range g.Players {
		if p.Gold <= myGold {
			continue
		}
		switch {
		case len(richest) == 0:
			richest = append(richest, p)
		case p.Gold == richest[0].Gold:
			richest = append(richest, p)
		case p.Gold > richest[0].Gold:
			richest = []*Player{p}
		}
	}

	var target *Player
	for _, p := range richest {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "not among the richest"}
	}

	target.Gold--
	active.Gold++
	return newOutput(fmt.Sprintf("The Abbot (%s) takes 1 gold from the richest: %s", active.Name, target.Name)), nil
}

func (g *Game) performQueenGainGold() (actionOutput, error) {
	activeIdx, err := g.ActivePlayerIndex()
	if err != nil {
		return actionOutput{}, err
	}
	n := len(g.Players)
	left := PlayerIndex((int(activeIdx) + n - 1) % n)
	right := PlayerIndex((int(activeIdx) + 1) % n)
	c := g.Characters.Get(catalogue.RankFour)

	if c.Revealed && c.Player != nil && (*c.Player == left || *c.Player == right) {
		g.Players[activeIdx].Gold += 3
		return newOutput(fmt.Sprintf("The Queen is seated next to the %s, and gains 3 gold.", c.Role.DisplayName())), nil
	}
	return newOutput(fmt.Sprintf("The Queen is not seated next to the %s.", c.Role.DisplayName())), nil
}

func (g *Game) performNavigatorGain(action *Action) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if action.Resource == ResourceCards {
		g.gainCards(4)
		return newOutput(fmt.Sprintf("The Navigator (%s) gains 4 extra cards.", player.Name)), nil
	}
	player.Gold += 4
	return newOutput(fmt.Sprintf("The Navigator (%s) gains 4 extra gold.", player.Name)), nil
}

func (g *Game) performCollectTaxes() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	taxes := g.TaxCollector
	player.Gold += taxes
	g.TaxCollector = 0
	return newOutput(fmt.Sprintf("The Tax Collector collects %d gold in taxes.", taxes)), nil
}
