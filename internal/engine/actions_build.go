package engine

import (
	"fmt"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

// costWithFactory is a district's base cost, discounted by 1 if it is a
// Unique district and the player owns a Factory.
func costWithFactory(player *Player, district catalogue.DistrictName) int {
	data := district.Data()
	cost := data.Cost
	if data.Suit == catalogue.Unique && player.CityHas(catalogue.Factory) {
		cost--
	}
	return cost
}

// chargeTaxCollector takes 1 gold from whoever just built into the Tax
// Collector's escrow, unless the builder is the Tax Collector themselves.
func (g *Game) chargeTaxCollector(player *Player) {
	role, err := g.activeRole()
	if err != nil || role.Role == catalogue.TaxCollector || !g.Characters.HasTaxCollector() {
		return
	}
	if player.Gold > 0 {
		player.Gold--
		g.TaxCollector++
	}
}

// finishBuild completes a build, or, if the active character holds a signed
// or unsigned warrant, hands off to the Magistrate's confiscation followup
// instead. Only the first build of a turn can be confiscated.
func (g *Game) finishBuild(player *Player, cost int, district catalogue.DistrictName, verb string) (actionOutput, error) {
	g.chargeTaxCollector(player)

	role, err := g.activeRole()
	if err != nil {
		return actionOutput{}, err
	}

	alreadyBuilt := false
	for _, a := range g.TurnActions {
		if a.isBuild() {
			alreadyBuilt = true
			break
		}
	}

	if role.hasWarrant() && !alreadyBuilt {
		signed := false
		for _, m := range role.Markers {
			if m.Kind == MarkerWarrant && m.Signed {
				signed = true
			}
		}
		magistrate := g.Characters.Get(catalogue.RankOne).Player
		if magistrate == nil {
			return actionOutput{}, fmt.Errorf("no magistrate seated")
		}
		return newOutput(fmt.Sprintf(
			"%s begins to build a %s; waiting on the Magistrate's response.", verb, district.Data().DisplayName,
		)).withFollowup(&Followup{
			Kind:       FollowupWarrant,
			Magistrate: *magistrate,
			WarrantFor: district,
			WarrantPay: cost,
			Signed:     signed,
		}), nil
	}

	g.completeBuild(player.Index, cost, district)
	return newOutput(fmt.Sprintf("%s builds a %s.", verb, district.Data().DisplayName)), nil
}

func findCityIndex(city []CityDistrict, target CityDistrictTarget) (int, bool) {
	for i, c := range city {
		if c.Name == target.District && c.Beautified == target.Beautified {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) performBuild(action *Action) (actionOutput, error) {
	method := action.Build
	var districtName catalogue.DistrictName
	switch method.Kind {
	case BuildThievesDen:
		districtName = catalogue.ThievesDen
	case BuildNecropolis:
		districtName = catalogue.Necropolis
	default:
		districtName = method.District
	}

	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}

	inHand := false
	for _, c := range player.Hand {
		if c == districtName {
			inHand = true
			break
		}
	}
	if !inHand {
		return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
	}

	if !g.hasGatheredResources() {
		return actionOutput{}, &NotAllowedError{Tag: "must gather resources before building"}
	}

	role, err := g.activeRole()
	if err != nil {
		return actionOutput{}, err
	}

	isFreeBuild := districtName == catalogue.Stables ||
		(districtName.Data().Suit == catalogue.Trade && role.Role == catalogue.Trader)

	if !isFreeBuild && g.RemainingBuilds == 0 {
		return actionOutput{}, &NotAllowedError{Tag: "build limit reached this turn"}
	}

	hasQuarry := player.CityHas(catalogue.Quarry)
	if !hasQuarry && role.Role != catalogue.Wizard && player.CityHas(districtName) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot build duplicate"}
	}

	if districtName == catalogue.Monument && len(player.City) >= 5 {
		return actionOutput{}, &InvalidTargetError{Reason: "you can only build the Monument if you have fewer than 5 districts in your city"}
	}

	cost := costWithFactory(player, districtName)

	switch method.Kind {
	case BuildRegular:
		if cost > player.Gold {
			return actionOutput{}, &InvalidTargetError{Reason: "not enough gold"}
		}
		hand, ok := removeFirstDistrict(player.Hand, districtName)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
		}
		player.Hand = hand
		player.Gold -= cost

	case BuildCardinal:
		if role.Role != catalogue.Cardinal {
			return actionOutput{}, &NotAllowedError{Tag: "you are not the Cardinal"}
		}
		paid := len(method.Discard)
		if player.Gold+paid < cost {
			return actionOutput{}, &InvalidTargetError{Reason: "not enough gold or discarded"}
		}
		if player.Gold+paid > cost {
			return actionOutput{}, &InvalidTargetError{Reason: "must spend own gold first, before taking from others"}
		}

		var target *Player
		for _, p := range g.Players {
			if p.Name == method.Player {
				target = p
				break
			}
		}
		if target == nil {
			return actionOutput{}, &InvalidTargetError{Reason: "player does not exist"}
		}
		if target.Gold < paid {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot give more cards than the target has gold"}
		}

		newHand, ok := removeAllCards(player.Hand, method.Discard)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "can't discard cards not in your hand"}
		}
		newHand, ok = removeFirstDistrict(newHand, districtName)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
		}

		cost -= paid
		player.Gold -= cost
		player.Hand = newHand
		target.Gold -= paid
		target.Hand = append(target.Hand, method.Discard...)

	case BuildThievesDen:
		if paid := len(method.Discard); paid > cost {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot discard more cards than the cost"}
		} else if player.Gold+paid < cost {
			return actionOutput{}, &InvalidTargetError{Reason: "not enough gold or cards discarded"}
		}
		newHand, ok := removeAllCards(player.Hand, method.Discard)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "can't discard cards not in your hand"}
		}
		newHand, ok = removeFirstDistrict(newHand, districtName)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
		}
		cost -= len(method.Discard)
		player.Gold -= cost
		player.Hand = newHand
		for _, c := range method.Discard {
			g.Deck.DiscardToBottom(c)
		}

	case BuildFramework:
		cityIndex, ok := findCityIndex(player.City, CityDistrictTarget{District: catalogue.Framework})
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "you don't own a framework"}
		}
		hand, ok := removeFirstDistrict(player.Hand, districtName)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
		}
		player.Hand = hand
		player.City = append(player.City[:cityIndex], player.City[cityIndex+1:]...)

	case BuildNecropolis:
		cityIndex, ok := findCityIndex(player.City, method.Sacrifice)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot sacrifice a district you don't own"}
		}
		hand, ok := removeFirstDistrict(player.Hand, districtName)
		if !ok {
			return actionOutput{}, &InvalidTargetError{Reason: "card not in hand"}
		}
		player.Hand = hand
		sacrificed := player.City[cityIndex]
		player.City = append(player.City[:cityIndex], player.City[cityIndex+1:]...)
		g.discardDistrict(sacrificed.Name)
	}

	if !isFreeBuild {
		g.RemainingBuilds--
	}

	return g.finishBuild(player, cost, districtName, player.Name)
}

func removeAllCards(hand []catalogue.DistrictName, cards []catalogue.DistrictName) ([]catalogue.DistrictName, bool) {
	remaining := append([]catalogue.DistrictName(nil), cards...)
	newHand := make([]catalogue.DistrictName, 0, len(hand))
	for _, c := range hand {
		removed := false
		for i, r := range remaining {
			if r == c {
				remaining = append(remaining[:i], remaining[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			newHand = append(newHand, c)
		}
	}
	return newHand, len(remaining) == 0
}

func (g *Game) performSmithy() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if player.Gold < 2 {
		return actionOutput{}, &InvalidTargetError{Reason: "not enough gold"}
	}
	player.Gold -= 2
	g.gainCards(3)
	return newOutput(fmt.Sprintf("At the Smithy, %s forges 2 gold into 3 cards.", player.Name)), nil
}

func (g *Game) performLaboratory(action *Action) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	hand, ok := removeFirstDistrict(player.Hand, action.District)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "district not in hand"}
	}
	player.Hand = hand
	player.Gold += 2
	g.Deck.DiscardToBottom(action.District)
	return newOutput(fmt.Sprintf("At the Laboratory, %s transmutes 1 card into 2 gold.", player.Name)), nil
}

func (g *Game) performArmory(action *Action) (actionOutput, error) {
	target := action.ArmoryTarget
	if target.District == catalogue.Keep {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot destroy the Keep"}
	}
	if target.District == catalogue.Armory {
		return actionOutput{}, &InvalidTargetError{Reason: "the armory cannot destroy itself"}
	}

	completeSize := g.CompleteCitySize()
	var targeted *Player
	for _, p := range g.Players {
		if p.Name == target.Player && p.CitySize() < completeSize {
			targeted = p
			break
		}
	}
	if targeted == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "player does not exist or cannot destroy from complete city"}
	}

	cityIndex, ok := findCityIndex(targeted.City, target)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "does not exist in the targeted player's city"}
	}
	targeted.City = append(targeted.City[:cityIndex], targeted.City[cityIndex+1:]...)

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	armoryIndex, ok := findCityIndex(active.City, CityDistrictTarget{District: catalogue.Armory})
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "you do not have the armory"}
	}
	active.City = append(active.City[:armoryIndex], active.City[armoryIndex+1:]...)

	g.discardDistrict(catalogue.Armory)
	g.discardDistrict(target.District)

	return newOutput(fmt.Sprintf("%s sacrifices their Armory to destroy %s's %s.",
		active.Name, target.Player, target.District.Data().DisplayName)), nil
}

func (g *Game) performMuseumTuck(action *Action) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	hand, ok := removeFirstDistrict(player.Hand, action.District)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "district not in hand"}
	}
	player.Hand = hand
	g.Museum.Tuck(action.District)
	return newOutput(fmt.Sprintf("%s tucks a card face down under their Museum.", player.Name)), nil
}

func (g *Game) performBeautify(action *Action) (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if player.Gold < 1 {
		return actionOutput{}, &InvalidTargetError{Reason: "not enough gold"}
	}
	for i, c := range player.City {
		if !c.Beautified && c.Name == action.BeautifyTarget.District {
			player.City[i].Beautified = true
			player.Gold--
			return newOutput(fmt.Sprintf("The Artist (%s) beautifies their %s.", player.Name, c.Name.Data().DisplayName)), nil
		}
	}
	return actionOutput{}, &InvalidTargetError{Reason: "invalid target, is it already beautified?"}
}

func (g *Game) performWarlordDestroy(action *Action) (actionOutput, error) {
	target := action.WarlordTarget
	if target.District == catalogue.Keep {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target the Keep"}
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	availableGold := active.Gold
	completeSize := g.CompleteCitySize()

	var player *Player
	for _, p := range g.Players {
		if p.Name == target.Player {
			player = p
			break
		}
	}
	if player == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "player does not exist"}
	}
	if g.Characters.HasBishopProtection(player.Index) {
		return actionOutput{}, &NotAllowedError{Tag: "cannot target the Bishop"}
	}
	if player.CitySize() >= completeSize {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target a completed city"}
	}

	cityIndex, ok := findCityIndex(player.City, target)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "does not exist in the targeted player's city"}
	}

	destroyCost := target.EffectiveCost() - 1
	if player.CityHas(catalogue.GreatWall) {
		destroyCost++
	}
	if availableGold < destroyCost {
		return actionOutput{}, &InvalidTargetError{Reason: "not enough gold to destroy"}
	}

	player.City = append(player.City[:cityIndex], player.City[cityIndex+1:]...)
	active.Gold -= destroyCost
	g.discardDistrict(target.District)

	return newOutput(fmt.Sprintf("The Warlord (%s) destroys %s's %s.",
		active.Name, target.Player, target.District.Data().DisplayName)), nil
}

func (g *Game) performMarshalSeize(action *Action) (actionOutput, error) {
	target := action.MarshalTarget
	if target.District == catalogue.Keep {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target the Keep"}
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if active.CityHas(target.District) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot seize a copy of your own district"}
	}

	availableGold := active.Gold
	completeSize := g.CompleteCitySize()

	var player *Player
	for _, p := range g.Players {
		if p.Name == target.Player {
			player = p
			break
		}
	}
	if player == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "player does not exist"}
	}
	if g.Characters.HasBishopProtection(player.Index) {
		return actionOutput{}, &NotAllowedError{Tag: "cannot target the Bishop"}
	}
	if player.CitySize() >= completeSize {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target a completed city"}
	}

	cityIndex, ok := findCityIndex(player.City, target)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "does not exist in the targeted player's city"}
	}

	seizeCost := target.EffectiveCost()
	if seizeCost > 3 {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot seize district because it costs more than 3"}
	}
	if player.CityHas(catalogue.GreatWall) {
		seizeCost++
	}
	if availableGold < seizeCost {
		return actionOutput{}, &InvalidTargetError{Reason: "not enough gold to seize"}
	}

	district := player.City[cityIndex]
	player.City = append(player.City[:cityIndex], player.City[cityIndex+1:]...)
	player.Gold += seizeCost
	active.Gold -= seizeCost
	active.City = append(active.City, district)

	return newOutput(fmt.Sprintf("The Marshal (%s) seizes %s's %s.",
		active.Name, target.Player, target.District.Data().DisplayName)), nil
}

func (g *Game) performDiplomatTrade(action *Action) (actionOutput, error) {
	mine := action.DiplomatMine
	theirs := action.DiplomatTheirs
	if theirs.District == catalogue.Keep {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target the Keep"}
	}

	completeSize := g.CompleteCitySize()
	var player *Player
	for _, p := range g.Players {
		if p.Name == theirs.Player {
			player = p
			break
		}
	}
	if player == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "invalid player target"}
	}
	if g.Characters.HasBishopProtection(player.Index) {
		return actionOutput{}, &NotAllowedError{Tag: "cannot target the Bishop"}
	}
	if player.CitySize() >= completeSize {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target a completed city"}
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}

	myCost := mine.EffectiveCost()
	theirCost := theirs.EffectiveCost()
	tradeCost := 0
	if myCost < theirCost {
		tradeCost = theirCost - myCost
	}
	if player.CityHas(catalogue.GreatWall) {
		tradeCost++
	}
	if tradeCost > active.Gold {
		return actionOutput{}, &InvalidTargetError{Reason: "not enough gold"}
	}
	if player.CityHas(mine.District) {
		return actionOutput{}, &InvalidTargetError{Reason: "the targeted player already has a copy of that district"}
	}
	if active.CityHas(theirs.District) {
		return actionOutput{}, &InvalidTargetError{Reason: "you already have a copy of that district"}
	}

	myCityIndex, ok := findCityIndex(active.City, mine)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "does not exist in your city"}
	}
	theirCityIndex, ok := findCityIndex(player.City, theirs)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "does not exist in the targeted player's city"}
	}

	player.Gold += tradeCost
	player.City[theirCityIndex] = CityDistrict{Name: mine.District, Beautified: mine.Beautified}
	active.Gold -= tradeCost
	active.City[myCityIndex] = CityDistrict{Name: theirs.District, Beautified: theirs.Beautified}

	suffix := ""
	if tradeCost > 0 {
		suffix = fmt.Sprintf("; they paid %d gold for the difference", tradeCost)
	}
	return newOutput(fmt.Sprintf("The Diplomat (%s) traded their %s for %s's %s%s.",
		active.Name, mine.District.Data().DisplayName, theirs.Player, theirs.District.Data().DisplayName, suffix)), nil
}
