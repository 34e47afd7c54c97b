package engine

import (
	"fmt"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func (g *Game) performBewitch(action *Action) (actionOutput, error) {
	if action.Role.Rank() == catalogue.RankOne {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot target self"}
	}
	g.Characters.Get(action.Role.Rank()).Markers = append(
		g.Characters.Get(action.Role.Rank()).Markers, Marker{Kind: MarkerBewitched})

	return newOutput(fmt.Sprintf("The Witch bewitches %s.", action.Role.DisplayName())).withEndTurn(), nil
}

func (g *Game) performSendWarrants(action *Action) (actionOutput, error) {
	roles := []catalogue.RoleName{action.Signed, action.Unsigned[0], action.Unsigned[1]}
	seen := make(map[catalogue.RoleName]bool, 3)
	for _, r := range roles {
		if seen[r] {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot assign more than 1 warrant to a role"}
		}
		seen[r] = true
		if r.Rank() == catalogue.RankOne {
			return actionOutput{}, &InvalidTargetError{Reason: "cannot assign warrant to self"}
		}
	}
	sortRolesByRank(roles)

	g.Characters.Get(action.Signed.Rank()).Markers = append(
		g.Characters.Get(action.Signed.Rank()).Markers, Marker{Kind: MarkerWarrant, Signed: true})
	for _, r := range action.Unsigned {
		g.Characters.Get(r.Rank()).Markers = append(
			g.Characters.Get(r.Rank()).Markers, Marker{Kind: MarkerWarrant, Signed: false})
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	return newOutput(fmt.Sprintf("The Magistrate (%s) sends warrants to the %s, the %s, and the %s.",
		active.Name, roles[0].DisplayName(), roles[1].DisplayName(), roles[2].DisplayName())), nil
}

func (g *Game) performBlackmail(action *Action) (actionOutput, error) {
	if action.Flowered == action.Unmarked {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot blackmail someone twice"}
	}
	if action.Flowered.Rank() < catalogue.RankThree || action.Unmarked.Rank() < catalogue.RankThree {
		return actionOutput{}, &InvalidTargetError{Reason: "can only blackmail rank 3 or higher"}
	}
	flowered := g.Characters.Get(action.Flowered.Rank())
	unmarked := g.Characters.Get(action.Unmarked.Rank())
	if flowered.hasMarker(MarkerKilled) || flowered.hasMarker(MarkerBewitched) ||
		unmarked.hasMarker(MarkerKilled) || unmarked.hasMarker(MarkerBewitched) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot blackmail the killed or bewitched"}
	}

	flowered.Markers = append(flowered.Markers, Marker{Kind: MarkerBlackmail, Flowered: true})
	unmarked.Markers = append(unmarked.Markers, Marker{Kind: MarkerBlackmail, Flowered: false})

	roles := []catalogue.RoleName{action.Flowered, action.Unmarked}
	sortRolesByRank(roles)

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	return newOutput(fmt.Sprintf("The Blackmailer (%s) sends blackmail to the %s and the %s",
		active.Name, roles[0].DisplayName(), roles[1].DisplayName())), nil
}

func (g *Game) performPayBribe() (actionOutput, error) {
	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	half := player.Gold / 2
	player.Gold -= half

	blackmailer := g.Characters.Get(catalogue.RankTwo).Player
	if blackmailer == nil {
		return actionOutput{}, fmt.Errorf("no blackmailer seated")
	}
	g.Players[*blackmailer].Gold += half

	return newOutput(fmt.Sprintf("They bribed the Blackmailer (%s) with %d gold.",
		g.Players[*blackmailer].Name, half)), nil
}

func (g *Game) performIgnoreBlackmail() (actionOutput, error) {
	blackmailer := g.Characters.Get(catalogue.RankTwo).Player
	if blackmailer == nil {
		return actionOutput{}, fmt.Errorf("no blackmailer seated")
	}
	return newOutput("They ignored the blackmail. Waiting on the Blackmailer's response.").
		withFollowup(&Followup{Kind: FollowupBlackmail, Blackmailer: *blackmailer}), nil
}

func (g *Game) performRevealWarrant() (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupWarrant {
		return actionOutput{}, &NotAllowedError{Tag: "RevealWarrant"}
	}
	f := g.Followup
	if !f.Signed {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot reveal unsigned warrant"}
	}
	magistrate := g.Players[f.Magistrate]
	if magistrate.CityHas(f.WarrantFor) {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot confiscate a district you already have"}
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	active.Gold += f.WarrantPay
	magistrate.City = append(magistrate.City, CityDistrict{Name: f.WarrantFor})

	for i := range g.Characters.roles[:g.Characters.inPlay] {
		g.Characters.roles[i].removeMarkersOfKind(MarkerWarrant)
	}

	return newOutput(fmt.Sprintf(
		"The Magistrate (%s) reveals a signed warrant and confiscates the %s; %d gold is refunded.",
		magistrate.Name, f.WarrantFor.Data().DisplayName, f.WarrantPay)), nil
}

func (g *Game) performRevealBlackmail() (actionOutput, error) {
	if g.Followup == nil || g.Followup.Kind != FollowupBlackmail {
		return actionOutput{}, &NotAllowedError{Tag: "RevealBlackmail"}
	}
	blackmailer := g.Players[g.Followup.Blackmailer]

	role, err := g.activeRole()
	if err != nil {
		return actionOutput{}, err
	}
	flowered := false
	for _, m := range role.Markers {
		if m.Kind == MarkerBlackmail && m.Flowered {
			flowered = true
		}
	}

	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if !flowered {
		return newOutput(fmt.Sprintf("The Blackmailer (%s) reveals an empty threat. Nothing happens.", blackmailer.Name)), nil
	}

	gold := active.Gold
	active.Gold = 0
	blackmailer.Gold += gold

	for i := range g.Characters.roles[:g.Characters.inPlay] {
		g.Characters.roles[i].removeMarkersOfKind(MarkerBlackmail)
	}

	return newOutput(fmt.Sprintf("The Blackmailer (%s) reveals an active threat, and takes all %d of their gold.",
		blackmailer.Name, gold)), nil
}

func (g *Game) performPass() (actionOutput, error) {
	if g.Followup == nil {
		return actionOutput{}, &NotAllowedError{Tag: "Pass"}
	}
	switch g.Followup.Kind {
	case FollowupWarrant:
		f := g.Followup
		activeIdx, err := g.ActivePlayerIndex()
		if err != nil {
			return actionOutput{}, err
		}
		g.completeBuild(activeIdx, f.WarrantPay, f.WarrantFor)
		return newOutput(fmt.Sprintf("The Magistrate (%s) did not reveal the warrant.", g.Players[f.Magistrate].Name)), nil
	case FollowupBlackmail:
		return newOutput(fmt.Sprintf("The Blackmailer (%s) did not reveal the blackmail.",
			g.Players[g.Followup.Blackmailer].Name)), nil
	default:
		return actionOutput{}, fmt.Errorf("impossible")
	}
}
