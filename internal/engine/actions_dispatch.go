package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// performAction is the single entry point the validated Perform call routes
// through. Each case below implements one ActionTag; most live in a
// companion file grouped by what they touch (draft, resources, building,
// role abilities, threats).
func (g *Game) performAction(action *Action) (actionOutput, error) {
	switch action.Tag {
	case catalogue.DraftPick:
		return g.performDraftPick(action)
	case catalogue.DraftDiscard:
		return g.performDraftDiscard(action)
	case catalogue.ActTheater:
		return g.performTheater(action)
	case catalogue.TheaterPass:
		return newOutput("They decline to exchange characters.").withEndTurn(), nil

	case catalogue.GatherResourceGold:
		return g.performGatherGold()
	case catalogue.GatherResourceCards:
		return g.performGatherCards()
	case catalogue.GatherCardsPick:
		return g.performGatherCardsPick(action)

	case catalogue.Build:
		return g.performBuild(action)
	case catalogue.ActSmithy:
		return g.performSmithy()
	case catalogue.ActLaboratory:
		return g.performLaboratory(action)
	case catalogue.ActArmory:
		return g.performArmory(action)
	case catalogue.ActMuseum:
		return g.performMuseumTuck(action)
	case catalogue.WarlordDestroy:
		return g.performWarlordDestroy(action)
	case catalogue.Beautify:
		return g.performBeautify(action)
	case catalogue.MarshalSeize:
		return g.performMarshalSeize(action)
	case catalogue.DiplomatTrade:
		return g.performDiplomatTrade(action)

	case catalogue.TakeCrown:
		return g.performTakeCrown()
	case catalogue.EmperorGiveCrown:
		return g.performEmperorGiveCrown(action)
	case catalogue.EmperorHeirGiveCrown:
		return g.performEmperorHeirGiveCrown(action)
	case catalogue.GoldFromNobility:
		return g.gainGoldForSuit(catalogue.Noble)
	case catalogue.CardsFromNobility:
		return g.gainCardsForSuit(catalogue.Noble)
	case catalogue.GoldFromReligion:
		return g.gainGoldForSuit(catalogue.Religious)
	case catalogue.CardsFromReligion:
		return g.gainCardsForSuit(catalogue.Religious)
	case catalogue.GoldFromTrade:
		return g.gainGoldForSuit(catalogue.Trade)
	case catalogue.GoldFromMilitary:
		return g.gainGoldForSuit(catalogue.Military)
	case catalogue.MerchantGainOneGold:
		return g.performMerchantGainOneGold()
	case catalogue.ArchitectGainCards:
		return g.performArchitectGainCards()
	case catalogue.TakeFromRich:
		return g.performTakeFromRich(action)
	case catalogue.ResourcesFromReligion:
		return g.performResourcesFromReligion(action)
	case catalogue.QueenGainGold:
		return g.performQueenGainGold()
	case catalogue.NavigatorGain:
		return g.performNavigatorGain(action)
	case catalogue.CollectTaxes:
		return g.performCollectTaxes()

	case catalogue.Assassinate:
		return g.performAssassinate(action)
	case catalogue.Steal:
		return g.performSteal(action)
	case catalogue.Magic:
		return g.performMagic(action)
	case catalogue.ActSpy:
		return g.performSpy(action)
	case catalogue.SpyAcknowledge:
		return g.performSpyAcknowledge()
	case catalogue.ScholarReveal:
		return g.performScholarReveal()
	case catalogue.ScholarPick:
		return g.performScholarPick(action)
	case catalogue.SeerTake:
		return g.performSeerTake()
	case catalogue.SeerDistribute:
		return g.performSeerDistribute(action)
	case catalogue.WizardPeek:
		return g.performWizardPeek(action)
	case catalogue.WizardPick:
		return g.performWizardPick(action)

	case catalogue.Bewitch:
		return g.performBewitch(action)
	case catalogue.SendWarrants:
		return g.performSendWarrants(action)
	case catalogue.Blackmail:
		return g.performBlackmail(action)
	case catalogue.PayBribe:
		return g.performPayBribe()
	case catalogue.IgnoreBlackmail:
		return g.performIgnoreBlackmail()
	case catalogue.RevealWarrant:
		return g.performRevealWarrant()
	case catalogue.RevealBlackmail:
		return g.performRevealBlackmail()
	case catalogue.Pass:
		return g.performPass()

	case catalogue.EndTurn:
		return newOutput("They end their turn.").withEndTurn(), nil

	default:
		return actionOutput{}, &NotAllowedError{Tag: "unknown"}
	}
}
