package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// FollowupKind identifies which continuation the engine is waiting on.
type FollowupKind int

const (
	FollowupBewitch FollowupKind = iota
	FollowupGatherCardsPick
	FollowupScholarPick
	FollowupWizardPick
	FollowupSeerDistribute
	FollowupSpyAcknowledge
	FollowupWarrant
	FollowupBlackmail
	FollowupHandleBlackmail
)

// Followup is the continuation state after an action that doesn't end the
// turn outright but requires a further response (from the active player or,
// for Warrant/Blackmail, from a different player entirely).
type Followup struct {
	Kind FollowupKind

	Revealed []catalogue.DistrictName // GatherCardsPick, ScholarPick
	Player   PlayerIndex              // WizardPick
	Players  []PlayerIndex            // SeerDistribute
	SpyOn    string                   // SpyAcknowledge: target player's name
	SpyHand  []catalogue.DistrictName // SpyAcknowledge: target player's revealed hand

	Magistrate PlayerIndex              // Warrant
	WarrantFor catalogue.DistrictName   // Warrant
	WarrantPay int                      // Warrant
	Signed     bool                     // Warrant

	Blackmailer PlayerIndex // Blackmail
}

// Actions returns the set of action tags allowed in response to this
// followup.
func (f *Followup) Actions() []catalogue.ActionTag {
	switch f.Kind {
	case FollowupBewitch:
		return []catalogue.ActionTag{catalogue.Bewitch}
	case FollowupHandleBlackmail:
		return []catalogue.ActionTag{catalogue.PayBribe, catalogue.IgnoreBlackmail}
	case FollowupSpyAcknowledge:
		return []catalogue.ActionTag{catalogue.SpyAcknowledge}
	case FollowupGatherCardsPick:
		return []catalogue.ActionTag{catalogue.GatherCardsPick}
	case FollowupScholarPick:
		return []catalogue.ActionTag{catalogue.ScholarPick}
	case FollowupWizardPick:
		return []catalogue.ActionTag{catalogue.WizardPick}
	case FollowupSeerDistribute:
		return []catalogue.ActionTag{catalogue.SeerDistribute}
	case FollowupBlackmail:
		return []catalogue.ActionTag{catalogue.RevealBlackmail, catalogue.Pass}
	case FollowupWarrant:
		if f.Signed {
			return []catalogue.ActionTag{catalogue.RevealWarrant, catalogue.Pass}
		}
		return []catalogue.ActionTag{catalogue.Pass}
	default:
		return nil
	}
}
