package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// Resource is gold-or-cards, used where a role's ability lets the player
// choose which to take (the Emperor's tribute, the Navigator's gain).
type Resource int

const (
	ResourceGold Resource = iota
	ResourceCards
)

// BuildKind distinguishes the five ways a district can be built.
type BuildKind int

const (
	BuildRegular BuildKind = iota
	BuildFramework
	BuildNecropolis
	BuildThievesDen
	BuildCardinal
)

// BuildMethod carries the extra data each build method needs: Regular and
// Framework only need the district; Necropolis sacrifices a city district
// instead of paying; ThievesDen and Cardinal let the player pay partly (or,
// for Cardinal, wholly from another player) with cards instead of gold.
type BuildMethod struct {
	Kind      BuildKind
	District  catalogue.DistrictName
	Sacrifice CityDistrictTarget
	Discard   []catalogue.DistrictName
	Player    string // Cardinal: whose gold pays for the discarded cards
}

// CityDistrictTarget names a built district in a specific player's city,
// identified by name and beautified-flag (a player can own two copies of a
// Quarry-enabled duplicate, one beautified and one not).
type CityDistrictTarget struct {
	Player     string
	District   catalogue.DistrictName
	Beautified bool
}

// EffectiveCost is the district's cost plus 1 if it has been beautified.
func (t CityDistrictTarget) EffectiveCost() int {
	cost := t.District.Data().Cost
	if t.Beautified {
		cost++
	}
	return cost
}

// WizardKind distinguishes the Wizard's five possible follow-up responses:
// taking a peeked card into hand, or building it by any of the four build
// methods (Regular build's CardinalMethod has no Wizard analogue).
type WizardKind int

const (
	WizardTakeToHand WizardKind = iota
	WizardBuild
	WizardBuildFramework
	WizardBuildNecropolis
	WizardBuildThievesDen
)

// WizardMethod is the Wizard's response after peeking at a target's hand.
type WizardMethod struct {
	Kind      WizardKind
	District  catalogue.DistrictName
	Sacrifice CityDistrictTarget
	Discard   []catalogue.DistrictName
}

// MagicianKind distinguishes the Magician's two response shapes.
type MagicianKind int

const (
	MagicianSwapHands MagicianKind = iota
	MagicianRedrawCards
)

// Action is every player action, represented as a tagged struct rather than
// a sum type: Tag identifies the variant and only the fields relevant to
// that variant are populated.
type Action struct {
	Tag catalogue.ActionTag

	Role     catalogue.RoleName // DraftPick, DraftDiscard, Assassinate, Steal, Bewitch, Theater
	District catalogue.DistrictName // GatherCardsPick, ScholarPick, Laboratory, Museum
	Build    BuildMethod             // Build

	MagicianKind    MagicianKind
	MagicianPlayer  string
	MagicianDiscard []catalogue.DistrictName

	WarlordTarget  CityDistrictTarget // WarlordDestroy
	ArmoryTarget   CityDistrictTarget // ActArmory (Armory district)
	BeautifyTarget CityDistrictTarget // Beautify
	MarshalTarget  CityDistrictTarget // MarshalSeize
	DiplomatMine   CityDistrictTarget // DiplomatTrade
	DiplomatTheirs CityDistrictTarget // DiplomatTrade

	Player   string   // EmperorGiveCrown, EmperorHeirGiveCrown, TakeFromRich, WizardPeek, Theater, Spy
	Resource Resource // EmperorGiveCrown, NavigatorGain

	ReligionGold  int // ResourcesFromReligion
	ReligionCards int // ResourcesFromReligion

	Signed   catalogue.RoleName    // SendWarrants
	Unsigned [2]catalogue.RoleName // SendWarrants

	Flowered catalogue.RoleName // Blackmail
	Unmarked catalogue.RoleName // Blackmail

	Suit catalogue.Suit // Spy

	SeerGifts map[string]catalogue.DistrictName // SeerDistribute

	Wizard WizardMethod // WizardPick
}

// isBuild reports whether this action results in an actual construction, for
// the purposes of the Magistrate's one-confiscation-per-turn limit. The Wizard's hand-peek response only
// counts when it chooses to build rather than simply take the card.
func (a *Action) isBuild() bool {
	switch a.Tag {
	case catalogue.Build:
		return true
	case catalogue.WizardPick:
		return a.Wizard.Kind != WizardTakeToHand
	default:
		return false
	}
}
