package catalogue

// RoleName is one of the 27 characters, laid out in asset order (3 per rank).
type RoleName int

const (
	Assassin RoleName = iota
	Witch
	Magistrate

	Thief
	Spy
	Blackmailer

	Magician
	Wizard
	Seer

	King
	Emperor
	Patrician

	Bishop
	Abbot
	Cardinal

	Merchant
	Alchemist
	Trader

	Architect
	Navigator
	Scholar

	Warlord
	Diplomat
	Marshal

	Queen
	Artist
	TaxCollector
)

const RoleCount = 27

// RoleAction pairs an ActionTag with the number of times per turn a holder
// of the role may take it.
type RoleAction struct {
	Count  int
	Action ActionTag
}

// RoleData is the immutable definition of a role.
type RoleData struct {
	Name        RoleName
	Rank        Rank
	Edition     Edition
	Suit        Suit
	HasSuit     bool
	MinPlayers  int // 0 means no minimum
	Description string
	Actions     []RoleAction
}

// roles is indexed by RoleName; keep in lockstep with the RoleName iota block.
var roles = [RoleCount]RoleData{
	{
		Name: Assassin, Rank: RankOne, Edition: Base,
		Description: "Call a character you wish to kill. The killed character skips their turn.",
		Actions:     []RoleAction{{1, Assassinate}},
	},
	{
		Name: Witch, Rank: RankOne, Edition: DarkCity,
		Description: "Gather resources, call a character you wish to bewitch, then put your turn on hold. After the bewitched character gathers resources, you resume your turn as that character.",
		Actions:     []RoleAction{{1, Bewitch}},
	},
	{
		Name: Magistrate, Rank: RankOne, Edition: Citadels2016,
		Description: "Assign warrants to character cards. Reveal the signed warrant to confiscate the first district that player builds. The player gets back all gold paid to build that district.",
		Actions:     []RoleAction{{1, SendWarrants}},
	},
	{
		Name: Thief, Rank: RankTwo, Edition: Base,
		Description: "Call a character you wish to rob. When the robbed character is revealed you take all their gold.",
		Actions:     []RoleAction{{1, Steal}},
	},
	{
		Name: Spy, Rank: RankTwo, Edition: Citadels2016,
		Description: "Name a district type and look at another player's hand. For each card of that type, take 1 of their gold and gain 1 card.",
		Actions:     []RoleAction{{1, ActSpy}},
	},
	{
		Name: Blackmailer, Rank: RankTwo, Edition: Citadels2016,
		Description: "Assign threats facedown to character cards. A threatened player can bribe you to remove their threat. If you reveal the flower, you take all their gold.",
		Actions:     []RoleAction{{1, Blackmail}},
	},
	{
		Name: Magician, Rank: RankThree, Edition: Base,
		Description: "Either exchange hands of cards with another player or discard any number of cards to gain an equal number of cards.",
		Actions:     []RoleAction{{1, Magic}},
	},
	{
		Name: Wizard, Rank: RankThree, Edition: DarkCity,
		Description: "Look at another player's hand and choose 1 card. Either pay to build it immediately or add it to your hand. You can build identical districts.",
		Actions:     []RoleAction{{1, WizardPeek}},
	},
	{
		Name: Seer, Rank: RankThree, Edition: Citadels2016,
		Description: "Randomly take 1 card from each player's hand and add it to yours. Then give each player you took a card from 1 card from your hand. You can build up to 2 districts.",
		Actions:     []RoleAction{{1, SeerTake}},
	},
	{
		Name: King, Rank: RankFour, Edition: Base, Suit: Noble, HasSuit: true,
		Description: "Take the crown. Gain 1 gold for each of your NOBLE districts.",
		Actions:     []RoleAction{{1, TakeCrown}, {1, GoldFromNobility}},
	},
	{
		Name: Emperor, Rank: RankFour, Edition: DarkCity, Suit: Noble, HasSuit: true, MinPlayers: 3,
		Description: "Give the crown to a different player and take either 1 of their gold or 1 of their cards. Gain 1 gold for each of your NOBLE districts.",
		Actions:     []RoleAction{{1, EmperorGiveCrown}, {1, GoldFromNobility}},
	},
	{
		Name: Patrician, Rank: RankFour, Edition: Citadels2016, Suit: Noble, HasSuit: true,
		Description: "Take the crown. Gain 1 card for each of your NOBLE districts.",
		Actions:     []RoleAction{{1, TakeCrown}, {1, CardsFromNobility}},
	},
	{
		Name: Bishop, Rank: RankFive, Edition: Base, Suit: Religious, HasSuit: true,
		Description: "The rank 8 character cannot use its ability on your districts. Gain 1 gold for each of your RELIGIOUS districts.",
		Actions:     []RoleAction{{1, GoldFromReligion}},
	},
	{
		Name: Abbot, Rank: RankFive, Edition: DarkCity, Suit: Religious, HasSuit: true,
		Description: "The richest player gives you 1 gold. Gain either 1 gold or 1 card for each of your RELIGIOUS districts.",
		Actions:     []RoleAction{{1, TakeFromRich}, {1, ResourcesFromReligion}},
	},
	{
		Name: Cardinal, Rank: RankFive, Edition: Citadels2016, Suit: Religious, HasSuit: true,
		Description: "If you are short of gold to build a district, exchange cards for another player's gold at a rate of 1 card to 1 gold. Gain 1 card for each of your RELIGIOUS districts.",
		Actions:     []RoleAction{{1, CardsFromReligion}},
	},
	{
		Name: Merchant, Rank: RankSix, Edition: Base, Suit: Trade, HasSuit: true,
		Description: "Gain 1 extra gold. Gain 1 gold for each of your TRADE districts.",
		Actions:     []RoleAction{{1, MerchantGainOneGold}, {1, GoldFromTrade}},
	},
	{
		Name: Alchemist, Rank: RankSix, Edition: DarkCity,
		Description: "At the end of your turn, you get back all the gold you paid to build districts this turn. You cannot pay more gold than you have.",
	},
	{
		Name: Trader, Rank: RankSix, Edition: Citadels2016, Suit: Trade, HasSuit: true,
		Description: "You can build any number of TRADE districts. Gain 1 gold for each of your TRADE districts.",
		Actions:     []RoleAction{{1, GoldFromTrade}},
	},
	{
		Name: Architect, Rank: RankSeven, Edition: Base,
		Description: "Gain 2 extra cards. You can build up to 3 districts.",
		Actions:     []RoleAction{{1, ArchitectGainCards}},
	},
	{
		Name: Navigator, Rank: RankSeven, Edition: DarkCity,
		Description: "Gain either 4 extra gold or 4 extra cards. You cannot build any districts.",
		Actions:     []RoleAction{{1, NavigatorGain}},
	},
	{
		Name: Scholar, Rank: RankSeven, Edition: Citadels2016,
		Description: "Draw 7 cards, choose 1 to keep, then shuffle the rest back into the deck. You can build up to 2 districts.",
		Actions:     []RoleAction{{1, ScholarReveal}},
	},
	{
		Name: Warlord, Rank: RankEight, Edition: Base, Suit: Military, HasSuit: true,
		Description: "Destroy 1 district by paying 1 fewer gold than its cost. Gain 1 gold for each of your MILITARY districts.",
		Actions:     []RoleAction{{1, GoldFromMilitary}, {1, WarlordDestroy}},
	},
	{
		Name: Diplomat, Rank: RankEight, Edition: DarkCity, Suit: Military, HasSuit: true,
		Description: "Exchange 1 of your districts for another player's district, giving them gold equal to the difference in their costs. Gain 1 gold for each of your MILITARY districts.",
		Actions:     []RoleAction{{1, GoldFromMilitary}, {1, DiplomatTrade}},
	},
	{
		Name: Marshal, Rank: RankEight, Edition: Citadels2016, Suit: Military, HasSuit: true,
		Description: "Seize 1 district with a cost of 3 or less from another player's city, giving that player gold equal to its cost. Gain 1 gold for each of your MILITARY districts.",
		Actions:     []RoleAction{{1, GoldFromMilitary}, {1, MarshalSeize}},
	},
	{
		Name: Queen, Rank: RankNine, Edition: Citadels2016, MinPlayers: 5,
		Description: "If you are sitting next to the rank 4 character, gain 3 gold.",
		Actions:     []RoleAction{{1, QueenGainGold}},
	},
	{
		Name: Artist, Rank: RankNine, Edition: DarkCity, MinPlayers: 3,
		Description: "Beautify up to 2 of your districts by assigning each of them 1 of your gold. A district can be beautified only once.",
		Actions:     []RoleAction{{2, Beautify}},
	},
	{
		Name: TaxCollector, Rank: RankNine, Edition: Citadels2016, MinPlayers: 3,
		Description: "After each player builds, they place 1 of their gold on the Tax Collector's character card. Take all gold from character card.",
		Actions:     []RoleAction{{1, CollectTaxes}},
	},
}

// Data returns the static definition of a role.
func (r RoleName) Data() *RoleData {
	return &roles[r]
}

// Rank returns the role's call-order rank.
func (r RoleName) Rank() Rank {
	return roles[r].Rank
}

// DisplayName returns the human-readable name.
func (r RoleName) DisplayName() string {
	if r == TaxCollector {
		return "Tax Collector"
	}
	return roleNames[r]
}

var roleNames = [RoleCount]string{
	"Assassin", "Witch", "Magistrate",
	"Thief", "Spy", "Blackmailer",
	"Magician", "Wizard", "Seer",
	"King", "Emperor", "Patrician",
	"Bishop", "Abbot", "Cardinal",
	"Merchant", "Alchemist", "Trader",
	"Architect", "Navigator", "Scholar",
	"Warlord", "Diplomat", "Marshal",
	"Queen", "Artist", "Tax Collector",
}

func (r RoleName) String() string { return r.DisplayName() }

// MinPlayerCount returns the smallest player count this role may appear in,
// or 0 if unrestricted.
func (r RoleName) MinPlayerCount() int {
	return roles[r].MinPlayers
}

// CanBeDiscardedFaceup reports whether the draft may discard this role face
// up. Rank 4 roles are protected per the rulebook (page 3): revealing who
// holds the crown-granting rank before the draft completes would leak too
// much information.
func (r RoleName) CanBeDiscardedFaceup() bool {
	return roles[r].Rank != RankFour
}

// BuildLimit returns how many districts a holder of this role may build in
// a turn.
func (r RoleName) BuildLimit() int {
	switch r {
	case Architect:
		return 3
	case Navigator:
		return 0
	case Scholar, Seer:
		return 2
	default:
		return 1
	}
}

// AllRoles returns every role name in catalogue order.
func AllRoles() []RoleName {
	out := make([]RoleName, RoleCount)
	for i := range out {
		out[i] = RoleName(i)
	}
	return out
}
