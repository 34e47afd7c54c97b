package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// PlayerIndex identifies a seat at the table, stable for the life of a game.
type PlayerIndex int

// Player holds one seat's mutable state: gold, hand, built city, and the
// roles they picked this round.
type Player struct {
	Index PlayerIndex
	ID    string
	Name  string
	Gold  int
	Hand  []catalogue.DistrictName
	City  []CityDistrict
	Roles []catalogue.RoleName
}

// CityDistrict is a built district, possibly beautified by the Artist.
type CityDistrict struct {
	Name       catalogue.DistrictName
	Beautified bool
}

// EffectiveCost is the district's cost plus 1 if the Artist beautified it.
func (c CityDistrict) EffectiveCost() int {
	cost := c.Name.Data().Cost
	if c.Beautified {
		cost++
	}
	return cost
}

// CitySize counts toward the completed-city threshold; the Monument counts
// as 2 districts.
func (p *Player) CitySize() int {
	size := 0
	for _, c := range p.City {
		if c.Name == catalogue.Monument {
			size += 2
		} else {
			size++
		}
	}
	return size
}

// CountSuitForResourceGain counts city districts of a suit, with the School
// of Magic counting as whatever suit the ability asks about.
func (p *Player) CountSuitForResourceGain(suit catalogue.Suit) int {
	count := 0
	for _, c := range p.City {
		data := c.Name.Data()
		if data.Suit == suit || c.Name == catalogue.SchoolOfMagic {
			count++
		}
	}
	return count
}

// CityHas reports whether the player has built a given district.
func (p *Player) CityHas(name catalogue.DistrictName) bool {
	for _, c := range p.City {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasRole reports whether the player drafted a given role this round.
func (p *Player) HasRole(name catalogue.RoleName) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

func (p *Player) cleanupRound() {
	p.Roles = nil
}

func removeFirstDistrict(hand []catalogue.DistrictName, card catalogue.DistrictName) ([]catalogue.DistrictName, bool) {
	for i, c := range hand {
		if c == card {
			return append(hand[:i], hand[i+1:]...), true
		}
	}
	return hand, false
}

func removeFirstRole(roles []catalogue.RoleName, role catalogue.RoleName) ([]catalogue.RoleName, bool) {
	for i, r := range roles {
		if r == role {
			return append(roles[:i], roles[i+1:]...), true
		}
	}
	return roles, false
}
