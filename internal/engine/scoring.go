package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// CompleteCitySize is the number of districts needed to complete a city:
// 8 in a 2-3 player game, 7 otherwise.
func (g *Game) CompleteCitySize() int {
	if len(g.Players) <= 3 {
		return 8
	}
	return 7
}

// TotalScore is the private score, visible only to the player themselves:
// their public score plus 3 for each Secret Vault still in hand.
func (g *Game) TotalScore(player *Player) int {
	score := g.PublicScore(player)
	for _, card := range player.Hand {
		if card == catalogue.SecretVault {
			score += 3
		}
	}
	return score
}

// PublicScore is the score visible to all players at game end. A player
// holding a Haunted Quarter picks whichever suit maximizes their score,
// since the Haunted Quarter can count as any one suit.
func (g *Game) PublicScore(player *Player) int {
	if !player.CityHas(catalogue.HauntedQuarter) {
		return g.publicScoreImpl(player, nil)
	}
	best := 0
	for i, suit := range catalogue.AllSuits() {
		score := g.publicScoreImpl(player, &suit)
		if i == 0 || score > best {
			best = score
		}
	}
	return best
}

func (g *Game) publicScoreImpl(player *Player, haunted *catalogue.Suit) int {
	score := 0
	var counts [5]int
	if haunted != nil {
		counts[*haunted]++
	}

	for _, card := range player.City {
		if card.Name != catalogue.SecretVault {
			score += card.EffectiveCost()
		}
		if card.Name != catalogue.HauntedQuarter {
			counts[card.Name.Data().Suit]++
		}
	}

	for _, card := range player.City {
		switch card.Name {
		case catalogue.DragonGate:
			score += 2
		case catalogue.MapRoom:
			score += len(player.Hand)
		case catalogue.ImperialTreasury:
			score += player.Gold
		case catalogue.Statue:
			if player.Index == g.Crowned {
				score += 5
			}
		case catalogue.Capitol:
			for _, n := range counts {
				if n >= 3 {
					score += 3
					break
				}
			}
		case catalogue.IvoryTower:
			if counts[catalogue.Unique] == 1 {
				score += 5
			}
		case catalogue.WishingWell:
			score += counts[catalogue.Unique]
		case catalogue.Museum:
			score += g.Museum.Count()
		case catalogue.Basilica:
			for _, c := range player.City {
				if c.EffectiveCost()%2 == 1 {
					score++
				}
			}
		}
	}

	allSuits := true
	for _, n := range counts {
		if n == 0 {
			allSuits = false
			break
		}
	}
	if allSuits {
		score += 3
	}

	if g.FirstToComplete != nil && *g.FirstToComplete == player.Index {
		score += 4
	} else if player.CitySize() >= g.CompleteCitySize() {
		score += 2
	}

	return score
}
