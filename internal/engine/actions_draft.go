package engine

import "fmt"

func (g *Game) performDraftPick(action *Action) (actionOutput, error) {
	draft, err := g.ActiveTurn.asDraft()
	if err != nil {
		return actionOutput{}, err
	}

	remaining, ok := removeFirstRole(draft.Remaining, action.Role)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "selected role is not available"}
	}
	draft.Remaining = remaining

	picker := draft.Player
	g.Characters.Get(action.Role.Rank()).Player = &picker
	player := g.Players[draft.Player]
	player.Roles = append(player.Roles, action.Role)
	sortRolesByRank(player.Roles)

	out := newOutput(fmt.Sprintf("%s drafts a role.", player.Name))

	// The first player to draft in a two-player game does not discard; the
	// last pick is between two cards and the one not picked is discarded
	// automatically. Only the middle two draft turns show the discard button.
	if len(g.Players) == 2 && (len(draft.Remaining) == 5 || len(draft.Remaining) == 3) {
		return out, nil
	}
	return out.withEndTurn(), nil
}

func (g *Game) performDraftDiscard(action *Action) (actionOutput, error) {
	draft, err := g.ActiveTurn.asDraft()
	if err != nil {
		return actionOutput{}, err
	}

	remaining, ok := removeFirstRole(draft.Remaining, action.Role)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "selected role is not available"}
	}
	draft.Remaining = remaining

	player, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	return newOutput(fmt.Sprintf("%s discards a role face down.", player.Name)).withEndTurn(), nil
}

func (g *Game) performTheater(action *Action) (actionOutput, error) {
	active, err := g.ActivePlayer()
	if err != nil {
		return actionOutput{}, err
	}
	if active.Name == action.Player {
		return actionOutput{}, &InvalidTargetError{Reason: "cannot swap with self"}
	}

	roles, ok := removeFirstRole(active.Roles, action.Role)
	if !ok {
		return actionOutput{}, &InvalidTargetError{Reason: "you cannot give away a role you don't have"}
	}
	active.Roles = roles

	var target *Player
	for _, p := range g.Players {
		if p.Name == action.Player {
			target = p
			break
		}
	}
	if target == nil {
		return actionOutput{}, &InvalidTargetError{Reason: "nonexistent player"}
	}

	index := g.rng.IntN(len(target.Roles))
	targetRole := target.Roles[index]
	target.Roles = append(target.Roles[:index], target.Roles[index+1:]...)
	target.Roles = append(target.Roles, action.Role)
	sortRolesByRank(target.Roles)
	for _, r := range target.Roles {
		idx := target.Index
		g.Characters.Get(r.Rank()).Player = &idx
	}

	active.Roles = append(active.Roles, targetRole)
	sortRolesByRank(active.Roles)
	for _, r := range active.Roles {
		idx := active.Index
		g.Characters.Get(r.Rank()).Player = &idx
	}

	return newOutput(fmt.Sprintf("Theater: %s swaps roles with %s", active.Name, action.Player)).withEndTurn(), nil
}
