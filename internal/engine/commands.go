package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/office"
)

// Command rejections. A rejected command leaves the world untouched, except
// that a gift the player cannot afford is noted in the log.
var (
	ErrNoPlayer           = errors.New("no player character")
	ErrPlayerUnavailable  = errors.New("player cannot act right now")
	ErrUnknownTarget      = errors.New("unknown target character")
	ErrNoAction           = errors.New("no action available in zone")
	ErrInsufficientFunds  = errors.New("insufficient savings")
	ErrInvalidInteraction = errors.New("invalid interaction")
)

// Interaction is a player-initiated pairwise action.
type Interaction string

const (
	InteractGossip  Interaction = "gossip"
	InteractGift    Interaction = "gift"
	InteractPropose Interaction = "propose"
)

// ParseInteraction validates an interaction kind.
func ParseInteraction(s string) (Interaction, error) {
	switch k := Interaction(s); k {
	case InteractGossip, InteractGift, InteractPropose:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInteraction, s)
}

// CommandMove sends the player to zone to perform the zone's action.
// Whatever the player was doing is abandoned.
func (s *Simulation) CommandMove(zone office.Zone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.availablePlayer()
	if err != nil {
		return err
	}
	def, ok := s.Catalog.ForZone(zone)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAction, zone)
	}

	s.logf(CategoryAction, "Player order: go to %s to %s.", zone, def.Label)
	s.commit(player, def)
	if player.State == agents.StatePerforming {
		player.Thought = def.Label
	} else {
		player.Thought = fmt.Sprintf("Heading to %s...", zone)
	}
	return nil
}

// CommandInteract sends the player after target for a pairwise interaction.
// A player in breakdown is rejected like one who is dead; the breakdown runs
// its course untouched.
func (s *Simulation) CommandInteract(target agents.CharacterID, kind Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := ParseInteraction(string(kind)); err != nil {
		return err
	}
	player, err := s.availablePlayer()
	if err != nil {
		return err
	}
	t := s.world.Character(target)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	if t.ID == player.ID || !t.Alive() {
		return fmt.Errorf("%w: cannot %s with %s", ErrInvalidInteraction, kind, t.Name)
	}

	switch kind {
	case InteractGift:
		if player.Savings < GiftCost {
			s.logf(CategoryAlert, "Not enough savings to buy a gift (need %s).", yuan(GiftCost))
			return ErrInsufficientFunds
		}
	case InteractPropose:
		s.logf(CategoryAction, "Player order: propose to %s!", t.Name)
		s.pursue(player, t, ActionProposeMarriage)
		player.Thought = "Proposing..."
		return nil
	}

	s.logf(CategoryAction, "Player order: find %s to %s.", t.Name, kind)
	s.pursue(player, t, interactionPrefix+string(kind))
	player.Thought = fmt.Sprintf("Looking for %s to %s...", t.Name, kind)
	return nil
}

func (s *Simulation) availablePlayer() (*agents.Character, error) {
	p := s.world.Player()
	if p == nil {
		return nil, ErrNoPlayer
	}
	if p.State == agents.StateDead || p.State == agents.StateBreakdown {
		return nil, fmt.Errorf("%w: %s", ErrPlayerUnavailable, p.State)
	}
	return p, nil
}
