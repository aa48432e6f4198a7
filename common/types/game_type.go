package types

import (
	"github.com/pkg/errors"
)

// GameType is the game mode of a player.
type GameType uint8

const (
	GameTypeSurvival GameType = iota
	GameTypeCreative
	GameTypeAdventure
	GameTypeSpectator
)

// NoneGameTypeID is the id reserved for an unset optional game type.
const NoneGameTypeID int8 = -1

var gameTypeNames = [...]string{
	GameTypeSurvival:  "survival",
	GameTypeCreative:  "creative",
	GameTypeAdventure: "adventure",
	GameTypeSpectator: "spectator",
}

func (g GameType) ID() uint8 {
	return uint8(g)
}

func (g GameType) String() string {
	if int(g) >= len(gameTypeNames) {
		return "unknown"
	}
	return gameTypeNames[g]
}

func GameTypeFromID(id uint8) (GameType, error) {
	if int(id) >= len(gameTypeNames) {
		return 0, errors.Errorf("unknown game type id %d", id)
	}
	return GameType(id), nil
}

// OptionalGameTypeID maps a possibly-unset game type into a single id
// space: the game type's own id, or NoneGameTypeID when unset.
func OptionalGameTypeID(g *GameType) int8 {
	if g == nil {
		return NoneGameTypeID
	}
	return int8(g.ID())
}

func OptionalGameTypeFromID(id int8) (*GameType, error) {
	if id == NoneGameTypeID {
		return nil, nil
	}
	g, err := GameTypeFromID(uint8(id))
	if err != nil {
		return nil, err
	}
	return &g, nil
}
