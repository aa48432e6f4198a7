package types

import (
	"github.com/pkg/errors"
)

// Difficulty is the world difficulty setting.
type Difficulty uint8

const (
	DifficultyPeaceful Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

var difficultyNames = [...]string{
	DifficultyPeaceful: "peaceful",
	DifficultyEasy:     "easy",
	DifficultyNormal:   "normal",
	DifficultyHard:     "hard",
}

func (d Difficulty) ID() uint8 {
	return uint8(d)
}

func (d Difficulty) String() string {
	if int(d) >= len(difficultyNames) {
		return "unknown"
	}
	return difficultyNames[d]
}

func DifficultyFromID(id uint8) (Difficulty, error) {
	if int(id) >= len(difficultyNames) {
		return 0, errors.Errorf("unknown difficulty id %d", id)
	}
	return Difficulty(id), nil
}
