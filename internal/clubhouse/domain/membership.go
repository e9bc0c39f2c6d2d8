package domain

import (
	"fmt"
	"strings"
	"time"
)

// Position is an officer position within a club roster.
type Position uint8

const (
	PositionUnknown Position = iota
	PositionPresident
	PositionVicePresident
	PositionSecretary
	PositionEventManager
	PositionPRTeam
	PositionOther
)

var positionNames = map[Position]string{
	PositionPresident:     "president",
	PositionVicePresident: "vice_president",
	PositionSecretary:     "secretary",
	PositionEventManager:  "event_manager",
	PositionPRTeam:        "pr_team",
	PositionOther:         "other",
}

func (p Position) String() string {
	if s, ok := positionNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// Positions returns every assignable position in roster order.
func Positions() []Position {
	return []Position{
		PositionPresident,
		PositionVicePresident,
		PositionSecretary,
		PositionEventManager,
		PositionPRTeam,
		PositionOther,
	}
}

func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range positionNames {
		if name == key {
			return p, nil
		}
	}
	return PositionUnknown, ErrInvalidPosition.WithDetail(fmt.Sprintf("unknown position %q", s))
}

type Membership struct {
	ID         string
	ClubID     string
	IdentityID string
	Position   Position
	JoinedAt   time.Time
	IsActive   bool
	EndedAt    *time.Time
}
