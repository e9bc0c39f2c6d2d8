package domain

import (
	"fmt"
	"time"
)

// OccupancyWindow is how long an event is considered to be running after it
// starts. Events carry no explicit end time.
const OccupancyWindow = 24 * time.Hour

type Stage uint8

const (
	StageUpcoming Stage = iota + 1
	StageOngoing
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageUpcoming:
		return "upcoming"
	case StageOngoing:
		return "ongoing"
	case StageCompleted:
		return "completed"
	}
	return "unknown"
}

func ParseStage(s string) (Stage, error) {
	switch s {
	case "upcoming":
		return StageUpcoming, nil
	case "ongoing":
		return StageOngoing, nil
	case "completed":
		return StageCompleted, nil
	}
	return 0, ErrInvalidField.WithDetail(fmt.Sprintf("unknown stage %q", s))
}

// Classify maps an event onto its lifecycle stage at now.
//
//	upcoming   now < date
//	ongoing    date <= now <= date+24h
//	completed  now > date+24h
func Classify(e Event, now time.Time) Stage {
	switch {
	case now.Before(e.EventDate):
		return StageUpcoming
	case !now.After(e.EventDate.Add(OccupancyWindow)):
		return StageOngoing
	default:
		return StageCompleted
	}
}
