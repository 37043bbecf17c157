package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

// State selects a subset of bookings relative to a reference instant.
type State int

const (
	StateAll State = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

var stateNames = map[State]string{
	StateAll:      "ALL",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
	StateFuture:   "FUTURE",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState parses a state name case-insensitively. An empty string means ALL.
func ParseState(raw string) (State, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return StateAll, nil
	}
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateAll, apperror.Validation("Unknown state: " + raw)
}

// Scope selects whose bookings are listed.
type Scope int

const (
	// ScopeRequester lists bookings made by the user.
	ScopeRequester Scope = iota
	// ScopeOwner lists bookings of items the user owns.
	ScopeOwner
)

func (sc Scope) column() string {
	if sc == ScopeOwner {
		return "i.owner_id"
	}
	return "b.booker_id"
}

// Predicate builds the WHERE condition for one scope and state at now.
func Predicate(scope Scope, userID string, state State, now time.Time) squirrel.Sqlizer {
	cond := squirrel.And{squirrel.Eq{scope.column(): userID}}

	switch state {
	case StateCurrent:
		cond = append(cond, squirrel.LtOrEq{"b.start_date": now}, squirrel.Gt{"b.end_date": now})
	case StatePast:
		cond = append(cond, squirrel.Lt{"b.end_date": now})
	case StateFuture:
		cond = append(cond, squirrel.Gt{"b.start_date": now})
	case StateWaiting:
		cond = append(cond, squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		cond = append(cond, squirrel.Eq{"b.status": StatusRejected})
	}

	return cond
}

// Matches reports whether b falls in state at now. It mirrors Predicate for a single booking.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return !b.Start.After(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}
