package booking

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// State names a selection of bookings relative to a point in time
// (CURRENT, PAST, FUTURE) or to their status (WAITING, REJECTED).
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a query value to a State. The empty string defaults to
// ALL; anything unrecognized is an error so that typos fail loudly instead
// of silently returning the full list.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}

	switch State(strings.ToUpper(raw)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
}

// SelectByState returns the bookings matching state relative to now, most
// recent start first. The temporal states partition any booking set: every
// booking is exactly one of CURRENT, PAST or FUTURE.
func SelectByState(bookings []Booking, state State, now time.Time) []Booking {
	selected := make([]Booking, 0, len(bookings))

	for _, b := range bookings {
		if matchesState(b, state, now) {
			selected = append(selected, b)
		}
	}

	slices.SortStableFunc(selected, func(a, b Booking) int {
		return b.Start.Compare(a.Start)
	})

	return selected
}

func matchesState(b Booking, state State, now time.Time) bool {
	switch state {
	case StateCurrent:
		return !b.Start.After(now) && b.End.After(now)
	case StatePast:
		return !b.End.After(now)
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
