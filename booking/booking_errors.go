package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidInterval = errors.New("invalid booking interval")

var ErrItemUnavailable = errors.New("item not available")

var ErrOwnItem = errors.New("cannot book own item")

var ErrIntervalTaken = errors.New("interval unavailable")

var ErrAlreadyProcessed = errors.New("booking already processed")

var ErrAccessDenied = errors.New("access to booking denied")

var ErrUnknownState = errors.New("unknown state")
