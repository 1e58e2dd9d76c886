package item

import "errors"

var ErrItemNotFound = errors.New("item not found")

var ErrNotOwner = errors.New("item not owned by user")

var ErrNotBooked = errors.New("user has no finished booking of this item")
