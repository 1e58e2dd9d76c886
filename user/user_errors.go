package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already in use")
