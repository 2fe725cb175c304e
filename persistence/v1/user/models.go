package user

import (
	"errors"
	"time"
)

// ErrDuplicate is returned by Insert when the username is already registered.
var ErrDuplicate = errors.New("user already exists")

type User struct {
	Username       string
	PasswordDigest string
	Created        time.Time
}
