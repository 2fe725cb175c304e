package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/ribgsilva/notes-service/business/v1/user"
	"github.com/ribgsilva/notes-service/platform/errs"
	"github.com/ribgsilva/notes-service/sys"
)

// DefaultGuestUsername is used when AUTH_GUEST_USERNAME is not configured.
const DefaultGuestUsername = "default"

var errMalformed = errs.New(errs.Unauthenticated, "Invalid Credentials!")

// Identity is either Authenticated(username) or Guest.
// A guest still owns notes, stored under the configured guest username.
type Identity struct {
	username string
	guest    bool
}

func Guest() Identity {
	name := sys.Configs.Auth.GuestUsername
	if name == "" {
		name = DefaultGuestUsername
	}
	return Identity{username: name, guest: true}
}

func Authenticated(username string) Identity {
	return Identity{username: username}
}

// Username is the namespace the identity's notes live in.
func (i Identity) Username() string { return i.username }

func (i Identity) IsGuest() bool { return i.guest }

// Credentials are the decoded username:password pair of a request.
type Credentials struct {
	Username string
	Password string
}

// Decode reads "<scheme> base64(username:password)". The scheme is ignored,
// clients send both Basic and Bearer.
func Decode(header string) (Credentials, error) {
	fields := strings.Fields(header)
	var encoded string
	switch len(fields) {
	case 1:
		encoded = fields[0]
	case 2:
		encoded = fields[1]
	default:
		return Credentials{}, errMalformed
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// clients often drop the padding
		var rawErr error
		if raw, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "=")); rawErr != nil {
			return Credentials{}, errs.Wrap(errs.Unauthenticated, errMalformed.Error(), err)
		}
	}
	username, password, _ := strings.Cut(string(raw), ":")
	return Credentials{Username: username, Password: password}, nil
}

// Resolve turns a request's Authorization header into an identity.
//
// No header yields the guest. When registering, the decoded credentials are
// passed through unverified since the account does not exist yet. Otherwise
// the credentials must match a stored digest.
func Resolve(ctx context.Context, header string, registering bool) (Identity, Credentials, error) {
	if strings.TrimSpace(header) == "" {
		return Guest(), Credentials{}, nil
	}

	creds, err := Decode(header)
	if err != nil {
		return Identity{}, Credentials{}, err
	}
	if registering {
		return Guest(), creds, nil
	}

	if err := user.Verify(ctx, creds.Username, creds.Password); err != nil {
		return Identity{}, Credentials{}, err
	}
	return Authenticated(creds.Username), creds, nil
}
