package user

import (
	"context"
	"errors"
	"time"

	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/persistence/v1/user"
	"github.com/ribgsilva/notes-service/platform/errs"
	"github.com/ribgsilva/notes-service/sys"
)

// MaxUsernameLength bounds usernames to what the stores can key on.
const MaxUsernameLength = 255

var (
	errUsernameTooLong    = errs.New(errs.InvalidArgument, "Bad Request, username too long!")
	errMissingFields      = errs.New(errs.InvalidArgument, "Bad Request, missing username or password!")
	errExists             = errs.New(errs.AlreadyExists, "User already exists!")
	errInvalidCredentials = errs.New(errs.Unauthenticated, "Invalid Credentials!")
	errNotSelf            = errs.New(errs.Unauthenticated, "Unauthorized!")
	errNotFound           = errs.New(errs.NotFound, "User does not exist!")
)

// Register creates an account. The guest username can never be registered.
func Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errMissingFields
	}
	if len(username) > MaxUsernameLength {
		return errUsernameTooLong
	}
	if username == sys.Configs.Auth.GuestUsername {
		return errExists
	}

	_, found, err := user.Find(ctx, username)
	if err != nil {
		return err
	}
	if found {
		return errExists
	}

	digest, err := sys.R.Hasher.Hash(password)
	if err != nil {
		return err
	}
	err = user.Insert(ctx, user.User{Username: username, PasswordDigest: digest, Created: time.Now().UTC()})
	if errors.Is(err, user.ErrDuplicate) {
		return errs.Wrap(errs.AlreadyExists, errExists.Error(), err)
	}
	return err
}

// Verify checks password against the stored digest of username.
func Verify(ctx context.Context, username, password string) error {
	u, found, err := user.Find(ctx, username)
	if err != nil {
		return err
	}
	if !found || !sys.R.Hasher.Verify(password, u.PasswordDigest) {
		return errInvalidCredentials
	}
	return nil
}

// Delete removes the account target on behalf of requester, notes first.
// The two steps are not atomic: when the note step fails the account is kept
// and the error returned, when the account step fails the notes are already gone.
func Delete(ctx context.Context, requester, target string) error {
	if requester != target {
		return errNotSelf
	}

	_, found, err := user.Find(ctx, target)
	if err != nil {
		return err
	}
	if !found {
		return errNotFound
	}

	if err := note.DeleteOwnedBy(ctx, target); err != nil {
		return err
	}
	if err := user.Delete(ctx, target); err != nil {
		sys.R.Log.Errorw("delete user", "username", target, "status", "notes removed, account kept", "ERROR", err)
		return err
	}
	return nil
}
