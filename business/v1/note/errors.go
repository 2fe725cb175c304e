package note

import "github.com/ribgsilva/notes-service/platform/errs"

var (
	errEmptyNote        = errs.New(errs.InvalidArgument, "Bad Request, empty note!")
	errNotFound         = errs.New(errs.NotFound, "Note does not Exist!")
	errUpdateNotFound   = errs.New(errs.NotFound, "Can't update note, does not exist!")
	errDeleteNotFound   = errs.New(errs.NotFound, "Couldn't delete note, does not exist!")
	errCategoryNotFound = errs.New(errs.NotFound, "Category does not exist!")
	errCategoryEmpty    = errs.New(errs.NotFound, "Couldn't delete notes, category does not exist!")
)

func errIDTaken(cause error) error {
	return errs.Wrap(errs.Conflict, "Note ID already taken, retry the request!", cause)
}
