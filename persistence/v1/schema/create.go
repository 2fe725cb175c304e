package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/notes-service/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	for _, stmt := range statements(db.Driver()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
