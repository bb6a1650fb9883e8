package repository

import "context"

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn share that transaction; any error from
// fn rolls the whole transaction back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
