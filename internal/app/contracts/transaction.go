package contracts

import "context"

// TransactionManager runs fn inside one multi-document transaction. Every
// repository call made with the context fn receives joins the transaction;
// an error return aborts it and nothing is committed.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
