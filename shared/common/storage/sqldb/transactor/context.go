package transactor

import "context"

type transactorKey struct{}

func txToContext(ctx context.Context, tx sqlxDB) context.Context {
	return context.WithValue(ctx, transactorKey{}, tx)
}

func txFromContext(ctx context.Context) sqlxDB {
	tx, _ := ctx.Value(transactorKey{}).(sqlxDB)
	return tx
}
