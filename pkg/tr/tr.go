package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

// TxFromCtx extracts the pgx transaction placed in the context by the
// use case that opened it. Repositories participating in a multi-table
// write obtain their transaction exclusively through this helper.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
