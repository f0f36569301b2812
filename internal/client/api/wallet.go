package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

// WalletTransactions returns one page of ledger rows for an account,
// together with the backend's total row count for the pagination UI.
func (g *Gateway) WalletTransactions(ctx context.Context, accountID int64, pageNo, pageSize int) (models.TransactionPage, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(accountID, 10))
	q.Set("pageNo", strconv.Itoa(pageNo))
	q.Set("pageSize", strconv.Itoa(pageSize))

	env, err := g.request(ctx, http.MethodGet, pathWalletTxns, requestOptions{query: q})
	if err != nil {
		return models.TransactionPage{}, err
	}

	txns, err := decodeData[[]models.WalletTransaction](env)
	if err != nil {
		return models.TransactionPage{}, err
	}
	return models.TransactionPage{Transactions: txns, TotalCount: env.TotalCount}, nil
}
