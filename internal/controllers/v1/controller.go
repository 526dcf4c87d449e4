// Package v1 implements the v1 REST API.
//
// All handlers read from and write to the in-memory ledger, which is
// authoritative for the running session. After every mutation the full
// state is written to the database. Persistence errors are logged and
// do not fail the request.
package v1

import (
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Controller holds the in-memory state the handlers operate on.
type Controller struct {
	Store  *ledger.Store
	Limits *ledger.Limits
}

// persistTransactions writes the current ledger state to the database.
func (co Controller) persistTransactions() {
	if models.DB == nil {
		return
	}

	err := models.SaveTransactions(co.Store.List())
	if err != nil {
		log.Error().Err(err).Msg("could not persist transactions")
	}
}

// persistLimits writes the current budget limits to the database.
func (co Controller) persistLimits() {
	if models.DB == nil {
		return
	}

	err := models.SaveBudgetLimits(co.Limits.Snapshot())
	if err != nil {
		log.Error().Err(err).Msg("could not persist budget limits")
	}
}
