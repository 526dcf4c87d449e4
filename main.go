package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(filepath.Join(dataDir, "budgetbook.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := ledger.NewStore()
	limits := ledger.NewLimits(ledger.DefaultBudgetLimits())

	loadState(store, limits)

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.Controller{Store: store, Limits: limits}
	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// loadState restores the persisted state into the in-memory ledger.
// The database is a best-effort collaborator, when it cannot be read
// the backend starts with sample data instead of failing.
func loadState(store *ledger.Store, limits *ledger.Limits) {
	transactions, err := models.LoadTransactions()
	if err != nil {
		log.Error().Err(err).Msg("could not load persisted transactions")
	}

	if len(transactions) == 0 {
		transactions = sampleTransactions()
		log.Info().Int("count", len(transactions)).Msg("empty database, loading sample transactions")
	}

	if err := store.Load(transactions); err != nil {
		log.Error().Err(err).Msg("could not restore transactions, starting empty")
	}

	persisted, err := models.LoadBudgetLimits()
	if err != nil {
		log.Error().Err(err).Msg("could not load persisted budget limits")
	}

	if len(persisted) > 0 {
		if err := limits.Replace(persisted); err != nil {
			log.Error().Err(err).Msg("could not restore budget limits, using defaults")
		}
	}

	if err := models.SaveTransactions(store.List()); err != nil {
		log.Error().Err(err).Msg("could not persist transactions")
	}

	if err := models.SaveBudgetLimits(limits.Snapshot()); err != nil {
		log.Error().Err(err).Msg("could not persist budget limits")
	}
}

// sampleTransactions is the starter data set for a fresh installation.
func sampleTransactions() []ledger.Transaction {
	month := time.Now().UTC()
	day := func(d int) time.Time {
		return time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, time.UTC)
	}

	return []ledger.Transaction{
		{Date: day(1), Amount: decimal.NewFromInt(95000), Type: ledger.TypeIncome, Category: "Salary", Description: "Monthly Salary", PaymentMethod: "Bank Transfer"},
		{Date: day(2), Amount: decimal.NewFromInt(28000), Type: ledger.TypeExpense, Category: "Housing", Description: "Rent", PaymentMethod: "Bank Transfer"},
		{Date: day(3), Amount: decimal.NewFromInt(3500), Type: ledger.TypeExpense, Category: "Food & Groceries", Description: "Grocery shopping", PaymentMethod: "UPI"},
		{Date: day(5), Amount: decimal.NewFromInt(450), Type: ledger.TypeExpense, Category: "Transportation", Description: "Cab to office", PaymentMethod: "UPI"},
		{Date: day(7), Amount: decimal.NewFromInt(2100), Type: ledger.TypeExpense, Category: "Utilities", Description: "Electricity bill", PaymentMethod: "Net Banking"},
		{Date: day(9), Amount: decimal.NewFromInt(800), Type: ledger.TypeExpense, Category: "Entertainment", Description: "Movie tickets", PaymentMethod: "Credit Card"},
		{Date: day(12), Amount: decimal.NewFromInt(2500), Type: ledger.TypeExpense, Category: "Shopping", Description: "Online shopping", PaymentMethod: "Credit Card"},
		{Date: day(15), Amount: decimal.NewFromInt(15000), Type: ledger.TypeIncome, Category: "Business Income", Description: "Freelance project", PaymentMethod: "Bank Transfer"},
	}
}
