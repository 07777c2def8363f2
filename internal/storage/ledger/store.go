// Package ledger implements LedgerStore on a local SQLite file.
// Each call opens and closes its own connection.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

// DateLayout is the ISO date stored in the date column
const DateLayout = "2006-01-02"

// ErrInvalid is returned for rejected transaction input
var ErrInvalid = errors.New("invalid transaction")

const schema = `CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT,
	amount REAL,
	date TEXT
)`

// Store implements interfaces.LedgerStore
type Store struct {
	path   string
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
}

// NewStore creates a ledger backed by the SQLite file at path.
// The parent directory is created if needed; the table is created by Init.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Store{path: path, logger: logger, now: time.Now}, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=3000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragma busy_timeout: %w", err)
	}
	return db, nil
}

// Init creates the transactions table if it does not exist
func (s *Store) Init(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init ledger schema: %w", err)
	}
	s.logger.Info().Str("path", s.path).Msg("Ledger initialised")
	return nil
}

// AddTransaction inserts one row. An empty date records today's date.
func (s *Store) AddTransaction(ctx context.Context, category string, amount decimal.Decimal, date string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalid)
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalid, date)
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// amount is a REAL column, so precision beyond float64 is not kept
	if _, err := db.ExecContext(ctx,
		"INSERT INTO transactions (category, amount, date) VALUES (?, ?, ?)",
		category, amount.InexactFloat64(), date,
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Debug().Str("category", category).Str("amount", amount.String()).Str("date", date).Msg("Transaction recorded")
	return nil
}

// GetAllTransactions returns every row ordered by date ascending
func (s *Store) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT id, category, amount, date FROM transactions ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := []models.Transaction{}
	for rows.Next() {
		var (
			tx       models.Transaction
			category sql.NullString
			amount   sql.NullFloat64
			date     sql.NullString
		)
		if err := rows.Scan(&tx.ID, &category, &amount, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Category = category.String
		tx.Amount = decimal.NewFromFloat(amount.Float64) // REAL column; see AddTransaction
		tx.Date = date.String
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Summary totals the ledger per category, sorted by category name
func (s *Store) Summary(ctx context.Context) (*models.LedgerSummary, error) {
	txs, err := s.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*models.CategoryTotal)
	summary := &models.LedgerSummary{Categories: []models.CategoryTotal{}, Total: decimal.Zero}
	for _, tx := range txs {
		ct, ok := byCategory[tx.Category]
		if !ok {
			ct = &models.CategoryTotal{Category: tx.Category, Total: decimal.Zero}
			byCategory[tx.Category] = ct
		}
		ct.Total = ct.Total.Add(tx.Amount)
		ct.Count++
		summary.Total = summary.Total.Add(tx.Amount)
		summary.Count++
	}

	for _, ct := range byCategory {
		summary.Categories = append(summary.Categories, *ct)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})
	return summary, nil
}

// Ensure Store implements LedgerStore
var _ interfaces.LedgerStore = (*Store)(nil)
