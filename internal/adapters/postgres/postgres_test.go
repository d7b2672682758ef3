package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"currencyconverter/internal/adapters/postgres"
	"currencyconverter/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

// resetDatabase restores the post-migration state: empty rates table and
// the seeded currency list.
func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `truncate table exchange_rates, currencies restart identity cascade`); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `insert into currencies (code, name) values
		('AUD', 'Australian Dollar'),
		('CAD', 'Canadian Dollar'),
		('CHF', 'Swiss Franc'),
		('EUR', 'Euro'),
		('GBP', 'British Pound'),
		('JPY', 'Japanese Yen'),
		('NZD', 'New Zealand Dollar'),
		('USD', 'US Dollar')`)
	return err
}

// ---------- CurrencyRepository tests ----------

func TestCurrencyRepository_ListAll_SeededAndOrdered(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)

	ctx := context.Background()
	currencies, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 8)
	require.Equal(t, domain.Currency{Code: "AUD", Name: "Australian Dollar"}, currencies[0])
	require.Equal(t, domain.Currency{Code: "USD", Name: "US Dollar"}, currencies[7])
}

func TestCurrencyRepository_GetByCode_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)

	ctx := context.Background()
	_, err := repo.GetByCode(ctx, "XXX")
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

func TestCurrencyRepository_GetByCode_CaseSensitive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)

	ctx := context.Background()
	_, err := repo.GetByCode(ctx, "usd")
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)

	c, err := repo.GetByCode(ctx, "USD")
	require.NoError(t, err)
	require.Equal(t, "US Dollar", c.Name)
}

func TestCurrencyRepository_Save_InsertAndReplaceName(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)
	ctx := context.Background()

	// Insert a new currency.
	saved, err := repo.Save(ctx, domain.Currency{Code: "NOK", Name: "Norwegian Krone"})
	require.NoError(t, err)
	require.Equal(t, domain.Currency{Code: "NOK", Name: "Norwegian Krone"}, saved)

	// Saving the same code again replaces the name in place.
	saved, err = repo.Save(ctx, domain.Currency{Code: "NOK", Name: "Krone"})
	require.NoError(t, err)
	require.Equal(t, "Krone", saved.Name)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from currencies where code = 'NOK'`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestCurrencyRepository_Delete_RemovesRow(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "CHF"))

	_, err := repo.GetByCode(ctx, "CHF")
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

func TestCurrencyRepository_Delete_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCurrencyRepository(pool)

	ctx := context.Background()
	err := repo.Delete(ctx, "XXX")
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

// ---------- RateRepository tests ----------

func TestRateRepository_GetByPair_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	ctx := context.Background()
	_, err := repo.GetByPair(ctx, "USD", "EUR")
	require.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestRateRepository_GetByPair_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	// Use a canceled context to force an error path distinct from ErrRateNotFound.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.GetByPair(ctx, "USD", "EUR")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrRateNotFound)
}

func TestRateRepository_Upsert_InsertThenUpdateKeepsID(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	t1 := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	created, err := repo.Upsert(ctx, "USD", "EUR", 0.91, t1)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "USD", created.BaseCurrency)
	require.Equal(t, "EUR", created.QuoteCurrency)
	require.InDelta(t, 0.91, created.Rate, 1e-9)
	require.True(t, t1.Equal(created.UpdateTime))

	// Second upsert for the same pair overwrites the row in place.
	t2 := t1.Add(24 * time.Hour)
	updated, err := repo.Upsert(ctx, "USD", "EUR", 0.92, t2)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.InDelta(t, 0.92, updated.Rate, 1e-9)
	require.True(t, t2.Equal(updated.UpdateTime))

	// Exactly one row per pair.
	var count int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from exchange_rates`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestRateRepository_Upsert_DistinctPairsGetDistinctRows(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r1, err := repo.Upsert(ctx, "USD", "EUR", 0.91, now)
	require.NoError(t, err)
	r2, err := repo.Upsert(ctx, "EUR", "USD", 1.09, now)
	require.NoError(t, err)
	require.NotEqual(t, r1.ID, r2.ID)
}

func TestRateRepository_ListAll_ReturnsEverything(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := repo.Upsert(ctx, "USD", "EUR", 0.91, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "USD", "JPY", 147.2, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "EUR", "GBP", 0.86, now)
	require.NoError(t, err)

	rates, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 3)
}

func TestRateRepository_ListByBase_FiltersExactMatch(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := repo.Upsert(ctx, "USD", "EUR", 0.91, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "USD", "JPY", 147.2, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "EUR", "USD", 1.09, now)
	require.NoError(t, err)

	rates, err := repo.ListByBase(ctx, "USD")
	require.NoError(t, err)
	require.Len(t, rates, 2)
	for _, r := range rates {
		require.Equal(t, "USD", r.BaseCurrency)
	}

	// Lowercase does not match; the filter is case-sensitive.
	rates, err = repo.ListByBase(ctx, "usd")
	require.NoError(t, err)
	require.Empty(t, rates)
}

func TestRateRepository_GetByPair_RoundTrip(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	updateTime := time.Date(2025, 8, 28, 9, 30, 5, 0, time.UTC)
	saved, err := repo.Upsert(ctx, "EUR", "JPY", 171.44, updateTime)
	require.NoError(t, err)

	got, err := repo.GetByPair(ctx, "EUR", "JPY")
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.InDelta(t, 171.44, got.Rate, 1e-9)
	require.True(t, updateTime.Equal(got.UpdateTime))
}
