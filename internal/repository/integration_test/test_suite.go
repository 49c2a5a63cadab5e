package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/postgres"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txManager       *tx.Manager
	querierOnce     sync.Once
)

// GetQuerier поднимает postgres один раз на процесс тестов и накатывает миграции.
// Если задан POSTGRES_HOST, используется уже запущенная база (make test-integration в CI).
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		dsn := os.Getenv("POSTGRES_HOST")
		if dsn != "" {
			dsn = postgres.DSN(&config.Database{
				Host:     os.Getenv("POSTGRES_HOST"),
				Port:     os.Getenv("POSTGRES_PORT"),
				User:     os.Getenv("POSTGRES_USER"),
				Password: os.Getenv("POSTGRES_PASSWORD"),
				DBName:   os.Getenv("POSTGRES_DB"),
				SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			})
		} else {
			dsn = startContainer(ctx)
		}

		if err := postgres.Migrate(ctx, dsn, "up"); err != nil {
			log.Fatalf("failed to migrate test database: %v", err)
		}

		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			log.Fatalf("failed to parse test dsn: %v", err)
		}
		connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txManager = tx.New(connPool)
	})

	return querierInstance
}

// GetTxManager работает поверх того же пула, что и GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return txManager
}

func startContainer(ctx context.Context) string {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shipping"),
		tcpostgres.WithUsername("shipping"),
		tcpostgres.WithPassword("shipping"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get container connection string: %v", err)
	}

	return dsn
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE package_status_history, outbox_events, reviews, packages, stop_points, journeys,
			vehicles, sender_profiles, carrier_profiles, user_profiles RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Seed - перевозчик (user 10, carrier 1), отправитель (user 20, sender 1), ТС на 20 кг и маршрут 1.
const Seed = `
	INSERT INTO user_profiles (id, user_id, type, phone) VALUES
		(1, 10, 'CARRIER', '+33611111111'),
		(2, 20, 'SENDER', '+33622222222');

	INSERT INTO carrier_profiles (id, user_profile_id, company_name, business_registration)
	VALUES (1, 1, 'Trans Atlas', 'RC-2024-001');

	INSERT INTO sender_profiles (id, user_profile_id) VALUES (1, 2);

	INSERT INTO vehicles (id, carrier_id, license_plate, type, brand, capacity)
	VALUES (1, 1, 'AB-123-CD', 'VAN', 'Renault', 20);

	INSERT INTO journeys (id, carrier_id, vehicle_id, departure_city, arrival_city, departure_date,
		collection_date, collection_address, price_per_kg, available_capacity)
	VALUES (1, 1, 1, 'Paris', 'Casablanca', '2026-03-01 08:00:00+00', '2026-02-28 18:00:00+00',
		'12 rue de Lyon', 4.50, 20);

	SELECT setval('user_profiles_id_seq', 2), setval('carrier_profiles_id_seq', 1),
		setval('sender_profiles_id_seq', 1), setval('vehicles_id_seq', 1), setval('journeys_id_seq', 1);
`
