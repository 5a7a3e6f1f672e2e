package relational

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admindash/internal/orders"
)

func newTestRepo(t *testing.T) *OrderRepo {
	t.Helper()
	client, err := NewInMemoryDB()
	require.NoError(t, err)
	repo := NewOrderRepo(client.DB())
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestOrderRepo_SeedAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SeedOrders(ctx, orders.Seed()))

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders.Seed(), got)
}

func TestOrderRepo_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SeedOrders(ctx, orders.Seed()))
	require.NoError(t, repo.SeedOrders(ctx, orders.Seed()))

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestOrderRepo_SeedReplacesByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SeedOrders(ctx, orders.Seed()[:2]))
	changed := orders.Seed()[0]
	changed.Status = "Complete"
	require.NoError(t, repo.SeedOrders(ctx, []orders.Order{changed}))

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Complete", got[0].Status)
}

func TestOrderRepo_SeedRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	err := repo.SeedOrders(ctx, []orders.Order{orders.Seed()[0], {User: "nobody"}})
	require.Error(t, err)

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "failed seed must roll back")
}

func TestOrderRepo_EmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderRepo_CountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.SeedOrders(ctx, orders.Seed()))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"In Progress": 4,
		"Complete":    4,
		"Pending":     4,
		"Approved":    4,
		"Rejected":    4,
	}, counts)
}

func TestOpenOrderRepo_SeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenOrderRepo(ctx, "", orders.Seed())
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestNewFileDB_RequiresPath(t *testing.T) {
	_, err := NewFileDB("")
	assert.Error(t, err)
}

func TestNewDuckDBClient_AppliesTuning(t *testing.T) {
	client, err := NewInMemoryDB(WithThreads(1), WithMemoryLimit(1), WithTimeout(5*time.Second))
	require.NoError(t, err)
	defer client.Close()

	var threads int64
	require.NoError(t, client.DB().QueryRow("SELECT current_setting('threads')").Scan(&threads))
	assert.Equal(t, int64(1), threads)

	settings, err := client.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), settings.Threads)
	assert.Contains(t, settings.MemoryLimit, "MiB")
}

func TestNewDuckDBClient_ZeroTuningKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	tuned, err := NewInMemoryDB(WithThreads(0), WithMemoryLimit(0), WithTimeout(0), nil)
	require.NoError(t, err)
	defer tuned.Close()
	plain, err := NewInMemoryDB()
	require.NoError(t, err)
	defer plain.Close()

	got, err := tuned.Settings(ctx)
	require.NoError(t, err)
	want, err := plain.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOpenOrderRepo_WithTuning(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenOrderRepo(ctx, ":memory:", orders.Seed(), WithThreads(2))
	require.NoError(t, err)
	defer repo.Close()

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), settings.Threads)

	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
