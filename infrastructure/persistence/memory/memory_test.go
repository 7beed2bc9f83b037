package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/infrastructure/persistence/memory"
	apperrors "wordhoard-backend/pkg/errors"
)

func TestAccountStore_VersionCondition(t *testing.T) {
	store := memory.NewAccountStore()
	ctx := context.Background()

	account := aggregates.NewAccount()
	require.NoError(t, store.Save(ctx, account))

	// A stale copy whose version did not advance loses
	err := store.Save(ctx, account)
	assert.True(t, apperrors.IsConflict(err))

	// Advancing the version wins
	account.AppendLetters("ABC")
	require.NoError(t, store.Save(ctx, account))

	stored, err := store.GetByID(ctx, account.ID())
	require.NoError(t, err)
	assert.Equal(t, account.Version(), stored.Version())
}

func TestAccountStore_ReturnsCopies(t *testing.T) {
	store := memory.NewAccountStore()
	ctx := context.Background()

	account := aggregates.NewAccount()
	account.AppendLetters("ABC")
	require.NoError(t, store.Save(ctx, account))

	// Mutating a retrieved copy must not leak into the store
	loaded, err := store.GetByID(ctx, account.ID())
	require.NoError(t, err)
	loaded.AppendLetters("XYZ")

	stored, err := store.GetByID(ctx, account.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Inventory().Count('X'))
	assert.Equal(t, 1, stored.Inventory().Count('A'))
}

func TestLocationStore_List(t *testing.T) {
	store := memory.NewLocationStore()
	ctx := context.Background()

	for _, label := range []string{"Pier 7", "Old Mill"} {
		location, err := aggregates.NewLocation(label, "ref://meta", "ref://fence")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, location))
	}

	listed, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestKeyedLockManager_MutualExclusion(t *testing.T) {
	locks := memory.NewKeyedLockManager()
	ctx := context.Background()

	release, err := locks.Acquire(ctx, "a", "b")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := locks.Acquire(ctx, "b")
		if err == nil {
			r()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while key was held")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire never completed after release")
	}
}

func TestKeyedLockManager_DuplicateKeys(t *testing.T) {
	locks := memory.NewKeyedLockManager()

	// Duplicate keys must collapse instead of self-deadlocking
	release, err := locks.Acquire(context.Background(), "x", "x", "x")
	require.NoError(t, err)
	release()
	release() // second call is a no-op
}

func TestKeyedLockManager_OrderIndependent(t *testing.T) {
	locks := memory.NewKeyedLockManager()
	ctx := context.Background()

	// Two goroutines locking the same keys in opposite orders must not
	// deadlock because acquisition always happens in sorted order.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := locks.Acquire(ctx, "first", "second")
			if err == nil {
				release()
			}
		}()
		go func() {
			defer wg.Done()
			release, err := locks.Acquire(ctx, "second", "first")
			if err == nil {
				release()
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock acquisition deadlocked")
	}
}

func TestKeyedLockManager_CancelledContext(t *testing.T) {
	locks := memory.NewKeyedLockManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locks.Acquire(ctx, "a")
	assert.Error(t, err)
}

func TestUnitOfWork_StagesUntilCommit(t *testing.T) {
	accounts := memory.NewAccountStore()
	locations := memory.NewLocationStore()
	assets := memory.NewAssetStore()
	exchanges := memory.NewExchangeStore()
	ctx := context.Background()

	uow := memory.NewUnitOfWork(accounts, locations, assets, exchanges)
	require.NoError(t, uow.Begin(ctx))

	account := aggregates.NewAccount()
	require.NoError(t, uow.Accounts().Save(ctx, account))

	// Not visible before commit
	_, err := accounts.GetByID(ctx, account.ID())
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, uow.Commit(ctx))

	_, err = accounts.GetByID(ctx, account.ID())
	require.NoError(t, err)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	accounts := memory.NewAccountStore()
	locations := memory.NewLocationStore()
	assets := memory.NewAssetStore()
	exchanges := memory.NewExchangeStore()
	ctx := context.Background()

	uow := memory.NewUnitOfWork(accounts, locations, assets, exchanges)
	require.NoError(t, uow.Begin(ctx))

	account := aggregates.NewAccount()
	require.NoError(t, uow.Accounts().Save(ctx, account))
	require.NoError(t, uow.Rollback())

	_, err := accounts.GetByID(ctx, account.ID())
	assert.True(t, apperrors.IsNotFound(err))

	// The same unit of work can be reused after rollback
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_SaveOutsideTransaction(t *testing.T) {
	uow := memory.NewUnitOfWork(
		memory.NewAccountStore(),
		memory.NewLocationStore(),
		memory.NewAssetStore(),
		memory.NewExchangeStore(),
	)

	err := uow.Accounts().Save(context.Background(), aggregates.NewAccount())
	assert.True(t, apperrors.IsConflict(err))
}

func TestUnitOfWork_CommitSurfacesVersionConflict(t *testing.T) {
	accounts := memory.NewAccountStore()
	locations := memory.NewLocationStore()
	assets := memory.NewAssetStore()
	exchanges := memory.NewExchangeStore()
	ctx := context.Background()

	account := aggregates.NewAccount()
	require.NoError(t, accounts.Save(ctx, account))

	uow := memory.NewUnitOfWork(accounts, locations, assets, exchanges)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Accounts().Save(ctx, account))

	err := uow.Commit(ctx)
	assert.True(t, apperrors.IsConflict(err))
}
