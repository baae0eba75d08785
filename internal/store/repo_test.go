package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sanchess0-o/bot/internal/domain"
)

func openRepos(t *testing.T) map[string]Repo {
	t.Helper()
	ctx := context.Background()

	sqliteRepo, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteRepo.Close() })

	return map[string]Repo{
		"sqlite": sqliteRepo,
		"memory": NewMemory(),
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			in := &domain.Preference{UserID: 42, Hour: 8, Minute: 30, Timezone: "Europe/Moscow"}
			require.NoError(t, repo.Put(ctx, in))

			got, err := repo.Get(ctx, 42)
			require.NoError(t, err)
			require.Equal(t, int64(42), got.UserID)
			require.Equal(t, 8, got.Hour)
			require.Equal(t, 30, got.Minute)
			require.Equal(t, "Europe/Moscow", got.Timezone)
		})
	}
}

func TestPutReplacesWhole(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Put(ctx, &domain.Preference{UserID: 1, Hour: 8, Minute: 0, Timezone: "Europe/Moscow"}))
			require.NoError(t, repo.Put(ctx, &domain.Preference{UserID: 1, Hour: 18, Minute: 45, Timezone: "Asia/Tokyo"}))

			got, err := repo.Get(ctx, 1)
			require.NoError(t, err)
			require.Equal(t, 18, got.Hour)
			require.Equal(t, 45, got.Minute)
			require.Equal(t, "Asia/Tokyo", got.Timezone)

			all, err := repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 1, "put must replace, not append")
		})
	}
}

func TestPutRejectsInvalidTime(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Put(ctx, &domain.Preference{UserID: 7, Hour: 9, Minute: 15, Timezone: "UTC"}))

			for _, bad := range []*domain.Preference{
				{UserID: 7, Hour: 24, Minute: 0, Timezone: "UTC"},
				{UserID: 7, Hour: -1, Minute: 0, Timezone: "UTC"},
				{UserID: 7, Hour: 12, Minute: 60, Timezone: "UTC"},
			} {
				err := repo.Put(ctx, bad)
				require.ErrorIs(t, err, domain.ErrInvalidTime)
			}

			// The earlier valid row must be intact.
			got, err := repo.Get(ctx, 7)
			require.NoError(t, err)
			require.Equal(t, 9, got.Hour)
			require.Equal(t, 15, got.Minute)
		})
	}
}

func TestPutRejectsInvalidTimezone(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			err := repo.Put(ctx, &domain.Preference{UserID: 8, Hour: 9, Minute: 0, Timezone: "Atlantis/SunkenCity"})
			require.ErrorIs(t, err, domain.ErrInvalidTimezone)

			_, err = repo.Get(ctx, 8)
			require.ErrorIs(t, err, domain.ErrPreferenceNotFound)
		})
	}
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(ctx, 999)
			require.True(t, errors.Is(err, domain.ErrPreferenceNotFound))
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Put(ctx, &domain.Preference{UserID: 5, Hour: 10, Minute: 0, Timezone: "UTC"}))
			require.NoError(t, repo.Remove(ctx, 5))
			require.NoError(t, repo.Remove(ctx, 5), "removing an absent user must not fail")

			_, err := repo.Get(ctx, 5)
			require.ErrorIs(t, err, domain.ErrPreferenceNotFound)
		})
	}
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	for name, repo := range openRepos(t) {
		t.Run(name, func(t *testing.T) {
			for i := int64(1); i <= 3; i++ {
				require.NoError(t, repo.Put(ctx, &domain.Preference{
					UserID: i, Hour: int(i), Minute: 0, Timezone: "Europe/London",
				}))
			}
			all, err := repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)

			seen := map[int64]bool{}
			for _, p := range all {
				seen[p.UserID] = true
			}
			require.Len(t, seen, 3)
		})
	}
}
