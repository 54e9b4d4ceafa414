package property

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	v, err := s.Get(ctx, "_sourceTerminalEnhanceUses")
	require.NoError(t, err)
	require.Equal(t, "", v, "missing property should read as empty")

	require.NoError(t, s.Set(ctx, "_sourceTerminalEnhanceUses", "1"))
	require.NoError(t, s.Set(ctx, "sourceTerminalChips", "CRAM,SCRAM"))

	v, err = s.Get(ctx, "_sourceTerminalEnhanceUses")
	require.NoError(t, err)
	require.Equal(t, "1", v)

	require.NoError(t, s.Set(ctx, "_sourceTerminalEnhanceUses", "2"))
	n, err := SourceTerminalEnhanceUses.Get(ctx, s)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	chips, err := SourceTerminalChips.Get(ctx, s)
	require.NoError(t, err)
	require.Equal(t, []string{"CRAM", "SCRAM"}, chips)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(nil))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)

	// A fresh store sees what the first one wrote.
	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, err := reopened.Get(context.Background(), "sourceTerminalChips")
	require.NoError(t, err)
	require.Equal(t, "CRAM,SCRAM", v)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStore_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := OpenFileStore(path)
	require.ErrorContains(t, err, "unmarshalling properties")
}

func TestFileStore_WriteFailureRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "prefs.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)

	err = s.Set(context.Background(), "sourceTerminalPram", "3")
	require.ErrorContains(t, err, "writing temp file")

	v, err := s.Get(context.Background(), "sourceTerminalPram")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := NewRedisStore(client, "")
	defer func() {
		require.NoError(t, s.Close())
	}()

	require.NoError(t, s.Ping(context.Background()))
	exerciseStore(t, s)

	require.Equal(t, "2", mr.HGet(DefaultRedisHash, "_sourceTerminalEnhanceUses"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	s := NewRedisStore(client, "character:1")
	mr.Close()

	_, err := s.Get(context.Background(), "_banderRunaways")
	require.ErrorContains(t, err, "redis hget failed")
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "props.sqlite")

	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	exerciseStore(t, s)
}

func TestOpenSQLiteStore_EmptyPath(t *testing.T) {
	_, err := OpenSQLiteStore("")
	require.ErrorContains(t, err, "empty db path")
}
