package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

func rec(id string, at time.Time) Record {
	return Record{ID: id, At: at, Action: "change", Current: "CashableTheme"}
}

func TestJournalPersistsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	j := NewJournal(path, 3)
	require.NoError(t, j.Append(rec("a", base), rec("b", base.Add(time.Minute))))
	require.NoError(t, j.Append(rec("c", base.Add(2*time.Minute)), rec("d", base.Add(3*time.Minute))))

	reloaded := NewJournal(path, 3)
	require.NoError(t, reloaded.Load())
	entries := reloaded.Entries(0)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"d", "c", "b"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.Len(t, reloaded.Entries(1), 1)

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJournalKeepsStoreHistoryOrder(t *testing.T) {
	st := New(zerolog.Nop(), Initial(), WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	st.Dispatch(ToggleDarkMode{Dark: true})
	st.Dispatch(ChangeTheme{Name: "Cool Minimal Theme"})

	j := NewJournal(filepath.Join(t.TempDir(), "history.json"), 0)
	require.NoError(t, j.Append(st.History()...))
	entries := j.Entries(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "change", entries[0].Action)
	assert.Equal(t, "dark", entries[1].Action)
}

func TestJournalRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := NewJournal(path, 0).Load()
	require.Error(t, err)
	assert.True(t, errdef.Is(err, errdef.CodeStore))
}

func TestJournalClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	j := NewJournal(path, 0)
	require.NoError(t, j.Append(rec("a", time.Now())))
	require.NoError(t, j.Clear())
	assert.Empty(t, j.Entries(0))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, j.Clear())
}
