package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/shared/store"
)

type room struct {
	ID     int     `db:"id"`
	Number string  `db:"number"`
	Floor  int     `db:"floor"`
	Reason *string `db:"reason"`
	hidden string
}

func TestTable_InsertAssignsSequentialIDs(t *testing.T) {
	table := store.NewTable[room]("room")

	first := table.Insert(room{Number: "101"})
	second := table.Insert(room{Number: "102"})
	third := table.Insert(room{Number: "103"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
}

func TestTable_IDsAreNeverReused(t *testing.T) {
	table := store.NewTable[room]("room")

	seen := make(map[int]bool)

	for range 100 {
		row := table.Insert(room{Number: "x"})
		assert.False(t, seen[row.ID], "identifier %d handed out twice", row.ID)
		seen[row.ID] = true
	}
}

func TestTable_GetMissing(t *testing.T) {
	table := store.NewTable[room]("room")

	_, ok := table.Get(42)
	assert.False(t, ok)
	assert.False(t, table.Exist(42))
}

func TestTable_ListKeepsInsertionOrder(t *testing.T) {
	table := store.NewTable[room]("room")

	for _, number := range []string{"201", "105", "102"} {
		table.Insert(room{Number: number})
	}

	rows := table.List()
	require.Len(t, rows, 3)
	assert.Equal(t, "201", rows[0].Number)
	assert.Equal(t, "105", rows[1].Number)
	assert.Equal(t, "102", rows[2].Number)
}

func TestTable_Update(t *testing.T) {
	table := store.NewTable[room]("room")
	stored := table.Insert(room{Number: "101", Floor: 1})

	t.Run("patched fields win, others are retained", func(t *testing.T) {
		updated, ok := table.Update(stored.ID, map[string]any{"floor": 2})
		require.True(t, ok)
		assert.Equal(t, 2, updated.Floor)
		assert.Equal(t, "101", updated.Number)
	})

	t.Run("empty patch returns the row unchanged", func(t *testing.T) {
		before, _ := table.Get(stored.ID)
		updated, ok := table.Update(stored.ID, map[string]any{})
		require.True(t, ok)
		assert.Equal(t, before, updated)
	})

	t.Run("missing id has no side effect", func(t *testing.T) {
		_, ok := table.Update(999, map[string]any{"floor": 9})
		assert.False(t, ok)
	})

	t.Run("identifier is not patchable", func(t *testing.T) {
		updated, ok := table.Update(stored.ID, map[string]any{"id": 77})
		require.True(t, ok)
		assert.Equal(t, stored.ID, updated.ID)
	})
}

func TestTable_UpdatePointerFields(t *testing.T) {
	table := store.NewTable[room]("room")
	stored := table.Insert(room{Number: "105"})

	updated, ok := table.Update(stored.ID, map[string]any{"reason": "Renovation"})
	require.True(t, ok)
	require.NotNil(t, updated.Reason)
	assert.Equal(t, "Renovation", *updated.Reason)

	updated, ok = table.Update(stored.ID, map[string]any{"reason": nil})
	require.True(t, ok)
	assert.Nil(t, updated.Reason)
}

func TestTable_FindAndSelect(t *testing.T) {
	table := store.NewTable[room]("room")
	table.Insert(room{Number: "101", Floor: 1})
	table.Insert(room{Number: "201", Floor: 2})
	table.Insert(room{Number: "202", Floor: 2})

	found, ok := table.Find(func(r room) bool { return r.Number == "201" })
	require.True(t, ok)
	assert.Equal(t, 2, found.Floor)

	_, ok = table.Find(func(r room) bool { return r.Number == "999" })
	assert.False(t, ok)

	upstairs := table.Select(func(r room) bool { return r.Floor == 2 })
	assert.Len(t, upstairs, 2)

	assert.Equal(t, 3, table.Count(nil))
	assert.Equal(t, 1, table.Count(func(r room) bool { return r.Floor == 1 }))
}

func TestFields(t *testing.T) {
	patch := store.Fields(struct {
		Number string `db:"number"`
		Floor  int    `db:"floor"`
		Skip   string
	}{Number: "104"})

	assert.Equal(t, map[string]any{"number": "104"}, patch)
}

func TestFields_EmptyRequest(t *testing.T) {
	patch := store.Fields(struct {
		Number string `db:"number"`
	}{})

	assert.Empty(t, patch)
}
