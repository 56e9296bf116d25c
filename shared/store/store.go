// Package store implements the in-memory table engine behind every entity
// repository: a map keyed by sequential integer identifiers plus a per-table
// counter. Field access is driven by `db` struct tags, so sparse patches can
// address columns by name the same way a SQL repository would.
package store

import (
	"fmt"
	"reflect"
	"sync"
)

// Table is a thread-safe in-memory table of T keyed by an integer identifier.
// Identifiers start at 1, increase by one on every insert and are never
// reused. Rows are listed in insertion order. The row type must carry a
// `db:"id"` tagged int field; all patchable fields need a db tag.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	order  []int
	nextID int
	entity string
	fields map[string]int
	idIdx  int
}

// NewTable builds a table for the given entity name, indexing the db-tagged
// fields of T. It panics when T is not a struct with a `db:"id"` int field,
// since that is a programming error, not a runtime condition.
func NewTable[T any](entityName string) *Table[T] {
	var zero T

	reflectType := reflect.TypeOf(zero)
	if reflectType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("store: entity %s must be a struct, got %s", entityName, reflectType.Kind()))
	}

	fields := make(map[string]int)
	idIdx := -1

	for index := range reflectType.NumField() {
		tag := reflectType.Field(index).Tag.Get("db")
		if tag == "" {
			continue
		}

		fields[tag] = index

		if tag == "id" {
			if reflectType.Field(index).Type.Kind() != reflect.Int {
				panic(fmt.Sprintf("store: entity %s id field must be an int", entityName))
			}

			idIdx = index
		}
	}

	if idIdx < 0 {
		panic(fmt.Sprintf("store: entity %s has no db:\"id\" field", entityName))
	}

	return &Table[T]{
		rows:   make(map[int]T),
		nextID: 1,
		entity: entityName,
		fields: fields,
		idIdx:  idIdx,
	}
}

// Entity returns the entity name the table was built for.
func (t *Table[T]) Entity() string {
	return t.entity
}

// Insert mints the next identifier, stamps it onto the row and stores it.
// The stored row is returned. The counter and map write happen under one
// lock so concurrent inserts cannot race the identifier allocation.
func (t *Table[T]) Insert(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	reflect.ValueOf(&row).Elem().Field(t.idIdx).SetInt(int64(id))

	t.rows[id] = row
	t.order = append(t.order, id)

	return row
}

// Get returns the row for id, or the zero row and false when absent.
func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]

	return row, ok
}

// Exist reports whether a row with the given id is stored.
func (t *Table[T]) Exist(id int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.rows[id]

	return ok
}

// List returns all rows in insertion order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, t.rows[id])
	}

	return rows
}

// Select returns the rows matching pred, in insertion order.
func (t *Table[T]) Select(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var rows []T

	for _, id := range t.order {
		if pred(t.rows[id]) {
			rows = append(rows, t.rows[id])
		}
	}

	return rows
}

// Find returns the first row matching pred in insertion order, or the zero
// row and false when nothing matches.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if pred(t.rows[id]) {
			return t.rows[id], true
		}
	}

	var zero T

	return zero, false
}

// Count returns the number of rows matching pred, or the total row count when
// pred is nil.
func (t *Table[T]) Count(pred func(T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if pred == nil {
		return len(t.rows)
	}

	count := 0

	for _, row := range t.rows {
		if pred(row) {
			count++
		}
	}

	return count
}

// Update applies a sparse patch to the row with the given id and returns the
// updated row. A field absent from the patch is left untouched; a field
// present with a nil value is cleared to its zero value, which is how
// nullable columns are reset. When the id is absent the table is unchanged
// and found is false. The identifier itself is never patchable.
func (t *Table[T]) Update(id int, patch map[string]any) (row T, found bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, found = t.rows[id]
	if !found {
		return row, false
	}

	value := reflect.ValueOf(&row).Elem()

	for name, fieldValue := range patch {
		index, ok := t.fields[name]
		if !ok || index == t.idIdx {
			continue
		}

		field := value.Field(index)

		if fieldValue == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}

		patchValue := reflect.ValueOf(fieldValue)

		switch {
		case patchValue.Type().AssignableTo(field.Type()):
			field.Set(patchValue)
		case field.Kind() == reflect.Pointer && patchValue.Type().AssignableTo(field.Type().Elem()):
			pointer := reflect.New(field.Type().Elem())
			pointer.Elem().Set(patchValue)
			field.Set(pointer)
		}
	}

	t.rows[id] = row

	return row, true
}
