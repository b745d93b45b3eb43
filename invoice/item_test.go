package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStoreAdd(t *testing.T) {
	s := NewItemStore()

	item, err := s.Add(ItemCandidate{Name: "  Widget ", Quantity: "2", UnitPrice: "10.00"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, 2.0, item.Quantity)
	assert.Equal(t, 10.0, item.UnitPrice)
	assert.Len(t, s.List(), 1)
}

func TestItemStoreAddReportsAllFields(t *testing.T) {
	s := NewItemStore()

	_, err := s.Add(ItemCandidate{Name: "   ", Quantity: "zero", UnitPrice: "-3"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 3)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "quantity")
	assert.Contains(t, ve.Fields, "unit_price")
	assert.Empty(t, s.List(), "failed add must not mutate the store")
}

func TestItemStoreAddRejectsZeroQuantity(t *testing.T) {
	s := NewItemStore()

	_, err := s.Add(ItemCandidate{Name: "Widget", Quantity: "0", UnitPrice: "5"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "quantity")
	assert.NotContains(t, ve.Fields, "name")
}

func TestItemStoreRemove(t *testing.T) {
	s := NewItemStore()
	a, err := s.Add(ItemCandidate{Name: "A", Quantity: "1", UnitPrice: "1"})
	require.NoError(t, err)
	b, err := s.Add(ItemCandidate{Name: "B", Quantity: "1", UnitPrice: "1"})
	require.NoError(t, err)

	s.Remove(a.ID)
	require.Len(t, s.List(), 1)
	assert.Equal(t, b.ID, s.List()[0].ID)

	// unknown id is a no-op
	s.Remove("nope")
	assert.Len(t, s.List(), 1)
}

func TestItemStoreListOrderAndCopy(t *testing.T) {
	s := NewItemStore()
	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Add(ItemCandidate{Name: name, Quantity: "1", UnitPrice: "1"})
		require.NoError(t, err)
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "third", got[2].Name)

	got[0].Name = "mutated"
	assert.Equal(t, "first", s.List()[0].Name, "List must hand out copies")

	s.Clear()
	assert.Empty(t, s.List())
}
