package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionAddIsIdempotent(t *testing.T) {
	once := NewSelection()
	once.Add("Fever")

	twice := NewSelection()
	assert.True(t, twice.Add("Fever"))
	assert.False(t, twice.Add("Fever"))

	assert.Equal(t, once.Symptoms(), twice.Symptoms())
	assert.Equal(t, 1, twice.Len())
}

func TestSelectionKeepsInsertionOrder(t *testing.T) {
	var sel Selection
	sel.Add("Rash")
	sel.Add("Cough")
	sel.Add("Rash")
	sel.Add("Fever")
	assert.Equal(t, []Symptom{"Rash", "Cough", "Fever"}, sel.Symptoms())
	assert.True(t, sel.Has("Cough"))
	assert.False(t, sel.Has("Headache"))
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Clear()
	assert.True(t, sel.Empty())

	sel.Add("Fever")
	sel.Add("Cough")
	assert.False(t, sel.Empty())
	sel.Clear()
	sel.Clear()
	assert.True(t, sel.Empty())
	assert.Empty(t, sel.Symptoms())
	assert.False(t, sel.Has("Fever"))

	assert.True(t, sel.Add("Fever"), "selection is reusable after clear")
}

func TestSelectionSymptomsReturnsCopy(t *testing.T) {
	sel := NewSelection()
	sel.Add("Fever")
	got := sel.Symptoms()
	got[0] = "Cough"
	assert.Equal(t, []Symptom{"Fever"}, sel.Symptoms())
}

func TestNilSelection(t *testing.T) {
	var sel *Selection
	assert.NotPanics(t, func() {
		assert.False(t, sel.Add("Fever"))
		sel.Clear()
	})
	assert.True(t, sel.Empty())
	assert.False(t, sel.Has("Fever"))
	assert.Nil(t, sel.Symptoms())
}
