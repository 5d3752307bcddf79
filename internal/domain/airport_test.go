package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAirports() []Airport {
	return []Airport{
		{Code: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom", Timezone: "Europe/London"},
		{Code: "JFK", Name: "John F. Kennedy", City: "New York", Country: "United States", Timezone: "America/New_York"},
		{Code: "ORD", Name: "O'Hare", City: "Chicago", Country: "United States", Timezone: "America/Chicago"},
	}
}

func TestNewAirportDirectory(t *testing.T) {
	dir := NewAirportDirectory(testAirports())

	assert.Len(t, dir, 3)

	jfk, ok := dir.Lookup("JFK")
	require.True(t, ok)
	assert.Equal(t, "New York", jfk.City)
	assert.Equal(t, "America/New_York", jfk.Timezone)
}

func TestAirportDirectory_Lookup_Unknown(t *testing.T) {
	dir := NewAirportDirectory(testAirports())

	_, ok := dir.Lookup("XYZ")
	assert.False(t, ok)
	assert.False(t, dir.Contains("XYZ"))
	assert.True(t, dir.Contains("LHR"))
}

func TestAirportDirectory_DuplicateCodeKeepsLast(t *testing.T) {
	dir := NewAirportDirectory([]Airport{
		{Code: "JFK", Name: "first"},
		{Code: "JFK", Name: "second"},
	})

	require.Len(t, dir, 1)
	jfk, _ := dir.Lookup("JFK")
	assert.Equal(t, "second", jfk.Name)
}

func TestAirportDirectory_List_SortedByCode(t *testing.T) {
	dir := NewAirportDirectory(testAirports())

	list := dir.List()

	require.Len(t, list, 3)
	assert.Equal(t, "JFK", list[0].Code)
	assert.Equal(t, "LHR", list[1].Code)
	assert.Equal(t, "ORD", list[2].Code)
}

func TestAirportDirectory_List_Empty(t *testing.T) {
	dir := NewAirportDirectory(nil)
	assert.Empty(t, dir.List())
}
