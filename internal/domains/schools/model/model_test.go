package model_test

import (
	"testing"

	"campusvisit/infras/backend"
	"campusvisit/internal/domains/schools/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCity(t *testing.T) {
	schools := []backend.School{
		{ID: 1, Name: "A", City: "Izmir"},
		{ID: 2, Name: "B", City: "Ankara"},
		{ID: 3, Name: "C", City: "Izmir"},
	}

	groups := model.GroupByCity(schools, map[string]bool{"Ankara": true})

	require.Len(t, groups, 2)
	assert.Equal(t, "Izmir", groups[0].City)
	assert.Equal(t, []backend.School{schools[0], schools[2]}, groups[0].Schools)
	assert.False(t, groups[0].Expanded)
	assert.Equal(t, "Ankara", groups[1].City)
	assert.True(t, groups[1].Expanded)
}

func TestGroupByCity_Empty(t *testing.T) {
	assert.Empty(t, model.GroupByCity(nil, nil))
}

func TestReplaceAndRemove(t *testing.T) {
	schools := []backend.School{{ID: 1, Name: "A", City: "Izmir"}, {ID: 2, Name: "B", City: "Ankara"}}

	schools = model.Replace(schools, backend.School{ID: 2, Name: "B2", City: "Ankara"})
	assert.Equal(t, "B2", schools[1].Name)

	schools = model.Remove(schools, 1)
	assert.Equal(t, []backend.School{{ID: 2, Name: "B2", City: "Ankara"}}, schools)
}
