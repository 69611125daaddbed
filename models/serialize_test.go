package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNewFavorite_SetsOnlyTargetColumn(t *testing.T) {
	tests := []struct {
		name       string
		target     FavoriteTarget
		wantPeople *uint
		wantPlanet *uint
	}{
		{
			name:       "person target",
			target:     PersonTarget(4),
			wantPeople: uintPtr(4),
		},
		{
			name:       "planet target",
			target:     PlanetTarget(9),
			wantPlanet: uintPtr(9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav := NewFavorite(1, tt.target)
			assert.Equal(t, uint(1), fav.UserID)
			assert.Equal(t, tt.wantPeople, fav.PeopleID)
			assert.Equal(t, tt.wantPlanet, fav.PlanetsID)

			got, ok := fav.Target()
			require.True(t, ok)
			assert.Equal(t, tt.target, got)
		})
	}
}

func TestFavoriteTarget_RejectsAmbiguousRows(t *testing.T) {
	_, ok := Favorite{UserID: 1}.Target()
	assert.False(t, ok)

	_, ok = Favorite{UserID: 1, PeopleID: uintPtr(1), PlanetsID: uintPtr(2)}.Target()
	assert.False(t, ok)
}

func TestFavoriteTarget_Column(t *testing.T) {
	assert.Equal(t, "people_id", PersonTarget(1).Column())
	assert.Equal(t, "planets_id", PlanetTarget(1).Column())
	assert.False(t, FavoriteTarget{Kind: "starships", ID: 1}.Valid())
	assert.Equal(t, "planets/3", PlanetTarget(3).String())
}

func TestFavorite_SerializeUsesNullForUnsetTarget(t *testing.T) {
	fav := NewFavorite(2, PlanetTarget(5))
	fav.ID = 11

	raw, err := json.Marshal(fav.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":11,"user_id":2,"people_id":null,"planets_id":5}`, string(raw))
}

func TestSerialize_FavoriteArrayMatchesRows(t *testing.T) {
	user := User{
		ID:       1,
		Username: "luke",
		Favorites: []Favorite{
			NewFavorite(1, PersonTarget(1)),
			NewFavorite(1, PlanetTarget(1)),
		},
	}
	person := Person{ID: 1, Name: "Luke Skywalker", Gender: "male", EyeColor: "blue", SkinColor: "fair"}
	planet := Planet{
		ID: 1, Name: "Tatooine", Population: "200000", Terrain: "desert", Climate: "arid",
		Favorites: []Favorite{NewFavorite(1, PlanetTarget(1))},
	}

	assert.Len(t, user.Serialize()["favorite"], 2)
	assert.Len(t, planet.Serialize()["favorite"], 1)

	// no favorites still encodes an empty array, never null
	raw, err := json.Marshal(person.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Luke Skywalker",
		"gender": "male",
		"eye_color": "blue",
		"skin_color": "fair",
		"favorite": []
	}`, string(raw))

	raw, err = json.Marshal(planet.Serialize())
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "200000", decoded["population"])
	assert.Equal(t, "arid", decoded["climate"])
}
