package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backend serializes user records with the street under "address" and
// the postal code under "cep". These fixtures pin the wire names so a tag
// rename cannot silently drop customer data.

func TestProfileDecodesBackendUserRecord(t *testing.T) {
	payload := `{
		"id": 7,
		"name": "Ana Silva",
		"email": "ana@example.com",
		"is_admin": false,
		"created_at": "2026-03-09T12:00:00Z",
		"doc_type": "CPF",
		"doc_number": "123.456.789-00",
		"phone": "+55 11 99999-0000",
		"cep": "01001-000",
		"state": "SP",
		"city": "Sao Paulo",
		"district": "Centro",
		"address": "Rua A",
		"number": "10",
		"complement": "ap 42"
	}`

	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(payload), &profile))

	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "CPF", profile.DocType)
	assert.Equal(t, "123.456.789-00", profile.DocNumber)
	assert.Equal(t, "+55 11 99999-0000", profile.Phone)
	assert.Equal(t, "01001-000", profile.CEP)
	assert.Equal(t, "SP", profile.State)
	assert.Equal(t, "Sao Paulo", profile.City)
	assert.Equal(t, "Centro", profile.District)
	assert.Equal(t, "Rua A", profile.Address)
	assert.Equal(t, "10", profile.Number)
	assert.Equal(t, "ap 42", profile.Complement)
}

func TestUserInputUsesBackendKeys(t *testing.T) {
	input := UserInput{
		Name:       "Ana Silva",
		Email:      "ana@example.com",
		Password:   "secret1",
		CEP:        "01001-000",
		State:      "SP",
		City:       "Sao Paulo",
		District:   "Centro",
		Address:    "Rua A",
		Number:     "10",
		Complement: "ap 42",
	}

	data, err := json.Marshal(input)
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &keys))

	for key, want := range map[string]string{
		"cep":        "01001-000",
		"state":      "SP",
		"city":       "Sao Paulo",
		"district":   "Centro",
		"address":    "Rua A",
		"number":     "10",
		"complement": "ap 42",
	} {
		assert.Equal(t, want, keys[key], "key %q", key)
	}
	for _, stale := range []string{"address_zip", "address_street", "address_city"} {
		assert.NotContains(t, keys, stale)
	}
}
