package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableDistinguishesOmittedFromNull(t *testing.T) {
	var payload struct {
		Notes    Nullable[string] `json:"notes"`
		WorkType Nullable[string] `json:"workType"`
		Personal Nullable[string] `json:"personalId"`
	}

	err := json.Unmarshal([]byte(`{"notes":null,"workType":"guard"}`), &payload)
	require.NoError(t, err)

	// explicit null: present but cleared
	assert.True(t, payload.Notes.Set)
	assert.False(t, payload.Notes.Valid)
	assert.Nil(t, payload.Notes.Ptr())

	// value: present and set
	assert.True(t, payload.WorkType.Set)
	assert.True(t, payload.WorkType.Valid)
	require.NotNil(t, payload.WorkType.Ptr())
	assert.Equal(t, "guard", *payload.WorkType.Ptr())

	// omitted: untouched
	assert.False(t, payload.Personal.Set)
}

func TestNullableRejectsWrongType(t *testing.T) {
	var payload struct {
		Notes Nullable[string] `json:"notes"`
	}
	err := json.Unmarshal([]byte(`{"notes":7}`), &payload)
	assert.Error(t, err)
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.pageSize), "total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}
