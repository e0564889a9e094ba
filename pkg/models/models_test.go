package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNoteID(t *testing.T) {
	id, err := ParseNoteID("42")
	require.NoError(t, err)
	assert.Equal(t, NoteID(42), id)
	assert.Equal(t, "42", id.String())
	assert.False(t, id.IsZero())

	for _, bad := range []string{"", "abc", "1.5", "-3", "0"} {
		_, err := ParseNoteID(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestNoteJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Note{ID: 7, Text: "buy milk"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"text":"buy milk","is_completed":false}`, string(data))
}

func TestCreateNoteValidate(t *testing.T) {
	assert.NoError(t, CreateNote{Text: "buy milk"}.Validate())
	assert.Error(t, CreateNote{}.Validate())
	assert.Error(t, CreateNote{Text: "   "}.Validate())
}

func TestUpdateNotePartialDecode(t *testing.T) {
	var update UpdateNote
	require.NoError(t, json.Unmarshal([]byte(`{"is_completed":true}`), &update))
	require.Nil(t, update.Text)
	require.NotNil(t, update.IsCompleted)
	assert.True(t, *update.IsCompleted)

	note := Note{ID: 1, Text: "keep me"}
	update.Apply(&note)
	assert.Equal(t, "keep me", note.Text)
	assert.True(t, note.IsCompleted)
}

func TestUpdateNoteValidate(t *testing.T) {
	empty := ""
	text := "new text"
	assert.NoError(t, UpdateNote{}.Validate())
	assert.NoError(t, UpdateNote{Text: &text}.Validate())
	assert.Error(t, UpdateNote{Text: &empty}.Validate())
}
