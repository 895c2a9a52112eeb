package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder(t *testing.T) {
	var b UpdateBuilder
	assert.True(t, b.Empty())

	b.Set("name", "Kitchen")
	b.Set("progress", 40)
	assert.False(t, b.Empty())

	id := uuid.New()
	userID := uuid.New()
	idPh := b.Where(id)
	userPh := b.Where(userID)

	setClause, args := b.SetClause()

	assert.Equal(t, "name = $1, progress = $2", setClause)
	assert.Equal(t, "$3", idPh)
	assert.Equal(t, "$4", userPh)
	assert.Equal(t, []interface{}{"Kitchen", 40, id, userID}, args)
}

func TestUpdateBuilderEmptyPatch(t *testing.T) {
	var b UpdateBuilder

	setClause, args := b.SetClause()
	assert.True(t, b.Empty())
	assert.Equal(t, "", setClause)
	assert.Empty(t, args)
}
