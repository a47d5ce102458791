package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgreSQLDB_InvalidURL(t *testing.T) {
	db, err := NewPostgreSQLDB("host=localhost port=notaport", 4, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database url")
	assert.Nil(t, db)
}
