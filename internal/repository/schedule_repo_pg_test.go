package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewScheduleRepository(t *testing.T) {
	repo := NewScheduleRepository(&pgxpool.Pool{})
	assert.IsType(t, &PGScheduleRepository{}, repo)
}
