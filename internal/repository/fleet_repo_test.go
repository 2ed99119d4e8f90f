package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var fleetCols = []string{"id", "name", "description", "contact_person", "contact_phone", "status", "created_at", "updated_at"}

func TestFleetRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM fleets ORDER BY id").
		WillReturnRows(pgxmock.NewRows(fleetCols).
			AddRow(1, "Express Fleet", strPtr("Long-haul express delivery"), strPtr("Manager Zhang"), strPtr("13800138001"), "active", now, now).
			AddRow(2, "City Delivery", (*string)(nil), (*string)(nil), (*string)(nil), "active", now, now))

	repo := NewFleetRepository(mock)
	fleets, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, fleets, 2)
	assert.Equal(t, "Express Fleet", fleets[0].Name)
	assert.Nil(t, fleets[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM fleets WHERE id").
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows(fleetCols))

	repo := NewFleetRepository(mock)
	fleet, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, fleet)
	assert.NoError(t, mock.ExpectationsWereMet())
}
