package storage

import (
	"context"
	"errors"
	"testing"

	"stylistapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockStorage(t *testing.T) (*DatabaseStorage, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return NewDatabaseStorage(db), mock
}

func TestDatabaseGetMissingMapsToNotFound(t *testing.T) {
	s, mock := mockStorage(t)
	mock.ExpectQuery(`SELECT \* FROM "clothing_items" WHERE "clothing_items"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.GetClothingItem(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseGetPropagatesOtherErrors(t *testing.T) {
	s, mock := mockStorage(t)
	mock.ExpectQuery(`SELECT \* FROM "outfits"`).WillReturnError(errors.New("connection reset"))

	_, err := s.GetOutfit(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestDatabaseListByCategoryIsCaseInsensitive(t *testing.T) {
	s, mock := mockStorage(t)
	rows := sqlmock.NewRows([]string{"id", "name", "category", "image_url", "description", "match_score", "colors"}).
		AddRow(3, "Weekend", "Casual", "https://example.com/w.jpg", nil, "Good Match", "{white,pink}")
	mock.ExpectQuery(`SELECT \* FROM "outfits" WHERE LOWER\(category\) = LOWER\(\$1\) ORDER BY id`).
		WithArgs("casual").
		WillReturnRows(rows)

	outfits, err := s.ListOutfitsByCategory(context.Background(), " casual ")
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	assert.Equal(t, uint(3), outfits[0].ID)
	assert.Equal(t, models.CategoryCasual, outfits[0].Category)
	assert.Nil(t, outfits[0].Description)
	assert.Equal(t, "Good Match", *outfits[0].MatchScore)
	assert.Equal(t, []string{"white", "pink"}, []string(outfits[0].Colors))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseCreateReturnsGeneratedID(t *testing.T) {
	s, mock := mockStorage(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "color_palettes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	palette, err := s.CreateColorPalette(context.Background(), &models.InsertColorPalette{
		Name:   "Formal Essentials",
		Colors: []string{"navy", "forest"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), palette.ID)
	assert.Equal(t, []string{"navy", "forest"}, []string(palette.Colors))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseSeedSkipsPopulatedStore(t *testing.T) {
	s, mock := mockStorage(t)
	mock.ExpectQuery(`SELECT \* FROM "clothing_items" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "type", "image_url", "colors", "description"}).
			AddRow(1, "White Shirt", "Formal", "top", "https://example.com/shirt.jpg", "{white}", nil))

	seeded, err := SeedIfEmpty(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, seeded)
	// an INSERT has no expectation and would surface as a seed error
	assert.NoError(t, mock.ExpectationsWereMet())
}
