package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"stylistapi/models"
	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClothingItemOk(t *testing.T) {
	e := newTestServer(t)

	payload := clothingPayload()
	payload["category"] = "business casual"
	payload["description"] = "Unstructured wool blazer"
	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/clothing-items", payload))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item, err := test.DecodeJSON[models.ClothingItem](rec)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Navy Blazer", item.Name)
	assert.Equal(t, models.CategoryBusinessCasual, item.Category)
	assert.Equal(t, models.ClothingTop, item.Type)
	assert.Equal(t, "Unstructured wool blazer", *item.Description)

	rec = test.Do(e, test.NewJSONRequest(http.MethodGet, fmt.Sprintf("/api/clothing-items/%d", item.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	fetched, err := test.DecodeJSON[models.ClothingItem](rec)
	require.NoError(t, err)
	assert.Equal(t, item, fetched)
}

func TestCreateClothingItemMissingName(t *testing.T) {
	e := newTestServer(t)

	payload := clothingPayload()
	delete(payload, "name")
	rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/clothing-items", payload))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	response, err := test.DecodeJSON[ValidationErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "Validation error", response.Message)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "name", response.Errors[0].Path)

	rec = test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items", nil))
	items, err := test.DecodeJSON[[]models.ClothingItem](rec)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateClothingItemMalformedBody(t *testing.T) {
	e := newTestServer(t)

	rec := test.Do(e, test.NewRawJSONRequest(http.MethodPost, "/api/clothing-items", `{"name": `))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	response, err := test.DecodeJSON[ValidationErrorResponse](rec)
	require.NoError(t, err)
	assert.Equal(t, "Malformed JSON body", response.Errors[0].Message)
}

func TestListClothingItemsInCreationOrder(t *testing.T) {
	e := newTestServer(t)
	for _, name := range []string{"Tee", "Chinos", "Loafers"} {
		payload := clothingPayload()
		payload["name"] = name
		rec := test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/clothing-items", payload))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	items, err := test.DecodeJSON[[]models.ClothingItem](rec)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Tee", items[0].Name)
	assert.Equal(t, "Loafers", items[2].Name)
}

func TestListClothingItemsByCategory(t *testing.T) {
	e := newTestServer(t)
	casual := clothingPayload()
	casual["category"] = "Casual"
	formal := clothingPayload()
	formal["category"] = "Formal"
	test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/clothing-items", casual))
	test.Do(e, test.NewJSONRequest(http.MethodPost, "/api/clothing-items", formal))

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items/category/casual", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	items, err := test.DecodeJSON[[]models.ClothingItem](rec)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.CategoryCasual, items[0].Category)

	rec = test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items/category/Streetwear", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetClothingItemBadID(t *testing.T) {
	e := newTestServer(t)

	for _, id := range []string{"abc", "1.5", "12abc", "+1", "+0"} {
		rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.JSONEq(t, `{"message": "Invalid ID format"}`, rec.Body.String())
	}
}

func TestGetClothingItemNotFound(t *testing.T) {
	e := newTestServer(t)

	for _, id := range []string{"42", "0", "-3", "99999999999999999999"} {
		rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.JSONEq(t, `{"message": "Clothing item not found"}`, rec.Body.String())
	}
}

func TestListClothingItemsStorageFailure(t *testing.T) {
	e := newTestServer(t, withStore(brokenStorage{}))

	rec := test.Do(e, test.NewJSONRequest(http.MethodGet, "/api/clothing-items", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "Failed to fetch clothing items"}`, rec.Body.String())
}
