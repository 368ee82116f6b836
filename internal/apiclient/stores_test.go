package apiclient_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/snet/internal/domain"
)

func downtownInput(establishmentID domain.ID) domain.StoreInput {
	return domain.StoreInput{
		EstablishmentID: establishmentID,
		Attributes: domain.Attributes{
			Number:        "S1",
			Name:          "Downtown",
			CorporateName: "Acme Downtown",
			Address:       "2nd St",
			AddressNumber: "3",
			City:          "Springfield",
			State:         "IL",
			ZipCode:       "62702",
		},
	}
}

// ---------------------------------------------------------------------------
// POST /stores
// ---------------------------------------------------------------------------

func TestCreateStore(t *testing.T) {
	t.Parallel()

	t.Run("sends establishment and whitelisted fields", func(t *testing.T) {
		t.Parallel()

		api, c := newFakeAPI(t, http.StatusCreated, `{"id":5,"establishment_id":1,"number":"S1","name":"Downtown","corporate_name":"Acme Downtown","address":"2nd St","address_number":"3","city":"Springfield","state":"IL","zip_code":"62702"}`)

		got, err := c.CreateStore(t.Context(), downtownInput("1"))
		require.NoError(t, err)

		req := api.only(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/stores", req.Path)
		assert.Len(t, req.Body, len(whitelist)+1)
		for _, field := range whitelist {
			assert.Contains(t, req.Body, field)
		}
		assert.InDelta(t, 1, req.Body["establishment_id"], 0, "numeric ids go out as JSON numbers")
		assert.NotContains(t, req.Body, "id")

		assert.Equal(t, domain.ID("5"), got.ID)
		assert.True(t, got.BelongsTo("1"))
	})

	t.Run("id-only acknowledgement keeps submitted attributes", func(t *testing.T) {
		t.Parallel()

		_, c := newFakeAPI(t, http.StatusCreated, `{"id":6}`)

		got, err := c.CreateStore(t.Context(), downtownInput("1"))
		require.NoError(t, err)

		assert.Equal(t, domain.ID("6"), got.ID)
		assert.Equal(t, domain.ID("1"), got.EstablishmentID)
		assert.Equal(t, "Downtown", got.Name)
	})

	t.Run("leading zero establishment id is sent as canonical number", func(t *testing.T) {
		t.Parallel()

		api, c := newFakeAPI(t, http.StatusCreated, `{"id":5,"establishment_id":1}`)

		got, err := c.CreateStore(t.Context(), downtownInput("01"))
		require.NoError(t, err)

		assert.InDelta(t, 1, api.only(t).Body["establishment_id"], 0)
		assert.True(t, got.BelongsTo("01"))
	})

	t.Run("missing establishment is rejected before sending", func(t *testing.T) {
		t.Parallel()

		api, c := newFakeAPI(t, http.StatusCreated, `{"id":6}`)

		_, err := c.CreateStore(t.Context(), downtownInput(""))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, api.requests)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		t.Parallel()

		_, c := newFakeAPI(t, http.StatusInternalServerError, `{"error":"Could not create store"}`)

		got, err := c.CreateStore(t.Context(), downtownInput("1"))
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "Could not create store")
	})
}

// ---------------------------------------------------------------------------
// GET /stores, GET /stores/{id}, PUT /stores/{id}
// ---------------------------------------------------------------------------

func TestListStores(t *testing.T) {
	t.Parallel()

	api, c := newFakeAPI(t, http.StatusOK, `[{"id":5,"establishment_id":1,"name":"Downtown"}]`)

	got, err := c.ListStores(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "/stores", api.only(t).Path)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ID("5"), got[0].ID)
}

func TestGetStore(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		api, c := newFakeAPI(t, http.StatusOK, `{"id":5,"establishment_id":1,"name":"Downtown"}`)

		got, err := c.GetStore(t.Context(), "5")
		require.NoError(t, err)

		assert.Equal(t, "/stores/5", api.only(t).Path)
		assert.Equal(t, "Downtown", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, c := newFakeAPI(t, http.StatusNotFound, `{"error":"Store not found"}`)

		_, err := c.GetStore(t.Context(), "5")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateStore(t *testing.T) {
	t.Parallel()

	api, c := newFakeAPI(t, http.StatusOK, `{"message":"Store updated successfully"}`)

	got, err := c.UpdateStore(t.Context(), "5", downtownInput("1"))
	require.NoError(t, err)

	req := api.only(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/stores/5", req.Path)
	assert.Len(t, req.Body, len(whitelist)+1)

	assert.Equal(t, domain.ID("5"), got.ID)
	assert.Equal(t, domain.ID("1"), got.EstablishmentID)
	assert.Equal(t, "Downtown", got.Name)
}

// ---------------------------------------------------------------------------
// DELETE /stores/{id}
// ---------------------------------------------------------------------------

func TestDeleteStore(t *testing.T) {
	t.Parallel()

	bodies := []struct {
		name string
		body string
	}{
		{name: "message body", body: `{"message":"Store deleted successfully"}`},
		{name: "empty body", body: ``},
		{name: "non json body", body: `deleted`},
	}

	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, c := newFakeAPI(t, http.StatusOK, tt.body)

			err := c.DeleteStore(t.Context(), "s1")
			require.NoError(t, err)

			req := api.only(t)
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "/stores/s1", req.Path)
		})
	}

	t.Run("failure is surfaced", func(t *testing.T) {
		t.Parallel()

		_, c := newFakeAPI(t, http.StatusInternalServerError, `{"error":"Could not delete store"}`)

		err := c.DeleteStore(t.Context(), "s1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "apiclient.Client.DeleteStore")
	})
}
