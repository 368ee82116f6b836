package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/snet/internal/domain"
)

type CreateStoreInput struct {
	Body domain.StoreInput
}

type CreateStoreOutput struct {
	Body *domain.Store
}

type ListStoresInput struct{}

type ListStoresOutput struct {
	Body []domain.Store
}

type GetStoreInput struct {
	ID string `path:"id" minLength:"1" doc:"Store ID"`
}

type GetStoreOutput struct {
	Body *domain.Store
}

type UpdateStoreInput struct {
	ID   string `path:"id" minLength:"1" doc:"Store ID"`
	Body domain.StoreInput
}

type UpdateStoreOutput struct {
	Body *domain.Store
}

type DeleteStoreInput struct {
	ID string `path:"id" minLength:"1" doc:"Store ID"`
}

func RegisterStoreRoutes(api huma.API, svc StoreService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-store",
		Method:        http.MethodPost,
		Path:          "/stores",
		Summary:       "Create a store under an establishment",
		Tags:          []string{"Stores"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateStoreInput) (*CreateStoreOutput, error) {
		s, err := svc.CreateStore(ctx, input.Body)
		if err != nil {
			return nil, serviceError(err, "store")
		}
		return &CreateStoreOutput{Body: s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/stores",
		Summary:     "List stores",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, _ *ListStoresInput) (*ListStoresOutput, error) {
		list, err := svc.ListStores(ctx)
		if err != nil {
			return nil, serviceError(err, "stores")
		}
		return &ListStoresOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-store",
		Method:      http.MethodGet,
		Path:        "/stores/{id}",
		Summary:     "Get a store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *GetStoreInput) (*GetStoreOutput, error) {
		s, err := svc.GetStore(ctx, domain.ID(input.ID))
		if err != nil {
			return nil, serviceError(err, "store")
		}
		return &GetStoreOutput{Body: s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-store",
		Method:      http.MethodPut,
		Path:        "/stores/{id}",
		Summary:     "Replace a store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *UpdateStoreInput) (*UpdateStoreOutput, error) {
		s, err := svc.UpdateStore(ctx, domain.ID(input.ID), input.Body)
		if err != nil {
			return nil, serviceError(err, "store")
		}
		return &UpdateStoreOutput{Body: s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-store",
		Method:      http.MethodDelete,
		Path:        "/stores/{id}",
		Summary:     "Delete a store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *DeleteStoreInput) (*struct{}, error) {
		if err := svc.DeleteStore(ctx, domain.ID(input.ID)); err != nil {
			return nil, serviceError(err, "store")
		}
		return nil, nil
	})
}
