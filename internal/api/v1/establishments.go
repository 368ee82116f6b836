package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/snet/internal/domain"
)

type CreateEstablishmentInput struct {
	Body domain.EstablishmentInput
}

type CreateEstablishmentOutput struct {
	Body *domain.Establishment
}

type ListEstablishmentsInput struct{}

type ListEstablishmentsOutput struct {
	Body []domain.EstablishmentWithStoresTotal
}

type GetEstablishmentInput struct {
	ID string `path:"id" minLength:"1" doc:"Establishment ID"`
}

type GetEstablishmentOutput struct {
	Body *domain.EstablishmentWithStores
}

type UpdateEstablishmentInput struct {
	ID   string `path:"id" minLength:"1" doc:"Establishment ID"`
	Body domain.EstablishmentInput
}

type UpdateEstablishmentOutput struct {
	Body *domain.Establishment
}

type DeleteEstablishmentInput struct {
	ID string `path:"id" minLength:"1" doc:"Establishment ID"`
}

func RegisterEstablishmentRoutes(api huma.API, svc EstablishmentService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-establishment",
		Method:        http.MethodPost,
		Path:          "/establishments",
		Summary:       "Create an establishment",
		Tags:          []string{"Establishments"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateEstablishmentInput) (*CreateEstablishmentOutput, error) {
		e, err := svc.CreateEstablishment(ctx, input.Body)
		if err != nil {
			return nil, serviceError(err, "establishment")
		}
		return &CreateEstablishmentOutput{Body: e}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-establishments",
		Method:      http.MethodGet,
		Path:        "/establishments",
		Summary:     "List establishments with their store totals",
		Tags:        []string{"Establishments"},
	}, func(ctx context.Context, _ *ListEstablishmentsInput) (*ListEstablishmentsOutput, error) {
		list, err := svc.ListEstablishmentsWithTotals(ctx)
		if err != nil {
			return nil, serviceError(err, "establishments")
		}
		return &ListEstablishmentsOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-establishment",
		Method:      http.MethodGet,
		Path:        "/establishments/{id}",
		Summary:     "Get an establishment and its stores",
		Tags:        []string{"Establishments"},
	}, func(ctx context.Context, input *GetEstablishmentInput) (*GetEstablishmentOutput, error) {
		e, err := svc.GetEstablishment(ctx, domain.ID(input.ID))
		if err != nil {
			return nil, serviceError(err, "establishment")
		}
		return &GetEstablishmentOutput{Body: e}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-establishment",
		Method:      http.MethodPut,
		Path:        "/establishments/{id}",
		Summary:     "Replace an establishment",
		Tags:        []string{"Establishments"},
	}, func(ctx context.Context, input *UpdateEstablishmentInput) (*UpdateEstablishmentOutput, error) {
		e, err := svc.UpdateEstablishment(ctx, domain.ID(input.ID), input.Body)
		if err != nil {
			return nil, serviceError(err, "establishment")
		}
		return &UpdateEstablishmentOutput{Body: e}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-establishment",
		Method:      http.MethodDelete,
		Path:        "/establishments/{id}",
		Summary:     "Delete an establishment",
		Tags:        []string{"Establishments"},
	}, func(ctx context.Context, input *DeleteEstablishmentInput) (*struct{}, error) {
		if err := svc.DeleteEstablishment(ctx, domain.ID(input.ID)); err != nil {
			return nil, serviceError(err, "establishment")
		}
		return nil, nil
	})
}
