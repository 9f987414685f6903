package user

import (
	"context"
	"net/http"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
)

type Service interface {
	Listar(ctx context.Context) ([]Usuario, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) Listar(ctx context.Context) ([]Usuario, error) {
	var usuarios []Usuario
	if _, apiErr := s.client.Do(ctx, http.MethodGet, api.EndpointUsuarios, api.Options{}, &usuarios); apiErr != nil {
		return nil, apiErr
	}
	return usuarios, nil
}
