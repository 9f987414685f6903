package user

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/api"
)

type UserContainer struct {
	Service Service
	Handler *Handler
}

func NewUserContainer(client *api.Client) *UserContainer {
	service := NewService(client)
	handler := NewHandler(service)

	return &UserContainer{
		Service: service,
		Handler: handler,
	}
}
