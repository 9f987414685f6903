package session

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
)

type SessionContainer struct {
	Service Service
	Handler *Handler
}

func NewSessionContainer(client *api.Client, examenes exam.Service) *SessionContainer {
	store := NewStore()
	service := NewService(store, examenes, client)
	handler := NewHandler(service)

	return &SessionContainer{
		Service: service,
		Handler: handler,
	}
}
