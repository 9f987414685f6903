package exam

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/api"
)

type ExamContainer struct {
	Service Service
	Handler *Handler
}

func NewExamContainer(client *api.Client, creadorID int64) *ExamContainer {
	service := NewService(client, creadorID)
	handler := NewHandler(service)

	return &ExamContainer{
		Service: service,
		Handler: handler,
	}
}
