package stats

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
)

type StatsContainer struct {
	Service Service
	Handler *Handler
}

func NewStatsContainer(examenes exam.Service) *StatsContainer {
	service := NewService(examenes)
	handler := NewHandler(service)

	return &StatsContainer{
		Service: service,
		Handler: handler,
	}
}
