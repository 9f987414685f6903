package stats

import (
	"context"
	"sort"

	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
)

type Service interface {
	ExamenesPorMes(ctx context.Context) (*EstadisticasResponse, error)
}

type service struct {
	examenes exam.Service
}

func NewService(examenes exam.Service) Service {
	return &service{examenes: examenes}
}

// ExamenesPorMes agrupa los exámenes por el mes de su fecha de fin. Los
// exámenes sin fecha de fin se omiten del conteo.
func (s *service) ExamenesPorMes(ctx context.Context) (*EstadisticasResponse, error) {
	examenes, err := s.examenes.Listar(ctx)
	if err != nil {
		return nil, err
	}

	conteo := make(map[string]*ConteoMes)
	total := 0
	for _, e := range examenes {
		if e.FechaFin.IsZero() {
			continue
		}
		clave := e.FechaFin.Format("2006-01")
		mes, ok := conteo[clave]
		if !ok {
			mes = &ConteoMes{
				Clave: clave,
				Mes:   e.FechaFin.Format("January 2006"),
			}
			conteo[clave] = mes
		}
		mes.Examenes++
		total++
	}

	respuesta := &EstadisticasResponse{PorMes: make([]ConteoMes, 0, len(conteo)), Total: total}
	for _, mes := range conteo {
		respuesta.PorMes = append(respuesta.PorMes, *mes)
	}
	sort.Slice(respuesta.PorMes, func(i, j int) bool {
		return respuesta.PorMes[i].Clave < respuesta.PorMes[j].Clave
	})
	return respuesta, nil
}
