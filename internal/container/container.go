package container

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/auth"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/session"
	"github.com/Kevolive/evaluapp-dashboard/internal/stats"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
)

type Container struct {
	ExamContainer    *exam.ExamContainer
	SessionContainer *session.SessionContainer
	UserContainer    *user.UserContainer
	StatsContainer   *stats.StatsContainer
}

func New() *Container {
	config.Init()

	client := api.NewClient(config.App)
	creadorID := auth.CreatorIDFromToken(config.App.Token, config.App.DefaultCreatorID)

	examContainer := exam.NewExamContainer(client, creadorID)
	sessionContainer := session.NewSessionContainer(client, examContainer.Service)
	userContainer := user.NewUserContainer(client)
	statsContainer := stats.NewStatsContainer(examContainer.Service)

	return &Container{
		ExamContainer:    examContainer,
		SessionContainer: sessionContainer,
		UserContainer:    userContainer,
		StatsContainer:   statsContainer,
	}
}
