package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings reúne la configuración del panel tomada del entorno.
type Settings struct {
	APIBaseURL       string
	Token            string
	ResultsPath      string
	Port             string
	DefaultCreatorID int64
}

var App Settings

const defaultResultsPath = "/resultados"

func Init() {
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		panic("API_BASE_URL es obligatorio")
	}

	App = Settings{
		APIBaseURL:       strings.TrimRight(base, "/"),
		Token:            os.Getenv("TOKEN"),
		ResultsPath:      defaultResultsPath,
		Port:             "8080",
		DefaultCreatorID: 1,
	}

	if p := os.Getenv("RESULTS_PATH"); p != "" {
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		App.ResultsPath = p
	}
	if port := os.Getenv("PORT"); port != "" {
		App.Port = port
	}
	if raw := os.Getenv("DEFAULT_CREATOR_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			App.DefaultCreatorID = id
		}
	}

	initLogger()
}
