package main

import (
	"os"

	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
	"github.com/ravikt/tuitiondesk/internal/server"
)

// @title TuitionDesk API
// @version 1.0
// @description Record-management backend for a tuition centre: student records, admission requests and fee payments over flat-file JSON storage.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the admin endpoints

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
