package main

import (
	"log"

	_ "job-finder-backend/docs"
	v1 "job-finder-backend/internal/delivery/http/v1"

	"job-finder-backend/internal/app"
)

// @title           Job Finder Auth API
// @version         1.0
// @description     Authentication service: sessions, registration, activation and password recovery for all roles.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	application, err := app.Bootstrap()
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer application.Close()

	router := v1.NewAuthRouter(application.Deps)
	app.Serve("auth", application.Config.AuthPort, router)
}
