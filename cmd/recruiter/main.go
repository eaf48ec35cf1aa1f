package main

import (
	"log"

	_ "job-finder-backend/docs"
	v1 "job-finder-backend/internal/delivery/http/v1"

	"job-finder-backend/internal/app"
)

// @title           Job Finder Recruiter API
// @version         1.0
// @description     Recruiter service: profile, account operations, job management and applications.
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

	router := v1.NewRecruiterRouter(application.Deps)
	app.Serve("recruiter", application.Config.RecruiterPort, router)
}
