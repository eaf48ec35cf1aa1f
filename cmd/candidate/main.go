package main

import (
	"log"

	_ "job-finder-backend/docs"
	v1 "job-finder-backend/internal/delivery/http/v1"

	"job-finder-backend/internal/app"
)

// @title           Job Finder Candidate API
// @version         1.0
// @description     Candidate service: profile, account operations and the job board.
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

	router := v1.NewCandidateRouter(application.Deps)
	app.Serve("candidate", application.Config.CandidatePort, router)
}
