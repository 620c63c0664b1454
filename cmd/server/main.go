package main

import (
	"log"

	_ "studytask/docs"
	"studytask/internal/config"
	"studytask/internal/server"
)

// @title           Study Task API
// @version         1.0
// @description     API for managing study tasks, subjects, notes, study sessions and the due-date calendar.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
