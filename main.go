package main

import (
	"log"

	"workout-server/confs"
	"workout-server/db"
	"workout-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	conf := confs.FromEnv()

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, conf)
	srv.Start()
}
