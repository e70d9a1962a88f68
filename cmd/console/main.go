package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/console"
	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

func main() {
	// The console is a quiet surface; service logs would garble the
	// prompt, so they are discarded.
	taskService := services.NewTaskService(zerolog.Nop(), storage.NewMemoryStore())

	err := console.New(taskService, os.Stdin, os.Stdout).Run(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
