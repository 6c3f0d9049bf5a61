package main

import (
	"context"

	"github.com/locvowork/staff_attendance/internal/bootstrap"
	"github.com/locvowork/staff_attendance/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application", err)
		app.Close()
		panic(err)
	}

	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped", err)
	}
}
