// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/joho/godotenv"
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/server"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting SoilHub Server v%s", nuts.GetVersion())

	// Load .env before viper reads the environment
	if err := godotenv.Load(); err != nil {
		nuts.L.Debugf("[Main] No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   _____       _ ____  __  __      __  ",
		"  / ___/____  (_) / / / / / /_  __/ /_ ",
		"  \\__ \\/ __ \\/ / / /_/ /_/ / / / / __ \\",
		" ___/ / /_/ / / / __  __  / /_/ / /_/ /",
		"/____/\\____/_/_/_/ /_/ /_/\\__,_/_.___/ ",
		".......................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
