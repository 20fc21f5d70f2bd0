package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/studentplanner/core/cmd/api/commands"
)

// @title Student Planner API
// @version 1.0
// @description Personal student planner with tasks, custom holidays and official holiday lookups

// @host localhost:8080
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "studentplanner",
		Short: "Student Planner API Server",
		Long:  `Student Planner is a personal planning service with a monthly calendar, tasks with deadlines, custom holidays and official holidays fetched per year.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
