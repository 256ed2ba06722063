package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/metrics"
	"github.com/Dan9191/realty-service/internal/repository"
	"github.com/Dan9191/realty-service/internal/service"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type agentCreateCmd struct {
	email    string
	name     string
	password string
}

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents who can read captured leads",
	}
	cmd.AddCommand(newAgentCreateCmd())
	return cmd
}

func newAgentCreateCmd() *cobra.Command {
	ac := &agentCreateCmd{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent login",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.email, "email", "", "Agent email, used to log in")
	cmd.Flags().StringVar(&ac.name, "name", "", "Display name")
	cmd.Flags().StringVar(&ac.password, "password", "", "Initial password")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (ac *agentCreateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	if err := repository.RunMigrations(db, cfg.MigrationsPath); err != nil {
		return err
	}

	// only the store is needed to create an agent
	svc := service.NewService(repository.NewRepository(db), nil, nil, nil, metrics.NewCollector(), logger, cfg)
	agent, err := svc.CreateAgent(ctx, ac.email, ac.name, ac.password)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), agent)
}
