package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"portal/config"
	"portal/internal/domain/lifecycle"
	"portal/internal/infra/auth"
	"portal/internal/infra/firebase"
	logs "portal/internal/infra/log"
	"portal/internal/infra/persistence"
	"portal/internal/usecase"
	"portal/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newInviteCmd() *cobra.Command {
	inviteCmd := &cobra.Command{
		Use:   "invite",
		Short: "Manage teacher invites",
	}

	inviteCmd.AddCommand(newInviteIssueCmd())

	return inviteCmd
}

func newInviteIssueCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a one-time teacher invite code for an email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			return issueInvite(cmd.Context(), cfg, email, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email the invite is bound to")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// issueInvite wires the configured store and hasher, issues one invite and prints its code.
func issueInvite(ctx context.Context, cfg *config.Config, email string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	options := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			func() context.Context { return ctx },
			persistence.New,
			auth.NewBcryptHasher,
			impl.NewInviteService,
		),
	}
	if cfg.Store != nil && cfg.Store.Provider == config.StoreFirestore {
		options = append(options, fx.Provide(firebase.NewApp))
	}

	var invites usecase.InviteUsecase
	var logger *slog.Logger
	app := fx.New(append(options, fx.Populate(&invites, &logger))...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build invite service")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start store")
	}
	defer func() {
		stopCtx, stop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stop()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to close store", slog.Any("error", err))
		}
	}()

	output, err := invites.Issue(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to issue invite")
	}

	fmt.Fprintf(out, "email:   %s\ncode:    %s\nexpires: %s\n", output.Email, output.Code, output.ExpiresAt.Format(time.RFC3339))

	return nil
}
