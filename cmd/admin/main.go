package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"grover-graphql/internal/config"
	"grover-graphql/internal/model"
	"grover-graphql/internal/repository"
	"grover-graphql/internal/seed"
	"grover-graphql/pkg/database"
	"grover-graphql/pkg/logger"
	"grover-graphql/pkg/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Maintenance tasks for the grover database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newSetPasswordCmd())
	return root
}

// withDB loads config, opens the database and hands both to fn.
func withDB(ctx context.Context, fn func(ctx context.Context, db *gorm.DB, log *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.Database(), log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	return fn(logger.WithContext(ctx, log), db, log)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(_ context.Context, db *gorm.DB, log *zap.Logger) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				log.Info("schema migrated")
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog and a demo user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				return seed.Run(ctx, db, opts, log)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Email, "email", "demo@example.com", "demo user email")
	cmd.Flags().StringVar(&opts.Password, "password", "grover-demo", "demo user password")
	return cmd
}

type setPasswordInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func newSetPasswordCmd() *cobra.Command {
	var in setPasswordInput
	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Replace a user's password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := validator.ValidateStruct(in); len(errs) > 0 {
				return errs[0]
			}
			return withDB(cmd.Context(), func(_ context.Context, db *gorm.DB, log *zap.Logger) error {
				users := repository.NewUserRepo(db)
				user, err := users.FindByEmail(in.Email)
				if err != nil {
					return errors.Wrapf(err, "user %s", in.Email)
				}

				var hashed model.User
				if err := hashed.SetPassword(in.Password); err != nil {
					return errors.Wrap(err, "hash password")
				}
				if err := users.UpdatePassword(user.ID, hashed.Password); err != nil {
					return errors.Wrap(err, "update password")
				}

				log.Info("password updated", zap.String("email", user.Email))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "user email")
	cmd.Flags().StringVar(&in.Password, "password", "", "new password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
