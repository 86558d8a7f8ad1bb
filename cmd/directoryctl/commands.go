package main

import (
	"context"
	"fmt"
	"io"

	"directory/config"
	"directory/internal/domain/entity"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/infra/auth"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	sweepDeactivate = "deactivate"
	sweepReactivate = "reactivate"
	sweepAll        = "all"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <deactivate|reactivate|all>",
		Short: "Reconcile listing activation with subscriptions",
		Long: `Deactivate listings whose owner lost their subscription, reactivate
listings whose owner renewed, or both.`,
		ValidArgs: []string{sweepDeactivate, sweepReactivate, sweepAll},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var uc usecase.ReconciliationUsecase
			return runApp(cmd.Context(), func(ctx context.Context) error {
				return runSweep(ctx, cmd.OutOrStdout(), uc, args[0])
			}, &uc)
		},
	}
}

func newUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <user-id>",
		Short: "Reconcile the listings of a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid user id %q", args[0])
			}

			var uc usecase.ReconciliationUsecase
			return runApp(cmd.Context(), func(ctx context.Context) error {
				result, err := uc.ReconcileUser(ctx, userID)
				if err != nil {
					return errors.Wrap(err, "failed to reconcile user")
				}
				printSweep(cmd.OutOrStdout(), result)
				return nil
			}, &uc)
		},
	}
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "Regenerate the city/category page snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var uc usecase.SitemapUsecase
			return runApp(cmd.Context(), func(ctx context.Context) error {
				return runPages(ctx, cmd.OutOrStdout(), uc)
			}, &uc)
		},
	}
}

func newSitemapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Regenerate the sitemap entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var uc usecase.SitemapUsecase
			return runApp(cmd.Context(), func(ctx context.Context) error {
				return runSitemap(ctx, cmd.OutOrStdout(), uc)
			}, &uc)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the directory schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB
			return runApp(cmd.Context(), func(_ context.Context) error {
				if err := postgres.Migrate(db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			}, &db)
		},
	}
}

func newTokenCmd() *cobra.Command {
	var staff bool

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint an access token for local testing",
		Long: `Sign an access token with the configured JWT secret. Sessions are
normally issued by the forum, so this is only useful against local or
staging deployments sharing the secret.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to create token service")
			}
			return runToken(cmd.OutOrStdout(), tokens, args[0], staff)
		},
	}
	cmd.Flags().BoolVar(&staff, "staff", false, "grant the staff role")

	return cmd
}

func runSweep(ctx context.Context, out io.Writer, uc usecase.ReconciliationUsecase, which string) error {
	var jobs []func(context.Context) (*usecase.SweepResult, error)
	switch which {
	case sweepDeactivate:
		jobs = append(jobs, uc.DeactivateExpired)
	case sweepReactivate:
		jobs = append(jobs, uc.ReactivateRenewed)
	case sweepAll:
		jobs = append(jobs, uc.DeactivateExpired, uc.ReactivateRenewed)
	default:
		return errors.Errorf("unknown sweep %q", which)
	}

	var errs []error
	for _, job := range jobs {
		result, err := job(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		printSweep(out, result)
	}

	return errors.Join(errs...)
}

func printSweep(out io.Writer, result *usecase.SweepResult) {
	fmt.Fprintf(out, "%s: scanned=%d transitioned=%d skipped=%d failed=%d duration=%s\n",
		result.Job, result.Scanned, result.Transitioned, result.Skipped, result.Failed, result.Duration)
}

func runPages(ctx context.Context, out io.Writer, uc usecase.SitemapUsecase) error {
	n, err := uc.GenerateCityCategoryPages(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to generate city/category pages")
	}
	fmt.Fprintf(out, "Generated %d city/category pages\n", n)
	return nil
}

func runSitemap(ctx context.Context, out io.Writer, uc usecase.SitemapUsecase) error {
	n, err := uc.GenerateSitemapEntries(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to generate sitemap")
	}
	fmt.Fprintf(out, "Generated %d sitemap entries\n", n)
	return nil
}

func runToken(out io.Writer, tokens service.TokenService, rawUserID string, staff bool) error {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user id %q", rawUserID)
	}

	roles := entity.Roles{entity.RoleMember}
	if staff {
		roles = append(roles, entity.RoleStaff)
	}

	token, err := tokens.GenerateAccessToken(userID, roles.ToStrings())
	if err != nil {
		return errors.Wrap(err, "failed to sign token")
	}
	fmt.Fprintln(out, token)
	return nil
}
