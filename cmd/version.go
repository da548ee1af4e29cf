package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/learngrid/learngrid/internal/config"
	"github.com/learngrid/learngrid/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Long: `Print the current version.

With --check the latest GitHub release is compared against it. The
repository is taken from --repo, LEARNGRID_RELEASE_REPO or release_repo
in the config file, defaulting to ` + config.DefaultReleaseRepo + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "learngrid", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		repo, err := releaseRepo(cmd)
		if err != nil {
			return err
		}
		owner, name, err := selfupdate.ParseRepo(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(15*time.Second), selfupdate.WithRepo(owner, name))
		return checkForUpdate(ctx, checker, version, out)
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	versionCmd.Flags().String("repo", "", "GitHub repository (owner/name) to check for releases")
}

// releaseRepo layers --repo over the configured release repository.
func releaseRepo(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("repo") {
		return cmd.Flags().GetString("repo")
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	return cfg.ReleaseRepo, nil
}

func checkForUpdate(ctx context.Context, checker *selfupdate.Checker, current string, out io.Writer) error {
	res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: current})
	if errors.Is(err, selfupdate.ErrDevBuild) {
		fmt.Fprintln(out, "Development build; skipping update check.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("update check: %w", err)
	}

	if res.UpdateAvailable {
		fmt.Fprintf(out, "A newer version is available: %s (you have %s)\n", res.LatestVersion, res.CurrentVersion)
		if res.ReleaseURL != "" {
			fmt.Fprintln(out, res.ReleaseURL)
		}
		return nil
	}
	fmt.Fprintln(out, "You are running the latest version.")
	return nil
}
