package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/company-site-api/internal/auth"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

// adminCmd groups admin account maintenance
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account with a bcrypt-hashed password.

The password is read from --password or, when omitted, from the first line of stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, db, log, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		admins := repository.NewAdminRepo(db)
		ctx := context.Background()

		existing, err := admins.GetByUsername(ctx, adminUsername)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("admin %q already exists", adminUsername)
		}

		hash, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost).Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		admin := &models.Admin{Username: adminUsername, Email: adminEmail, PasswordHash: hash}
		if err := admins.Create(ctx, admin); err != nil {
			return err
		}

		log.Info().Int64("admin_id", admin.ID).Str("username", admin.Username).Msg("Admin created")
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", admin.Username, admin.ID)
		return nil
	},
}

var adminPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Rotate an admin password",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, db, log, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		admins := repository.NewAdminRepo(db)
		ctx := context.Background()

		admin, err := admins.GetByUsername(ctx, adminUsername)
		if err != nil {
			return err
		}
		if admin == nil {
			return fmt.Errorf("admin %q not found", adminUsername)
		}

		hash, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost).Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := admins.UpdatePassword(ctx, admin.ID, hash); err != nil {
			return err
		}

		log.Info().Int64("admin_id", admin.ID).Msg("Admin password rotated")
		fmt.Fprintf(cmd.OutOrStdout(), "password updated for %q\n", admin.Username)
		return nil
	},
}

// readPassword prefers --password and falls back to one line of input
func readPassword(in io.Reader) (string, error) {
	password := adminPassword
	if password == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		return "", errors.New("password must be at most 72 bytes")
	}
	return password, nil
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminCreateCmd, adminPasswdCmd)

	adminCreateCmd.Flags().StringVar(&adminUsername, "username", "", "Admin username (required)")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (default: read from stdin)")
	_ = adminCreateCmd.MarkFlagRequired("username")

	adminPasswdCmd.Flags().StringVar(&adminUsername, "username", "", "Admin username (required)")
	adminPasswdCmd.Flags().StringVar(&adminPassword, "password", "", "New password (default: read from stdin)")
	_ = adminPasswdCmd.MarkFlagRequired("username")
}
