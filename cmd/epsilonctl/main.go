// cmd/epsilonctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/campusclubs/epsilon/internal/auth"
	"github.com/campusclubs/epsilon/internal/config"
	"github.com/campusclubs/epsilon/internal/database"
	"github.com/campusclubs/epsilon/internal/model"
	"github.com/campusclubs/epsilon/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var version = "dev"

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Email address for the admin account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the admin account")
	createAdminCmd.Flags().StringVar(&adminFirstName, "first-name", "Admin", "First name for the admin account")
	createAdminCmd.Flags().StringVar(&adminLastName, "last-name", "", "Last name for the admin account")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "epsilonctl",
	Short: "epsilonctl manages the Epsilon scheduling backend",
	Long:  `epsilonctl runs schema migrations and administrative tasks for the Epsilon meeting and room booking backend.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migrations applied")
	},
}

var (
	adminEmail     string
	adminPassword  string
	adminFirstName string
	adminLastName  string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an active admin account",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		hasher := auth.NewPasswordHasher()
		hash, err := hasher.Hash(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		users := repository.NewUserRepository(db)
		user := &model.User{
			Email:        adminEmail,
			FirstName:    adminFirstName,
			LastName:     adminLastName,
			PasswordHash: hash,
			Status:       model.StatusActive,
			Role:         model.RoleAdmin,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}

		fmt.Printf("Created admin %s (%s)\n", user.Email, user.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the epsilonctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("epsilonctl %s\n", version)
	},
}

func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
