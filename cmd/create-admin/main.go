package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/database"
	"github.com/edusync/edusync-backend/internal/logger"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg)
	directoryService := service.NewDirectoryService(userRepo, authService, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Department Admin ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Department
	fmt.Printf("Enter Department (%s): ", model.DepartmentList())
	deptStr, _ := reader.ReadString('\n')
	department := model.Department(strings.TrimSpace(deptStr))
	if err := model.ValidateDepartment(department); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := directoryService.CreateAdmin(ctx, &model.CreateAdminRequest{
		Email:      email,
		Password:   password,
		Department: department,
		Name:       name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created for %s with ID: %s\n",
		admin.Name, admin.Email, admin.Department, admin.ID)
}
