package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/database"
	"github.com/edusync/edusync-backend/internal/logger"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/service"
)

type demoUser struct {
	Email      string
	Password   string
	Role       model.Role
	Department model.Department
	Name       string
	ErpID      string
}

var demoAdmins = []demoUser{
	{Email: "hod.cse@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentCSE, Name: "HOD CSE"},
	{Email: "hod.cse_aiml@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentCSEAIML, Name: "HOD CSE (AIML)"},
	{Email: "hod.cse_aids@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentCSEAIDS, Name: "HOD CSE (AIDS)"},
	{Email: "hod.cse_ds@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentCSEDS, Name: "HOD CSE (DS)"},
	{Email: "hod.ece@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentECE, Name: "HOD ECE"},
	{Email: "hod.hs@edusync.com", Password: "Admin@123", Role: model.RoleAdmin, Department: model.DepartmentHS, Name: "HOD HS"},
}

var demoFaculty = []demoUser{
	{Email: "faculty1@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSE, Name: "Faculty One", ErpID: "ERP001"},
	{Email: "faculty2@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEAIML, Name: "Faculty Two", ErpID: "ERP002"},
	{Email: "faculty3@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEAIDS, Name: "Faculty Three", ErpID: "ERP003"},
	{Email: "faculty4@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEDS, Name: "Faculty Four", ErpID: "ERP004"},
	{Email: "faculty5@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentECE, Name: "Faculty Five", ErpID: "ERP005"},
	{Email: "faculty6@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentHS, Name: "Faculty Six", ErpID: "ERP006"},
	{Email: "faculty7@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSE, Name: "Faculty Seven", ErpID: "ERP007"},
	{Email: "faculty8@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEAIML, Name: "Faculty Eight", ErpID: "ERP008"},
	{Email: "faculty9@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEAIDS, Name: "Faculty Nine", ErpID: "ERP009"},
	{Email: "faculty10@edusync.com", Password: "Faculty@123", Role: model.RoleFaculty, Department: model.DepartmentCSEDS, Name: "Faculty Ten", ErpID: "ERP010"},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg)

	fmt.Printf("=== Seeding %d demo accounts ===\n\n", len(demoAdmins)+len(demoFaculty))

	created, skipped := 0, 0
	for _, u := range append(append([]demoUser{}, demoAdmins...), demoFaculty...) {
		// Safe to re-run: existing accounts are left untouched.
		if _, err := userRepo.GetByEmail(ctx, u.Email); err == nil {
			fmt.Printf("  skip   %s (already exists)\n", u.Email)
			skipped++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatal().Err(err).Str("email", u.Email).Msg("Failed to check existing user")
		}

		hash, err := authService.HashPassword(u.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}

		user := &model.User{
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			Department:   u.Department,
			ErpID:        u.ErpID,
			Approved:     true, // demo accounts are ready to log in
			PasswordHash: hash,
		}
		if err := userRepo.Upsert(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("Failed to seed user")
		}

		fmt.Printf("  create %s → %s %s\n", u.Email, u.Role, u.Department)
		created++
	}

	fmt.Printf("\nDone: %d created, %d skipped\n", created, skipped)
	fmt.Println("Admin password: Admin@123 / Faculty password: Faculty@123")
}
