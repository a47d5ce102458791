// Command seed provisions a demo roster so the API is usable right
// after a fresh migration. Running it twice is safe; existing accounts
// are skipped.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/config"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Username      string
	FullName      string
	Email         string
	Password      string
	Role          user.Role
	EmployeeID    string
	JoinedDaysAgo int
	JobTitle      string
	Department    string
	ContactNumber string
}

var roster = []seedUser{
	{"admin", "Admin User", "admin@example.com", "adminpassword123", user.RoleAdmin, "A001", 30, "System Administrator", "IT", "+91 9876543210"},
	{"hr", "Harriet Ross", "hr@example.com", "hrpassword123", user.RoleHR, "H001", 20, "HR Manager", "Human Resources", "+91 9876543211"},
	{"emily.jones", "Emily Jones", "emily.jones@example.com", "password123", user.RoleEmployee, "E002", 5, "Frontend Developer", "Engineering", "+91 9123456780"},
	{"david.chen", "David Chen", "david.chen@example.com", "password123", user.RoleEmployee, "E003", 15, "Backend Developer", "Engineering", "+91 9123456781"},
	{"sophia.patel", "Sophia Patel", "sophia.patel@example.com", "password123", user.RoleEmployee, "E004", 4, "Marketing Specialist", "Marketing", "+91 9123456782"},
	{"ben.carter", "Ben Carter", "ben.carter@example.com", "password123", user.RoleEmployee, "E005", 60, "Project Manager", "Product", "+91 9123456783"},
	{"olivia.wong", "Olivia Wong", "olivia.wong@example.com", "password123", user.RoleEmployee, "E006", 90, "Content Strategist", "Marketing", "+91 9123456784"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	for _, s := range roster {
		exists, err := userRepo.ExistsByUsernameOrEmployeeID(ctx, s.Username, s.EmployeeID)
		if err != nil {
			log.Fatal("Failed to check account: ", err)
		}
		if exists {
			fmt.Printf("-> %s already exists, skipping\n", s.Username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password: ", err)
		}

		department := s.Department
		jobTitle := s.JobTitle
		contactNumber := s.ContactNumber

		_, err = userRepo.Create(ctx, user.User{
			Username:      s.Username,
			EmployeeID:    s.EmployeeID,
			FullName:      s.FullName,
			Email:         s.Email,
			PasswordHash:  string(hash),
			Role:          s.Role,
			Department:    &department,
			JobTitle:      &jobTitle,
			ContactNumber: &contactNumber,
			JoinDate:      time.Now().UTC().AddDate(0, 0, -s.JoinedDaysAgo),
		})
		if err != nil {
			log.Fatal("Failed to create account: ", err)
		}

		fmt.Printf("created %s (%s)\n", s.Username, s.EmployeeID)
	}

	fmt.Println("Seed complete.")
}
