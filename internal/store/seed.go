package store

import (
	"fmt"
	"time"

	"evcharge-dashboard-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SeedUser struct {
	ID       int64
	Username string
	Password string
	Role     string
	Name     string
}

// DemoUsers are the accounts the dashboard ships with.
var DemoUsers = []SeedUser{
	{ID: 1, Username: "stationUser", Password: "5678", Role: models.RoleStation, Name: "Station User"},
	{ID: 2, Username: "companyAdmin", Password: "1234", Role: models.RoleCompany, Name: "Company Admin"},
}

// EnsureSeedUsers inserts any missing demo account and persists. It is
// idempotent: accounts that already exist are left untouched.
func EnsureSeedUsers(s *Store) error {
	return s.Update(func(doc *Document) error {
		existing := make(map[string]struct{}, len(doc.Users))
		for _, u := range doc.Users {
			existing[u.Username] = struct{}{}
		}

		now := time.Now().UTC()
		for _, seed := range DemoUsers {
			if _, ok := existing[seed.Username]; ok {
				continue
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash seed password: %w", err)
			}

			doc.Users = append(doc.Users, models.User{
				ID:        seed.ID,
				Username:  seed.Username,
				Password:  string(hash),
				Role:      seed.Role,
				Name:      seed.Name,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		return nil
	})
}
