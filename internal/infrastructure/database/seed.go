package database

import (
	"errors"
	"fmt"

	"github.com/sangkips/gestao-api/internal/config"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// rolePermissions is the seeded access matrix
var rolePermissions = map[string][]string{
	entity.RoleAdmin: {
		entity.PermViewDashboard,
		entity.PermManageClients,
		entity.PermManageCatalog,
		entity.PermManageSales,
		entity.PermManageSchedule,
		entity.PermManageFinancial,
		entity.PermManageVendors,
	},
	entity.RoleVendor: {
		entity.PermViewDashboard,
		entity.PermManageClients,
		entity.PermManageSales,
		entity.PermManageSchedule,
	},
}

// SeedDefaultData seeds permissions, roles and the optional admin user.
// Running it twice is a no-op.
func SeedDefaultData(db *gorm.DB, seed config.SeedConfig, log *zap.Logger) error {
	log.Info("seeding default data")

	permissions := make(map[string]entity.Permission)
	for _, names := range rolePermissions {
		for _, name := range names {
			if _, ok := permissions[name]; ok {
				continue
			}
			perm := entity.Permission{Name: name}
			if err := db.Where(entity.Permission{Name: name}).FirstOrCreate(&perm).Error; err != nil {
				return fmt.Errorf("seed permission %s: %w", name, err)
			}
			permissions[name] = perm
		}
	}

	for roleName, names := range rolePermissions {
		role := entity.Role{Name: roleName}
		if err := db.Where(entity.Role{Name: roleName}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", roleName, err)
		}
		perms := make([]entity.Permission, 0, len(names))
		for _, name := range names {
			perms = append(perms, permissions[name])
		}
		if err := db.Model(&role).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("sync permissions for %s: %w", roleName, err)
		}
	}

	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		log.Info("default data seeded, no admin configured")
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", seed.AdminEmail).First(&existing).Error
	if err == nil {
		log.Info("admin user already exists", zap.String("email", seed.AdminEmail))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hashed, err := utils.HashPassword(seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}

	admin := entity.User{
		Name:     seed.AdminName,
		Email:    seed.AdminEmail,
		Password: hashed,
		Active:   true,
		Roles:    []entity.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Info("admin user created", zap.String("email", seed.AdminEmail))
	return nil
}
