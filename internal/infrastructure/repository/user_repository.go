package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	store recordStore[entity.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db, store: newRecordStore[entity.User](db, "User")}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.store.byID(ctx, id, nil)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.store.first(ctx, preloadAccess, "email = ?", email)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Model(user).
		Select("name", "email", "password", "active").
		Updates(user).Error
	return r.store.wrap("update", err)
}

func (r *userRepository) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.store.byID(ctx, id, preloadAccess)
}

func (r *userRepository) AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		userID, roleID,
	).Error
	return r.store.wrap("assign role to", err)
}

func preloadAccess(db *gorm.DB) *gorm.DB {
	return db.Preload("Roles.Permissions").Preload("Vendor")
}

type roleRepository struct {
	db    *gorm.DB
	store recordStore[entity.Role]
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domainRepo.RoleRepository {
	return &roleRepository{db: db, store: newRecordStore[entity.Role](db, "Role")}
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	return r.store.first(ctx, func(db *gorm.DB) *gorm.DB { return db.Preload("Permissions") }, "name = ?", name)
}

func (r *roleRepository) List(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").Order("name ASC").Find(&roles).Error; err != nil {
		return nil, r.store.wrap("list", err)
	}
	return roles, nil
}
