package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/utils"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type authMocks struct {
	users   *mocks.MockUserRepository
	roles   *mocks.MockRoleRepository
	vendors *mocks.MockVendorRepository
}

func newAuthService(ctrl *gomock.Controller) (*AuthService, *utils.JWTManager, authMocks) {
	m := authMocks{
		users:   mocks.NewMockUserRepository(ctrl),
		roles:   mocks.NewMockRoleRepository(ctrl),
		vendors: mocks.NewMockVendorRepository(ctrl),
	}
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	return NewAuthService(m.users, m.roles, m.vendors, jwtManager, zap.NewNop()), jwtManager, m
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("segredo123")
	if err != nil {
		t.Fatal(err)
	}
	vendor := &entity.Vendor{ID: uuid.New()}
	user := &entity.User{
		ID: uuid.New(), Email: "ana@loja.com.br", Password: hash, Active: true,
		Roles:  []entity.Role{{Name: entity.RoleVendor}},
		Vendor: vendor,
	}

	t.Run("issues tokens carrying the vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, jwtManager, m := newAuthService(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@loja.com.br").Return(user, nil)
		m.users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)

		out, err := svc.Login(context.Background(), &LoginInput{Email: " Ana@Loja.com.br ", Password: "segredo123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
		if err != nil {
			t.Fatalf("access token invalid: %v", err)
		}
		if claims.VendorID == nil || *claims.VendorID != vendor.ID {
			t.Fatalf("vendor claim = %v", claims.VendorID)
		}
		if out.ExpiresIn != 900 {
			t.Fatalf("expires in = %d", out.ExpiresIn)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, m := newAuthService(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@loja.com.br").Return(user, nil)

		_, err := svc.Login(context.Background(), &LoginInput{Email: "ana@loja.com.br", Password: "errada"})
		if !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, m := newAuthService(ctrl)

		inactive := *user
		inactive.Active = false
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@loja.com.br").Return(&inactive, nil)

		_, err := svc.Login(context.Background(), &LoginInput{Email: "ana@loja.com.br", Password: "segredo123"})
		expectCode(t, err, http.StatusUnauthorized)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates user, role link and vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, m := newAuthService(ctrl)

		role := &entity.Role{ID: 2, Name: entity.RoleVendor}
		var created *entity.User
		m.users.EXPECT().GetByEmail(gomock.Any(), "bruno@loja.com.br").Return(nil, nil)
		m.roles.EXPECT().GetByName(gomock.Any(), entity.RoleVendor).Return(role, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *entity.User) error {
				u.ID = uuid.New()
				created = u
				return nil
			},
		)
		m.users.EXPECT().AssignRole(gomock.Any(), gomock.Any(), uint(2)).Return(nil)
		m.vendors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v *entity.Vendor) error {
				if v.UserID == nil || *v.UserID != created.ID || v.Phone != "11 98888-7777" {
					t.Fatalf("unexpected vendor: %+v", v)
				}
				v.ID = uuid.New()
				created.Vendor = v
				return nil
			},
		)
		m.users.EXPECT().GetWithRoles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*entity.User, error) {
				created.Roles = []entity.Role{*role}
				return created, nil
			},
		)

		out, err := svc.Register(context.Background(), &RegisterInput{
			Name: "Bruno", Email: "Bruno@loja.com.br", Password: "segredo123", Phone: "11 98888-7777",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Fatal("expected a token pair")
		}
		if created.Password == "segredo123" {
			t.Fatal("password must be hashed")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, m := newAuthService(ctrl)

		m.users.EXPECT().GetByEmail(gomock.Any(), "bruno@loja.com.br").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := svc.Register(context.Background(), &RegisterInput{Name: "Bruno", Email: "bruno@loja.com.br", Password: "x"})
		expectCode(t, err, http.StatusConflict)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, jwtManager, m := newAuthService(ctrl)

	user := &entity.User{ID: uuid.New(), Active: true}
	refresh, err := jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	m.users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)

	if _, err := svc.RefreshToken(context.Background(), refresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, err := jwtManager.GenerateAccessToken(utils.Identity{UserID: user.ID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.RefreshToken(context.Background(), access)
	expectCode(t, err, http.StatusUnauthorized)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, m := newAuthService(ctrl)

	hash, _ := utils.HashPassword("antiga123")
	user := &entity.User{ID: uuid.New(), Password: hash}
	m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(2)
	m.users.EXPECT().Update(gomock.Any(), user).Return(nil)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{CurrentPassword: "errada", NewPassword: "nova12345"})
	expectField(t, err, "current_password")

	if err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{CurrentPassword: "antiga123", NewPassword: "nova12345"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utils.CheckPasswordHash("nova12345", user.Password) {
		t.Fatal("password not updated")
	}
}
