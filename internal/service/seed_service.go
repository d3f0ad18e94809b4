package service

import (
	"context"

	"doctor-appointment-system/config"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService provisions the data the system cannot run without: the
// fixed role set and the bootstrap admin account.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	db        *gorm.DB
	log       *logrus.Logger
	cfg       *config.Config
	roleRepo  repository.RoleRepository
	userRepo  repository.UserRepository
	adminRepo repository.AdminProfileRepository
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	cfg *config.Config,
	roleRepo repository.RoleRepository,
	userRepo repository.UserRepository,
	adminRepo repository.AdminProfileRepository,
) SeedService {
	return &seedService{
		db:        db,
		log:       log,
		cfg:       cfg,
		roleRepo:  roleRepo,
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

func (s *seedService) Seed(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx)
}

// seedRoles ensures every fixed role exists. The migration normally
// handles this; running it again is a no-op.
func (s *seedService) seedRoles(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	for id, name := range entity.RoleNames {
		existing, err := s.roleRepo.FindByName(db, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.roleRepo.Save(db, &entity.Role{ID: id, RoleName: name}); err != nil {
			return err
		}
		s.log.Infof("Seeded role %s", name)
	}
	return nil
}

// seedAdmin creates the bootstrap admin account from configuration when
// no user with the configured email exists yet.
func (s *seedService) seedAdmin(ctx context.Context) error {
	if s.cfg.Seed.AdminEmail == "" || s.cfg.Seed.AdminPassword == "" {
		return nil
	}

	existing, err := s.userRepo.FindByEmail(s.db.WithContext(ctx), s.cfg.Seed.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:     s.cfg.Seed.AdminEmail,
		Password:  string(hashedPassword),
		FirstName: s.cfg.Seed.AdminFirstName,
		LastName:  s.cfg.Seed.AdminLastName,
		RoleID:    entity.RoleIDAdmin,
		IsActive:  true,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		return err
	}

	profile := &entity.AdminProfile{
		UserID:       user.ID,
		IsSuperAdmin: true,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(tx, profile); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.log.Infof("Seeded admin account %s", user.Email)
	return nil
}
