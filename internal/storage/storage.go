package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/models"
)

// Service bundles one Store per dashboard resource on top of a shared
// gorm connection. Redis is held here for the session layer.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client

	Categories  Store[models.Category]
	Roles       Store[models.Role]
	Users       Store[models.User]
	Complaints  Store[models.Complaint]
	Complainers Store[models.Complainer]

	log *zap.SugaredLogger
}

// NewService constructs the per-resource stores with their search columns.
func NewService(db *gorm.DB, rdb *redis.Client, log *zap.SugaredLogger) *Service {
	return &Service{
		DB:          db,
		Redis:       rdb,
		Categories:  NewEntityStore[models.Category](db, log, "name"),
		Roles:       NewEntityStore[models.Role](db, log, "name"),
		Users:       NewEntityStore[models.User](db, log, "first_name", "last_name", "email"),
		Complaints:  NewEntityStore[models.Complaint](db, log, "title", "message"),
		Complainers: NewEntityStore[models.Complainer](db, log, "first_name", "last_name", "email"),
		log:         log,
	}
}

// AutoMigrate creates or updates the tables for every managed entity.
func (s *Service) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.Category{},
		&models.Role{},
		&models.User{},
		&models.Complaint{},
		&models.Complainer{},
	)
}

// FindUserByEmail is the login lookup. Email has a unique index, so at
// most one row matches.
func (s *Service) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &user, nil
}

// Stats aggregates the complaint counts behind the dashboard charts.
func (s *Service) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	db := s.DB.WithContext(ctx)

	if err := db.Model(&models.Complaint{}).Count(&stats.TotalComplaints).Error; err != nil {
		return nil, wrapDBError(err)
	}
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, wrapDBError(err)
	}
	if err := db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, wrapDBError(err)
	}

	err := db.Model(&models.Complaint{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&stats.ByStatus).Error
	if err != nil {
		return nil, wrapDBError(err)
	}

	err = db.Model(&models.Complaint{}).
		Select("priority, count(*) as count").
		Group("priority").
		Scan(&stats.ByPriority).Error
	if err != nil {
		return nil, wrapDBError(err)
	}

	err = db.Model(&models.Complaint{}).
		Select("complaints.category_id, categories.name, count(*) as count").
		Joins("LEFT JOIN categories ON categories.id = complaints.category_id").
		Group("complaints.category_id, categories.name").
		Order("count DESC").
		Scan(&stats.ByCategory).Error
	if err != nil {
		return nil, wrapDBError(err)
	}

	return stats, nil
}
