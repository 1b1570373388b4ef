package repositories

import (
	"context"
	"errors"

	"lezzet.link/configs"
	"lezzet.link/configs/configslog"
	"lezzet.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository admin kullanıcıları için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, r.db)
}

// Create yeni bir admin kullanıcısı oluşturur.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.Username == "" {
		return errors.New("oluşturulacak kullanıcı geçerli değil")
	}
	return r.getDB(ctx).Create(user).Error
}

// FindByUsername kullanıcı adı ile kullanıcıyı bulur.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, errors.New("kullanıcı adı boş olamaz")
	}
	var user models.User
	err := r.getDB(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername kullanıcı adının kayıtlı olup olmadığını kontrol eder.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		configslog.Log.Error("UserRepository.ExistsByUsername: DB error", zap.String("username", username), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

var _ IUserRepository = (*UserRepository)(nil)
