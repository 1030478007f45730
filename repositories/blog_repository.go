package repositories

import (
	"techforum/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(blog *models.Blog) error
	GetApprovedPage(page models.Page) ([]models.Blog, int64, error)
	GetByID(id uint) (*models.Blog, error)
	GetByUser(userID uint) ([]models.Blog, error)
	GetApprovedTitles() ([]string, error)
	Update(blog *models.Blog) error
	Delete(id uint) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// GetApprovedPage lists public-visible blogs only, newest first, with the
// owner joined in.
func (r *blogRepository) GetApprovedPage(page models.Page) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	approved := r.db.Model(&models.Blog{}).Where("is_approved = ?", true)
	if err := approved.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("is_approved = ?", true).
		Order("created_at desc").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) GetByUser(userID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Preload("User").Where("user_id = ?", userID).Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) GetApprovedTitles() ([]string, error) {
	var titles []string
	err := r.db.Model(&models.Blog{}).
		Where("is_approved = ?", true).
		Pluck("title", &titles).Error
	return titles, err
}

func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *blogRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Blog{}, id)
	return res.RowsAffected, res.Error
}
