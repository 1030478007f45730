package repositories

import (
	"techforum/models"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(doc *models.Document) error
	GetApprovedPage(page models.Page) ([]models.Document, int64, error)
	GetByID(id uint) (*models.Document, error)
	GetByUser(userID uint) ([]models.Document, error)
	Update(doc *models.Document) error
	Delete(id uint) (int64, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) GetApprovedPage(page models.Page) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	if err := r.db.Model(&models.Document{}).Where("is_approved = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("is_approved = ?", true).
		Order("created_at desc").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&docs).Error
	return docs, total, err
}

func (r *documentRepository) GetByID(id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.Preload("User").First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) GetByUser(userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Preload("User").Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (r *documentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

func (r *documentRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Document{}, id)
	return res.RowsAffected, res.Error
}
