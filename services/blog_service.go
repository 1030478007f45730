package services

import (
	"errors"

	"techforum/helper"
	"techforum/models"
	"techforum/repositories"

	"gorm.io/gorm"
)

type BlogService interface {
	Create(req models.CreateBlogRequest, userID uint) (*models.Blog, error)
	GetApprovedPage(page models.Page) ([]models.Blog, int64, error)
	GetByID(id uint) (*models.Blog, error)
	GetByUser(userID uint) ([]models.Blog, error)
	GetApprovedTitles() ([]string, error)
	Update(id uint, req models.UpdateBlogRequest) (*models.Blog, error)
	Delete(id uint) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) Create(req models.CreateBlogRequest, userID uint) (*models.Blog, error) {
	blog := &models.Blog{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) GetApprovedPage(page models.Page) ([]models.Blog, int64, error) {
	return s.blogRepo.GetApprovedPage(page)
}

// GetByID also renders the markdown content for display.
func (s *blogService) GetByID(id uint) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	blog.HTML = helper.RenderMarkdown(blog.Content)
	return blog, nil
}

func (s *blogService) GetByUser(userID uint) ([]models.Blog, error) {
	return s.blogRepo.GetByUser(userID)
}

func (s *blogService) GetApprovedTitles() ([]string, error) {
	return s.blogRepo.GetApprovedTitles()
}

func (s *blogService) Update(id uint, req models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.IsApproved != nil {
		blog.IsApproved = *req.IsApproved
	}

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Delete(id uint) error {
	affected, err := s.blogRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAlreadyDeleted
	}
	return nil
}
