package service

import (
	"context"

	"github.com/motorline/dealer-backend/internal/model"
)

// The supporting record kinds (comments, images, payments) have no
// uniqueness rules, no sequence numbers and no dependents; their
// services are plain pass-throughs kept for lifecycle ownership: all
// mutations of a kind go through its record service.

// CommentStore is the persistence capability CommentService consumes.
type CommentStore interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id uint64) (*model.Comment, error)
	List(ctx context.Context) ([]*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id uint64) (*model.Comment, error)
}

type CommentService struct{ comments CommentStore }

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) Create(ctx context.Context, c *model.Comment) error {
	return s.comments.Create(ctx, c)
}
func (s *CommentService) Get(ctx context.Context, id uint64) (*model.Comment, error) {
	return s.comments.GetByID(ctx, id)
}
func (s *CommentService) List(ctx context.Context) ([]*model.Comment, error) {
	return s.comments.List(ctx)
}
func (s *CommentService) Update(ctx context.Context, c *model.Comment) error {
	if _, err := s.comments.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.comments.Update(ctx, c)
}
func (s *CommentService) Delete(ctx context.Context, id uint64) (*model.Comment, error) {
	return s.comments.Delete(ctx, id)
}

// ImageStore is the persistence capability ImageService consumes.
type ImageStore interface {
	Create(ctx context.Context, img *model.Image) error
	GetByID(ctx context.Context, id uint64) (*model.Image, error)
	List(ctx context.Context) ([]*model.Image, error)
	Update(ctx context.Context, img *model.Image) error
	Delete(ctx context.Context, id uint64) (*model.Image, error)
}

type ImageService struct{ images ImageStore }

func NewImageService(images ImageStore) *ImageService {
	return &ImageService{images: images}
}

func (s *ImageService) Create(ctx context.Context, img *model.Image) error {
	return s.images.Create(ctx, img)
}
func (s *ImageService) Get(ctx context.Context, id uint64) (*model.Image, error) {
	return s.images.GetByID(ctx, id)
}
func (s *ImageService) List(ctx context.Context) ([]*model.Image, error) {
	return s.images.List(ctx)
}
func (s *ImageService) Update(ctx context.Context, img *model.Image) error {
	if _, err := s.images.GetByID(ctx, img.ID); err != nil {
		return err
	}
	return s.images.Update(ctx, img)
}
func (s *ImageService) Delete(ctx context.Context, id uint64) (*model.Image, error) {
	return s.images.Delete(ctx, id)
}

// PaymentStore is the persistence capability PaymentService consumes.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id uint64) (*model.Payment, error)
	List(ctx context.Context) ([]*model.Payment, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id uint64) (*model.Payment, error)
}

type PaymentService struct{ payments PaymentStore }

func NewPaymentService(payments PaymentStore) *PaymentService {
	return &PaymentService{payments: payments}
}

func (s *PaymentService) Create(ctx context.Context, p *model.Payment) error {
	return s.payments.Create(ctx, p)
}
func (s *PaymentService) Get(ctx context.Context, id uint64) (*model.Payment, error) {
	return s.payments.GetByID(ctx, id)
}
func (s *PaymentService) List(ctx context.Context) ([]*model.Payment, error) {
	return s.payments.List(ctx)
}
func (s *PaymentService) Update(ctx context.Context, p *model.Payment) error {
	if _, err := s.payments.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.payments.Update(ctx, p)
}
func (s *PaymentService) Delete(ctx context.Context, id uint64) (*model.Payment, error) {
	return s.payments.Delete(ctx, id)
}
