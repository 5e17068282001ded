package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/authz"
	"fitcore/pkg/utils"
)

type ArticleServiceInterface interface {
	List(ctx context.Context, page, limit int) ([]db_models.Article, int64, error)
	Get(ctx context.Context, id string) (*db_models.Article, error)
	Create(ctx context.Context, authorID uuid.UUID, req request_models.UpsertArticleRequest) (*db_models.Article, error)
	Update(ctx context.Context, id string, req request_models.UpsertArticleRequest) (*db_models.Article, error)
	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, articleID string, authorID uuid.UUID, req request_models.CreateCommentRequest) (*db_models.Comment, error)
	ListComments(ctx context.Context, articleID string, page, limit int) ([]db_models.Comment, int64, error)
	// DeleteComment allows the comment's author or an admin; anyone else gets
	// utils.ErrNotOwner.
	DeleteComment(ctx context.Context, commentID string, actorID uuid.UUID, actorRole authz.Role) error
}

type ArticleService struct {
	articleRepo repositories.ArticleRepository
	logger      *zap.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, logger *zap.Logger) ArticleServiceInterface {
	return &ArticleService{articleRepo: articleRepo, logger: logger}
}

func (s *ArticleService) List(ctx context.Context, page, limit int) ([]db_models.Article, int64, error) {
	articles, total, err := s.articleRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return articles, total, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*db_models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, authorID uuid.UUID, req request_models.UpsertArticleRequest) (*db_models.Article, error) {
	article := &db_models.Article{
		AuthorID:  authorID,
		Title:     req.Title,
		Body:      req.Body,
		CoverPath: req.CoverPath,
	}
	if err := s.articleRepo.Insert(ctx, article); err != nil {
		s.logger.Error("article create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, req request_models.UpsertArticleRequest) (*db_models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrArticleNotFound
	}

	article.Title = req.Title
	article.Body = req.Body
	if req.CoverPath != "" {
		article.CoverPath = req.CoverPath
	}
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if article == nil {
		return utils.ErrArticleNotFound
	}
	return s.articleRepo.Delete(ctx, id)
}

func (s *ArticleService) AddComment(ctx context.Context, articleID string, authorID uuid.UUID, req request_models.CreateCommentRequest) (*db_models.Comment, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrArticleNotFound
	}

	comment := &db_models.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		Body:      req.Body,
	}
	if err := s.articleRepo.InsertComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comment, nil
}

func (s *ArticleService) ListComments(ctx context.Context, articleID string, page, limit int) ([]db_models.Comment, int64, error) {
	id, err := uuid.Parse(articleID)
	if err != nil {
		return nil, 0, utils.ErrArticleNotFound
	}
	comments, total, err := s.articleRepo.ListComments(ctx, id, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return comments, total, nil
}

func (s *ArticleService) DeleteComment(ctx context.Context, commentID string, actorID uuid.UUID, actorRole authz.Role) error {
	comment, err := s.articleRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrRecordNotFound
	}
	if comment.AuthorID != actorID && actorRole != authz.RoleAdmin {
		return utils.ErrNotOwner
	}
	return s.articleRepo.DeleteComment(ctx, commentID)
}
