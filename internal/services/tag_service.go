package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"resto/internal/models/db_models"
	"resto/internal/models/request_models"
	"resto/internal/models/response_models"
	"resto/internal/repositories"
	"resto/pkg/utils"
)

type TagServiceInterface interface {
	GetAllTags(ctx context.Context) ([]response_models.Tag, error)
	CreateTag(ctx context.Context, req request_models.CreateTagRequest) (response_models.Tag, error)
	UpdateTag(ctx context.Context, id string, req request_models.UpdateTagRequest) (response_models.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

type TagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagServiceInterface {
	return &TagService{
		tagRepo: tagRepo,
	}
}

func (t *TagService) GetAllTags(ctx context.Context) ([]response_models.Tag, error) {
	tags, err := t.tagRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Error fetching tags: %v", err)
		return nil, utils.ErrDatabaseError
	}

	tagResponses := make([]response_models.Tag, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, toTagResponse(tag))
	}
	return tagResponses, nil
}

func (t *TagService) CreateTag(ctx context.Context, req request_models.CreateTagRequest) (response_models.Tag, error) {
	if !db_models.ValidTagKind(req.Kind) {
		return response_models.Tag{}, utils.ErrInvalidTagKind
	}

	tag := db_models.Tag{
		Kind: req.Kind,
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := t.tagRepo.Create(ctx, &tag); err != nil {
		log.Printf("Error creating tag: %v", err)
		return response_models.Tag{}, utils.ErrDatabaseError
	}
	return toTagResponse(tag), nil
}

func (t *TagService) UpdateTag(ctx context.Context, id string, req request_models.UpdateTagRequest) (response_models.Tag, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.Tag{}, utils.ErrTagNotFound
	}

	tag, err := t.tagRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching tag: %v", err)
		return response_models.Tag{}, utils.ErrDatabaseError
	}
	if tag == nil {
		return response_models.Tag{}, utils.ErrTagNotFound
	}

	if req.Kind != nil {
		if !db_models.ValidTagKind(*req.Kind) {
			return response_models.Tag{}, utils.ErrInvalidTagKind
		}
		tag.Kind = *req.Kind
	}
	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Slug != nil {
		tag.Slug = *req.Slug
	}

	if err := t.tagRepo.Update(ctx, tag); err != nil {
		log.Printf("Error updating tag: %v", err)
		return response_models.Tag{}, utils.ErrDatabaseError
	}
	return toTagResponse(*tag), nil
}

func (t *TagService) DeleteTag(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrTagNotFound
	}
	if err := t.tagRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting tag: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toTagResponse(tag db_models.Tag) response_models.Tag {
	return response_models.Tag{
		ID:   tag.ID.String(),
		Kind: tag.Kind,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
