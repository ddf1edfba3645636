package usecase

import (
	"context"
	"strings"
	"sync"

	"main/apperr"
	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TagService struct {
	TagsRepo *repository.TagsRepo
	// NotesRepo is needed for the deletion cascade.
	NotesRepo *repository.NotesRepo
}

func (s *TagService) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := s.TagsRepo.FindTags(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return tags, nil
}

func (s *TagService) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	tagID, _ := primitive.ObjectIDFromHex(id)

	tag, err := s.TagsRepo.FindTagByID(ctx, tagID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if tag == nil {
		return nil, apperr.NotFound("tag")
	}
	return tag, nil
}

func (s *TagService) CreateTag(ctx context.Context, req dto.CreateTagRequest) (*model.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperr.MissingField("name")
	}

	tag := &model.Tag{Name: req.Name}
	if err := s.TagsRepo.CreateTag(ctx, tag); err != nil {
		return nil, apperr.Classify("tag", err)
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id string, req dto.UpdateTagRequest) (*model.Tag, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperr.MissingField("name")
	}
	tagID, _ := primitive.ObjectIDFromHex(id)

	tag, err := s.TagsRepo.UpdateTag(ctx, tagID, req.Name)
	if err != nil {
		return nil, apperr.Classify("tag", err)
	}
	if tag == nil {
		return nil, apperr.NotFound("tag")
	}
	return tag, nil
}

// DeleteTag removes the tag and pulls its id out of every note's tags array.
// The two sub-operations run concurrently against independent collections
// with no transaction: a concurrent reader may briefly see the tag gone
// while a note still lists it, or the reverse. That window is an accepted
// property of the data model, not something to close with a lock. Both
// operations are started before either result is looked at, so cancellation
// can only ever see "both issued" or "neither issued". Returns how many
// notes were cleaned up.
func (s *TagService) DeleteTag(ctx context.Context, id string) (int64, error) {
	if !utils.IsValidObjectID(id) {
		return 0, apperr.InvalidID()
	}
	tagID, _ := primitive.ObjectIDFromHex(id)

	var (
		wg      sync.WaitGroup
		cleaned int64
		pullErr error
		delErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cleaned, pullErr = s.NotesRepo.PullTagFromNotes(ctx, tagID)
	}()
	go func() {
		defer wg.Done()
		_, delErr = s.TagsRepo.DeleteTag(ctx, tagID)
	}()
	wg.Wait()

	if pullErr != nil {
		return cleaned, apperr.Storage(pullErr)
	}
	if delErr != nil {
		return cleaned, apperr.Storage(delErr)
	}
	return cleaned, nil
}
