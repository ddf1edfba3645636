package usecase

import (
	"context"
	"strings"

	"main/apperr"
	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteService struct {
	NotesRepo *repository.NotesRepo
}

// ValidateNoteReferences gates note writes on the shape of their
// cross-entity references. Validation is fail-fast: the first malformed tag
// id wins. Existence against the folders collection is intentionally NOT
// checked; the API has always accepted a well-formed folder_id pointing at
// nothing, and folder deletion does not cascade. Tag references get their
// consistency from the deletion cascade instead (see TagService.DeleteTag).
func ValidateNoteReferences(folderID string, tagIDs []string) error {
	if folderID != "" && !utils.IsValidObjectID(folderID) {
		return apperr.InvalidReference("folder_id", folderID)
	}
	for _, tagID := range tagIDs {
		if !utils.IsValidObjectID(tagID) {
			return apperr.InvalidReference("tags", tagID)
		}
	}
	return nil
}

func (s *NoteService) ListNotes(ctx context.Context, query dto.ListNotesQuery) ([]*model.Note, error) {
	filter := repository.NoteFilter{SearchTerm: query.SearchTerm}

	if query.FolderID != "" {
		folderID, err := primitive.ObjectIDFromHex(query.FolderID)
		if err != nil {
			return nil, apperr.InvalidReference("folder_id", query.FolderID)
		}
		filter.FolderID = &folderID
	}
	if query.TagID != "" {
		tagID, err := primitive.ObjectIDFromHex(query.TagID)
		if err != nil {
			return nil, apperr.InvalidReference("tag_id", query.TagID)
		}
		filter.TagID = &tagID
	}

	notes, err := s.NotesRepo.FindNotes(ctx, filter)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return notes, nil
}

func (s *NoteService) GetNote(ctx context.Context, id string) (*model.Note, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	noteID, _ := primitive.ObjectIDFromHex(id)

	note, err := s.NotesRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if note == nil {
		return nil, apperr.NotFound("note")
	}
	return note, nil
}

func (s *NoteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest) (*model.Note, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, apperr.MissingField("title")
	}
	if err := ValidateNoteReferences(req.FolderID, req.Tags); err != nil {
		return nil, err
	}

	note := &model.Note{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.FolderID != "" {
		folderID, _ := primitive.ObjectIDFromHex(req.FolderID)
		note.FolderID = &folderID
	}
	for _, raw := range req.Tags {
		tagID, _ := primitive.ObjectIDFromHex(raw)
		note.Tags = append(note.Tags, tagID)
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, apperr.Classify("note", err)
	}
	return note, nil
}

// UpdateNote replaces only the supplied fields. Unlike create, title is
// optional here, but supplying an empty one is still rejected.
func (s *NoteService) UpdateNote(ctx context.Context, id string, req dto.UpdateNoteRequest) (*model.Note, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	noteID, _ := primitive.ObjectIDFromHex(id)

	var folderID string
	if req.FolderID != nil {
		folderID = *req.FolderID
		if folderID == "" {
			return nil, apperr.InvalidReference("folder_id", folderID)
		}
	}
	var tagIDs []string
	if req.Tags != nil {
		tagIDs = *req.Tags
	}
	if err := ValidateNoteReferences(folderID, tagIDs); err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperr.MissingField("title")
		}
		set["title"] = title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.FolderID != nil {
		oid, _ := primitive.ObjectIDFromHex(folderID)
		set["folder_id"] = oid
	}
	if req.Tags != nil {
		tags := make([]primitive.ObjectID, 0, len(tagIDs))
		for _, raw := range tagIDs {
			oid, _ := primitive.ObjectIDFromHex(raw)
			tags = append(tags, oid)
		}
		set["tags"] = tags
	}

	note, err := s.NotesRepo.UpdateNote(ctx, noteID, set)
	if err != nil {
		return nil, apperr.Classify("note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note")
	}
	return note, nil
}

// DeleteNote is idempotent in effect: a well-formed id that resolves to
// nothing still succeeds, since the desired end state already holds.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if !utils.IsValidObjectID(id) {
		return apperr.InvalidID()
	}
	noteID, _ := primitive.ObjectIDFromHex(id)

	if _, err := s.NotesRepo.DeleteNote(ctx, noteID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
