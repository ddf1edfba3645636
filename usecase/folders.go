package usecase

import (
	"context"
	"strings"

	"main/apperr"
	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FolderService struct {
	FoldersRepo *repository.FoldersRepo
}

func (s *FolderService) ListFolders(ctx context.Context) ([]*model.Folder, error) {
	folders, err := s.FoldersRepo.FindFolders(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return folders, nil
}

func (s *FolderService) GetFolder(ctx context.Context, id string) (*model.Folder, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	folderID, _ := primitive.ObjectIDFromHex(id)

	folder, err := s.FoldersRepo.FindFolderByID(ctx, folderID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if folder == nil {
		return nil, apperr.NotFound("folder")
	}
	return folder, nil
}

func (s *FolderService) CreateFolder(ctx context.Context, req dto.CreateFolderRequest) (*model.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperr.MissingField("name")
	}

	folder := &model.Folder{Name: req.Name}
	if err := s.FoldersRepo.CreateFolder(ctx, folder); err != nil {
		return nil, apperr.Classify("folder", err)
	}
	return folder, nil
}

// UpdateFolder is a full replacement of the name: a PUT without one is
// rejected, not treated as a no-op.
func (s *FolderService) UpdateFolder(ctx context.Context, id string, req dto.UpdateFolderRequest) (*model.Folder, error) {
	if !utils.IsValidObjectID(id) {
		return nil, apperr.InvalidID()
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperr.MissingField("name")
	}
	folderID, _ := primitive.ObjectIDFromHex(id)

	folder, err := s.FoldersRepo.UpdateFolder(ctx, folderID, req.Name)
	if err != nil {
		return nil, apperr.Classify("folder", err)
	}
	if folder == nil {
		return nil, apperr.NotFound("folder")
	}
	return folder, nil
}

// DeleteFolder removes the folder only. Notes keep whatever folder_id they
// had; dangling folder references are an accepted state of the data model.
func (s *FolderService) DeleteFolder(ctx context.Context, id string) error {
	if !utils.IsValidObjectID(id) {
		return apperr.InvalidID()
	}
	folderID, _ := primitive.ObjectIDFromHex(id)

	if _, err := s.FoldersRepo.DeleteFolder(ctx, folderID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
