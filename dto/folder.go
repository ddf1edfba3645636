package dto

import (
	"time"

	"main/model"
)

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type UpdateFolderRequest struct {
	Name string `json:"name"`
}

type FolderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFolderResponse(folder *model.Folder) FolderResponse {
	return FolderResponse{
		ID:        folder.ID.Hex(),
		Name:      folder.Name,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

func ToFolderResponses(folders []*model.Folder) []FolderResponse {
	responses := make([]FolderResponse, len(folders))
	for i, folder := range folders {
		responses[i] = ToFolderResponse(folder)
	}
	return responses
}
