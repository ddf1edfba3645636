package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListFoldersHandler(c *gin.Context, foldersService *usecase.FolderService) {
	folders, err := foldersService.ListFolders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToFolderResponses(folders))
}

func GetFolderHandler(c *gin.Context, foldersService *usecase.FolderService) {
	folder, err := foldersService.GetFolder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToFolderResponse(folder))
}

func CreateFolderHandler(c *gin.Context, foldersService *usecase.FolderService) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := foldersService.CreateFolder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("folder", "create")
	utils.Created(c, c.Request.URL.Path+"/"+folder.ID.Hex(), dto.ToFolderResponse(folder))
}

func UpdateFolderHandler(c *gin.Context, foldersService *usecase.FolderService) {
	var req dto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := foldersService.UpdateFolder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("folder", "update")
	utils.Success(c, dto.ToFolderResponse(folder))
}

// DeleteFolderHandler deletes the folder only; notes referencing it keep
// their folder_id (no cascade for folders).
func DeleteFolderHandler(c *gin.Context, foldersService *usecase.FolderService) {
	if err := foldersService.DeleteFolder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("folder", "delete")
	utils.NoContent(c)
}
