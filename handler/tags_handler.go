package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListTagsHandler(c *gin.Context, tagsService *usecase.TagService) {
	tags, err := tagsService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponses(tags))
}

func GetTagHandler(c *gin.Context, tagsService *usecase.TagService) {
	tag, err := tagsService.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponse(tag))
}

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagService) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := tagsService.CreateTag(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("tag", "create")
	utils.Created(c, c.Request.URL.Path+"/"+tag.ID.Hex(), dto.ToTagResponse(tag))
}

func UpdateTagHandler(c *gin.Context, tagsService *usecase.TagService) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := tagsService.UpdateTag(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("tag", "update")
	utils.Success(c, dto.ToTagResponse(tag))
}

// DeleteTagHandler deletes the tag and scrubs its id from every note.
func DeleteTagHandler(c *gin.Context, tagsService *usecase.TagService) {
	cleaned, err := tagsService.DeleteTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("tag", "delete")
	middleware.TagCascadeNotesCleaned.Add(float64(cleaned))
	utils.NoContent(c)
}
