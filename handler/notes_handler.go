package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notesService *usecase.NoteService) {
	var query dto.ListNotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid query parameters")
		return
	}

	notes, err := notesService.ListNotes(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NoteService) {
	note, err := notesService.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NoteService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("note", "create")
	utils.Created(c, c.Request.URL.Path+"/"+note.ID.Hex(), dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NoteService) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("note", "update")
	utils.Success(c, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NoteService) {
	if err := notesService.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("note", "delete")
	utils.NoContent(c)
}
