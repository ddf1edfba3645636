package dto

import (
	"time"

	"main/model"
)

// Request bodies arrive as loose JSON and are coerced into typed entity
// fields by the service layer. Client-supplied id/created_at/updated_at are
// never accepted.

type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folder_id"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest uses pointers so "field absent" and "field set to empty"
// stay distinguishable; absent fields are left untouched by the update.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	FolderID *string   `json:"folder_id"`
	Tags     *[]string `json:"tags"`
}

type ListNotesQuery struct {
	SearchTerm string `form:"searchTerm"`
	FolderID   string `form:"folder_id" binding:"omitempty,objectid"`
	TagID      string `form:"tag_id" binding:"omitempty,objectid"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FolderID  string    `json:"folder_id,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToNoteResponse normalizes the stored document: hex ids, no storage
// internals, and an empty (never null) tags array.
func ToNoteResponse(note *model.Note) NoteResponse {
	resp := NoteResponse{
		ID:        note.ID.Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      make([]string, 0, len(note.Tags)),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.FolderID != nil {
		resp.FolderID = note.FolderID.Hex()
	}
	for _, tagID := range note.Tags {
		resp.Tags = append(resp.Tags, tagID.Hex())
	}
	return resp
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
