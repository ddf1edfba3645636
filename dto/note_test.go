package dto

import (
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToNoteResponse(t *testing.T) {
	folderID := primitive.NewObjectID()
	tagA := primitive.NewObjectID()
	tagB := primitive.NewObjectID()
	now := time.Now().UTC()

	note := &model.Note{
		ID:        primitive.NewObjectID(),
		Title:     "groceries",
		Content:   "milk",
		FolderID:  &folderID,
		Tags:      []primitive.ObjectID{tagA, tagB, tagA},
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := ToNoteResponse(note)

	if resp.ID != note.ID.Hex() {
		t.Errorf("id not normalized: %q", resp.ID)
	}
	if resp.FolderID != folderID.Hex() {
		t.Errorf("folder_id not normalized: %q", resp.FolderID)
	}
	// duplicates and order preserved
	want := []string{tagA.Hex(), tagB.Hex(), tagA.Hex()}
	if len(resp.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", resp.Tags, want)
	}
	for i := range want {
		if resp.Tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, resp.Tags[i], want[i])
		}
	}
}

func TestToNoteResponseEmptyReferences(t *testing.T) {
	note := &model.Note{
		ID:    primitive.NewObjectID(),
		Title: "untagged",
	}

	resp := ToNoteResponse(note)

	if resp.FolderID != "" {
		t.Errorf("expected empty folder_id, got %q", resp.FolderID)
	}
	if resp.Tags == nil {
		t.Error("tags must serialize as an empty array, not null")
	}
	if len(resp.Tags) != 0 {
		t.Errorf("expected no tags, got %v", resp.Tags)
	}
}

func TestToNoteResponses(t *testing.T) {
	notes := []*model.Note{
		{ID: primitive.NewObjectID(), Title: "a"},
		{ID: primitive.NewObjectID(), Title: "b"},
	}

	resps := ToNoteResponses(notes)

	if len(resps) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(resps))
	}
	if resps[0].Title != "a" || resps[1].Title != "b" {
		t.Errorf("order not preserved: %v", resps)
	}
}
