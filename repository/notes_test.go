package repository

import (
	"context"
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotesRepo(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	notesRepo := GetNotesRepo(db)

	folderID := primitive.NewObjectID()
	tagID := primitive.NewObjectID()

	t.Run("CreateNote assigns id and timestamps", func(t *testing.T) {
		note := &model.Note{Title: "Grocery run", Content: "milk, eggs"}

		if err := notesRepo.CreateNote(ctx, note); err != nil {
			t.Fatal("insert note failed", err)
		}
		if note.ID.IsZero() {
			t.Error("expected assigned id")
		}
		if note.CreatedAt.IsZero() || !note.CreatedAt.Equal(note.UpdatedAt) {
			t.Errorf("expected created_at == updated_at at creation, got %v / %v",
				note.CreatedAt, note.UpdatedAt)
		}
	})

	t.Run("FindNoteByID round-trips the document", func(t *testing.T) {
		note := &model.Note{
			Title:    "With refs",
			FolderID: &folderID,
			Tags:     []primitive.ObjectID{tagID, tagID},
		}
		if err := notesRepo.CreateNote(ctx, note); err != nil {
			t.Fatal("insert note failed", err)
		}

		found, err := notesRepo.FindNoteByID(ctx, note.ID)
		if err != nil {
			t.Fatal("find note failed", err)
		}
		if found == nil {
			t.Fatal("expected note, got absent")
		}
		if found.Title != "With refs" {
			t.Errorf("title = %q", found.Title)
		}
		if found.FolderID == nil || *found.FolderID != folderID {
			t.Errorf("folder_id = %v", found.FolderID)
		}
		if len(found.Tags) != 2 {
			t.Errorf("duplicate tag lost: %v", found.Tags)
		}
	})

	t.Run("FindNoteByID absent is nil not error", func(t *testing.T) {
		found, err := notesRepo.FindNoteByID(ctx, primitive.NewObjectID())
		if err != nil {
			t.Fatal("unexpected error", err)
		}
		if found != nil {
			t.Fatalf("expected absent, got %v", found)
		}
	})

	t.Run("FindNotes filters and sorts", func(t *testing.T) {
		byTitle, err := notesRepo.FindNotes(ctx, NoteFilter{SearchTerm: "grocery"})
		if err != nil {
			t.Fatal("find notes failed", err)
		}
		if len(byTitle) != 1 {
			t.Errorf("case-insensitive title match expected 1 note, got %d", len(byTitle))
		}

		byFolder, err := notesRepo.FindNotes(ctx, NoteFilter{FolderID: &folderID})
		if err != nil {
			t.Fatal("find notes failed", err)
		}
		if len(byFolder) != 1 {
			t.Errorf("folder filter expected 1 note, got %d", len(byFolder))
		}

		byTag, err := notesRepo.FindNotes(ctx, NoteFilter{TagID: &tagID})
		if err != nil {
			t.Fatal("find notes failed", err)
		}
		if len(byTag) != 1 {
			t.Errorf("tag filter expected 1 note, got %d", len(byTag))
		}

		all, err := notesRepo.FindNotes(ctx, NoteFilter{})
		if err != nil {
			t.Fatal("find notes failed", err)
		}
		for i := 1; i < len(all); i++ {
			if all[i-1].UpdatedAt.Before(all[i].UpdatedAt) {
				t.Error("notes not sorted by updated_at desc")
			}
		}

		none, err := notesRepo.FindNotes(ctx, NoteFilter{SearchTerm: "no such title"})
		if err != nil {
			t.Fatal("empty result must not be an error", err)
		}
		if len(none) != 0 {
			t.Errorf("expected no matches, got %d", len(none))
		}
	})

	t.Run("UpdateNote replaces only supplied fields", func(t *testing.T) {
		note := &model.Note{Title: "before", Content: "keep me"}
		if err := notesRepo.CreateNote(ctx, note); err != nil {
			t.Fatal("insert note failed", err)
		}

		time.Sleep(5 * time.Millisecond)
		updated, err := notesRepo.UpdateNote(ctx, note.ID, bson.M{"title": "after"})
		if err != nil {
			t.Fatal("update note failed", err)
		}
		if updated == nil {
			t.Fatal("expected updated document")
		}
		if updated.Title != "after" || updated.Content != "keep me" {
			t.Errorf("partial update broke fields: %+v", updated)
		}
		if !updated.UpdatedAt.After(updated.CreatedAt) {
			t.Error("updated_at not refreshed")
		}
		if !updated.CreatedAt.Equal(note.CreatedAt.Truncate(time.Millisecond)) &&
			!updated.CreatedAt.Equal(note.CreatedAt) {
			t.Errorf("created_at mutated: %v != %v", updated.CreatedAt, note.CreatedAt)
		}
	})

	t.Run("UpdateNote absent is nil not error", func(t *testing.T) {
		updated, err := notesRepo.UpdateNote(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
		if err != nil {
			t.Fatal("unexpected error", err)
		}
		if updated != nil {
			t.Fatal("expected absent")
		}
	})

	t.Run("DeleteNote reports existence", func(t *testing.T) {
		note := &model.Note{Title: "doomed"}
		if err := notesRepo.CreateNote(ctx, note); err != nil {
			t.Fatal("insert note failed", err)
		}

		existed, err := notesRepo.DeleteNote(ctx, note.ID)
		if err != nil {
			t.Fatal("delete note failed", err)
		}
		if !existed {
			t.Error("expected delete to report existing document")
		}

		existed, err = notesRepo.DeleteNote(ctx, note.ID)
		if err != nil {
			t.Fatal("second delete must not error", err)
		}
		if existed {
			t.Error("second delete reported a document")
		}
	})
}

func TestPullTagFromNotes(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	notesRepo := GetNotesRepo(db)

	urgent := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tagged1 := &model.Note{Title: "a", Tags: []primitive.ObjectID{urgent, other}}
	tagged2 := &model.Note{Title: "b", Tags: []primitive.ObjectID{urgent, urgent}}
	untagged := &model.Note{Title: "c", Tags: []primitive.ObjectID{other}}
	for _, n := range []*model.Note{tagged1, tagged2, untagged} {
		if err := notesRepo.CreateNote(ctx, n); err != nil {
			t.Fatal("insert note failed", err)
		}
	}

	cleaned, err := notesRepo.PullTagFromNotes(ctx, urgent)
	if err != nil {
		t.Fatal("pull tag failed", err)
	}
	if cleaned != 2 {
		t.Errorf("expected 2 notes cleaned, got %d", cleaned)
	}

	// all occurrences removed, including duplicates
	for _, id := range []primitive.ObjectID{tagged1.ID, tagged2.ID} {
		note, err := notesRepo.FindNoteByID(ctx, id)
		if err != nil || note == nil {
			t.Fatal("find note failed", err)
		}
		for _, tag := range note.Tags {
			if tag == urgent {
				t.Errorf("note %s still references pulled tag", id.Hex())
			}
		}
	}

	// untouched note keeps its tags
	note, err := notesRepo.FindNoteByID(ctx, untagged.ID)
	if err != nil || note == nil {
		t.Fatal("find note failed", err)
	}
	if len(note.Tags) != 1 || note.Tags[0] != other {
		t.Errorf("unrelated note modified: %v", note.Tags)
	}

	// idempotent for N = 0
	cleaned, err = notesRepo.PullTagFromNotes(ctx, urgent)
	if err != nil {
		t.Fatal("second pull failed", err)
	}
	if cleaned != 0 {
		t.Errorf("expected 0 on second pull, got %d", cleaned)
	}
}
