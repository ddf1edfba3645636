package repository

import (
	"context"
	"testing"

	"main/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestFoldersRepo(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	foldersRepo := GetFoldersRepo(db)

	t.Run("CreateFolder", func(t *testing.T) {
		folder := &model.Folder{Name: "Work"}
		if err := foldersRepo.CreateFolder(ctx, folder); err != nil {
			t.Fatal("insert folder failed", err)
		}
		if folder.ID.IsZero() {
			t.Error("expected assigned id")
		}
	})

	t.Run("duplicate name hits the unique index", func(t *testing.T) {
		err := foldersRepo.CreateFolder(ctx, &model.Folder{Name: "Work"})
		if err == nil {
			t.Fatal("expected duplicate key error")
		}
		if !mongo.IsDuplicateKeyError(err) {
			t.Fatalf("expected duplicate key error, got %v", err)
		}
	})

	t.Run("FindFolders sorts case-insensitively", func(t *testing.T) {
		for _, name := range []string{"archive", "Drafts", "Banana"} {
			if err := foldersRepo.CreateFolder(ctx, &model.Folder{Name: name}); err != nil {
				t.Fatal("insert folder failed", err)
			}
		}

		folders, err := foldersRepo.FindFolders(ctx)
		if err != nil {
			t.Fatal("find folders failed", err)
		}
		want := []string{"archive", "Banana", "Drafts", "Work"}
		if len(folders) != len(want) {
			t.Fatalf("expected %d folders, got %d", len(want), len(folders))
		}
		for i, folder := range folders {
			if folder.Name != want[i] {
				t.Errorf("position %d = %q, want %q (en collation)", i, folder.Name, want[i])
			}
		}
	})

	t.Run("UpdateFolder renames and refreshes updated_at", func(t *testing.T) {
		folder := &model.Folder{Name: "Temp"}
		if err := foldersRepo.CreateFolder(ctx, folder); err != nil {
			t.Fatal("insert folder failed", err)
		}

		updated, err := foldersRepo.UpdateFolder(ctx, folder.ID, "Renamed")
		if err != nil {
			t.Fatal("update folder failed", err)
		}
		if updated == nil || updated.Name != "Renamed" {
			t.Fatalf("unexpected update result: %+v", updated)
		}
	})

	t.Run("UpdateFolder to a taken name is a duplicate", func(t *testing.T) {
		folder, err := foldersRepo.UpdateFolder(ctx, primitive.NewObjectID(), "ghost")
		if err != nil {
			t.Fatal("unexpected error", err)
		}
		if folder != nil {
			t.Fatal("expected absent for unknown id")
		}

		target := &model.Folder{Name: "Unique"}
		if err := foldersRepo.CreateFolder(ctx, target); err != nil {
			t.Fatal("insert folder failed", err)
		}
		if _, err := foldersRepo.UpdateFolder(ctx, target.ID, "Work"); !mongo.IsDuplicateKeyError(err) {
			t.Fatalf("expected duplicate key error, got %v", err)
		}
	})

	t.Run("DeleteFolder", func(t *testing.T) {
		folder := &model.Folder{Name: "Doomed"}
		if err := foldersRepo.CreateFolder(ctx, folder); err != nil {
			t.Fatal("insert folder failed", err)
		}

		existed, err := foldersRepo.DeleteFolder(ctx, folder.ID)
		if err != nil || !existed {
			t.Fatalf("delete folder failed: existed=%v err=%v", existed, err)
		}

		found, err := foldersRepo.FindFolderByID(ctx, folder.ID)
		if err != nil {
			t.Fatal("find folder failed", err)
		}
		if found != nil {
			t.Error("folder still present after delete")
		}
	})
}
