package postgres

import (
	"context"
	"testing"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

func TestVideoRepo_CRUD(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	repo := NewVideoRepo(db)
	ctx := context.Background()

	v := model.Video{Title: "t", Description: "d", URL: "https://v.example/1", UserID: owner.ID}
	if err := repo.CreateVideo(ctx, &v); err != nil || v.ID == 0 {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetVideoByID(ctx, v.ID)
	if err != nil || got.Title != "t" || got.UserID != owner.ID {
		t.Fatalf("get: %v", err)
	}

	got.Title = "updated"
	if err := repo.UpdateVideo(ctx, &got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetVideoByID(ctx, v.ID)
	if again.Title != "updated" {
		t.Fatalf("update not persisted: %q", again.Title)
	}

	if err := repo.DeleteVideo(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetVideoByID(ctx, v.ID); !domainErrors.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := repo.DeleteVideo(ctx, v.ID); !domainErrors.IsNotFound(err) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestVideoRepo_ListPagination(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	repo := NewVideoRepo(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		v := model.Video{Title: "t", URL: "https://v.example", UserID: owner.ID}
		if err := repo.CreateVideo(ctx, &v); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := repo.ListVideos(ctx, 2, 2)
	if err != nil || len(page) != 2 {
		t.Fatalf("want 2 videos, got %d (%v)", len(page), err)
	}
}

func TestVideoRepo_GetByIDs(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	repo := NewVideoRepo(db)
	ctx := context.Background()

	v1 := model.Video{Title: "one", URL: "https://v.example/1", UserID: owner.ID}
	v2 := model.Video{Title: "two", URL: "https://v.example/2", UserID: owner.ID}
	_ = repo.CreateVideo(ctx, &v1)
	_ = repo.CreateVideo(ctx, &v2)

	videos, err := repo.GetVideosByIDs(ctx, []uint{v1.ID, v2.ID, 999})
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 2 {
		t.Fatalf("missing ids must just be absent from the result, got %d", len(videos))
	}
}
