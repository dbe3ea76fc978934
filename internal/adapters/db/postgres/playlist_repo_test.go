package postgres

import (
	"context"
	"testing"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"gorm.io/gorm"
)

func seedVideos(t *testing.T, db *gorm.DB, ownerID uint, n int) []model.Video {
	t.Helper()
	repo := NewVideoRepo(db)
	videos := make([]model.Video, n)
	for i := range videos {
		videos[i] = model.Video{Title: "v", URL: "https://v.example", UserID: ownerID}
		if err := repo.CreateVideo(context.Background(), &videos[i]); err != nil {
			t.Fatalf("seed video: %v", err)
		}
	}
	return videos
}

func TestPlaylistRepo_CreateKeepsCount(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	videos := seedVideos(t, db, owner.ID, 2)
	repo := NewPlaylistRepo(db)
	ctx := context.Background()

	p := model.Playlist{Title: "p", URLThumb: "https://t.example", UserID: owner.ID}
	if err := repo.CreatePlaylist(ctx, &p, videos); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetPlaylistByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.VideoCount != 2 {
		t.Fatalf("want video_count 2, got %d", got.VideoCount)
	}

	members, err := repo.ListPlaylistVideos(ctx, p.ID)
	if err != nil || len(members) != 2 {
		t.Fatalf("want 2 members, got %d (%v)", len(members), err)
	}
}

func TestPlaylistRepo_AddVideoRecounts(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	videos := seedVideos(t, db, owner.ID, 3)
	repo := NewPlaylistRepo(db)
	ctx := context.Background()

	p := model.Playlist{Title: "p", URLThumb: "https://t.example", UserID: owner.ID}
	if err := repo.CreatePlaylist(ctx, &p, videos[:2]); err != nil {
		t.Fatal(err)
	}

	if err := repo.AddVideo(ctx, &p, videos[2]); err != nil {
		t.Fatal(err)
	}
	if p.VideoCount != 3 {
		t.Fatalf("want recomputed count 3, got %d", p.VideoCount)
	}

	got, _ := repo.GetPlaylistByID(ctx, p.ID)
	if got.VideoCount != 3 {
		t.Fatalf("persisted count must match relation, got %d", got.VideoCount)
	}

	member, err := repo.HasVideo(ctx, p.ID, videos[2].ID)
	if err != nil || !member {
		t.Fatalf("video must be a member: %v", err)
	}
}

func TestPlaylistRepo_ReplaceVideosRecounts(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	videos := seedVideos(t, db, owner.ID, 3)
	repo := NewPlaylistRepo(db)
	ctx := context.Background()

	p := model.Playlist{Title: "p", URLThumb: "https://t.example", UserID: owner.ID}
	if err := repo.CreatePlaylist(ctx, &p, videos); err != nil {
		t.Fatal(err)
	}

	if err := repo.ReplaceVideos(ctx, &p, videos[:1]); err != nil {
		t.Fatal(err)
	}
	if p.VideoCount != 1 {
		t.Fatalf("want count 1 after replace, got %d", p.VideoCount)
	}

	members, _ := repo.ListPlaylistVideos(ctx, p.ID)
	if len(members) != 1 || members[0].ID != videos[0].ID {
		t.Fatalf("unexpected members after replace: %+v", members)
	}
}

func TestPlaylistRepo_Delete(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "alice", "a@x.com")
	videos := seedVideos(t, db, owner.ID, 1)
	repo := NewPlaylistRepo(db)
	ctx := context.Background()

	p := model.Playlist{Title: "p", URLThumb: "https://t.example", UserID: owner.ID}
	if err := repo.CreatePlaylist(ctx, &p, videos); err != nil {
		t.Fatal(err)
	}

	if err := repo.DeletePlaylist(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetPlaylistByID(ctx, p.ID); !domainErrors.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}

	// The member videos themselves survive playlist deletion.
	if _, err := NewVideoRepo(db).GetVideoByID(ctx, videos[0].ID); err != nil {
		t.Fatalf("member video must survive: %v", err)
	}
}
