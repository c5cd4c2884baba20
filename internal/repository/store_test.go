package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/David-iadg/consult-ia/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type clockedStore interface {
	Store
	SetClock(now func() time.Time)
}

func newSQLiteStore(t *testing.T) clockedStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	store := NewGormStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// forEachStore 对内存与 SQL 两种实现跑同一组用例
func forEachStore(t *testing.T, fn func(t *testing.T, store clockedStore)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, newSQLiteStore(t))
	})
}

func strPtr(v string) *string { return &v }

func samplePost(title, slug string, date time.Time) *models.Post {
	return &models.Post{
		Title:    title,
		Slug:     slug,
		Excerpt:  "excerpt " + title,
		Content:  "<p>" + title + "</p>",
		Category: "Solutions IA",
		Date:     date,
		Language: "fr",
	}
}

func TestPostCreateGetDelete(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		post := samplePost("Bonjour", "bonjour", time.Time{})
		if err := repo.Create(post); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if post.ID == 0 {
			t.Fatalf("expected id to be assigned")
		}
		if post.Date.IsZero() {
			t.Fatalf("expected date to be stamped")
		}

		got, err := repo.GetByID(post.ID)
		if err != nil || got == nil {
			t.Fatalf("get failed: %v %v", got, err)
		}
		if got.Title != "Bonjour" || got.Slug != "bonjour" {
			t.Fatalf("unexpected post: %+v", got)
		}

		bySlug, err := repo.GetBySlug("bonjour")
		if err != nil || bySlug == nil || bySlug.ID != post.ID {
			t.Fatalf("get by slug failed: %v %v", bySlug, err)
		}

		deleted, err := repo.Delete(post.ID)
		if err != nil || !deleted {
			t.Fatalf("delete failed: %v %v", deleted, err)
		}
		got, err = repo.GetByID(post.ID)
		if err != nil || got != nil {
			t.Fatalf("expected post to be gone, got %+v err=%v", got, err)
		}
		deleted, err = repo.Delete(post.ID)
		if err != nil || deleted {
			t.Fatalf("second delete should report false, got %v err=%v", deleted, err)
		}
	})
}

func TestDeleteUnknownReportsFalse(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		if ok, err := store.Posts().Delete(999); err != nil || ok {
			t.Fatalf("post delete: ok=%v err=%v", ok, err)
		}
		if ok, err := store.Applications().Delete(999); err != nil || ok {
			t.Fatalf("application delete: ok=%v err=%v", ok, err)
		}
		if ok, err := store.Users().Delete(999); err != nil || ok {
			t.Fatalf("user delete: ok=%v err=%v", ok, err)
		}
	})
}

func TestIDsAreNeverReused(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		first := samplePost("a", "a", time.Time{})
		second := samplePost("b", "b", time.Time{})
		if err := repo.Create(first); err != nil {
			t.Fatalf("create first failed: %v", err)
		}
		if err := repo.Create(second); err != nil {
			t.Fatalf("create second failed: %v", err)
		}
		if _, err := repo.Delete(second.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		third := samplePost("c", "c", time.Time{})
		if err := repo.Create(third); err != nil {
			t.Fatalf("create third failed: %v", err)
		}
		if third.ID <= second.ID {
			t.Fatalf("expected id greater than %d, got %d", second.ID, third.ID)
		}
	})
}

func TestPostListOrderedByDateDesc(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		base := time.Date(2023, 3, 3, 10, 0, 0, 0, time.UTC)
		old := samplePost("old", "old", base)
		newest := samplePost("newest", "newest", base.AddDate(0, 2, 0))
		middle := samplePost("middle", "middle", base.AddDate(0, 1, 0))
		for _, p := range []*models.Post{old, newest, middle} {
			if err := repo.Create(p); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		posts, err := repo.List(PostListFilter{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		want := []string{"newest", "middle", "old"}
		if len(posts) != len(want) {
			t.Fatalf("expected %d posts, got %d", len(want), len(posts))
		}
		for i, slug := range want {
			if posts[i].Slug != slug {
				t.Fatalf("position %d: want %s got %s", i, slug, posts[i].Slug)
			}
		}

		// 修改日期后重新排序
		later := base.AddDate(1, 0, 0)
		if _, err := repo.Update(old.ID, models.PostPatch{Date: &later}); err != nil {
			t.Fatalf("update date failed: %v", err)
		}
		posts, err = repo.List(PostListFilter{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if posts[0].Slug != "old" {
			t.Fatalf("expected re-dated post first, got %s", posts[0].Slug)
		}
	})
}

func TestPostListFilters(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		fr := samplePost("Intelligence artificielle", "ia", time.Time{})
		en := samplePost("Artificial intelligence", "ai", time.Time{})
		en.Language = "en"
		en.Category = "AI"
		for _, p := range []*models.Post{fr, en} {
			if err := repo.Create(p); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		posts, err := repo.List(PostListFilter{Language: "en"})
		if err != nil || len(posts) != 1 || posts[0].Slug != "ai" {
			t.Fatalf("language filter: %+v err=%v", posts, err)
		}
		posts, err = repo.List(PostListFilter{Category: "Solutions IA"})
		if err != nil || len(posts) != 1 || posts[0].Slug != "ia" {
			t.Fatalf("category filter: %+v err=%v", posts, err)
		}
		posts, err = repo.List(PostListFilter{Search: "ARTIFICIAL"})
		if err != nil || len(posts) != 1 || posts[0].Slug != "ai" {
			t.Fatalf("search filter: %+v err=%v", posts, err)
		}
		posts, err = repo.List(PostListFilter{Search: "50%"})
		if err != nil || len(posts) != 0 {
			t.Fatalf("wildcard search should match nothing: %+v err=%v", posts, err)
		}
	})
}

func TestPostUpdateKeepsOtherFields(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		post := samplePost("Titre", "titre", time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC))
		post.ImageURL = strPtr("https://images.example.com/a.jpg")
		if err := repo.Create(post); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		updated, err := repo.Update(post.ID, models.PostPatch{Title: strPtr("Nouveau titre")})
		if err != nil || updated == nil {
			t.Fatalf("update failed: %v %v", updated, err)
		}
		if updated.Title != "Nouveau titre" {
			t.Fatalf("title not updated: %s", updated.Title)
		}
		if updated.Slug != "titre" || updated.Excerpt != post.Excerpt || updated.Category != post.Category {
			t.Fatalf("other fields changed: %+v", updated)
		}
		if updated.ImageURL == nil || *updated.ImageURL != "https://images.example.com/a.jpg" {
			t.Fatalf("image url changed: %v", updated.ImageURL)
		}
		if !updated.Date.Equal(post.Date) {
			t.Fatalf("date changed: %v vs %v", updated.Date, post.Date)
		}

		missing, err := repo.Update(12345, models.PostPatch{Title: strPtr("x")})
		if err != nil || missing != nil {
			t.Fatalf("update unknown should return nil, got %+v err=%v", missing, err)
		}
	})
}

func TestPostCountBySlug(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Posts()
		post := samplePost("a", "same", time.Time{})
		if err := repo.Create(post); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if n, err := repo.CountBySlug("same", 0); err != nil || n != 1 {
			t.Fatalf("count: n=%d err=%v", n, err)
		}
		if n, err := repo.CountBySlug("same", post.ID); err != nil || n != 0 {
			t.Fatalf("count excluding self: n=%d err=%v", n, err)
		}
	})
}

func TestApplicationListOrderStable(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Applications()
		apps := []*models.Application{
			{Title: "third", Icon: "fas fa-robot", URL: "#", Order: 3},
			{Title: "first-a", Icon: "fas fa-robot", URL: "#", Order: 1},
			{Title: "first-b", Icon: "fas fa-robot", URL: "#", Order: 1},
			{Title: "second", Icon: "fas fa-robot", URL: "#", Order: 2},
		}
		for _, app := range apps {
			if err := repo.Create(app); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}
		list, err := repo.List(ApplicationListFilter{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		want := []string{"first-a", "first-b", "second", "third"}
		for i, title := range want {
			if list[i].Title != title {
				t.Fatalf("position %d: want %s got %s", i, title, list[i].Title)
			}
		}
		if list[0].Language != "fr" {
			t.Fatalf("expected default language fr, got %s", list[0].Language)
		}

		order := 0
		updated, err := repo.Update(apps[0].ID, models.ApplicationPatch{Order: &order})
		if err != nil || updated == nil || updated.Order != 0 || updated.Title != "third" {
			t.Fatalf("update failed: %+v err=%v", updated, err)
		}
		list, _ = repo.List(ApplicationListFilter{})
		if list[0].Title != "third" {
			t.Fatalf("expected reordered app first, got %s", list[0].Title)
		}
	})
}

func TestContactCreateStampsStatusAndDate(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		store.SetClock(func() time.Time { return fixed })

		repo := store.Contacts()
		first := &models.ContactSubmission{Name: "Ana", Email: "ana@example.com", Subject: "Bonjour", Message: "Salut", Status: "archived"}
		if err := repo.Create(first); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if first.Status != "new" || !first.Date.Equal(fixed) {
			t.Fatalf("unexpected stamps: %+v", first)
		}

		store.SetClock(func() time.Time { return fixed.Add(time.Hour) })
		second := &models.ContactSubmission{Name: "Bo", Email: "bo@example.com", Subject: "Hi", Message: "Hello"}
		if err := repo.Create(second); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		list, err := repo.List()
		if err != nil || len(list) != 2 {
			t.Fatalf("list failed: %+v err=%v", list, err)
		}
		if list[0].ID != second.ID {
			t.Fatalf("expected newest submission first")
		}
		got, err := repo.GetByID(first.ID)
		if err != nil || got == nil || got.Name != "Ana" {
			t.Fatalf("get failed: %+v err=%v", got, err)
		}
	})
}

func TestChatbotQaListFiltersByLanguage(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.ChatbotQas()
		items := []*models.ChatbotQa{
			{Language: "fr", Keywords: models.StringArray{"prix", "tarif"}, Question: "Prix ?", Answer: "A"},
			{Language: "en", Keywords: models.StringArray{"price"}, Question: "Price?", Answer: "B"},
			{Keywords: models.StringArray{"ia"}, Question: "IA ?", Answer: "C"},
		}
		for _, qa := range items {
			if err := repo.Create(qa); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		fr, err := repo.List("fr")
		if err != nil || len(fr) != 2 {
			t.Fatalf("fr list: %+v err=%v", fr, err)
		}
		if fr[0].Answer != "A" || fr[1].Answer != "C" {
			t.Fatalf("unexpected fr order: %+v", fr)
		}
		if len(fr[0].Keywords) != 2 || fr[0].Keywords[1] != "tarif" {
			t.Fatalf("keywords not round-tripped: %+v", fr[0].Keywords)
		}

		def, err := repo.List("")
		if err != nil || len(def) != 2 {
			t.Fatalf("empty language should default to fr: %+v err=%v", def, err)
		}
		en, err := repo.List("en")
		if err != nil || len(en) != 1 || en[0].Answer != "B" {
			t.Fatalf("en list: %+v err=%v", en, err)
		}
	})
}

func TestUserLookup(t *testing.T) {
	forEachStore(t, func(t *testing.T, store clockedStore) {
		repo := store.Users()
		user := &models.User{Username: "admin", Password: "password"}
		if err := repo.Create(user); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByUsername("admin")
		if err != nil || got == nil || got.ID != user.ID {
			t.Fatalf("lookup failed: %+v err=%v", got, err)
		}
		missing, err := repo.GetByUsername("nobody")
		if err != nil || missing != nil {
			t.Fatalf("expected nil for unknown user, got %+v err=%v", missing, err)
		}
		if n, err := repo.Count(); err != nil || n != 1 {
			t.Fatalf("count: n=%d err=%v", n, err)
		}
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	post := samplePost("a", "a", time.Time{})
	post.ImageURL = strPtr("one")
	if err := store.Posts().Create(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	*post.ImageURL = "mutated"

	got, _ := store.Posts().GetByID(post.ID)
	if got.ImageURL == nil || *got.ImageURL != "one" {
		t.Fatalf("stored value was aliased: %v", got.ImageURL)
	}
	got.Title = "changed"
	again, _ := store.Posts().GetByID(post.ID)
	if again.Title != "a" {
		t.Fatalf("returned value was aliased")
	}
}
