package seed

import (
	"testing"

	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"
)

func TestRunSeedsEmptyStore(t *testing.T) {
	store := repository.NewMemoryStore()
	result, err := Run(store, Options{})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if result.Users != 1 || result.Posts != 3 || result.Applications != 6 || result.ChatbotQas != 6 {
		t.Fatalf("unexpected result: %+v", result)
	}

	admin, err := store.Users().GetByUsername("admin")
	if err != nil || admin == nil || admin.Password != "password" {
		t.Fatalf("default admin missing: %+v err=%v", admin, err)
	}

	posts, _ := store.Posts().List(repository.PostListFilter{})
	if posts[0].Slug != "ia-transformation-entreprise" || posts[2].Slug != "automatisation-intelligente-chatbots" {
		t.Fatalf("unexpected post order: %s, %s", posts[0].Slug, posts[2].Slug)
	}

	apps, _ := store.Applications().List(repository.ApplicationListFilter{})
	if apps[0].Title != "IA Assistant" || apps[5].Title != "IdeaLab" {
		t.Fatalf("unexpected application order: %s, %s", apps[0].Title, apps[5].Title)
	}

	en, _ := store.ChatbotQas().List("en")
	if len(en) != 3 {
		t.Fatalf("expected 3 en chatbot entries, got %d", len(en))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	if _, err := Run(store, Options{}); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	result, err := Run(store, Options{})
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if result != (Result{}) {
		t.Fatalf("second run should write nothing, got %+v", result)
	}
}

func TestRunPrefersPasswordHash(t *testing.T) {
	store := repository.NewMemoryStore()
	hash := "$2a$10$abcdefghijklmnopqrstuuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZa"
	if _, err := Run(store, Options{AdminUsername: "owner", AdminPassword: "ignored", AdminPasswordHash: hash}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	user, _ := store.Users().GetByUsername("owner")
	if user == nil || user.Password != hash {
		t.Fatalf("expected stored hash, got %+v", user)
	}
}

func TestRunSkipsConfiguredLanguage(t *testing.T) {
	store := repository.NewMemoryStore()
	custom := &models.ChatbotQa{Language: "en", Keywords: models.StringArray{"hello"}, Question: "Hi", Answer: "Hello"}
	if err := store.ChatbotQas().Create(custom); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	result, err := Run(store, Options{})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if result.ChatbotQas != 3 {
		t.Fatalf("expected only fr entries seeded, got %d", result.ChatbotQas)
	}
	en, _ := store.ChatbotQas().List("en")
	if len(en) != 1 {
		t.Fatalf("en entries should be untouched, got %d", len(en))
	}
}
