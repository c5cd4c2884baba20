package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/models"
)

// MemoryStore 进程内内容存储，重启即丢失
// 所有集合共用一把读写锁，单次增删改均为原子操作；返回值都是副本
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[uint]models.User
	posts        map[uint]models.Post
	applications map[uint]models.Application
	contacts     map[uint]models.ContactSubmission
	chatbotQas   map[uint]models.ChatbotQa

	// 自增计数器只增不减，删除后 id 不复用
	nextUserID        uint
	nextPostID        uint
	nextApplicationID uint
	nextContactID     uint
	nextChatbotQaID   uint
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:               time.Now,
		users:             map[uint]models.User{},
		posts:             map[uint]models.Post{},
		applications:      map[uint]models.Application{},
		contacts:          map[uint]models.ContactSubmission{},
		chatbotQas:        map[uint]models.ChatbotQa{},
		nextUserID:        1,
		nextPostID:        1,
		nextApplicationID: 1,
		nextContactID:     1,
		nextChatbotQaID:   1,
	}
}

// SetClock 替换时间来源，测试用
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
}

func (s *MemoryStore) Users() UserRepository               { return memoryUsers{s} }
func (s *MemoryStore) Posts() PostRepository               { return memoryPosts{s} }
func (s *MemoryStore) Applications() ApplicationRepository { return memoryApplications{s} }
func (s *MemoryStore) Contacts() ContactRepository         { return memoryContacts{s} }
func (s *MemoryStore) ChatbotQas() ChatbotQaRepository     { return memoryChatbotQas{s} }

// Close 内存存储无需释放资源
func (s *MemoryStore) Close() error { return nil }

// sortedIDs 返回升序 id，作为各列表的稳定基准顺序（即插入顺序）
func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) GetByID(id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r memoryUsers) GetByUsername(username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.users) {
		if user := r.s.users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

func (r memoryUsers) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r memoryUsers) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}

func (r memoryUsers) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

type memoryPosts struct{ s *MemoryStore }

func (r memoryPosts) List(filter PostListFilter) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	posts := make([]models.Post, 0, len(r.s.posts))
	for _, id := range sortedIDs(r.s.posts) {
		post := r.s.posts[id]
		if filter.Language != "" && post.Language != filter.Language {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		if search != "" && !containsFold(search, post.Title, post.Slug, post.Excerpt) {
			continue
		}
		posts = append(posts, post.Clone())
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func (r memoryPosts) GetByID(id uint) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	post, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	out := post.Clone()
	return &out, nil
}

func (r memoryPosts) GetBySlug(slug string) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range sortedIDs(r.s.posts) {
		if post := r.s.posts[id]; post.Slug == slug {
			out := post.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

func (r memoryPosts) Create(post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post.ID = r.s.nextPostID
	r.s.nextPostID++
	if post.Date.IsZero() {
		post.Date = r.s.now()
	}
	if post.Language == "" {
		post.Language = constants.DefaultLanguage
	}
	r.s.posts[post.ID] = post.Clone()
	return nil
}

func (r memoryPosts) Update(id uint, patch models.PostPatch) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	post = post.Clone()
	patch.Apply(&post)
	r.s.posts[id] = post
	out := post.Clone()
	return &out, nil
}

func (r memoryPosts) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return false, nil
	}
	delete(r.s.posts, id)
	return true, nil
}

func (r memoryPosts) CountBySlug(slug string, excludeID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for id, post := range r.s.posts {
		if id != excludeID && post.Slug == slug {
			count++
		}
	}
	return count, nil
}

type memoryApplications struct{ s *MemoryStore }

func (r memoryApplications) List(filter ApplicationListFilter) ([]models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	apps := make([]models.Application, 0, len(r.s.applications))
	for _, id := range sortedIDs(r.s.applications) {
		app := r.s.applications[id]
		if filter.Language != "" && app.Language != filter.Language {
			continue
		}
		apps = append(apps, app.Clone())
	}
	// 稳定排序：order 相同保持插入顺序
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].Order < apps[j].Order
	})
	return apps, nil
}

func (r memoryApplications) GetByID(id uint) (*models.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, nil
	}
	out := app.Clone()
	return &out, nil
}

func (r memoryApplications) Create(app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app.ID = r.s.nextApplicationID
	r.s.nextApplicationID++
	if app.Language == "" {
		app.Language = constants.DefaultLanguage
	}
	r.s.applications[app.ID] = app.Clone()
	return nil
}

func (r memoryApplications) Update(id uint, patch models.ApplicationPatch) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, nil
	}
	app = app.Clone()
	patch.Apply(&app)
	r.s.applications[id] = app
	out := app.Clone()
	return &out, nil
}

func (r memoryApplications) Delete(id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[id]; !ok {
		return false, nil
	}
	delete(r.s.applications, id)
	return true, nil
}

type memoryContacts struct{ s *MemoryStore }

func (r memoryContacts) List() ([]models.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]models.ContactSubmission, 0, len(r.s.contacts))
	for _, id := range sortedIDs(r.s.contacts) {
		items = append(items, r.s.contacts[id])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (r memoryContacts) GetByID(id uint) (*models.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.contacts[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r memoryContacts) Create(submission *models.ContactSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	submission.ID = r.s.nextContactID
	r.s.nextContactID++
	submission.Date = r.s.now()
	submission.Status = constants.ContactStatusNew
	r.s.contacts[submission.ID] = *submission
	return nil
}

type memoryChatbotQas struct{ s *MemoryStore }

func (r memoryChatbotQas) List(language string) ([]models.ChatbotQa, error) {
	if language == "" {
		language = constants.DefaultLanguage
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]models.ChatbotQa, 0)
	for _, id := range sortedIDs(r.s.chatbotQas) {
		if qa := r.s.chatbotQas[id]; qa.Language == language {
			items = append(items, qa.Clone())
		}
	}
	return items, nil
}

func (r memoryChatbotQas) Create(qa *models.ChatbotQa) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	qa.ID = r.s.nextChatbotQaID
	r.s.nextChatbotQaID++
	if qa.Language == "" {
		qa.Language = constants.DefaultLanguage
	}
	r.s.chatbotQas[qa.ID] = qa.Clone()
	return nil
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
