package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/GoArmGo/UserPostApp/internal/core/ports"
	"github.com/GoArmGo/UserPostApp/internal/domain"
	"github.com/GoArmGo/UserPostApp/internal/messaging/payloads"
)

// fakeStore — in-memory хранилище для тестов сервисного слоя.
// Эмулирует семантику хранилища: назначение id, подгрузку постов,
// orphan removal при полном сохранении пользователя и каскадное удаление.
type fakeStore struct {
	users map[int64]domain.User
	posts map[int64]domain.Post

	nextUserID int64
	nextPostID int64

	// calls фиксирует каждое обращение к хранилищу, чтобы тесты могли
	// проверить, что валидация отработала до каких-либо обращений.
	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[int64]domain.User),
		posts:      make(map[int64]domain.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

func (s *fakeStore) record(call string) {
	s.calls = append(s.calls, call)
}

// seedUser кладет пользователя с постами прямо в хранилище, минуя сервис.
func (s *fakeStore) seedUser(user domain.User, posts ...domain.Post) domain.User {
	if user.ID == 0 {
		user.ID = s.nextUserID
		s.nextUserID++
	} else if user.ID >= s.nextUserID {
		s.nextUserID = user.ID + 1
	}
	user.Posts = nil
	s.users[user.ID] = user

	for _, p := range posts {
		if p.ID == 0 {
			p.ID = s.nextPostID
			s.nextPostID++
		} else if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
		p.UserID = user.ID
		s.posts[p.ID] = p
	}
	return user
}

func (s *fakeStore) userPosts(userID int64) []domain.Post {
	var out []domain.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeUserStorage struct {
	store *fakeStore
}

func (f *fakeUserStorage) FindAll(_ context.Context) ([]domain.User, error) {
	f.store.record("users.FindAll")

	var out []domain.User
	for _, u := range f.store.users {
		u.Posts = f.store.userPosts(u.ID)
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserStorage) FindByID(_ context.Context, id int64) (*domain.User, error) {
	f.store.record("users.FindByID")

	u, ok := f.store.users[id]
	if !ok {
		return nil, nil
	}
	u.Posts = f.store.userPosts(id)
	return &u, nil
}

func (f *fakeUserStorage) Save(_ context.Context, user *domain.User) error {
	f.store.record("users.Save")

	if user.ID == 0 {
		user.ID = f.store.nextUserID
		f.store.nextUserID++
	}

	kept := make(map[int64]bool, len(user.Posts))
	for i := range user.Posts {
		post := &user.Posts[i]
		if post.ID == 0 {
			post.ID = f.store.nextPostID
			f.store.nextPostID++
		}
		post.UserID = user.ID
		kept[post.ID] = true
		f.store.posts[post.ID] = *post
	}

	// orphan removal: посты пользователя, выпавшие из набора, удаляются
	for id, p := range f.store.posts {
		if p.UserID == user.ID && !kept[id] {
			delete(f.store.posts, id)
		}
	}

	stored := *user
	stored.Posts = nil
	f.store.users[user.ID] = stored
	return nil
}

func (f *fakeUserStorage) DeleteByID(_ context.Context, id int64) error {
	f.store.record("users.DeleteByID")

	delete(f.store.users, id)
	for postID, p := range f.store.posts {
		if p.UserID == id {
			delete(f.store.posts, postID)
		}
	}
	return nil
}

func (f *fakeUserStorage) ExistsByUserName(_ context.Context, userName string) (bool, error) {
	f.store.record("users.ExistsByUserName")

	for _, u := range f.store.users {
		if u.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStorage) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.store.record("users.ExistsByEmail")

	for _, u := range f.store.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakePostStorage struct {
	store *fakeStore
}

func (f *fakePostStorage) FindAll(_ context.Context) ([]domain.Post, error) {
	f.store.record("posts.FindAll")

	var out []domain.Post
	for _, p := range f.store.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePostStorage) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	f.store.record("posts.FindByID")

	p, ok := f.store.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePostStorage) Save(_ context.Context, post *domain.Post) error {
	f.store.record("posts.Save")

	if post.ID == 0 {
		post.ID = f.store.nextPostID
		f.store.nextPostID++
	}
	f.store.posts[post.ID] = *post
	return nil
}

func (f *fakePostStorage) DeleteByID(_ context.Context, id int64) error {
	f.store.record("posts.DeleteByID")

	delete(f.store.posts, id)
	return nil
}

// fakeTxManager выполняет fn без настоящей транзакции,
// передавая хранилища поверх общего fakeStore.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return fn(ctx, ports.Repositories{
		Users: &fakeUserStorage{store: m.store},
		Posts: &fakePostStorage{store: m.store},
	})
}

// recordingPublisher собирает опубликованные события.
type recordingPublisher struct {
	events []payloads.EntityEventPayload
}

func (p *recordingPublisher) PublishEntityEvent(_ context.Context, payload payloads.EntityEventPayload) error {
	p.events = append(p.events, payload)
	return nil
}

func newTestUserUseCase(store *fakeStore) (UserUseCase, *recordingPublisher) {
	publisher := &recordingPublisher{}
	uc := NewUserUseCase(
		&fakeUserStorage{store: store},
		&fakeTxManager{store: store},
		publisher,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return uc, publisher
}

func newTestPostUseCase(store *fakeStore) (PostUseCase, *recordingPublisher) {
	publisher := &recordingPublisher{}
	uc := NewPostUseCase(
		&fakePostStorage{store: store},
		&fakeTxManager{store: store},
		publisher,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return uc, publisher
}
