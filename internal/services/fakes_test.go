package services

import (
	"context"
	"strings"

	"GameReviewAPI/internal/model"
)

// In-memory store fakes backing the service tests. They honor the same
// error taxonomy as the pgx repositories.

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return model.ErrConflict
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	list := []model.User{}
	for _, u := range f.users {
		list = append(list, *u)
	}
	return list, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id, username, email string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	for otherID, other := range f.users {
		if otherID != id && (other.Username == username || other.Email == email) {
			return nil, model.ErrConflict
		}
	}
	u.Username = username
	u.Email = email
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[string]*model.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]*model.Category{}}
}

func (f *fakeCategoryStore) Create(ctx context.Context, c *model.Category) error {
	for _, existing := range f.categories {
		if existing.Name == c.Name {
			return model.ErrConflict
		}
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id string) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	list := []model.Category{}
	for _, c := range f.categories {
		list = append(list, *c)
	}
	return list, nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, id, name string) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	c.Name = name
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeGameStore struct {
	games map[string]*model.GameDetail
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{games: map[string]*model.GameDetail{}}
}

func (f *fakeGameStore) Create(ctx context.Context, g *model.Game) error {
	f.games[g.ID] = &model.GameDetail{Game: *g}
	return nil
}

func (f *fakeGameStore) GetByID(ctx context.Context, id string) (*model.GameDetail, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGameStore) List(ctx context.Context, search, categoryID string) ([]model.GameDetail, error) {
	list := []model.GameDetail{}
	for _, g := range f.games {
		if search != "" && !strings.Contains(strings.ToLower(g.Title), strings.ToLower(search)) {
			continue
		}
		if categoryID != "" && (g.CategoryID == nil || *g.CategoryID != categoryID) {
			continue
		}
		list = append(list, *g)
	}
	return list, nil
}

func (f *fakeGameStore) Update(ctx context.Context, g *model.Game) (*model.Game, error) {
	existing, ok := f.games[g.ID]
	if !ok {
		return nil, model.ErrNotFound
	}
	existing.Title = g.Title
	existing.Description = g.Description
	existing.CategoryID = g.CategoryID
	existing.ImageURL = g.ImageURL
	cp := existing.Game
	return &cp, nil
}

func (f *fakeGameStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.games[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.games, id)
	return nil
}

func (f *fakeGameStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.games[id]
	return ok, nil
}

type fakeReviewStore struct {
	reviews map[string]*model.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[string]*model.Review{}}
}

func (f *fakeReviewStore) Create(ctx context.Context, r *model.Review) error {
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewStore) GetByID(ctx context.Context, id string) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewStore) ListByGame(ctx context.Context, gameID string) ([]model.Review, error) {
	list := []model.Review{}
	for _, r := range f.reviews {
		if r.GameID == gameID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (f *fakeReviewStore) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	list := []model.Review{}
	for _, r := range f.reviews {
		if r.UserID == userID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (f *fakeReviewStore) Update(ctx context.Context, id string, rating int, text string) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	r.Rating = rating
	r.ReviewText = text
	cp := *r
	return &cp, nil
}

func (f *fakeReviewStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.reviews[id]
	return ok, nil
}

type fakeCommentStore struct {
	comments map[string]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[string]*model.Comment{}}
}

func (f *fakeCommentStore) Create(ctx context.Context, cm *model.Comment) error {
	cp := *cm
	f.comments[cm.ID] = &cp
	return nil
}

func (f *fakeCommentStore) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	cm, ok := f.comments[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *cm
	return &cp, nil
}

func (f *fakeCommentStore) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	list := []model.Comment{}
	for _, cm := range f.comments {
		if cm.ReviewID == reviewID {
			list = append(list, *cm)
		}
	}
	return list, nil
}

func (f *fakeCommentStore) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	list := []model.Comment{}
	for _, cm := range f.comments {
		if cm.UserID == userID {
			list = append(list, *cm)
		}
	}
	return list, nil
}

func (f *fakeCommentStore) Update(ctx context.Context, id, text string) (*model.Comment, error) {
	cm, ok := f.comments[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cm.CommentText = text
	cp := *cm
	return &cp, nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.comments[id]
	return ok, nil
}

type fakeReportStore struct {
	reports []model.Report
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{}
}

func (f *fakeReportStore) Create(ctx context.Context, rp *model.Report) error {
	f.reports = append(f.reports, *rp)
	return nil
}

func (f *fakeReportStore) List(ctx context.Context) ([]model.Report, error) {
	return append([]model.Report{}, f.reports...), nil
}

type fakeMailer struct {
	sent []*model.Report
}

func (f *fakeMailer) SendReportNotification(ctx context.Context, toEmail string, report *model.Report) error {
	f.sent = append(f.sent, report)
	return nil
}
