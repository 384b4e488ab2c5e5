package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"title-review-api/models"
)

// In-memory stand-ins for the gorm repositories. They reproduce the two
// behaviors the services depend on: gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey on unique-index violations.

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[uint]*models.User{}}
}

func (r *memUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, user.ID)
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByUsernameOrEmail(username, email string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetList(params models.UserListParams) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	err   error
	sent  []string
	codes []string
}

func (n *fakeNotifier) SendConfirmationCode(email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, email)
	n.codes = append(n.codes, code)
	return nil
}

func (n *fakeNotifier) Codes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.codes...)
}

type memTitleRepo struct {
	titles map[uint]*models.Title
}

func newMemTitleRepo(titles ...*models.Title) *memTitleRepo {
	r := &memTitleRepo{titles: map[uint]*models.Title{}}
	for _, t := range titles {
		r.titles[t.ID] = t
	}
	return r
}

func (r *memTitleRepo) Create(title *models.Title) error {
	title.ID = uint(len(r.titles) + 1)
	r.titles[title.ID] = title
	return nil
}

func (r *memTitleRepo) GetByID(id uint) (*models.Title, error) {
	t, ok := r.titles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *memTitleRepo) GetList(params models.TitleListParams) ([]models.Title, int64, error) {
	var out []models.Title
	for _, t := range r.titles {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *memTitleRepo) Update(title *models.Title) error {
	r.titles[title.ID] = title
	return nil
}

func (r *memTitleRepo) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	title.Genres = genres
	return nil
}

func (r *memTitleRepo) Delete(title *models.Title) error {
	delete(r.titles, title.ID)
	return nil
}

type memReviewRepo struct {
	nextID  uint
	reviews map[uint]*models.Review
	authors map[uint]*models.User
}

func newMemReviewRepo(authors ...*models.User) *memReviewRepo {
	r := &memReviewRepo{nextID: 1, reviews: map[uint]*models.Review{}, authors: map[uint]*models.User{}}
	for _, a := range authors {
		r.authors[a.ID] = a
	}
	return r
}

func (r *memReviewRepo) Create(review *models.Review) error {
	for _, existing := range r.reviews {
		if existing.TitleID == review.TitleID && existing.AuthorID == review.AuthorID {
			return gorm.ErrDuplicatedKey
		}
	}
	review.ID = r.nextID
	r.nextID++
	r.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) GetByID(titleID, reviewID uint) (*models.Review, error) {
	review, ok := r.reviews[reviewID]
	if !ok || review.TitleID != titleID {
		return nil, gorm.ErrRecordNotFound
	}
	if author, ok := r.authors[review.AuthorID]; ok {
		review.Author = *author
	}
	return review, nil
}

func (r *memReviewRepo) GetList(titleID uint, params models.ListParams) ([]models.Review, int64, error) {
	var out []models.Review
	for _, review := range r.reviews {
		if review.TitleID == titleID {
			out = append(out, *review)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memReviewRepo) ExistsForAuthor(titleID, authorID uint) (bool, error) {
	for _, review := range r.reviews {
		if review.TitleID == titleID && review.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReviewRepo) Update(review *models.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) Delete(review *models.Review) error {
	delete(r.reviews, review.ID)
	return nil
}

type memCommentRepo struct {
	nextID   uint
	comments map[uint]*models.Comment
	authors  map[uint]*models.User
}

func newMemCommentRepo(authors ...*models.User) *memCommentRepo {
	r := &memCommentRepo{nextID: 1, comments: map[uint]*models.Comment{}, authors: map[uint]*models.User{}}
	for _, a := range authors {
		r.authors[a.ID] = a
	}
	return r
}

func (r *memCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) GetByID(reviewID, commentID uint) (*models.Comment, error) {
	comment, ok := r.comments[commentID]
	if !ok || comment.ReviewID != reviewID {
		return nil, gorm.ErrRecordNotFound
	}
	if author, ok := r.authors[comment.AuthorID]; ok {
		comment.Author = *author
	}
	return comment, nil
}

func (r *memCommentRepo) GetList(reviewID uint, params models.ListParams) ([]models.Comment, int64, error) {
	var out []models.Comment
	for _, comment := range r.comments {
		if comment.ReviewID == reviewID {
			out = append(out, *comment)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memCommentRepo) Update(comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) Delete(comment *models.Comment) error {
	delete(r.comments, comment.ID)
	return nil
}

var errBoom = errors.New("smtp unreachable")
