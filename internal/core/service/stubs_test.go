package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// In-memory stand-ins for the Mongo repositories and the Redis token cache.

type stubUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("user", id)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NotFound("user", username)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.NotFound("user", user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return domain.NotFound("user", id)
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		all = append(all, cloneUser(r.users[id]))
	}

	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type stubTokenCache struct {
	tokens  map[int]string
	deleted []int
}

func newStubTokenCache() *stubTokenCache {
	return &stubTokenCache{tokens: make(map[int]string)}
}

func (c *stubTokenCache) Set(_ context.Context, userID int, token string, _ time.Duration) error {
	c.tokens[userID] = token
	return nil
}

func (c *stubTokenCache) Get(_ context.Context, userID int) (string, error) {
	return c.tokens[userID], nil
}

func (c *stubTokenCache) Delete(_ context.Context, userID int) error {
	delete(c.tokens, userID)
	c.deleted = append(c.deleted, userID)
	return nil
}

func (c *stubTokenCache) IsWhitelisted(_ context.Context, userID int, token string) (bool, error) {
	cached, ok := c.tokens[userID]
	return ok && cached == token, nil
}

func (c *stubTokenCache) deleteCount(userID int) int {
	n := 0
	for _, id := range c.deleted {
		if id == userID {
			n++
		}
	}
	return n
}

type stubWizardRepo struct {
	wizards map[int]*domain.Wizard
	nextID  int
}

func newStubWizardRepo() *stubWizardRepo {
	return &stubWizardRepo{wizards: make(map[int]*domain.Wizard), nextID: 1}
}

func cloneWizard(w *domain.Wizard) *domain.Wizard {
	if w == nil {
		return nil
	}
	clone := *w
	return &clone
}

func (r *stubWizardRepo) FindByID(_ context.Context, id int) (*domain.Wizard, error) {
	w, ok := r.wizards[id]
	if !ok {
		return nil, domain.NotFound("wizard", id)
	}
	return cloneWizard(w), nil
}

func (r *stubWizardRepo) FindIDsByName(_ context.Context, name string) ([]int, error) {
	var ids []int
	for id, w := range r.wizards {
		if strings.EqualFold(w.Name, name) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *stubWizardRepo) Create(_ context.Context, wizard *domain.Wizard) (*domain.Wizard, error) {
	stored := cloneWizard(wizard)
	stored.ID = r.nextID
	r.nextID++
	r.wizards[stored.ID] = stored
	return cloneWizard(stored), nil
}

func (r *stubWizardRepo) Update(_ context.Context, wizard *domain.Wizard) error {
	if _, ok := r.wizards[wizard.ID]; !ok {
		return domain.NotFound("wizard", wizard.ID)
	}
	r.wizards[wizard.ID] = cloneWizard(wizard)
	return nil
}

func (r *stubWizardRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.wizards[id]; !ok {
		return domain.NotFound("wizard", id)
	}
	delete(r.wizards, id)
	return nil
}

func (r *stubWizardRepo) ListAll(_ context.Context) ([]*domain.Wizard, error) {
	ids := make([]int, 0, len(r.wizards))
	for id := range r.wizards {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]*domain.Wizard, 0, len(ids))
	for _, id := range ids {
		all = append(all, cloneWizard(r.wizards[id]))
	}
	return all, nil
}

type stubArtifactRepo struct {
	artifacts map[string]*domain.Artifact
	// setOwnerCalls records every SetOwner invocation in order, as
	// "id->ownerID" with "nil" for detach.
	setOwnerCalls []string
}

func newStubArtifactRepo() *stubArtifactRepo {
	return &stubArtifactRepo{artifacts: make(map[string]*domain.Artifact)}
}

func cloneArtifact(a *domain.Artifact) *domain.Artifact {
	if a == nil {
		return nil
	}
	clone := *a
	if a.OwnerID != nil {
		owner := *a.OwnerID
		clone.OwnerID = &owner
	}
	return &clone
}

func (r *stubArtifactRepo) FindByID(_ context.Context, id string) (*domain.Artifact, error) {
	a, ok := r.artifacts[id]
	if !ok {
		return nil, domain.NotFound("artifact", id)
	}
	return cloneArtifact(a), nil
}

func (r *stubArtifactRepo) Create(_ context.Context, artifact *domain.Artifact) error {
	r.artifacts[artifact.ID] = cloneArtifact(artifact)
	return nil
}

func (r *stubArtifactRepo) Update(_ context.Context, artifact *domain.Artifact) error {
	if _, ok := r.artifacts[artifact.ID]; !ok {
		return domain.NotFound("artifact", artifact.ID)
	}
	r.artifacts[artifact.ID] = cloneArtifact(artifact)
	return nil
}

func (r *stubArtifactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.artifacts[id]; !ok {
		return domain.NotFound("artifact", id)
	}
	delete(r.artifacts, id)
	return nil
}

func (r *stubArtifactRepo) List(_ context.Context, filter ports.ListArtifactsFilter) ([]*domain.Artifact, int64, error) {
	var matched []*domain.Artifact
	for _, a := range r.artifacts {
		if filter.ID != "" && a.ID != filter.ID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Description != "" && !strings.Contains(strings.ToLower(a.Description), strings.ToLower(filter.Description)) {
			continue
		}
		if len(filter.OwnerIDs) > 0 {
			if a.OwnerID == nil {
				continue
			}
			found := false
			for _, id := range filter.OwnerIDs {
				if *a.OwnerID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		matched = append(matched, cloneArtifact(a))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubArtifactRepo) ListAll(_ context.Context) ([]*domain.Artifact, error) {
	all := make([]*domain.Artifact, 0, len(r.artifacts))
	for _, a := range r.artifacts {
		all = append(all, cloneArtifact(a))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubArtifactRepo) SetOwner(_ context.Context, id string, ownerID *int) error {
	a, ok := r.artifacts[id]
	if !ok {
		return domain.NotFound("artifact", id)
	}
	if ownerID == nil {
		a.OwnerID = nil
		r.setOwnerCalls = append(r.setOwnerCalls, id+"->nil")
	} else {
		owner := *ownerID
		a.OwnerID = &owner
		r.setOwnerCalls = append(r.setOwnerCalls, id+"->"+strconv.Itoa(owner))
	}
	return nil
}

func (r *stubArtifactRepo) DetachAllFromOwner(_ context.Context, ownerID int) error {
	for _, a := range r.artifacts {
		if a.OwnerID != nil && *a.OwnerID == ownerID {
			a.OwnerID = nil
		}
	}
	return nil
}

func (r *stubArtifactRepo) CountByOwner(_ context.Context, ownerID int) (int64, error) {
	var n int64
	for _, a := range r.artifacts {
		if a.OwnerID != nil && *a.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubArtifactRepo) ListByOwner(_ context.Context, ownerID int) ([]*domain.Artifact, error) {
	var owned []*domain.Artifact
	for _, a := range r.artifacts {
		if a.OwnerID != nil && *a.OwnerID == ownerID {
			owned = append(owned, cloneArtifact(a))
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned, nil
}

type stubChatClient struct {
	reply    string
	messages []ports.ChatMessage
}

func (c *stubChatClient) Generate(_ context.Context, messages []ports.ChatMessage) (string, error) {
	c.messages = messages
	return c.reply, nil
}
