package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/cache"
	"dreamjournal-be/internal/entities"
	"dreamjournal-be/internal/models"
	"dreamjournal-be/internal/repository"
)

const (
	maxTitleLength   = 100
	maxContentLength = 5000
	maxTags          = 10

	dreamListTTL = 5 * time.Minute
)

// DreamService defines the interface for dream business logic. Every
// operation is scoped to the authenticated owner passed as userID.
type DreamService interface {
	List(userID, search string) ([]*entities.Dream, error)
	Get(userID, id string) (*entities.Dream, error)
	Create(userID string, req *models.CreateDreamRequest) (*entities.Dream, error)
	Update(userID, id string, req *models.UpdateDreamRequest) (*entities.Dream, error)
	Delete(userID, id string) error
	ToggleFavorite(userID, id string) (*entities.Dream, error)
}

type dreamService struct {
	repo  repository.DreamRepository
	cache cache.Cache
	ctx   context.Context
}

// NewDreamService creates a new dream service
func NewDreamService(repo repository.DreamRepository, cacheClient cache.Cache) DreamService {
	svc := &dreamService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func dreamListKey(userID string) string {
	return fmt.Sprintf("dreams:user:%s", userID)
}

func (s *dreamService) invalidateList(userID string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, dreamListKey(userID))
	}
}

// validateDream collects every violated field constraint into one error
func validateDream(dream *entities.Dream) error {
	var violations []string

	if strings.TrimSpace(dream.Title) == "" {
		violations = append(violations, "Title is required")
	} else if utf8.RuneCountInString(dream.Title) > maxTitleLength {
		violations = append(violations, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
	}

	if strings.TrimSpace(dream.Content) == "" {
		violations = append(violations, "Content is required")
	} else if utf8.RuneCountInString(dream.Content) > maxContentLength {
		violations = append(violations, fmt.Sprintf("Content cannot exceed %d characters", maxContentLength))
	}

	if len(dream.Tags) > maxTags {
		violations = append(violations, fmt.Sprintf("Cannot have more than %d tags", maxTags))
	}

	if !dream.Mood.IsValid() {
		violations = append(violations, fmt.Sprintf("Mood must be one of: %s, %s, %s, %s, %s, %s",
			entities.MoodHappy, entities.MoodSad, entities.MoodScared,
			entities.MoodConfused, entities.MoodExcited, entities.MoodNeutral))
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError(violations...)
	}
	return nil
}

// List retrieves all dreams for a user, newest occurrence first. Unfiltered
// lists are served from cache when available.
func (s *dreamService) List(userID, search string) ([]*entities.Dream, error) {
	if search == "" && s.cache != nil {
		var cached []*entities.Dream
		if err := s.cache.GetJSON(s.ctx, dreamListKey(userID), &cached); err == nil {
			return cached, nil
		}
	}

	dreams, err := s.repo.FindByUser(userID, search)
	if err != nil {
		return nil, err
	}

	if search == "" && s.cache != nil {
		s.cache.SetJSON(s.ctx, dreamListKey(userID), dreams, dreamListTTL)
	}

	return dreams, nil
}

// Get retrieves a single dream owned by the user
func (s *dreamService) Get(userID, id string) (*entities.Dream, error) {
	return s.repo.FindByID(id, userID)
}

// Create validates and persists a new dream with the caller as owner,
// applying field defaults for anything the request leaves out.
func (s *dreamService) Create(userID string, req *models.CreateDreamRequest) (*entities.Dream, error) {
	dream := &entities.Dream{
		UserID:  userID,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Date:    time.Now().UTC(),
		Mood:    entities.MoodNeutral,
		Tags:    []string{},
	}

	if req.Date != nil {
		dream.Date = req.Date.UTC()
	}
	if req.Mood != nil {
		dream.Mood = entities.Mood(*req.Mood)
	}
	if req.Tags != nil {
		dream.Tags = req.Tags
	}
	if req.IsLucid != nil {
		dream.IsLucid = *req.IsLucid
	}

	if err := validateDream(dream); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(dream)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return created, nil
}

// Update applies the allow-listed fields of req to an existing dream. Fields
// not present in the request keep their stored values.
func (s *dreamService) Update(userID, id string, req *models.UpdateDreamRequest) (*entities.Dream, error) {
	dream, err := s.repo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		dream.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		dream.Content = *req.Content
	}
	if req.Date != nil {
		dream.Date = req.Date.UTC()
	}
	if req.Mood != nil {
		dream.Mood = entities.Mood(*req.Mood)
	}
	if req.Tags != nil {
		dream.Tags = req.Tags
	}
	if req.IsLucid != nil {
		dream.IsLucid = *req.IsLucid
	}
	if req.IsFavorite != nil {
		dream.IsFavorite = *req.IsFavorite
	}

	if err := validateDream(dream); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(dream)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return updated, nil
}

// Delete permanently removes a dream owned by the user
func (s *dreamService) Delete(userID, id string) error {
	if err := s.repo.Delete(id, userID); err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}

// ToggleFavorite flips the favorite flag and returns the updated dream
func (s *dreamService) ToggleFavorite(userID, id string) (*entities.Dream, error) {
	dream, err := s.repo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}

	dream.IsFavorite = !dream.IsFavorite

	updated, err := s.repo.Update(dream)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return updated, nil
}
