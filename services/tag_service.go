package services

import (
	"errors"

	"querystack/models"
	"querystack/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	AddTag(name, description string) (*models.Tag, error)
	ProcessTags(tags []models.TagInput) []models.Tag
	GetTagCountMap() (map[string]int, error)
	GetTagByName(name string) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// AddTag resolves a name to a persisted tag, creating it on first use. An
// existing tag is returned unchanged; its description is not updated.
func (s *tagService) AddTag(name, description string) (*models.Tag, error) {
	existing, err := s.tagRepo.GetByName(name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{
		Name:        name,
		Description: description,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ProcessTags resolves the inputs to persisted tags, keeping one entry per
// distinct name in first-occurrence order. Any resolution failure yields an
// empty slice; callers must reject the whole operation in that case, since
// an empty result is indistinguishable from "no tags supplied".
func (s *tagService) ProcessTags(tags []models.TagInput) []models.Tag {
	seen := make(map[string]bool, len(tags))
	resolved := make([]models.Tag, 0, len(tags))

	for _, input := range tags {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		tag, err := s.AddTag(input.Name, input.Description)
		if err != nil {
			return []models.Tag{}
		}
		resolved = append(resolved, *tag)
	}

	return resolved
}

// GetTagCountMap maps every tag name to the number of questions referencing
// it. A nil map with a nil error means no tags exist at all; tags nothing
// references count as zero.
func (s *tagService) GetTagCountMap() (map[string]int, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}

	counts, err := s.tagRepo.CountQuestionsByTag()
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(tags))
	for _, tag := range tags {
		result[tag.Name] = counts[tag.Name]
	}
	return result, nil
}

func (s *tagService) GetTagByName(name string) (*models.Tag, error) {
	return s.tagRepo.GetByName(name)
}
