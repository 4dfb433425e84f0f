package repositories

import (
	"querystack/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	CountQuestionsByTag() (map[string]int, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}

// CountQuestionsByTag counts live questions per tag name. Tags nothing
// references are absent from the result.
func (r *tagRepository) CountQuestionsByTag() (map[string]int, error) {
	var results []struct {
		Name  string
		Count int
	}

	query := `
		SELECT
			t.name AS name,
			COUNT(qt.question_id) AS count
		FROM question_tags qt
		JOIN tags t ON qt.tag_id = t.id
		JOIN questions q ON qt.question_id = q.id
		WHERE q.deleted_at IS NULL
		GROUP BY t.name
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, result := range results {
		counts[result.Name] = result.Count
	}

	return counts, nil
}
