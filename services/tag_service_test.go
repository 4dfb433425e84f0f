package services

import (
	"errors"
	"testing"

	"querystack/config"
	"querystack/models"
	"querystack/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	return db
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *mockTagRepo) GetByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func (m *mockTagRepo) GetAll() ([]models.Tag, error) {
	args := m.Called()
	tags, _ := args.Get(0).([]models.Tag)
	return tags, args.Error(1)
}

func (m *mockTagRepo) CountQuestionsByTag() (map[string]int, error) {
	args := m.Called()
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

type TagServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	tagRepo repositories.TagRepository
	svc     TagService
}

func (s *TagServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.tagRepo = repositories.NewTagRepository(s.db)
	s.svc = NewTagService(s.tagRepo)
}

func TestTagServiceSuite(t *testing.T) {
	suite.Run(t, new(TagServiceSuite))
}

func (s *TagServiceSuite) TestAddTagCreatesNewTag() {
	tag, err := s.svc.AddTag("react", "react description")
	s.Require().NoError(err)
	s.NotZero(tag.ID)
	s.Equal("react", tag.Name)
	s.Equal("react description", tag.Description)
}

func (s *TagServiceSuite) TestAddTagReusesExistingTag() {
	first, err := s.svc.AddTag("javascript", "original description")
	s.Require().NoError(err)

	second, err := s.svc.AddTag("javascript", "a different description")
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("original description", second.Description)
}

func (s *TagServiceSuite) TestProcessTagsDeduplicatesByName() {
	resolved := s.svc.ProcessTags([]models.TagInput{
		{Name: "a", Description: "first"},
		{Name: "a", Description: "second"},
		{Name: "b"},
		{Name: "a"},
	})

	s.Require().Len(resolved, 2)
	s.Equal("a", resolved[0].Name)
	s.Equal("first", resolved[0].Description)
	s.Equal("b", resolved[1].Name)
}

func (s *TagServiceSuite) TestGetTagCountMapReturnsNilWhenNoTagsExist() {
	counts, err := s.svc.GetTagCountMap()
	s.Require().NoError(err)
	s.Nil(counts)
}

func (s *TagServiceSuite) TestGetTagCountMapZeroCountsWithoutQuestions() {
	_, err := s.svc.AddTag("android", "")
	s.Require().NoError(err)
	_, err = s.svc.AddTag("react", "")
	s.Require().NoError(err)

	counts, err := s.svc.GetTagCountMap()
	s.Require().NoError(err)
	s.Equal(map[string]int{"android": 0, "react": 0}, counts)
}

func (s *TagServiceSuite) TestGetTagCountMapCountsQuestionsPerTag() {
	javascript, err := s.svc.AddTag("javascript", "")
	s.Require().NoError(err)
	react, err := s.svc.AddTag("react", "")
	s.Require().NoError(err)
	_, err = s.svc.AddTag("android", "")
	s.Require().NoError(err)

	questionRepo := repositories.NewQuestionRepository(s.db)
	s.Require().NoError(questionRepo.Create(&models.Question{
		Title:   "Question 1 Title",
		Text:    "Question 1 Text",
		AskedBy: "question1_user",
		Tags:    []models.Tag{*javascript, *react},
	}))
	s.Require().NoError(questionRepo.Create(&models.Question{
		Title:   "Question 2 Title",
		Text:    "Question 2 Text",
		AskedBy: "question2_user",
		Tags:    []models.Tag{*javascript},
	}))

	counts, err := s.svc.GetTagCountMap()
	s.Require().NoError(err)
	s.Equal(map[string]int{"javascript": 2, "react": 1, "android": 0}, counts)
}

func TestProcessTagsReturnsEmptyOnLookupError(t *testing.T) {
	repo := new(mockTagRepo)
	repo.On("GetByName", "a").Return(nil, errors.New("connection refused"))

	svc := NewTagService(repo)
	resolved := svc.ProcessTags([]models.TagInput{{Name: "a"}, {Name: "b"}})

	require.Empty(t, resolved)
}

func TestProcessTagsReturnsEmptyOnSaveError(t *testing.T) {
	repo := new(mockTagRepo)
	repo.On("GetByName", mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything).Return(errors.New("insert failed"))

	svc := NewTagService(repo)
	resolved := svc.ProcessTags([]models.TagInput{{Name: "a"}, {Name: "b"}})

	require.Empty(t, resolved)
}

func TestGetTagCountMapErrorWhenTagLookupFails(t *testing.T) {
	repo := new(mockTagRepo)
	repo.On("GetAll").Return(nil, errors.New("tag lookup failed"))

	svc := NewTagService(repo)
	_, err := svc.GetTagCountMap()

	require.Error(t, err)
}

func TestGetTagCountMapErrorWhenQuestionCountFails(t *testing.T) {
	repo := new(mockTagRepo)
	repo.On("GetAll").Return([]models.Tag{{Name: "react"}}, nil)
	repo.On("CountQuestionsByTag").Return(nil, errors.New("question lookup failed"))

	svc := NewTagService(repo)
	_, err := svc.GetTagCountMap()

	require.Error(t, err)
}
