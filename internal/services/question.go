package services

import (
	"errors"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionFilter struct {
	CategoryID uint
	Round      string
	MinValue   int
	MaxValue   int
	Difficulty int
}

// RandomQuestion returns one clue matching the filter. A non-nil cutoff
// excludes questions that aired on or after it; questions with no air date
// are always eligible.
func (s *QuestionService) RandomQuestion(filter QuestionFilter, cutoff *time.Time) (*models.Question, error) {
	query := s.applyFilter(s.db.Model(&models.Question{}), filter, cutoff)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("no questions match the requested filters")
	}

	var question models.Question
	err := s.applyFilter(s.db.Model(&models.Question{}), filter, cutoff).
		Preload("Category").
		Order("RANDOM()").
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) applyFilter(query *gorm.DB, filter QuestionFilter, cutoff *time.Time) *gorm.DB {
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Round != "" {
		query = query.Where("round = ?", filter.Round)
	}
	if filter.MinValue > 0 {
		query = query.Where("value >= ?", filter.MinValue)
	}
	if filter.MaxValue > 0 {
		query = query.Where("value <= ?", filter.MaxValue)
	}
	if filter.Difficulty > 0 {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if cutoff != nil {
		query = query.Where("air_date IS NULL OR air_date < ?", *cutoff)
	}
	return query
}

func (s *QuestionService) GetByID(questionID uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.Preload("Category").First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}
	return &question, nil
}

type CategorySummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	KnowledgeTag  string `json:"knowledge_tag,omitempty"`
	QuestionCount int64  `json:"question_count"`
}

func (s *QuestionService) ListCategories(search string, limit, offset int) ([]CategorySummary, int64, error) {
	query := s.db.Model(&models.Category{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []CategorySummary
	err := query.
		Select("categories.id, categories.name, categories.knowledge_tag, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.category_id = categories.id").
		Group("categories.id, categories.name, categories.knowledge_tag").
		Order("categories.name ASC").
		Limit(limit).Offset(offset).
		Scan(&summaries).Error
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

type QuestionInput struct {
	CategoryName string     `json:"category_name" binding:"required"`
	Text         string     `json:"text" binding:"required"`
	Answer       string     `json:"answer" binding:"required"`
	Value        int        `json:"value"`
	Round        string     `json:"round"`
	AirDate      *time.Time `json:"air_date,omitempty"`
	Difficulty   int        `json:"difficulty"`
	SourceID     string     `json:"source_id,omitempty"`
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	if err := validateQuestionInput(&input); err != nil {
		return nil, err
	}

	category, err := s.getOrCreateCategory(s.db, input.CategoryName)
	if err != nil {
		return nil, err
	}

	question := models.Question{
		CategoryID: category.ID,
		Text:       input.Text,
		Answer:     input.Answer,
		Value:      input.Value,
		Round:      input.Round,
		AirDate:    input.AirDate,
		Difficulty: input.Difficulty,
		SourceID:   optionalSourceID(input.SourceID),
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	question.Category = *category
	return &question, nil
}

// optionalSourceID maps an absent source id to NULL so hand-written questions
// never collide on the unique source index.
func optionalSourceID(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *QuestionService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	if err := validateQuestionInput(&input); err != nil {
		return nil, err
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	category, err := s.getOrCreateCategory(s.db, input.CategoryName)
	if err != nil {
		return nil, err
	}

	question.CategoryID = category.ID
	question.Text = input.Text
	question.Answer = input.Answer
	question.Value = input.Value
	question.Round = input.Round
	question.AirDate = input.AirDate
	question.Difficulty = input.Difficulty
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	question.Category = *category
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return result.Error
}

func validateQuestionInput(input *QuestionInput) error {
	if input.Round == "" {
		input.Round = models.RoundJeopardy
	}
	switch input.Round {
	case models.RoundJeopardy, models.RoundDoubleJeopardy, models.RoundFinalJeopardy:
	default:
		return errors.New("unknown round: " + input.Round)
	}
	if input.Value <= 0 {
		input.Value = 200
	}
	if input.Difficulty < 1 || input.Difficulty > 5 {
		input.Difficulty = difficultyForValue(input.Value, input.Round)
	}
	return nil
}

// difficultyForValue maps a board position to a 1..5 difficulty. Final
// jeopardy is always 5.
func difficultyForValue(value int, round string) int {
	if round == models.RoundFinalJeopardy {
		return 5
	}
	step := 200
	if round == models.RoundDoubleJeopardy {
		step = 400
	}
	d := value / step
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	return d
}

func (s *QuestionService) getOrCreateCategory(tx *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{Name: name, KnowledgeTag: models.KnowledgeTagGeneral}
	if err := tx.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

type ExportQuestion struct {
	CategoryName string     `json:"category_name"`
	Text         string     `json:"text"`
	Answer       string     `json:"answer"`
	Value        int        `json:"value"`
	Round        string     `json:"round"`
	AirDate      *time.Time `json:"air_date,omitempty"`
	Difficulty   int        `json:"difficulty"`
	SourceID     string     `json:"source_id,omitempty"`
}

type ExportBundle struct {
	ExportedAt time.Time        `json:"exported_at"`
	Questions  []ExportQuestion `json:"questions"`
}

func (s *QuestionService) Export() (*ExportBundle, error) {
	var questions []models.Question
	if err := s.db.Preload("Category").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	bundle := ExportBundle{ExportedAt: time.Now().UTC()}
	for _, q := range questions {
		eq := ExportQuestion{
			CategoryName: q.Category.Name,
			Text:         q.Text,
			Answer:       q.Answer,
			Value:        q.Value,
			Round:        q.Round,
			AirDate:      q.AirDate,
			Difficulty:   q.Difficulty,
		}
		if q.SourceID != nil {
			eq.SourceID = *q.SourceID
		}
		bundle.Questions = append(bundle.Questions, eq)
	}
	return &bundle, nil
}

// Import upserts questions by source id inside one transaction; rows without
// a source id are always inserted. Returns the number of imported rows.
func (s *QuestionService) Import(bundle ExportBundle) (int, error) {
	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range bundle.Questions {
			input := QuestionInput{
				CategoryName: in.CategoryName,
				Text:         in.Text,
				Answer:       in.Answer,
				Value:        in.Value,
				Round:        in.Round,
				AirDate:      in.AirDate,
				Difficulty:   in.Difficulty,
				SourceID:     in.SourceID,
			}
			if input.CategoryName == "" || input.Text == "" || input.Answer == "" {
				continue
			}
			if err := validateQuestionInput(&input); err != nil {
				return err
			}

			category, err := s.getOrCreateCategory(tx, input.CategoryName)
			if err != nil {
				return err
			}

			question := models.Question{
				CategoryID: category.ID,
				Text:       input.Text,
				Answer:     input.Answer,
				Value:      input.Value,
				Round:      input.Round,
				AirDate:    input.AirDate,
				Difficulty: input.Difficulty,
				SourceID:   optionalSourceID(input.SourceID),
			}

			if input.SourceID != "" {
				var existing models.Question
				if err := tx.Where("source_id = ?", input.SourceID).First(&existing).Error; err == nil {
					question.ID = existing.ID
					question.CreatedAt = existing.CreatedAt
					if err := tx.Save(&question).Error; err != nil {
						return err
					}
					count++
					continue
				}
			}

			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
