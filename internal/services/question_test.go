package services

import (
	"testing"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
)

func TestCreateQuestionWithoutSourceID(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	first, err := service.CreateQuestion(QuestionInput{
		CategoryName: "HISTORY",
		Text:         "This wall fell in 1989",
		Answer:       "the Berlin Wall",
		Value:        400,
	})
	if err != nil {
		t.Fatalf("first question: %v", err)
	}
	if first.SourceID != nil {
		t.Errorf("hand-written question got source id %q", *first.SourceID)
	}

	// A second source-less question must not trip the unique source index.
	if _, err := service.CreateQuestion(QuestionInput{
		CategoryName: "HISTORY",
		Text:         "This treaty ended World War I",
		Answer:       "the Treaty of Versailles",
		Value:        800,
	}); err != nil {
		t.Fatalf("second source-less question: %v", err)
	}
}

func TestImportUpsertsBySourceID(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	bundle := ExportBundle{Questions: []ExportQuestion{
		{CategoryName: "RIVERS", Text: "Longest river in Europe", Answer: "the Volga", Value: 400, SourceID: "77_J_3_2"},
		{CategoryName: "RIVERS", Text: "Hand-written clue", Answer: "the Rhine", Value: 200},
	}}
	count, err := service.Import(bundle)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported = %d, want 2", count)
	}

	// Re-importing the sourced row updates it in place; the source-less row
	// is always a fresh insert.
	bundle.Questions[0].Text = "Europe's longest river"
	count, err = service.Import(bundle)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if count != 2 {
		t.Fatalf("re-imported = %d, want 2", count)
	}

	var total int64
	db.Model(&models.Question{}).Count(&total)
	if total != 3 {
		t.Errorf("question rows = %d, want 3 (1 upserted + 2 inserts)", total)
	}

	var sourced models.Question
	if err := db.Where("source_id = ?", "77_J_3_2").First(&sourced).Error; err != nil {
		t.Fatalf("load sourced row: %v", err)
	}
	if sourced.Text != "Europe's longest river" {
		t.Errorf("sourced row not updated: %q", sourced.Text)
	}
}
