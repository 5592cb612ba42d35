package services

import (
	"testing"

	"github.com/btuckerc/jeopardy-sub004/internal/models"

	"gorm.io/gorm"
)

func disputeFixture(t *testing.T) (*gorm.DB, *GameService, *DisputeService, *models.User, *models.Game, *models.GameAnswer) {
	t.Helper()

	db := newTestDB(t)
	games := NewGameService(db, NewAnswerChecker())
	disputes := NewDisputeService(db)

	user := seedUser(t, db, "player")
	question := seedQuestion(t, db, "Istanbul", 600)

	game, err := games.CreateGame(user.ID, GameConfig{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := games.SubmitAnswer(game.ID, user.ID, question.ID, "Ankara"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	var answer models.GameAnswer
	if err := db.Where("game_id = ?", game.ID).First(&answer).Error; err != nil {
		t.Fatalf("load answer: %v", err)
	}
	return db, games, disputes, user, game, &answer
}

func TestResolveDisputeAcceptCompensatesScore(t *testing.T) {
	db, games, disputes, user, game, answer := disputeFixture(t)
	admin := seedUser(t, db, "reviewer")

	before, err := games.GetGame(game.ID, user.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if before.Score != -600 {
		t.Fatalf("score before dispute = %d, want -600", before.Score)
	}

	dispute, err := disputes.CreateDispute(user.ID, answer.ID, "the capital answer should count")
	if err != nil {
		t.Fatalf("CreateDispute: %v", err)
	}

	resolved, err := disputes.ResolveDispute(dispute.ID, admin.ID, true, "accepted on review")
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	if resolved.Status != models.DisputeStatusAccepted {
		t.Errorf("status = %q, want accepted", resolved.Status)
	}

	var regraded models.GameAnswer
	if err := db.First(&regraded, answer.ID).Error; err != nil {
		t.Fatalf("reload answer: %v", err)
	}
	if !regraded.IsCorrect || regraded.Points != 600 {
		t.Errorf("regraded answer = correct %v points %d, want true/600", regraded.IsCorrect, regraded.Points)
	}

	// The swing is twice the clue value: the -600 penalty becomes +600.
	after, err := games.GetGame(game.ID, user.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if after.Score != 600 {
		t.Errorf("score after compensation = %d, want 600", after.Score)
	}
	if after.CorrectAnswers != 1 {
		t.Errorf("correct_answers = %d, want 1", after.CorrectAnswers)
	}
}

func TestResolveDisputeRejectLeavesScore(t *testing.T) {
	db, games, disputes, user, game, answer := disputeFixture(t)
	admin := seedUser(t, db, "reviewer")

	dispute, err := disputes.CreateDispute(user.ID, answer.ID, "worth a look")
	if err != nil {
		t.Fatalf("CreateDispute: %v", err)
	}

	resolved, err := disputes.ResolveDispute(dispute.ID, admin.ID, false, "the given answer names a different city")
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	if resolved.Status != models.DisputeStatusRejected {
		t.Errorf("status = %q, want rejected", resolved.Status)
	}

	var untouched models.GameAnswer
	if err := db.First(&untouched, answer.ID).Error; err != nil {
		t.Fatalf("reload answer: %v", err)
	}
	if untouched.IsCorrect || untouched.Points != -600 {
		t.Errorf("rejected dispute changed the answer: correct %v points %d", untouched.IsCorrect, untouched.Points)
	}

	after, err := games.GetGame(game.ID, user.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if after.Score != -600 {
		t.Errorf("score = %d, want -600 unchanged", after.Score)
	}
}

func TestResolveDisputeTwiceFails(t *testing.T) {
	db, _, disputes, user, _, answer := disputeFixture(t)
	admin := seedUser(t, db, "reviewer")

	dispute, err := disputes.CreateDispute(user.ID, answer.ID, "please re-check")
	if err != nil {
		t.Fatalf("CreateDispute: %v", err)
	}
	if _, err := disputes.ResolveDispute(dispute.ID, admin.ID, true, "accepted"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := disputes.ResolveDispute(dispute.ID, admin.ID, false, "changed my mind"); err == nil {
		t.Error("resolving a closed dispute must fail")
	}
}

func TestCreateDisputeRejectsCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	games := NewGameService(db, NewAnswerChecker())
	disputes := NewDisputeService(db)

	user := seedUser(t, db, "player")
	question := seedQuestion(t, db, "Istanbul", 600)

	game, err := games.CreateGame(user.ID, GameConfig{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := games.SubmitAnswer(game.ID, user.ID, question.ID, "what is istanbul"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	var answer models.GameAnswer
	if err := db.Where("game_id = ?", game.ID).First(&answer).Error; err != nil {
		t.Fatalf("load answer: %v", err)
	}

	if _, err := disputes.CreateDispute(user.ID, answer.ID, "just in case"); err == nil {
		t.Error("disputing a correct answer must fail")
	}
}
