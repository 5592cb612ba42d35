package services

import (
	"errors"
	"testing"
)

func TestClaimSession(t *testing.T) {
	db := newTestDB(t)
	service := NewGuestService(db, NewAnswerChecker())

	session, err := service.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	claimed, err := service.ClaimSession(session.ID, 1)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if claimed.ClaimedByUserID == nil || *claimed.ClaimedByUserID != 1 {
		t.Fatalf("claimed_by = %v, want 1", claimed.ClaimedByUserID)
	}

	// Same user again is a no-op.
	if _, err := service.ClaimSession(session.ID, 1); err != nil {
		t.Errorf("re-claim by the same user: %v", err)
	}

	// Another user must be rejected.
	if _, err := service.ClaimSession(session.ID, 2); !errors.Is(err, ErrSessionClaimed) {
		t.Errorf("claim by another user: err = %v, want ErrSessionClaimed", err)
	}

	reloaded, err := service.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if reloaded.ClaimedByUserID == nil || *reloaded.ClaimedByUserID != 1 {
		t.Errorf("owner changed after rejected claim: %v", reloaded.ClaimedByUserID)
	}
}

func TestGuestRecordAnswerAggregates(t *testing.T) {
	db := newTestDB(t)
	service := NewGuestService(db, NewAnswerChecker())
	question := seedQuestion(t, db, "Mercury", 400)

	session, err := service.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	result, err := service.RecordAnswer(session.ID, question.ID, "what is mercury")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if !result.Correct || result.Points != 400 {
		t.Errorf("correct answer: %+v", result)
	}

	result, err = service.RecordAnswer(session.ID, question.ID, "venus")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if result.Correct || result.Points != -400 {
		t.Errorf("wrong answer: %+v", result)
	}

	reloaded, err := service.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if reloaded.Score != 0 || reloaded.QuestionsAnswered != 2 || reloaded.CorrectAnswers != 1 {
		t.Errorf("aggregates = score %d answered %d correct %d, want 0/2/1",
			reloaded.Score, reloaded.QuestionsAnswered, reloaded.CorrectAnswers)
	}
}

func TestGuestRecordAnswerAfterClaimRejected(t *testing.T) {
	db := newTestDB(t)
	service := NewGuestService(db, NewAnswerChecker())
	question := seedQuestion(t, db, "Neptune", 200)

	session, err := service.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := service.ClaimSession(session.ID, 1); err != nil {
		t.Fatalf("ClaimSession: %v", err)
	}

	if _, err := service.RecordAnswer(session.ID, question.ID, "neptune"); err == nil {
		t.Error("recording against a claimed session must fail")
	}
}
