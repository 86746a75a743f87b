package services_test

import (
	"context"
	"testing"

	"github.com/spacieba/miss-france/internal/errors"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/services"
	"github.com/spacieba/miss-france/internal/testutil"
)

// recordingProjector captures the last published scoreboard snapshot.
type recordingProjector struct {
	published [][]models.LeaderboardEntry
}

func (p *recordingProjector) Publish(ctx context.Context, entries []models.LeaderboardEntry) error {
	p.published = append(p.published, entries)
	return nil
}

func TestGetScore_NewPlayerStartsAtZero(t *testing.T) {
	f := newResultsFixture(t)
	alice := testutil.CreatePlayer(t, f.repo, "alice")

	score, err := f.score.GetScore(context.Background(), alice)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if score.TotalScore != 0 {
		t.Errorf("expected total 0, got %v", score.TotalScore)
	}
}

func TestGetScore_UnknownPlayer(t *testing.T) {
	f := newResultsFixture(t)

	_, err := f.score.GetScore(context.Background(), 999)
	requireKind(t, err, errors.ErrNotFound)
}

func TestRecalculate_SumsAllComponents(t *testing.T) {
	f := newResultsFixture(t)
	ctx := context.Background()
	log := logger.New()

	alice := testutil.CreatePlayer(t, f.repo, "alice")
	bob := testutil.CreatePlayer(t, f.repo, "bob")

	quiz := services.NewQuizService(log, f.repo, f.score)
	trivia := services.NewTriviaService(log, f.repo, f.score)
	challenge := services.NewChallengeService(log, f.repo, f.score)
	costume := services.NewCostumeService(log, f.repo, f.score)

	// Prediction: all 15 correct once revealed
	top15 := f.rosterNames(0, 15)
	if err := f.submission.SaveTop15(ctx, alice, top15, "", ""); err != nil {
		t.Fatalf("SaveTop15: %v", err)
	}
	if _, err := f.results.RevealTop15(ctx, top15); err != nil {
		t.Fatalf("RevealTop15: %v", err)
	}

	// Quiz: question 3 is worth 3 points
	if _, err := quiz.Answer(ctx, alice, 3, 0); err != nil {
		t.Fatalf("quiz answer: %v", err)
	}

	// Trivia: 2.5 + 0.5 from the history category, rest wrong
	if _, err := trivia.Submit(ctx, alice, "history", map[int]int{101: 0, 102: 0, 103: 1, 104: 0}); err != nil {
		t.Fatalf("trivia submit: %v", err)
	}

	// Challenge 2 is worth 15 points
	if _, err := challenge.Complete(ctx, alice, 2); err != nil {
		t.Fatalf("challenge complete: %v", err)
	}

	// One costume vote received from bob
	if err := costume.Enter(ctx, alice, "Crowned in tinfoil"); err != nil {
		t.Fatalf("costume enter: %v", err)
	}
	if err := costume.Vote(ctx, bob, alice); err != nil {
		t.Fatalf("costume vote: %v", err)
	}

	score, err := f.score.GetScore(ctx, alice)
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}

	wantPrediction := 15 * services.PointsPerTop15Hit
	if score.PredictionScore != wantPrediction {
		t.Errorf("prediction: expected %d, got %d", wantPrediction, score.PredictionScore)
	}
	if score.QuizScore != 3 {
		t.Errorf("quiz: expected 3, got %d", score.QuizScore)
	}
	if score.TriviaScore != 3.0 {
		t.Errorf("trivia: expected 3.0, got %v", score.TriviaScore)
	}
	if score.ChallengeScore != 15 {
		t.Errorf("challenge: expected 15, got %d", score.ChallengeScore)
	}
	if score.CostumeScore != services.PointsPerCostumeVote {
		t.Errorf("costume: expected %d, got %d", services.PointsPerCostumeVote, score.CostumeScore)
	}

	wantTotal := float64(wantPrediction) + 3 + 3.0 + 15 + float64(services.PointsPerCostumeVote)
	if score.TotalScore != wantTotal {
		t.Errorf("total: expected %v, got %v", wantTotal, score.TotalScore)
	}
}

func TestRecalculate_TotalMatchesComponentsAfterEveryPass(t *testing.T) {
	f := newResultsFixture(t)
	ctx := context.Background()
	log := logger.New()

	alice := testutil.CreatePlayer(t, f.repo, "alice")
	quiz := services.NewQuizService(log, f.repo, f.score)

	// Two consecutive recalculations through different triggers; the stored
	// total must track the components immediately, not one pass behind
	if _, err := quiz.Answer(ctx, alice, 4, 0); err != nil {
		t.Fatalf("quiz answer: %v", err)
	}
	score, err := f.score.GetScore(ctx, alice)
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if score.TotalScore != 1 {
		t.Errorf("expected total 1 after first answer, got %v", score.TotalScore)
	}

	if _, err := quiz.Answer(ctx, alice, 1, 1); err != nil {
		t.Fatalf("quiz answer: %v", err)
	}
	score, err = f.score.GetScore(ctx, alice)
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if score.QuizScore != 3 || score.TotalScore != 3 {
		t.Errorf("expected quiz 3 total 3, got quiz %d total %v", score.QuizScore, score.TotalScore)
	}
}

func TestRecalculate_PublishesToProjector(t *testing.T) {
	f := newResultsFixture(t)
	ctx := context.Background()

	testutil.CreatePlayer(t, f.repo, "alice")
	bob := testutil.CreatePlayer(t, f.repo, "bob")

	projector := &recordingProjector{}
	f.score.SetProjector(projector)

	if _, err := f.score.Recalculate(ctx, bob); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	if len(projector.published) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(projector.published))
	}
	snapshot := projector.published[0]
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 scoreboard entries, got %d", len(snapshot))
	}
	// Both at zero, so pseudo breaks the tie
	if snapshot[0].Pseudo != "alice" || snapshot[1].Pseudo != "bob" {
		t.Errorf("expected alice then bob, got %q then %q", snapshot[0].Pseudo, snapshot[1].Pseudo)
	}
}

func TestRecalculate_UnknownPlayer(t *testing.T) {
	f := newResultsFixture(t)

	_, err := f.score.Recalculate(context.Background(), 999)
	requireKind(t, err, errors.ErrNotFound)
}
