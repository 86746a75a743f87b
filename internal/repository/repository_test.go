package repository

import (
	"context"
	"testing"

	"github.com/spacieba/miss-france/internal/models"
)

// newTestRepo creates a new in-memory repository for testing.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedTestRoster(t *testing.T, repo *Repository) {
	t.Helper()
	roster := []models.Candidate{
		{Name: "Miss Provence", DisplayOrder: 1},
		{Name: "Miss Alsace", DisplayOrder: 2},
		{Name: "Miss Corse", DisplayOrder: 3},
	}
	if _, err := repo.SeedCandidates(context.Background(), roster); err != nil {
		t.Fatalf("failed to seed roster: %v", err)
	}
}

// ==================== Player Tests ====================

func TestCreatePlayer_Basic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	// The zero score row is created in the same transaction
	score, err := repo.GetScore(ctx, int(id))
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if score.TotalScore != 0 {
		t.Errorf("expected zero total, got %v", score.TotalScore)
	}
}

func TestCreatePlayer_DuplicatePseudo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreatePlayer(ctx, "alice"); err != nil {
		t.Fatalf("first CreatePlayer failed: %v", err)
	}
	_, err := repo.CreatePlayer(ctx, "alice")
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetPlayer_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetPlayer(context.Background(), 999)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPlayerByPseudo_Existing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	player, err := repo.GetPlayerByPseudo(ctx, "alice")
	if err != nil {
		t.Fatalf("GetPlayerByPseudo failed: %v", err)
	}
	if player.ID != int(id) {
		t.Errorf("expected ID %d, got %d", id, player.ID)
	}
}

func TestListPlayers_OrderedByPseudo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, pseudo := range []string{"zoe", "alice", "bob"} {
		if _, err := repo.CreatePlayer(ctx, pseudo); err != nil {
			t.Fatalf("CreatePlayer %q failed: %v", pseudo, err)
		}
	}

	players, err := repo.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Pseudo != "alice" || players[2].Pseudo != "zoe" {
		t.Errorf("expected alphabetical order, got %q first and %q last", players[0].Pseudo, players[2].Pseudo)
	}
}

// ==================== Candidate Tests ====================

func TestCandidateExists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedTestRoster(t, repo)

	exists, err := repo.CandidateExists(ctx, "Miss Provence")
	if err != nil {
		t.Fatalf("CandidateExists failed: %v", err)
	}
	if !exists {
		t.Error("expected Miss Provence to exist")
	}

	exists, err = repo.CandidateExists(ctx, "Miss Nowhere")
	if err != nil {
		t.Fatalf("CandidateExists failed: %v", err)
	}
	if exists {
		t.Error("expected Miss Nowhere to not exist")
	}
}

func TestSeedCandidates_SkipsExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedTestRoster(t, repo)

	inserted, err := repo.SeedCandidates(ctx, []models.Candidate{
		{Name: "Miss Provence", DisplayOrder: 1},
		{Name: "Miss Tahiti", DisplayOrder: 4},
	})
	if err != nil {
		t.Fatalf("SeedCandidates failed: %v", err)
	}
	if inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", inserted)
	}

	count, err := repo.CountCandidates(ctx)
	if err != nil {
		t.Fatalf("CountCandidates failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 candidates, got %d", count)
	}
}

// ==================== Submission Tests ====================

func TestUpsertTop15_FieldGroupIndependence(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedTestRoster(t, repo)

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	playerID := int(id)

	if err := repo.UpsertTop5(ctx, playerID, []string{"Miss Provence"}, "Miss Corse"); err != nil {
		t.Fatalf("UpsertTop5 failed: %v", err)
	}
	if err := repo.UpsertTop15(ctx, playerID, []string{"Miss Alsace"}, "", ""); err != nil {
		t.Fatalf("UpsertTop15 failed: %v", err)
	}

	// Each upsert touches only its own columns
	sub, err := repo.GetSubmission(ctx, playerID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if len(sub.Top5) != 1 || sub.Top5[0] != "Miss Provence" {
		t.Errorf("expected top5 preserved, got %v", sub.Top5)
	}
	if sub.BonusTop5 != "Miss Corse" {
		t.Errorf("expected bonus top5 preserved, got %q", sub.BonusTop5)
	}
	if len(sub.Top15) != 1 || sub.Top15[0] != "Miss Alsace" {
		t.Errorf("expected top15 written, got %v", sub.Top15)
	}
	if sub.FinalRanking != nil {
		t.Errorf("expected no final ranking, got %v", sub.FinalRanking)
	}
}

func TestGetSubmission_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetSubmission(context.Background(), 999)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Official Results Tests ====================

func TestOfficialResults_SeededAtStageZero(t *testing.T) {
	repo := newTestRepo(t)

	official, err := repo.GetOfficialResults(context.Background())
	if err != nil {
		t.Fatalf("GetOfficialResults failed: %v", err)
	}
	if official.Stage != 0 {
		t.Errorf("expected stage 0, got %d", official.Stage)
	}
}

func TestSaveOfficialResults_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.SaveOfficialResults(ctx, &models.OfficialResults{
		Stage: 1,
		Top15: []string{"Miss Provence", "Miss Alsace"},
	})
	if err != nil {
		t.Fatalf("SaveOfficialResults failed: %v", err)
	}

	official, err := repo.GetOfficialResults(ctx)
	if err != nil {
		t.Fatalf("GetOfficialResults failed: %v", err)
	}
	if official.Stage != 1 {
		t.Errorf("expected stage 1, got %d", official.Stage)
	}
	if len(official.Top15) != 2 {
		t.Errorf("expected 2 names, got %v", official.Top15)
	}
	if official.Top5 != nil {
		t.Errorf("expected no top5, got %v", official.Top5)
	}
}

// ==================== Score Tests ====================

func TestUpdateScore_TotalIsComponentSum(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	playerID := int(id)

	if err := repo.UpdateScore(ctx, playerID, 75, 3, 2.5, 15, 10); err != nil {
		t.Fatalf("UpdateScore failed: %v", err)
	}

	score, err := repo.GetScore(ctx, playerID)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if score.TotalScore != 105.5 {
		t.Errorf("expected total 105.5, got %v", score.TotalScore)
	}

	// A second pass with new components replaces, never accumulates
	if err := repo.UpdateScore(ctx, playerID, 0, 3, 2.5, 15, 10); err != nil {
		t.Fatalf("second UpdateScore failed: %v", err)
	}
	score, err = repo.GetScore(ctx, playerID)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if score.TotalScore != 30.5 {
		t.Errorf("expected total 30.5, got %v", score.TotalScore)
	}
}

func TestUpdateScore_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateScore(context.Background(), 999, 1, 0, 0, 0, 0)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListScoreboard_DeterministicOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := make(map[string]int)
	for _, pseudo := range []string{"carol", "alice", "bob"} {
		id, err := repo.CreatePlayer(ctx, pseudo)
		if err != nil {
			t.Fatalf("CreatePlayer %q failed: %v", pseudo, err)
		}
		ids[pseudo] = int(id)
	}

	// carol leads; alice and bob tie at zero
	if err := repo.UpdateScore(ctx, ids["carol"], 10, 0, 0, 0, 0); err != nil {
		t.Fatalf("UpdateScore failed: %v", err)
	}

	entries, err := repo.ListScoreboard(ctx)
	if err != nil {
		t.Fatalf("ListScoreboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantOrder := []string{"carol", "alice", "bob"}
	for i, pseudo := range wantOrder {
		if entries[i].Pseudo != pseudo {
			t.Errorf("position %d: expected %q, got %q", i, pseudo, entries[i].Pseudo)
		}
	}
}

// ==================== Quiz Tests ====================

func TestSaveQuizAnswer_DuplicateQuestion(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	answer := models.QuizAnswer{PlayerID: int(id), QuestionID: 1, Answer: 1, Correct: true, Points: 2}
	if err := repo.SaveQuizAnswer(ctx, answer); err != nil {
		t.Fatalf("SaveQuizAnswer failed: %v", err)
	}
	if err := repo.SaveQuizAnswer(ctx, answer); err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	points, err := repo.SumQuizPoints(ctx, int(id))
	if err != nil {
		t.Fatalf("SumQuizPoints failed: %v", err)
	}
	if points != 2 {
		t.Errorf("expected 2 points, got %d", points)
	}
}

// ==================== Trivia Tests ====================

func TestSaveTriviaAnswers_BatchAndSum(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	playerID := int(id)

	rows := []models.TriviaAnswer{
		{PlayerID: playerID, Category: "history", QuestionID: 101, Answer: 0, Correct: true, Points: 2.5},
		{PlayerID: playerID, Category: "history", QuestionID: 103, Answer: 1, Correct: true, Points: 0.5},
	}
	if err := repo.SaveTriviaAnswers(ctx, rows); err != nil {
		t.Fatalf("SaveTriviaAnswers failed: %v", err)
	}

	submitted, err := repo.HasTriviaCategory(ctx, playerID, "history")
	if err != nil {
		t.Fatalf("HasTriviaCategory failed: %v", err)
	}
	if !submitted {
		t.Error("expected history to be submitted")
	}

	points, err := repo.SumTriviaPoints(ctx, playerID)
	if err != nil {
		t.Fatalf("SumTriviaPoints failed: %v", err)
	}
	if points != 3.0 {
		t.Errorf("expected 3.0 points, got %v", points)
	}
}

// ==================== Costume Tests ====================

func TestCostumeVotes_MoveBetweenEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := make(map[string]int)
	for _, pseudo := range []string{"alice", "bob", "carol"} {
		id, err := repo.CreatePlayer(ctx, pseudo)
		if err != nil {
			t.Fatalf("CreatePlayer %q failed: %v", pseudo, err)
		}
		ids[pseudo] = int(id)
	}

	if err := repo.UpsertCostumeEntry(ctx, ids["alice"], "Velvet dream"); err != nil {
		t.Fatalf("UpsertCostumeEntry failed: %v", err)
	}
	if err := repo.UpsertCostumeEntry(ctx, ids["bob"], "Crown of cans"); err != nil {
		t.Fatalf("UpsertCostumeEntry failed: %v", err)
	}

	if err := repo.SaveCostumeVote(ctx, ids["carol"], ids["alice"]); err != nil {
		t.Fatalf("SaveCostumeVote failed: %v", err)
	}
	if err := repo.SaveCostumeVote(ctx, ids["carol"], ids["bob"]); err != nil {
		t.Fatalf("moved SaveCostumeVote failed: %v", err)
	}

	aliceVotes, err := repo.CountCostumeVotes(ctx, ids["alice"])
	if err != nil {
		t.Fatalf("CountCostumeVotes failed: %v", err)
	}
	bobVotes, err := repo.CountCostumeVotes(ctx, ids["bob"])
	if err != nil {
		t.Fatalf("CountCostumeVotes failed: %v", err)
	}
	if aliceVotes != 0 || bobVotes != 1 {
		t.Errorf("expected votes 0 and 1, got %d and %d", aliceVotes, bobVotes)
	}

	previous, err := repo.GetCostumeVote(ctx, ids["carol"])
	if err != nil {
		t.Fatalf("GetCostumeVote failed: %v", err)
	}
	if previous != ids["bob"] {
		t.Errorf("expected vote on bob, got %d", previous)
	}
}

func TestGetCostumeVote_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetCostumeVote(context.Background(), 999)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Settings Tests ====================

func TestSettings_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	value, err := repo.GetSetting(ctx, "base_url")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for unset key, got %q", value)
	}

	if err := repo.SetSetting(ctx, "base_url", "http://10.0.0.5:8081"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	value, err = repo.GetSetting(ctx, "base_url")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "http://10.0.0.5:8081" {
		t.Errorf("unexpected value %q", value)
	}

	// Overwrite
	if err := repo.SetSetting(ctx, "base_url", "http://10.0.0.6:8081"); err != nil {
		t.Fatalf("second SetSetting failed: %v", err)
	}
	value, _ = repo.GetSetting(ctx, "base_url")
	if value != "http://10.0.0.6:8081" {
		t.Errorf("expected overwritten value, got %q", value)
	}
}

func TestGetPartyStats_Counts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedTestRoster(t, repo)

	id, err := repo.CreatePlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if err := repo.UpsertFinalRanking(ctx, int(id), []string{"Miss Provence"}); err != nil {
		t.Fatalf("UpsertFinalRanking failed: %v", err)
	}

	stats, err := repo.GetPartyStats(ctx)
	if err != nil {
		t.Fatalf("GetPartyStats failed: %v", err)
	}
	if stats["total_players"] != 1 {
		t.Errorf("expected 1 player, got %v", stats["total_players"])
	}
	if stats["total_candidates"] != 3 {
		t.Errorf("expected 3 candidates, got %v", stats["total_candidates"])
	}
	if stats["total_submissions"] != 1 {
		t.Errorf("expected 1 submission, got %v", stats["total_submissions"])
	}
	if stats["stage"] != 0 {
		t.Errorf("expected stage 0, got %v", stats["stage"])
	}
}
