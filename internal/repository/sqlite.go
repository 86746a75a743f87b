package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spacieba/miss-france/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pseudo TEXT UNIQUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			photo_url TEXT,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS pronostics (
			player_id INTEGER PRIMARY KEY,
			top15 TEXT,
			bonus_top15 TEXT,
			golden_pick TEXT,
			top5 TEXT,
			bonus_top5 TEXT,
			final_ranking TEXT,
			submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (player_id) REFERENCES players(id)
		)`,
		`CREATE TABLE IF NOT EXISTS official_results (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			stage INTEGER NOT NULL DEFAULT 0,
			top15 TEXT,
			top5 TEXT,
			final_ranking TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			player_id INTEGER PRIMARY KEY,
			prediction_score INTEGER NOT NULL DEFAULT 0,
			quiz_score INTEGER NOT NULL DEFAULT 0,
			trivia_score REAL NOT NULL DEFAULT 0,
			challenge_score INTEGER NOT NULL DEFAULT 0,
			costume_score INTEGER NOT NULL DEFAULT 0,
			total_score REAL NOT NULL DEFAULT 0,
			FOREIGN KEY (player_id) REFERENCES players(id)
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			question_id INTEGER NOT NULL,
			answer INTEGER NOT NULL,
			correct BOOLEAN NOT NULL,
			points INTEGER NOT NULL,
			FOREIGN KEY (player_id) REFERENCES players(id),
			UNIQUE(player_id, question_id)
		)`,
		`CREATE TABLE IF NOT EXISTS trivia_answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			question_id INTEGER NOT NULL,
			answer INTEGER NOT NULL,
			correct BOOLEAN NOT NULL,
			points REAL NOT NULL,
			FOREIGN KEY (player_id) REFERENCES players(id),
			UNIQUE(player_id, question_id)
		)`,
		`CREATE TABLE IF NOT EXISTS challenge_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			challenge_id INTEGER NOT NULL,
			points INTEGER NOT NULL,
			FOREIGN KEY (player_id) REFERENCES players(id),
			UNIQUE(player_id, challenge_id)
		)`,
		`CREATE TABLE IF NOT EXISTS costume_entries (
			player_id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			FOREIGN KEY (player_id) REFERENCES players(id)
		)`,
		`CREATE TABLE IF NOT EXISTS costume_votes (
			voter_id INTEGER PRIMARY KEY,
			entry_player_id INTEGER NOT NULL,
			FOREIGN KEY (voter_id) REFERENCES players(id),
			FOREIGN KEY (entry_player_id) REFERENCES costume_entries(player_id)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_answers_player ON quiz_answers(player_id)`,
		`CREATE INDEX IF NOT EXISTS idx_trivia_answers_player ON trivia_answers(player_id)`,
		`CREATE INDEX IF NOT EXISTS idx_challenge_completions_player ON challenge_completions(player_id)`,
		`CREATE INDEX IF NOT EXISTS idx_costume_votes_entry ON costume_votes(entry_player_id)`,
		// Singleton row for the state machine, created at stage 0
		`INSERT OR IGNORE INTO official_results (id, stage) VALUES (1, 0)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// ==================== Players ====================

// CreatePlayer inserts a new player and their zero score row in one
// transaction.
func (r *Repository) CreatePlayer(ctx context.Context, pseudo string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "INSERT INTO players (pseudo) VALUES (?)", pseudo)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO scores (player_id) VALUES (?)", id); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx,
		"SELECT id, pseudo, created_at FROM players WHERE id = ?", id).
		Scan(&p.ID, &p.Pseudo, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayerByPseudo retrieves a player by pseudo
func (r *Repository) GetPlayerByPseudo(ctx context.Context, pseudo string) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx,
		"SELECT id, pseudo, created_at FROM players WHERE pseudo = ?", pseudo).
		Scan(&p.ID, &p.Pseudo, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlayers returns all players ordered by pseudo
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, pseudo, created_at FROM players ORDER BY pseudo")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Pseudo, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ==================== Candidates ====================

// ListCandidates returns the roster in display order
func (r *Repository) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, COALESCE(photo_url, ''), display_order FROM candidates ORDER BY display_order, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.PhotoURL, &c.DisplayOrder); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// CandidateExists reports whether a name is in the roster
func (r *Repository) CandidateExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM candidates WHERE name = ?", name).Scan(&count)
	return count > 0, err
}

// SeedCandidates inserts roster entries that do not exist yet and returns
// the number inserted. Existing rows are left untouched so the registry
// stays read-only during the season.
func (r *Repository) SeedCandidates(ctx context.Context, roster []models.Candidate) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, c := range roster {
		result, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO candidates (name, photo_url, display_order) VALUES (?, ?, ?)",
			c.Name, c.PhotoURL, c.DisplayOrder)
		if err != nil {
			return 0, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, tx.Commit()
}

// CountCandidates returns the roster size
func (r *Repository) CountCandidates(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM candidates").Scan(&count)
	return count, err
}

// ==================== Submissions ====================

func marshalNames(names []string) (string, error) {
	if names == nil {
		return "", nil
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalNames(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, err
	}
	return names, nil
}

func scanSubmission(scan func(dest ...interface{}) error) (*models.Submission, error) {
	var s models.Submission
	var top15, top5, finalRanking string
	err := scan(&s.PlayerID, &top15, &s.BonusTop15, &s.GoldenPick, &top5, &s.BonusTop5, &finalRanking, &s.SubmittedAt)
	if err != nil {
		return nil, err
	}
	if s.Top15, err = unmarshalNames(top15); err != nil {
		return nil, fmt.Errorf("corrupt top15: %w", err)
	}
	if s.Top5, err = unmarshalNames(top5); err != nil {
		return nil, fmt.Errorf("corrupt top5: %w", err)
	}
	if s.FinalRanking, err = unmarshalNames(finalRanking); err != nil {
		return nil, fmt.Errorf("corrupt final ranking: %w", err)
	}
	return &s, nil
}

const submissionColumns = `player_id, COALESCE(top15, ''), COALESCE(bonus_top15, ''),
	COALESCE(golden_pick, ''), COALESCE(top5, ''), COALESCE(bonus_top5, ''),
	COALESCE(final_ranking, ''), submitted_at`

// GetSubmission retrieves a player's pronostics
func (r *Repository) GetSubmission(ctx context.Context, playerID int) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+submissionColumns+" FROM pronostics WHERE player_id = ?", playerID)
	s, err := scanSubmission(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSubmissions returns every stored pronostic record
func (r *Repository) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+submissionColumns+" FROM pronostics ORDER BY player_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *s)
	}
	return submissions, rows.Err()
}

// UpsertTop15 writes the top15 field group in a single statement
func (r *Repository) UpsertTop15(ctx context.Context, playerID int, top15 []string, bonusTop15, goldenPick string) error {
	encoded, err := marshalNames(top15)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pronostics (player_id, top15, bonus_top15, golden_pick)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			top15 = excluded.top15,
			bonus_top15 = excluded.bonus_top15,
			golden_pick = excluded.golden_pick,
			submitted_at = CURRENT_TIMESTAMP`,
		playerID, encoded, bonusTop15, goldenPick)
	return err
}

// UpsertTop5 writes the top5 field group in a single statement
func (r *Repository) UpsertTop5(ctx context.Context, playerID int, top5 []string, bonusTop5 string) error {
	encoded, err := marshalNames(top5)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pronostics (player_id, top5, bonus_top5)
		VALUES (?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			top5 = excluded.top5,
			bonus_top5 = excluded.bonus_top5,
			submitted_at = CURRENT_TIMESTAMP`,
		playerID, encoded, bonusTop5)
	return err
}

// UpsertFinalRanking writes the final ranking in a single statement
func (r *Repository) UpsertFinalRanking(ctx context.Context, playerID int, ranking []string) error {
	encoded, err := marshalNames(ranking)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pronostics (player_id, final_ranking)
		VALUES (?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			final_ranking = excluded.final_ranking,
			submitted_at = CURRENT_TIMESTAMP`,
		playerID, encoded)
	return err
}

// ==================== Official results ====================

// GetOfficialResults loads the singleton results record
func (r *Repository) GetOfficialResults(ctx context.Context) (*models.OfficialResults, error) {
	var res models.OfficialResults
	var top15, top5, finalRanking string
	err := r.db.QueryRowContext(ctx, `
		SELECT stage, COALESCE(top15, ''), COALESCE(top5, ''), COALESCE(final_ranking, ''), updated_at
		FROM official_results WHERE id = 1`).
		Scan(&res.Stage, &top15, &top5, &finalRanking, &res.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if res.Top15, err = unmarshalNames(top15); err != nil {
		return nil, fmt.Errorf("corrupt official top15: %w", err)
	}
	if res.Top5, err = unmarshalNames(top5); err != nil {
		return nil, fmt.Errorf("corrupt official top5: %w", err)
	}
	if res.FinalRanking, err = unmarshalNames(finalRanking); err != nil {
		return nil, fmt.Errorf("corrupt official final ranking: %w", err)
	}
	return &res, nil
}

// SaveOfficialResults replaces the singleton results record in one statement
func (r *Repository) SaveOfficialResults(ctx context.Context, results *models.OfficialResults) error {
	top15, err := marshalNames(results.Top15)
	if err != nil {
		return err
	}
	top5, err := marshalNames(results.Top5)
	if err != nil {
		return err
	}
	finalRanking, err := marshalNames(results.FinalRanking)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE official_results
		SET stage = ?, top15 = ?, top5 = ?, final_ranking = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		results.Stage, top15, top5, finalRanking)
	return err
}

// ==================== Scores ====================

// GetScore retrieves a player's score row
func (r *Repository) GetScore(ctx context.Context, playerID int) (*models.Score, error) {
	var s models.Score
	err := r.db.QueryRowContext(ctx, `
		SELECT player_id, prediction_score, quiz_score, trivia_score, challenge_score, costume_score, total_score
		FROM scores WHERE player_id = ?`, playerID).
		Scan(&s.PlayerID, &s.PredictionScore, &s.QuizScore, &s.TriviaScore, &s.ChallengeScore, &s.CostumeScore, &s.TotalScore)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateScore persists all component scores and computes the total as their
// sum inside the same statement, so the stored total can never drift from
// the components.
func (r *Repository) UpdateScore(ctx context.Context, playerID, prediction, quiz int, trivia float64, challenge, costume int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE scores
		SET prediction_score = ?, quiz_score = ?, trivia_score = ?, challenge_score = ?, costume_score = ?,
			total_score = ? + ? + ? + ? + ?
		WHERE player_id = ?`,
		prediction, quiz, trivia, challenge, costume,
		prediction, quiz, trivia, challenge, costume, playerID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListScoreboard returns all score rows joined with pseudos, ordered by
// total descending with pseudo ascending as the deterministic tie-break.
func (r *Repository) ListScoreboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.pseudo, s.prediction_score, s.quiz_score, s.trivia_score, s.challenge_score, s.costume_score, s.total_score
		FROM scores s
		JOIN players p ON s.player_id = p.id
		ORDER BY s.total_score DESC, p.pseudo ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Pseudo, &e.PredictionScore, &e.QuizScore, &e.TriviaScore, &e.ChallengeScore, &e.CostumeScore, &e.TotalScore); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ==================== Quiz ====================

// SaveQuizAnswer records one quiz answer; answering the same question twice
// returns ErrDuplicate.
func (r *Repository) SaveQuizAnswer(ctx context.Context, answer models.QuizAnswer) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO quiz_answers (player_id, question_id, answer, correct, points) VALUES (?, ?, ?, ?, ?)",
		answer.PlayerID, answer.QuestionID, answer.Answer, answer.Correct, answer.Points)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ListQuizAnswers returns a player's quiz answers
func (r *Repository) ListQuizAnswers(ctx context.Context, playerID int) ([]models.QuizAnswer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT player_id, question_id, answer, correct, points FROM quiz_answers WHERE player_id = ? ORDER BY question_id",
		playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.QuizAnswer
	for rows.Next() {
		var a models.QuizAnswer
		if err := rows.Scan(&a.PlayerID, &a.QuestionID, &a.Answer, &a.Correct, &a.Points); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// SumQuizPoints returns a player's quiz component score
func (r *Repository) SumQuizPoints(ctx context.Context, playerID int) (int, error) {
	var sum int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(points), 0) FROM quiz_answers WHERE player_id = ?", playerID).Scan(&sum)
	return sum, err
}

// ==================== Trivia ====================

// HasTriviaCategory reports whether a player already submitted a category
func (r *Repository) HasTriviaCategory(ctx context.Context, playerID int, category string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trivia_answers WHERE player_id = ? AND category = ?",
		playerID, category).Scan(&count)
	return count > 0, err
}

// SaveTriviaAnswers records a whole category submission in one transaction
func (r *Repository) SaveTriviaAnswers(ctx context.Context, answers []models.TriviaAnswer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, a := range answers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO trivia_answers (player_id, category, question_id, answer, correct, points) VALUES (?, ?, ?, ?, ?, ?)",
			a.PlayerID, a.Category, a.QuestionID, a.Answer, a.Correct, a.Points)
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListTriviaAnswers returns a player's trivia answers
func (r *Repository) ListTriviaAnswers(ctx context.Context, playerID int) ([]models.TriviaAnswer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT player_id, category, question_id, answer, correct, points FROM trivia_answers WHERE player_id = ? ORDER BY question_id",
		playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.TriviaAnswer
	for rows.Next() {
		var a models.TriviaAnswer
		if err := rows.Scan(&a.PlayerID, &a.Category, &a.QuestionID, &a.Answer, &a.Correct, &a.Points); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// SumTriviaPoints returns a player's trivia component score
func (r *Repository) SumTriviaPoints(ctx context.Context, playerID int) (float64, error) {
	var sum float64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(points), 0) FROM trivia_answers WHERE player_id = ?", playerID).Scan(&sum)
	return sum, err
}

// ==================== Challenges ====================

// SaveChallengeCompletion records a completed challenge; completing the same
// challenge twice returns ErrDuplicate.
func (r *Repository) SaveChallengeCompletion(ctx context.Context, completion models.ChallengeCompletion) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO challenge_completions (player_id, challenge_id, points) VALUES (?, ?, ?)",
		completion.PlayerID, completion.ChallengeID, completion.Points)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ListCompletedChallenges returns the IDs of a player's completed challenges
func (r *Repository) ListCompletedChallenges(ctx context.Context, playerID int) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT challenge_id FROM challenge_completions WHERE player_id = ? ORDER BY challenge_id", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SumChallengePoints returns a player's challenge component score
func (r *Repository) SumChallengePoints(ctx context.Context, playerID int) (int, error) {
	var sum int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(points), 0) FROM challenge_completions WHERE player_id = ?", playerID).Scan(&sum)
	return sum, err
}

// ==================== Costume contest ====================

// UpsertCostumeEntry creates or renames a player's contest entry
func (r *Repository) UpsertCostumeEntry(ctx context.Context, playerID int, title string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO costume_entries (player_id, title) VALUES (?, ?)
		ON CONFLICT(player_id) DO UPDATE SET title = excluded.title`,
		playerID, title)
	return err
}

// ListCostumeEntries returns all entries with their vote counts
func (r *Repository) ListCostumeEntries(ctx context.Context) ([]models.CostumeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.player_id, p.pseudo, e.title, COUNT(v.voter_id)
		FROM costume_entries e
		JOIN players p ON e.player_id = p.id
		LEFT JOIN costume_votes v ON v.entry_player_id = e.player_id
		GROUP BY e.player_id, p.pseudo, e.title
		ORDER BY COUNT(v.voter_id) DESC, p.pseudo ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CostumeEntry
	for rows.Next() {
		var e models.CostumeEntry
		if err := rows.Scan(&e.PlayerID, &e.Pseudo, &e.Title, &e.VoteCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveCostumeVote records or moves a player's single costume vote
func (r *Repository) SaveCostumeVote(ctx context.Context, voterID, entryPlayerID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO costume_votes (voter_id, entry_player_id) VALUES (?, ?)
		ON CONFLICT(voter_id) DO UPDATE SET entry_player_id = excluded.entry_player_id`,
		voterID, entryPlayerID)
	return err
}

// GetCostumeVote returns the entry a player voted for
func (r *Repository) GetCostumeVote(ctx context.Context, voterID int) (int, error) {
	var entryID int
	err := r.db.QueryRowContext(ctx,
		"SELECT entry_player_id FROM costume_votes WHERE voter_id = ?", voterID).Scan(&entryID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return entryID, err
}

// CountCostumeVotes returns how many votes a player's entry received
func (r *Repository) CountCostumeVotes(ctx context.Context, playerID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM costume_votes WHERE entry_player_id = ?", playerID).Scan(&count)
	return count, err
}

// ==================== Settings ====================

// GetSetting retrieves a setting value, or "" if unset
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting stores a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// GetPartyStats returns counts the admin dashboard polls for
func (r *Repository) GetPartyStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	counts := []struct {
		key   string
		query string
	}{
		{"total_players", "SELECT COUNT(*) FROM players"},
		{"total_candidates", "SELECT COUNT(*) FROM candidates"},
		{"total_submissions", "SELECT COUNT(*) FROM pronostics"},
		{"total_quiz_answers", "SELECT COUNT(*) FROM quiz_answers"},
		{"total_challenges_completed", "SELECT COUNT(*) FROM challenge_completions"},
		{"total_costume_entries", "SELECT COUNT(*) FROM costume_entries"},
		{"total_costume_votes", "SELECT COUNT(*) FROM costume_votes"},
	}
	for _, c := range counts {
		var n int
		if err := r.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return nil, err
		}
		stats[c.key] = n
	}

	var stage int
	if err := r.db.QueryRowContext(ctx, "SELECT stage FROM official_results WHERE id = 1").Scan(&stage); err != nil {
		return nil, err
	}
	stats["stage"] = stage

	return stats, nil
}
