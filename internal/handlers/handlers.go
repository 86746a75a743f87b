package handlers

import (
	"github.com/spacieba/miss-france/internal/auth"
	"github.com/spacieba/miss-france/internal/services"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Player      services.PlayerServicer
	Registry    services.RegistryServicer
	Submission  services.SubmissionServicer
	Results     services.ResultsServicer
	Score       services.ScoreServicer
	Quiz        services.QuizServicer
	Trivia      services.TriviaServicer
	Challenge   services.ChallengeServicer
	Costume     services.CostumeServicer
	Leaderboard services.LeaderboardServicer
	Auth        *auth.Auth
	Log         HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	player services.PlayerServicer,
	registry services.RegistryServicer,
	submission services.SubmissionServicer,
	results services.ResultsServicer,
	score services.ScoreServicer,
	quiz services.QuizServicer,
	trivia services.TriviaServicer,
	challenge services.ChallengeServicer,
	costume services.CostumeServicer,
	leaderboard services.LeaderboardServicer,
	sessionAuth *auth.Auth,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Player:      player,
		Registry:    registry,
		Submission:  submission,
		Results:     results,
		Score:       score,
		Quiz:        quiz,
		Trivia:      trivia,
		Challenge:   challenge,
		Costume:     costume,
		Leaderboard: leaderboard,
		Auth:        sessionAuth,
		Log:         log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance with a known admin password
func NewForTesting(
	player services.PlayerServicer,
	registry services.RegistryServicer,
	submission services.SubmissionServicer,
	results services.ResultsServicer,
	score services.ScoreServicer,
	quiz services.QuizServicer,
	trivia services.TriviaServicer,
	challenge services.ChallengeServicer,
	costume services.CostumeServicer,
	leaderboard services.LeaderboardServicer,
) *Handlers {
	return &Handlers{
		Player:      player,
		Registry:    registry,
		Submission:  submission,
		Results:     results,
		Score:       score,
		Quiz:        quiz,
		Trivia:      trivia,
		Challenge:   challenge,
		Costume:     costume,
		Leaderboard: leaderboard,
		Auth:        auth.New("test-password"),
		Log:         NoopHTTPLogger{},
	}
}
