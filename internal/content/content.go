// Package content holds the static game banks for one party season: quiz
// questions, trivia categories and party challenges. The banks are data,
// not logic; scoring services read them but never mutate them.
package content

// QuizQuestion is one multiple-choice question. Correct indexes into
// Answers. Points scale with difficulty (1 easy, 2 medium, 3 hard).
type QuizQuestion struct {
	ID         int      `json:"id"`
	Question   string   `json:"question"`
	Answers    []string `json:"answers"`
	Correct    int      `json:"-"`
	Points     int      `json:"points"`
	Difficulty string   `json:"difficulty"`
}

// TriviaQuestion is one culture question inside a themed category. Points
// may be fractional.
type TriviaQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
	Correct  int      `json:"-"`
	Points   float64  `json:"points"`
}

// TriviaCategory groups trivia questions submitted together as one batch.
type TriviaCategory struct {
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Questions []TriviaQuestion `json:"questions"`
}

// Challenge is one fun party challenge worth fixed points.
type Challenge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// QuizQuestions is the pageant quiz bank.
var QuizQuestions = []QuizQuestion{
	{ID: 1, Question: "In what year was the first Miss France elected?", Answers: []string{"1920", "1927", "1935", "1945"}, Correct: 1, Points: 2, Difficulty: "medium"},
	{ID: 2, Question: "Which Miss France went on to win Miss Universe in 2016?", Answers: []string{"Flora Coquerel", "Iris Mittenaere", "Camille Cerf", "Marine Lorphelin"}, Correct: 1, Points: 1, Difficulty: "easy"},
	{ID: 3, Question: "Who created the Miss France pageant?", Answers: []string{"Maurice de Waleffe", "Jean-Pierre Foucault", "Geneviève de Fontenay", "Louis de Funès"}, Correct: 0, Points: 3, Difficulty: "hard"},
	{ID: 4, Question: "Which TV channel broadcasts the Miss France election?", Answers: []string{"TF1", "France 2", "M6", "France 3"}, Correct: 0, Points: 1, Difficulty: "easy"},
	{ID: 5, Question: "What is the minimum height required to compete?", Answers: []string{"1m65", "1m70", "1m75", "No restriction"}, Correct: 1, Points: 2, Difficulty: "medium"},
	{ID: 6, Question: "Which region has won the crown the most times?", Answers: []string{"Île-de-France", "Provence", "Nord-Pas-de-Calais", "Normandie"}, Correct: 2, Points: 3, Difficulty: "hard"},
	{ID: 7, Question: "How long does a Miss France reign last?", Answers: []string{"6 months", "1 year", "2 years", "18 months"}, Correct: 1, Points: 1, Difficulty: "easy"},
	{ID: 8, Question: "How many runners-up (dauphines) are elected?", Answers: []string{"1", "2", "3", "4"}, Correct: 3, Points: 2, Difficulty: "medium"},
	{ID: 9, Question: "How many Miss France have won Miss Universe?", Answers: []string{"1", "2", "3", "4"}, Correct: 1, Points: 3, Difficulty: "hard"},
	{ID: 10, Question: "Who chooses the winner?", Answers: []string{"The jury only", "The public only", "The public and the jury", "The host"}, Correct: 2, Points: 1, Difficulty: "easy"},
}

// TriviaCategories is the culture quiz bank. Each category is submitted as
// a whole; half-point values keep partial knowledge worth something.
var TriviaCategories = []TriviaCategory{
	{
		Name:  "history",
		Label: "Pageant history",
		Questions: []TriviaQuestion{
			{ID: 101, Question: "Which Miss France became Miss Universe in 1953?", Answers: []string{"Christiane Martel", "Sylvie Tellier", "Muguette Fabris", "Denise Perrier"}, Correct: 0, Points: 2.5},
			{ID: 102, Question: "Who hosted the election before Jean-Pierre Foucault?", Answers: []string{"Patrick Sabatier", "Michel Drucker", "Yves Mourousi", "Patrick Sébastien"}, Correct: 2, Points: 2.5},
			{ID: 103, Question: "In what month does the election take place?", Answers: []string{"November", "December", "January", "February"}, Correct: 1, Points: 0.5},
			{ID: 104, Question: "Where is the election held?", Answers: []string{"Paris", "Nice", "A different city every year", "Lille"}, Correct: 2, Points: 1.5},
		},
	},
	{
		Name:  "glamour",
		Label: "Crowns and couture",
		Questions: []TriviaQuestion{
			{ID: 201, Question: "Which jeweler makes the Miss France crown?", Answers: []string{"Chaumet", "Cartier", "Boucheron", "Van Cleef & Arpels"}, Correct: 0, Points: 2.5},
			{ID: 202, Question: "How many outfits do candidates wear during the show?", Answers: []string{"2", "3", "4", "5"}, Correct: 1, Points: 1.5},
			{ID: 203, Question: "How many candidates compete in an average year?", Answers: []string{"20", "25", "30", "35"}, Correct: 2, Points: 0.5},
			{ID: 204, Question: "How many TV viewers watch on average?", Answers: []string{"3 million", "5 million", "7 million", "10 million"}, Correct: 2, Points: 1.5},
		},
	},
}

// Challenges is the party challenge bank.
var Challenges = []Challenge{
	{ID: 1, Title: "Catwalk", Description: "Imitate a candidate's runway walk", Points: 10},
	{ID: 2, Title: "Golden object", Description: "Find a golden object in the room", Points: 15},
	{ID: 3, Title: "Victory speech", Description: "Improvise a winner's speech in 30 seconds", Points: 10},
	{ID: 4, Title: "Improvised crown", Description: "Build a crown out of whatever you can find", Points: 15},
	{ID: 5, Title: "Signature pose", Description: "Strike your best pageant pose", Points: 10},
}

// FindQuizQuestion returns the quiz question with the given ID.
func FindQuizQuestion(id int) (QuizQuestion, bool) {
	for _, q := range QuizQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return QuizQuestion{}, false
}

// FindTriviaCategory returns the trivia category with the given name.
func FindTriviaCategory(name string) (TriviaCategory, bool) {
	for _, c := range TriviaCategories {
		if c.Name == name {
			return c, true
		}
	}
	return TriviaCategory{}, false
}

// FindChallenge returns the challenge with the given ID.
func FindChallenge(id int) (Challenge, bool) {
	for _, c := range Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}
