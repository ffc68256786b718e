package domain

// Labels enumerates the four answer-option labels in display order.
var Labels = [4]string{"A", "B", "C", "D"}

// Question is the server-side representation of a quiz question,
// including the correct option label. It must never be sent to clients
// as-is; use View for the client-facing shape.
type Question struct {
	Text       string `json:"question"`
	A          string `json:"A"`
	B          string `json:"B"`
	C          string `json:"C"`
	D          string `json:"D"`
	Answer     string `json:"answer"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Option returns the answer text stored under the given label, or ""
// for an unknown label.
func (q Question) Option(label string) string {
	switch label {
	case "A":
		return q.A
	case "B":
		return q.B
	case "C":
		return q.C
	case "D":
		return q.D
	}
	return ""
}

// QuestionView is the client-facing shape of a question. The correct
// answer is deliberately absent.
type QuestionView struct {
	ID         int               `json:"id"`
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
	Category   string            `json:"category,omitempty"`
	Difficulty string            `json:"difficulty,omitempty"`
}

// View projects the question for client display, keyed by its position
// in the quiz.
func (q Question) View(id int) QuestionView {
	return QuestionView{
		ID:       id,
		Question: q.Text,
		Options: map[string]string{
			"A": q.A,
			"B": q.B,
			"C": q.C,
			"D": q.D,
		},
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// AnswerSubmission is a single client answer, keyed by the question's
// position in the quiz. A nil ChosenAnswer means the question was left
// blank and scores as incorrect.
type AnswerSubmission struct {
	ID           int     `json:"id"`
	ChosenAnswer *string `json:"chosenAnswer"`
}

// AnswerDetail is the per-question outcome of a scored submission. It
// is returned to the client and persisted with the game result.
type AnswerDetail struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	ChosenAnswer  string `json:"chosenAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}
