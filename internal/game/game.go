// Package game generates arithmetic questions for the math practice game.
//
// A round is QuestionsPerRound questions or RoundDuration, whichever ends
// first. The client keeps score and posts the total as a GameProgress record
// with GameType(d) as its game type.
package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/sakif/monkey-intelligence/internal/apperror"
)

const (
	QuestionsPerRound = 10
	RoundDuration     = 60 * time.Second
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// level describes the operators and the half-open operand range [min, max)
// used at one difficulty.
type level struct {
	operators []string
	min, max  int
}

var levels = map[Difficulty]level{
	Easy:   {operators: []string{"+", "-"}, min: 1, max: 20},
	Medium: {operators: []string{"*", "/"}, min: 1, max: 12},
	Hard:   {operators: []string{"+", "-", "*", "/"}, min: 1, max: 100},
}

// ParseDifficulty validates a difficulty name from a query string.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := levels[d]; !ok {
		return "", apperror.ValidationFailed("difficulty", fmt.Sprintf("unknown difficulty %q", s))
	}
	return d, nil
}

// GameType is the progress game type recorded for a finished round.
func GameType(d Difficulty) string {
	return "math_" + string(d)
}

// Question is one arithmetic problem with its whole-number answer.
type Question struct {
	Num1       int        `json:"num1"`
	Num2       int        `json:"num2"`
	Operator   string     `json:"operator"`
	Answer     int        `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
}

// Round is one full game: QuestionsPerRound questions to answer within
// RoundDuration.
type Round struct {
	Difficulty      Difficulty `json:"difficulty"`
	GameType        string     `json:"gameType"`
	DurationSeconds int        `json:"durationSeconds"`
	Questions       []Question `json:"questions"`
}

// Generator draws questions from its own random source.
// It is safe for concurrent use.
type Generator struct {
	mu         sync.Mutex
	randSource *rand.Rand
}

func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSource(rand.New(rand.NewPCG(seed, seed>>1)))
}

func NewGeneratorWithSource(src *rand.Rand) *Generator {
	return &Generator{randSource: src}
}

// Question returns a new question at difficulty d. Division questions are
// built backwards from the divisor so the answer is always whole.
func (g *Generator) Question(d Difficulty) (Question, error) {
	lvl, ok := levels[d]
	if !ok {
		return Question{}, apperror.ValidationFailed("difficulty", fmt.Sprintf("unknown difficulty %q", d))
	}

	g.mu.Lock()
	op := lvl.operators[g.randSource.IntN(len(lvl.operators))]
	num1 := g.randSource.IntN(lvl.max-lvl.min) + lvl.min
	num2 := g.randSource.IntN(lvl.max-lvl.min) + lvl.min
	g.mu.Unlock()

	if op == "/" {
		num1 *= num2
	}

	return Question{
		Num1:       num1,
		Num2:       num2,
		Operator:   op,
		Answer:     apply(op, num1, num2),
		Difficulty: d,
	}, nil
}

// Round deals a fresh round of questions at difficulty d.
func (g *Generator) Round(d Difficulty) (Round, error) {
	questions := make([]Question, 0, QuestionsPerRound)
	for range QuestionsPerRound {
		q, err := g.Question(d)
		if err != nil {
			return Round{}, err
		}
		questions = append(questions, q)
	}

	return Round{
		Difficulty:      d,
		GameType:        GameType(d),
		DurationSeconds: int(RoundDuration / time.Second),
		Questions:       questions,
	}, nil
}

func apply(op string, a, b int) int {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	}
	return 0
}

// Difficulties lists the supported difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return slices.Clone([]Difficulty{Easy, Medium, Hard})
}
