package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sakif/monkey-intelligence/internal/apperror"
)

func newTestGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewPCG(7, 11)))
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, err := ParseDifficulty(string(d))
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, nil)", d, got, err, d)
		}
	}

	for _, bad := range []string{"", "EASY", "expert"} {
		_, err := ParseDifficulty(bad)
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("ParseDifficulty(%q) error = %v, want ErrValidation", bad, err)
		}
	}
}

func TestGameType(t *testing.T) {
	if got := GameType(Medium); got != "math_medium" {
		t.Errorf("GameType(Medium) = %q, want %q", got, "math_medium")
	}
}

func TestQuestion_OperatorsAndRanges(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		difficulty Difficulty
		operators  []string
		max        int
	}{
		{Easy, []string{"+", "-"}, 20},
		{Medium, []string{"*", "/"}, 12},
		{Hard, []string{"+", "-", "*", "/"}, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				q, err := g.Question(tt.difficulty)
				if err != nil {
					t.Fatalf("Question() error = %v", err)
				}
				if !slices.Contains(tt.operators, q.Operator) {
					t.Fatalf("operator %q not allowed at %s", q.Operator, tt.difficulty)
				}
				if q.Num2 < 1 || q.Num2 >= tt.max {
					t.Fatalf("num2 = %d, want [1, %d)", q.Num2, tt.max)
				}
				if q.Operator != "/" && (q.Num1 < 1 || q.Num1 >= tt.max) {
					t.Fatalf("num1 = %d, want [1, %d)", q.Num1, tt.max)
				}
				if q.Difficulty != tt.difficulty {
					t.Fatalf("Difficulty = %q, want %q", q.Difficulty, tt.difficulty)
				}
			}
		})
	}
}

func TestQuestion_AnswerIsCorrect(t *testing.T) {
	g := newTestGenerator()

	for i := 0; i < 500; i++ {
		q, err := g.Question(Hard)
		if err != nil {
			t.Fatalf("Question() error = %v", err)
		}

		var want int
		switch q.Operator {
		case "+":
			want = q.Num1 + q.Num2
		case "-":
			want = q.Num1 - q.Num2
		case "*":
			want = q.Num1 * q.Num2
		case "/":
			if q.Num1%q.Num2 != 0 {
				t.Fatalf("%d / %d is not whole", q.Num1, q.Num2)
			}
			want = q.Num1 / q.Num2
		}
		if q.Answer != want {
			t.Fatalf("%d %s %d: Answer = %d, want %d", q.Num1, q.Operator, q.Num2, q.Answer, want)
		}
	}
}

func TestQuestion_UnknownDifficulty(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Question("impossible")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Question() error = %v, want ErrValidation", err)
	}
}

func TestRound(t *testing.T) {
	g := newTestGenerator()

	r, err := g.Round(Easy)
	if err != nil {
		t.Fatalf("Round() error = %v", err)
	}
	if len(r.Questions) != QuestionsPerRound {
		t.Errorf("len(Questions) = %d, want %d", len(r.Questions), QuestionsPerRound)
	}
	if r.DurationSeconds != 60 {
		t.Errorf("DurationSeconds = %d, want 60", r.DurationSeconds)
	}
	if r.GameType != "math_easy" {
		t.Errorf("GameType = %q, want %q", r.GameType, "math_easy")
	}
	for _, q := range r.Questions {
		if q.Difficulty != Easy {
			t.Fatalf("question difficulty = %q, want %q", q.Difficulty, Easy)
		}
	}

	if _, err := g.Round("impossible"); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Round() error = %v, want ErrValidation", err)
	}
}
