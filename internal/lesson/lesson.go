// Package lesson builds lesson plan suggestions from a fixed template table.
//
// A year group label ("Reception", "Year 8") is reduced to a stage number,
// the stage to a Level, and (subject, level) selects a list of topics and
// activities. One of each is picked at random and dropped into a fixed
// plan shape: three objectives, three activities, three assessment items.
package lesson

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sakif/monkey-intelligence/internal/model"
)

// Level is a coarse educational stage.
type Level string

const (
	LevelEarlyYears Level = "early_years"
	LevelPrimary    Level = "primary"
	LevelSecondary  Level = "secondary"
	LevelSixthForm  Level = "sixth_form"
)

// ParseStage turns a year group label into a stage number.
// "Reception" is stage 0 and "Year N" is stage N, both case-insensitive and
// with optional whitespace between "year" and the number. Anything else
// returns ok == false.
func ParseStage(yearGroup string) (stage int, ok bool) {
	label := strings.ToLower(strings.TrimSpace(yearGroup))
	if label == "reception" {
		return 0, true
	}

	rest, found := strings.CutPrefix(label, "year")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// LevelFor maps a year group label to its Level. Unrecognised labels are
// treated as primary.
func LevelFor(yearGroup string) Level {
	stage, ok := ParseStage(yearGroup)
	switch {
	case !ok:
		return LevelPrimary
	case stage == 0:
		return LevelEarlyYears
	case stage <= 6:
		return LevelPrimary
	case stage <= 11:
		return LevelSecondary
	default:
		return LevelSixthForm
	}
}

// Generator picks topics and activities with its own random source.
// It is safe for concurrent use.
type Generator struct {
	mu         sync.Mutex
	randSource *rand.Rand
}

// NewGenerator returns a Generator seeded from the clock.
func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSource(rand.New(rand.NewPCG(seed, seed>>1)))
}

// NewGeneratorWithSource returns a Generator that draws from src.
// Tests pass a fixed seed.
func NewGeneratorWithSource(src *rand.Rand) *Generator {
	return &Generator{randSource: src}
}

// Generate builds a plan for subject and yearGroup. Subjects are matched
// exactly ("Mathematics", "Science"); any other subject gets the general
// template.
func (g *Generator) Generate(subject, yearGroup string) model.LessonPlan {
	t := templateFor(subject, LevelFor(yearGroup))

	g.mu.Lock()
	topic := t.topics[g.randSource.IntN(len(t.topics))]
	activity := t.activities[g.randSource.IntN(len(t.activities))]
	g.mu.Unlock()

	return model.LessonPlan{
		Title: topic + " for " + yearGroup,
		Objectives: []string{
			"Understand key concepts of " + topic,
			"Develop skills in " + subject + " problem-solving",
			"Practice critical thinking and analysis",
		},
		Activities: []string{
			activity,
			"Group Discussion and Review",
			"Practice Problems and Exercises",
		},
		Assessment: []string{
			"Class Participation",
			"Homework Tasks",
			"End of Unit Assessment",
		},
	}
}
