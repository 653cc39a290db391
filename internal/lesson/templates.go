package lesson

type template struct {
	topics     []string
	activities []string
}

var generalTemplate = template{
	topics:     []string{"General Knowledge"},
	activities: []string{"Reading and Discussion"},
}

var templates = map[string]map[Level]template{
	"Mathematics": {
		LevelEarlyYears: {
			topics:     []string{"Numbers to 20", "Simple Addition", "Shapes and Patterns"},
			activities: []string{"Counting Games", "Number Songs", "Shape Sorting"},
		},
		LevelPrimary: {
			topics:     []string{"Place Value", "Times Tables", "Fractions"},
			activities: []string{"Number Games", "Mental Maths", "Problem Solving"},
		},
		LevelSecondary: {
			topics:     []string{"Algebra", "Geometry", "Statistics"},
			activities: []string{"Equation Practice", "Geometric Constructions", "Data Analysis"},
		},
		LevelSixthForm: {
			topics:     []string{"Advanced Functions", "Calculus", "Mechanics"},
			activities: []string{"Complex Problems", "Mathematical Modelling", "Exam Practice"},
		},
	},
	"Science": {
		LevelEarlyYears: {
			topics:     []string{"Living Things", "Materials", "Seasons"},
			activities: []string{"Nature Walks", "Simple Experiments", "Weather Watch"},
		},
		LevelPrimary: {
			topics:     []string{"Plants and Animals", "Forces", "Materials"},
			activities: []string{"Growing Plants", "Simple Machines", "Material Testing"},
		},
		LevelSecondary: {
			topics:     []string{"Chemistry Basics", "Physics Laws", "Biology Systems"},
			activities: []string{"Lab Work", "Scientific Investigation", "Research Projects"},
		},
		LevelSixthForm: {
			topics:     []string{"Organic Chemistry", "Quantum Physics", "Molecular Biology"},
			activities: []string{"Advanced Practicals", "Research Analysis", "Scientific Papers"},
		},
	},
}

func templateFor(subject string, level Level) template {
	if byLevel, ok := templates[subject]; ok {
		if t, ok := byLevel[level]; ok {
			return t
		}
	}
	return generalTemplate
}
