// ABOUTME: Immutable catalog of predefined routine templates.
// ABOUTME: Explicitly constructed and injected; tests substitute smaller catalogs.
package routine

// ExerciseTemplate is one exercise slot in a day template. Its order is
// implicit in the slice position.
type ExerciseTemplate struct {
	Name        string
	Sets        int
	RestSeconds int
	MuscleGroup string
}

// DayTemplate is one named day in a routine template.
type DayTemplate struct {
	Name      string
	Rest      bool
	Exercises []ExerciseTemplate
}

// Template is a predefined, non-user-owned routine blueprint.
type Template struct {
	Name string
	Days []DayTemplate
}

// Catalog holds the available templates. Immutable after construction.
type Catalog struct {
	templates []Template
}

// NewCatalog builds a catalog from the given templates.
func NewCatalog(templates ...Template) Catalog {
	return Catalog{templates: templates}
}

// Find returns the template with exactly the given name.
func (c Catalog) Find(name string) (Template, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names lists the template names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for _, t := range c.templates {
		names = append(names, t.Name)
	}
	return names
}

// findDay returns the day template with exactly the given name.
func (t Template) findDay(name string) (DayTemplate, bool) {
	for _, d := range t.Days {
		if d.Name == name {
			return d, true
		}
	}
	return DayTemplate{}, false
}

// DefaultCatalog returns the built-in routine templates.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Template{
			Name: "Push/Pull/Legs",
			Days: []DayTemplate{
				{
					Name: "Push",
					Exercises: []ExerciseTemplate{
						{Name: "Bench Press", Sets: 4, RestSeconds: 180, MuscleGroup: "chest"},
						{Name: "Overhead Press", Sets: 3, RestSeconds: 150, MuscleGroup: "shoulders"},
						{Name: "Incline Dumbbell Press", Sets: 3, RestSeconds: 120, MuscleGroup: "chest"},
						{Name: "Lateral Raise", Sets: 3, RestSeconds: 90, MuscleGroup: "shoulders"},
						{Name: "Triceps Pushdown", Sets: 3, RestSeconds: 90, MuscleGroup: "triceps"},
					},
				},
				{
					Name: "Pull",
					Exercises: []ExerciseTemplate{
						{Name: "Deadlift", Sets: 3, RestSeconds: 240, MuscleGroup: "back,hamstrings"},
						{Name: "Pull-Up", Sets: 4, RestSeconds: 150, MuscleGroup: "back"},
						{Name: "Barbell Row", Sets: 3, RestSeconds: 150, MuscleGroup: "back"},
						{Name: "Face Pull", Sets: 3, RestSeconds: 90, MuscleGroup: "rear delts"},
						{Name: "Barbell Curl", Sets: 3, RestSeconds: 90, MuscleGroup: "biceps"},
					},
				},
				{
					Name: "Legs",
					Exercises: []ExerciseTemplate{
						{Name: "Squat", Sets: 4, RestSeconds: 240, MuscleGroup: "quads,glutes"},
						{Name: "Romanian Deadlift", Sets: 3, RestSeconds: 180, MuscleGroup: "hamstrings"},
						{Name: "Leg Press", Sets: 3, RestSeconds: 150, MuscleGroup: "quads"},
						{Name: "Leg Curl", Sets: 3, RestSeconds: 90, MuscleGroup: "hamstrings"},
						{Name: "Standing Calf Raise", Sets: 4, RestSeconds: 60, MuscleGroup: "calves"},
					},
				},
				{Name: "Rest", Rest: true},
			},
		},
		Template{
			Name: "Upper/Lower",
			Days: []DayTemplate{
				{
					Name: "Upper",
					Exercises: []ExerciseTemplate{
						{Name: "Bench Press", Sets: 4, RestSeconds: 180, MuscleGroup: "chest"},
						{Name: "Barbell Row", Sets: 4, RestSeconds: 180, MuscleGroup: "back"},
						{Name: "Overhead Press", Sets: 3, RestSeconds: 150, MuscleGroup: "shoulders"},
						{Name: "Lat Pulldown", Sets: 3, RestSeconds: 120, MuscleGroup: "back"},
						{Name: "Dumbbell Curl", Sets: 2, RestSeconds: 90, MuscleGroup: "biceps"},
						{Name: "Triceps Extension", Sets: 2, RestSeconds: 90, MuscleGroup: "triceps"},
					},
				},
				{
					Name: "Lower",
					Exercises: []ExerciseTemplate{
						{Name: "Squat", Sets: 4, RestSeconds: 240, MuscleGroup: "quads,glutes"},
						{Name: "Romanian Deadlift", Sets: 3, RestSeconds: 180, MuscleGroup: "hamstrings"},
						{Name: "Walking Lunge", Sets: 3, RestSeconds: 120, MuscleGroup: "quads,glutes"},
						{Name: "Seated Calf Raise", Sets: 4, RestSeconds: 60, MuscleGroup: "calves"},
						{Name: "Hanging Leg Raise", Sets: 3, RestSeconds: 90, MuscleGroup: "abs"},
					},
				},
				{Name: "Rest", Rest: true},
			},
		},
		Template{
			Name: "Full Body",
			Days: []DayTemplate{
				{
					Name: "Full Body",
					Exercises: []ExerciseTemplate{
						{Name: "Squat", Sets: 3, RestSeconds: 180, MuscleGroup: "quads,glutes"},
						{Name: "Bench Press", Sets: 3, RestSeconds: 180, MuscleGroup: "chest"},
						{Name: "Barbell Row", Sets: 3, RestSeconds: 150, MuscleGroup: "back"},
						{Name: "Overhead Press", Sets: 2, RestSeconds: 120, MuscleGroup: "shoulders"},
						{Name: "Plank", Sets: 3, RestSeconds: 60, MuscleGroup: "abs"},
					},
				},
				{Name: "Rest", Rest: true},
			},
		},
	)
}
