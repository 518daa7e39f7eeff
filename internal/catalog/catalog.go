// Package catalog is the static workout catalog: exercises, the templates built from
// them and the random template picker.
package catalog

type Kind string

const (
	KindCardio   Kind = "cardio"
	KindStrength Kind = "strength"
	KindMobility Kind = "mobility"
	KindMixed    Kind = "mixed"
)

func (k Kind) Valid() bool {
	switch k {
	case KindCardio, KindStrength, KindMobility, KindMixed:
		return true
	}
	return false
}

type Category string

const (
	CategoryCardio   Category = "cardio"
	CategoryStrength Category = "strength"
	CategoryMobility Category = "mobility"
)

type Exercise struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Targets         []string `json:"targets"`
	Level           int      `json:"level"`
	Description     string   `json:"description"`
	Cues            []string `json:"cues"`
	EasierVariation string   `json:"easier_variation,omitempty"`
}

type BlockType string

const (
	BlockWarmup   BlockType = "warmup"
	BlockMain     BlockType = "main"
	BlockCooldown BlockType = "cooldown"
)

type Block struct {
	Type            BlockType `json:"type"`
	DurationSeconds int       `json:"duration_seconds"`
	ExerciseIDs     []string  `json:"exercise_ids"`
}

type Template struct {
	Key                   string  `json:"key"`
	Name                  string  `json:"name"`
	Kind                  Kind    `json:"kind"`
	Level                 int     `json:"level"`
	TargetDurationMinutes int     `json:"target_duration_minutes"`
	Blocks                []Block `json:"blocks"`
}

// Durations are the session lengths templates are written for, in minutes.
var Durations = []int{5, 10, 15, 20, 30}

var (
	exerciseByID  = map[string]*Exercise{}
	templateByKey = map[string]*Template{}
)

func init() {
	for i := range exercises {
		exerciseByID[exercises[i].ID] = &exercises[i]
	}
	for i := range templates {
		templateByKey[templates[i].Key] = &templates[i]
	}
}

// ExerciseByID returns nil for an unknown id.
func ExerciseByID(id string) *Exercise {
	return exerciseByID[id]
}

// TemplateByKey returns nil for an unknown key.
func TemplateByKey(key string) *Template {
	return templateByKey[key]
}

func Exercises() []Exercise {
	return append([]Exercise{}, exercises...)
}

func Templates() []Template {
	return append([]Template{}, templates...)
}

// TemplateDuration sums the block durations of t, in seconds.
func TemplateDuration(t Template) int {
	total := 0
	for _, b := range t.Blocks {
		total += b.DurationSeconds
	}
	return total
}
