package catalog

var exercises = []Exercise{
	// cardio
	{
		ID:              "EXO_CARDIO_MARCHE_PLACE",
		Name:            "Brisk march in place",
		Category:        CategoryCardio,
		Targets:         []string{"legs", "cardio"},
		Level:           1,
		Description:     "Lift the knees in turn while swinging the arms lightly.",
		Cues:            []string{"Land softly", "Keep the shoulders relaxed"},
		EasierVariation: "March more slowly.",
	},
	{
		ID:          "EXO_CARDIO_STEP_TOUCH",
		Name:        "Step touch",
		Category:    CategoryCardio,
		Targets:     []string{"legs", "cardio"},
		Level:       1,
		Description: "Step to the side, then back to the center.",
		Cues:        []string{"Soft knees"},
	},
	{
		ID:          "EXO_CARDIO_MARCHE_FRONTALE",
		Name:        "Forward and back walk",
		Category:    CategoryCardio,
		Targets:     []string{"legs", "cardio"},
		Level:       1,
		Description: "Two or three steps forward, then back.",
		Cues:        []string{"Look ahead"},
	},
	{
		ID:          "EXO_CARDIO_JJ_LOW_IMPACT",
		Name:        "Low impact jumping jack",
		Category:    CategoryCardio,
		Targets:     []string{"legs", "shoulders"},
		Level:       2,
		Description: "Right leg out with arms open, then the other side.",
		Cues:        []string{"Controlled movement"},
	},
	{
		ID:          "EXO_CARDIO_TALONS_FESSES",
		Name:        "Butt kicks in place",
		Category:    CategoryCardio,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Bring one heel toward the glutes, then alternate.",
		Cues:        []string{"Straight back"},
	},
	{
		ID:          "EXO_CARDIO_KNEE_LIFT",
		Name:        "Low impact knee lifts",
		Category:    CategoryCardio,
		Targets:     []string{"legs", "cardio"},
		Level:       1,
		Description: "Lift the knees and move the arms.",
		Cues:        []string{"Breathe smoothly"},
	},
	{
		ID:          "EXO_CARDIO_PAS_ARC_COURBE",
		Name:        "Arc steps",
		Category:    CategoryCardio,
		Targets:     []string{"legs", "coordination"},
		Level:       1,
		Description: "Move sideways along a half circle.",
		Cues:        []string{"Shift your weight smoothly"},
	},
	{
		ID:          "EXO_CARDIO_BOX_JABS",
		Name:        "Boxing jabs",
		Category:    CategoryCardio,
		Targets:     []string{"shoulders", "arms"},
		Level:       1,
		Description: "Punch forward, one fist at a time.",
		Cues:        []string{"Light core bracing"},
	},
	{
		ID:          "EXO_CARDIO_SIDE_KICKS",
		Name:        "Gentle side kicks",
		Category:    CategoryCardio,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Small controlled kick to the side.",
		Cues:        []string{"Do not force the height"},
	},
	{
		ID:          "EXO_CARDIO_DOUBLE_STEP",
		Name:        "Double side step",
		Category:    CategoryCardio,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Two steps right, two steps left.",
		Cues:        []string{"Soft knees"},
	},
	{
		ID:          "EXO_CARDIO_STEP_BACK",
		Name:        "Alternating step back",
		Category:    CategoryCardio,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Step one leg back, then the other.",
		Cues:        []string{"Place the whole foot"},
	},

	// strength
	{
		ID:          "EXO_SQUAT_CHAISE",
		Name:        "Chair squat",
		Category:    CategoryStrength,
		Targets:     []string{"legs", "glutes"},
		Level:       1,
		Description: "Lower toward the chair, then stand back up.",
		Cues:        []string{"Knees aligned", "Open chest"},
	},
	{
		ID:          "EXO_PONT_FESSIER",
		Name:        "Glute bridge",
		Category:    CategoryStrength,
		Targets:     []string{"glutes"},
		Level:       1,
		Description: "Raise the hips while squeezing the glutes.",
		Cues:        []string{"Push through the heels"},
	},
	{
		ID:          "EXO_POMPE_MUR",
		Name:        "Wall push-ups",
		Category:    CategoryStrength,
		Targets:     []string{"chest", "arms"},
		Level:       1,
		Description: "Bend the elbows toward the wall and push away.",
		Cues:        []string{"Braced body"},
	},
	{
		ID:          "EXO_GAINAGE_GENOUX",
		Name:        "Kneeling plank",
		Category:    CategoryStrength,
		Targets:     []string{"abs", "back"},
		Level:       1,
		Description: "Hold the aligned position.",
		Cues:        []string{"Look at the floor"},
	},
	{
		ID:          "EXO_SQUAT_DEMI",
		Name:        "Half squat",
		Category:    CategoryStrength,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Short controlled squat.",
		Cues:        []string{"Weight in the heels"},
	},
	{
		ID:          "EXO_FENTE_STATIQUE",
		Name:        "Static lunge",
		Category:    CategoryStrength,
		Targets:     []string{"legs"},
		Level:       1,
		Description: "Fixed lunge with a short range.",
		Cues:        []string{"Hips centered"},
	},
	{
		ID:          "EXO_ROW_BAND_IMAGINARY",
		Name:        "Imaginary band row",
		Category:    CategoryStrength,
		Targets:     []string{"back", "arms"},
		Level:       1,
		Description: "Pull the elbows back.",
		Cues:        []string{"Squeeze the shoulder blades"},
	},
	{
		ID:          "EXO_PUSH_UP_TABLE",
		Name:        "Table push-ups",
		Category:    CategoryStrength,
		Targets:     []string{"chest", "arms"},
		Level:       1,
		Description: "Slight incline, bend the arms.",
		Cues:        []string{"Elbows at 45 degrees"},
	},
	{
		ID:          "EXO_CHAIR_SIT_HOLD",
		Name:        "Shallow wall sit",
		Category:    CategoryStrength,
		Targets:     []string{"legs"},
		Level:       2,
		Description: "Hold a shallow chair position.",
		Cues:        []string{"Knees above the ankles"},
	},
	{
		ID:          "EXO_GLUTE_KICKBACK",
		Name:        "Standing kickback",
		Category:    CategoryStrength,
		Targets:     []string{"glutes"},
		Level:       1,
		Description: "Extend the leg behind you.",
		Cues:        []string{"Slow movement"},
	},
	{
		ID:          "EXO_ABS_STANDING_CRUNCH",
		Name:        "Standing crunch",
		Category:    CategoryStrength,
		Targets:     []string{"abs"},
		Level:       1,
		Description: "Knee toward the elbows.",
		Cues:        []string{"Exhale on the way up"},
	},

	// mobility
	{
		ID:          "EXO_MOB_COUP_DEBOUT",
		Name:        "Neck and shoulder mobility",
		Category:    CategoryMobility,
		Targets:     []string{"neck", "shoulders"},
		Level:       1,
		Description: "Shoulder circles and head tilts.",
		Cues:        []string{"Gentle movement"},
	},
	{
		ID:          "EXO_MOB_COLONNE_CHAT_VACHE",
		Name:        "Standing cat cow",
		Category:    CategoryMobility,
		Targets:     []string{"back"},
		Level:       1,
		Description: "Alternate a rounded and an arched back.",
		Cues:        []string{"Do not force"},
	},
	{
		ID:          "EXO_MOB_HANCHES",
		Name:        "Hip circles",
		Category:    CategoryMobility,
		Targets:     []string{"hips"},
		Level:       1,
		Description: "Slowly rotate the pelvis.",
		Cues:        []string{"Comfortable range"},
	},
	{
		ID:          "EXO_ETIREMENT_ISCHIOS_MUR",
		Name:        "Standing hamstring stretch",
		Category:    CategoryMobility,
		Targets:     []string{"hamstrings"},
		Level:       1,
		Description: "Heels on a support, lean the torso forward.",
		Cues:        []string{"Long back"},
	},
	{
		ID:          "EXO_MOB_ANKLES",
		Name:        "Ankle circles",
		Category:    CategoryMobility,
		Targets:     []string{"ankles"},
		Level:       1,
		Description: "Gently rotate the ankle.",
		Cues:        []string{"Gentle range"},
	},
	{
		ID:          "EXO_MOB_POIGNETS",
		Name:        "Wrist circles",
		Category:    CategoryMobility,
		Targets:     []string{"wrists"},
		Level:       1,
		Description: "Slow mobilization.",
		Cues:        []string{"Calm breathing"},
	},
	{
		ID:          "EXO_MOB_HANCHE_OUVERTURE",
		Name:        "Hip opener",
		Category:    CategoryMobility,
		Targets:     []string{"hips"},
		Level:       1,
		Description: "Lift a knee and open it outward.",
		Cues:        []string{"Control"},
	},
	{
		ID:          "EXO_ETIREMENT_QUADRICEPS",
		Name:        "Standing quad stretch",
		Category:    CategoryMobility,
		Targets:     []string{"quads"},
		Level:       1,
		Description: "Pull the foot toward the glutes.",
		Cues:        []string{"Knee toward the floor"},
	},
	{
		ID:          "EXO_ETIREMENT_TRICEPS",
		Name:        "Triceps stretch",
		Category:    CategoryMobility,
		Targets:     []string{"arms"},
		Level:       1,
		Description: "Hand behind the head.",
		Cues:        []string{"Relaxed shoulder"},
	},
	{
		ID:          "EXO_MOB_TWIST_DEBOUT",
		Name:        "Gentle torso twist",
		Category:    CategoryMobility,
		Targets:     []string{"back"},
		Level:       1,
		Description: "Turn gently right and left.",
		Cues:        []string{"Hips still"},
	},
}
