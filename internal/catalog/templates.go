package catalog

var templates = []Template{
	{
		Key:                   "WT_MOB_5_MIN_EASY",
		Name:                  "Gentle wake-up (5 min mobility)",
		Kind:                  KindMobility,
		Level:                 1,
		TargetDurationMinutes: 5,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
			{Type: BlockMain, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_HANCHES"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE"}},
		},
	},
	{
		Key:                   "WT_CARDIO_10_MIN_BEGINNER",
		Name:                  "Easy cardio 10 min",
		Kind:                  KindCardio,
		Level:                 1,
		TargetDurationMinutes: 10,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_HANCHES"}},
			{Type: BlockMain, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_MARCHE_FRONTALE"}},
			{Type: BlockMain, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_JJ_LOW_IMPACT"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_FULLBODY_15_MIN_BEGINNER",
		Name:                  "Full body 15 min (beginner)",
		Kind:                  KindMixed,
		Level:                 1,
		TargetDurationMinutes: 15,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_COLONNE_CHAT_VACHE", "EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_PONT_FESSIER", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_PONT_FESSIER", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_HANCHES", "EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_MIX_20_MIN_BEGINNER",
		Name:                  "Strength and cardio mix 20 min",
		Kind:                  KindMixed,
		Level:                 1,
		TargetDurationMinutes: 20,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_COLONNE_CHAT_VACHE", "EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_CARDIO_STEP_TOUCH", "EXO_PONT_FESSIER", "EXO_CARDIO_MARCHE_FRONTALE", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_CARDIO_STEP_TOUCH", "EXO_PONT_FESSIER", "EXO_CARDIO_JJ_LOW_IMPACT", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockCooldown, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_HANCHES", "EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_FULLBODY_30_MIN_BASE",
		Name:                  "Full body 30 min (base)",
		Kind:                  KindMixed,
		Level:                 2,
		TargetDurationMinutes: 30,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 240, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_COLONNE_CHAT_VACHE", "EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_CARDIO_STEP_TOUCH", "EXO_PONT_FESSIER", "EXO_CARDIO_MARCHE_FRONTALE", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_CARDIO_STEP_TOUCH", "EXO_PONT_FESSIER", "EXO_CARDIO_JJ_LOW_IMPACT", "EXO_POMPE_MUR", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockCooldown, DurationSeconds: 300, ExerciseIDs: []string{"EXO_MOB_HANCHES", "EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_5_MIN_N1_MOB_CARDIO",
		Name:                  "Gentle warm-up 5 min (L1)",
		Kind:                  KindMixed,
		Level:                 1,
		TargetDurationMinutes: 5,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_HANCHES"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_5_MIN_N1_LOWER",
		Name:                  "Lower body strength 5 min (L1)",
		Kind:                  KindStrength,
		Level:                 1,
		TargetDurationMinutes: 5,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_HANCHES"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_SQUAT_CHAISE"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_PONT_FESSIER"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_ETIREMENT_QUADRICEPS"}},
		},
	},
	{
		Key:                   "WT_5_MIN_N2_CARDIO",
		Name:                  "Light cardio 5 min (L2)",
		Kind:                  KindCardio,
		Level:                 2,
		TargetDurationMinutes: 5,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 60, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_KNEE_LIFT"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_CARDIO_TALONS_FESSES"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_5_MIN_N2_UPPER",
		Name:                  "Upper body strength 5 min (L2)",
		Kind:                  KindStrength,
		Level:                 2,
		TargetDurationMinutes: 5,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 60, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_PUSH_UP_TABLE"}},
			{Type: BlockMain, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ROW_BAND_IMAGINARY"}},
			{Type: BlockCooldown, DurationSeconds: 60, ExerciseIDs: []string{"EXO_ETIREMENT_TRICEPS"}},
		},
	},
	{
		Key:                   "WT_10_MIN_N1_CARDIO",
		Name:                  "Beginner cardio 10 min (L1)",
		Kind:                  KindCardio,
		Level:                 1,
		TargetDurationMinutes: 10,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_CARDIO_STEP_TOUCH"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_FRONTALE"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_10_MIN_N2_FULLBODY",
		Name:                  "Dynamic full body 10 min (L2)",
		Kind:                  KindMixed,
		Level:                 2,
		TargetDurationMinutes: 10,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 120, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_HANCHE_OUVERTURE"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_PUSH_UP_TABLE", "EXO_ABS_STANDING_CRUNCH"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_GLUTE_KICKBACK", "EXO_ROW_BAND_IMAGINARY"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_10_MIN_N3_CARDIO",
		Name:                  "Moderate cardio 10 min (L3)",
		Kind:                  KindCardio,
		Level:                 3,
		TargetDurationMinutes: 10,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 120, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_KNEE_LIFT", "EXO_CARDIO_BOX_JABS", "EXO_CARDIO_SIDE_KICKS"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_DOUBLE_STEP", "EXO_CARDIO_TALONS_FESSES"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_TWIST_DEBOUT"}},
		},
	},
	{
		Key:                   "WT_10_MIN_N3_STRENGTH",
		Name:                  "Toning strength 10 min (L3)",
		Kind:                  KindStrength,
		Level:                 3,
		TargetDurationMinutes: 10,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_HANCHES"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_FENTE_STATIQUE", "EXO_CHAIR_SIT_HOLD"}},
			{Type: BlockMain, DurationSeconds: 240, ExerciseIDs: []string{"EXO_PUSH_UP_TABLE", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ETIREMENT_QUADRICEPS"}},
		},
	},
	{
		Key:                   "WT_15_MIN_N1_MOBILITY",
		Name:                  "Deep mobility 15 min (L1)",
		Kind:                  KindMobility,
		Level:                 1,
		TargetDurationMinutes: 15,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_POIGNETS"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE", "EXO_MOB_HANCHES", "EXO_MOB_ANKLES"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_MOB_HANCHE_OUVERTURE", "EXO_MOB_TWIST_DEBOUT"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_15_MIN_N2_CARDIO_MIX",
		Name:                  "Cardio mix 15 min (L2)",
		Kind:                  KindCardio,
		Level:                 2,
		TargetDurationMinutes: 15,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_HANCHE_OUVERTURE"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_KNEE_LIFT", "EXO_CARDIO_DOUBLE_STEP"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_CARDIO_SIDE_KICKS", "EXO_CARDIO_BOX_JABS"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_15_MIN_N3_FULLBODY",
		Name:                  "Toning full body 15 min (L3)",
		Kind:                  KindMixed,
		Level:                 3,
		TargetDurationMinutes: 15,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_PUSH_UP_TABLE", "EXO_ABS_STANDING_CRUNCH"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_GLUTE_KICKBACK", "EXO_ROW_BAND_IMAGINARY", "EXO_CHAIR_SIT_HOLD"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ETIREMENT_TRICEPS"}},
		},
	},
	{
		Key:                   "WT_15_MIN_N3_LOWER",
		Name:                  "Intense lower body 15 min (L3)",
		Kind:                  KindStrength,
		Level:                 3,
		TargetDurationMinutes: 15,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_HANCHES", "EXO_MOB_ANKLES"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_FENTE_STATIQUE", "EXO_CHAIR_SIT_HOLD"}},
			{Type: BlockMain, DurationSeconds: 360, ExerciseIDs: []string{"EXO_PONT_FESSIER", "EXO_GLUTE_KICKBACK"}},
			{Type: BlockCooldown, DurationSeconds: 120, ExerciseIDs: []string{"EXO_ETIREMENT_QUADRICEPS"}},
		},
	},
	{
		Key:                   "WT_20_MIN_N1_STRETCH",
		Name:                  "Stretching and mobility 20 min (L1)",
		Kind:                  KindMobility,
		Level:                 1,
		TargetDurationMinutes: 20,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_MOB_POIGNETS"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE", "EXO_MOB_HANCHE_OUVERTURE", "EXO_MOB_TWIST_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR", "EXO_ETIREMENT_QUADRICEPS", "EXO_ETIREMENT_TRICEPS"}},
			{Type: BlockCooldown, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_ANKLES"}},
		},
	},
	{
		Key:                   "WT_20_MIN_N2_MIX",
		Name:                  "Strength and cardio mix 20 min (L2)",
		Kind:                  KindMixed,
		Level:                 2,
		TargetDurationMinutes: 20,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_HANCHES"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_KNEE_LIFT", "EXO_SQUAT_DEMI", "EXO_PUSH_UP_TABLE"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_CARDIO_DOUBLE_STEP", "EXO_CARDIO_BOX_JABS", "EXO_GLUTE_KICKBACK"}},
			{Type: BlockCooldown, DurationSeconds: 180, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR"}},
		},
	},
	{
		Key:                   "WT_20_MIN_N3_CARDIO",
		Name:                  "Moderate and toning cardio 20 min (L3)",
		Kind:                  KindCardio,
		Level:                 3,
		TargetDurationMinutes: 20,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_HANCHES"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_CARDIO_KNEE_LIFT", "EXO_CARDIO_BOX_JABS", "EXO_CARDIO_SIDE_KICKS"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_CARDIO_DOUBLE_STEP", "EXO_CARDIO_TALONS_FESSES", "EXO_CARDIO_PAS_ARC_COURBE"}},
			{Type: BlockCooldown, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_20_MIN_N3_FULLBODY",
		Name:                  "Toning full body 20 min (L3)",
		Kind:                  KindMixed,
		Level:                 3,
		TargetDurationMinutes: 20,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 180, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_PUSH_UP_TABLE", "EXO_ABS_STANDING_CRUNCH"}},
			{Type: BlockMain, DurationSeconds: 420, ExerciseIDs: []string{"EXO_GLUTE_KICKBACK", "EXO_ROW_BAND_IMAGINARY", "EXO_CHAIR_SIT_HOLD"}},
			{Type: BlockCooldown, DurationSeconds: 180, ExerciseIDs: []string{"EXO_ETIREMENT_TRICEPS"}},
		},
	},
	{
		Key:                   "WT_30_MIN_N1_FULLBODY",
		Name:                  "Easy full body 30 min (L1)",
		Kind:                  KindMixed,
		Level:                 1,
		TargetDurationMinutes: 30,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 240, ExerciseIDs: []string{"EXO_MOB_COUP_DEBOUT", "EXO_CARDIO_MARCHE_PLACE"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_SQUAT_CHAISE", "EXO_PONT_FESSIER", "EXO_PUSH_UP_TABLE"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_MARCHE_FRONTALE", "EXO_GLUTE_KICKBACK"}},
			{Type: BlockCooldown, DurationSeconds: 300, ExerciseIDs: []string{"EXO_ETIREMENT_ISCHIOS_MUR", "EXO_MOB_TWIST_DEBOUT"}},
		},
	},
	{
		Key:                   "WT_30_MIN_N2_CARDIO_MIX",
		Name:                  "Cardio mix 30 min (L2)",
		Kind:                  KindCardio,
		Level:                 2,
		TargetDurationMinutes: 30,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_HANCHE_OUVERTURE"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_CARDIO_STEP_TOUCH", "EXO_CARDIO_KNEE_LIFT", "EXO_CARDIO_DOUBLE_STEP"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_CARDIO_SIDE_KICKS", "EXO_CARDIO_BOX_JABS", "EXO_CARDIO_TALONS_FESSES"}},
			{Type: BlockCooldown, DurationSeconds: 300, ExerciseIDs: []string{"EXO_MOB_COLONNE_CHAT_VACHE"}},
		},
	},
	{
		Key:                   "WT_30_MIN_N3_STRENGTH",
		Name:                  "Advanced strength 30 min (L3)",
		Kind:                  KindStrength,
		Level:                 3,
		TargetDurationMinutes: 30,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 240, ExerciseIDs: []string{"EXO_MOB_HANCHES", "EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_FENTE_STATIQUE", "EXO_CHAIR_SIT_HOLD"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_PUSH_UP_TABLE", "EXO_ROW_BAND_IMAGINARY", "EXO_GAINAGE_GENOUX"}},
			{Type: BlockCooldown, DurationSeconds: 300, ExerciseIDs: []string{"EXO_ETIREMENT_QUADRICEPS"}},
		},
	},
	{
		Key:                   "WT_30_MIN_N3_FULLBODY",
		Name:                  "Toning full body 30 min (L3)",
		Kind:                  KindMixed,
		Level:                 3,
		TargetDurationMinutes: 30,
		Blocks: []Block{
			{Type: BlockWarmup, DurationSeconds: 240, ExerciseIDs: []string{"EXO_CARDIO_MARCHE_PLACE", "EXO_MOB_COUP_DEBOUT"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_SQUAT_DEMI", "EXO_PUSH_UP_TABLE", "EXO_ABS_STANDING_CRUNCH"}},
			{Type: BlockMain, DurationSeconds: 480, ExerciseIDs: []string{"EXO_CARDIO_KNEE_LIFT", "EXO_CARDIO_BOX_JABS", "EXO_GLUTE_KICKBACK"}},
			{Type: BlockCooldown, DurationSeconds: 300, ExerciseIDs: []string{"EXO_ETIREMENT_TRICEPS", "EXO_MOB_TWIST_DEBOUT"}},
		},
	},
}
