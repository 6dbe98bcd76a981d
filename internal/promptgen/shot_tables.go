package promptgen

// Shot and scene tables are shared by every category.
const sharedRow = "*"

// cameraStatic is a valid camera motion draw that emits no phrase of its own.
const (
	cameraStatic       = "static"
	staticCameraPhrase = "locked-off static camera"
)

var compositionTable = map[string][]string{
	sharedRow: {
		"low-angle wide shot",
		"intimate close-up",
		"symmetrical medium shot",
		"over-the-shoulder shot",
		"sweeping aerial establishing shot",
		"rule-of-thirds framing",
	},
}

var cameraMotionTable = map[string][]string{
	sharedRow: {
		"slow dolly-in",
		"smooth tracking shot",
		"handheld follow",
		"gentle crane up",
		"orbiting camera move",
		cameraStatic,
	},
}

var filmGrainTable = map[string][]string{
	sharedRow: {
		"subtle 35mm film grain",
		"fine 16mm grain texture",
		"clean digital image with no grain",
	},
}

var timeOfDayTable = map[string][]string{
	sharedRow: {
		"Captured at golden hour with long, warm shadows",
		"Captured at blue hour just after sunset",
		"Captured under harsh midday sun",
		"Captured in the quiet stillness before dawn",
		"Captured at night under artificial light",
	},
}

var effectPhrases = struct {
	weather, lighting, camera string
}{
	weather:  "dynamic weather effects like drifting rain and rolling fog",
	lighting: "dynamic lighting that shifts with the action",
	camera:   "fluid, purposeful camera movement",
}

const (
	dialogueTemplate = "Includes a short line of clear, lip-synced dialogue delivered within the first %d seconds."
	closingSentence  = "Photorealistic quality with stunning detail."
)
