package promptgen

var lightingTable = map[string][]string{
	StyleCinematic: {
		"dramatic high-contrast lighting with deep, sculpted shadows",
		"warm golden-hour backlight and soft anamorphic flares",
		"moody low-key lighting with motivated practical sources",
	},
	StyleDocumentary: {
		"natural available light with honest, unforced shadows",
		"soft overcast daylight that keeps every detail readable",
		"handheld practical light that feels observed rather than staged",
	},
	StyleCommercial: {
		"bright, even studio lighting with crisp highlights",
		"polished three-point lighting that flatters every surface",
		"clean high-key lighting with glossy product reflections",
	},
	StyleArtistic: {
		"painterly light pooling in saturated color washes",
		"experimental colored gels casting surreal shadows",
		"dappled light breaking into abstract patterns",
	},
	StyleVintage: {
		"warm tungsten light with gently faded highlights",
		"soft window light reminiscent of 1970s film stock",
		"sepia-tinted sunlight with a nostalgic glow",
	},
	StyleMinimalist: {
		"soft diffused light on clean negative space",
		"a single restrained key light with gentle falloff",
		"flat, even illumination with almost no shadow",
	},
	StyleDramatic: {
		"stark chiaroscuro lighting carving the subject from darkness",
		"stormy, flickering light with sudden bursts of brightness",
		"hard rim light against an inky black background",
	},
	StyleAnimated: {
		"vibrant stylized lighting with bold cel-shaded edges",
		"glowing rim lights and candy-colored ambient fill",
		"soft storybook lighting with exaggerated color bounce",
	},
}

var toneTable = map[string][]string{
	StyleCinematic: {
		"an epic, emotionally charged tone",
		"a tense, suspenseful tone that builds steadily",
		"a sweeping, awe-inspiring tone",
	},
	StyleDocumentary: {
		"an authentic, observational tone",
		"an intimate, human-centered tone",
		"a grounded and informative tone",
	},
	StyleCommercial: {
		"an upbeat, aspirational tone",
		"a confident and premium tone",
		"an energetic tone built to grab attention",
	},
	StyleArtistic: {
		"a dreamlike, contemplative tone",
		"a bold, expressive tone",
		"a poetic and ambiguous tone",
	},
	StyleVintage: {
		"a nostalgic, bittersweet tone",
		"a warm, timeless tone",
		"a playful retro tone",
	},
	StyleMinimalist: {
		"a calm, meditative tone",
		"a precise and understated tone",
		"a quiet, elegant tone",
	},
	StyleDramatic: {
		"an intense, high-stakes tone",
		"a brooding, ominous tone",
		"a thunderous and climactic tone",
	},
	StyleAnimated: {
		"a whimsical, joyful tone",
		"an adventurous, larger-than-life tone",
		"a charming and heartfelt tone",
	},
}

var paletteTable = map[string][]string{
	StyleCinematic: {
		"rich teal and orange tones",
		"deep blues with amber highlights",
		"desaturated earth tones with crimson accents",
	},
	StyleDocumentary: {
		"true-to-life natural colors",
		"muted greens and warm browns",
		"neutral tones with gentle contrast",
	},
	StyleCommercial: {
		"vivid brand-friendly primaries",
		"clean whites with a single bold accent color",
		"glossy saturated hues",
	},
	StyleArtistic: {
		"surreal magentas and electric cyans",
		"watercolor pastels bleeding into each other",
		"unexpected complementary color clashes",
	},
	StyleVintage: {
		"faded Kodachrome reds and yellows",
		"sepia and cream",
		"washed-out pastels with warm grain",
	},
	StyleMinimalist: {
		"monochrome greys with one subtle accent",
		"soft whites and sand tones",
		"black, white, and a single muted hue",
	},
	StyleDramatic: {
		"blood reds against charcoal blacks",
		"stormy slate blues and silver",
		"deep shadows with fiery orange highlights",
	},
	StyleAnimated: {
		"bright candy colors",
		"a bold saturated rainbow palette",
		"soft pastel storybook hues",
	},
}

var frameRateTable = map[string][]string{
	StyleCinematic:   {"24fps cinematic frame rate", "48fps high frame rate"},
	StyleDocumentary: {"30fps natural frame rate", "24fps observational frame rate"},
	StyleCommercial:  {"60fps ultra-smooth frame rate", "30fps broadcast frame rate"},
	StyleArtistic:    {"18fps stuttered frame rate", "24fps frame rate with selective slow motion"},
	StyleVintage:     {"16fps hand-cranked frame rate", "24fps film frame rate"},
	StyleMinimalist:  {"24fps steady frame rate", "30fps clean frame rate"},
	StyleDramatic:    {"120fps slow-motion frame rate", "24fps cinematic frame rate"},
	StyleAnimated:    {"12fps animation on twos", "24fps fluid animation frame rate"},
}

// styleModifiers close the prompt with a style-specific sentence. Styles with
// no row get no modifier.
var styleModifiers = map[string][]string{
	StyleCinematic: {
		"Cinematic composition with film-like depth of field and a widescreen feel.",
		"Shot like a blockbuster feature with sweeping, deliberate framing.",
	},
	StyleDocumentary: {
		"Documentary style with authentic, unscripted moments.",
		"Observational documentary framing that lets the story speak for itself.",
	},
	StyleCommercial: {
		"Commercial production quality with polished, brand-ready visuals.",
		"High-end advertising aesthetic with flawless presentation.",
	},
	StyleArtistic: {
		"Artistic interpretation with expressive, unconventional visuals.",
		"An art-house sensibility that favors mood over literal detail.",
	},
	StyleVintage: {
		"Vintage film aesthetic with nostalgic grain and soft halation.",
		"Styled like archival footage from a bygone era.",
	},
	StyleMinimalist: {
		"Minimalist aesthetic with clean lines and generous negative space.",
		"Pared-back visual language where every element is intentional.",
	},
	StyleDramatic: {
		"Dramatic visual storytelling with heightened tension and contrast.",
		"Operatic intensity with bold, emotional framing.",
	},
	StyleAnimated: {
		"Animated style with expressive character motion and vibrant design.",
		"Stylized animation with exaggerated movement and playful timing.",
	},
}

var complexityModifiers = map[string]string{
	ComplexitySimple:  "Clean and focused with a single clear point of interest.",
	ComplexityMedium:  "Balanced detail with a few supporting visual elements.",
	ComplexityComplex: "Layered with intricate detail, multiple points of interest, and rich visual storytelling.",
}

var pacingTable = map[string]string{
	Duration3to5:   "captured in a brief, punchy moment with immediate impact",
	Duration5to10:  "unfolding in a concise, well-paced sequence",
	Duration10to15: "developing through an extended sequence that lets the moment breathe",
	Duration15to30: "evolving across a multi-beat narrative arc",
	Duration30to60: "told as a complete short story with a clear beginning, middle, and end",
}

const defaultPacing = "paced naturally to fit the running time"
