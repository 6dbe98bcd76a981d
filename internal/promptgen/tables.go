package promptgen

// categoryRow holds the candidate fragments for a single category. Fragments
// are phrases without terminal punctuation; the assembler frames them.
type categoryRow struct {
	subjects     []string
	wardrobe     []string
	actions      []string
	locations    []string
	environments []string
	props        []string
	ambient      []string
}

var categoryRows = map[string]categoryRow{
	CategorySports: {
		subjects: []string{
			"A determined sprinter in peak physical condition",
			"A focused basketball player with sweat glistening on their brow",
			"A seasoned soccer captain rallying the team",
		},
		wardrobe: []string{
			"a sleek aerodynamic racing kit",
			"a bold team jersey with matching wristbands",
			"lightweight performance gear and spiked shoes",
		},
		actions: []string{
			"Bursting out of the starting blocks as the crowd rises",
			"Leaping for a decisive slam dunk in the final second",
			"Striking the ball toward the top corner of the net",
		},
		locations: []string{
			"Set in a packed Olympic stadium",
			"Set on a polished indoor basketball court",
			"Set on a rain-slicked professional soccer pitch",
		},
		environments: []string{
			"Floodlights cut through a haze of chalk and breath",
			"Confetti and banners ripple across the stands",
			"Steam rises from the turf under the cold night air",
		},
		props: []string{
			"a gleaming relay baton",
			"a scuffed leather match ball",
			"a digital scoreboard counting down",
		},
		ambient: []string{
			"the roar of a stadium crowd and pounding footsteps",
			"squeaking sneakers and a buzzing shot clock",
			"distant whistles and chanting fans",
		},
	},
	CategoryNature: {
		subjects: []string{
			"A majestic snow leopard surveying its territory",
			"A herd of elephants moving with quiet purpose",
			"A bald eagle perched on a weathered branch",
		},
		wardrobe: []string{
			"a thick coat of frost-dusted fur",
			"dust-coated hides marked by years of travel",
			"storm-ruffled feathers catching the light",
		},
		actions: []string{
			"Stalking silently across a ridge before pouncing",
			"Crossing a shallow river as calves splash alongside",
			"Spreading its wings and diving toward the water",
		},
		locations: []string{
			"Set high in the Himalayan mountains",
			"Set on the open plains of the Serengeti",
			"Set beside a glacial lake in the Alaskan wilderness",
		},
		environments: []string{
			"Wind carries loose snow across jagged peaks",
			"Golden grass sways beneath towering acacia trees",
			"Mist drifts over still water framed by pine forest",
		},
		props: []string{
			"fresh paw prints pressed into the snow",
			"a fallen log crossing the stream",
			"scattered feathers on a mossy rock",
		},
		ambient: []string{
			"howling mountain wind and shifting snow",
			"distant bird calls and rustling grass",
			"lapping water and the cry of a hawk",
		},
	},
	CategoryUrban: {
		subjects: []string{
			"A street photographer weaving through the crowd",
			"A skateboarder carving through empty city streets",
			"A late-night food vendor serving regulars",
		},
		wardrobe: []string{
			"a worn leather jacket and a camera strap across the chest",
			"an oversized hoodie, cuffed jeans, and scuffed sneakers",
			"a stained apron over a crisp white shirt",
		},
		actions: []string{
			"Snapping candid frames as commuters rush past",
			"Kickflipping off a concrete ledge under neon signs",
			"Flipping sizzling skewers while steam billows upward",
		},
		locations: []string{
			"Set in a bustling Tokyo crosswalk",
			"Set in a graffiti-covered downtown plaza",
			"Set on a narrow market street in Hong Kong",
		},
		environments: []string{
			"Neon reflections shimmer across wet asphalt",
			"Traffic lights pulse through drifting city smog",
			"Crowds flow like currents between towering buildings",
		},
		props: []string{
			"a vintage rangefinder camera",
			"a battered skateboard with custom grip tape",
			"a smoking charcoal grill",
		},
		ambient: []string{
			"honking taxis and crosswalk chimes",
			"rolling wheels, echoing footsteps, and distant sirens",
			"sizzling food and animated street chatter",
		},
	},
	CategoryFood: {
		subjects: []string{
			"A passionate chef plating a signature dish",
			"A grandmother kneading dough by hand",
			"A pastry artist finishing an elaborate dessert",
		},
		wardrobe: []string{
			"crisp chef whites with a folded side towel",
			"a floral apron dusted with flour",
			"a black apron and rolled-up sleeves",
		},
		actions: []string{
			"Drizzling glossy sauce in a precise arc across the plate",
			"Folding and pressing dough with practiced rhythm",
			"Torching sugar until it crackles into a golden crust",
		},
		locations: []string{
			"Set in a bustling open restaurant kitchen",
			"Set in a sunlit countryside farmhouse kitchen",
			"Set in a minimalist patisserie studio",
		},
		environments: []string{
			"Steam curls above copper pots on the stove",
			"Flour hangs in the air in warm beams of light",
			"Polished marble counters gleam under soft spotlights",
		},
		props: []string{
			"hand-forged chef knives on a wooden board",
			"a rustic bowl of fresh herbs",
			"a tiered cake stand",
		},
		ambient: []string{
			"sizzling pans and clinking utensils",
			"a ticking oven timer and soft kitchen radio",
			"the quiet crackle of caramelizing sugar",
		},
	},
	CategoryTechnology: {
		subjects: []string{
			"A young engineer assembling a humanoid robot",
			"A software developer surrounded by glowing monitors",
			"A drone pilot preparing for a test flight",
		},
		wardrobe: []string{
			"a clean lab coat over a graphic t-shirt",
			"noise-cancelling headphones and a minimalist hoodie",
			"a reflective safety vest and smart glasses",
		},
		actions: []string{
			"Calibrating a robotic hand as its fingers flex to life",
			"Typing rapidly as lines of code cascade across the screen",
			"Launching a drone that lifts smoothly into the sky",
		},
		locations: []string{
			"Set in a futuristic research laboratory",
			"Set in a dim startup office late at night",
			"Set on a rooftop testing pad above the city",
		},
		environments: []string{
			"Holographic displays hum with streams of data",
			"Blue screen light washes over cluttered desks",
			"Rotor wash kicks up dust beneath a clear sky",
		},
		props: []string{
			"a tangle of fiber-optic cables",
			"a mechanical keyboard with glowing keys",
			"a handheld flight controller",
		},
		ambient: []string{
			"soft electronic hums and servo whirs",
			"rapid keystrokes and a humming server rack",
			"buzzing rotors and wind over the rooftop",
		},
	},
	CategoryTravel: {
		subjects: []string{
			"A solo backpacker reaching a mountain summit",
			"A couple exploring ancient ruins at sunrise",
			"A sailor navigating open turquoise waters",
		},
		wardrobe: []string{
			"a weathered backpack and layered hiking gear",
			"linen travel clothes and wide-brimmed hats",
			"a salt-stained windbreaker and polarized sunglasses",
		},
		actions: []string{
			"Raising their arms in triumph as clouds part below",
			"Running fingers along carved stone walls",
			"Trimming the sails as the boat heels into the wind",
		},
		locations: []string{
			"Set on a windswept Patagonian peak",
			"Set among the temples of Angkor Wat",
			"Set along a remote Mediterranean coastline",
		},
		environments: []string{
			"A sea of clouds stretches to the horizon",
			"Jungle vines wrap around crumbling towers",
			"Sunlight glitters across rolling waves",
		},
		props: []string{
			"a folded paper map and a brass compass",
			"a vintage film camera on a leather strap",
			"coiled ropes and a wooden helm",
		},
		ambient: []string{
			"rushing wind and fluttering prayer flags",
			"chirping insects and distant temple bells",
			"crashing waves and creaking rigging",
		},
	},
	CategoryFashion: {
		subjects: []string{
			"A striking runway model mid-stride",
			"A makeup artist perfecting a bold look",
			"A designer adjusting a garment on a mannequin",
		},
		wardrobe: []string{
			"a flowing avant-garde gown in metallic fabric",
			"a tailored monochrome suit with sharp lines",
			"an oversized trench coat over layered couture",
		},
		actions: []string{
			"Turning at the end of the runway with a confident gaze",
			"Sweeping a brush across a cheekbone in slow motion",
			"Pinning fabric with quick, precise movements",
		},
		locations: []string{
			"Set on a Paris Fashion Week runway",
			"Set in a backstage dressing room lined with mirrors",
			"Set in a sunlit atelier filled with fabric bolts",
		},
		environments: []string{
			"Camera flashes sparkle from the front row",
			"Vanity bulbs glow around cluttered mirrors",
			"Dust motes float through tall arched windows",
		},
		props: []string{
			"racks of couture garments",
			"an open palette of vivid pigments",
			"a vintage dress form and measuring tape",
		},
		ambient: []string{
			"a pulsing runway soundtrack and shutter clicks",
			"hushed backstage chatter and hair dryers",
			"snipping scissors and a humming sewing machine",
		},
	},
	CategoryMusic: {
		subjects: []string{
			"A guitarist lost in an electrifying solo",
			"A classical pianist performing with intense focus",
			"A DJ commanding a packed dance floor",
		},
		wardrobe: []string{
			"a sweat-soaked band t-shirt and leather cuffs",
			"an elegant black tailcoat",
			"a reflective bomber jacket and over-ear headphones",
		},
		actions: []string{
			"Bending strings as sparks of light burst overhead",
			"Striking the final chord as the hall falls silent",
			"Dropping the beat as the crowd erupts",
		},
		locations: []string{
			"Set on a massive festival main stage",
			"Set in an ornate concert hall",
			"Set in an underground warehouse club",
		},
		environments: []string{
			"Pyrotechnics and laser beams slice through the haze",
			"Crystal chandeliers glow above velvet seats",
			"Strobe lights flicker across a sea of raised hands",
		},
		props: []string{
			"a vintage electric guitar",
			"a polished grand piano",
			"a glowing mixing console",
		},
		ambient: []string{
			"roaring amplifiers and a screaming crowd",
			"the resonant echo of a grand piano",
			"thumping bass and rhythmic cheering",
		},
	},
	CategoryScience: {
		subjects: []string{
			"A marine biologist studying bioluminescent creatures",
			"A physics teacher demonstrating a dramatic experiment",
			"An astronomer peering through a giant telescope",
		},
		wardrobe: []string{
			"a wetsuit with a mounted dive light",
			"safety goggles and a chalk-dusted cardigan",
			"a heavy parka against the mountaintop chill",
		},
		actions: []string{
			"Gently collecting a glowing specimen in a glass vial",
			"Triggering a chain reaction as students lean in",
			"Adjusting the lens as a distant galaxy sharpens into view",
		},
		locations: []string{
			"Set in the depths of a coral reef",
			"Set in a vibrant high school science classroom",
			"Set inside a mountaintop observatory dome",
		},
		environments: []string{
			"Shafts of light pierce the deep blue water",
			"Chalkboards are packed with equations and diagrams",
			"The Milky Way arcs across the open dome",
		},
		props: []string{
			"a glass specimen jar",
			"a crackling Tesla coil",
			"star charts pinned to the wall",
		},
		ambient: []string{
			"muffled bubbles and a slow rhythmic breath",
			"excited murmurs and crackling electricity",
			"the mechanical hum of a rotating dome",
		},
	},
	CategoryBusiness: {
		subjects: []string{
			"A confident founder pitching to investors",
			"A diverse team brainstorming around a whiteboard",
			"An executive reviewing results at a window",
		},
		wardrobe: []string{
			"a tailored navy blazer and open collar",
			"smart casual shirts and rolled sleeves",
			"a sharp charcoal suit and silver watch",
		},
		actions: []string{
			"Gesturing toward a chart as heads nod around the table",
			"Sticking notes to the board in a burst of ideas",
			"Closing a laptop with a satisfied smile",
		},
		locations: []string{
			"Set in a glass-walled boardroom",
			"Set in a vibrant open-plan office",
			"Set in a corner office overlooking the skyline",
		},
		environments: []string{
			"City lights glitter beyond floor-to-ceiling windows",
			"Plants and daylight soften the modern workspace",
			"Morning sun pours across a polished conference table",
		},
		props: []string{
			"a sleek presentation screen",
			"a wall of colorful sticky notes",
			"a leather portfolio and fountain pen",
		},
		ambient: []string{
			"quiet office hum and soft keyboard taps",
			"energetic conversation and marker squeaks",
			"distant traffic far below the tower",
		},
	},
	CategoryHealth: {
		subjects: []string{
			"A dedicated yoga instructor holding a balance pose",
			"A marathon runner pushing through the final mile",
			"A boxer training with relentless intensity",
		},
		wardrobe: []string{
			"breathable athleisure in earthy tones",
			"a race bib, compression sleeves, and running shoes",
			"hand wraps and a sweat-darkened tank top",
		},
		actions: []string{
			"Flowing slowly into a warrior pose with steady breath",
			"Crossing the finish line with arms outstretched",
			"Unleashing a rapid combination on a heavy bag",
		},
		locations: []string{
			"Set on a cliffside platform above the ocean",
			"Set along a city marathon route lined with spectators",
			"Set in a gritty old-school boxing gym",
		},
		environments: []string{
			"Sea breeze ripples through the open air",
			"Cheering crowds and water stations line the road",
			"Chalk dust and worn canvas fill the room",
		},
		props: []string{
			"a cork yoga mat",
			"a dented finisher medal",
			"a swinging leather heavy bag",
		},
		ambient: []string{
			"gentle waves and slow deliberate breathing",
			"pounding feet and encouraging shouts",
			"thudding punches and a ringing timer bell",
		},
	},
	CategoryArt: {
		subjects: []string{
			"A painter working on a massive mural",
			"A sculptor shaping wet clay on a wheel",
			"A graphic designer sketching a bold poster",
		},
		wardrobe: []string{
			"paint-splattered overalls",
			"a clay-streaked apron and bare forearms",
			"a denim shirt and a pencil tucked behind the ear",
		},
		actions: []string{
			"Sweeping a broad brushstroke of vibrant color across the wall",
			"Pulling the clay upward into an elegant vase",
			"Inking the final line as the design comes together",
		},
		locations: []string{
			"Set against a towering brick wall in an arts district",
			"Set in a sun-drenched ceramics studio",
			"Set in a loft workspace filled with sketches",
		},
		environments: []string{
			"Drips of paint pool on the scaffolding below",
			"Shelves of glazed pottery catch the afternoon light",
			"Pinned drafts flutter in a gentle breeze",
		},
		props: []string{
			"buckets of bright spray paint",
			"a spinning pottery wheel",
			"a drafting table scattered with markers",
		},
		ambient: []string{
			"hissing spray cans and street noise",
			"the steady whir of a pottery wheel",
			"scratching pencils and soft lo-fi music",
		},
	},
	CategoryAutomotive: {
		subjects: []string{
			"A vintage sports car gleaming under studio lights",
			"A rally driver fighting for grip on a gravel course",
			"A high-speed electric train gliding into the station",
		},
		wardrobe: []string{
			"a polished chrome finish and cherry-red paint",
			"a fireproof race suit and a scuffed helmet",
			"aerodynamic white panels with a silver stripe",
		},
		actions: []string{
			"Rotating slowly as light traces its curves",
			"Sliding through a hairpin turn in a spray of gravel",
			"Decelerating smoothly as the platform doors align",
		},
		locations: []string{
			"Set in a minimalist automotive showroom",
			"Set on a dusty mountain rally stage",
			"Set in a futuristic glass train terminal",
		},
		environments: []string{
			"Reflections ripple across a glossy black floor",
			"Dust clouds hang over winding forest roads",
			"Commuters blur past under a vaulted steel roof",
		},
		props: []string{
			"a chrome steering wheel",
			"a checkered flag snapping in the wind",
			"a digital departure board",
		},
		ambient: []string{
			"a low engine rumble and ticking metal",
			"screeching tires and a roaring exhaust",
			"a smooth electric whine and station announcements",
		},
	},
	CategoryFantasy: {
		subjects: []string{
			"A lone space explorer on an alien world",
			"A sorceress summoning an ancient spell",
			"A colossal dragon awakening from slumber",
		},
		wardrobe: []string{
			"a battle-scarred exosuit with glowing seams",
			"flowing robes embroidered with shimmering runes",
			"obsidian scales that shimmer like molten glass",
		},
		actions: []string{
			"Stepping onto crystalline terrain as twin suns rise",
			"Raising a runed staff as arcane light spirals upward",
			"Unfurling enormous wings and exhaling a plume of fire",
		},
		locations: []string{
			"Set on a distant exoplanet with floating rock formations",
			"Set in a ruined tower above an enchanted forest",
			"Set in a cavern strewn with ancient treasure",
		},
		environments: []string{
			"Bioluminescent flora pulses beneath an alien sky",
			"Magic sparks drift like fireflies through the ruins",
			"Molten light glows between mountains of gold",
		},
		props: []string{
			"a holographic navigation device",
			"a crackling crystal staff",
			"a shattered knight's shield",
		},
		ambient: []string{
			"eerie alien wind and distant rumbles",
			"chanting whispers and crackling magic",
			"a thunderous roar echoing through the cavern",
		},
	},
	CategoryFamily: {
		subjects: []string{
			"A young family sharing a lazy Sunday morning",
			"Grandparents teaching grandchildren to garden",
			"Siblings building a blanket fort together",
		},
		wardrobe: []string{
			"cozy matching pajamas",
			"sun hats and mud-stained gardening gloves",
			"colorful socks and oversized sweaters",
		},
		actions: []string{
			"Flipping pancakes as the kids laugh around the counter",
			"Planting seedlings side by side in rich soil",
			"Peeking out from the fort with flashlights in hand",
		},
		locations: []string{
			"Set in a warm, lived-in kitchen",
			"Set in a blooming backyard vegetable garden",
			"Set in a cozy living room full of cushions",
		},
		environments: []string{
			"Soft morning light spills through gauzy curtains",
			"Bees drift among sunflowers and tomato vines",
			"Fairy lights twinkle across draped blankets",
		},
		props: []string{
			"a stack of fluffy pancakes",
			"a watering can and seed packets",
			"a pile of picture books",
		},
		ambient: []string{
			"giggling children and a sizzling griddle",
			"birdsong and buzzing bees",
			"muffled laughter and a ticking clock",
		},
	},
}

// Column tables keyed by category label, shaped for Selector.Pick.
var (
	subjectTable     = column(func(r categoryRow) []string { return r.subjects })
	wardrobeTable    = column(func(r categoryRow) []string { return r.wardrobe })
	actionTable      = column(func(r categoryRow) []string { return r.actions })
	locationTable    = column(func(r categoryRow) []string { return r.locations })
	environmentTable = column(func(r categoryRow) []string { return r.environments })
	propTable        = column(func(r categoryRow) []string { return r.props })
	ambientTable     = column(func(r categoryRow) []string { return r.ambient })
)

func column(get func(categoryRow) []string) map[string][]string {
	out := make(map[string][]string, len(categoryRows))
	for name, row := range categoryRows {
		out[name] = get(row)
	}
	return out
}
