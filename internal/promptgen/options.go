package promptgen

// Category labels understood by the content tables.
const (
	CategorySports     = "Sports & Athletics"
	CategoryNature     = "Nature & Wildlife"
	CategoryUrban      = "Urban & City Life"
	CategoryFood       = "Food & Cooking"
	CategoryTechnology = "Technology & Innovation"
	CategoryTravel     = "Travel & Adventure"
	CategoryFashion    = "Fashion & Beauty"
	CategoryMusic      = "Music & Performance"
	CategoryScience    = "Science & Education"
	CategoryBusiness   = "Business & Corporate"
	CategoryHealth     = "Health & Fitness"
	CategoryArt        = "Art & Design"
	CategoryAutomotive = "Automotive & Transportation"
	CategoryFantasy    = "Fantasy & Sci-Fi"
	CategoryFamily     = "Family & Lifestyle"

	// DefaultCategory is used whenever a requested category has no table row.
	DefaultCategory = CategorySports
)

// Style labels.
const (
	StyleCinematic   = "Cinematic"
	StyleDocumentary = "Documentary"
	StyleCommercial  = "Commercial"
	StyleArtistic    = "Artistic"
	StyleVintage     = "Vintage"
	StyleMinimalist  = "Minimalist"
	StyleDramatic    = "Dramatic"
	StyleAnimated    = "Animated"

	// DefaultStyle backs the style-keyed phrase tables for unknown styles.
	// Unknown styles still get no style modifier sentence.
	DefaultStyle = StyleCinematic
)

// Duration labels.
const (
	Duration3to5   = "3-5 seconds"
	Duration5to10  = "5-10 seconds"
	Duration10to15 = "10-15 seconds"
	Duration15to30 = "15-30 seconds"
	Duration30to60 = "30-60 seconds"
)

// Complexity levels.
const (
	ComplexitySimple  = "Simple"
	ComplexityMedium  = "Medium"
	ComplexityComplex = "Complex"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// PromptVersion is stamped into every generated prompt, whatever the format.
const PromptVersion = "3.0"

// DefaultDialogueSeconds is embedded in the dialogue sentence when the duration
// label carries no leading number.
const DefaultDialogueSeconds = 5

var (
	categories = []string{
		CategorySports, CategoryNature, CategoryUrban, CategoryFood, CategoryTechnology,
		CategoryTravel, CategoryFashion, CategoryMusic, CategoryScience, CategoryBusiness,
		CategoryHealth, CategoryArt, CategoryAutomotive, CategoryFantasy, CategoryFamily,
	}
	styles = []string{
		StyleCinematic, StyleDocumentary, StyleCommercial, StyleArtistic,
		StyleVintage, StyleMinimalist, StyleDramatic, StyleAnimated,
	}
	durations    = []string{Duration3to5, Duration5to10, Duration10to15, Duration15to30, Duration30to60}
	complexities = []string{ComplexitySimple, ComplexityMedium, ComplexityComplex}
	formats      = []string{FormatText, FormatJSON}
)

// Options lists the labels a client form can offer.
type Options struct {
	Categories   []string `json:"categories"`
	Styles       []string `json:"styles"`
	Durations    []string `json:"durations"`
	Complexities []string `json:"complexities"`
	Formats      []string `json:"formats"`
}

// KnownOptions returns copies of the built-in option lists.
func KnownOptions() Options {
	return Options{
		Categories:   append([]string(nil), categories...),
		Styles:       append([]string(nil), styles...),
		Durations:    append([]string(nil), durations...),
		Complexities: append([]string(nil), complexities...),
		Formats:      append([]string(nil), formats...),
	}
}
