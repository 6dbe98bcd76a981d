package promptgen

import (
	"encoding/json"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"videoprompt/internal/domain"
)

func newTestAssembler(seed uint64) *Assembler {
	return New(NewSelector(rand.NewPCG(seed, seed+1)))
}

func fullConfig() domain.PromptConfig {
	return domain.PromptConfig{
		Category:              CategoryMusic,
		Style:                 StyleCinematic,
		Duration:              Duration5to10,
		Complexity:            ComplexityComplex,
		Elements:              domain.Elements{WeatherEffects: true, DynamicLighting: true, CameraMovement: true},
		EnableShotDetails:     true,
		EnableSceneDetails:    true,
		EnableAdvancedDetails: true,
		Shot:                  domain.ShotOptions{Composition: true, CameraMotion: true, FrameRate: true, FilmGrain: true},
		Subject:               domain.SubjectOptions{IncludeDescription: true, IncludeWardrobe: true},
		Scene:                 domain.SceneOptions{Location: true, TimeOfDay: true, Environment: true},
		VisualDetails:         domain.VisualDetailOptions{Action: true, Props: true},
		Cinematography:        domain.CinematographyOption{Lighting: true, Tone: true},
		Audio:                 domain.AudioOptions{Ambient: true, Dialogue: true},
		ColorPalette:          true,
	}
}

func TestAssembleExampleScenario(t *testing.T) {
	cfg := domain.PromptConfig{
		Category:   CategoryNature,
		Style:      StyleDocumentary,
		Duration:   Duration10to15,
		Complexity: ComplexitySimple,
		Elements:   domain.Elements{WeatherEffects: true},
	}
	res := newTestAssembler(1).Assemble(cfg)

	if res.Format != FormatText {
		t.Fatalf("Format = %q, want %q", res.Format, FormatText)
	}
	for _, want := range []string{"developing through an extended sequence", "dynamic weather effects"} {
		if !strings.Contains(res.Text, want) {
			t.Fatalf("text missing %q: %s", want, res.Text)
		}
	}
	if !strings.HasSuffix(res.Text, "Photorealistic quality with stunning detail.") {
		t.Fatalf("text does not end with closing sentence: %s", res.Text)
	}
}

func TestAssembleAlwaysNonEmpty(t *testing.T) {
	a := newTestAssembler(7)
	configs := []domain.PromptConfig{
		{},
		{Category: "Unknown", Style: "Unknown", Duration: "forever", Complexity: "Extreme"},
		fullConfig(),
	}
	for _, cfg := range configs {
		for _, format := range []string{FormatText, FormatJSON} {
			cfg.Format = format
			res := a.Assemble(cfg)
			raw, err := json.Marshal(res)
			if err != nil {
				t.Fatalf("marshal result: %v", err)
			}
			if len(raw) <= 2 {
				t.Fatalf("empty result for %+v: %s", cfg, raw)
			}
			if !strings.Contains(string(raw), closingSentence) {
				t.Fatalf("closing missing for format %s: %s", format, raw)
			}
		}
	}
}

func TestAssembleUnknownCategoryFallsBack(t *testing.T) {
	cfg := domain.PromptConfig{
		Category:           "Underwater Basket Weaving",
		Style:              StyleCinematic,
		Duration:           Duration5to10,
		Complexity:         ComplexityMedium,
		EnableSceneDetails: true,
		Scene:              domain.SceneOptions{Location: true},
	}
	res := newTestAssembler(3).Assemble(cfg)

	var subjectOK, locationOK bool
	for _, s := range subjectTable[DefaultCategory] {
		if strings.HasPrefix(res.Text, s) {
			subjectOK = true
		}
	}
	for _, l := range locationTable[DefaultCategory] {
		if strings.Contains(res.Text, l) {
			locationOK = true
		}
	}
	if !subjectOK || !locationOK {
		t.Fatalf("expected default category fragments, got: %s", res.Text)
	}
}

func TestAssembleSectionsAreStable(t *testing.T) {
	a := newTestAssembler(11)
	cfg := fullConfig()
	cfg.Shot = domain.ShotOptions{CameraMotion: true}
	first := a.Assemble(cfg).Sections
	for i := 0; i < 50; i++ {
		if got := a.Assemble(cfg).Sections; !reflect.DeepEqual(got, first) {
			t.Fatalf("sections changed between calls: %v vs %v", got, first)
		}
	}
}

func TestAssembleShotGating(t *testing.T) {
	a := newTestAssembler(5)
	cfg := fullConfig()
	cfg.EnableShotDetails = false
	for i := 0; i < 20; i++ {
		res := a.Assemble(cfg)
		if strings.Contains(res.Text, "Camera:") {
			t.Fatalf("shot clause present with shot details disabled: %s", res.Text)
		}
		for _, s := range res.Sections {
			if s == SectionShot {
				t.Fatalf("shot section reported with shot details disabled")
			}
		}
	}

	cfg.Format = FormatJSON
	if res := a.Assemble(cfg); res.Structured.Shot != nil {
		t.Fatalf("structured shot block present with shot details disabled: %+v", res.Structured.Shot)
	}

	cfg.EnableShotDetails = true
	cfg.Format = FormatText
	if res := a.Assemble(cfg); !strings.Contains(res.Text, "Camera: ") {
		t.Fatalf("shot clause missing with shot details enabled: %s", res.Text)
	}
}

func TestAssembleSectionGatesOverrideSubToggles(t *testing.T) {
	sceneMarkers := []string{"Dressed in", "Props include"}
	advancedMarkers := []string{"Lit with", "Ambient audio of", "lip-synced dialogue", "Color palette of"}
	tests := []struct {
		name         string
		scene        bool
		advanced     bool
		markers      []string
		sections     []string
		wantScene    bool
		wantAdvanced bool
	}{
		{"scene off", false, true, sceneMarkers, []string{SectionWardrobe, SectionScene, SectionProps}, false, true},
		{"advanced off", true, false, advancedMarkers, []string{SectionAudio, SectionColorPalette}, true, false},
		{"both off", false, false, append(append([]string(nil), sceneMarkers...), advancedMarkers...),
			[]string{SectionWardrobe, SectionScene, SectionProps, SectionAudio, SectionColorPalette}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAssembler(13)
			cfg := fullConfig()
			cfg.EnableSceneDetails = tc.scene
			cfg.EnableAdvancedDetails = tc.advanced

			for i := 0; i < 20; i++ {
				res := a.Assemble(cfg)
				for _, m := range tc.markers {
					if strings.Contains(res.Text, m) {
						t.Fatalf("text contains %q with its section gate off: %s", m, res.Text)
					}
				}
				for _, s := range res.Sections {
					for _, banned := range tc.sections {
						if s == banned {
							t.Fatalf("section %q reported with its gate off: %v", s, res.Sections)
						}
					}
				}
			}

			cfg.Format = FormatJSON
			s := a.Assemble(cfg).Structured
			if !tc.wantScene && (s.Subject.Wardrobe != "" || s.Scene != nil) {
				t.Fatalf("structured scene fields set with scene details off: %+v %+v", s.Subject, s.Scene)
			}
			if !tc.wantAdvanced {
				if s.Audio != nil || s.ColorPalette != "" {
					t.Fatalf("structured audio/palette set with advanced details off: %+v %q", s.Audio, s.ColorPalette)
				}
				if s.Cinematography == nil || s.Cinematography.Lighting != "" || s.Cinematography.Tone != "" {
					t.Fatalf("cinematography should carry only effects: %+v", s.Cinematography)
				}
			}
			if tc.wantScene && (s.Scene == nil || s.Scene.Props == "" || s.Subject.Wardrobe == "") {
				t.Fatalf("scene details missing while enabled: %+v %+v", s.Subject, s.Scene)
			}
			if tc.wantAdvanced && (s.Audio == nil || s.ColorPalette == "") {
				t.Fatalf("advanced details missing while enabled: %+v %q", s.Audio, s.ColorPalette)
			}
		})
	}

	res := newTestAssembler(13).Assemble(fullConfig())
	for _, m := range append(append([]string(nil), sceneMarkers...), advancedMarkers...) {
		if !strings.Contains(res.Text, m) {
			t.Fatalf("text missing %q with every gate on: %s", m, res.Text)
		}
	}
}

func TestAssembleDialogueEmbedsDuration(t *testing.T) {
	cfg := domain.PromptConfig{
		Category:              CategoryBusiness,
		Style:                 StyleCommercial,
		Duration:              Duration5to10,
		Complexity:            ComplexitySimple,
		EnableAdvancedDetails: true,
		Audio:                 domain.AudioOptions{Dialogue: true},
	}
	res := newTestAssembler(2).Assemble(cfg)
	if !strings.Contains(res.Text, "within the first 5 seconds") {
		t.Fatalf("dialogue sentence missing duration: %s", res.Text)
	}

	cfg.Duration = "about a minute"
	res = newTestAssembler(2).Assemble(cfg)
	if !strings.Contains(res.Text, "within the first 5 seconds") {
		t.Fatalf("unparsable duration should default to 5: %s", res.Text)
	}
	if !strings.Contains(res.Text, defaultPacing) {
		t.Fatalf("unknown duration should use default pacing: %s", res.Text)
	}
}

func TestAssembleEffectsIgnoreAdvancedGate(t *testing.T) {
	cfg := domain.PromptConfig{
		Category:   CategoryUrban,
		Style:      StyleDramatic,
		Duration:   Duration3to5,
		Complexity: ComplexityMedium,
		Elements:   domain.Elements{DynamicLighting: true, CameraMovement: true},
	}
	res := newTestAssembler(4).Assemble(cfg)
	want := "Enhanced by " + effectPhrases.lighting + " and " + effectPhrases.camera + "."
	if !strings.Contains(res.Text, want) {
		t.Fatalf("effects clause = %s, want it to contain %q", res.Text, want)
	}

	cfg.EnableAdvancedDetails = true
	cfg.Cinematography = domain.CinematographyOption{Lighting: true}
	res = newTestAssembler(4).Assemble(cfg)
	if !strings.Contains(res.Text, ", enhanced by "+effectPhrases.lighting) {
		t.Fatalf("effects should extend the cinematography clause: %s", res.Text)
	}
}

func TestAssembleUnknownStyleHasNoModifier(t *testing.T) {
	cfg := domain.PromptConfig{Category: CategoryArt, Style: "Glitchcore", Duration: Duration5to10, Complexity: ComplexitySimple}
	res := newTestAssembler(9).Assemble(cfg)
	for _, s := range res.Sections {
		if s == SectionStyle {
			t.Fatalf("unknown style produced a modifier: %s", res.Text)
		}
	}
}

func TestAssembleComplexityModifier(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{ComplexitySimple, complexityModifiers[ComplexitySimple]},
		{ComplexityMedium, complexityModifiers[ComplexityMedium]},
		{ComplexityComplex, complexityModifiers[ComplexityComplex]},
		{"Bizarre", ""},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			cfg := domain.PromptConfig{Category: CategoryFood, Style: StyleVintage, Duration: Duration5to10, Complexity: tc.level}
			res := newTestAssembler(1).Assemble(cfg)
			if tc.want == "" {
				for _, m := range complexityModifiers {
					if strings.Contains(res.Text, m) {
						t.Fatalf("unexpected modifier %q", m)
					}
				}
				return
			}
			if !strings.Contains(res.Text, tc.want) {
				t.Fatalf("text missing modifier %q: %s", tc.want, res.Text)
			}
		})
	}
}

func TestAssembleIsReproducibleForFixedSeed(t *testing.T) {
	cfg := fullConfig()
	a := newTestAssembler(42).Assemble(cfg)
	b := newTestAssembler(42).Assemble(cfg)
	if a.Text != b.Text {
		t.Fatalf("same seed produced different text:\n%s\n%s", a.Text, b.Text)
	}
}

func TestAssembleStructuredFormat(t *testing.T) {
	cfg := fullConfig()
	cfg.Format = FormatJSON
	res := newTestAssembler(8).Assemble(cfg)
	if res.Structured == nil {
		t.Fatalf("structured result missing")
	}
	s := res.Structured
	if s.Version != PromptVersion || s.Quality != closingSentence {
		t.Fatalf("version/quality = %q/%q", s.Version, s.Quality)
	}
	if s.Shot == nil || s.Scene == nil || s.Cinematography == nil || s.Audio == nil || s.ColorPalette == "" {
		t.Fatalf("expected every section in structured output: %+v", s)
	}
	if len(s.Cinematography.Effects) != 3 {
		t.Fatalf("effects = %v, want 3 entries", s.Cinematography.Effects)
	}
	if !reflect.DeepEqual(s.Sections(), res.Sections) {
		t.Fatalf("structured sections %v differ from result sections %v", s.Sections(), res.Sections)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("structured result should marshal to an object: %v (%s)", err, raw)
	}
}

func TestDialogueSeconds(t *testing.T) {
	tests := map[string]int{
		"5-10 seconds":  5,
		"10-15 seconds": 10,
		" 30-60":        30,
		"seconds":       DefaultDialogueSeconds,
		"":              DefaultDialogueSeconds,
		"0-3 seconds":   DefaultDialogueSeconds,
	}
	for in, want := range tests {
		if got := DialogueSeconds(in); got != want {
			t.Fatalf("DialogueSeconds(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestJoinAnd(t *testing.T) {
	if got := joinAnd([]string{"a", "b", "c"}); got != "a, b and c" {
		t.Fatalf("joinAnd = %q", got)
	}
	if got := joinAnd([]string{"a"}); got != "a" {
		t.Fatalf("joinAnd single = %q", got)
	}
}
