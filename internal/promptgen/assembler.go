package promptgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"videoprompt/internal/domain"
	"videoprompt/internal/domain/jsoncfg"
)

// Section names reported by Result.Sections. Subject, action, pacing and the
// closing line are unconditional and not listed.
const (
	SectionWardrobe       = "wardrobe"
	SectionShot           = "shot"
	SectionScene          = "scene"
	SectionProps          = "props"
	SectionCinematography = "cinematography"
	SectionAudio          = "audio"
	SectionColorPalette   = "color_palette"
	SectionStyle          = "style_modifier"
	SectionComplexity     = "complexity_modifier"
)

// Result is one assembled prompt. Exactly one of Text or Structured is set,
// according to Format.
type Result struct {
	Format     string
	Text       string
	Structured *jsoncfg.StructuredPrompt
	Sections   []string
}

// MarshalJSON encodes text prompts as a JSON string and structured prompts as
// an object.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Format == FormatJSON && r.Structured != nil {
		return json.Marshal(r.Structured)
	}
	return json.Marshal(r.Text)
}

// Assembler turns a PromptConfig into a prompt. It never fails: every lookup
// has a fallback.
type Assembler struct {
	sel *Selector
}

func New(sel *Selector) *Assembler {
	if sel == nil {
		sel = NewSelector(nil)
	}
	return &Assembler{sel: sel}
}

// draft holds the fragments chosen for one assembly. Empty strings mean the
// section was gated off.
type draft struct {
	subject  string
	wardrobe string
	action   string

	composition  string
	cameraMotion string
	staticCamera bool
	frameRate    string
	filmGrain    string

	location    string
	timeOfDay   string
	environment string
	props       string

	lighting string
	tone     string
	effects  []string

	ambient  string
	dialogue string
	palette  string

	styleModifier      string
	complexityModifier string
	pacing             string
}

// Assemble builds a prompt in the format requested by cfg.
func (a *Assembler) Assemble(cfg domain.PromptConfig) Result {
	d := a.draw(cfg)
	if strings.EqualFold(cfg.Format, FormatJSON) {
		s := d.structured(cfg)
		return Result{Format: FormatJSON, Structured: &s, Sections: d.sections()}
	}
	return Result{Format: FormatText, Text: d.text(), Sections: d.sections()}
}

func (a *Assembler) draw(cfg domain.PromptConfig) draft {
	var d draft
	cat := cfg.Category
	style := cfg.Style

	d.subject = a.sel.Pick(subjectTable, cat, DefaultCategory)
	if cfg.EnableSceneDetails && cfg.Subject.IncludeWardrobe {
		d.wardrobe = a.sel.Pick(wardrobeTable, cat, DefaultCategory)
	}
	d.action = a.sel.Pick(actionTable, cat, DefaultCategory)

	if cfg.EnableShotDetails {
		if cfg.Shot.Composition {
			d.composition = a.sel.Pick(compositionTable, sharedRow, sharedRow)
		}
		if cfg.Shot.CameraMotion {
			if m := a.sel.Pick(cameraMotionTable, sharedRow, sharedRow); m != cameraStatic {
				d.cameraMotion = m
			} else {
				d.staticCamera = true
			}
		}
		if cfg.Shot.FrameRate {
			d.frameRate = a.sel.Pick(frameRateTable, style, DefaultStyle)
		}
		if cfg.Shot.FilmGrain {
			d.filmGrain = a.sel.Pick(filmGrainTable, sharedRow, sharedRow)
		}
	}

	if cfg.EnableSceneDetails {
		if cfg.Scene.Location {
			d.location = a.sel.Pick(locationTable, cat, DefaultCategory)
		}
		if cfg.Scene.TimeOfDay {
			d.timeOfDay = a.sel.Pick(timeOfDayTable, sharedRow, sharedRow)
		}
		if cfg.Scene.Environment {
			d.environment = a.sel.Pick(environmentTable, cat, DefaultCategory)
		}
		if cfg.VisualDetails.Props {
			d.props = a.sel.Pick(propTable, cat, DefaultCategory)
		}
	}

	if cfg.EnableAdvancedDetails {
		if cfg.Cinematography.Lighting {
			d.lighting = a.sel.Pick(lightingTable, style, DefaultStyle)
		}
		if cfg.Cinematography.Tone {
			d.tone = a.sel.Pick(toneTable, style, DefaultStyle)
		}
	}
	d.effects = effectList(cfg.Elements)

	if cfg.EnableAdvancedDetails {
		if cfg.Audio.Ambient {
			d.ambient = a.sel.Pick(ambientTable, cat, DefaultCategory)
		}
		if cfg.Audio.Dialogue {
			d.dialogue = fmt.Sprintf(dialogueTemplate, DialogueSeconds(cfg.Duration))
		}
		if cfg.ColorPalette {
			d.palette = a.sel.Pick(paletteTable, style, DefaultStyle)
		}
	}

	if row, ok := styleModifiers[style]; ok && len(row) > 0 {
		d.styleModifier = a.sel.Choose(row)
	}
	d.complexityModifier = complexityModifiers[cfg.Complexity]
	d.pacing = Pacing(cfg.Duration)
	return d
}

func effectList(e domain.Elements) []string {
	var out []string
	if e.WeatherEffects {
		out = append(out, effectPhrases.weather)
	}
	if e.DynamicLighting {
		out = append(out, effectPhrases.lighting)
	}
	if e.CameraMovement {
		out = append(out, effectPhrases.camera)
	}
	return out
}

// shotParts omits a static camera draw unless it is the only shot detail
// enabled, so the clause is present whenever its toggles are.
func (d draft) shotParts() []string {
	parts := nonEmpty(d.composition, d.cameraMotion, d.frameRate, d.filmGrain)
	if len(parts) == 0 && d.staticCamera {
		return []string{staticCameraPhrase}
	}
	return parts
}

func (d draft) sceneParts() []string {
	return nonEmpty(d.location, d.timeOfDay, d.environment)
}

func (d draft) sections() []string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(d.wardrobe != "", SectionWardrobe)
	add(len(d.shotParts()) > 0, SectionShot)
	add(len(d.sceneParts()) > 0, SectionScene)
	add(d.props != "", SectionProps)
	add(d.lighting != "" || d.tone != "" || len(d.effects) > 0, SectionCinematography)
	add(d.ambient != "" || d.dialogue != "", SectionAudio)
	add(d.palette != "", SectionColorPalette)
	add(d.styleModifier != "", SectionStyle)
	add(d.complexityModifier != "", SectionComplexity)
	return out
}

func (d draft) text() string {
	parts := []string{sentence(d.subject)}
	if d.wardrobe != "" {
		parts = append(parts, sentence("Dressed in "+d.wardrobe))
	}
	parts = append(parts, sentence(d.action))
	if shot := d.shotParts(); len(shot) > 0 {
		parts = append(parts, sentence("Camera: "+strings.Join(shot, ", ")))
	}
	if scene := d.sceneParts(); len(scene) > 0 {
		parts = append(parts, sentence(strings.Join(scene, ". ")))
	}
	if d.props != "" {
		parts = append(parts, sentence("Props include "+d.props))
	}
	if cine := d.cinematographyClause(); cine != "" {
		parts = append(parts, sentence(cine))
	}
	if d.ambient != "" {
		parts = append(parts, sentence("Ambient audio of "+d.ambient))
	}
	parts = append(parts, d.dialogue)
	if d.palette != "" {
		parts = append(parts, sentence("Color palette of "+d.palette))
	}
	parts = append(parts,
		d.styleModifier,
		d.complexityModifier,
		sentence("The action is "+d.pacing),
		closingSentence,
	)
	return strings.Join(nonEmpty(parts...), " ")
}

// cinematographyClause merges lighting, tone and the element effects. Effects
// stand alone when the advanced section is off.
func (d draft) cinematographyClause() string {
	var parts []string
	if d.lighting != "" {
		parts = append(parts, "Lit with "+d.lighting)
	}
	if d.tone != "" {
		parts = append(parts, "conveying "+d.tone)
	}
	clause := strings.Join(parts, ", ")
	if len(d.effects) == 0 {
		return clause
	}
	if clause == "" {
		return "Enhanced by " + joinAnd(d.effects)
	}
	return clause + ", enhanced by " + joinAnd(d.effects)
}

// DialogueSeconds parses the leading integer of a duration label such as
// "5-10 seconds", defaulting to DefaultDialogueSeconds.
func DialogueSeconds(duration string) int {
	s := strings.TrimSpace(duration)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return DefaultDialogueSeconds
	}
	return n
}

// Pacing maps a duration label to its narrative pacing phrase.
func Pacing(duration string) string {
	if p, ok := pacingTable[duration]; ok {
		return p
	}
	return defaultPacing
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
