package promptgen

import (
	"videoprompt/internal/domain"
	"videoprompt/internal/domain/jsoncfg"
)

func (d draft) structured(cfg domain.PromptConfig) jsoncfg.StructuredPrompt {
	out := jsoncfg.StructuredPrompt{
		Version: PromptVersion,
		Subject: jsoncfg.SubjectBlock{Description: d.subject, Wardrobe: d.wardrobe},
		Action:  d.action,
		Style:   jsoncfg.StyleBlock{Name: cfg.Style, Modifier: d.styleModifier},
		Complexity: jsoncfg.ComplexityBlock{
			Level:    cfg.Complexity,
			Modifier: d.complexityModifier,
		},
		ColorPalette: d.palette,
		Pacing:       d.pacing,
		Quality:      closingSentence,
	}

	shot := jsoncfg.ShotBlock{
		Composition:  d.composition,
		CameraMotion: d.cameraMotion,
		FrameRate:    d.frameRate,
		FilmGrain:    d.filmGrain,
	}
	if shot.IsZero() && d.staticCamera {
		shot.CameraMotion = staticCameraPhrase
	}
	if !shot.IsZero() {
		out.Shot = &shot
	}

	scene := jsoncfg.SceneBlock{
		Location:    d.location,
		TimeOfDay:   d.timeOfDay,
		Environment: d.environment,
		Props:       d.props,
	}
	if !scene.IsZero() {
		out.Scene = &scene
	}

	if d.lighting != "" || d.tone != "" || len(d.effects) > 0 {
		out.Cinematography = &jsoncfg.CinemaBlock{
			Lighting: d.lighting,
			Tone:     d.tone,
			Effects:  append([]string(nil), d.effects...),
		}
	}

	if d.ambient != "" || d.dialogue != "" {
		out.Audio = &jsoncfg.AudioBlock{Ambient: d.ambient, Dialogue: d.dialogue}
	}
	return out
}
