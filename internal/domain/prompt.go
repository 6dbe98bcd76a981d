package domain

import "strings"

// PromptConfig is the structured request a client submits to build a video
// prompt. Category, style, duration and complexity are open strings: unknown
// values are accepted here and resolved to defaults by the assembler.
type PromptConfig struct {
	Category              string               `json:"category" validate:"required,max=100"`
	Style                 string               `json:"style" validate:"required,max=100"`
	Duration              string               `json:"duration" validate:"required,max=100"`
	Complexity            string               `json:"complexity" validate:"required,max=100"`
	Format                string               `json:"format,omitempty" validate:"omitempty,oneof=text json"`
	Elements              Elements             `json:"elements"`
	EnableShotDetails     bool                 `json:"enable_shot_details"`
	EnableSceneDetails    bool                 `json:"enable_scene_details"`
	EnableAdvancedDetails bool                 `json:"enable_advanced_details"`
	Shot                  ShotOptions          `json:"shot"`
	Subject               SubjectOptions       `json:"subject"`
	Scene                 SceneOptions         `json:"scene"`
	VisualDetails         VisualDetailOptions  `json:"visual_details"`
	Cinematography        CinematographyOption `json:"cinematography"`
	Audio                 AudioOptions         `json:"audio"`
	ColorPalette          bool                 `json:"color_palette"`
}

// Elements are the flat effect toggles. They are honoured regardless of the
// section gates.
type Elements struct {
	WeatherEffects  bool `json:"weather_effects"`
	DynamicLighting bool `json:"dynamic_lighting"`
	CameraMovement  bool `json:"camera_movement"`
}

type ShotOptions struct {
	Composition  bool `json:"composition"`
	CameraMotion bool `json:"camera_motion"`
	FrameRate    bool `json:"frame_rate"`
	FilmGrain    bool `json:"film_grain"`
}

type SubjectOptions struct {
	IncludeDescription bool `json:"include_description"`
	IncludeWardrobe    bool `json:"include_wardrobe"`
}

type SceneOptions struct {
	Location    bool `json:"location"`
	TimeOfDay   bool `json:"time_of_day"`
	Environment bool `json:"environment"`
}

type VisualDetailOptions struct {
	Action bool `json:"action"`
	Props  bool `json:"props"`
}

type CinematographyOption struct {
	Lighting bool `json:"lighting"`
	Tone     bool `json:"tone"`
}

type AudioOptions struct {
	Ambient  bool `json:"ambient"`
	Dialogue bool `json:"dialogue"`
}

// Normalize trims the free-form labels in place.
func (c *PromptConfig) Normalize() {
	if c == nil {
		return
	}
	c.Category = strings.TrimSpace(c.Category)
	c.Style = strings.TrimSpace(c.Style)
	c.Duration = strings.TrimSpace(c.Duration)
	c.Complexity = strings.TrimSpace(c.Complexity)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
}

// EnabledFeatures lists the toggles that are switched on, in a stable order.
// Nested toggles are reported with their group prefix.
func (c PromptConfig) EnabledFeatures() []string {
	features := make([]string, 0, 8)
	add := func(on bool, name string) {
		if on {
			features = append(features, name)
		}
	}
	add(c.Elements.WeatherEffects, "weather_effects")
	add(c.Elements.DynamicLighting, "dynamic_lighting")
	add(c.Elements.CameraMovement, "camera_movement")
	add(c.EnableShotDetails, "shot_details")
	add(c.Shot.Composition, "shot.composition")
	add(c.Shot.CameraMotion, "shot.camera_motion")
	add(c.Shot.FrameRate, "shot.frame_rate")
	add(c.Shot.FilmGrain, "shot.film_grain")
	add(c.EnableSceneDetails, "scene_details")
	add(c.Subject.IncludeDescription, "subject.description")
	add(c.Subject.IncludeWardrobe, "subject.wardrobe")
	add(c.Scene.Location, "scene.location")
	add(c.Scene.TimeOfDay, "scene.time_of_day")
	add(c.Scene.Environment, "scene.environment")
	add(c.VisualDetails.Action, "visual_details.action")
	add(c.VisualDetails.Props, "visual_details.props")
	add(c.EnableAdvancedDetails, "advanced_details")
	add(c.Cinematography.Lighting, "cinematography.lighting")
	add(c.Cinematography.Tone, "cinematography.tone")
	add(c.Audio.Ambient, "audio.ambient")
	add(c.Audio.Dialogue, "audio.dialogue")
	add(c.ColorPalette, "color_palette")
	return features
}
