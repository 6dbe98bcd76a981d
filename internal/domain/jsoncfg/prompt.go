package jsoncfg

// StructuredPrompt is the JSON output format of the assembler. Sections that
// were not enabled are left nil and dropped on marshal; Quality is always set.
type StructuredPrompt struct {
	Version        string          `json:"version"`
	Subject        SubjectBlock    `json:"subject"`
	Action         string          `json:"action"`
	Shot           *ShotBlock      `json:"shot,omitempty"`
	Scene          *SceneBlock     `json:"scene,omitempty"`
	Cinematography *CinemaBlock    `json:"cinematography,omitempty"`
	Audio          *AudioBlock     `json:"audio,omitempty"`
	ColorPalette   string          `json:"color_palette,omitempty"`
	Style          StyleBlock      `json:"style"`
	Complexity     ComplexityBlock `json:"complexity"`
	Pacing         string          `json:"pacing"`
	Quality        string          `json:"quality"`
}

type SubjectBlock struct {
	Description string `json:"description"`
	Wardrobe    string `json:"wardrobe,omitempty"`
}

type ShotBlock struct {
	Composition  string `json:"composition,omitempty"`
	CameraMotion string `json:"camera_motion,omitempty"`
	FrameRate    string `json:"frame_rate,omitempty"`
	FilmGrain    string `json:"film_grain,omitempty"`
}

// IsZero reports whether no shot field was filled.
func (b ShotBlock) IsZero() bool {
	return b == ShotBlock{}
}

type SceneBlock struct {
	Location    string `json:"location,omitempty"`
	TimeOfDay   string `json:"time_of_day,omitempty"`
	Environment string `json:"environment,omitempty"`
	Props       string `json:"props,omitempty"`
}

func (b SceneBlock) IsZero() bool {
	return b == SceneBlock{}
}

type CinemaBlock struct {
	Lighting string   `json:"lighting,omitempty"`
	Tone     string   `json:"tone,omitempty"`
	Effects  []string `json:"effects,omitempty"`
}

type AudioBlock struct {
	Ambient  string `json:"ambient,omitempty"`
	Dialogue string `json:"dialogue,omitempty"`
}

type StyleBlock struct {
	Name     string `json:"name"`
	Modifier string `json:"modifier,omitempty"`
}

type ComplexityBlock struct {
	Level    string `json:"level"`
	Modifier string `json:"modifier,omitempty"`
}

// Sections lists the names of the optional blocks present, in output order.
func (p StructuredPrompt) Sections() []string {
	var out []string
	if p.Subject.Wardrobe != "" {
		out = append(out, "wardrobe")
	}
	if p.Shot != nil {
		out = append(out, "shot")
	}
	if p.Scene != nil {
		if p.Scene.Location != "" || p.Scene.TimeOfDay != "" || p.Scene.Environment != "" {
			out = append(out, "scene")
		}
		if p.Scene.Props != "" {
			out = append(out, "props")
		}
	}
	if p.Cinematography != nil {
		out = append(out, "cinematography")
	}
	if p.Audio != nil {
		out = append(out, "audio")
	}
	if p.ColorPalette != "" {
		out = append(out, "color_palette")
	}
	if p.Style.Modifier != "" {
		out = append(out, "style_modifier")
	}
	if p.Complexity.Modifier != "" {
		out = append(out, "complexity_modifier")
	}
	return out
}
