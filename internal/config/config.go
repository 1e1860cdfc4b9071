// Package config handles visualizer configuration loading and management.
package config

// Config holds all visualizer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"`
	ShowFPS    bool `yaml:"show_fps"`
}

// SceneConfig holds the initial direction angles (degrees) and the
// sampling density of the generated geometry.
type SceneConfig struct {
	TargetAz float64 `yaml:"target_az"`
	TargetEl float64 `yaml:"target_el"`
	RollAz   float64 `yaml:"roll_az"`
	RollEl   float64 `yaml:"roll_el"`

	// KeyRate is the angular speed of the direction keys, deg/s.
	KeyRate float64 `yaml:"key_rate"`

	AzimuthSteps     int `yaml:"azimuth_steps"`
	ElevationSteps   int `yaml:"elevation_steps"`
	GreatCircleSteps int `yaml:"great_circle_steps"`
	SphereSegAz      int `yaml:"sphere_seg_az"`
	SphereSegEl      int `yaml:"sphere_seg_el"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance        float64 `yaml:"distance"`
	FOV             float64 `yaml:"fov"`
	MinFOV          float64 `yaml:"min_fov"`
	MaxFOV          float64 `yaml:"max_fov"`
	DragSensitivity float64 `yaml:"drag_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
			ShowFPS:    false,
		},
		Scene: SceneConfig{
			TargetAz:         40,
			TargetEl:         25,
			RollAz:           10,
			RollEl:           5,
			KeyRate:          60,
			AzimuthSteps:     64,
			ElevationSteps:   32,
			GreatCircleSteps: 64,
			SphereSegAz:      32,
			SphereSegEl:      20,
		},
		Camera: CameraConfig{
			Distance:        3.5,
			FOV:             60,
			MinFOV:          20,
			MaxFOV:          90,
			DragSensitivity: 0.003,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
