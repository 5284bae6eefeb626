package camera

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk camera settings file. Zero values mean "keep the
// current value", so a file only needs the fields it changes.
type Config struct {
	Mode       string           `yaml:"mode"`
	Projection ProjectionConfig `yaml:"projection"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	FreeLook   FreeLookConfig   `yaml:"free_look"`
}

// ProjectionConfig holds the perspective settings.
type ProjectionConfig struct {
	FovyDegrees float32 `yaml:"fovy_degrees"`
	Aspect      float32 `yaml:"aspect"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	DepthRange  string  `yaml:"depth_range"`
}

// OrbitConfig holds the orbit distance and drag sensitivities.
type OrbitConfig struct {
	InitDistance      float32 `yaml:"init_distance"`
	RotationFactor    float32 `yaml:"rotation_factor"`
	TranslationFactor float32 `yaml:"translation_factor"`
	ScaleFactor       float32 `yaml:"scale_factor"`
}

// FreeLookConfig holds the starting first-person pose and its speeds.
// Position and angles are pointers because zero is a meaningful value for them.
type FreeLookConfig struct {
	Position        []float32 `yaml:"position"`
	YawDegrees      *float32  `yaml:"yaw_degrees"`
	PitchDegrees    *float32  `yaml:"pitch_degrees"`
	MoveSpeed       float32   `yaml:"move_speed"`
	LookSensitivity float32   `yaml:"look_sensitivity"`
}

// LoadConfig reads and validates a YAML camera settings file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the parsed settings
//   - error: error if the file cannot be read or is invalid
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("camera: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("camera: load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML camera settings.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the parsed settings
//   - error: error if the document is malformed or holds unknown names
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("camera: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the names and vector lengths in the config.
//
// Returns:
//   - error: the first problem found, or nil
func (cfg Config) Validate() error {
	if cfg.Mode != "" {
		if _, err := ParseMode(cfg.Mode); err != nil {
			return err
		}
	}
	if cfg.Projection.DepthRange != "" {
		if _, err := ParseDepthRange(cfg.Projection.DepthRange); err != nil {
			return err
		}
	}
	if n := len(cfg.FreeLook.Position); n != 0 && n != 3 {
		return fmt.Errorf("camera: free_look.position needs 3 components, got %d", n)
	}
	return nil
}

func (c *cameraImpl) ApplyConfig(cfg Config) {
	p := cfg.Projection
	if p.FovyDegrees != 0 {
		c.SetFovy(mgl32.DegToRad(p.FovyDegrees))
	}
	if p.Aspect != 0 {
		c.SetAspect(p.Aspect)
	}
	if p.Near != 0 || p.Far != 0 {
		c.SetClipPlanes(common.Coalesce(p.Near, c.near), common.Coalesce(p.Far, c.far))
	}
	if p.DepthRange != "" {
		if dr, err := ParseDepthRange(p.DepthRange); err == nil {
			c.depthRange = dr
		}
	}

	o := cfg.Orbit
	c.SetRotationFactor(common.Coalesce(o.RotationFactor, c.orbit.rfactor))
	c.SetTranslationFactor(common.Coalesce(o.TranslationFactor, c.orbit.tfactor))
	c.SetScaleFactor(common.Coalesce(o.ScaleFactor, c.orbit.sfactor))

	f := cfg.FreeLook
	c.SetMoveSpeed(common.Coalesce(f.MoveSpeed, c.freeLook.moveSpeed))
	c.SetLookSensitivity(common.Coalesce(f.LookSensitivity, c.freeLook.lookSensitivity))
}

func (c *cameraImpl) ApplyStartPose(cfg Config) {
	if cfg.Mode != "" {
		if m, err := ParseMode(cfg.Mode); err == nil {
			c.mode = m
		}
	}
	if cfg.Orbit.InitDistance != 0 {
		c.SetInitDistance(cfg.Orbit.InitDistance)
	}

	f := cfg.FreeLook
	if len(f.Position) == 3 {
		c.SetPosition(mgl32.Vec3{f.Position[0], f.Position[1], f.Position[2]})
	}
	if f.YawDegrees != nil || f.PitchDegrees != nil {
		yaw, pitch := c.freeLook.yaw, c.freeLook.pitch
		if f.YawDegrees != nil {
			yaw = mgl32.DegToRad(*f.YawDegrees)
		}
		if f.PitchDegrees != nil {
			pitch = mgl32.DegToRad(*f.PitchDegrees)
		}
		c.SetYawPitch(yaw, pitch)
	}
}
