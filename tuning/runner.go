package tuning

import (
	"fmt"

	"github.com/milk9111/dogrunner/assets"
)

// DefaultFile is the embedded runner tuning.
const DefaultFile = "runner.yaml"

type Runner struct {
	Surface    Surface      `yaml:"surface"`
	Player     Player       `yaml:"player"`
	Speed      Speed        `yaml:"speed"`
	Difficulty Difficulty   `yaml:"difficulty"`
	Score      Score        `yaml:"score"`
	Spawn      Spawn        `yaml:"spawn"`
	Gap        Gap          `yaml:"gap"`
	Patterns   Patterns     `yaml:"patterns"`
	Backdrop   Backdrop     `yaml:"backdrop"`
	Hitbox     Hitbox       `yaml:"hitbox"`
	Sprites    assets.Paths `yaml:"sprites"`
	Storage    Storage      `yaml:"storage"`
}

type Surface struct {
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

type Player struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	FrameDuration float64 `yaml:"frame_duration"`
}

type Speed struct {
	Base float64 `yaml:"base"`
	Max  float64 `yaml:"max"`
}

type Difficulty struct {
	Ceiling float64 `yaml:"ceiling"`
}

type Score struct {
	BaseRate        float64 `yaml:"base_rate"`
	DifficultyBonus float64 `yaml:"difficulty_bonus"`
	Digits          int     `yaml:"digits"`
}

// Spawn shapes the obstacle spawn delay. Early on the delay is eased wider by
// up to EaseMin/EaseMax; with difficulty it narrows by up to RampMin/RampMax.
type Spawn struct {
	BaseDelay       float64 `yaml:"base_delay"`
	MinDelay        float64 `yaml:"min_delay"`
	InitialJitter   float64 `yaml:"initial_jitter"`
	EaseScore       float64 `yaml:"ease_score"`
	EaseMin         float64 `yaml:"ease_min"`
	RampMin         float64 `yaml:"ramp_min"`
	MaxExtra        float64 `yaml:"max_extra"`
	EaseMax         float64 `yaml:"ease_max"`
	RampMax         float64 `yaml:"ramp_max"`
	MinSpread       float64 `yaml:"min_spread"`
	ComplexityDelay float64 `yaml:"complexity_delay"`
	CullMargin      float64 `yaml:"cull_margin"`
}

type Gap struct {
	Min            float64 `yaml:"min"`
	JumpTime       float64 `yaml:"jump_time"`
	WindowBase     float64 `yaml:"window_base"`
	WindowRamp     float64 `yaml:"window_ramp"`
	Clearance      float64 `yaml:"clearance"`
	EaseBonus      float64 `yaml:"ease_bonus"`
	Follow         float64 `yaml:"follow"`
	SafetyMargin   float64 `yaml:"safety_margin"`
	LongFactor     float64 `yaml:"long_factor"`
	LongJitter     Range   `yaml:"long_jitter"`
	StandardJitter Range   `yaml:"standard_jitter"`
	ShortFactor    float64 `yaml:"short_factor"`
	ShortJitter    Range   `yaml:"short_jitter"`
	ShortMin       float64 `yaml:"short_min"`
}

type Patterns struct {
	FallbackScale float64      `yaml:"fallback_scale"`
	Early         EarlyPattern `yaml:"early"`
	Mid           MidPattern   `yaml:"mid"`
	Late          LatePattern  `yaml:"late"`
}

// EarlyPattern applies while score < Until.
type EarlyPattern struct {
	Until         float64 `yaml:"until"`
	TreeChance    float64 `yaml:"tree_chance"`
	TreeScale     Range   `yaml:"tree_scale"`
	SquirrelScale Range   `yaml:"squirrel_scale"`
	PairChance    float64 `yaml:"pair_chance"`
	PairJitter    Range   `yaml:"pair_jitter"`
}

// MidPattern applies while score < Until. The remainder after SingleChance and
// PairChance is the mixed pair.
type MidPattern struct {
	Until              float64 `yaml:"until"`
	SingleChance       float64 `yaml:"single_chance"`
	PairChance         float64 `yaml:"pair_chance"`
	SingleScale        Range   `yaml:"single_scale"`
	PairScale          Range   `yaml:"pair_scale"`
	PairJitter         Range   `yaml:"pair_jitter"`
	MixedTreeScale     Range   `yaml:"mixed_tree_scale"`
	MixedSquirrelScale Range   `yaml:"mixed_squirrel_scale"`
	MixedLead          float64 `yaml:"mixed_lead"`
}

// LatePattern applies past the mid tier. The remainder after TreePairChance and
// RunChance is the mixed cluster.
type LatePattern struct {
	TreePairChance       float64 `yaml:"tree_pair_chance"`
	RunChance            float64 `yaml:"run_chance"`
	TreePairScale        Range   `yaml:"tree_pair_scale"`
	TreePairJitter       Range   `yaml:"tree_pair_jitter"`
	RunScale             Range   `yaml:"run_scale"`
	RunJitter            Range   `yaml:"run_jitter"`
	RunThirdChance       float64 `yaml:"run_third_chance"`
	RunThirdJitter       Range   `yaml:"run_third_jitter"`
	ClusterMin           int     `yaml:"cluster_min"`
	ClusterExtraChance   float64 `yaml:"cluster_extra_chance"`
	ClusterTreeChance    float64 `yaml:"cluster_tree_chance"`
	ClusterTreeScale     Range   `yaml:"cluster_tree_scale"`
	ClusterSquirrelScale Range   `yaml:"cluster_squirrel_scale"`
}

type Backdrop struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedRamp    float64 `yaml:"speed_ramp"`
	InitialDelay float64 `yaml:"initial_delay"`
	Delay        Range   `yaml:"delay"`
	DelayRamp    Range   `yaml:"delay_ramp"`
	DelayFloor   Range   `yaml:"delay_floor"`
	SkipChance   float64 `yaml:"skip_chance"`
	Scale        Range   `yaml:"scale"`
	Jitter       float64 `yaml:"jitter"`
	BufferFactor float64 `yaml:"buffer_factor"`
	BufferMax    float64 `yaml:"buffer_max"`
	CullMargin   float64 `yaml:"cull_margin"`
}

type Hitbox struct {
	Player   Inset `yaml:"player"`
	Obstacle Inset `yaml:"obstacle"`
}

type Storage struct {
	Key string `yaml:"key"`
}

// LoadRunner loads and validates a runner tuning file.
func LoadRunner(name string) (*Runner, error) {
	r, err := LoadSpec[Runner](name)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", name, err)
	}
	return &r, nil
}

// Default returns the embedded tuning, ignoring any on-disk override.
func Default() *Runner {
	data, err := TuningFS.ReadFile(DefaultFile)
	if err != nil {
		panic("tuning: embedded default missing: " + err.Error())
	}
	r, err := decodeRunner(data)
	if err != nil {
		panic("tuning: embedded default invalid: " + err.Error())
	}
	return r
}
