package system

import (
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/tuning"
)

// Context is the run state every runner system reads and writes during a tick.
// Systems only run while the game is running; the owner resets it between runs.
type Context struct {
	Tuning  *tuning.Runner
	Sprites *assets.Sprites
	Rand    common.Random

	// Delta is the tick length in seconds and Width the visible logical width.
	Delta float64
	Width float64

	Score      float64
	Difficulty float64
	EarlyEase  float64
	Speed      float64

	Player       ecs.Entity
	Invulnerable bool
	Collided     bool

	SpawnTimer    float64
	NextSpawn     float64
	BackdropTimer float64
	NextBackdrop  float64

	order uint64
}

// Reset clears score, timers and the collision flag and draws the opening
// obstacle delay.
func (c *Context) Reset() {
	c.Score = 0
	c.Collided = false
	c.refresh()
	c.SpawnTimer = 0
	c.NextSpawn = c.Tuning.Spawn.BaseDelay + c.Rand.Float64()*c.Tuning.Spawn.InitialJitter
	c.BackdropTimer = 0
	c.NextBackdrop = c.Tuning.Backdrop.InitialDelay
	c.order = 0
}

// NextOrder hands out increasing spawn sequence numbers for draw ordering.
func (c *Context) NextOrder() uint64 {
	c.order++
	return c.order
}

func (c *Context) refresh() {
	c.Difficulty = Difficulty(c.Tuning, c.Score)
	c.EarlyEase = EarlyEase(c.Tuning, c.Score)
	c.Speed = ScrollSpeed(c.Tuning, c.Difficulty)
}

// FloorY is the logical y of the ground line.
func (c *Context) FloorY() float64 {
	return c.Tuning.Surface.Height
}
