package dino

import (
	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
)

// Cactus is a ground obstacle the player must jump over.
type Cactus struct {
	X      float64 // Left edge, sub-cell precision
	Width  int
	Height int
}

// Rect returns the collision rectangle for this cactus.
func (c Cactus) Rect(groundY int) core.Rect {
	return core.RectAt(c.X, groundY-c.Height, c.Width, c.Height)
}

// ObstacleManager spawns cacti on a timer, moves them and drops the ones
// that left the screen.
type ObstacleManager struct {
	cacti   []Cactus
	spawner *core.Spawner
	cfg     config.DinoObstacles
	screenW int
	groundY int
}

// NewObstacleManager creates an empty obstacle field.
func NewObstacleManager(cfg config.DinoObstacles, screenW, groundY int) *ObstacleManager {
	return &ObstacleManager{
		cacti:   make([]Cactus, 0, 8),
		spawner: core.NewSpawner(cfg.InitialSpawnDelay, cfg.MinSpawnDelay, cfg.SpawnStep),
		cfg:     cfg,
		screenW: screenW,
		groundY: groundY,
	}
}

// Reset clears all obstacles and restores the initial spawn delay.
func (om *ObstacleManager) Reset() {
	om.cacti = om.cacti[:0]
	om.spawner.Reset()
}

// Update spawns, then moves every cactus left by speed and prunes.
func (om *ObstacleManager) Update(speed float64) {
	if om.spawner.Tick() {
		om.cacti = append(om.cacti, Cactus{
			X:      float64(om.screenW),
			Width:  om.cfg.Width,
			Height: om.cfg.Height,
		})
	}

	for i := range om.cacti {
		om.cacti[i].X -= speed
	}

	om.cacti = core.Prune(om.cacti, om.rect)
}

func (om *ObstacleManager) rect(c Cactus) core.Rect {
	return c.Rect(om.groundY)
}

// SpawnDelay returns the current ticks between cacti.
func (om *ObstacleManager) SpawnDelay() int {
	return om.spawner.Delay()
}

// Cacti returns the current obstacles in spawn order.
func (om *ObstacleManager) Cacti() []Cactus {
	return om.cacti
}

// CheckCollision tests if the given rectangle collides with any cactus.
func (om *ObstacleManager) CheckCollision(playerRect core.Rect) bool {
	for _, c := range om.cacti {
		if playerRect.Intersects(om.rect(c)) {
			return true
		}
	}
	return false
}
