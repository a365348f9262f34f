package entity

// EnemyState is the wandering state of an enemy
type EnemyState int

const (
	EnemyMoving EnemyState = iota
	EnemyStalling
	EnemyReacting
)

// String returns the string representation of the enemy state
func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyStalling:
		return "stalling"
	case EnemyReacting:
		return "collision_reacting"
	default:
		return "unknown"
	}
}

// EnemyConfig holds the per-enemy parameters drawn at spawn time
type EnemyConfig struct {
	Size          int
	Speed         float64 // pixels per second
	Facing        Direction
	StepBudget    int // moving ticks before stalling
	StallTicks    int
	ReactionTicks int
	IdleFrame     int
}

// Enemy is an autonomous wanderer
type Enemy struct {
	ID EntityID
	Body

	Speed float64
	State EnemyState

	Steps         int // ticks spent in moving or stalling
	StepBudget    int
	StallTicks    int
	Reaction      int // ticks spent in collision_reacting
	ReactionTicks int
}

// NewEnemy creates an enemy whose top-left is at pixel (x, y)
func NewEnemy(id EntityID, x, y int, cfg EnemyConfig) *Enemy {
	e := &Enemy{
		ID:            id,
		Body:          NewBody(x, y, cfg.Size, cfg.Size, cfg.Size, cfg.Size, cfg.Facing),
		Speed:         cfg.Speed,
		State:         EnemyMoving,
		StepBudget:    cfg.StepBudget,
		StallTicks:    cfg.StallTicks,
		ReactionTicks: cfg.ReactionTicks,
	}
	e.Anim.IdleFrame = cfg.IdleFrame
	e.Frame = cfg.IdleFrame
	return e
}

// Stall switches to stalling and restarts the step counter
func (e *Enemy) Stall() {
	e.State = EnemyStalling
	e.Steps = 0
}

// Resume switches back to moving and restarts both counters
func (e *Enemy) Resume() {
	e.State = EnemyMoving
	e.Steps = 0
	e.Reaction = 0
}

// React enters collision_reacting facing away from the impact
func (e *Enemy) React(impact Direction) {
	e.State = EnemyReacting
	e.Reaction = 0
	e.Facing = impact.Opposite()
}
