package component

// ObstacleKind selects which sprite an obstacle is drawn with.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleSquirrel
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleSquirrel:
		return "squirrel"
	default:
		return "unknown"
	}
}

type Obstacle struct {
	Kind ObstacleKind
}

var ObstacleComponent = NewComponent[Obstacle]()
