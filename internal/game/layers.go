package game

// Layer is a collision category gating which entity pairs are tested for
// overlap.
type Layer int

const (
	LayerPlayer Layer = iota
	LayerPlayerBullet
	LayerEnemy
	LayerEnemyBullet
	LayerPowerUp
	layerCount
)

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerPlayerBullet:
		return "player-bullet"
	case LayerEnemy:
		return "enemy"
	case LayerEnemyBullet:
		return "enemy-bullet"
	case LayerPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// layerMatrix is the explicit allow-list of colliding layer pairs. Pairs not
// listed here never collide; in particular bullets never collide with
// bullets, regardless of owner. Symmetric entries are filled by init.
var layerMatrix [layerCount][layerCount]bool

func init() {
	allow := func(a, b Layer) {
		layerMatrix[a][b] = true
		layerMatrix[b][a] = true
	}
	allow(LayerPlayer, LayerEnemyBullet)
	allow(LayerPlayer, LayerEnemy)
	allow(LayerPlayer, LayerPowerUp)
	allow(LayerPlayerBullet, LayerEnemy)
}

// LayersCollide reports whether the two layers are a testable pair.
func LayersCollide(a, b Layer) bool {
	if a < 0 || a >= layerCount || b < 0 || b >= layerCount {
		return false
	}
	return layerMatrix[a][b]
}
