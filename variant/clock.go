package variant

import (
	"math/rand"
	"sort"
	"time"

	"github.com/brensch/trapcat/game"
)

// OrangePatience is how long the orange cat waits before it starts
// clearing obstacles. Every full interval between two clicks costs one.
const OrangePatience = 600 * time.Millisecond

// Orange punishes slow play: before moving it removes one of the obstacles
// farthest from it for each OrangePatience since the previous click.
type Orange struct {
	Base
	now       func() time.Time
	lastClick time.Time
}

func NewOrange(now func() time.Time) *Orange {
	if now == nil {
		now = time.Now
	}
	return &Orange{now: now, lastClick: now()}
}

func (*Orange) Info() Info {
	info := Base{}.Info()
	info.ID = "orange"
	info.Name = "Orange Cat"
	info.Color = "#fa8c01"
	info.Description = "Every 0.6s you hesitate clears a far obstacle"
	return info
}

func (o *Orange) Reset() {
	o.lastClick = o.now()
}

func (o *Orange) Step(state *game.State, rng *rand.Rand) []game.Direction {
	cur := o.now()
	ClearFarthest(state, int(cur.Sub(o.lastClick)/OrangePatience), rng)
	o.lastClick = cur
	return o.Base.Step(state, rng)
}

// ClearFarthest removes up to n obstacles, farthest from the cat first.
// Ties are broken by a shuffle. It returns the removed cells.
func ClearFarthest(state *game.State, n int, rng *rand.Rand) []game.Hex {
	if n <= 0 {
		return nil
	}
	obstacles := state.Board.AllObstacles()
	if rng != nil {
		rng.Shuffle(len(obstacles), func(i, j int) { obstacles[i], obstacles[j] = obstacles[j], obstacles[i] })
	}
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].Dist(state.Cat) > obstacles[j].Dist(state.Cat)
	})

	removed := obstacles[:min(n, len(obstacles))]
	for _, h := range removed {
		state.Board.UnsetObstacle(h)
	}
	return removed
}
