// Package invaders implements a horizontal-marching formation shooter.
//
// Aliens, shots and the ship are axis-aligned rectangles in playfield
// units. Aliens and shots live in fixed slices flagged alive/active, so a
// tick allocates nothing.
package invaders

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// playerShotSlots bounds the player's shots in flight.
const playerShotSlots = 4

// Alien is one member of the formation.
type Alien struct {
	Row    int
	Col    int
	Points int
	Alive  bool
	Rect   core.Rect
}

// Shot is a projectile slot. Vel is vertical speed, negative going up.
type Shot struct {
	Rect   core.Rect
	Vel    float64
	Active bool
}

// Game implements the formation game.
type Game struct {
	cfg    config.InvadersConfig
	rng    core.Rand
	field  core.Rect
	placed core.Rect // field the entities were last laid out in

	aliens  []Alien
	originX float64 // left edge of column 0
	dir     float64 // +1 right, -1 left

	player      core.Rect
	playerShots [playerShotSlots]Shot
	enemyShots  []Shot

	lowest []int // per-column scratch for pickShooter, -1 when empty
	cols   []int

	stepTimer   float64
	volleyTimer float64
	cooldown    float64

	score int
	lives int
	wave  int
}

func init() {
	registry.Register("invaders", func() engine.Game {
		return New(config.Invaders())
	})
}

// New creates a formation game.
func New(cfg config.InvadersConfig) *Game {
	def := config.DefaultInvadersConfig()
	if cfg.Formation.Rows <= 0 || cfg.Formation.Cols <= 0 {
		cfg.Formation.Rows, cfg.Formation.Cols = def.Formation.Rows, def.Formation.Cols
	}
	if len(cfg.Formation.RowPoints) == 0 {
		cfg.Formation.RowPoints = def.Formation.RowPoints
	}
	if cfg.Gameplay.Lives <= 0 {
		cfg.Gameplay.Lives = def.Gameplay.Lives
	}
	cfg.Fire.MinShots = max(cfg.Fire.MinShots, 0)
	cfg.Fire.MaxShots = max(cfg.Fire.MaxShots, cfg.Fire.MinShots)
	cfg.Fire.ForwardBias = core.ClampF(cfg.Fire.ForwardBias, 0, 1)

	return &Game{
		cfg:        cfg,
		rng:        core.NewRand(0),
		dir:        1,
		enemyShots: make([]Shot, max(cfg.Fire.MaxShots, 1)),
		lowest:     make([]int, cfg.Formation.Cols),
		cols:       make([]int, 0, cfg.Formation.Cols),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Init starts wave 1 with full lives.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.cooldown = 0
	g.spawnFormation()
	if !g.field.Empty() {
		g.centerPlayer()
	}
	g.placed = g.field
}

// spawnFormation fills the alien arena and centers the formation.
func (g *Game) spawnFormation() {
	f := g.cfg.Formation
	g.aliens = g.aliens[:0]
	for row := range f.Rows {
		pts := f.RowPoints[min(row, len(f.RowPoints)-1)]
		for col := range f.Cols {
			g.aliens = append(g.aliens, Alien{Row: row, Col: col, Points: pts, Alive: true})
		}
	}
	g.dir = 1
	g.stepTimer = 0
	g.clearShots()
	g.volleyTimer = g.VolleyInterval()
	g.originX = g.field.X + (g.field.W-g.formationWidth())/2
	g.placeAliens()
}

func (g *Game) formationWidth() float64 {
	return g.cfg.Formation.Width * g.field.W
}

func (g *Game) cellSize() (w, h float64) {
	return g.formationWidth() / float64(g.cfg.Formation.Cols), g.cfg.Formation.CellHeight * g.field.H
}

// placeAliens recomputes alien rectangles from the formation origin.
func (g *Game) placeAliens() {
	cw, ch := g.cellSize()
	s := g.cfg.Formation.AlienScale
	aw, ah := cw*s, ch*s
	top := g.field.Y + g.cfg.Formation.Top*g.field.H
	for i := range g.aliens {
		a := &g.aliens[i]
		a.Rect = core.NewRect(
			g.originX+float64(a.Col)*cw+(cw-aw)/2,
			top+float64(a.Row)*ch+(ch-ah)/2,
			aw, ah,
		)
	}
}

func (g *Game) playerAt(cx float64) core.Rect {
	p := g.cfg.Player
	w, h := p.Width*g.field.W, p.Height*g.field.H
	y := g.field.Bottom() - p.BottomMargin*g.field.H - h
	return physics.ClampRect(core.NewRect(cx-w/2, y, w, h), g.field)
}

func (g *Game) centerPlayer() {
	g.player = g.playerAt(g.field.Center().X)
}

func (g *Game) clearShots() {
	for i := range g.playerShots {
		g.playerShots[i].Active = false
	}
	for i := range g.enemyShots {
		g.enemyShots[i].Active = false
	}
}

// Layout resizes the field, scaling the formation, ship and shots.
func (g *Game) Layout(field core.Rect) {
	old := g.placed
	g.field = field
	if field.Empty() {
		return
	}
	g.placed = field
	if old.Empty() {
		g.originX = field.X + (field.W-g.formationWidth())/2
		g.placeAliens()
		g.centerPlayer()
		return
	}

	sx, sy := field.W/old.W, field.H/old.H
	scaleX := func(x float64) float64 { return field.X + (x-old.X)*sx }
	scaleY := func(y float64) float64 { return field.Y + (y-old.Y)*sy }

	g.originX = scaleX(g.originX)
	g.placeAliens()
	g.player = g.playerAt(scaleX(g.player.Center().X))

	for _, arena := range [][]Shot{g.playerShots[:], g.enemyShots} {
		for i := range arena {
			s := &arena[i]
			c := core.Vec{X: scaleX(s.Rect.Center().X), Y: scaleY(s.Rect.Center().Y)}
			s.Rect = core.RectAround(c, s.Rect.W*sx, s.Rect.H*sy)
			s.Vel *= sy
		}
	}
}

// Alive returns the number of live aliens.
func (g *Game) Alive() int {
	n := 0
	for _, a := range g.aliens {
		if a.Alive {
			n++
		}
	}
	return n
}

func (g *Game) fraction() float64 {
	return Fraction(g.Alive(), len(g.aliens))
}

// StepInterval returns the current march interval.
func (g *Game) StepInterval() float64 {
	return StepInterval(g.cfg.Formation, g.fraction(), g.wave)
}

// VolleyInterval returns the current delay between enemy volleys.
func (g *Game) VolleyInterval() float64 {
	return VolleyInterval(g.cfg.Fire, g.cfg.Formation.WaveFactor, g.fraction(), g.wave)
}

// Update marches the formation, fires, moves shots and resolves hits.
func (g *Game) Update(dt float64) engine.Outcome {
	g.cooldown = math.Max(g.cooldown-dt, 0)

	g.stepTimer += dt
	for iv := g.StepInterval(); iv > 0 && g.stepTimer >= iv; iv = g.StepInterval() {
		g.stepTimer -= iv
		g.march()
	}

	g.volleyTimer -= dt
	if g.volleyTimer <= 0 {
		if g.volley() {
			g.volleyTimer = g.VolleyInterval()
		} else {
			g.volleyTimer = 0
		}
	}

	g.moveShots(dt)

	g.hitAliens()
	if g.Alive() == 0 {
		g.nextWave()
		return engine.OutcomeNone
	}

	if g.playerHit() {
		return g.loseLife()
	}
	return engine.OutcomeNone
}

// march shifts the live formation one step. A step that would cross a
// wall stops at the wall and reverses the direction.
func (g *Game) march() {
	minX, maxX, ok := g.extent()
	if !ok {
		return
	}
	shift := g.dir * g.cfg.Formation.Step * g.field.W
	switch {
	case minX+shift < g.field.X:
		shift = g.field.X - minX
		g.dir = 1
	case maxX+shift > g.field.Right():
		shift = g.field.Right() - maxX
		g.dir = -1
	}
	g.originX += shift
	for i := range g.aliens {
		g.aliens[i].Rect.X += shift
	}
}

// extent returns the horizontal span of the live aliens.
func (g *Game) extent() (minX, maxX float64, ok bool) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		minX = math.Min(minX, a.Rect.X)
		maxX = math.Max(maxX, a.Rect.Right())
		ok = true
	}
	return minX, maxX, ok
}

// volley fires one shot when the density allows another in flight. It
// reports false when the shot arena is full, so the caller retries on the
// next tick.
func (g *Game) volley() bool {
	active := 0
	for _, s := range g.enemyShots {
		if s.Active {
			active++
		}
	}
	if active >= MaxShots(g.cfg.Fire, g.fraction()) {
		return false
	}
	shooter, ok := g.pickShooter()
	if !ok {
		return true
	}
	for i := range g.enemyShots {
		s := &g.enemyShots[i]
		if s.Active {
			continue
		}
		a := g.aliens[shooter].Rect
		*s = g.newShot(core.Vec{X: a.Center().X, Y: a.Bottom()}, g.cfg.Fire.ShotSpeed*g.field.H)
		s.Rect.Y = a.Bottom()
		return true
	}
	return false
}

func (g *Game) newShot(at core.Vec, vel float64) Shot {
	w := g.cfg.Fire.ShotWidth * g.field.W
	h := g.cfg.Fire.ShotHeight * g.field.H
	return Shot{Rect: core.RectAround(at, w, h), Vel: vel, Active: true}
}

// pickShooter returns the index of the lowest live alien of a column.
// With probability ForwardBias the column closest to the player is used,
// otherwise a uniformly random live column.
func (g *Game) pickShooter() (int, bool) {
	for c := range g.lowest {
		g.lowest[c] = -1
	}
	for i, a := range g.aliens {
		if !a.Alive || a.Col < 0 || a.Col >= len(g.lowest) {
			continue
		}
		if j := g.lowest[a.Col]; j < 0 || a.Row > g.aliens[j].Row {
			g.lowest[a.Col] = i
		}
	}
	g.cols = g.cols[:0]
	for c, i := range g.lowest {
		if i >= 0 {
			g.cols = append(g.cols, c)
		}
	}
	if len(g.cols) == 0 {
		return 0, false
	}

	if core.Chance(g.rng, g.cfg.Fire.ForwardBias) {
		px := g.player.Center().X
		best := g.lowest[g.cols[0]]
		for _, c := range g.cols[1:] {
			i := g.lowest[c]
			if math.Abs(g.aliens[i].Rect.Center().X-px) < math.Abs(g.aliens[best].Rect.Center().X-px) {
				best = i
			}
		}
		return best, true
	}
	return g.lowest[g.cols[g.rng.Intn(len(g.cols))]], true
}

// moveShots advances every active shot and retires the ones that reached
// the field edge.
func (g *Game) moveShots(dt float64) {
	for _, arena := range [][]Shot{g.playerShots[:], g.enemyShots} {
		for i := range arena {
			s := &arena[i]
			if !s.Active {
				continue
			}
			s.Rect.Y += s.Vel * dt
			if s.Rect.Y < g.field.Y || s.Rect.Bottom() > g.field.Bottom() {
				s.Active = false
			}
		}
	}
}

// hitAliens resolves player shots against the formation.
func (g *Game) hitAliens() {
	for i := range g.playerShots {
		s := &g.playerShots[i]
		if !s.Active {
			continue
		}
		for j := range g.aliens {
			a := &g.aliens[j]
			if a.Alive && s.Rect.Intersects(a.Rect) {
				a.Alive = false
				s.Active = false
				g.score += a.Points
				break
			}
		}
	}
}

// playerHit reports whether an enemy shot overlaps the ship.
func (g *Game) playerHit() bool {
	for _, s := range g.enemyShots {
		if s.Active && s.Rect.Intersects(g.player) {
			return true
		}
	}
	return false
}

// loseLife clears the shots and recenters the ship.
func (g *Game) loseLife() engine.Outcome {
	g.lives--
	g.clearShots()
	g.centerPlayer()
	g.volleyTimer = g.VolleyInterval()
	if g.lives <= 0 {
		g.lives = 0
		return engine.OutcomeGameOver
	}
	return engine.OutcomeRoundLost
}

// nextWave lays out a fresh formation for the next wave.
func (g *Game) nextWave() {
	g.wave++
	g.spawnFormation()
}

// Handle moves the ship or fires.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdNudge:
		step := g.cfg.Player.Nudge * g.field.W
		switch cmd.Dir {
		case core.DirLeft:
			g.movePlayer(-step)
		case core.DirRight:
			g.movePlayer(step)
		}
	case core.CmdMoveBy:
		g.movePlayer(cmd.Delta)
	case core.CmdFire:
		g.fire()
	}
	return engine.OutcomeNone
}

// movePlayer shifts the ship; the wall truncates the move.
func (g *Game) movePlayer(dx float64) {
	g.player.X += dx
	g.player = physics.ClampRect(g.player, g.field)
}

// fire launches a player shot unless the cooldown is running or every
// slot is in flight.
func (g *Game) fire() bool {
	if g.cooldown > 0 {
		return false
	}
	for i := range g.playerShots {
		s := &g.playerShots[i]
		if s.Active {
			continue
		}
		*s = g.newShot(core.Vec{X: g.player.Center().X, Y: g.player.Y}, -g.cfg.Player.ShotSpeed*g.field.H)
		s.Rect.Y = math.Max(g.player.Y-s.Rect.H, g.field.Y)
		g.cooldown = g.cfg.Player.Cooldown
		return true
	}
	return false
}

// Status returns the HUD counters.
func (g *Game) Status() engine.Status {
	return engine.Status{
		Score: g.score,
		Lives: g.lives,
		Wave:  g.wave,
	}
}
