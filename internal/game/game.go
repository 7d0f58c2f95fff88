package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/telemetry"
	"github.com/samdwyer/dungeonle/internal/ui"
)

// Game drives a World from the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	registry *gamedata.SpriteRegistry
	world    *World
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config, registry *gamedata.SpriteRegistry, palette gamedata.Palette) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		cfg:      cfg,
		registry: registry,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	w, err := NewWorld(ctx, g.cfg, g.registry)
	if err != nil {
		return err
	}
	g.world = w
	g.world.SetNotifier(NotifierFunc(g.record))
	g.message = "Arrows move, space taps, q quits."

	log := telemetry.Logger().WithName("game")
	log.V(1).Info("world ready", "seed", g.cfg.Seed, "sprites", len(w.Sprites()))

	// Main game loop
	for g.running {
		g.renderer.Render(g.world.Grid(), g.world.Sprites(), g.world.PlayerID(), g.status())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	log.V(1).Info("game over", "turns", g.world.Turn())
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.act(ctx, entity.ActionUp)
	case tcell.KeyDown:
		g.act(ctx, entity.ActionDown)
	case tcell.KeyLeft:
		g.act(ctx, entity.ActionLeft)
	case tcell.KeyRight:
		g.act(ctx, entity.ActionRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.act(ctx, entity.ActionTap)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// act records the player's intent and resolves one pass.
func (g *Game) act(ctx context.Context, a entity.Action) {
	if err := g.world.Intend(g.world.PlayerID(), a); err != nil {
		g.message = "You are no more."
		return
	}
	g.message = ""
	g.world.Step(ctx)
}

// record turns the player's events into the message line.
func (g *Game) record(e Event) {
	if e.Subject != g.world.PlayerID() {
		return
	}
	if msg := Describe(e); msg != "" {
		g.message = msg
	}
}

// status returns the hearts and inventory line and the last message.
func (g *Game) status() []string {
	p, ok := g.world.Player()
	if !ok {
		return []string{"", g.message}
	}
	return []string{fmt.Sprintf("%s ❤️ %d  %s", p.Emoji, p.Hearts, Inventory(p)), g.message}
}

// Describe returns a one-line account of e, or "" for events not worth
// showing.
func Describe(e Event) string {
	switch e.Type {
	case EventBlocked:
		return "Something blocks the way."
	case EventPickup:
		return fmt.Sprintf("Picked up %s.", e.Emoji)
	case EventOpenChest:
		return fmt.Sprintf("Opened a chest and found %s.", e.Emoji)
	case EventAttack:
		return fmt.Sprintf("Hit %s for %d.", e.Emoji, e.Amount)
	case EventKill:
		return fmt.Sprintf("%s falls, dropping %d items.", e.Emoji, e.Amount)
	case EventWarp:
		return fmt.Sprintf("Warped to %d,%d.", e.X, e.Y)
	default:
		return ""
	}
}

// Inventory formats held items as "emoji×n" sorted by emoji.
func Inventory(s entity.Sprite) string {
	symbols := make([]string, 0, len(s.Items))
	for emoji := range s.Items {
		symbols = append(symbols, emoji)
	}
	sort.Strings(symbols)

	parts := make([]string, len(symbols))
	for i, emoji := range symbols {
		parts[i] = fmt.Sprintf("%s×%d", emoji, s.Items[emoji])
	}
	return strings.Join(parts, " ")
}
