// Package engine is the command dispatcher. Each tick it fires due timed
// events, routes waiting input into the command queue and applies at most
// one command to the party and the level.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/input"
	"github.com/vovakirdan/crawlcore/internal/logging"
	"github.com/vovakirdan/crawlcore/internal/party"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

// PanelContent is what the inventory panel shows.
type PanelContent int

const (
	PanelNone PanelContent = iota
	PanelChest
	PanelResurrect
)

func (c PanelContent) String() string {
	switch c {
	case PanelChest:
		return "chest"
	case PanelResurrect:
		return "resurrect"
	default:
		return "none"
	}
}

var (
	ErrPartyFull        = errors.New("engine: party is full")
	ErrCandidatePending = errors.New("engine: a candidate champion is already offered")
	ErrHandNotEmpty     = errors.New("engine: leader hand is not empty")
)

// Options configures a new Engine. Store, Party and Source are required;
// every other collaborator has a default.
type Options struct {
	Store  *dungeon.Store
	Party  *party.Party
	Source input.Source

	// Scheduler receives timed events. Defaults to a timeline the engine
	// consumes itself.
	Scheduler timeline.Scheduler
	UI        UI
	Sensors   SensorHook
	Thrower   Thrower

	// MovementKeys replaces the secondary keyboard table of the movement
	// contexts.
	MovementKeys hittest.KeyTable

	MapIndex int
	Seed     int64
	Logger   *log.Logger
}

// Engine owns one running game. It is not safe for concurrent use.
type Engine struct {
	store    *dungeon.Store
	party    *party.Party
	router   *input.Router
	sched    timeline.Scheduler
	timeline *timeline.Timeline
	ui       UI
	sensors  SensorHook
	thrower  Thrower
	logger   *log.Logger
	rng      *rand.Rand
	moveKeys hittest.KeyTable

	// View holds the clickable boxes of the dungeon view as last drawn.
	View hittest.ViewBoxes

	mapIndex      int
	gameTime      int64
	ctx           hittest.Context
	choices       int
	frozenFrom    hittest.Context
	frozenChoices int
	inventory     int // Ordinal of the champion whose inventory is open
	panel         PanelContent
	pointer       Pointer
	dragging      int // Ordinal of the champion whose icon is being moved
	stopWaiting   bool

	// Dispatched, when set, sees every command DispatchOne pops.
	Dispatched func(tick int64, c command.Command)
}

// New creates an engine in the movement context.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil || opts.Party == nil || opts.Source == nil {
		return nil, errors.New("engine: store, party and source are required")
	}
	p := opts.Party
	if sq := opts.Store.Square(p.X, p.Y); sq == nil || sq.Blocked() {
		return nil, fmt.Errorf("engine: party start (%d,%d) is not an open square", p.X, p.Y)
	}

	e := &Engine{
		store:    opts.Store,
		party:    p,
		sched:    opts.Scheduler,
		ui:       opts.UI,
		sensors:  opts.Sensors,
		thrower:  opts.Thrower,
		logger:   logging.OrDiscard(opts.Logger),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		moveKeys: opts.MovementKeys,
		View:     hittest.DefaultViewBoxes(),
		mapIndex: opts.MapIndex,
		ctx:      hittest.ContextInterface,
		pointer:  PointerArrow,
	}
	if e.sched == nil {
		e.timeline = timeline.New()
		e.sched = e.timeline
	} else if tl, ok := e.sched.(*timeline.Timeline); ok {
		e.timeline = tl
	}
	if e.ui == nil {
		e.ui = NopUI{}
	}
	if e.sensors == nil {
		e.sensors = &DungeonSensors{Store: e.store, Scheduler: e.sched, MapIndex: e.mapIndex}
	}
	if e.thrower == nil {
		e.thrower = LandingThrower{Store: e.store}
	}

	tables, err := hittest.SetFor(hittest.ContextInterface, 0)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.router = input.NewRouter(opts.Source, tables.WithKeys(e.moveKeys), e.logger)
	return e, nil
}

// Store returns the level.
func (e *Engine) Store() *dungeon.Store { return e.store }

// Party returns the party.
func (e *Engine) Party() *party.Party { return e.party }

// Router returns the input router.
func (e *Engine) Router() *input.Router { return e.router }

// Timeline returns the timeline the engine consumes, or nil when events go
// to an outside scheduler.
func (e *Engine) Timeline() *timeline.Timeline { return e.timeline }

// GameTime returns the number of ticks run.
func (e *Engine) GameTime() int64 { return e.gameTime }

// Context returns the screen accepting input.
func (e *Engine) Context() hittest.Context { return e.ctx }

// Inventory returns the index of the champion whose inventory is open, or
// party.NoChampion.
func (e *Engine) Inventory() int { return party.OrdinalToIndex(e.inventory) }

// Panel returns the inventory panel content.
func (e *Engine) Panel() PanelContent { return e.panel }

// Pointer returns the current cursor.
func (e *Engine) Pointer() Pointer { return e.pointer }

// StopWaiting reports whether the last dispatched command used up the
// party's turn.
func (e *Engine) StopWaiting() bool { return e.stopWaiting }

// Tick runs one world step: due timed events fire, waiting input is routed,
// one command is dispatched, then the clock advances.
func (e *Engine) Tick() {
	e.runDueEvents()
	e.router.ProcessInput()
	e.DispatchOne()
	e.updatePointer()
	e.gameTime++
}

// DispatchOne pops and applies at most one command. A pending click is
// flushed after the pop and before the command takes effect, so the queue
// never loses a click that arrived during dispatch.
func (e *Engine) DispatchOne() (command.Command, bool) {
	e.stopWaiting = false
	c, ok := e.router.Next()
	if !ok {
		return c, false
	}
	if e.Dispatched != nil {
		e.Dispatched(e.gameTime, c)
	}
	e.logger.Debug("dispatch", "cmd", c.Type, "x", c.Pos.X, "y", c.Pos.Y, "tick", e.gameTime)
	e.route(c)
	return c, true
}

func (e *Engine) route(c command.Command) {
	t := c.Type
	switch {
	case t == command.TurnLeft || t == command.TurnRight:
		e.turn(t)
	case t >= command.MoveForward && t <= command.MoveLeft:
		e.move(t)
	case t == command.ClickInDungeonView:
		e.clickInDungeonView(c.Pos)
	case t == command.ClickInPanel:
		e.clickInPanel(c.Pos)
	case t >= command.ToggleInventoryChampion0 && t <= command.ToggleInventoryChampion3:
		e.toggleInventory(int(t - command.ToggleInventoryChampion0))
	case t == command.ToggleInventoryLeader:
		if e.party.HasLeader() {
			e.toggleInventory(e.party.Leader)
		}
	case t == command.CloseInventory:
		if e.party.CandidateOrdinal == 0 {
			e.closeInventory()
		}
	case t >= command.ClickInChampion0StatusBox && t <= command.ClickInChampion3StatusBox:
		e.clickInStatusBox(int(t-command.ClickInChampion0StatusBox), c)
	case t >= command.SetLeaderChampion0 && t <= command.SetLeaderChampion3:
		e.SetLeader(int(t - command.SetLeaderChampion0))
	case t >= command.ClickOnSlotBoxChampion0StatusBoxReadyHand && t <= command.ClickOnSlotBoxChampion3StatusBoxActionHand:
		n := int(t - command.ClickOnSlotBoxChampion0StatusBoxReadyHand)
		e.clickOnSlot(n/2, n%2)
	case t >= command.ClickOnSlotBoxInventoryReadyHand && t <= command.ClickOnSlotBoxInventoryBackpackLast:
		if slot, ok := hittest.SlotIndex(t); ok && e.inventory != 0 {
			e.clickOnSlot(party.OrdinalToIndex(e.inventory), slot)
		}
	case t >= command.ClickOnSlotBoxChest1 && t <= command.ClickOnSlotBoxChest8:
		if slot, ok := chestSlot(t); ok && e.panel == PanelChest {
			e.ui.ClickChestSlot(slot)
		}
	case t >= command.ClickOnChampionIconTopLeft && t <= command.ClickOnChampionIconLowerLeft:
		e.clickOnChampionIcon(int(t - command.ClickOnChampionIconTopLeft))
	case t == command.FreezeGame:
		e.freeze()
	case t == command.UnfreezeGame:
		e.unfreeze()
	case t == command.Sleep:
		e.sleep()
	case t == command.WakeUp:
		e.wakeUp()
	default:
		e.logger.Debug("command ignored", "cmd", t)
	}
}

func (e *Engine) runDueEvents() {
	if e.timeline == nil {
		return
	}
	for _, ev := range e.timeline.Due(e.gameTime) {
		switch ev.Type {
		case timeline.EventDoor:
			if !e.store.SetDoor(ev.X, ev.Y, ev.Effect) {
				e.logger.Warn("door event on a square without a door", "x", ev.X, "y", ev.Y)
				continue
			}
			e.logger.Debug("door", "x", ev.X, "y", ev.Y, "effect", ev.Effect, "state", e.store.Square(ev.X, ev.Y).Door)
		case timeline.EventViAltarRebirth:
			e.logger.Info("vi altar rebirth", "x", ev.X, "y", ev.Y, "cell", ev.Cell, "charges", ev.Priority)
			e.ui.AltarRebirth(ev)
		default:
			e.logger.Debug("timed event ignored", "type", ev.Type)
		}
	}
}

func (e *Engine) updatePointer() {
	p := e.party
	ptr, keep := PointerAt(e.router.Cursor(), PointerState{
		DraggingIcon:     e.dragging != 0,
		HoldingObject:    !p.LeaderEmptyHanded(),
		HasLeader:        p.HasLeader(),
		ChampionCount:    p.Count,
		InventoryOrdinal: e.inventory,
	})
	if !keep {
		e.dragging = 0
	}
	if ptr != e.pointer {
		e.pointer = ptr
		e.ui.SetPointer(ptr)
	}
}

func (e *Engine) weight(h dungeon.Handle) int {
	if t := e.store.Thing(h); t != nil {
		return dungeon.Weight(t.Payload)
	}
	return 0
}

func (e *Engine) contract(op string, err error) {
	e.logger.Error("contract violation", "op", op, "err", err)
}
