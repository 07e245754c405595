// internal/system/context.go
package system

import (
	"errors"
	"fmt"

	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/entity"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

// ErrMissingBody reports an entity registered without Transform or Collider.
var ErrMissingBody = errors.New("entity has no physics body")

// Context — общие зависимости матча, передаются в каждую систему.
type Context struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Presenter  interfaces.Presenter
	Tuning     *config.Tuning
	Catalog    *defs.Catalog
	Log        zerolog.Logger
}

// NewContext fills optional collaborators with no-op defaults.
func NewContext(ecs *entity.ECS, dispatcher *event.Dispatcher, presenter interfaces.Presenter, tuning *config.Tuning, catalog *defs.Catalog, log zerolog.Logger) *Context {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if presenter == nil {
		presenter = interfaces.NopPresenter{}
	}
	if tuning == nil {
		tuning = config.Default()
	}
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}
	return &Context{
		ECS:        ecs,
		Dispatcher: dispatcher,
		Presenter:  presenter,
		Tuning:     tuning,
		Catalog:    catalog,
		Log:        log,
	}
}

// Now returns the game clock in seconds.
func (c *Context) Now() float64 {
	return c.ECS.GameTime
}

func (c *Context) dispatch(eventType event.EventType, data interface{}) {
	c.Dispatcher.Dispatch(event.Event{Type: eventType, Time: c.ECS.GameTime, Data: data})
}

// requireBody проверяет, что у сущности есть Transform и Collider.
func (c *Context) requireBody(id types.EntityID) error {
	if _, ok := c.ECS.Transforms[id]; !ok {
		return fmt.Errorf("entity %d: transform: %w", id, ErrMissingBody)
	}
	if _, ok := c.ECS.Colliders[id]; !ok {
		return fmt.Errorf("entity %d: collider: %w", id, ErrMissingBody)
	}
	return nil
}

func (c *Context) position(id types.EntityID) (utils.Vec2, bool) {
	tr, ok := c.ECS.Transforms[id]
	if !ok {
		return utils.Vec2{}, false
	}
	return tr.Pos, true
}

// Intent — снимок ввода одного игрока за кадр.
// Move.Y: вперёд +1 / назад -1, Move.X: вправо +1 / влево -1.
type Intent struct {
	Move utils.Vec2
	Fire bool // фронт нажатия, не удержание
}
