package systems

import (
	"testing"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type pickerSpy struct {
	hunter, dimension int
	engaged, back     bool
}

func (p *pickerSpy) Selection() (int, int) { return p.hunter, p.dimension }
func (p *pickerSpy) SelectHunter(i int) { p.hunter = i }
func (p *pickerSpy) SelectDimension(i int) { p.dimension = i }
func (p *pickerSpy) Engage() { p.engaged = true }
func (p *pickerSpy) Back() { p.back = true }

func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

func TestCharacterSelectNavigation(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spy := &pickerSpy{hunter: 1, dimension: 1}
	update := NewUpdateCharacterSelect(spy)

	press(e, cfg.ActionMenuRight)
	update(e)
	assert.Equal(t, 2, spy.hunter)

	press(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, 0, spy.dimension)

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.True(t, spy.engaged)
	assert.False(t, spy.back)

	press(e, cfg.ActionMenuBack)
	update(e)
	assert.True(t, spy.back)
}
