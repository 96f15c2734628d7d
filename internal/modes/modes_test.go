package modes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/registry"
)

func seed(v int64) *int64 {
	return &v
}

func TestRegistered(t *testing.T) {
	ids := make([]string, 0)
	for _, m := range registry.List() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{DailyID, FreePlayID, PuzzleID, TutorialID}, ids)

	p, err := registry.Create(PuzzleID)
	require.NoError(t, err)
	assert.Equal(t, "Puzzle", p.Title())

	_, err = registry.Create("arcade")
	assert.Error(t, err)
	assert.False(t, registry.Exists("arcade"))
}

func TestDailyUsesDateSeed(t *testing.T) {
	day := time.Date(2024, time.January, 5, 18, 30, 0, 0, time.UTC)
	d := NewDaily(func() time.Time { return day })

	assert.Equal(t, "2024-01-05", d.TodayKey())
	assert.Equal(t, int64(1922422964), d.TodaySeed())

	setup, err := d.Setup(core.GameOptions{})
	require.NoError(t, err)
	assert.Equal(t, gem.GenerateDaily(1922422964), setup.Target)
	require.NotNil(t, setup.Queue.Seed)
	assert.Equal(t, int64(1922422964), *setup.Queue.Seed)
	assert.True(t, setup.Queue.Autofill)

	again, _ := NewDaily(func() time.Time { return day.Add(time.Hour) }).Setup(core.GameOptions{})
	assert.Equal(t, setup.Target, again.Target, "same day must give the same gem")

	_, ok := d.Next(core.GameOptions{})
	assert.False(t, ok)
}

func TestDailyExplicitSeed(t *testing.T) {
	d := NewDaily(nil)
	setup, err := d.Setup(core.GameOptions{Seed: seed(1162559497)})
	require.NoError(t, err)
	assert.Equal(t, gem.GenerateDaily(1162559497), setup.Target)
}

func TestPuzzleSetup(t *testing.T) {
	c := levels.MustDefault()
	p := NewPuzzle(c)

	setup, err := p.Setup(core.GameOptions{World: 1, Level: 1})
	require.NoError(t, err)
	lvl := c.Level(1, 1)
	assert.Equal(t, lvl.Target, setup.Target)
	assert.Equal(t, lvl.Queue, setup.Queue.Initial)
	assert.False(t, setup.Queue.Autofill)

	_, err = p.Setup(core.GameOptions{World: 99, Level: 1})
	assert.Error(t, err)

	_, err = p.Setup(core.GameOptions{
		World: 99, Level: 1,
		Queue:  []string{"t"},
		Target: core.Shape{core.P(0, 0)},
	})
	assert.NoError(t, err, "explicit queue and target need no catalog level")
}

func TestPuzzleNext(t *testing.T) {
	c := levels.MustDefault()
	p := NewPuzzle(c)

	next, ok := p.Next(core.GameOptions{World: 1, Level: 1, Target: core.Shape{core.P(0, 0)}})
	require.True(t, ok)
	assert.Equal(t, 1, next.World)
	assert.Equal(t, 2, next.Level)
	assert.Nil(t, next.Target)

	last := c.Worlds()[len(c.Worlds())-1]
	_, ok = p.Next(core.GameOptions{World: last.Number, Level: last.LevelCount})
	assert.False(t, ok)
}

func TestFreePlay(t *testing.T) {
	f := NewFreePlay()

	setup, err := f.Setup(core.GameOptions{Level: 1})
	require.NoError(t, err)
	assert.Len(t, setup.Target, 1)
	assert.True(t, setup.Queue.Autofill)
	assert.Nil(t, setup.Queue.Seed)

	a, _ := f.Setup(core.GameOptions{Level: 12, Seed: seed(9)})
	b, _ := f.Setup(core.GameOptions{Level: 12, Seed: seed(9)})
	assert.Equal(t, a.Target, b.Target)
	assert.LessOrEqual(t, len(a.Target), gem.LevelToSize(12))

	next, ok := f.Next(core.GameOptions{Level: 3, Seed: seed(9), Target: core.Shape{core.P(0, 0)}})
	assert.True(t, ok)
	assert.Equal(t, 4, next.Level)
	assert.Nil(t, next.Target)
	require.NotNil(t, next.Seed)
	assert.Equal(t, int64(9), *next.Seed)
}

func TestTutorialPolicy(t *testing.T) {
	tp := NewTutorial()
	setup, err := tp.Setup(core.GameOptions{})
	require.NoError(t, err)
	assert.Len(t, setup.Target, 1)

	next, ok := tp.Next(core.GameOptions{Level: 1})
	assert.True(t, ok)
	assert.Equal(t, 2, next.Level)
}

func TestSlotsAndHelpers(t *testing.T) {
	assert.True(t, ValidSlot("C"))
	assert.False(t, ValidSlot("E"))
	assert.False(t, ShouldAutoSave(1))
	assert.True(t, ShouldAutoSave(2))

	best := 5
	assert.True(t, IsNewBest(9, nil))
	assert.True(t, IsNewBest(4, &best))
	assert.False(t, IsNewBest(5, &best))
}
