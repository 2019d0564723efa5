package main

import (
	"math/rand"
	"testing"
	"time"

	"termpix/device"
	"termpix/events"
	"termpix/geometry"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestGame(t *testing.T) (*game, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := newGame(geometry.Size{Width: 20, Height: 10}, c.now, rand.New(rand.NewSource(1)))
	return g, c
}

func arrow(code device.KeyCode) events.Event {
	return events.Input{Raw: device.Key{Code: code}}
}

func TestStartPosition(t *testing.T) {
	g, _ := newTestGame(t)
	want := []geometry.Location{{X: 10, Y: 5}, {X: 10, Y: 6}, {X: 10, Y: 7}}
	for i, part := range want {
		if g.body[i] != part {
			t.Errorf("body[%d]: expected %s got %s", i, part, g.body[i])
		}
	}
	inner, _ := g.arena.Inset(1)
	if !inner.Covers(g.food) || g.isBody(g.food) {
		t.Errorf("food placed at %s", g.food)
	}
	if pixel, _ := g.PixelAt(geometry.Location{X: 1, Y: 1}); pixel.Glyph != '╭' {
		t.Errorf("Expected a rounded corner got %q", pixel.Glyph)
	}
	if pixel, _ := g.PixelAt(geometry.Location{X: 10, Y: 5}); pixel.Glyph != glyphSnake {
		t.Errorf("Expected the snake head got %q", pixel.Glyph)
	}
}

func TestMovesOncePerStep(t *testing.T) {
	g, c := newTestGame(t)
	g.food = geometry.Location{X: 2, Y: 2}

	c.t = c.t.Add(step / 2)
	g.Update()
	if g.body[0] != (geometry.Location{X: 10, Y: 5}) {
		t.Fatalf("moved before the step elapsed: %s", g.body[0])
	}
	c.t = c.t.Add(step)
	g.Update()
	if g.body[0] != (geometry.Location{X: 10, Y: 4}) || len(g.body) != 3 {
		t.Errorf("Expected the head at (10, 4) got %v", g.body)
	}
	if g.body[2] != (geometry.Location{X: 10, Y: 6}) {
		t.Errorf("tail did not follow: %v", g.body)
	}
}

func TestSteering(t *testing.T) {
	g, _ := newTestGame(t)
	g.food = geometry.Location{X: 2, Y: 2}

	g.OnEvent(arrow(device.KeyDown))
	if g.direction != up {
		t.Error("turned into the opposite direction")
	}
	g.OnEvent(arrow(device.KeyLeft))
	if g.direction != left {
		t.Error("did not turn left")
	}
	g.OnEvent(arrow(device.KeyLeft))
	g.Update()
	if g.body[0] != (geometry.Location{X: 9, Y: 5}) {
		t.Errorf("Expected an immediate move to (9, 5) got %s", g.body[0])
	}
}

func TestEating(t *testing.T) {
	g, c := newTestGame(t)
	g.food = geometry.Location{X: 10, Y: 4}
	c.t = c.t.Add(step)

	next, _ := g.Update()
	if next != (events.Message{Payload: foodEaten{score: 1}}) {
		t.Errorf("Expected foodEaten got %v", next)
	}
	if len(g.body) != 4 || g.score != 1 {
		t.Errorf("Expected a longer snake got %v", g.body)
	}
	if g.food == (geometry.Location{X: 10, Y: 4}) || g.isBody(g.food) {
		t.Errorf("food not replaced: %s", g.food)
	}
	if pixel, _ := g.PixelAt(geometry.Location{X: 10, Y: 1}); pixel.Glyph != '1' {
		t.Errorf("Expected the score on the top border got %q", pixel.Glyph)
	}
}

func TestHittingTheWall(t *testing.T) {
	g, c := newTestGame(t)
	g.food = geometry.Location{X: 2, Y: 8}
	var next events.Event
	for i := 0; i < 10 && events.IsNoInput(next); i++ {
		c.t = c.t.Add(step)
		next, _ = g.Update()
	}
	if next != (events.Message{Payload: gameOver{reason: "hit the wall"}}) {
		t.Fatalf("Expected gameOver got %v", next)
	}
	if stop, _ := g.OnEvent(next); stop != (events.Stop{}) {
		t.Errorf("Expected Stop got %v", stop)
	}
	if again, _ := g.Update(); !events.IsNoInput(again) {
		t.Errorf("moved after game over: %v", again)
	}
}
