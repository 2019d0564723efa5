package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"termpix/app"
	"termpix/config"
	"termpix/controller"
	"termpix/device"
	"termpix/events"
	"termpix/frame"
	"termpix/geometry"
	"termpix/widgets"
)

var (
	styleArena = device.Style{FG: device.PaletteColor(244)}
	styleSnake = device.Style{FG: device.Teal, Flags: device.Bold}
	styleFood  = device.Style{FG: device.Green}
	styleScore = device.Style{FG: device.PaletteColor(226), Flags: device.Bold}
)

const (
	glyphSnake = '●'
	glyphFood  = '❄'
	step       = 150 * time.Millisecond
)

type direction int

const (
	up direction = iota
	down
	left
	right
)

func (d direction) opposite() direction {
	switch d {
	case up:
		return down
	case down:
		return up
	case left:
		return right
	}
	return left
}

func (d direction) next(loc geometry.Location) geometry.Location {
	switch d {
	case up:
		loc.Y--
	case down:
		loc.Y++
	case left:
		loc.X--
	case right:
		loc.X++
	}
	return loc
}

type (
	foodEaten struct{ score int }
	gameOver  struct{ reason string }
)

type game struct {
	arena     geometry.Rect
	body      []geometry.Location // head first
	direction direction
	fast      bool
	food      geometry.Location
	score     int
	over      bool
	lastMove  time.Time
	now       func() time.Time
	rng       *rand.Rand
	view      widgets.Widget
}

func newGame(size geometry.Size, now func() time.Time, rng *rand.Rand) *game {
	g := &game{arena: geometry.Screen(size), direction: up, now: now, rng: rng, lastMove: now()}
	center := g.arena.Center()
	for i := 0; i < 3; i++ {
		g.body = append(g.body, geometry.Location{X: center.X, Y: center.Y + i})
	}
	g.placeFood()
	g.rebuild()
	return g
}

func (g *game) Position() geometry.Location { return g.arena.Pos }
func (g *game) Size() geometry.Size         { return g.arena.Dim }

func (g *game) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	return g.view.PixelAt(loc)
}

// rebuild is needed whenever the arena or the score change. The snake and
// the food are read live.
func (g *game) rebuild() {
	g.view = widgets.Layers(
		widgets.Label(geometry.Location{X: g.arena.Pos.X + 2, Y: g.arena.Pos.Y}, 12, fmt.Sprintf(" score %d ", g.score), styleScore),
		widgets.Bordered(g.arena, widgets.Rounded, styleArena, nil),
		frame.SourceFunc(g.content),
	)
}

func (g *game) content(loc geometry.Location) (frame.Pixel, bool) {
	if loc == g.food {
		return frame.Pixel{Glyph: glyphFood, Style: styleFood}, true
	}
	if g.isBody(loc) {
		return frame.Pixel{Glyph: glyphSnake, Style: styleSnake}, true
	}
	return frame.Pixel{}, false
}

func (g *game) isBody(loc geometry.Location) bool {
	for _, part := range g.body {
		if part == loc {
			return true
		}
	}
	return false
}

func (g *game) OnEvent(event events.Event) (events.Event, error) {
	switch event := event.(type) {
	case events.Input:
		switch raw := event.Raw.(type) {
		case device.Key:
			g.steer(raw.Code)
		case device.Resize:
			g.arena = geometry.Screen(raw.Size)
			g.rebuild()
		}

	case events.Message:
		switch payload := event.Payload.(type) {
		case foodEaten:
			log.Printf("snake: score %d", payload.score)
		case gameOver:
			log.Printf("snake: game over, %s, score %d", payload.reason, g.score)
			return events.Stop{}, nil
		}

	case events.GracefulStop:
		log.Printf("snake: interrupted, score %d", g.score)
	}
	return events.NoInput{}, nil
}

func (g *game) steer(code device.KeyCode) {
	var d direction
	switch code {
	case device.KeyUp:
		d = up
	case device.KeyDown:
		d = down
	case device.KeyLeft:
		d = left
	case device.KeyRight:
		d = right
	default:
		return
	}
	switch d {
	case g.direction:
		g.fast = true
	case g.direction.opposite():
	default:
		g.direction = d
	}
}

// Update moves the snake one cell per step, or at once after a key press
// in the current direction.
func (g *game) Update() (events.Event, error) {
	if g.over {
		return events.NoInput{}, nil
	}
	now := g.now()
	if !g.fast && now.Sub(g.lastMove) < step {
		return events.NoInput{}, nil
	}
	g.fast = false
	g.lastMove = now

	head := g.direction.next(g.body[0])
	if g.arena.IsBoundary(head) || !g.arena.Covers(head) {
		g.over = true
		return events.Message{Payload: gameOver{reason: "hit the wall"}}, nil
	}
	if g.isBody(head) {
		g.over = true
		return events.Message{Payload: gameOver{reason: "bit itself"}}, nil
	}

	if head == g.food {
		g.body = append([]geometry.Location{head}, g.body...)
		g.score++
		g.placeFood()
		g.rebuild()
		return events.Message{Payload: foodEaten{score: g.score}}, nil
	}
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head
	return events.NoInput{}, nil
}

// placeFood puts the food on a random free cell inside the border.
func (g *game) placeFood() {
	inner, ok := g.arena.Inset(1)
	if !ok || inner.Area() <= len(g.body) {
		g.food = geometry.Location{}
		return
	}
	for {
		loc := geometry.Location{
			X: inner.Pos.X + g.rng.Intn(inner.Dim.Width+1),
			Y: inner.Pos.Y + g.rng.Intn(inner.Dim.Height+1),
		}
		if !g.isBody(loc) {
			g.food = loc
			return
		}
	}
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Parse("snake", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("snake: %v", err)
		os.Exit(int(controller.ExitError))
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	os.Exit(app.Run(context.Background(), cfg, func(size geometry.Size, cfg config.Config) controller.Widget {
		return newGame(size, time.Now, random)
	}))
}
