// Package options bundles the game-config values that
// State.New/hexgrid.Generate/the AI consume. Building these from
// process argv is an external collaborator's job (spec §6); this
// package only owns the struct and its defaults.
package options

import "github.com/lukev/curse-of-war/internal/hexgrid"

// Difficulty selects the AI's map-evaluation dumbing and gold subsidy.
type Difficulty int

const (
	DifficultyEasiest Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
	DifficultyHardest
)

// Speed selects the tick-slowdown divisor (§4.7).
type Speed int

const (
	SpeedPause Speed = iota
	SpeedSlowest
	SpeedSlower
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedFaster
	SpeedFastest
)

// Slowdown returns the number of 10ms frames between simulation ticks
// at this speed; SpeedPause never advances.
func (s Speed) Slowdown() int {
	switch s {
	case SpeedSlowest:
		return 160
	case SpeedSlower:
		return 80
	case SpeedSlow:
		return 40
	case SpeedNormal:
		return 20
	case SpeedFast:
		return 10
	case SpeedFaster:
		return 5
	case SpeedFastest:
		return 2
	default:
		return 0 // Pause: caller must special-case 0 as "never"
	}
}

// Options is the immutable game-config bundle.
type Options struct {
	Width, Height int
	Shape         hexgrid.Shape
	Locations     int // requested candidate-location count (informational; the stencil decides the true count)
	Inequality    *int
	Conditions    *int
	KeepRandom    bool
	Difficulty    Difficulty
	Speed         Speed
	Seed          uint64
	TimelineEnabled bool
	MaxClients    int
	NumPlayers    int
}

// Option mutates an Options bundle.
type Option func(*Options)

// Default returns the baseline Options: a 21x21 rhombus for 4
// players, normal difficulty and speed, no inequality gate.
func Default() Options {
	return Options{
		Width:      21,
		Height:     21,
		Shape:      hexgrid.ShapeRhombus,
		Locations:  4,
		Difficulty: DifficultyNormal,
		Speed:      SpeedNormal,
		NumPlayers: 4,
		MaxClients: 4,
	}
}

// New builds Options from Default() with opts applied in order.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithSeed(seed uint64) Option           { return func(o *Options) { o.Seed = seed } }
func WithDimensions(w, h int) Option        { return func(o *Options) { o.Width, o.Height = w, h } }
func WithShape(s hexgrid.Shape) Option       { return func(o *Options) { o.Shape = s } }
func WithNumPlayers(n int) Option           { return func(o *Options) { o.NumPlayers = n } }
func WithInequality(bucket int) Option       { return func(o *Options) { o.Inequality = &bucket } }
func WithConditions(c int) Option            { return func(o *Options) { o.Conditions = &c } }
func WithDifficulty(d Difficulty) Option     { return func(o *Options) { o.Difficulty = d } }
func WithSpeed(s Speed) Option               { return func(o *Options) { o.Speed = s } }
func WithTimeline(enabled bool) Option        { return func(o *Options) { o.TimelineEnabled = enabled } }
func WithMaxClients(n int) Option            { return func(o *Options) { o.MaxClients = n } }

// ToGenParams translates Options into the plain params hexgrid.Generate
// expects, keeping hexgrid free of any dependency on this package.
func (o Options) ToGenParams() hexgrid.GenParams {
	return hexgrid.GenParams{
		Width:      o.Width,
		Height:     o.Height,
		Shape:      o.Shape,
		NumPlayers: o.NumPlayers,
		Inequality: o.Inequality,
		Conditions: o.Conditions,
	}
}
