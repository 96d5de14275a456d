package hexgrid

import (
	"math"
	"math/rand"

	"github.com/lukev/curse-of-war/internal/gameerrors"
	"github.com/lukev/curse-of-war/internal/logging"
)

// maxGenerationAttempts bounds the regenerate-on-rejection loop in
// Generate so a pathological seed/inequality combination can't spin
// forever; see spec §4.1 "Implementation must guarantee termination".
const maxGenerationAttempts = 500

// GenParams bundles everything Generate needs from the caller's
// options bundle. It is a plain leaf struct deliberately kept free of
// any dependency on the options package, to avoid a cross-package
// import cycle (options in turn depends on hexgrid for the Shape
// type).
type GenParams struct {
	Width, Height int
	Shape         Shape
	NumPlayers    int
	// Inequality selects the requested σ/μ·1000 bucket (0..4); nil
	// disables the gate entirely.
	Inequality *int
	// Conditions selects which rank (num-conditions) the human player
	// receives; nil means a random starting rank.
	Conditions *int
}

// Result is everything Generate hands back beyond the Grid itself.
type Result struct {
	Grid         *Grid
	HumanPlayer  int
	AIPlayers    []int
	Attempts     int
	LastScoreMu  float64
	LastScoreSig float64
}

// Generate builds a playable map per spec §4.1, looping until both
// the connectedness and (if requested) inequality checks pass, or the
// attempt cap is hit.
func Generate(p GenParams, rng *rand.Rand) (*Result, error) {
	log := logging.Get()
	var last *Result
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		g := newRandomGrid(p.Width, p.Height, p.NumPlayers, rng)
		stencil := NewStencil(p.Shape)
		ApplyShape(g, stencil)
		locations := stencil.Locations(p.Width, p.Height)

		human, ai, mu, sigma, err := conflict(g, locations, p, rng)
		last = &Result{Grid: g, HumanPlayer: human, AIPlayers: ai, Attempts: attempt, LastScoreMu: mu, LastScoreSig: sigma}
		if err != nil {
			if err == gameerrors.ErrConflictDiffOutOfBound {
				continue
			}
			return nil, err
		}
		if !g.IsConnected() {
			continue
		}
		return last, nil
	}
	log.Warn().Int("attempts", maxGenerationAttempts).Msg("map generation hit attempt cap, accepting last candidate")
	return last, nil
}

// newRandomGrid implements step 1: a width x height grid of random
// tiles before any shaping/conflict placement.
func newRandomGrid(width, height, numPlayers int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	g.Each(func(pos Pos, _ Tile) {
		roll := rng.Intn(20)
		switch {
		case roll < 1:
			g.Set(pos, randomCity(numPlayers, rng))
		case roll < 5:
			if rng.Intn(10) < 9 {
				g.Set(pos, MountainTile())
			} else {
				g.Set(pos, MineTile(Neutral))
			}
		default:
			g.Set(pos, NewHabitable(Grassland))
		}
	})
	return g
}

func randomCity(numPlayers int, rng *rand.Rand) Tile {
	var land Land
	switch roll := rng.Intn(6); {
	case roll < 1:
		land = Fortress
	case roll < 3:
		land = Town
	default:
		land = Village
	}
	owner := 1
	if numPlayers > 0 {
		owner = rng.Intn(numPlayers) + 1
	}
	t := NewHabitable(land)
	t.Units[owner] = 10
	t.RefreshOwner()
	return t
}

// conflict implements step 3: clears existing cities/owners, places
// fresh Fortresses and mine pairs at a rotated window of the stencil's
// candidate locations, scores them via eval_locs, and assigns the
// human/AI player ids by rank.
func conflict(g *Grid, locations []Pos, p GenParams, rng *rand.Rand) (human int, ai []int, mu, sigma float64, err error) {
	clearCitiesAndOwners(g)

	L := len(locations)
	if L == 0 {
		return 0, nil, 0, 0, nil
	}
	di := rng.Intn(L)
	num := p.NumPlayers
	if num > L {
		num = L
	}

	for i := 0; i < num; i++ {
		idx := (di + i) % L
		loc := locations[idx]
		player := i + 1
		placeStartingFortress(g, loc, player, rng)
	}

	scores := evalLocs(g, num)
	mu, sigma = meanStddev(scores)

	if p.Inequality != nil {
		if !inequalityBucketMatches(*p.Inequality, mu, sigma) {
			return 0, nil, mu, sigma, gameerrors.ErrConflictDiffOutOfBound
		}
	}

	order := rankAscending(scores)
	rank := num - 1
	if p.Conditions != nil {
		rank = num - *p.Conditions
	} else {
		rank = rng.Intn(num)
	}
	if rank < 0 {
		rank = 0
	}
	if rank > num-1 {
		rank = num - 1
	}
	human = order[rank] + 1

	ai = make([]int, 0, num-1)
	for i := 0; i < num; i++ {
		player := i + 1
		if player != human {
			ai = append(ai, player)
		}
	}
	rng.Shuffle(len(ai), func(i, j int) { ai[i], ai[j] = ai[j], ai[i] })
	return human, ai, mu, sigma, nil
}

func clearCitiesAndOwners(g *Grid) {
	g.Each(func(pos Pos, t Tile) {
		switch t.Kind {
		case Habitable:
			_ = g.Set(pos, NewHabitable(Grassland))
		case Mine:
			_ = g.Set(pos, MineTile(Neutral))
		}
	})
}

func placeStartingFortress(g *Grid, loc Pos, player int, rng *rand.Rand) {
	fort := NewHabitable(Fortress)
	fort.Units[player] = 10
	fort.RefreshOwner()
	_ = g.Set(loc, fort)

	d := Directions[rng.Intn(6)]
	plusD := loc.Add(d)
	minusD := loc.Add(d.Scale(-1))
	minus2D := loc.Add(d.Scale(-2))

	if g.InBound(plusD) {
		_ = g.Set(plusD, MineTile(Neutral))
	}
	if g.InBound(minusD) {
		_ = g.Set(minusD, NewHabitable(Grassland))
	}
	if g.InBound(minus2D) {
		_ = g.Set(minus2D, MineTile(Neutral))
	}
}

// evalLocs scores each of the num starting slots by how exclusively
// its territory reaches the neutral mines scattered across the map.
func evalLocs(g *Grid, num int) []int64 {
	scores := make([]int64, num)
	if num == 0 {
		return scores
	}

	u := NewGrid2D(g)
	d := NewGrid2DSize(g.Width(), g.Height())
	const sentinel = math.MaxInt32
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			d.Set(Pos{X: int32(x), Y: int32(y)}, sentinel)
		}
	}

	for i := 0; i < num; i++ {
		player := i + 1
		g.Each(func(pos Pos, t Tile) {
			if t.Kind == Habitable && t.Owner == player && t.Land == Fortress {
				FloodfillClosest(g, u, d, pos, int32(player), 0)
			}
		})
	}

	w, h := float64(g.Width()), float64(g.Height())
	g.Each(func(pos Pos, t Tile) {
		if t.Kind != Mine {
			return
		}
		owner := 0
		maxDist, minDist := int32(-1), int32(sentinel)
		mixed := false
		any := false
		for _, n := range pos.Neighbors() {
			if !g.InBound(n) {
				continue
			}
			nt := g.MustAt(n)
			if nt.Kind != Habitable {
				continue
			}
			no := int(u.At(n))
			if no == 0 {
				continue
			}
			any = true
			if owner == 0 {
				owner = no
			} else if owner != no {
				mixed = true
			}
			nd := d.At(n)
			if nd > maxDist {
				maxDist = nd
			}
			if nd < minDist {
				minDist = nd
			}
		}
		if !any || mixed || owner == 0 {
			return
		}
		score := int64(math.Floor(100 * (w + h) * math.Exp(-10*float64(maxDist)*float64(minDist)/(w*h))))
		scores[owner-1] += score
	})

	return scores
}

func meanStddev(xs []int64) (mu, sigma float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mu = sum / float64(len(xs))
	var variance float64
	for _, x := range xs {
		d := float64(x) - mu
		variance += d * d
	}
	variance /= float64(len(xs))
	sigma = math.Sqrt(variance)
	return mu, sigma
}

func inequalityBucketMatches(bucket int, mu, sigma float64) bool {
	ratio := 0.0
	if mu != 0 {
		ratio = sigma / mu * 1000
	}
	switch bucket {
	case 0:
		return ratio <= 50
	case 1:
		return ratio > 50 && ratio <= 100
	case 2:
		return ratio > 100 && ratio <= 250
	case 3:
		return ratio > 250 && ratio <= 500
	default:
		return ratio >= 501
	}
}

// rankAscending returns slot indices sorted worst-score-first.
func rankAscending(scores []int64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && scores[order[j-1]] > scores[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}
