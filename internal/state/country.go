package state

// Country tracks one player's treasury. Mutated by mine income,
// builds, and the AI difficulty gold subsidy (spec §4.4).
type Country struct {
	gold uint64
}

// Gold returns the current treasury.
func (c *Country) Gold() uint64 { return c.gold }

// Spend deducts amount if affordable, reporting success.
func (c *Country) Spend(amount uint64) bool {
	if c.gold < amount {
		return false
	}
	c.gold -= amount
	return true
}

// AddGold credits amount to the treasury (mine income, AI subsidy).
func (c *Country) AddGold(amount uint64) {
	c.gold += amount
}
