// internal/defs/gifts.go
package defs

// Gift is a stat modifier offered after a victory.
type Gift struct {
	Text   string     `json:"text"`
	Effect GiftEffect `json:"effect"`
	Value  float64    `json:"value"`
}

// GiftPools: positive gifts go to allies, negative ones to enemies.
type GiftPools struct {
	Positive []Gift `json:"positive"`
	Negative []Gift `json:"negative"`
}

// GiftOffer pairs an ally gift with the enemy gift that comes with it.
type GiftOffer struct {
	Ally  Gift
	Enemy Gift
}

func (o GiftOffer) String() string {
	return "ally " + o.Ally.Text + ", enemy " + o.Enemy.Text
}
