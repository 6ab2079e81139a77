package graph

// Config holds the per-component multipliers and thresholds for similarity
// scoring. A weight of 0 disables a component entirely (it is skipped, not
// computed). All weights are non-negative; MinEdgeWeight may be any real
// number — a negative threshold admits every computed pair.
type Config struct {
	DomainWeight       float64 `mapstructure:"domain_weight"`
	TagWeight          float64 `mapstructure:"tag_weight"`
	DirectLinkWeight   float64 `mapstructure:"direct_link_weight"`
	IndirectLinkWeight float64 `mapstructure:"indirect_link_weight"`

	MinEdgeWeight float64 `mapstructure:"min_edge_weight"`

	// MaxIndirectHops is reserved for multi-hop link scoring, which is
	// currently disabled. The value is carried but unused.
	MaxIndirectHops int `mapstructure:"max_indirect_hops"`

	SubdomainBonus  float64 `mapstructure:"subdomain_bonus"`
	PathDepthWeight float64 `mapstructure:"path_depth_weight"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		DomainWeight:       1.0,
		TagWeight:          1.0,
		DirectLinkWeight:   2.0,
		IndirectLinkWeight: 0.5,
		MinEdgeWeight:      0.1,
		MaxIndirectHops:    2,
		SubdomainBonus:     0.5,
		PathDepthWeight:    0.3,
	}
}
