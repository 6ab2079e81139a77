package am

import (
	"github.com/spf13/viper"

	"github.com/queelius/btk-graph/graph"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "btk.db")

	// Similarity scoring defaults mirror graph.DefaultConfig
	defaults := graph.DefaultConfig()
	v.SetDefault("graph.domain_weight", defaults.DomainWeight)
	v.SetDefault("graph.tag_weight", defaults.TagWeight)
	v.SetDefault("graph.direct_link_weight", defaults.DirectLinkWeight)
	v.SetDefault("graph.indirect_link_weight", defaults.IndirectLinkWeight)
	v.SetDefault("graph.min_edge_weight", defaults.MinEdgeWeight)
	v.SetDefault("graph.max_indirect_hops", defaults.MaxIndirectHops)
	v.SetDefault("graph.subdomain_bonus", defaults.SubdomainBonus)
	v.SetDefault("graph.path_depth_weight", defaults.PathDepthWeight)

	// SVG canvas defaults
	v.SetDefault("svg.width", 1200)
	v.SetDefault("svg.height", 800)
	v.SetDefault("svg.labels", true)
}
