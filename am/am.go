// Package am holds the btk-graph configuration ("I am"): database
// location, similarity scoring weights, and SVG canvas defaults. Values
// come from defaults, an optional TOML config file, and BTK_-prefixed
// environment variables, in increasing precedence.
package am

import (
	"github.com/queelius/btk-graph/graph"
)

// Config represents the core btk-graph configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Graph    GraphConfig    `mapstructure:"graph"`
	SVG      SVGConfig      `mapstructure:"svg"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// GraphConfig configures similarity scoring. Fields mirror graph.Config.
type GraphConfig struct {
	DomainWeight       float64 `mapstructure:"domain_weight"`
	TagWeight          float64 `mapstructure:"tag_weight"`
	DirectLinkWeight   float64 `mapstructure:"direct_link_weight"`
	IndirectLinkWeight float64 `mapstructure:"indirect_link_weight"`
	MinEdgeWeight      float64 `mapstructure:"min_edge_weight"`
	MaxIndirectHops    int     `mapstructure:"max_indirect_hops"`
	SubdomainBonus     float64 `mapstructure:"subdomain_bonus"`
	PathDepthWeight    float64 `mapstructure:"path_depth_weight"`
}

// SVGConfig configures the SVG exporter canvas
type SVGConfig struct {
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	Labels bool `mapstructure:"labels"`
}

// GraphConfig converts the config section into the engine's value type.
func (c *Config) GraphConfig() graph.Config {
	return graph.Config{
		DomainWeight:       c.Graph.DomainWeight,
		TagWeight:          c.Graph.TagWeight,
		DirectLinkWeight:   c.Graph.DirectLinkWeight,
		IndirectLinkWeight: c.Graph.IndirectLinkWeight,
		MinEdgeWeight:      c.Graph.MinEdgeWeight,
		MaxIndirectHops:    c.Graph.MaxIndirectHops,
		SubdomainBonus:     c.Graph.SubdomainBonus,
		PathDepthWeight:    c.Graph.PathDepthWeight,
	}
}
