// Package pipeline wires the full analysis run: network construction,
// centrality, structure, cascade simulation, value laws, community
// detection, bipartite projection, and echo-chamber analysis.
package pipeline

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/cascade"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

// defaultHubNames are the designated high-influence identities of the 2021
// short-squeeze community; the first entry is the catalyst hub.
var defaultHubNames = []string{
	"DeepFuckingValue",
	"zjz",
	"OPINION_IS_UNPOPULAR",
	"Stylux",
	"bawse1",
	"ITradeBaconFutures",
	"VisualMod",
	"AutoModerator",
	"wsbgod",
	"SIR_JACK_A_LOT",
}

// Config manages run configuration using Viper. All tuning constants carry
// the documented defaults and stay overridable from file or code.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Network construction
	v.SetDefault("network.size", 1000)
	v.SetDefault("network.seed", 42)
	v.SetDefault("network.attachment_m", 3)
	v.SetDefault("network.min_weight", 1)
	v.SetDefault("network.max_weight_regular", 20)
	v.SetDefault("network.reply_probability", 0.7)

	// Hub wiring
	v.SetDefault("hubs.names", defaultHubNames)
	v.SetDefault("hubs.catalyst_connections", 300)
	v.SetDefault("hubs.min_connections", 50)
	v.SetDefault("hubs.max_connections", 200)
	v.SetDefault("hubs.preferential_ratio", 0.7)
	v.SetDefault("hubs.top_degree_pool", 100)
	v.SetDefault("hubs.max_weight_to_hub", 50)
	v.SetDefault("hubs.reply_probability", 0.3)
	v.SetDefault("hubs.min_weight_from_hub", 1)
	v.SetDefault("hubs.max_weight_from_hub", 10)
	v.SetDefault("hubs.link_probability", 0.7)
	v.SetDefault("hubs.link_min_weight", 3)
	v.SetDefault("hubs.link_max_weight", 25)

	// Cascade simulation
	v.SetDefault("cascade.steps", 10)
	v.SetDefault("cascade.initial_cooperators", 0.15)
	v.SetDefault("cascade.hub_multiplier", 3.0)
	v.SetDefault("cascade.cooperation_threshold", 0.5)
	v.SetDefault("cascade.sticky_threshold", 0.4)

	// Bipartite content graph and projection
	v.SetDefault("bipartite.posts", 200)
	v.SetDefault("bipartite.viral_post_count", 5)
	v.SetDefault("bipartite.hub_comment_min", 20)
	v.SetDefault("bipartite.hub_comment_max", 50)
	v.SetDefault("bipartite.user_comment_min", 1)
	v.SetDefault("bipartite.user_comment_max", 15)
	v.SetDefault("bipartite.viral_ratio", 0.7)
	v.SetDefault("projection.k_threshold", 2)

	// Reporting
	v.SetDefault("report.top_k", 10)

	// Logging
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile merges configuration from a file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set overrides a configuration value.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) NetworkSize() int          { return c.v.GetInt("network.size") }
func (c *Config) Seed() int64               { return c.v.GetInt64("network.seed") }
func (c *Config) AttachmentM() int          { return c.v.GetInt("network.attachment_m") }
func (c *Config) ReplyProbability() float64 { return c.v.GetFloat64("network.reply_probability") }

func (c *Config) HubNames() []string { return c.v.GetStringSlice("hubs.names") }

func (c *Config) CascadeSteps() int             { return c.v.GetInt("cascade.steps") }
func (c *Config) InitialCooperators() float64   { return c.v.GetFloat64("cascade.initial_cooperators") }
func (c *Config) HubMultiplier() float64        { return c.v.GetFloat64("cascade.hub_multiplier") }
func (c *Config) CooperationThreshold() float64 { return c.v.GetFloat64("cascade.cooperation_threshold") }
func (c *Config) StickyThreshold() float64      { return c.v.GetFloat64("cascade.sticky_threshold") }

func (c *Config) NumPosts() int   { return c.v.GetInt("bipartite.posts") }
func (c *Config) KThreshold() int { return c.v.GetInt("projection.k_threshold") }
func (c *Config) TopK() int       { return c.v.GetInt("report.top_k") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// BuilderConfig assembles the scale-free builder parameters.
func (c *Config) BuilderConfig() network.BuilderConfig {
	return network.BuilderConfig{
		AttachmentM:         c.v.GetInt("network.attachment_m"),
		MinWeight:           c.v.GetInt("network.min_weight"),
		MaxWeightRegular:    c.v.GetInt("network.max_weight_regular"),
		ReplyProbability:    c.v.GetFloat64("network.reply_probability"),
		CatalystConnections: c.v.GetInt("hubs.catalyst_connections"),
		HubMinConnections:   c.v.GetInt("hubs.min_connections"),
		HubMaxConnections:   c.v.GetInt("hubs.max_connections"),
		PreferentialRatio:   c.v.GetFloat64("hubs.preferential_ratio"),
		TopDegreePool:       c.v.GetInt("hubs.top_degree_pool"),
		MaxWeightToHub:      c.v.GetInt("hubs.max_weight_to_hub"),
		HubReplyProbability: c.v.GetFloat64("hubs.reply_probability"),
		MinWeightFromHub:    c.v.GetInt("hubs.min_weight_from_hub"),
		MaxWeightFromHub:    c.v.GetInt("hubs.max_weight_from_hub"),
		HubLinkProbability:  c.v.GetFloat64("hubs.link_probability"),
		HubLinkMinWeight:    c.v.GetInt("hubs.link_min_weight"),
		HubLinkMaxWeight:    c.v.GetInt("hubs.link_max_weight"),
	}
}

// BipartiteConfig assembles the content-graph parameters.
func (c *Config) BipartiteConfig() network.BipartiteConfig {
	return network.BipartiteConfig{
		ViralPostCount: c.v.GetInt("bipartite.viral_post_count"),
		HubCommentMin:  c.v.GetInt("bipartite.hub_comment_min"),
		HubCommentMax:  c.v.GetInt("bipartite.hub_comment_max"),
		UserCommentMin: c.v.GetInt("bipartite.user_comment_min"),
		UserCommentMax: c.v.GetInt("bipartite.user_comment_max"),
		ViralRatio:     c.v.GetFloat64("bipartite.viral_ratio"),
	}
}

// CascadeConfig assembles the simulation parameters.
func (c *Config) CascadeConfig() cascade.Config {
	return cascade.Config{
		Steps:                c.CascadeSteps(),
		InitialCooperators:   c.InitialCooperators(),
		HubMultiplier:        c.HubMultiplier(),
		CooperationThreshold: c.CooperationThreshold(),
		StickyThreshold:      c.StickyThreshold(),
	}
}

// CreateLogger builds a zerolog logger from the configured level.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "pipeline").Logger()
}
