package config

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ahlgren-media/reactions/internal/domain/entity"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL                string
	AnonymousReactionsEnabled bool
	VisitorIDSalt             string
	ReactionTypes             map[entity.ReactionType]entity.ReactionTypeConfig
	AllowedContentTypes       []string

	reactionKeys []entity.ReactionType
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	c := &Config{
		AppBaseURL:                getEnv("APP_BASE_URL", "http://localhost:8080"),
		AnonymousReactionsEnabled: getEnvAsBool("ANONYMOUS_REACTIONS_ENABLED", true),
		VisitorIDSalt:             getEnv("VISITOR_ID_SALT", ""),
		ReactionTypes:             loadReactionTypes(),
		AllowedContentTypes:       getEnvAsSlice("ALLOWED_CONTENT_TYPES", []string{"post", "page"}),
	}
	for key := range c.ReactionTypes {
		c.reactionKeys = append(c.reactionKeys, key)
	}
	sort.Slice(c.reactionKeys, func(i, j int) bool { return c.reactionKeys[i] < c.reactionKeys[j] })
	return c
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetReactionTypes returns the configured reaction vocabulary.
func (c *Config) GetReactionTypes() map[entity.ReactionType]entity.ReactionTypeConfig {
	return c.ReactionTypes
}

// GetReactionTypeKeys returns the vocabulary keys sorted ascending.
func (c *Config) GetReactionTypeKeys() []entity.ReactionType {
	return c.reactionKeys
}

// IsReactionTypeValid reports whether the key is in the configured set.
func (c *Config) IsReactionTypeValid(key entity.ReactionType) bool {
	_, ok := c.ReactionTypes[key]
	return ok
}

// IsContentTypeAllowed reports whether items of this type accept reactions.
func (c *Config) IsContentTypeAllowed(contentType string) bool {
	for _, t := range c.AllowedContentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// GetAnonymousReactionsEnabled reports whether visitor-id actors may react.
func (c *Config) GetAnonymousReactionsEnabled() bool {
	return c.AnonymousReactionsEnabled
}

// GetVisitorIDSalt returns the keyed-digest salt for visitor ids.
func (c *Config) GetVisitorIDSalt() string {
	return c.VisitorIDSalt
}

// loadReactionTypes reads the vocabulary from REACTION_TYPES (a JSON object
// of key -> {emoji, labels}) and falls back to the built-in set.
func loadReactionTypes() map[entity.ReactionType]entity.ReactionTypeConfig {
	raw := getEnv("REACTION_TYPES", "")
	if raw == "" {
		return defaultReactionTypes()
	}
	types := make(map[entity.ReactionType]entity.ReactionTypeConfig)
	if err := json.Unmarshal([]byte(raw), &types); err != nil || len(types) == 0 {
		log.Printf("invalid REACTION_TYPES, using defaults: %v", err)
		return defaultReactionTypes()
	}
	return types
}

func defaultReactionTypes() map[entity.ReactionType]entity.ReactionTypeConfig {
	return map[entity.ReactionType]entity.ReactionTypeConfig{
		"like": {
			Emoji: "\U0001F44D",
			Labels: entity.ReactionLabels{
				Reaction:   "Like this post",
				AmountPre:  "This post has",
				AmountPost: "likes",
			},
		},
		"love": {
			Emoji: "❤️",
			Labels: entity.ReactionLabels{
				Reaction:   "Love this post",
				AmountPre:  "This post has",
				AmountPost: "loves",
			},
		},
		"laugh": {
			Emoji: "\U0001F602",
			Labels: entity.ReactionLabels{
				Reaction:   "Laugh at this post",
				AmountPre:  "This post has",
				AmountPost: "laughs",
			},
		},
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// Helper function to get a comma-separated environment variable as a slice.
func getEnvAsSlice(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	parts := strings.Split(valStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
