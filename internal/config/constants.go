package config

import "time"

// Application settings.
const (
	AppName        = "proffy"
	DBFileName     = "proffy.db"
	ConfigFileName = "config.yaml"
	LogFileName    = "proffy.log"
)

// Remote classes endpoint.
const (
	DefaultAPIURL     = "http://localhost:3333"
	DefaultAPITimeout = 15 * time.Second
	ClassesPath       = "/classes"
	APIURLEnv         = "PROFFY_API_URL"
)

// FavoritesKey is the local store key holding the JSON array of favorited
// tutor records. It is shared with the favorites screen.
const FavoritesKey = "favorites"
