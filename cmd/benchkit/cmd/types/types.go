package types

// ContextKey is the type for values the root command places on the
// command context.
type ContextKey string

// ClientAppKey is the context key the initialized client App is stored
// under.
const ClientAppKey ContextKey = "app"

// ClientCfgKey is the context key for the loaded configuration.
const ClientCfgKey ContextKey = "cfg"
