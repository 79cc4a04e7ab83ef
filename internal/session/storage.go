package session

import "context"

// Durable slot names. Only the session store touches these; every
// other component reads session state through the store.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Storage is the durable key-value slot behind the session store.
// It survives process restarts and holds exactly two keys: the auth
// token and the serialized user object.
type Storage interface {
	// Get returns the value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes a value
	Set(ctx context.Context, key, value string) error
	// Del removes keys; missing keys are not an error
	Del(ctx context.Context, keys ...string) error
}
