package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt reads an integer value from contract storage, zero if the key is
// not set.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// GetBool reads a boolean value from contract storage, false if the key is
// not set.
func GetBool(ctx storage.Context, key any) bool {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(bool)
	}

	return false
}
