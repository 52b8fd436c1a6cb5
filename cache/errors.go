package cache

import "errors"

// ErrOutOfMemory is returned by Store when the arena cannot satisfy a
// store even after evicting every eligible entry, and growing further
// would exceed the cache's configured maximum capacity.
var ErrOutOfMemory = errors.New("cache: arena exhausted")
