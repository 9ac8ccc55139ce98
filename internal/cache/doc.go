// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint32, []sfnt.Segment](512)
//	segs := c.GetOrCreate(id, load)
//	st := c.Stats()
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
