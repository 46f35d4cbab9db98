package aoc

import (
	"golang.org/x/exp/maps"
)

// Counter counts occurrences of keys. The zero value is ready to use.
type Counter[K comparable] struct {
	m map[K]int
}

func (c *Counter[K]) Add(k K) {
	InitMap(&c.m)
	c.m[k]++
}

func (c *Counter[K]) AddAll(ks ...K) {
	for _, k := range ks {
		c.Add(k)
	}
}

func (c *Counter[K]) Get(k K) int {
	return c.m[k]
}

// Len returns the number of distinct keys counted.
func (c *Counter[K]) Len() int {
	return len(c.m)
}

// AtLeast returns how many keys were counted n or more times.
func (c *Counter[K]) AtLeast(n int) int {
	var count int
	for _, v := range c.m {
		if v >= n {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the counts.
func (c *Counter[K]) Snapshot() map[K]int {
	if c.m == nil {
		return map[K]int{}
	}
	return maps.Clone(c.m)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
