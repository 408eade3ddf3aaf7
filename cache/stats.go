package cache

// Stats counts cache outcomes since construction. Hits and Misses are
// driven by Get only, Contains and Range are peeks and count as
// neither. Returned by value, so a snapshot stays stable.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
