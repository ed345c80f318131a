package constants

import "time"

// Cache key prefixes
const (
	CacheKeyMovie      = "cinely:movie:"
	CacheKeyTopMovies  = "cinely:movies:top:"
	CacheKeyCinema     = "cinely:cinema:"
	CacheKeySeatLayout = "cinely:auditorium:seats:"
)

// Cache TTLs
const (
	TTLMovie      = 1 * time.Hour
	TTLTopMovies  = 10 * time.Minute
	TTLCinema     = 1 * time.Hour
	TTLSeatLayout = 30 * time.Minute
)
