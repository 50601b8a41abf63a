package tui

import "hash/fnv"

var vehicleEmojis = []string{"🚗", "🚙", "🚌", "🚎", "🏎️", "🚐", "🚛", "🚚", "🚜"}

// emojiFor picks a stable emoji for a vehicle id. Pure presentation: the id
// hash keeps the emoji constant across refreshes without storing it anywhere.
func emojiFor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return vehicleEmojis[int(h.Sum32())%len(vehicleEmojis)]
}
