package handlers

// Lock key builders. The prefixes sort lexicographically as
// account < asset < exchange < location, which fixes the global
// acquisition order for multi-entity operations.

func accountKey(id string) string  { return "account:" + id }
func assetKey(id string) string    { return "asset:" + id }
func exchangeKey(id string) string { return "exchange:" + id }
func locationKey(id string) string { return "location:" + id }
