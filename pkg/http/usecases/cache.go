package usecases

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
)

type cacheKeyInput struct {
	Routes    []da.RouteRecord `json:"routes"`
	Criterion string           `json:"criterion"`
	Home      string           `json:"home"`
}

// planCacheKey. sha-256 of the request that produced a plan. criterion "all" for every criterion.
func planCacheKey(records []da.RouteRecord, criterion, home string) (string, error) {
	buf, err := json.Marshal(cacheKeyInput{Routes: records, Criterion: criterion, Home: home})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
