package xerosync

import (
	"encoding/json"
	"strings"
)

// identifierOf extracts the remote identifier from a raw record. Anything but
// a non-empty JSON string yields "", which the dedup filter drops.
func identifierOf(raw json.RawMessage, idKey string) string {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return ""
	}
	val, ok := members[idKey]
	if !ok {
		return ""
	}
	var id string
	if err := json.Unmarshal(val, &id); err != nil {
		return ""
	}
	return strings.TrimSpace(id)
}

// filterNew keeps a candidate iff it carries a non-empty identifier that is
// not already mirrored. Output preserves input order. Pure set membership;
// the existing set must come from a scan taken immediately before the call.
func filterNew(existing map[string]struct{}, candidates []json.RawMessage, idKey string) []json.RawMessage {
	fresh := make([]json.RawMessage, 0, len(candidates))
	for _, raw := range candidates {
		id := identifierOf(raw, idKey)
		if id == "" {
			continue
		}
		if _, ok := existing[id]; ok {
			continue
		}
		fresh = append(fresh, raw)
	}
	return fresh
}
