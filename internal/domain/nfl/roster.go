package nfl

import (
	"fmt"
	"strings"
)

// Owner is a fantasy participant holding a fixed set of franchises for the
// season. Rosters come from configuration, not from upstream data.
type Owner struct {
	Name    string
	TeamIDs []string
}

func (o Owner) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("owner name is required")
	}
	if len(o.TeamIDs) == 0 {
		return fmt.Errorf("owner %s has no teams", o.Name)
	}

	resolver := NewResolver()
	seen := make(map[string]struct{}, len(o.TeamIDs))
	for _, id := range o.TeamIDs {
		if _, ok := resolver.ByID(id); !ok {
			return fmt.Errorf("owner %s references unknown team id %q", o.Name, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("owner %s lists team id %q twice", o.Name, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
