package templates

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"tabletpl/common"
)

// Index maintenance keeps absolute row and column positions of the active
// template pointing to the same table rows/columns when table structure
// changes. An+B patterns describe repeating layout and are never touched.
//
// at is 0-based position of the row (column) the edit is relative to, rule
// indices are 1-based.

// InsertIndex shifts rules after a row or column has been inserted before or
// after position at.
func (s *Store) InsertIndex(kind common.RuleKind, at int, before bool) error {
	if err := checkMaintenanceArgs(kind, at); err != nil {
		return err
	}

	threshold := at + 1
	if !before {
		// inserted after the current one, current one stays where it is
		threshold++
	}

	return s.maintain(kind, func(rules []PositionalRule) []PositionalRule {
		for i := range rules {
			if idx, ok := PlainIndex(rules[i].Index); ok && idx >= threshold {
				rules[i].Index = strconv.Itoa(idx + 1)
			}
		}
		return rules
	}, zap.Int("at", at), zap.Bool("before", before), zap.Int("threshold", threshold))
}

// RemoveIndex drops rules addressing removed row or column at position at
// and shifts rules after it.
func (s *Store) RemoveIndex(kind common.RuleKind, at int) error {
	if err := checkMaintenanceArgs(kind, at); err != nil {
		return err
	}

	removed := at + 1
	return s.maintain(kind, func(rules []PositionalRule) []PositionalRule {
		result := rules[:0]
		for _, r := range rules {
			if idx, ok := PlainIndex(r.Index); ok {
				if idx == removed {
					continue
				}
				if idx > removed {
					r.Index = strconv.Itoa(idx - 1)
				}
			}
			result = append(result, r)
		}
		if len(result) == 0 {
			return nil
		}
		return result
	}, zap.Int("at", at), zap.Int("removed", removed))
}

// maintain runs update on rules of the active template in place and notifies
// subscribers once. Without active template this is a no-op.
func (s *Store) maintain(kind common.RuleKind, update func([]PositionalRule) []PositionalRule, fields ...zap.Field) error {
	s.mu.Lock()
	t, ok := s.doc[s.active]
	if !ok || s.active == "" {
		s.mu.Unlock()
		return nil
	}
	if t == nil {
		t = &Template{}
		s.doc[s.active] = t
	}
	t.SetPositional(kind, update(t.Positional(kind)))

	s.log.Debug("Indexes updated", append(fields, zap.String("template", s.active), zap.Stringer("kind", kind))...)
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return nil
}

func checkMaintenanceArgs(kind common.RuleKind, at int) error {
	if !kind.IsPositional() {
		return fmt.Errorf("rule kind %q has no indexes: %w", kind, ErrInvalidArgument)
	}
	if at < 0 {
		return fmt.Errorf("negative position %d: %w", at, ErrInvalidArgument)
	}
	return nil
}
