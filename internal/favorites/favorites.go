// Package favorites reads and edits the favorited tutor records kept in the
// local key/value store. The stored value is a JSON array of full tutor
// records because the favorites screen renders them without a network call.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/models"
)

var ErrMalformed = errors.New("favorites value is malformed")

var errUnchanged = errors.New("favorites unchanged")

// Store is the slice of the key/value store this package needs.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	UpdateSetting(ctx context.Context, key string, fn func(old string, found bool) (string, error)) error
}

// Reader is the read-only part of Store.
type Reader interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
}

// IDSet is the set of favorited tutor ids.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s IDSet) IDs() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Decode parses a stored favorites value. An empty or blank value decodes to
// an empty list; anything that is not a JSON array of records is
// ErrMalformed.
func Decode(raw string) ([]models.Teacher, error) {
	if strings.TrimSpace(raw) == "" {
		return []models.Teacher{}, nil
	}
	var teachers []models.Teacher
	if err := json.Unmarshal([]byte(raw), &teachers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

// Project reduces records to their ids.
func Project(teachers []models.Teacher) IDSet {
	s := make(IDSet, len(teachers))
	for _, t := range teachers {
		s[t.ID] = struct{}{}
	}
	return s
}

// Load reads the favorites value and projects it to an id set.
//
// found is false when nothing is stored, in which case callers keep whatever
// set they already hold. A malformed value returns found=true, an empty set
// and an error wrapping ErrMalformed, so callers can fail closed.
func Load(ctx context.Context, store Reader) (IDSet, bool, error) {
	raw, found, err := store.GetSetting(ctx, config.FavoritesKey)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	_, ids, err := decodeRecords(raw)
	if err != nil {
		return IDSet{}, true, err
	}
	return NewIDSet(ids...), true, nil
}

// List returns the stored records in stored order.
func List(ctx context.Context, store Reader) ([]models.Teacher, error) {
	raw, found, err := store.GetSetting(ctx, config.FavoritesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Teacher{}, nil
	}
	return Decode(raw)
}

// Toggle adds teacher to the favorites when its id is absent and removes it
// otherwise, returning whether it is favorited afterwards. Other records are
// kept byte for byte, in order. A malformed stored value is left untouched.
func Toggle(ctx context.Context, store Store, teacher models.Teacher) (bool, error) {
	var favorited bool
	err := store.UpdateSetting(ctx, config.FavoritesKey, func(old string, _ bool) (string, error) {
		records, ids, err := decodeRecords(old)
		if err != nil {
			return "", err
		}
		next, removed := without(records, ids, teacher.ID)
		favorited = !removed
		if favorited {
			data, err := json.Marshal(teacher)
			if err != nil {
				return "", err
			}
			next = append(next, data)
		}
		return encodeRecords(next)
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// Remove drops the record with id, reporting whether one was stored.
func Remove(ctx context.Context, store Store, id int64) (bool, error) {
	err := store.UpdateSetting(ctx, config.FavoritesKey, func(old string, _ bool) (string, error) {
		records, ids, err := decodeRecords(old)
		if err != nil {
			return "", err
		}
		next, removed := without(records, ids, id)
		if !removed {
			return "", errUnchanged
		}
		return encodeRecords(next)
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Clear forgets every favorite.
func Clear(ctx context.Context, store Store) error {
	return store.DeleteSetting(ctx, config.FavoritesKey)
}

type recordID struct {
	ID int64 `json:"id"`
}

// decodeRecords splits a stored value into its raw records and their ids.
// Only the id of each record is interpreted.
func decodeRecords(raw string) ([]json.RawMessage, []int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	ids := make([]int64, len(records))
	for i, rec := range records {
		var r recordID
		if err := json.Unmarshal(rec, &r); err != nil {
			return nil, nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		ids[i] = r.ID
	}
	return records, ids, nil
}

func encodeRecords(records []json.RawMessage) (string, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func without(records []json.RawMessage, ids []int64, id int64) ([]json.RawMessage, bool) {
	out := make([]json.RawMessage, 0, len(records))
	removed := false
	for i, rec := range records {
		if ids[i] == id {
			removed = true
			continue
		}
		out = append(out, rec)
	}
	return out, removed
}
