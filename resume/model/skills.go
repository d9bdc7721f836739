package model

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// SkillGroup is one category of the skills mapping.
type SkillGroup struct {
	Category string
	Skills   []string
}

// Skills is the category -> skills mapping. The JSON object's key order is
// significant for display, so it is decoded into a slice instead of a map.
type Skills []SkillGroup

// UnmarshalJSON decodes a JSON object keeping the order of its keys.
// A duplicated category keeps its first position and takes the last value.
func (s *Skills) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	if d.Next() == jx.Null {
		*s = Skills{}
		return d.Null()
	}

	groups := Skills{}
	index := map[string]int{}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		skills, err := decodeStrings(d)
		if err != nil {
			return errors.Wrapf(err, "skills[%q]", string(key))
		}
		category := string(key)
		if i, ok := index[category]; ok {
			groups[i].Skills = skills
			return nil
		}
		index[category] = len(groups)
		groups = append(groups, SkillGroup{Category: category, Skills: skills})
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "decode skills")
	}
	*s = groups
	return nil
}

// MarshalJSON encodes the groups back into a JSON object in display order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	for _, group := range s {
		e.FieldStart(group.Category)
		e.ArrStart()
		for _, skill := range group.Skills {
			e.Str(skill)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
	return e.Bytes(), nil
}

// Len returns the number of categories.
func (s Skills) Len() int {
	return len(s)
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	out := []string{}
	switch d.Next() {
	case jx.Null:
		return out, d.Null()
	case jx.Array:
	default:
		return nil, errors.Errorf("expected array, got %s", d.Next())
	}
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() == jx.Null {
			out = append(out, "")
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	return out, err
}
